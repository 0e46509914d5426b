package render

import "github.com/charmbracelet/glamour"

// Terminal renders markdown for terminal display, wrapped to width.
// glamour.TermRenderer is not safe for concurrent Render calls, but the CLI
// one-shot path is strictly sequential so a fresh renderer per call is fine.
func Terminal(content string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
	if err != nil {
		return "", err
	}

	return renderer.Render(content)
}
