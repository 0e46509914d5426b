package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/diogo/gemichat/internal/gateway"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models available to your API key",
	Long: `List the models your API key can use for content generation. If no key
is configured, you are prompted for one (input is hidden).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiKey := cfg.APIKey
		if apiKey == "" {
			key, err := promptAPIKey()
			if err != nil {
				return err
			}
			apiKey = key
		}

		client := gateway.NewClient(gateway.WithTimeout(cfg.RequestTimeout))

		spin := newSpinner("Checking available models")
		spin.start()

		ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
		defer cancel()

		names, err := client.ListModels(ctx, apiKey)
		if err != nil {
			spin.stopWithError()
			fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Model listing failed"))
			return fmt.Errorf("model listing failed: %w", err)
		}
		spin.stopWithSuccess(fmt.Sprintf("%d models support generation", len(names)))

		nameStyle := lipgloss.NewStyle().Foreground(colorText)
		for _, name := range names {
			fmt.Printf("  %s\n", nameStyle.Render(name))
		}
		return nil
	},
}

// promptAPIKey reads an API key from the terminal without echoing it.
func promptAPIKey() (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("no API key: set GEMINI_API_KEY")
	}

	fmt.Fprint(os.Stderr, "Gemini API key: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}

	key := strings.TrimSpace(string(raw))
	if key == "" {
		return "", fmt.Errorf("no API key entered")
	}
	return key, nil
}
