// Package render converts assistant markdown into displayable output: HTML
// for the web transcript and ANSI for the terminal.
package render

import (
	"bytes"
	"html/template"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

var (
	htmlOnce sync.Once
	md       goldmark.Markdown
	policy   *bluemonday.Policy
)

func initHTML() {
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps()),
	)
	// UGC policy: formatting, links, code, tables; no scripts, no styles.
	policy = bluemonday.UGCPolicy()
}

// HTML renders assistant markdown to sanitized HTML for the transcript.
// Model output is untrusted; everything passes through the sanitizer.
func HTML(markdown string) template.HTML {
	htmlOnce.Do(initHTML)

	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		// Fall back to escaped plain text on converter failure.
		return template.HTML(template.HTMLEscapeString(markdown))
	}

	return template.HTML(policy.SanitizeBytes(buf.Bytes()))
}
