package render

import (
	"strings"
	"testing"
)

func TestHTMLRendersMarkdown(t *testing.T) {
	out := string(HTML("**bold** and `code`"))
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Errorf("bold not rendered: %s", out)
	}
	if !strings.Contains(out, "<code>code</code>") {
		t.Errorf("code not rendered: %s", out)
	}
}

func TestHTMLStripsScripts(t *testing.T) {
	out := string(HTML("hello <script>alert('xss')</script> world"))
	if strings.Contains(out, "<script") {
		t.Errorf("script tag survived sanitization: %s", out)
	}
}

func TestHTMLStripsEventHandlers(t *testing.T) {
	out := string(HTML(`<img src="x" onerror="alert(1)">`))
	if strings.Contains(out, "onerror") {
		t.Errorf("event handler survived sanitization: %s", out)
	}
}

func TestHTMLTables(t *testing.T) {
	md := "| a | b |\n|---|---|\n| 1 | 2 |"
	out := string(HTML(md))
	if !strings.Contains(out, "<table>") {
		t.Errorf("GFM table not rendered: %s", out)
	}
}

func TestTerminalRender(t *testing.T) {
	out, err := Terminal("# Title\n\nSome *text*.", 60)
	if err != nil {
		t.Fatalf("Terminal failed: %v", err)
	}
	if !strings.Contains(out, "Title") {
		t.Errorf("heading text missing: %q", out)
	}
}

func TestTerminalZeroWidth(t *testing.T) {
	if _, err := Terminal("plain", 0); err != nil {
		t.Fatalf("Terminal with zero width failed: %v", err)
	}
}
