package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// renderMarkdown renders text as markdown wrapped to width. It falls back
// to the raw text when rendering fails.
func renderMarkdown(text string, width int) string {
	if text == "" {
		return ""
	}

	// Use dark style directly (avoid expensive auto-detection)
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}

	rendered, err := renderer.Render(text)
	if err != nil {
		return text
	}

	// Glamour pads with blank lines on both ends
	rendered = strings.TrimLeft(rendered, "\n")
	return strings.TrimRight(rendered, "\n\r\t ")
}
