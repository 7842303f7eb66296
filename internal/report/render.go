// ABOUTME: Terminal rendering of markdown reports through glamour
// ABOUTME: Falls back to the raw markdown when styling fails or output is not a TTY

package report

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Render styles md for a terminal of the given width. When styled is false,
// or glamour fails, md is returned unchanged.
func Render(md string, width int, styled bool) string {
	if !styled || md == "" {
		return md
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}

	// Trim trailing whitespace that glamour adds
	return strings.TrimRight(rendered, "\n ") + "\n"
}
