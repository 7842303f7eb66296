// ABOUTME: Display width of styled terminal strings for centering preview labels
// ABOUTME: Strips SGR escapes, then sums grapheme cluster widths (uniseg + go-runewidth)

package preview

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// sgrRe matches ANSI SGR sequences like \x1b[38;5;208m, the only escapes lipgloss emits here.
var sgrRe = regexp.MustCompile(`\x1b\[[\d;]*m`)

// VisibleWidth returns the number of terminal cells s occupies.
func VisibleWidth(s string) int {
	stripped := sgrRe.ReplaceAllString(s, "")
	w := 0
	state := -1
	for len(stripped) > 0 {
		var cluster string
		cluster, stripped, _, state = uniseg.FirstGraphemeClusterInString(stripped, state)
		r, _ := utf8.DecodeRuneInString(cluster)
		w += runewidth.RuneWidth(r)
	}
	return w
}

// center pads s on the left so it sits in the middle of a field of the given width.
func center(s string, width int) string {
	pad := (width - VisibleWidth(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
