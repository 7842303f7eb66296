// ABOUTME: Markdown report of how an overlay is laid out for one element of a snapshot
// ABOUTME: Suggests close element ids with sahilm/fuzzy when the requested id is unknown

package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mauromedda/spinveil/pkg/layout"
	"github.com/mauromedda/spinveil/pkg/overlay"
	"github.com/sahilm/fuzzy"
	"golang.org/x/text/unicode/norm"
)

// maxSuggestions caps the "did you mean" list.
const maxSuggestions = 3

// Explain describes the overlay that would cover id in snap with opts.
// Unknown ids produce a report of the degenerate overlay plus suggestions.
func Explain(snap *layout.Snapshot, id string, opts overlay.Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Overlay for `#%s`\n\n", id)

	known := snap.Has(id)
	g := snap.Probe(id)
	if !known {
		b.WriteString("> Element not found in the layout; the overlay collapses to zero size.\n\n")
		if s := Suggest(snap.IDs(), id); len(s) > 0 {
			b.WriteString("Did you mean: ")
			for i, c := range s {
				if i > 0 {
					b.WriteString(", ")
				}
				fmt.Fprintf(&b, "`%s`", c)
			}
			b.WriteString("?\n\n")
		}
	}

	r := g.Region()
	b.WriteString("## Overlay region\n\n")
	b.WriteString("| left | top | width | height |\n|---|---|---|---|\n")
	fmt.Fprintf(&b, "| %s | %s | %s | %s |\n\n", num(r.Left), num(r.Top), num(r.Width), num(r.Height))

	rule := overlay.RuleFor(g)
	size := overlay.RenderSize(g, opts.SpinnerScale)
	b.WriteString("## Spinner\n\n")
	fmt.Fprintf(&b, "- Rule: **%s**\n", rule)
	switch rule {
	case overlay.SizeRequested:
		fmt.Fprintf(&b, "- Size: 1.26 x %d%% = **%spx**\n", opts.SpinnerScale, num(size))
	case overlay.SizeWidthBound:
		fmt.Fprintf(&b, "- Size: 1.26 x (%s / 126 x 100) = **%spx**\n", num(g.Width), num(size))
	default:
		fmt.Fprintf(&b, "- Size: 1.26 x (%s / 126 x 100) = **%spx**\n", num(g.Height), num(size))
	}
	fmt.Fprintf(&b, "- Color: `%s` on `%s`\n", opts.SpinnerColor, opts.BackgroundColor)

	return b.String()
}

// Suggest returns up to three ids resembling want, best match first.
// Both sides are NFC-normalized so composed and decomposed accents match.
func Suggest(ids []string, want string) []string {
	if want == "" || len(ids) == 0 {
		return nil
	}
	normalized := make([]string, len(ids))
	for i, id := range ids {
		normalized[i] = norm.NFC.String(id)
	}

	matches := fuzzy.Find(norm.NFC.String(want), normalized)
	out := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, ids[m.Index])
	}
	return out
}

// num formats a pixel value, trimming float noise to two decimals.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
