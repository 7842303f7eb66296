// ABOUTME: HTML/SVG node construction for the overlay layer and spinner graphic
// ABOUTME: Builds golang.org/x/net/html trees; style strings are assembled in fixed order

package overlay

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StackingOrder is the z-index given to the overlay layer.
const StackingOrder = 99999

const svgNamespace = "http://www.w3.org/2000/svg"

// spinnerPlacement centers the spinner inside the overlay whatever its aspect ratio.
const spinnerPlacement = "position: absolute; top: 50%; left: 50%; transform: translate(-50%, -50%)"

// element creates a detached element node with the given attributes.
func element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

// svgElement creates a detached element in the SVG namespace.
func svgElement(tag string, attrs ...html.Attribute) *html.Node {
	n := element(tag, attrs...)
	n.Namespace = "svg"
	return n
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// px formats a pixel length with the shortest exact decimal representation.
func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// declarations joins CSS property/value pairs into an inline style string.
func declarations(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(pairs[i])
		b.WriteString(": ")
		b.WriteString(pairs[i+1])
	}
	return b.String()
}

// OverlayStyle returns the inline style of the overlay layer covering r.
func OverlayStyle(opts Options, r Region) string {
	return declarations(
		"background-color", opts.BackgroundColor,
		"position", "fixed",
		"left", px(r.Left),
		"top", px(r.Top),
		"height", px(r.Height),
		"width", px(r.Width),
		"z-index", strconv.Itoa(StackingOrder),
	)
}

// Spinner builds the animated ring-of-circles SVG at the given side length.
func Spinner(color string, size float64) *html.Node {
	side := strconv.FormatFloat(size, 'f', -1, 64)
	svg := svgElement("svg",
		attr("xmlns", svgNamespace),
		attr("width", side),
		attr("height", side),
		attr("viewBox", "0 0 126 126"),
		attr("style", spinnerPlacement),
	)

	g := svgElement("g", attr("fill", color))
	svg.AppendChild(g)

	for k := range CircleCount {
		cx, cy := Center(k)
		c := svgElement("circle",
			attr("cx", strconv.Itoa(cx)),
			attr("cy", strconv.Itoa(cy)),
			attr("r", strconv.Itoa(BaseRadius(k))),
		)
		c.AppendChild(svgElement("animate",
			attr("attributeName", "r"),
			attr("begin", "0s"),
			attr("dur", "2s"),
			attr("values", keyframeValues(k)),
			attr("calcMode", "linear"),
			attr("repeatCount", "indefinite"),
		))
		g.AppendChild(c)
	}
	return svg
}

// Layer builds the overlay div positioned over g with a centered spinner.
func Layer(opts Options, g Geometry) *html.Node {
	div := element("div", attr("style", OverlayStyle(opts, g.Region())))
	div.AppendChild(Spinner(opts.SpinnerColor, RenderSize(g, opts.SpinnerScale)))
	return div
}

// ElementID returns the id attribute of n, or "" when n is nil or has none.
func ElementID(n *html.Node) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == "id" {
			return a.Val
		}
	}
	return ""
}
