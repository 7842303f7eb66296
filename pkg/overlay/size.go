// ABOUTME: Spinner sizing: picks the requested scale or shrinks to the limiting dimension
// ABOUTME: The w == h < 126 tie resolves to the height branch (strict < on width)

package overlay

// SizeRule identifies which branch of the sizing algorithm applied.
type SizeRule int

const (
	// SizeRequested means the target is at least NaturalSize in both
	// dimensions and the spinner uses Options.SpinnerScale directly.
	SizeRequested SizeRule = iota
	// SizeWidthBound means the width is below NaturalSize and smaller than the height.
	SizeWidthBound
	// SizeHeightBound covers every remaining case, including equal sides.
	SizeHeightBound
)

// String returns a short human-readable name for the rule.
func (r SizeRule) String() string {
	switch r {
	case SizeRequested:
		return "requested scale"
	case SizeWidthBound:
		return "width bound"
	case SizeHeightBound:
		return "height bound"
	default:
		return "unknown"
	}
}

// RuleFor returns the sizing branch that applies to g.
func RuleFor(g Geometry) SizeRule {
	switch {
	case g.Width >= NaturalSize && g.Height >= NaturalSize:
		return SizeRequested
	case g.Width < NaturalSize && g.Width < g.Height:
		return SizeWidthBound
	default:
		return SizeHeightBound
	}
}

// RenderSize returns the pixel side length of the spinner's square box for a
// target of geometry g and a requested scale percentage.
func RenderSize(g Geometry, scale int) float64 {
	switch RuleFor(g) {
	case SizeRequested:
		return NaturalSize / 100 * float64(scale)
	case SizeWidthBound:
		return NaturalSize / 100 * (g.Width / NaturalSize * 100)
	default:
		return NaturalSize / 100 * (g.Height / NaturalSize * 100)
	}
}
