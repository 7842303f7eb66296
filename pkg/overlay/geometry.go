// ABOUTME: Element geometry measured by a probe and the overlay region derived from it
// ABOUTME: Geometry is document-relative (scroll included); sizes are client-box pixels

package overlay

// NaturalSize is the side length, in pixels, of the spinner's internal
// coordinate system. A SpinnerScale of 100 renders it at exactly this size.
const NaturalSize = 126.0

// Geometry is the measured position and size of a target element.
// X and Y are offsets from the document origin (viewport offset plus scroll);
// Height and Width are the element's client dimensions.
type Geometry struct {
	X      float64
	Y      float64
	Height float64
	Width  float64
}

// IsZero reports whether g is the all-zero geometry returned for missing elements.
func (g Geometry) IsZero() bool {
	return g == Geometry{}
}

// Region is the fixed-position rectangle the overlay layer occupies.
type Region struct {
	Left   float64
	Top    float64
	Height float64
	Width  float64
}

// Region returns the overlay rectangle covering g exactly.
func (g Geometry) Region() Region {
	return Region{
		Left:   g.X,
		Top:    g.Y,
		Height: g.Height,
		Width:  g.Width,
	}
}
