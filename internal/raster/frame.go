// ABOUTME: Rasterizes one moment of the spinner animation into an RGBA image
// ABOUTME: Circles drawn with x/image/vector at natural size, then scaled with CatmullRom

package raster

import (
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/mauromedda/spinveil/pkg/overlay"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa is the cubic Bézier control distance approximating a quarter circle.
const kappa = 0.5522847498

var (
	fallbackBackground = color.NRGBA{}
	fallbackSpinner    = color.NRGBA{A: 255}
)

// Frame renders the spinner as it appears t into its animation, on a square
// canvas of side size filled with the overlay background.
func Frame(opts overlay.Options, t time.Duration, size int) *image.RGBA {
	if size < 1 {
		size = 1
	}

	bg, ok := ParseColor(opts.BackgroundColor)
	if !ok {
		bg = fallbackBackground
	}
	fg, ok := ParseColor(opts.SpinnerColor)
	if !ok {
		fg = fallbackSpinner
	}

	natural := int(overlay.NaturalSize)
	z := vector.NewRasterizer(natural, natural)
	for k := range overlay.CircleCount {
		cx, cy := overlay.Center(k)
		addCircle(z, float32(cx), float32(cy), float32(overlay.RadiusAt(k, t)))
	}

	src := image.NewRGBA(image.Rect(0, 0, natural, natural))
	draw.Draw(src, src.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	z.Draw(src, src.Bounds(), image.NewUniform(fg), image.Point{})

	if size == natural {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// addCircle appends a closed circular path built from four cubic segments.
func addCircle(z *vector.Rasterizer, cx, cy, r float32) {
	if r <= 0 {
		return
	}
	k := r * kappa
	z.MoveTo(cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.ClosePath()
}

// Times returns n instants evenly spaced across one animation cycle.
func Times(n int) []time.Duration {
	if n < 1 {
		return nil
	}
	step := overlay.CycleDuration / time.Duration(n)
	out := make([]time.Duration, n)
	for i := range out {
		out[i] = time.Duration(i) * step
	}
	return out
}
