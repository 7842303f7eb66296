// ABOUTME: Character-grid rendering of the eight-circle spinner ring
// ABOUTME: Glyph size follows overlay.RadiusAt so the terminal pulse matches the SVG

package preview

import (
	"strings"
	"time"

	"github.com/mauromedda/spinveil/pkg/overlay"
)

const (
	ringCols = 17
	ringRows = 7
)

// ringCells places each circle on the grid, clockwise from 12 o'clock.
// Columns are stretched because terminal cells are about twice as tall as wide.
var ringCells = [overlay.CircleCount][2]int{
	{8, 0},
	{12, 1},
	{14, 3},
	{12, 5},
	{8, 6},
	{4, 5},
	{2, 3},
	{4, 1},
}

// glyphs from smallest to largest radius.
var glyphs = []string{"·", "∙", "•", "●"}

const (
	minRadius = 3.0
	maxRadius = 18.0
)

// Glyph picks the character representing a circle of radius r.
func Glyph(r float64) string {
	f := (r - minRadius) / (maxRadius - minRadius)
	i := int(f*float64(len(glyphs)-1) + 0.5)
	i = max(0, min(i, len(glyphs)-1))
	return glyphs[i]
}

// Ring returns the ring as grid lines at time t into the animation. paint
// styles each glyph; pass nil for plain text.
func Ring(t time.Duration, paint func(string) string) []string {
	grid := make([][]string, ringRows)
	for row := range grid {
		grid[row] = make([]string, ringCols)
		for col := range grid[row] {
			grid[row][col] = " "
		}
	}

	for k, cell := range ringCells {
		g := Glyph(overlay.RadiusAt(k, t))
		if paint != nil {
			g = paint(g)
		}
		grid[cell[1]][cell[0]] = g
	}

	lines := make([]string, ringRows)
	for row, cells := range grid {
		lines[row] = strings.Join(cells, "")
	}
	return lines
}
