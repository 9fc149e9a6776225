package scenes

import (
	"math/rand/v2"
	"strings"

	"github.com/llehouerou/weddingstory/internal/ui/styles"
)

var starGlyphs = []string{"·", "✦", "˚", "⋆", "·"}

// star is stored in fractions of the area so a resize keeps the pattern.
type star struct {
	fx, fy float64
	glyph  string
}

// backdrop is the scattered star field behind a scene. Its layout depends on
// the viewport, so it is built on the first real size and never before.
// The generator is seeded per scene, so the field is stable across renders.
type backdrop struct {
	seed  uint64
	ready bool
	stars []star
}

// density is one star per this many cells.
const density = 90

func (d *backdrop) layout(width, height int) {
	if d.ready || width <= 0 || height <= 0 {
		return
	}
	r := rand.New(rand.NewPCG(d.seed, d.seed*0x9e3779b97f4a7c15)) //nolint:gosec // decoration only
	n := max(width*height/density, 1)
	d.stars = make([]star, n)
	for i := range d.stars {
		d.stars[i] = star{
			fx:    r.Float64(),
			fy:    r.Float64(),
			glyph: starGlyphs[r.IntN(len(starGlyphs))],
		}
	}
	d.ready = true
}

// render returns a width x height layer with the stars drawn on spaces.
func (d *backdrop) render(width, height int) string {
	grid := make([][]string, height)
	for y := range grid {
		grid[y] = make([]string, width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}
	style := styles.T().S().Subtle
	for _, s := range d.stars {
		x := min(int(s.fx*float64(width)), width-1)
		y := min(int(s.fy*float64(height)), height-1)
		grid[y][x] = style.Render(s.glyph)
	}
	rows := make([]string, height)
	for y, row := range grid {
		rows[y] = strings.Join(row, "")
	}
	return strings.Join(rows, "\n")
}
