// Package mazetext renders a grid.Grid as an ASCII lattice for terminals
// and tests.
//
// The lattice is (2·H+1)×(2·W+1) runes: cell centers sit at odd coordinates,
// walls at the even coordinates between them. '█' marks walls and masked
// area, ' ' marks passages, '.' marks an overlaid solution path. Rendering
// is a pure function of grid state; the grid is never mutated.
package mazetext

import (
	"strings"

	"github.com/katalvlaran/mazegrid/grid"
)

const (
	wallRune    = '█'
	passageRune = ' '
	pathRune    = '.'
)

// Option configures rendering via functional arguments.
type Option func(*Options)

// Options holds rendering parameters.
type Options struct {
	// Path, when non-empty, is overlaid with '.' on cell centers and the
	// wall gaps between consecutive path cells.
	Path []grid.Cell

	// Entrances opens a hole in the outer border at the top-left and
	// bottom-right passages.
	Entrances bool
}

// WithPath overlays a solution path.
func WithPath(path []grid.Cell) Option {
	return func(o *Options) {
		o.Path = path
	}
}

// WithEntrances opens border holes at the maze's top-left and bottom-right.
func WithEntrances() Option {
	return func(o *Options) {
		o.Entrances = true
	}
}

// Render returns the ASCII lattice of g, one line per lattice row.
// Complexity: O(W×H) time and memory.
func Render(g *grid.Grid, opts ...Option) string {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}

	h, w := g.Height(), g.Width()
	latH, latW := 2*h+1, 2*w+1
	lattice := make([][]rune, latH)
	for y := range lattice {
		lattice[y] = make([]rune, latW)
		for x := range lattice[y] {
			lattice[y][x] = wallRune
		}
	}

	// Cell centers and carved wall midpoints.
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			cell := grid.Cell{Row: r, Col: c}
			if g.Masked(cell) {
				continue
			}
			lattice[2*r+1][2*c+1] = passageRune
			if g.Open(cell, grid.East) {
				lattice[2*r+1][2*c+2] = passageRune
			}
			if g.Open(cell, grid.South) {
				lattice[2*r+2][2*c+1] = passageRune
			}
		}
	}

	if o.Entrances {
		lattice[0][1] = passageRune
		lattice[latH-1][latW-2] = passageRune
	}

	// Path overlay: centers plus the gap between consecutive cells.
	for i, p := range o.Path {
		lattice[2*p.Row+1][2*p.Col+1] = pathRune
		if i > 0 {
			q := o.Path[i-1]
			lattice[p.Row+q.Row+1][p.Col+q.Col+1] = pathRune
		}
	}

	rows := make([]string, latH)
	for y, row := range lattice {
		rows[y] = string(row)
	}

	return strings.Join(rows, "\n")
}
