package grid

// Grid is a fixed-size rectangular lattice of cells with per-side wall flags.
// Walls start fully closed; generators open them via Carve. Masked cells are
// recorded at construction and excluded from every adjacency query.
//
// A Grid is not safe for concurrent mutation; a generation or solve
// invocation owns the Grid exclusively for its duration.
type Grid struct {
	width, height int
	// walls holds one byte per cell; bit d set means the wall toward
	// Direction d is open. Symmetry is maintained by Carve.
	walls []uint8
	// masked marks cells outside the playable shape.
	masked []bool
	// unmasked caches the playable cell count.
	unmasked int
}

// New constructs a Grid of width columns and height rows, all walls closed.
// mask (may be nil) excludes cells from the playable region; it is evaluated
// exactly once per cell here and never retained.
// Returns ErrInvalidDimension if width or height is non-positive or exceeds
// MaxDimension, before any allocation.
// Complexity: O(W×H) time and memory.
func New(width, height int, mask ShapeMask) (*Grid, error) {
	// 1. Fail fast on dimensions, before allocating anything.
	if width <= 0 || height <= 0 || width > MaxDimension || height > MaxDimension {
		return nil, ErrInvalidDimension
	}

	// 2. Allocate flat row-major wall and mask storage.
	total := width * height
	g := &Grid{
		width:  width,
		height: height,
		walls:  make([]uint8, total),
		masked: make([]bool, total),
	}

	// 3. Evaluate the mask once per cell and cache the playable count.
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			if mask != nil && !mask(r, c) {
				g.masked[r*width+c] = true
				continue
			}
			g.unmasked++
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// CellCount returns width×height, masked cells included.
func (g *Grid) CellCount() int { return g.width * g.height }

// UnmaskedCount returns the number of playable cells.
func (g *Grid) UnmaskedCount() int { return g.unmasked }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// Masked reports whether c is excluded from the playable region.
// Out-of-bounds cells are reported as masked.
// Complexity: O(1).
func (g *Grid) Masked(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.masked[g.Index(c)]
}

// Index maps c to its row-major index: Row*Width + Col.
// Only defined for in-bounds cells. Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Row*g.width + c.Col
}

// CellAt converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) CellAt(idx int) Cell {
	return Cell{Row: idx / g.width, Col: idx % g.width}
}

// Neighbors returns the adjacent, in-bounds, unmasked cells of c, in the
// fixed N,E,S,W order. At most 4 cells. Masked or out-of-bounds c yields nil.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	if g.Masked(c) {
		return nil
	}
	out := make([]Cell, 0, directionCount)
	for _, d := range Directions {
		dr, dc := d.Delta()
		nb := Cell{Row: c.Row + dr, Col: c.Col + dc}
		if g.InBounds(nb) && !g.masked[g.Index(nb)] {
			out = append(out, nb)
		}
	}

	return out
}

// dirBetween returns the direction from a to b when the two cells are
// orthogonally adjacent, and ok=false otherwise.
func dirBetween(a, b Cell) (Direction, bool) {
	dr, dc := b.Row-a.Row, b.Col-a.Col
	for _, d := range Directions {
		if delta := deltas[d]; delta[0] == dr && delta[1] == dc {
			return d, true
		}
	}

	return 0, false
}

// Carve opens the wall between adjacent cells a and b, on both sides, so the
// symmetric-wall invariant holds. Behavior is undefined for non-adjacent or
// masked cells — callers select b from Neighbors(a); a non-adjacent pair is
// ignored rather than corrupting wall state.
// Complexity: O(1).
func (g *Grid) Carve(a, b Cell) {
	d, ok := dirBetween(a, b)
	if !ok || g.Masked(a) || g.Masked(b) {
		return
	}
	g.walls[g.Index(a)] |= 1 << d
	g.walls[g.Index(b)] |= 1 << d.Opposite()
}

// IsOpen reports whether the wall between adjacent cells a and b is open.
// Non-adjacent, masked, or out-of-bounds pairs report false.
// Complexity: O(1).
func (g *Grid) IsOpen(a, b Cell) bool {
	d, ok := dirBetween(a, b)
	if !ok || g.Masked(a) || g.Masked(b) {
		return false
	}

	return g.walls[g.Index(a)]&(1<<d) != 0
}

// Open reports whether the wall of c toward direction d is open.
// Complexity: O(1).
func (g *Grid) Open(c Cell, d Direction) bool {
	if g.Masked(c) {
		return false
	}

	return g.walls[g.Index(c)]&(1<<d) != 0
}

// OpenWallCount returns the number of open walls, counting each adjacent
// pair once. For a perfect maze over U unmasked cells this is exactly U−1.
// Complexity: O(W×H).
func (g *Grid) OpenWallCount() int {
	count := 0
	for _, w := range g.walls {
		// Count East and South bits only, so each pair is seen once.
		if w&(1<<East) != 0 {
			count++
		}
		if w&(1<<South) != 0 {
			count++
		}
	}

	return count
}

// UnmaskedCells returns every playable cell in row-major order.
// The fixed order backs the seeded-determinism guarantees of generate/.
// Complexity: O(W×H) time, O(U) memory.
func (g *Grid) UnmaskedCells() []Cell {
	out := make([]Cell, 0, g.unmasked)
	for idx := range g.masked {
		if !g.masked[idx] {
			out = append(out, g.CellAt(idx))
		}
	}

	return out
}

// Clone returns a deep copy of g: wall and mask state are independent of the
// original. Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	dup := &Grid{
		width:    g.width,
		height:   g.height,
		walls:    make([]uint8, len(g.walls)),
		masked:   make([]bool, len(g.masked)),
		unmasked: g.unmasked,
	}
	copy(dup.walls, g.walls)
	copy(dup.masked, g.masked)

	return dup
}

// Connected reports whether the unmasked region is connected under
// 4-adjacency, ignoring walls. This is the precondition every generator
// requires; an empty region is trivially connected.
// Complexity: O(W×H) time and memory.
func (g *Grid) Connected() bool {
	if g.unmasked == 0 {
		return true
	}
	// Flood from the first unmasked cell.
	start := -1
	for idx, m := range g.masked {
		if !m {
			start = idx
			break
		}
	}
	seen := make([]bool, g.CellCount())
	seen[start] = true
	queue := []int{start}
	reached := 1
	for qi := 0; qi < len(queue); qi++ {
		for _, nb := range g.Neighbors(g.CellAt(queue[qi])) {
			ni := g.Index(nb)
			if !seen[ni] {
				seen[ni] = true
				reached++
				queue = append(queue, ni)
			}
		}
	}

	return reached == g.unmasked
}
