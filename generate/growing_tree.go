package generate

import (
	"math/rand"

	"github.com/katalvlaran/mazegrid/grid"
)

// growingTree carves a spanning tree by repeatedly selecting a cell from an
// explicit active list (heap-allocated, so 400×400 grids never risk
// call-stack exhaustion), carving to a random unvisited neighbor, and
// retiring cells with no unvisited neighbor.
//
// Selection policy: bias 1.0 always takes the newest active cell, which is
// exactly the Recursive Backtracker's stack discipline; bias 0.0 selects
// uniformly (Prim-like); intermediate values mix the two probabilistically.
// Bias controls maze texture, never correctness.
//
// Steps:
//  1. Verify the connectivity precondition with one flood; a disconnected
//     region fails before the first carve, leaving g untouched.
//  2. Seed the active list with one random unmasked cell.
//  3. Loop: select per bias; carve to a random unvisited neighbor and
//     activate it, or retire the cell if none remain.
//  4. Terminal when the active list empties; every unmasked cell has been
//     visited exactly once and exactly U−1 walls are open.
//
// Complexity: O(U) carves; each cell enters and leaves the active list once,
// but a uniform-selection removal splices mid-list, so worst case O(U²) list
// movement at bias 0. Memory: O(U).
func growingTree(g *grid.Grid, rng *rand.Rand, bias float64, o Options) error {
	// 1. Precondition: a spanning tree needs a connected region.
	if !g.Connected() {
		return ErrDisconnected
	}

	// 2. Seed with a random start cell.
	cells := g.UnmaskedCells()
	start := cells[rng.Intn(len(cells))]
	visited := make([]bool, g.CellCount())
	visited[g.Index(start)] = true
	o.OnVisit(start)
	active := make([]grid.Cell, 0, len(cells))
	active = append(active, start)

	// 3. Grow until no active cell remains.
	carved := 0
	for len(active) > 0 {
		idx := pickActive(len(active), bias, rng)
		cur := active[idx]

		// Unvisited neighbors, in the fixed N,E,S,W order.
		var next []grid.Cell
		for _, nb := range g.Neighbors(cur) {
			if !visited[g.Index(nb)] {
				next = append(next, nb)
			}
		}

		if len(next) == 0 {
			// Retire: splice out, preserving list order for determinism.
			active = append(active[:idx], active[idx+1:]...)
			continue
		}

		nb := next[rng.Intn(len(next))]
		g.Carve(cur, nb)
		carved++
		o.OnCarve(cur, nb)
		visited[g.Index(nb)] = true
		o.OnVisit(nb)
		active = append(active, nb)
	}

	// 4. Spanning-tree invariant; unreachable after the precondition check.
	if carved != len(cells)-1 {
		return ErrDisconnected
	}

	return nil
}
