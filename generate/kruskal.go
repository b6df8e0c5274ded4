// Package generate provides the Kruskal generator: a seeded shuffle of all
// candidate walls filtered through a union-find cycle test.
package generate

import (
	"math/rand"

	"github.com/katalvlaran/mazegrid/dsu"
	"github.com/katalvlaran/mazegrid/grid"
)

// wallEdge is an ordered pair of adjacent unmasked cells — the unit of
// carving during Kruskal generation. Generation-time only.
type wallEdge struct {
	a, b grid.Cell
}

// candidateEdges enumerates every wall between adjacent unmasked cells in
// row-major order, looking East and South only so each wall appears once.
// The fixed enumeration order is part of the determinism contract.
//
// Complexity: O(W×H) time, O(E) memory with E ≤ 2U.
func candidateEdges(g *grid.Grid) []wallEdge {
	edges := make([]wallEdge, 0, 2*g.UnmaskedCount())
	for _, c := range g.UnmaskedCells() {
		for _, d := range []grid.Direction{grid.East, grid.South} {
			dr, dc := d.Delta()
			nb := grid.Cell{Row: c.Row + dr, Col: c.Col + dc}
			if !g.Masked(nb) {
				edges = append(edges, wallEdge{a: c, b: nb})
			}
		}
	}

	return edges
}

// kruskal carves a spanning tree by shuffling all candidate edges with the
// seeded RNG and accepting each edge whose endpoints lie in different sets.
// The resulting structure depends on the shuffle, not on spatial locality —
// the texture contrast to the Backtracker's corridors.
//
// Atomicity: the acceptance loop is pure union-find bookkeeping; walls are
// carved only after the full spanning tree is accepted, so ErrDisconnected
// leaves g without a single carve.
//
// Steps:
//  1. Enumerate candidate edges (East/South per cell) and shuffle them.
//  2. Union-find acceptance: find(a) != find(b) ⇒ accept and union; stop at
//     U−1 accepted edges.
//  3. Exhausting candidates before U−1 acceptances signals a disconnected
//     region → ErrDisconnected.
//  4. Commit: carve every accepted edge, firing OnCarve in acceptance order.
//
// Complexity: O(E) shuffle + O(E·α(U)) union-find. Memory: O(E + U).
func kruskal(g *grid.Grid, rng *rand.Rand, o Options) error {
	cells := g.UnmaskedCells()
	n := len(cells)
	// A single cell is a trivial (edgeless) spanning tree.
	if n == 1 {
		return nil
	}

	// 1. Candidate walls in seeded random order.
	edges := candidateEdges(g)
	shuffleEdgesInPlace(edges, rng)

	// Compact the unmasked cells to 0..n-1 for the slice-based DSU.
	compact := make([]int, g.CellCount())
	for i := range compact {
		compact[i] = -1
	}
	for i, c := range cells {
		compact[g.Index(c)] = i
	}
	ds, err := dsu.New(n)
	if err != nil {
		return err
	}

	// 2. Accept edges whose endpoints are in different sets.
	accepted := make([]wallEdge, 0, n-1)
	for _, e := range edges {
		if len(accepted) == n-1 {
			break
		}
		if ds.Union(compact[g.Index(e.a)], compact[g.Index(e.b)]) {
			accepted = append(accepted, e)
		}
	}

	// 3. Fewer than U−1 acceptances ⇒ the region was disconnected.
	if len(accepted) < n-1 {
		return ErrDisconnected
	}

	// 4. Commit the spanning tree to the grid.
	for _, e := range accepted {
		g.Carve(e.a, e.b)
		o.OnCarve(e.a, e.b)
	}

	return nil
}
