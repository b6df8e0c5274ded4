// Package solve dispatches shortest-path search across the closed Algorithm set.
package solve

import (
	"fmt"

	"github.com/katalvlaran/mazegrid/grid"
)

// Solve searches g for a shortest path from start to goal, applying any
// number of functional Options. The grid is treated as immutable: solving
// never mutates wall state, and all solver-local structures are discarded
// when Solve returns.
//
// An unreachable goal is not an error: the Result carries an empty Path,
// Cost −1, and the full expansion trace.
//
// Error Conditions:
//   - ErrNilGrid          : g is nil.
//   - ErrCellOutOfBounds  : start or goal outside the grid.
//   - ErrMaskedCell       : start or goal excluded by the shape mask.
//   - ErrUnknownAlgorithm : Options.Algorithm outside the closed set.
//   - ErrUnknownHeuristic : Options.Heuristic outside the closed set (AStar).
//
// Complexity: O(U) for BFS, O(U log U) for AStar.
func Solve(g *grid.Grid, start, goal grid.Cell, opts ...Option) (*Result, error) {
	// 1. Validate inputs and build options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateEndpoints(g, start, goal); err != nil {
		return nil, err
	}

	// 2. Dispatch by algorithm.
	switch o.Algorithm {
	case BFS:
		return bfsSolve(g, start, goal, o), nil
	case AStar:
		if !validHeuristic(o.Heuristic) {
			return nil, ErrUnknownHeuristic
		}

		return astarSolve(g, start, goal, o), nil
	default:
		return nil, ErrUnknownAlgorithm
	}
}

// validateEndpoints checks the grid pointer and both endpoints.
func validateEndpoints(g *grid.Grid, start, goal grid.Cell) error {
	if g == nil {
		return ErrNilGrid
	}
	for _, c := range [2]grid.Cell{start, goal} {
		if !g.InBounds(c) {
			return fmt.Errorf("%w: (%d,%d)", ErrCellOutOfBounds, c.Row, c.Col)
		}
		if g.Masked(c) {
			return fmt.Errorf("%w: (%d,%d)", ErrMaskedCell, c.Row, c.Col)
		}
	}

	return nil
}

// reconstruct walks predecessor links from goal back to the root (parent −1)
// and reverses the sequence into start→goal order.
// Complexity: O(path length).
func reconstruct(g *grid.Grid, parent []int, goalIdx int) []grid.Cell {
	var path []grid.Cell
	for cur := goalIdx; cur != -1; cur = parent[cur] {
		path = append(path, g.CellAt(cur))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
