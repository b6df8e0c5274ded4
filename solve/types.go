// Package solve defines the Algorithm and Heuristic enums, functional
// Options, the Result type, and sentinel errors for maze solving.
package solve

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazegrid/grid"
)

// Sentinel errors for solving.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("solve: grid is nil")

	// ErrCellOutOfBounds is returned when start or goal lies outside the grid.
	ErrCellOutOfBounds = errors.New("solve: cell out of bounds")

	// ErrMaskedCell is returned when start or goal is excluded by the mask.
	ErrMaskedCell = errors.New("solve: cell is masked")

	// ErrUnknownAlgorithm is returned for an Algorithm value outside the
	// closed set.
	ErrUnknownAlgorithm = errors.New("solve: unknown algorithm")

	// ErrUnknownHeuristic is returned for a Heuristic value outside the
	// closed set.
	ErrUnknownHeuristic = errors.New("solve: unknown heuristic")
)

// Algorithm selects one of the closed set of solvers.
type Algorithm uint8

const (
	// BFS is breadth-first search: minimum edge count on unweighted grids.
	BFS Algorithm = iota
	// AStar is best-first search keyed by f = g + h.
	AStar
)

// String returns the lowercase algorithm name.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "bfs"
	case AStar:
		return "astar"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps a lowercase name to its Algorithm value.
// Returns ErrUnknownAlgorithm for anything outside the closed set.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "bfs":
		return BFS, nil
	case "astar":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Heuristic selects the A* distance estimate. All three are admissible on
// unit-cost 4-connected grids; Manhattan is the tightest and the default.
type Heuristic uint8

const (
	// Manhattan is |Δrow| + |Δcol| — exact lower bound for 4-connected moves.
	Manhattan Heuristic = iota
	// Euclidean is ⌊√(Δrow²+Δcol²)⌋ — admissible but looser than Manhattan.
	Euclidean
	// Chebyshev is max(|Δrow|,|Δcol|) — admissible but looser than Manhattan.
	Chebyshev
)

// String returns the lowercase heuristic name.
func (h Heuristic) String() string {
	switch h {
	case Manhattan:
		return "manhattan"
	case Euclidean:
		return "euclidean"
	case Chebyshev:
		return "chebyshev"
	default:
		return "unknown"
	}
}

// Result holds the outcome of one solve invocation:
//   - Path: ordered cells from start to goal; empty when unreachable.
//   - Visited: cells in expansion order, kept even when no path exists.
//   - Cost: path length in edges; −1 when unreachable, 0 when start == goal.
type Result struct {
	Path    []grid.Cell
	Visited []grid.Cell
	Cost    int
}

// Option configures solver behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a solve.
type Options struct {
	// Algorithm selects the solver. Default: BFS.
	Algorithm Algorithm

	// Heuristic selects the A* estimate. Ignored by BFS.
	Heuristic Heuristic

	// OnEnqueue is called when a cell enters the frontier.
	OnEnqueue func(c grid.Cell)

	// OnDequeue is called when a cell is taken from the frontier for
	// expansion.
	OnDequeue func(c grid.Cell)
}

// DefaultOptions returns Options with sane defaults:
//   - BFS algorithm
//   - Manhattan heuristic
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Algorithm: BFS,
		Heuristic: Manhattan,
		OnEnqueue: func(grid.Cell) {},
		OnDequeue: func(grid.Cell) {},
	}
}

// WithAlgorithm selects the solver.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// WithHeuristic selects the A* distance estimate.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithOnEnqueue registers a callback to run when a cell enters the frontier.
func WithOnEnqueue(fn func(c grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run when a cell leaves the frontier.
func WithOnDequeue(fn func(c grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}
