// Package generate defines the Algorithm enum, functional Options, and
// sentinel errors for maze generation.
package generate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazegrid/grid"
)

// Sentinel errors for generation.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("generate: grid is nil")

	// ErrNoCells is returned when the mask excludes every cell.
	ErrNoCells = errors.New("generate: no unmasked cells to carve")

	// ErrDisconnected is returned when the unmasked region is not connected
	// under 4-adjacency, so no spanning tree can cover it. The grid is left
	// without a single carve.
	ErrDisconnected = errors.New("generate: unmasked region is disconnected")

	// ErrBadBias is returned when a GrowingTree bias outside [0,1] is supplied.
	ErrBadBias = errors.New("generate: bias must be in [0,1]")

	// ErrUnknownAlgorithm is returned for an Algorithm value outside the
	// closed set.
	ErrUnknownAlgorithm = errors.New("generate: unknown algorithm")
)

// Algorithm selects one of the closed set of maze generators.
type Algorithm uint8

const (
	// Backtracker is the recursive-backtracker (depth-first) generator.
	Backtracker Algorithm = iota
	// Kruskal is the shuffled-edge union-find generator.
	Kruskal
	// GrowingTree is the bias-parameterized Backtracker/Prim hybrid.
	GrowingTree
)

// String returns the lowercase algorithm name.
func (a Algorithm) String() string {
	switch a {
	case Backtracker:
		return "backtracker"
	case Kruskal:
		return "kruskal"
	case GrowingTree:
		return "growingtree"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps a lowercase name to its Algorithm value.
// Returns ErrUnknownAlgorithm for anything outside the closed set.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "backtracker":
		return Backtracker, nil
	case "kruskal":
		return Kruskal, nil
	case "growingtree":
		return GrowingTree, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Option configures generation behavior via functional arguments.
// An invalid Option (e.g. bias out of range) is recorded internally and
// surfaced when Generate or NewStepper is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize generation.
type Options struct {
	// Algorithm selects the generator. Default: Backtracker.
	Algorithm Algorithm

	// Seed drives the explicit RNG stream; 0 selects a fixed default seed
	// so reproducibility holds even for the zero value.
	Seed int64

	// Bias is the GrowingTree selection bias in [0,1]: 1.0 always grows
	// from the newest active cell (Backtracker behavior), 0.0 selects
	// uniformly from the active list (Prim-like). Ignored by Backtracker
	// and Kruskal.
	Bias float64

	// OnCarve is called after each wall is opened between a and b.
	OnCarve func(a, b grid.Cell)

	// OnVisit is called when a cell joins the spanning tree for the first
	// time (Backtracker/GrowingTree only; Kruskal has no visit order).
	OnVisit func(c grid.Cell)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Backtracker algorithm
//   - Seed 0 (fixed default stream)
//   - Bias 1.0 (newest-cell selection)
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Algorithm: Backtracker,
		Seed:      0,
		Bias:      1.0,
		OnCarve:   func(grid.Cell, grid.Cell) {},
		OnVisit:   func(grid.Cell) {},
		err:       nil,
	}
}

// WithAlgorithm selects the generator.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// WithSeed sets the RNG seed. Seed 0 keeps the fixed default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithBias sets the GrowingTree selection bias.
//
//	b == 1.0:    always the newest active cell (Backtracker texture)
//	b == 0.0:    uniform over the active list (Prim-like texture)
//	0 < b < 1:   newest with probability b, else uniform
//	b ∉ [0,1]:   invalid option → ErrBadBias
func WithBias(b float64) Option {
	return func(o *Options) {
		if b < 0 || b > 1 {
			o.err = fmt.Errorf("%w: got %v", ErrBadBias, b)
			return
		}
		o.Bias = b
	}
}

// WithOnCarve registers a callback to run after each carved wall.
func WithOnCarve(fn func(a, b grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCarve = fn
		}
	}
}

// WithOnVisit registers a callback to run when a cell first joins the tree.
func WithOnVisit(fn func(c grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
