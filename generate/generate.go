package generate

import (
	"math/rand"

	"github.com/katalvlaran/mazegrid/grid"
)

// Generate carves g into a perfect maze in place, applying any number of
// functional Options. On success the open-wall graph over the unmasked
// region is a spanning tree: exactly U−1 open walls, acyclic, connected.
//
// Error Conditions:
//   - ErrNilGrid          : g is nil.
//   - ErrBadBias          : WithBias outside [0,1].
//   - ErrNoCells          : the mask excludes every cell.
//   - ErrDisconnected     : the unmasked region is not connected; g keeps
//     every wall closed (no partial mutation).
//   - ErrUnknownAlgorithm : Options.Algorithm outside the closed set.
//
// Steps:
//  1. Validate the grid pointer and build Options, surfacing option errors.
//  2. Reject empty unmasked regions.
//  3. Build the seeded RNG stream (seed 0 ⇒ fixed default).
//  4. Dispatch by Algorithm: Backtracker runs GrowingTree with bias pinned
//     to 1.0 (the two are the same procedure at that bias), Kruskal runs the
//     shuffled-edge union-find loop.
//
// Complexity: O(U) for Backtracker/GrowingTree, O(E·α(U)) for Kruskal.
func Generate(g *grid.Grid, opts ...Option) error {
	// 1. Validate input and options.
	if g == nil {
		return ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}

	// 2. An all-masked grid has nothing to carve.
	if g.UnmaskedCount() == 0 {
		return ErrNoCells
	}

	// 3. One explicit RNG stream per generation.
	rng := rngFromSeed(o.Seed)

	// 4. Dispatch by algorithm.
	switch o.Algorithm {
	case Backtracker:
		return growingTree(g, rng, 1.0, o)
	case GrowingTree:
		return growingTree(g, rng, o.Bias, o)
	case Kruskal:
		return kruskal(g, rng, o)
	default:
		return ErrUnknownAlgorithm
	}
}

// pickActive selects an index into an active list of length n according to
// the GrowingTree bias. bias ≥ 1 never consumes randomness for the pick, so
// the bias=1.0 RNG stream is identical to the Backtracker's.
//
// Complexity: O(1).
func pickActive(n int, bias float64, rng *rand.Rand) int {
	switch {
	case bias >= 1.0:
		return n - 1
	case bias <= 0.0:
		return rng.Intn(n)
	default:
		if rng.Float64() < bias {
			return n - 1
		}

		return rng.Intn(n)
	}
}
