package solve

import (
	"math"

	"github.com/katalvlaran/mazegrid/grid"
)

// estimate returns the selected heuristic's distance estimate from a to b.
// Callers validate the Heuristic value before the search loop, so the
// default branch is unreachable in practice.
// Complexity: O(1).
func estimate(h Heuristic, a, b grid.Cell) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}

	switch h {
	case Manhattan:
		return dr + dc
	case Euclidean:
		// Floor keeps the estimate integral and admissible: ⌊d⌋ ≤ d ≤ cost.
		return int(math.Sqrt(float64(dr*dr + dc*dc)))
	case Chebyshev:
		if dr > dc {
			return dr
		}

		return dc
	default:
		return 0
	}
}

// validHeuristic reports membership in the closed Heuristic set.
func validHeuristic(h Heuristic) bool {
	switch h {
	case Manhattan, Euclidean, Chebyshev:
		return true
	default:
		return false
	}
}
