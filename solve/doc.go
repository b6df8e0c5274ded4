// Package solve computes shortest paths through a carved maze with BFS or A*.
//
// What:
//
//   - Two solvers behind one closed Algorithm enum:
//     – BFS: level-order traversal; minimum edge count by construction.
//     – AStar: priority frontier keyed by f = g + h over the deterministic
//     heap in pqueue; optimal whenever the heuristic is admissible.
//   - Result carries the path (start to goal), the ordered expansion trace
//     for instrumentation/visualization, and the path cost in edges.
//   - "No path" is a Result with an empty Path and Cost −1, never an error:
//     callers can distinguish "searched and failed" from "not searched".
//   - Stepper exposes one node expansion per pull for progressive rendering.
//
// Why:
//
//   - On unit-cost 4-connected grids the Manhattan heuristic is admissible
//     and consistent, so A* returns paths exactly as short as BFS, typically
//     with fewer expansions.
//
// Determinism:
//
//	Neighbor enumeration follows grid.Neighbors' fixed N,E,S,W order and the
//	A* frontier breaks f-ties by lower h, then insertion order, so visit
//	traces are fully reproducible.
//
// Complexity (U = unmasked cells):
//
//   - BFS:   O(U) time, O(U) memory.
//   - AStar: O(U log U) time, O(U) memory (lazy-deletion frontier; stale
//     entries are skipped on extraction against the best-g bookkeeping).
//
// Options:
//
//   - DefaultOptions(): BFS, Manhattan heuristic, no-op hooks.
//   - WithAlgorithm(a): select BFS or AStar.
//   - WithHeuristic(h): Manhattan (default), Euclidean, or Chebyshev; the
//     alternatives stay admissible on unit-cost 4-connected grids but are
//     weaker, so they expand more nodes.
//   - WithOnEnqueue(fn) / WithOnDequeue(fn): frontier hooks.
//
// Errors:
//
//   - ErrNilGrid:          nil grid pointer.
//   - ErrCellOutOfBounds:  start or goal outside the grid.
//   - ErrMaskedCell:       start or goal excluded by the shape mask.
//   - ErrUnknownAlgorithm: Algorithm value outside the closed set.
//   - ErrUnknownHeuristic: Heuristic value outside the closed set.
package solve
