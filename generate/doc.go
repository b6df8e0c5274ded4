// Package generate carves perfect mazes into a grid.Grid using seeded
// spanning-tree algorithms.
//
// What:
//
//   - Three generators behind one closed Algorithm enum:
//     – Backtracker: depth-first carving on an explicit stack; long corridors.
//     – Kruskal: seeded edge shuffle + union-find cycle test; structure
//     independent of spatial locality.
//     – GrowingTree: generalization of Backtracker/Prim; Bias interpolates
//     between always-newest selection (1.0, corridor-heavy, identical to
//     Backtracker) and uniform-random selection (0.0, Prim-like branching).
//   - Every successful run yields a perfect maze: exactly U−1 open walls for
//     U unmasked cells, acyclic, fully connected.
//   - Steppers expose the same algorithms as pull-based event sequences for
//     progressive rendering; see NewStepper.
//
// Why:
//
//   - Spanning-tree carving guarantees exactly one simple path between any
//     two cells, the defining property downstream solvers rely on.
//
// Determinism:
//
//	Randomness comes from one explicit *rand.Rand built from Options.Seed
//	(seed 0 maps to a fixed default). Identical seed, dimensions, mask,
//	algorithm, and bias reproduce byte-identical wall states, because
//	grid.Neighbors enumerates in a fixed N,E,S,W order and edge enumeration
//	is row-major.
//
// Complexity (U = unmasked cells):
//
//   - Backtracker / GrowingTree: O(U) carves, O(U) memory for stack+visited.
//   - Kruskal: O(E) shuffle + O(E·α(U)) union-find over E ≤ 2U edges.
//
// Options:
//
//   - DefaultOptions(): Backtracker, seed 0 (fixed default stream), bias 1.0,
//     no-op hooks.
//   - WithAlgorithm(a):  select the generator.
//   - WithSeed(s):       seed the RNG stream explicitly.
//   - WithBias(b):       GrowingTree selection bias in [0,1]; ignored by the
//     other algorithms.
//   - WithOnCarve(fn):   hook per opened wall.
//   - WithOnVisit(fn):   hook per first visit of a cell.
//
// Errors:
//
//   - ErrNilGrid:          nil grid pointer.
//   - ErrNoCells:          the mask excludes every cell.
//   - ErrDisconnected:     the unmasked region is not connected, so no
//     spanning tree covers it; the grid is left uncarved.
//   - ErrBadBias:          bias outside [0,1].
//   - ErrUnknownAlgorithm: Algorithm value outside the closed set.
package generate
