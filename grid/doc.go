// Package grid models a rectangular maze grid of cells separated by walls,
// optionally restricted to a playable shape by a mask.
//
// What:
//
//   - Grid owns a fixed width×height collection of cells with 4 directional
//     wall flags each (N/E/S/W); all walls start closed.
//   - ShapeMask excludes cells from the playable region (e.g. CircleMask
//     produces a circular maze boundary); masked cells never take part in
//     adjacency, carving, or solving.
//   - Neighbors returns adjacent, in-bounds, unmasked cells in a fixed
//     N,E,S,W order — the enumeration order every determinism guarantee in
//     generate/ and solve/ rests on.
//   - Carve opens the wall between two adjacent cells on both sides, so the
//     wall state stays symmetric: open on A→B iff open on B→A.
//
// Why:
//
//   - Foundation for the spanning-tree generators in generate/ and the
//     shortest-path solvers in solve/.
//   - Row-major Index/CellAt mapping gives algorithms flat-slice bookkeeping
//     without map allocations in hot loops.
//
// Complexity:
//
//   - New:            O(W×H) time and memory.
//   - Neighbors:      O(1) (at most 4 candidates).
//   - Carve / IsOpen: O(1).
//   - Connected:      O(W×H) flood over the unmasked region.
//
// Errors:
//
//   - ErrInvalidDimension: width or height non-positive or above MaxDimension.
//
// See: the generate and solve packages for the algorithms that consume Grid.
package grid
