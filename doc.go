// Package mazegrid is your in-memory toolkit for generating and solving
// grid mazes — rectangular or shaped by a mask — with fully reproducible,
// seeded algorithms.
//
// 🚀 What is mazegrid?
//
//	A small, deterministic library that brings together:
//		• Grid primitives: cells, directional walls, shape masks (incl. circular)
//		• Generators: Recursive Backtracker, Kruskal (union-find), Growing Tree
//		• Solvers: BFS and A* (Manhattan / Euclidean / Chebyshev heuristics)
//		• Steppers: pull-based, one-event-at-a-time views for animation
//		• Text rendering: ASCII lattice output for quick inspection
//
// ✨ Why choose mazegrid?
//
//   - Reproducible – every algorithm takes an explicit seed, no hidden RNG state
//   - Rock-solid guarantees – every generator yields a perfect maze (spanning tree)
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – add custom hooks (OnCarve, OnVisit, OnEnqueue…) for custom logic
//
// Under the hood, everything is organized under small subpackages:
//
//	grid/     — Grid, Cell and Direction types, shape masks, adjacency queries
//	dsu/      — disjoint-set (union-find) used by Kruskal
//	pqueue/   — deterministic min-heap used by A*
//	generate/ — the three maze generators behind one Algorithm enum
//	solve/    — BFS and A* behind one Algorithm enum
//	mazetext/ — ASCII rendering of grids and solution paths
//
// Quick ASCII example (3×2 maze, walls '█', passages ' '):
//
//	███████
//	█     █
//	███ █ █
//	█   █ █
//	███████
//
// A minimal end-to-end run:
//
//	g, _ := grid.New(10, 10, nil)
//	_ = generate.Generate(g, generate.WithSeed(42))
//	res, _ := solve.Solve(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 9, Col: 9})
//	fmt.Println(mazetext.Render(g, mazetext.WithPath(res.Path)))
//
//	go get github.com/katalvlaran/mazegrid
package mazegrid
