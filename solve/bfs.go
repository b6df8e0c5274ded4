// Package solve provides the BFS solver: level-order traversal over open walls.
package solve

import (
	"github.com/katalvlaran/mazegrid/grid"
)

// bfsSolve runs breadth-first search from start, following only open walls.
//
// Steps:
//  1. Seed a slice-backed FIFO with start (visited, parent −1).
//  2. Dequeue; record the expansion; stop when the goal is dequeued.
//  3. Enqueue each unvisited neighbor reachable through an open wall, in the
//     fixed N,E,S,W order, recording its predecessor.
//  4. An emptied frontier without reaching goal yields the no-path Result:
//     empty Path, Cost −1, non-empty Visited trace.
//
// BFS explores in non-decreasing distance order on the unweighted grid, so
// the returned path has minimum edge count.
//
// Complexity: O(U) time and memory.
func bfsSolve(g *grid.Grid, start, goal grid.Cell, o Options) *Result {
	n := g.CellCount()
	visited := make([]bool, n)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}

	startIdx := g.Index(start)
	goalIdx := g.Index(goal)

	// 1. Seed the frontier.
	queue := make([]int, 0, g.UnmaskedCount())
	queue = append(queue, startIdx)
	visited[startIdx] = true
	o.OnEnqueue(start)

	order := make([]grid.Cell, 0, g.UnmaskedCount())
	for qi := 0; qi < len(queue); qi++ {
		curIdx := queue[qi]
		cur := g.CellAt(curIdx)
		o.OnDequeue(cur)
		order = append(order, cur)

		// 2. Early exit once the goal is dequeued.
		if curIdx == goalIdx {
			path := reconstruct(g, parent, goalIdx)

			return &Result{Path: path, Visited: order, Cost: len(path) - 1}
		}

		// 3. Expand through open walls only.
		for _, nb := range g.Neighbors(cur) {
			nbIdx := g.Index(nb)
			if visited[nbIdx] || !g.IsOpen(cur, nb) {
				continue
			}
			visited[nbIdx] = true
			parent[nbIdx] = curIdx
			o.OnEnqueue(nb)
			queue = append(queue, nbIdx)
		}
	}

	// 4. Searched and failed.
	return &Result{Path: nil, Visited: order, Cost: -1}
}
