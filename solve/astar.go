// Package solve provides the A* solver over the deterministic pqueue frontier.
package solve

import (
	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/pqueue"
)

// astarSolve runs best-first search keyed by f = g + h.
//
// Steps:
//  1. Push start with g=0 and its heuristic estimate; best-g array tracks
//     the cheapest known cost per cell.
//  2. Pop the minimum-(f,h,seq) item; skip stale entries whose g exceeds
//     the recorded best (lazy deletion — the queue has no decrease-key).
//  3. If the popped cell is the goal, reconstruct via predecessor links.
//  4. Otherwise relax each neighbor behind an open wall: an improved
//     tentative g updates predecessor and best-g and re-pushes the cell.
//  5. An emptied frontier yields the no-path Result.
//
// With an admissible, consistent heuristic (Manhattan on unit-cost
// 4-connected grids) every expansion is final, so the returned path cost is
// optimal and equals the BFS edge count.
//
// Complexity: O(U log U) time, O(U) memory.
func astarSolve(g *grid.Grid, start, goal grid.Cell, o Options) *Result {
	n := g.CellCount()
	best := make([]int, n)
	parent := make([]int, n)
	for i := range best {
		best[i] = -1
		parent[i] = -1
	}

	startIdx := g.Index(start)
	goalIdx := g.Index(goal)

	// 1. Seed the frontier.
	frontier := pqueue.New()
	best[startIdx] = 0
	frontier.Push(start, 0, estimate(o.Heuristic, start, goal))
	o.OnEnqueue(start)

	order := make([]grid.Cell, 0, g.UnmaskedCount())
	for frontier.Len() > 0 {
		it, err := frontier.Pop()
		if err != nil {
			// Unreachable: guarded by Len. Kept as the contract's backstop.
			break
		}
		curIdx := g.Index(it.Cell)

		// 2. Lazy deletion: only the entry matching best-g is live.
		if it.G > best[curIdx] {
			continue
		}
		o.OnDequeue(it.Cell)
		order = append(order, it.Cell)

		// 3. Goal reached: the popped g is the optimal cost.
		if curIdx == goalIdx {
			return &Result{Path: reconstruct(g, parent, goalIdx), Visited: order, Cost: it.G}
		}

		// 4. Relax neighbors through open walls.
		for _, nb := range g.Neighbors(it.Cell) {
			if !g.IsOpen(it.Cell, nb) {
				continue
			}
			nbIdx := g.Index(nb)
			tentative := it.G + 1
			if best[nbIdx] != -1 && tentative >= best[nbIdx] {
				continue
			}
			best[nbIdx] = tentative
			parent[nbIdx] = curIdx
			frontier.Push(nb, tentative, estimate(o.Heuristic, nb, goal))
			o.OnEnqueue(nb)
		}
	}

	// 5. Searched and failed.
	return &Result{Path: nil, Visited: order, Cost: -1}
}
