// Package solve provides Stepper, a pull-based view of a search: one node
// expansion per call, no background goroutines, caller-controlled pacing.
package solve

import (
	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/pqueue"
)

// StepState is one intermediate search state.
type StepState struct {
	// Current is the cell expanded by this step (zero on the terminal
	// no-path state).
	Current grid.Cell
	// Frontier is the number of entries awaiting expansion after this step
	// (stale lazy entries included for AStar).
	Frontier int
	// Expanded is the running count of expansions.
	Expanded int
	// Done marks the terminal state; Found tells whether goal was reached.
	Done, Found bool
	// Path is the start→goal path, set only on the terminal Found state.
	Path []grid.Cell
}

// Stepper produces the finite expansion sequence of one search. The final
// produced state carries Done=true; afterwards Step reports ok=false.
// Searches never mutate the grid, so abandoning a Stepper mid-way has no
// cleanup cost, and rebuilding one restarts the identical sequence.
type Stepper struct {
	impl interface {
		step() (StepState, bool)
	}
}

// NewStepper validates inputs exactly as Solve does and returns a Stepper
// over the selected algorithm's expansion sequence.
func NewStepper(g *grid.Grid, start, goal grid.Cell, opts ...Option) (*Stepper, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateEndpoints(g, start, goal); err != nil {
		return nil, err
	}

	switch o.Algorithm {
	case BFS:
		return &Stepper{impl: newBFSStepper(g, start, goal, o)}, nil
	case AStar:
		if !validHeuristic(o.Heuristic) {
			return nil, ErrUnknownHeuristic
		}

		return &Stepper{impl: newAStarStepper(g, start, goal, o)}, nil
	default:
		return nil, ErrUnknownAlgorithm
	}
}

// Step advances the search by one expansion. ok=false once exhausted.
func (s *Stepper) Step() (StepState, bool) {
	return s.impl.step()
}

//----------------------------------------------------------------------------//
// BFS stepper
//----------------------------------------------------------------------------//

type bfsStepper struct {
	g        *grid.Grid
	o        Options
	goalIdx  int
	queue    []int
	qi       int
	visited  []bool
	parent   []int
	expanded int
	done     bool
}

func newBFSStepper(g *grid.Grid, start, goal grid.Cell, o Options) *bfsStepper {
	n := g.CellCount()
	st := &bfsStepper{
		g:       g,
		o:       o,
		goalIdx: g.Index(goal),
		visited: make([]bool, n),
		parent:  make([]int, n),
	}
	for i := range st.parent {
		st.parent[i] = -1
	}
	startIdx := g.Index(start)
	st.queue = append(st.queue, startIdx)
	st.visited[startIdx] = true
	o.OnEnqueue(start)

	return st
}

func (st *bfsStepper) step() (StepState, bool) {
	if st.done {
		return StepState{}, false
	}
	if st.qi >= len(st.queue) {
		st.done = true

		return StepState{Expanded: st.expanded, Done: true}, true
	}

	curIdx := st.queue[st.qi]
	st.qi++
	cur := st.g.CellAt(curIdx)
	st.o.OnDequeue(cur)
	st.expanded++

	if curIdx == st.goalIdx {
		st.done = true

		return StepState{
			Current:  cur,
			Frontier: len(st.queue) - st.qi,
			Expanded: st.expanded,
			Done:     true,
			Found:    true,
			Path:     reconstruct(st.g, st.parent, st.goalIdx),
		}, true
	}

	for _, nb := range st.g.Neighbors(cur) {
		nbIdx := st.g.Index(nb)
		if st.visited[nbIdx] || !st.g.IsOpen(cur, nb) {
			continue
		}
		st.visited[nbIdx] = true
		st.parent[nbIdx] = curIdx
		st.o.OnEnqueue(nb)
		st.queue = append(st.queue, nbIdx)
	}

	return StepState{Current: cur, Frontier: len(st.queue) - st.qi, Expanded: st.expanded}, true
}

//----------------------------------------------------------------------------//
// A* stepper
//----------------------------------------------------------------------------//

type astarStepper struct {
	g        *grid.Grid
	o        Options
	goal     grid.Cell
	goalIdx  int
	frontier *pqueue.Queue
	best     []int
	parent   []int
	expanded int
	done     bool
}

func newAStarStepper(g *grid.Grid, start, goal grid.Cell, o Options) *astarStepper {
	n := g.CellCount()
	st := &astarStepper{
		g:        g,
		o:        o,
		goal:     goal,
		goalIdx:  g.Index(goal),
		frontier: pqueue.New(),
		best:     make([]int, n),
		parent:   make([]int, n),
	}
	for i := range st.best {
		st.best[i] = -1
		st.parent[i] = -1
	}
	st.best[g.Index(start)] = 0
	st.frontier.Push(start, 0, estimate(o.Heuristic, start, goal))
	o.OnEnqueue(start)

	return st
}

func (st *astarStepper) step() (StepState, bool) {
	if st.done {
		return StepState{}, false
	}

	// Skip stale lazy entries until a live one or exhaustion.
	for st.frontier.Len() > 0 {
		it, err := st.frontier.Pop()
		if err != nil {
			break
		}
		curIdx := st.g.Index(it.Cell)
		if it.G > st.best[curIdx] {
			continue
		}
		st.o.OnDequeue(it.Cell)
		st.expanded++

		if curIdx == st.goalIdx {
			st.done = true

			return StepState{
				Current:  it.Cell,
				Frontier: st.frontier.Len(),
				Expanded: st.expanded,
				Done:     true,
				Found:    true,
				Path:     reconstruct(st.g, st.parent, st.goalIdx),
			}, true
		}

		for _, nb := range st.g.Neighbors(it.Cell) {
			if !st.g.IsOpen(it.Cell, nb) {
				continue
			}
			nbIdx := st.g.Index(nb)
			tentative := it.G + 1
			if st.best[nbIdx] != -1 && tentative >= st.best[nbIdx] {
				continue
			}
			st.best[nbIdx] = tentative
			st.parent[nbIdx] = curIdx
			st.frontier.Push(nb, tentative, estimate(st.o.Heuristic, nb, st.goal))
			st.o.OnEnqueue(nb)
		}

		return StepState{Current: it.Cell, Frontier: st.frontier.Len(), Expanded: st.expanded}, true
	}

	st.done = true

	return StepState{Expanded: st.expanded, Done: true}, true
}
