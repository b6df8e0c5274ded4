// Package generate provides Stepper, a pull-based view of generation for
// progressive rendering: one event per call, no background goroutines, and
// the caller controls pacing. Stopping early just means ceasing to pull.
package generate

import (
	"math/rand"

	"github.com/katalvlaran/mazegrid/dsu"
	"github.com/katalvlaran/mazegrid/grid"
)

// StepKind identifies one kind of generation event.
type StepKind uint8

const (
	// StepVisit marks the seed cell joining the tree (To is set).
	StepVisit StepKind = iota
	// StepCarve marks a wall opened between From and To; To joins the tree.
	StepCarve
	// StepRetreat marks an exhausted cell (From) leaving the active list.
	StepRetreat
	// StepSkip marks a Kruskal candidate edge rejected by the cycle test.
	StepSkip
)

// StepState is one intermediate generation state.
type StepState struct {
	Kind     StepKind
	From, To grid.Cell
	// Carved is the running count of opened walls.
	Carved int
}

// Stepper produces the finite event sequence of one generation run.
// It carves the grid incrementally as events are pulled; a run abandoned
// mid-way, or one ending in Err() != nil, leaves a partial maze the caller
// must discard (Generate is the atomic variant). Rebuilding a Stepper with
// the same grid shape and options restarts the identical sequence from seed.
type Stepper struct {
	impl interface {
		step() (StepState, bool)
	}
	errFn func() error
}

// NewStepper validates g and opts exactly as Generate does and returns a
// Stepper over the selected algorithm's event sequence.
func NewStepper(g *grid.Grid, opts ...Option) (*Stepper, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g.UnmaskedCount() == 0 {
		return nil, ErrNoCells
	}
	rng := rngFromSeed(o.Seed)

	switch o.Algorithm {
	case Backtracker:
		return newGrowingTreeStepper(g, rng, 1.0)
	case GrowingTree:
		return newGrowingTreeStepper(g, rng, o.Bias)
	case Kruskal:
		return newKruskalStepper(g, rng)
	default:
		return nil, ErrUnknownAlgorithm
	}
}

// Step advances the generation by one event. The second return is false once
// the sequence is exhausted; check Err afterwards.
func (s *Stepper) Step() (StepState, bool) {
	return s.impl.step()
}

// Err reports a generation failure detected during stepping
// (ErrDisconnected for Kruskal edge exhaustion); nil otherwise.
func (s *Stepper) Err() error {
	return s.errFn()
}

//----------------------------------------------------------------------------//
// Growing Tree / Backtracker stepper
//----------------------------------------------------------------------------//

// growingTreeStepper replays the growingTree loop one event at a time.
// Its RNG consumption order matches the batch implementation exactly, so a
// fully drained Stepper produces a wall state byte-identical to Generate
// with the same options.
type growingTreeStepper struct {
	g       *grid.Grid
	rng     *rand.Rand
	bias    float64
	cells   []grid.Cell
	visited []bool
	active  []grid.Cell
	carved  int
	started bool
}

func newGrowingTreeStepper(g *grid.Grid, rng *rand.Rand, bias float64) (*Stepper, error) {
	// Same precondition as the batch path: fail before the first carve.
	if !g.Connected() {
		return nil, ErrDisconnected
	}
	impl := &growingTreeStepper{
		g:       g,
		rng:     rng,
		bias:    bias,
		cells:   g.UnmaskedCells(),
		visited: make([]bool, g.CellCount()),
	}

	return &Stepper{impl: impl, errFn: func() error { return nil }}, nil
}

func (st *growingTreeStepper) step() (StepState, bool) {
	// First event: seed the active list with a random start cell.
	if !st.started {
		st.started = true
		start := st.cells[st.rng.Intn(len(st.cells))]
		st.visited[st.g.Index(start)] = true
		st.active = append(st.active, start)

		return StepState{Kind: StepVisit, To: start}, true
	}

	for len(st.active) > 0 {
		idx := pickActive(len(st.active), st.bias, st.rng)
		cur := st.active[idx]

		var next []grid.Cell
		for _, nb := range st.g.Neighbors(cur) {
			if !st.visited[st.g.Index(nb)] {
				next = append(next, nb)
			}
		}

		if len(next) == 0 {
			st.active = append(st.active[:idx], st.active[idx+1:]...)

			return StepState{Kind: StepRetreat, From: cur, Carved: st.carved}, true
		}

		nb := next[st.rng.Intn(len(next))]
		st.g.Carve(cur, nb)
		st.carved++
		st.visited[st.g.Index(nb)] = true
		st.active = append(st.active, nb)

		return StepState{Kind: StepCarve, From: cur, To: nb, Carved: st.carved}, true
	}

	return StepState{}, false
}

//----------------------------------------------------------------------------//
// Kruskal stepper
//----------------------------------------------------------------------------//

// kruskalStepper examines one shuffled candidate edge per step, carving
// accepted edges immediately. Unlike the batch kruskal, carving is
// incremental; on ErrDisconnected the grid holds a partial forest.
type kruskalStepper struct {
	g        *grid.Grid
	edges    []wallEdge
	compact  []int
	ds       *dsu.DisjointSet
	i        int
	accepted int
	target   int
	err      error
}

func newKruskalStepper(g *grid.Grid, rng *rand.Rand) (*Stepper, error) {
	cells := g.UnmaskedCells()
	edges := candidateEdges(g)
	shuffleEdgesInPlace(edges, rng)

	compact := make([]int, g.CellCount())
	for i := range compact {
		compact[i] = -1
	}
	for i, c := range cells {
		compact[g.Index(c)] = i
	}
	ds, err := dsu.New(len(cells))
	if err != nil {
		return nil, err
	}

	impl := &kruskalStepper{
		g:       g,
		edges:   edges,
		compact: compact,
		ds:      ds,
		target:  len(cells) - 1,
	}

	return &Stepper{impl: impl, errFn: func() error { return impl.err }}, nil
}

func (st *kruskalStepper) step() (StepState, bool) {
	if st.accepted == st.target {
		return StepState{}, false
	}
	if st.i == len(st.edges) {
		// Candidates exhausted before a full spanning tree: disconnected input.
		if st.err == nil {
			st.err = ErrDisconnected
		}

		return StepState{}, false
	}

	e := st.edges[st.i]
	st.i++
	if st.ds.Union(st.compact[st.g.Index(e.a)], st.compact[st.g.Index(e.b)]) {
		st.g.Carve(e.a, e.b)
		st.accepted++

		return StepState{Kind: StepCarve, From: e.a, To: e.b, Carved: st.accepted}, true
	}

	return StepState{Kind: StepSkip, From: e.a, To: e.b, Carved: st.accepted}, true
}
