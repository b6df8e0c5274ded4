package solve_test

import (
	"testing"

	"github.com/katalvlaran/mazegrid/generate"
	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/solve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drainStepper pulls until exhaustion and returns the terminal state.
func drainStepper(t *testing.T, s *solve.Stepper) solve.StepState {
	t.Helper()
	var last solve.StepState
	for {
		st, ok := s.Step()
		if !ok {
			require.True(t, last.Done, "sequence must end with a terminal state")

			return last
		}
		last = st
	}
}

// TestStepper_MatchesSolve verifies that the stepper's terminal path and
// expansion count agree with the batch Solve for both algorithms.
func TestStepper_MatchesSolve(t *testing.T) {
	g, err := grid.New(11, 8, nil)
	require.NoError(t, err)
	require.NoError(t, generate.Generate(g, generate.WithSeed(33)))
	start := grid.Cell{Row: 0, Col: 0}
	goal := grid.Cell{Row: 7, Col: 10}

	for _, algo := range []solve.Algorithm{solve.BFS, solve.AStar} {
		t.Run(algo.String(), func(t *testing.T) {
			batch, err := solve.Solve(g, start, goal, solve.WithAlgorithm(algo))
			require.NoError(t, err)

			s, err := solve.NewStepper(g, start, goal, solve.WithAlgorithm(algo))
			require.NoError(t, err)
			last := drainStepper(t, s)

			require.True(t, last.Found)
			assert.Equal(t, batch.Path, last.Path)
			assert.Equal(t, len(batch.Visited), last.Expanded)
		})
	}
}

// TestStepper_NoPath verifies the terminal state on an unreachable goal.
func TestStepper_NoPath(t *testing.T) {
	g, err := grid.New(2, 1, nil) // single closed wall
	require.NoError(t, err)

	for _, algo := range []solve.Algorithm{solve.BFS, solve.AStar} {
		s, err := solve.NewStepper(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 1},
			solve.WithAlgorithm(algo))
		require.NoError(t, err)
		last := drainStepper(t, s)
		assert.True(t, last.Done)
		assert.False(t, last.Found)
		assert.Empty(t, last.Path)
	}
}

// TestStepper_Validation mirrors Solve's input validation.
func TestStepper_Validation(t *testing.T) {
	a := grid.Cell{Row: 0, Col: 0}
	_, err := solve.NewStepper(nil, a, a)
	assert.ErrorIs(t, err, solve.ErrNilGrid)

	g, gerr := grid.New(2, 2, nil)
	require.NoError(t, gerr)
	_, err = solve.NewStepper(g, a, grid.Cell{Row: 9, Col: 9})
	assert.ErrorIs(t, err, solve.ErrCellOutOfBounds)
}

// TestStepper_ProgressMonotonic verifies Expanded increases one per step
// until the terminal state.
func TestStepper_ProgressMonotonic(t *testing.T) {
	g, err := grid.New(6, 6, nil)
	require.NoError(t, err)
	require.NoError(t, generate.Generate(g, generate.WithSeed(4)))

	s, err := solve.NewStepper(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 5, Col: 5})
	require.NoError(t, err)

	prev := 0
	for {
		st, ok := s.Step()
		if !ok {
			break
		}
		if st.Done && !st.Found {
			break
		}
		assert.Equal(t, prev+1, st.Expanded)
		prev = st.Expanded
		if st.Done {
			break
		}
	}
	assert.Greater(t, prev, 0)
}
