package generate_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/mazegrid/dsu"
	"github.com/katalvlaran/mazegrid/generate" // package under test
	"github.com/katalvlaran/mazegrid/grid"
	"github.com/stretchr/testify/assert" // assertion library
	"github.com/stretchr/testify/require"
)

// twoBlobMask splits a grid into two disconnected vertical blobs by
// masking out the middle column.
func twoBlobMask(splitCol int) grid.ShapeMask {
	return func(row, col int) bool { return col != splitCol }
}

// wallSignature flattens the grid's wall state into a comparable string,
// recording the East and South bit of every cell (the other two directions
// follow from symmetry).
func wallSignature(g *grid.Grid) string {
	var sb strings.Builder
	for idx := 0; idx < g.CellCount(); idx++ {
		c := g.CellAt(idx)
		if g.Open(c, grid.East) {
			sb.WriteByte('E')
		} else {
			sb.WriteByte('.')
		}
		if g.Open(c, grid.South) {
			sb.WriteByte('S')
		} else {
			sb.WriteByte('.')
		}
	}

	return sb.String()
}

// requireSpanningTree asserts the perfect-maze invariants: exactly U−1 open
// walls, no cycle among them, and full connectivity of the unmasked region
// through open walls. The cycle/connectivity checks replay every open wall
// into a fresh disjoint-set: each must merge two distinct sets, and one set
// must remain.
func requireSpanningTree(t *testing.T, g *grid.Grid) {
	t.Helper()

	u := g.UnmaskedCount()
	require.Equal(t, u-1, g.OpenWallCount(), "a perfect maze opens exactly U−1 walls")

	cells := g.UnmaskedCells()
	compact := make(map[grid.Cell]int, len(cells))
	for i, c := range cells {
		compact[c] = i
	}
	ds, err := dsu.New(len(cells))
	require.NoError(t, err)

	for _, c := range cells {
		for _, d := range []grid.Direction{grid.East, grid.South} {
			if !g.Open(c, d) {
				continue
			}
			dr, dc := d.Delta()
			nb := grid.Cell{Row: c.Row + dr, Col: c.Col + dc}
			require.True(t, ds.Union(compact[c], compact[nb]),
				"open wall %v→%v closes a cycle", c, nb)
		}
	}
	assert.Equal(t, 1, ds.Count(), "all unmasked cells must share one set")
}

// TestGenerate_PerfectMaze verifies the spanning-tree invariants for every
// algorithm on rectangular and circularly masked grids.
func TestGenerate_PerfectMaze(t *testing.T) {
	algos := []generate.Algorithm{generate.Backtracker, generate.Kruskal, generate.GrowingTree}
	shapes := []struct {
		name          string
		width, height int
		mask          grid.ShapeMask
	}{
		{"Rect10x8", 10, 8, nil},
		{"Circle11", 11, 11, grid.CircleMask(11, 11)},
		{"Tall1x20", 1, 20, nil},
	}
	for _, algo := range algos {
		for _, sh := range shapes {
			t.Run(algo.String()+"/"+sh.name, func(t *testing.T) {
				g, err := grid.New(sh.width, sh.height, sh.mask)
				require.NoError(t, err)
				require.NoError(t, generate.Generate(g,
					generate.WithAlgorithm(algo),
					generate.WithSeed(7),
					generate.WithBias(0.5),
				))
				requireSpanningTree(t, g)
			})
		}
	}
}

// TestGenerate_Deterministic verifies byte-identical wall state for repeated
// runs with identical (dimensions, mask, algorithm, seed, bias).
func TestGenerate_Deterministic(t *testing.T) {
	for _, algo := range []generate.Algorithm{generate.Backtracker, generate.Kruskal, generate.GrowingTree} {
		t.Run(algo.String(), func(t *testing.T) {
			sigs := make([]string, 2)
			for i := range sigs {
				g, err := grid.New(12, 9, nil)
				require.NoError(t, err)
				require.NoError(t, generate.Generate(g,
					generate.WithAlgorithm(algo),
					generate.WithSeed(1234),
					generate.WithBias(0.3),
				))
				sigs[i] = wallSignature(g)
			}
			assert.Equal(t, sigs[0], sigs[1], "identical seed must reproduce the maze")
		})
	}
}

// TestGenerate_SeedsDiffer checks that distinct seeds carve distinct mazes
// (statistically certain on a 12×9 grid).
func TestGenerate_SeedsDiffer(t *testing.T) {
	run := func(seed int64) string {
		g, err := grid.New(12, 9, nil)
		require.NoError(t, err)
		require.NoError(t, generate.Generate(g, generate.WithSeed(seed)))

		return wallSignature(g)
	}
	assert.NotEqual(t, run(1), run(2))
}

// TestGrowingTree_BiasOneEqualsBacktracker verifies the degenerate case:
// bias 1.0 reproduces the Backtracker's wall state for the same seed.
func TestGrowingTree_BiasOneEqualsBacktracker(t *testing.T) {
	const seed = 99
	bt, err := grid.New(15, 10, nil)
	require.NoError(t, err)
	require.NoError(t, generate.Generate(bt,
		generate.WithAlgorithm(generate.Backtracker),
		generate.WithSeed(seed),
	))

	gt, err := grid.New(15, 10, nil)
	require.NoError(t, err)
	require.NoError(t, generate.Generate(gt,
		generate.WithAlgorithm(generate.GrowingTree),
		generate.WithSeed(seed),
		generate.WithBias(1.0),
	))

	assert.Equal(t, wallSignature(bt), wallSignature(gt))
}

// TestGenerate_Backtracker5x5Seed42 pins the concrete scenario: a 5×5 grid
// generated with seed 42 terminates with exactly 24 carved walls.
func TestGenerate_Backtracker5x5Seed42(t *testing.T) {
	g, err := grid.New(5, 5, nil)
	require.NoError(t, err)
	require.NoError(t, generate.Generate(g,
		generate.WithAlgorithm(generate.Backtracker),
		generate.WithSeed(42),
	))
	assert.Equal(t, 24, g.OpenWallCount())
	requireSpanningTree(t, g)
}

// TestGenerate_Disconnected verifies that a split unmasked region fails with
// ErrDisconnected and leaves the grid without a single carve, for every
// algorithm.
func TestGenerate_Disconnected(t *testing.T) {
	for _, algo := range []generate.Algorithm{generate.Backtracker, generate.Kruskal, generate.GrowingTree} {
		t.Run(algo.String(), func(t *testing.T) {
			g, err := grid.New(7, 5, twoBlobMask(3))
			require.NoError(t, err)
			err = generate.Generate(g, generate.WithAlgorithm(algo), generate.WithSeed(5))
			assert.ErrorIs(t, err, generate.ErrDisconnected)
			assert.Equal(t, 0, g.OpenWallCount(), "failed generation must not mutate the grid")
		})
	}
}

// TestGenerate_Validation covers the input-validation sentinels.
func TestGenerate_Validation(t *testing.T) {
	assert.ErrorIs(t, generate.Generate(nil), generate.ErrNilGrid)

	g, err := grid.New(4, 4, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, generate.Generate(g, generate.WithBias(1.5)), generate.ErrBadBias)
	assert.ErrorIs(t, generate.Generate(g, generate.WithBias(-0.1)), generate.ErrBadBias)
	assert.ErrorIs(t, generate.Generate(g, generate.WithAlgorithm(generate.Algorithm(99))), generate.ErrUnknownAlgorithm)

	empty, err := grid.New(3, 3, func(int, int) bool { return false })
	require.NoError(t, err)
	assert.ErrorIs(t, generate.Generate(empty), generate.ErrNoCells)
}

// TestGenerate_Hooks verifies carve and visit hook cardinality: U−1 carves,
// U first-visits.
func TestGenerate_Hooks(t *testing.T) {
	g, err := grid.New(8, 6, nil)
	require.NoError(t, err)

	carves, visits := 0, 0
	require.NoError(t, generate.Generate(g,
		generate.WithSeed(3),
		generate.WithOnCarve(func(a, b grid.Cell) { carves++ }),
		generate.WithOnVisit(func(c grid.Cell) { visits++ }),
	))
	assert.Equal(t, g.UnmaskedCount()-1, carves)
	assert.Equal(t, g.UnmaskedCount(), visits)
}

// TestParseAlgorithm round-trips every member of the closed set and rejects
// anything else.
func TestParseAlgorithm(t *testing.T) {
	for _, algo := range []generate.Algorithm{generate.Backtracker, generate.Kruskal, generate.GrowingTree} {
		got, err := generate.ParseAlgorithm(algo.String())
		require.NoError(t, err)
		assert.Equal(t, algo, got)
	}
	_, err := generate.ParseAlgorithm("wilson")
	assert.ErrorIs(t, err, generate.ErrUnknownAlgorithm)
}
