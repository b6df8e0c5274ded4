package generate_test

import (
	"testing"

	"github.com/katalvlaran/mazegrid/generate"
	"github.com/katalvlaran/mazegrid/grid"
)

// benchGenerate carves a fresh 200×200 grid per iteration with the given
// algorithm. Allocation of the grid dominates far less than the carve loop.
func benchGenerate(b *testing.B, algo generate.Algorithm) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g, err := grid.New(200, 200, nil)
		if err != nil {
			b.Fatalf("setup New failed: %v", err)
		}
		if err := generate.Generate(g,
			generate.WithAlgorithm(algo),
			generate.WithSeed(42),
			generate.WithBias(0.5),
		); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkGenerate_Backtracker measures depth-first carving. O(U).
func BenchmarkGenerate_Backtracker(b *testing.B) { benchGenerate(b, generate.Backtracker) }

// BenchmarkGenerate_Kruskal measures shuffle + union-find carving. O(E·α(U)).
func BenchmarkGenerate_Kruskal(b *testing.B) { benchGenerate(b, generate.Kruskal) }

// BenchmarkGenerate_GrowingTree measures mixed-selection carving at bias 0.5.
func BenchmarkGenerate_GrowingTree(b *testing.B) { benchGenerate(b, generate.GrowingTree) }
