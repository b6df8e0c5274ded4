package mazetext_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/mazetext"
)

func mustGrid(t *testing.T, w, h int, mask grid.ShapeMask) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, h, mask)
	if err != nil {
		t.Fatalf("grid.New(%d,%d): %v", w, h, err)
	}
	return g
}

func TestRender_NoCarves(t *testing.T) {
	g := mustGrid(t, 2, 1, nil)

	want := strings.Join([]string{
		"█████",
		"█ █ █",
		"█████",
	}, "\n")
	if got := mazetext.Render(g); got != want {
		t.Errorf("Render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_CarvedCorridor(t *testing.T) {
	g := mustGrid(t, 2, 1, nil)
	g.Carve(grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 1})

	want := strings.Join([]string{
		"█████",
		"█   █",
		"█████",
	}, "\n")
	if got := mazetext.Render(g); got != want {
		t.Errorf("Render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_VerticalCarve(t *testing.T) {
	g := mustGrid(t, 1, 2, nil)
	g.Carve(grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 1, Col: 0})

	want := strings.Join([]string{
		"███",
		"█ █",
		"█ █",
		"█ █",
		"███",
	}, "\n")
	if got := mazetext.Render(g); got != want {
		t.Errorf("Render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_MaskedCellStaysSolid(t *testing.T) {
	g := mustGrid(t, 2, 1, grid.MaskFromCells([]grid.Cell{{Row: 0, Col: 0}}))

	want := strings.Join([]string{
		"█████",
		"█ ███",
		"█████",
	}, "\n")
	if got := mazetext.Render(g); got != want {
		t.Errorf("Render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_PathOverlay(t *testing.T) {
	g := mustGrid(t, 2, 1, nil)
	g.Carve(grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 1})

	path := []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}
	want := strings.Join([]string{
		"█████",
		"█...█",
		"█████",
	}, "\n")
	if got := mazetext.Render(g, mazetext.WithPath(path)); got != want {
		t.Errorf("Render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_Entrances(t *testing.T) {
	g := mustGrid(t, 1, 1, nil)

	want := strings.Join([]string{
		"█ █",
		"█ █",
		"█ █",
	}, "\n")
	if got := mazetext.Render(g, mazetext.WithEntrances()); got != want {
		t.Errorf("Render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_DoesNotMutateGrid(t *testing.T) {
	g := mustGrid(t, 3, 3, nil)
	g.Carve(grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 1})
	before := g.OpenWallCount()

	_ = mazetext.Render(g, mazetext.WithEntrances(), mazetext.WithPath([]grid.Cell{{Row: 0, Col: 0}}))

	if got := g.OpenWallCount(); got != before {
		t.Errorf("Render mutated grid: OpenWallCount %d, want %d", got, before)
	}
}

func TestRender_LatticeDimensions(t *testing.T) {
	g := mustGrid(t, 4, 3, nil)

	lines := strings.Split(mazetext.Render(g), "\n")
	if len(lines) != 2*3+1 {
		t.Fatalf("lattice height = %d, want %d", len(lines), 2*3+1)
	}
	for i, ln := range lines {
		if n := len([]rune(ln)); n != 2*4+1 {
			t.Errorf("row %d width = %d, want %d", i, n, 2*4+1)
		}
	}
}
