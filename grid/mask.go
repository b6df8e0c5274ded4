package grid

// CircleMask returns a ShapeMask admitting cells inside the ellipse inscribed
// in a width×height grid (a circle when width == height). The boundary test
// uses cell centers against semi-axes of width/2 and height/2, so the shape
// always touches the middle of each grid side and the unmasked region stays
// connected under 4-adjacency for width, height ≥ 1.
// Complexity of the returned mask: O(1) per cell.
func CircleMask(width, height int) ShapeMask {
	// Center and semi-axes in cell coordinates.
	cx := float64(width-1) / 2
	cy := float64(height-1) / 2
	rx := float64(width) / 2
	ry := float64(height) / 2

	return func(row, col int) bool {
		dx := (float64(col) - cx) / rx
		dy := (float64(row) - cy) / ry

		return dx*dx+dy*dy <= 1.0
	}
}

// MaskFromCells returns a ShapeMask admitting exactly the given cells.
// Useful for irregular shapes supplied as explicit coordinate sets.
func MaskFromCells(cells []Cell) ShapeMask {
	allowed := make(map[Cell]struct{}, len(cells))
	for _, c := range cells {
		allowed[c] = struct{}{}
	}

	return func(row, col int) bool {
		_, ok := allowed[Cell{Row: row, Col: col}]

		return ok
	}
}
