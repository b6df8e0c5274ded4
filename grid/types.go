// Package grid defines the core cell, direction, and mask types plus the
// sentinel errors for grid construction.
package grid

import (
	"errors"
	"fmt"
)

// MaxDimension caps grid width and height to bound memory
// (400×400 = 160,000 cells at one byte of wall flags each).
const MaxDimension = 400

// ErrInvalidDimension indicates a non-positive or over-cap width/height.
// Returned by New before any allocation occurs.
var ErrInvalidDimension = errors.New("grid: width and height must be in 1..400")

// Direction identifies one of the four orthogonal wall sides of a cell.
type Direction uint8

const (
	// North is the direction of decreasing row.
	North Direction = iota
	// East is the direction of increasing column.
	East
	// South is the direction of increasing row.
	South
	// West is the direction of decreasing column.
	West
)

// directionCount is the number of orthogonal directions (and wall bits per cell).
const directionCount = 4

// deltas holds the (row, col) offset for each Direction, indexed by its value.
var deltas = [directionCount][2]int{
	North: {-1, 0},
	East:  {0, 1},
	South: {1, 0},
	West:  {0, -1},
}

// Directions lists all four directions in the fixed N,E,S,W enumeration order
// used throughout the library. Do not mutate.
var Directions = [directionCount]Direction{North, East, South, West}

// Delta returns the (row, col) offset of moving one cell in direction d.
// Complexity: O(1).
func (d Direction) Delta() (dr, dc int) {
	return deltas[d][0], deltas[d][1]
}

// Opposite returns the reverse direction (North↔South, East↔West).
// Complexity: O(1).
func (d Direction) Opposite() Direction {
	return (d + 2) % directionCount
}

// String returns the direction name for diagnostics.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Cell identifies one grid position by (row, column). The zero value is the
// top-left cell. Cell is a small value type and is passed by value everywhere.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)" for diagnostics.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// ShapeMask reports whether cell (row, col) belongs to the playable shape.
// A nil ShapeMask means every in-bounds cell is playable.
// Masks must be pure functions: Grid evaluates them once, at construction.
type ShapeMask func(row, col int) bool
