// Package grid defines the coordinate type, sentinel errors and the generic
// dense container used by the terrain and hill packages.
package grid

import (
	"errors"
	"strconv"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a (row, col) address outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
)

// Coord addresses a single cell: X is the column, Y is the row.
// It is a plain value; two Coords are equal when their fields are.
type Coord struct {
	X, Y int
}

// Adjacent reports whether c and o differ by exactly one unit on exactly one axis.
func (c Coord) Adjacent(o Coord) bool {
	dx, dy := abs(c.X-o.X), abs(c.Y-o.Y)

	return dx+dy == 1
}

// String formats c as "(x,y)".
func (c Coord) String() string {
	return "(" + strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y) + ")"
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Grid is a dense, row-major 2D container of T.
// Cells are addressed either by (row, col) or by Coord{X: col, Y: row}.
type Grid[T any] struct {
	rows, cols int
	cells      []T
}
