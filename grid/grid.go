package grid

import "fmt"

// New returns a rows×cols grid filled with the zero value of T.
// Returns ErrEmptyGrid if either dimension is less than one.
// Complexity: O(rows×cols) time and memory.
func New[T any](rows, cols int) (*Grid[T], error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}

	return &Grid[T]{rows: rows, cols: cols, cells: make([]T, rows*cols)}, nil
}

// FromRows builds a grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later changes to values do not leak in.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
func FromRows[T any](values [][]T) (*Grid[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	g := &Grid[T]{rows: h, cols: w, cells: make([]T, 0, h*w)}
	for _, row := range values {
		g.cells = append(g.cells, row...)
	}

	return g, nil
}

// Size returns the number of rows and columns.
func (g *Grid[T]) Size() (rows, cols int) {
	return g.rows, g.cols
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.cols && c.Y >= 0 && c.Y < g.rows
}

// Get returns the value at (row, col), or ErrOutOfBounds.
func (g *Grid[T]) Get(row, col int) (T, error) {
	c := Coord{X: col, Y: row}
	if !g.InBounds(c) {
		var zero T
		return zero, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, row, col, g.rows, g.cols)
	}

	return g.cells[g.Index(c)], nil
}

// Set stores v at (row, col), or returns ErrOutOfBounds.
func (g *Grid[T]) Set(row, col int, v T) error {
	c := Coord{X: col, Y: row}
	if !g.InBounds(c) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	g.cells[g.Index(c)] = v

	return nil
}

// At returns the value at c without a bounds check.
// Callers must ensure InBounds(c); it panics otherwise.
func (g *Grid[T]) At(c Coord) T {
	return g.cells[g.Index(c)]
}

// Index maps c to its row-major index: Y*cols + X.
// Complexity: O(1).
func (g *Grid[T]) Index(c Coord) int {
	return c.Y*g.cols + c.X
}

// Coord converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid[T]) Coord(idx int) Coord {
	return Coord{X: idx % g.cols, Y: idx / g.cols}
}

// Each calls fn for every cell in row-major order.
func (g *Grid[T]) Each(fn func(c Coord, v T)) {
	for i, v := range g.cells {
		fn(g.Coord(i), v)
	}
}

// Find returns the first cell, in row-major order, whose value satisfies match.
func (g *Grid[T]) Find(match func(T) bool) (Coord, bool) {
	for i, v := range g.cells {
		if match(v) {
			return g.Coord(i), true
		}
	}

	return Coord{}, false
}

// FindAll returns every cell whose value satisfies match, in row-major order.
func (g *Grid[T]) FindAll(match func(T) bool) []Coord {
	var out []Coord
	for i, v := range g.cells {
		if match(v) {
			out = append(out, g.Coord(i))
		}
	}

	return out
}
