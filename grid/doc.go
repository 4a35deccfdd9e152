// Package grid provides a small generic 2D container and the Coord value
// type shared by the terrain parser and the hill pathfinder.
//
// What:
//
//   - Coord{X, Y}: column and row of a cell, comparable and map-friendly.
//   - Grid[T]: dense row-major storage with bounds-checked Get/Set,
//     an unchecked At for hot loops, and Index/Coord conversions so that
//     search scratch data can live in flat slices.
//   - Find / FindAll: row-major scans used for marker discovery.
//
// Errors:
//
//   - ErrEmptyGrid: zero rows or zero columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrOutOfBounds: Get/Set outside the grid.
//
// Complexity:
//
//   - Get, Set, At, Index, Coord: O(1).
//   - Find, FindAll, Each: O(rows×cols).
package grid
