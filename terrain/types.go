// Package terrain defines symbols, height bounds and sentinel errors
// for parsing elevation maps.
package terrain

import (
	"errors"

	"github.com/katalvlaran/hillclimb/grid"
)

// Terrain symbols.
const (
	// StartSymbol marks the single start cell; it sits at MinHeight.
	StartSymbol = 'S'
	// GoalSymbol marks the single goal cell; it sits at MaxHeight.
	GoalSymbol = 'E'
)

// Height bounds: 'a' is MinHeight, 'z' is MaxHeight.
const (
	MinHeight = 0
	MaxHeight = 25
)

// Sentinel errors for terrain parsing.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("terrain: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("terrain: all rows must have the same length")
	// ErrInvalidSymbol indicates a character that is not S, E or a lowercase letter.
	ErrInvalidSymbol = errors.New("terrain: invalid symbol")
	// ErrMissingMarker indicates the start or goal marker is absent.
	ErrMissingMarker = errors.New("terrain: marker not found")
	// ErrDuplicateMarker indicates the start or goal marker appears more than once.
	ErrDuplicateMarker = errors.New("terrain: marker appears more than once")
)

// Map is an immutable elevation map: the original symbols, their heights,
// and the positions of the start and goal markers.
type Map struct {
	symbols *grid.Grid[rune]
	heights *grid.Grid[int]
	start   grid.Coord
	goal    grid.Coord
}
