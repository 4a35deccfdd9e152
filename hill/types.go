// Package hill provides tunable options and error definitions
// for climbing searches over a height map.
package hill

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/hillclimb/grid"
)

// Coord is a (column, row) cell address.
type Coord = grid.Coord

// HeightMap is the read-only elevation source a Finder walks.
// Height is only ever called with in-bounds coordinates.
type HeightMap interface {
	Size() (rows, cols int)
	Height(c Coord) int
}

// Sentinel errors for Finder construction.
var (
	// ErrNilHeightMap is returned if a nil height map is passed.
	ErrNilHeightMap = errors.New("hill: height map is nil")

	// ErrEmptyHeightMap is returned when the map has no rows or no columns.
	ErrEmptyHeightMap = errors.New("hill: height map is empty")

	// ErrGoalOutOfBounds is returned when the goal lies outside the map.
	ErrGoalOutOfBounds = errors.New("hill: goal out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("hill: invalid option supplied")
)

// Option configures a Finder via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by NewFinder.
type Option func(*Options)

// Options holds parameters and callbacks that customise a Finder.
type Options struct {
	// MaxClimb is how much higher a neighbour may be than the current cell.
	// Descending is never limited.
	MaxClimb int

	// OnEnqueue is called when a cell is discovered, with its depth from the start.
	OnEnqueue func(c Coord, depth int)

	// OnDequeue is called when a cell is popped from the frontier.
	OnDequeue func(c Coord, depth int)

	// Trim enables Trim post-processing in FindFromAny at TrimHeight.
	Trim       bool
	TrimHeight int

	// Logger receives per-search debug records from FindFromAny.
	Logger *zap.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - MaxClimb 1
//   - no-op hooks
//   - trimming disabled
//   - a no-op logger.
func DefaultOptions() Options {
	return Options{
		MaxClimb:  1,
		OnEnqueue: func(Coord, int) {},
		OnDequeue: func(Coord, int) {},
		Logger:    zap.NewNop(),
	}
}

// WithMaxClimb sets the largest allowed height gain per step.
//
//	n >= 0: allowed
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxClimb(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxClimb cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxClimb = n
	}
}

// WithOnEnqueue registers a callback to run when a cell is discovered.
func WithOnEnqueue(fn func(c Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run when a cell is expanded.
func WithOnDequeue(fn func(c Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithTrimHeight makes FindFromAny shorten every found path at the last
// cell of height h (see Trim).
func WithTrimHeight(h int) Option {
	return func(o *Options) {
		o.Trim = true
		o.TrimHeight = h
	}
}

// WithLogger sets the logger used by FindFromAny.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is the outcome of FindFromAny.
//   - Start: the start the winning path begins at (after trimming, if enabled).
//   - Path: cells from next-to-Start through the goal.
//   - Length: len(Path), the step count.
//   - Searches: how many FindPath calls ran.
//   - Pruned: how many of those returned no path (unreachable or bound hit).
type Result struct {
	Start    Coord
	Path     []Coord
	Length   int
	Searches int
	Pruned   int
}
