package terrain

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/katalvlaran/hillclimb/grid"
)

// Parse reads a terrain map from r, one row per line.
// Trailing blank lines and '\r' line endings are ignored.
// See FromLines for validation rules and errors.
func Parse(r io.Reader) (*Map, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("terrain: read input: %w", err)
	}

	return FromLines(lines)
}

// FromLines builds a Map from rows of symbols.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrInvalidSymbol (wrapped with
// the offending position), ErrMissingMarker or ErrDuplicateMarker.
// Exactly one StartSymbol and one GoalSymbol are required.
// Complexity: O(rows×cols).
func FromLines(lines []string) (*Map, error) {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	rows := make([][]rune, len(lines))
	for y, line := range lines {
		rows[y] = []rune(line)
	}

	symbols, err := grid.FromRows(rows)
	switch {
	case errors.Is(err, grid.ErrEmptyGrid):
		return nil, ErrEmptyGrid
	case errors.Is(err, grid.ErrNonRectangular):
		return nil, fmt.Errorf("%w: %v", ErrNonRectangular, err)
	case err != nil:
		return nil, err
	}

	h, w := symbols.Size()
	heights, err := grid.New[int](h, w)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sym, _ := symbols.Get(y, x)
			v, err := Height(sym)
			if err != nil {
				return nil, fmt.Errorf("%w at row %d, column %d", err, y, x)
			}
			_ = heights.Set(y, x, v)
		}
	}

	start, err := unique(symbols, StartSymbol)
	if err != nil {
		return nil, err
	}
	goal, err := unique(symbols, GoalSymbol)
	if err != nil {
		return nil, err
	}

	return &Map{symbols: symbols, heights: heights, start: start, goal: goal}, nil
}

// unique locates the single cell holding sym.
func unique(symbols *grid.Grid[rune], sym rune) (grid.Coord, error) {
	found := symbols.FindAll(func(r rune) bool { return r == sym })
	switch len(found) {
	case 0:
		return grid.Coord{}, fmt.Errorf("%w: %q", ErrMissingMarker, sym)
	case 1:
		return found[0], nil
	default:
		return grid.Coord{}, fmt.Errorf("%w: %q at %v and %v", ErrDuplicateMarker, sym, found[0], found[1])
	}
}

// Size returns the number of rows and columns.
func (m *Map) Size() (rows, cols int) {
	return m.heights.Size()
}

// InBounds reports whether c lies within the map.
func (m *Map) InBounds(c grid.Coord) bool {
	return m.heights.InBounds(c)
}

// Height returns the elevation of c. c must be in bounds.
func (m *Map) Height(c grid.Coord) int {
	return m.heights.At(c)
}

// Symbol returns the original symbol at c. c must be in bounds.
func (m *Map) Symbol(c grid.Coord) rune {
	return m.symbols.At(c)
}

// Start returns the position of the StartSymbol.
func (m *Map) Start() grid.Coord { return m.start }

// Goal returns the position of the GoalSymbol.
func (m *Map) Goal() grid.Coord { return m.goal }

// Find returns every cell holding sym, in row-major order.
func (m *Map) Find(sym rune) []grid.Coord {
	return m.symbols.FindAll(func(r rune) bool { return r == sym })
}

// Lowest returns every cell at MinHeight (the start marker and every 'a'),
// in row-major order.
func (m *Map) Lowest() []grid.Coord {
	return m.heights.FindAll(func(h int) bool { return h == MinHeight })
}

// String renders the map back to its textual form.
func (m *Map) String() string {
	return m.Overlay(nil)
}

// Overlay renders the map with every cell in marks upper-cased.
// Markers are left untouched.
func (m *Map) Overlay(marks []grid.Coord) string {
	h, w := m.Size()
	marked := make(map[grid.Coord]bool, len(marks))
	for _, c := range marks {
		marked[c] = true
	}

	var b strings.Builder
	b.Grow(h * (w + 1))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := grid.Coord{X: x, Y: y}
			sym := m.symbols.At(c)
			if marked[c] && sym != StartSymbol && sym != GoalSymbol {
				sym = unicode.ToUpper(sym)
			}
			b.WriteRune(sym)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
