package terrain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/grid"
	"github.com/katalvlaran/hillclimb/terrain"
)

const sample = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

// TestHeight covers the symbol → elevation mapping.
func TestHeight(t *testing.T) {
	cases := []struct {
		sym  rune
		want int
	}{
		{'S', 0},
		{'E', 25},
		{'a', 0},
		{'b', 1},
		{'m', 12},
		{'z', 25},
	}
	for _, tc := range cases {
		got, err := terrain.Height(tc.sym)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "Height(%q)", tc.sym)
	}

	for _, sym := range []rune{'A', 'Z', '.', '0', ' ', 'é'} {
		_, err := terrain.Height(sym)
		require.ErrorIs(t, err, terrain.ErrInvalidSymbol, "Height(%q)", sym)
	}
}

func TestParse_Sample(t *testing.T) {
	m, err := terrain.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	rows, cols := m.Size()
	require.Equal(t, 5, rows)
	require.Equal(t, 8, cols)
	require.Equal(t, grid.Coord{X: 0, Y: 0}, m.Start())
	require.Equal(t, grid.Coord{X: 5, Y: 2}, m.Goal())
	require.Equal(t, 0, m.Height(m.Start()))
	require.Equal(t, 25, m.Height(m.Goal()))
	require.Equal(t, 'q', m.Symbol(grid.Coord{X: 3, Y: 0}))
	require.Equal(t, 16, m.Height(grid.Coord{X: 3, Y: 0}))
	require.True(t, m.InBounds(grid.Coord{X: 7, Y: 4}))
	require.False(t, m.InBounds(grid.Coord{X: 8, Y: 0}))

	// S plus five 'a' cells down the left edge and one in the top row.
	require.Len(t, m.Lowest(), 6)
	require.Equal(t, m.Start(), m.Lowest()[0])
	require.Len(t, m.Find('a'), 5)

	require.Equal(t, sample, m.String())
}

func TestParse_CRLFAndTrailingBlank(t *testing.T) {
	m, err := terrain.Parse(strings.NewReader("Sb\r\nzE\r\n\r\n\n"))
	require.NoError(t, err)
	rows, cols := m.Size()
	require.Equal(t, 2, rows)
	require.Equal(t, 2, cols)
}

// TestFromLines_Errors verifies that malformed maps are rejected.
func TestFromLines_Errors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		err   error
	}{
		{"Empty", nil, terrain.ErrEmptyGrid},
		{"OnlyBlank", []string{"", ""}, terrain.ErrEmptyGrid},
		{"Ragged", []string{"Sab", "cE"}, terrain.ErrNonRectangular},
		{"BadSymbol", []string{"Sa#", "bcE"}, terrain.ErrInvalidSymbol},
		{"NoStart", []string{"aab", "bcE"}, terrain.ErrMissingMarker},
		{"NoGoal", []string{"Sab", "bcd"}, terrain.ErrMissingMarker},
		{"TwoStarts", []string{"SaS", "bcE"}, terrain.ErrDuplicateMarker},
		{"TwoGoals", []string{"SaE", "bcE"}, terrain.ErrDuplicateMarker},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := terrain.FromLines(tc.lines)
			if !errors.Is(err, tc.err) {
				t.Errorf("FromLines(%q) error = %v; want %v", tc.lines, err, tc.err)
			}
		})
	}
}

func TestFromLines_InvalidSymbolPosition(t *testing.T) {
	_, err := terrain.FromLines([]string{"Sab", "bXE"})
	require.ErrorIs(t, err, terrain.ErrInvalidSymbol)
	require.Contains(t, err.Error(), "row 1, column 1")
}

func TestOverlay(t *testing.T) {
	m, err := terrain.FromLines([]string{"Sab", "dcE"})
	require.NoError(t, err)

	marks := []grid.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}}
	require.Equal(t, "SAb\ndCE\n", m.Overlay(marks))
	require.Equal(t, "Sab\ndcE\n", m.String())
}
