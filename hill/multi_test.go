package hill_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/hillclimb/hill"
	"github.com/katalvlaran/hillclimb/terrain"
)

// FromAnySuite exercises the multi-start driver and the Trim pass.
type FromAnySuite struct {
	suite.Suite
	m *terrain.Map
}

func (s *FromAnySuite) SetupTest() {
	s.m = parseSample(s.T())
}

// TestSample finds the 29-step route from the bottom-left 'a'.
func (s *FromAnySuite) TestSample() {
	f, err := hill.NewFinder(s.m, s.m.Goal())
	require.NoError(s.T(), err)

	res, ok := f.FindFromAny(s.m.Lowest())
	require.True(s.T(), ok)
	require.Equal(s.T(), 29, res.Length)
	require.Len(s.T(), res.Path, 29)
	require.Equal(s.T(), hill.Coord{X: 0, Y: 4}, res.Start)
	require.Equal(s.T(), len(s.m.Lowest()), res.Searches)
	require.GreaterOrEqual(s.T(), res.Pruned, 1, "bounds must cut at least one search short")
	requireValidRoute(s.T(), f, res.Start, res.Path)
}

// TestSampleTrimmed reaches the same optimum with trimming enabled.
func (s *FromAnySuite) TestSampleTrimmed() {
	f, err := hill.NewFinder(s.m, s.m.Goal(), hill.WithTrimHeight(terrain.MinHeight))
	require.NoError(s.T(), err)

	res, ok := f.FindFromAny(s.m.Lowest())
	require.True(s.T(), ok)
	require.Equal(s.T(), 29, res.Length)
	require.Equal(s.T(), terrain.MinHeight, s.m.Height(res.Start))
	requireValidRoute(s.T(), f, res.Start, res.Path)
}

// TestSingleStartMatchesFindPath: one candidate behaves like FindPath.
func (s *FromAnySuite) TestSingleStartMatchesFindPath() {
	f, err := hill.NewFinder(s.m, s.m.Goal())
	require.NoError(s.T(), err)

	res, ok := f.FindFromAny([]hill.Coord{s.m.Start()})
	require.True(s.T(), ok)
	route, _ := f.FindPath(s.m.Start(), 0)
	require.Equal(s.T(), route, res.Path)
	require.Equal(s.T(), s.m.Start(), res.Start)
	require.Equal(s.T(), 1, res.Searches)
	require.Zero(s.T(), res.Pruned)
}

func (s *FromAnySuite) TestNoStarts() {
	f, err := hill.NewFinder(s.m, s.m.Goal())
	require.NoError(s.T(), err)

	_, ok := f.FindFromAny(nil)
	require.False(s.T(), ok)
}

// TestUnreachable counts every failed search as pruned.
func (s *FromAnySuite) TestUnreachable() {
	h := heightGrid{{0, 0, 9}}
	f, err := hill.NewFinder(h, hill.Coord{X: 2})
	require.NoError(s.T(), err)

	res, ok := f.FindFromAny([]hill.Coord{{X: 0}, {X: 1}})
	require.False(s.T(), ok)
	require.Equal(s.T(), 2, res.Searches)
	require.Equal(s.T(), 2, res.Pruned)
}

// TestGoalAsStartStopsEarly: a zero-length route cannot be beaten.
func (s *FromAnySuite) TestGoalAsStartStopsEarly() {
	f, err := hill.NewFinder(s.m, s.m.Goal())
	require.NoError(s.T(), err)

	starts := []hill.Coord{s.m.Start(), s.m.Goal(), {X: 0, Y: 4}}
	res, ok := f.FindFromAny(starts)
	require.True(s.T(), ok)
	require.Zero(s.T(), res.Length)
	require.Empty(s.T(), res.Path)
	require.Equal(s.T(), s.m.Goal(), res.Start)
	require.Equal(s.T(), 2, res.Searches)
}

// TestLogger records a summary entry at debug level.
func (s *FromAnySuite) TestLogger() {
	core, logs := observer.New(zapcore.DebugLevel)
	f, err := hill.NewFinder(s.m, s.m.Goal(), hill.WithLogger(zap.New(core)))
	require.NoError(s.T(), err)

	_, ok := f.FindFromAny(s.m.Lowest())
	require.True(s.T(), ok)

	best := logs.FilterMessage("best route").All()
	require.Len(s.T(), best, 1)
	require.Equal(s.T(), int64(29), best[0].ContextMap()["length"])
	require.NotEmpty(s.T(), logs.FilterMessage("no path within bound").All())
}

// TestMatchesReference compares FindFromAny with the minimum of reference
// distances over all start candidates on random maps, trimmed and untrimmed.
func (s *FromAnySuite) TestMatchesReference() {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 30; trial++ {
		rows, cols := 2+rng.Intn(6), 2+rng.Intn(6)
		h := randomGrid(rng, rows, cols, 3)
		goal := hill.Coord{X: rng.Intn(cols), Y: rng.Intn(rows)}

		var lows []hill.Coord
		want, reachable := 0, false
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				c := hill.Coord{X: x, Y: y}
				if h.Height(c) != 0 {
					continue
				}
				lows = append(lows, c)
				if d, ok := referenceDistances(h, c, 1)[goal]; ok && (!reachable || d < want) {
					want, reachable = d, true
				}
			}
		}

		for _, opts := range [][]hill.Option{nil, {hill.WithTrimHeight(0)}} {
			f, err := hill.NewFinder(h, goal, opts...)
			require.NoError(s.T(), err)
			res, ok := f.FindFromAny(lows)
			require.Equal(s.T(), reachable, ok, "trial %d", trial)
			if ok {
				require.Equal(s.T(), want, res.Length, "trial %d", trial)
				requireValidRoute(s.T(), f, res.Start, res.Path)
			}
		}
	}
}

func TestFromAnySuite(t *testing.T) {
	suite.Run(t, new(FromAnySuite))
}

//----------------------------------------------------------------------------//
// Trim
//----------------------------------------------------------------------------//

// TestTrim cuts at the last low cell, not the first.
func TestTrim(t *testing.T) {
	h := heightGrid{{0, 1, 0, 0, 1, 2}}
	start := hill.Coord{X: 0}
	route := []hill.Coord{{X: 1}, {X: 2}, {X: 3}, {X: 4}, {X: 5}}

	from, rest := hill.Trim(start, route, h, 0)
	require.Equal(t, hill.Coord{X: 3}, from)
	require.Equal(t, []hill.Coord{{X: 4}, {X: 5}}, rest)
}

func TestTrim_NoLowCell(t *testing.T) {
	h := heightGrid{{0, 1, 2}}
	start := hill.Coord{X: 0}
	route := []hill.Coord{{X: 1}, {X: 2}}

	from, rest := hill.Trim(start, route, h, 0)
	require.Equal(t, start, from)
	require.Equal(t, route, rest)

	from, rest = hill.Trim(start, nil, h, 0)
	require.Equal(t, start, from)
	require.Empty(t, rest)
}
