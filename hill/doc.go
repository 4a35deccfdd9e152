// Package hill finds shortest climbing routes over a read-only height map.
//
// What
//
//   - A step moves to one of the four orthogonal neighbours and may climb at
//     most MaxClimb (default 1) above the current cell; it may drop any amount.
//   - Finder.FindPath runs a level-by-level breadth-first search from one
//     start to the Finder's goal and returns the route, start excluded and
//     goal included, so len(route) is the number of steps.
//   - An optional bound stops a search as soon as it reaches that depth,
//     which is how Finder.FindFromAny prunes repeated searches.
//   - Trim is a separate pass that shortens a route at its last cell of a
//     given height, used when every such cell is also a valid start.
//
// Determinism
//
//	Neighbours are always tried left, right, up, down, so repeated calls with
//	the same inputs return the same route. The route's length does not depend
//	on that order.
//
// Scratch state
//
//	Each FindPath call allocates its own visited flags, backtrack links and
//	frontier as flat slices of rows×cols. Nothing is shared between calls; the
//	height map is only read.
//
// Complexity (N = rows×cols)
//
//   - FindPath: O(N) time, O(N) memory.
//   - FindFromAny: O(k·N) worst case for k starts; usually far less due to bounds.
//
// Usage
//
//	m, _ := terrain.Parse(r)
//	f, err := hill.NewFinder(m, m.Goal())
//	if err != nil {
//		// ErrNilHeightMap, ErrEmptyHeightMap, ErrGoalOutOfBounds or ErrOptionViolation
//	}
//	route, ok := f.FindPath(m.Start(), 0)
//
//	// every lowest cell as a start, trimming at height 0
//	f, _ = hill.NewFinder(m, m.Goal(), hill.WithTrimHeight(terrain.MinHeight))
//	res, ok := f.FindFromAny(m.Lowest())
//
// Options
//
//   - WithMaxClimb(n):     allowed height gain per step (n >= 0).
//   - WithOnEnqueue(fn):   hook when a cell is discovered.
//   - WithOnDequeue(fn):   hook when a cell is expanded.
//   - WithTrimHeight(h):   apply Trim at height h inside FindFromAny.
//   - WithLogger(l):       zap logger for FindFromAny debug records.
package hill
