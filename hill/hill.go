package hill

// Finder searches a fixed height map for routes to a fixed goal.
// It holds no per-search state and may be reused for any number of
// sequential FindPath calls.
type Finder struct {
	heights    HeightMap
	rows, cols int
	goal       Coord
	opts       Options
}

// search holds the scratch state of a single FindPath call.
type search struct {
	visited   []bool
	backtrack []int
	frontier  []Coord
}

// NewFinder validates h and goal and applies opts.
// Returns ErrNilHeightMap, ErrEmptyHeightMap, ErrGoalOutOfBounds
// or ErrOptionViolation.
func NewFinder(h HeightMap, goal Coord, opts ...Option) (*Finder, error) {
	if h == nil {
		return nil, ErrNilHeightMap
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	rows, cols := h.Size()
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyHeightMap
	}
	f := &Finder{heights: h, rows: rows, cols: cols, goal: goal, opts: o}
	if !f.inBounds(goal) {
		return nil, ErrGoalOutOfBounds
	}

	return f, nil
}

// Goal returns the cell every search ends at.
func (f *Finder) Goal() Coord { return f.goal }

// CanStep reports whether a single move from → to is legal:
// both in bounds, orthogonally adjacent, and to no more than MaxClimb above from.
func (f *Finder) CanStep(from, to Coord) bool {
	if !f.inBounds(from) || !f.inBounds(to) || !from.Adjacent(to) {
		return false
	}

	return f.climbable(from, to)
}

// FindPath runs a breadth-first search from start to the goal.
//
// On success it returns the cells from the one after start through the goal,
// so len(path) is the number of steps; start == goal yields an empty path.
// It returns (nil, false) when the goal is unreachable, when start is out of
// bounds, or when bound > 0 and the search reaches depth bound without
// having found the goal. bound <= 0 disables the limit.
//
// Complexity: O(rows×cols) time and memory.
func (f *Finder) FindPath(start Coord, bound int) ([]Coord, bool) {
	if !f.inBounds(start) {
		return nil, false
	}
	n := f.rows * f.cols
	s := &search{
		visited:   make([]bool, n),
		backtrack: make([]int, n),
		frontier:  make([]Coord, 0, n),
	}
	if !f.run(s, start, bound) {
		return nil, false
	}

	return f.pathTo(s, start), true
}

// run expands the frontier level by level until the goal is popped,
// the frontier empties, or the depth reaches bound.
func (f *Finder) run(s *search, start Coord, bound int) bool {
	s.visited[f.index(start)] = true
	s.frontier = append(s.frontier, start)
	f.opts.OnEnqueue(start, 0)

	// remaining counts cells of the current depth still in the frontier,
	// next counts cells of depth+1 enqueued so far.
	remaining, next, depth := 1, 0, 0
	var buf [4]Coord
	for head := 0; head < len(s.frontier); head++ {
		pos := s.frontier[head]
		if remaining == 0 {
			depth++
			if bound > 0 && depth >= bound {
				return false
			}
			remaining, next = next, 0
		}
		remaining--
		f.opts.OnDequeue(pos, depth)

		if pos == f.goal {
			return true
		}

		for _, nbr := range f.neighbors(buf[:0], pos) {
			i := f.index(nbr)
			if s.visited[i] || !f.climbable(pos, nbr) {
				continue
			}
			s.backtrack[i] = f.index(pos)
			s.visited[i] = true
			s.frontier = append(s.frontier, nbr)
			next++
			f.opts.OnEnqueue(nbr, depth+1)
		}
	}

	return false
}

// pathTo walks backtrack links from the goal to start and returns the
// cells in start → goal order, start excluded.
func (f *Finder) pathTo(s *search, start Coord) []Coord {
	path := []Coord{}
	for at, stop := f.index(f.goal), f.index(start); at != stop; at = s.backtrack[at] {
		path = append(path, f.coord(at))
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// neighbors appends the in-bounds orthogonal neighbours of c to dst
// in the fixed order left, right, up, down.
func (f *Finder) neighbors(dst []Coord, c Coord) []Coord {
	if c.X > 0 {
		dst = append(dst, Coord{X: c.X - 1, Y: c.Y})
	}
	if c.X+1 < f.cols {
		dst = append(dst, Coord{X: c.X + 1, Y: c.Y})
	}
	if c.Y > 0 {
		dst = append(dst, Coord{X: c.X, Y: c.Y - 1})
	}
	if c.Y+1 < f.rows {
		dst = append(dst, Coord{X: c.X, Y: c.Y + 1})
	}

	return dst
}

func (f *Finder) climbable(from, to Coord) bool {
	return f.heights.Height(to) <= f.heights.Height(from)+f.opts.MaxClimb
}

func (f *Finder) inBounds(c Coord) bool {
	return c.X >= 0 && c.X < f.cols && c.Y >= 0 && c.Y < f.rows
}

// index maps c to a row-major index: Y*cols + X.
func (f *Finder) index(c Coord) int {
	return c.Y*f.cols + c.X
}

func (f *Finder) coord(idx int) Coord {
	return Coord{X: idx % f.cols, Y: idx / f.cols}
}
