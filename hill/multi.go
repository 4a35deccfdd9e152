package hill

import (
	"go.uber.org/zap"
)

// FindFromAny runs FindPath from each start in order and keeps the shortest
// route. The best length found so far is passed as the bound of every later
// search, so searches that cannot beat it stop early. A zero-length route
// ends the loop.
//
// With WithTrimHeight, each found path is first shortened by Trim; the
// reported Start is then the cell the trimmed path begins after.
//
// Returns false if starts is empty or no start reaches the goal.
func (f *Finder) FindFromAny(starts []Coord) (Result, bool) {
	log := f.opts.Logger
	var best Result
	found := false

	for _, start := range starts {
		bound := 0
		if found {
			bound = best.Length
		}
		best.Searches++
		path, ok := f.FindPath(start, bound)
		if !ok {
			best.Pruned++
			log.Debug("no path within bound",
				zap.Stringer("start", start),
				zap.Int("bound", bound))
			continue
		}

		from := start
		if f.opts.Trim {
			from, path = Trim(start, path, f.heights, f.opts.TrimHeight)
		}
		log.Debug("path found",
			zap.Stringer("start", start),
			zap.Stringer("from", from),
			zap.Int("length", len(path)),
			zap.Int("bound", bound))

		if !found || len(path) < best.Length {
			best.Start, best.Path, best.Length = from, path, len(path)
			found = true
		}
		if best.Length == 0 {
			break
		}
	}

	if found {
		log.Debug("best route",
			zap.Stringer("start", best.Start),
			zap.Int("length", best.Length),
			zap.Int("searches", best.Searches),
			zap.Int("pruned", best.Pruned))
	}

	return best, found
}

// Trim shortens a path returned by FindPath(start, ...) at the last cell
// whose height equals low. That cell becomes the new start and the cells
// after it the new path. If no cell on the path has height low, start and
// path are returned unchanged.
//
// When every cell of height low is itself a candidate start, the trimmed
// route is a real route from a candidate and never longer than the untrimmed one.
func Trim(start Coord, path []Coord, h HeightMap, low int) (Coord, []Coord) {
	for i := len(path) - 1; i >= 0; i-- {
		if h.Height(path[i]) == low {
			return path[i], path[i+1:]
		}
	}

	return start, path
}
