// Package hillclimb finds the fewest steps up a letter-encoded elevation map.
//
// What is hillclimb?
//
//	A small, dependency-light toolkit for climbing searches over a grid:
//		• grid/     — generic dense 2D container and the Coord value type
//		• terrain/  — parse 'a'..'z' maps with S (start) and E (goal) markers
//		• hill/     — bounded breadth-first pathfinder, multi-start driver, route trimming
//		• config/   — YAML run configuration
//		• cmd/hillclimb — command-line front end
//
// The step rule
//
//	A step moves to one of the four orthogonal neighbours. It may climb at
//	most one level and may drop any number of levels:
//
//	    c → d   ok      (+1)
//	    c → e   refused (+2)
//	    z → a   ok      (any drop)
//
// Quick example:
//
//	m, _ := terrain.Parse(strings.NewReader("Sabqponm\nabcryxxl\naccszExk\nacctuvwj\nabdefghi\n"))
//	f, _ := hill.NewFinder(m, m.Goal())
//	route, _ := f.FindPath(m.Start(), 0) // len(route) == 31
//
//	go install github.com/katalvlaran/hillclimb/cmd/hillclimb@latest
package hillclimb
