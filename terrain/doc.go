// Package terrain parses textual elevation maps into immutable height grids.
//
// Each character is one cell. Lowercase letters are elevations ('a' lowest,
// 'z' highest); 'S' marks the start at height 'a' and 'E' marks the goal at
// height 'z'. Exactly one of each marker must be present.
//
//	Sabqponm
//	abcryxxl
//	accszExk
//	acctuvwj
//	abdefghi
//
// A *Map satisfies hill.HeightMap, so it can be handed straight to
// hill.NewFinder together with Map.Goal.
package terrain
