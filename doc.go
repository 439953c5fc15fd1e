// Package skiing finds the best downhill run on an elevation map.
//
// A map is a rectangle of integer elevations. From any cell a skier may move
// to an adjacent cell (left, right, up or down) only if it is strictly lower.
// The best run is the one visiting the most cells; among runs of equal
// length the one with the largest vertical drop, first elevation minus last,
// wins.
//
// Because every move goes strictly downhill the moves form a DAG, so the
// longest run is found with one memoized depth-first pass over the map in
// O(rows × columns) time.
//
// Layout:
//
//	gridgraph/    elevation map: loading, neighbors, the implicit move graph
//	dfs/          iterative depth-first search, topological sort, cycle check
//	skiing/       longest-descent solver and result formatting
//	cmd/skiing/   command-line front end
//	internal/     configuration and logging for the executable
//
// Quick example, the classic 4×4 map:
//
//	4 8 7 3
//	2 5 9 3
//	6 3 2 5
//	4 4 1 6
//
// The best run is 9-5-3-2-1: Length 5, Drop 8.
//
//	$ skiing testdata/classic4x4.txt
//	Length: 5
//	Drop: 8
package skiing
