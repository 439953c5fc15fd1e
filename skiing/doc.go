// Package skiing finds the longest ski run on an elevation map.
//
// A run moves between adjacent cells and must go strictly downhill. Among
// all runs of maximal length, the one with the largest drop (start elevation
// minus end elevation) wins.
//
// How:
//
// The descent graph of a gridgraph.Grid is acyclic, so the solver performs a
// memoized depth-first search over it. Cells are settled in post-order (every
// lower neighbor before the cell itself), each cell recording the number of
// edges of its longest run (Distance) and the best drop among runs of that
// length (Drop):
//
//	for u in lowerNeighbors(v):
//	    distance, drop = state[u].Distance+1, state[u].Drop + e[v] - e[u]
//	    if distance > state[v].Distance:  overwrite distance and drop
//	    elif distance == state[v].Distance: keep the larger drop
//
// A longer run always beats a shorter one, whatever their drops; drops are
// only compared between runs of equal length. The same rule folds per-cell
// states into the global answer.
//
// Complexity:
//
//   - Solve: O(V + E) time, E ≤ 4V under Conn4; O(V) memory.
//
// Output formatting (WriteResult) is separate from solving.
package skiing
