// Package gridgraph treats a rectangular elevation map as a directed graph,
// where an edge leads from a cell to every adjacent cell that lies strictly
// lower.
//
// What:
//
//   - Grid stores elevations row-major (index = row*Columns + column).
//   - LowerNeighbors enumerates the cells one can ski down to from a cell.
//   - LocalMinima lists the cells where every descent ends.
//   - Load reads the "<columns> <rows> <values...>" text map format.
//   - Grid satisfies dfs.Graph, so the traversals in package dfs run on it
//     without conversion.
//
// Why:
//
//   - Descent problems: longest slope, deepest drop, drainage analysis.
//   - Because elevation strictly decreases along every edge, the graph is a
//     DAG and admits linear-time dynamic programming.
//
// Complexity:
//
//   - NewGrid, FromFlat, Load: O(W×H) time and memory.
//   - LowerNeighbors:          O(d), d = 4 or 8.
//   - LocalMinima:             O(W×H×d).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (left, right, top, bottom) or Conn8 (adds diagonals).
//
// Errors:
//
//   - ErrEmptyGrid: the map has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCellCount: the number of elevations does not match rows×columns.
//   - ErrMalformedInput: a token in the map is not an integer.
package gridgraph
