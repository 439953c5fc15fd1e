package gridgraph

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice indexed
// values[row][column]. It copies the input so later mutation of values does
// not affect the grid.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGrid(values [][]int, opts GridOptions) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([]int, 0, w*h)
	for _, row := range values {
		cells = append(cells, row...)
	}

	return newGrid(w, h, cells, opts), nil
}

// FromFlat constructs a Grid from row-major elevations.
// Returns ErrEmptyGrid for non-positive dimensions and ErrCellCount
// when len(elevation) != columns*rows.
func FromFlat(columns, rows int, elevation []int, opts GridOptions) (*Grid, error) {
	if columns <= 0 || rows <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(elevation) != columns*rows {
		return nil, ErrCellCount
	}
	cells := make([]int, len(elevation))
	copy(cells, elevation)

	return newGrid(columns, rows, cells, opts), nil
}

// newGrid takes ownership of cells.
func newGrid(columns, rows int, cells []int, opts GridOptions) *Grid {
	offsets := conn4Offsets
	if opts.Conn == Conn8 {
		offsets = conn8Offsets
	}

	return &Grid{
		Rows:      rows,
		Columns:   columns,
		Elevation: cells,
		Conn:      opts.Conn,
		offsets:   offsets,
	}
}

// Size returns the number of cells, Rows×Columns.
func (g *Grid) Size() int {
	return g.Rows * g.Columns
}

// InBounds reports whether column x, row y lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Columns && y >= 0 && y < g.Rows
}

// NeighborOffsets returns the (dx, dy) offsets used for adjacency,
// in enumeration order.
func (g *Grid) NeighborOffsets() [][2]int {
	return g.offsets
}

// Index maps (x,y) to a row-major index: y*Columns + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Columns + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Columns, idx / g.Columns
}

// Cell returns the coordinates and elevation of the cell at idx.
func (g *Grid) Cell(idx int) Cell {
	x, y := g.Coordinate(idx)
	return Cell{X: x, Y: y, Value: g.Elevation[idx]}
}

// Order returns the number of vertices of the descent graph.
func (g *Grid) Order() int {
	return g.Size()
}

// Successors returns the cells reachable from v in one descent step.
// It is LowerNeighbors under the name dfs.Graph expects.
func (g *Grid) Successors(v int) []int {
	return g.LowerNeighbors(v)
}
