package gridgraph

// Connectivity selects which adjacent cells are neighbors.
type Connectivity int

const (
	// Conn4 uses the four axis-aligned directions: left, right, top, bottom.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals after the axis-aligned directions.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Cell represents a single grid cell with its coordinates and elevation.
type Cell struct {
	X, Y  int // column and row within the grid
	Value int // elevation at (X, Y)
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// Grid is an elevation map. It is immutable once built.
// Elevation holds Rows×Columns values in row-major order.
// offsets is precomputed from Conn for neighbor enumeration.
type Grid struct {
	Rows, Columns int
	Elevation     []int
	Conn          Connectivity
	offsets       [][2]int
}

var (
	conn4Offsets = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	conn8Offsets = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
)
