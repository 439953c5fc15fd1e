package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the map has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrCellCount indicates the number of elevations differs from rows×columns.
	ErrCellCount = errors.New("gridgraph: elevation count does not match grid dimensions")
	// ErrMalformedInput indicates a map token that is not an integer.
	ErrMalformedInput = errors.New("gridgraph: malformed map input")
)
