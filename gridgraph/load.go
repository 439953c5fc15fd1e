package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
)

// preallocLimit caps the capacity reserved from an untrusted header.
const preallocLimit = 1 << 20

// Load reads a map in the text format
//
//	<columns> <rows>
//	<rows×columns elevations, row-major>
//
// Tokens are separated by any whitespace; line layout is irrelevant.
// Tokens after the last elevation are ignored.
//
// Errors:
//   - ErrMalformedInput if a token is not an integer (wrapped with its position)
//     or the dimensions overflow.
//   - ErrEmptyGrid if columns or rows is not positive.
//   - ErrCellCount if the input ends before rows×columns elevations.
//   - any error returned by r.
func Load(r io.Reader, opts GridOptions) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	pos := 0

	next := func() (int, bool, error) {
		if !sc.Scan() {
			return 0, false, sc.Err()
		}
		pos++
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, false, fmt.Errorf("%w: token %d %q is not an integer", ErrMalformedInput, pos, sc.Text())
		}
		return v, true, nil
	}

	// 1. Header: columns then rows
	var dims [2]int
	for i := range dims {
		v, ok, err := next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrEmptyGrid
		}
		dims[i] = v
	}
	columns, rows := dims[0], dims[1]
	if columns <= 0 || rows <= 0 {
		return nil, ErrEmptyGrid
	}
	if columns > math.MaxInt/rows {
		return nil, fmt.Errorf("%w: dimensions %dx%d overflow", ErrMalformedInput, columns, rows)
	}

	// 2. Elevations, row-major
	n := columns * rows
	cells := make([]int, 0, min(n, preallocLimit))
	for len(cells) < n {
		v, ok, err := next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: want %d elevations, got %d", ErrCellCount, n, len(cells))
		}
		cells = append(cells, v)
	}

	return newGrid(columns, rows, cells, opts), nil
}
