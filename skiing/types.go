package skiing

import (
	"errors"
	"io"
	"log/slog"
)

var (
	// ErrGridNil is returned when NewSolver or Solve receives a nil grid.
	ErrGridNil = errors.New("skiing: grid is nil")
	// ErrCellOutOfRange indicates a cell index outside the grid.
	ErrCellOutOfRange = errors.New("skiing: cell index out of range")
)

// NodeState is the memoized result for one cell.
type NodeState struct {
	// Visited is set once Distance and Drop are final.
	Visited bool
	// Distance is the number of edges of the longest descent from the cell.
	Distance int
	// Drop is the largest elevation loss among descents of length Distance.
	Drop int
}

// Result is the best run on a map.
type Result struct {
	// Distance is the number of edges of the longest run.
	Distance int
	// Drop is the largest elevation loss among runs of that length.
	Drop int
	// Start is the first cell, in row-major order, where such a run begins.
	Start int
	// Path lists the cells of one such run, Start first.
	Path []int
}

// Length returns the number of cells on the run, Distance + 1.
func (r Result) Length() int {
	return r.Distance + 1
}

// Option configures a Solver.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

func defaultOptions() options {
	return options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithLogger makes the solver report diagnostics at debug level to l.
// A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
