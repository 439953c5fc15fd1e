package skiing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fbleibel/redmart-ski/dfs"
	"github.com/fbleibel/redmart-ski/gridgraph"
)

// Solver computes longest descents over one immutable grid. It owns the
// per-cell state arena for its lifetime; a Solver is not safe for
// concurrent use.
type Solver struct {
	grid   *gridgraph.Grid
	states []NodeState
	next   []int // successor on the chosen run, -1 at a leaf
	log    *slog.Logger
}

// NewSolver returns a Solver for g with every cell unvisited.
func NewSolver(g *gridgraph.Grid, opts ...Option) (*Solver, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	n := g.Size()
	next := make([]int, n)
	for i := range next {
		next[i] = -1
	}

	return &Solver{
		grid:   g,
		states: make([]NodeState, n),
		next:   next,
		log:    o.logger,
	}, nil
}

// Solve is a convenience wrapper around NewSolver and (*Solver).Solve.
func Solve(ctx context.Context, g *gridgraph.Grid, opts ...Option) (Result, error) {
	s, err := NewSolver(g, opts...)
	if err != nil {
		return Result{}, err
	}

	return s.Solve(ctx)
}

// State returns the memoized state of cell v. It panics if v is out of range.
func (s *Solver) State(v int) NodeState {
	return s.states[v]
}

// Visit settles cell v and every cell reachable from it by descent.
// Cells already settled are neither re-entered nor modified, so calling
// Visit again is a no-op.
// Returns ErrCellOutOfRange for a bad index and ctx.Err() if ctx is done.
func (s *Solver) Visit(ctx context.Context, v int) error {
	if v < 0 || v >= len(s.states) {
		return fmt.Errorf("%w: %d", ErrCellOutOfRange, v)
	}
	if s.states[v].Visited {
		return nil
	}

	_, err := dfs.DFS(s.grid, v,
		dfs.WithContext(ctx),
		dfs.WithFilterNeighbor(s.unsettled),
		dfs.WithOnExit(s.settle),
	)
	if err != nil {
		return fmt.Errorf("skiing: visit %d: %w", v, err)
	}

	return nil
}

func (s *Solver) unsettled(v int) bool {
	return !s.states[v].Visited
}

// settle runs in post-order, so every lower neighbor of v is already final.
func (s *Solver) settle(v int) error {
	st := &s.states[v]
	if st.Visited {
		return nil
	}
	elevation := s.grid.Elevation

	for _, u := range s.grid.LowerNeighbors(v) {
		distance := s.states[u].Distance + 1
		drop := s.states[u].Drop + elevation[v] - elevation[u]

		// A longer run invalidates the best drop found so far.
		if distance > st.Distance {
			st.Distance, st.Drop = distance, drop
			s.next[v] = u
		} else if distance == st.Distance && drop > st.Drop {
			st.Drop = drop
			s.next[v] = u
		}
	}
	st.Visited = true

	return nil
}

// Solve visits every cell in row-major order and returns the longest run
// with the largest drop. Among equal runs the one starting first wins.
// Returns gridgraph.ErrEmptyGrid for a grid without cells.
func (s *Solver) Solve(ctx context.Context) (Result, error) {
	if len(s.states) == 0 {
		return Result{}, gridgraph.ErrEmptyGrid
	}

	best := Result{Start: -1}
	for v := range s.states {
		if !s.states[v].Visited {
			if err := s.Visit(ctx, v); err != nil {
				return Result{}, err
			}
		}

		st := s.states[v]
		switch {
		case best.Start < 0 || st.Distance > best.Distance:
			best.Distance, best.Drop, best.Start = st.Distance, st.Drop, v
		case st.Distance == best.Distance && st.Drop > best.Drop:
			best.Drop, best.Start = st.Drop, v
		}
	}
	best.Path = s.path(best.Start)

	if s.log.Enabled(ctx, slog.LevelDebug) {
		start, end := s.grid.Cell(best.Start), s.grid.Cell(best.Path[len(best.Path)-1])
		s.log.DebugContext(ctx, "map solved",
			slog.Int("columns", s.grid.Columns),
			slog.Int("rows", s.grid.Rows),
			slog.String("connectivity", s.grid.Conn.String()),
			slog.Int("local_minima", len(s.grid.LocalMinima())),
			slog.Int("length", best.Length()),
			slog.Int("drop", best.Drop),
			slog.String("from", fmt.Sprintf("(%d,%d)=%d", start.X, start.Y, start.Value)),
			slog.String("to", fmt.Sprintf("(%d,%d)=%d", end.X, end.Y, end.Value)),
		)
	}

	return best, nil
}

// path follows the recorded successors from start down to a leaf.
func (s *Solver) path(start int) []int {
	p := make([]int, 0, s.states[start].Distance+1)
	for v := start; v >= 0; v = s.next[v] {
		p = append(p, v)
	}

	return p
}
