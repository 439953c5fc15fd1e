package skiing_test

import (
	"bytes"
	"context"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fbleibel/redmart-ski/gridgraph"
	"github.com/fbleibel/redmart-ski/skiing"
)

// classic is the 4×4 map from the puzzle statement.
var classic = []int{
	4, 8, 7, 3,
	2, 5, 9, 3,
	6, 3, 2, 5,
	4, 4, 1, 6,
}

// reference5x5 is the regression map also stored in testdata/reference5x5.txt.
var reference5x5 = []int{
	86, 52, 123, 0, 122,
	88, 21, 30, 99, 51,
	122, 45, 111, 85, 22,
	101, 118, 102, 21, 40,
	43, 32, 7, 38, 119,
}

func mustGrid(t testing.TB, columns, rows int, data []int) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.FromFlat(columns, rows, data, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	return g
}

func TestSolve_Examples(t *testing.T) {
	cases := []struct {
		name          string
		columns, rows int
		data          []int
		length, drop  int
		start         int
		path          []int
	}{
		{"SingleCell", 1, 1, []int{5}, 1, 0, 0, []int{0}},
		{"FlatRow", 3, 1, []int{3, 3, 3}, 1, 0, 0, []int{0}},
		{"DescendingRow", 4, 1, []int{9, 7, 5, 2}, 4, 7, 0, []int{0, 1, 2, 3}},
		{"TwoByTwo", 2, 2, []int{4, 3, 2, 1}, 3, 3, 0, []int{0, 1, 3}},
		{"Classic4x4", 4, 4, classic, 5, 8, 6, []int{6, 5, 9, 10, 14}},
		{"Reference5x5", 5, 5, reference5x5, 5, 115, 10, []int{10, 15, 20, 21, 22}},
		{"NegativeElevations", 3, 1, []int{-1, -5, -3}, 2, 4, 0, []int{0, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := skiing.Solve(context.Background(), mustGrid(t, tc.columns, tc.rows, tc.data))
			require.NoError(t, err)
			assert.Equal(t, tc.length, res.Length())
			assert.Equal(t, tc.drop, res.Drop)
			assert.Equal(t, tc.start, res.Start)
			assert.Equal(t, tc.path, res.Path)
		})
	}
}

// TestSolve_LongerBeatsBiggerDrop: 100→1 drops 99 over 2 cells, but
// 50→40→30 is longer, so its drop of 20 is the answer.
func TestSolve_LongerBeatsBiggerDrop(t *testing.T) {
	res, err := skiing.Solve(context.Background(), mustGrid(t, 5, 1, []int{100, 1, 50, 40, 30}))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Length())
	assert.Equal(t, 20, res.Drop)
	assert.Equal(t, []int{2, 3, 4}, res.Path)
}

// TestSolve_CellOverwritesDropOnLongerRun: from 100 the first neighbor
// (-50) offers a drop of 150 over one edge; the run through the bottom row
// is longer and must replace it even though its drop is only 100.
//
//	100 -50 9 0
//	  4   3 2 1
func TestSolve_CellOverwritesDropOnLongerRun(t *testing.T) {
	s, err := skiing.NewSolver(mustGrid(t, 4, 2, []int{100, -50, 9, 0, 4, 3, 2, 1}))
	require.NoError(t, err)

	res, err := s.Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, skiing.NodeState{Visited: true, Distance: 5, Drop: 100}, s.State(0))
	assert.Equal(t, 6, res.Length())
	assert.Equal(t, 100, res.Drop)
	assert.Equal(t, []int{0, 4, 5, 6, 7, 3}, res.Path)
}

// TestSolver_ClassicStates pins every per-cell state of the classic map.
func TestSolver_ClassicStates(t *testing.T) {
	s, err := skiing.NewSolver(mustGrid(t, 4, 4, classic))
	require.NoError(t, err)
	_, err = s.Solve(context.Background())
	require.NoError(t, err)

	wantDistance := []int{1, 4, 1, 0, 0, 3, 4, 0, 3, 2, 1, 2, 0, 3, 0, 3}
	wantDrop := []int{2, 7, 4, 0, 0, 4, 8, 0, 5, 2, 1, 4, 0, 3, 0, 5}
	for v := range classic {
		st := s.State(v)
		assert.True(t, st.Visited, "cell %d", v)
		assert.Equal(t, wantDistance[v], st.Distance, "distance of cell %d", v)
		assert.Equal(t, wantDrop[v], st.Drop, "drop of cell %d", v)
	}
}

func TestSolver_VisitIdempotent(t *testing.T) {
	g := mustGrid(t, 4, 4, classic)
	s, err := skiing.NewSolver(g)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Visit(ctx, 6))
	before := make([]skiing.NodeState, g.Size())
	for v := range before {
		before[v] = s.State(v)
	}
	assert.True(t, before[6].Visited)

	require.NoError(t, s.Visit(ctx, 6))
	for v := range before {
		assert.Equal(t, before[v], s.State(v), "cell %d changed on second visit", v)
	}
}

func TestSolver_VisitOnlyReachable(t *testing.T) {
	// 9 → 7 → 5 → 2, plus a separate 1 → 0 run to the right of a wall
	s, err := skiing.NewSolver(mustGrid(t, 7, 1, []int{9, 7, 5, 2, 10, 1, 0}))
	require.NoError(t, err)

	require.NoError(t, s.Visit(context.Background(), 1))
	assert.False(t, s.State(0).Visited)
	assert.True(t, s.State(1).Visited)
	assert.True(t, s.State(3).Visited)
	assert.False(t, s.State(5).Visited)
	assert.Equal(t, skiing.NodeState{Visited: true, Distance: 2, Drop: 5}, s.State(1))
}

func TestSolver_Errors(t *testing.T) {
	_, err := skiing.NewSolver(nil)
	assert.ErrorIs(t, err, skiing.ErrGridNil)

	_, err = skiing.Solve(context.Background(), nil)
	assert.ErrorIs(t, err, skiing.ErrGridNil)

	s, err := skiing.NewSolver(mustGrid(t, 2, 1, []int{1, 0}))
	require.NoError(t, err)
	assert.ErrorIs(t, s.Visit(context.Background(), -1), skiing.ErrCellOutOfRange)
	assert.ErrorIs(t, s.Visit(context.Background(), 2), skiing.ErrCellOutOfRange)

	empty, err := skiing.NewSolver(&gridgraph.Grid{})
	require.NoError(t, err)
	_, err = empty.Solve(context.Background())
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}

func TestSolver_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := skiing.Solve(ctx, mustGrid(t, 4, 4, classic))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSolve_MatchesBruteForce cross-checks the solver against exhaustive
// enumeration of every descending run on random small maps, and checks the
// per-cell recurrence Distance(v) = 1 + max Distance(u) over lower neighbors.
func TestSolve_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(2015))
	for trial := 0; trial < 200; trial++ {
		cols, rows := 1+rng.Intn(5), 1+rng.Intn(5)
		data := make([]int, cols*rows)
		spread := 3 + rng.Intn(40)
		for i := range data {
			data[i] = rng.Intn(spread) - spread/2
		}
		g := mustGrid(t, cols, rows, data)

		s, err := skiing.NewSolver(g)
		require.NoError(t, err)
		res, err := s.Solve(context.Background())
		require.NoError(t, err)

		wantDistance, wantDrop := bruteForce(g)
		require.Equal(t, wantDistance, res.Distance, "trial %d map %v", trial, data)
		require.Equal(t, wantDrop, res.Drop, "trial %d map %v", trial, data)

		assertValidPath(t, g, res)
		for v := 0; v < g.Size(); v++ {
			lower := g.LowerNeighbors(v)
			if len(lower) == 0 {
				assert.Equal(t, 0, s.State(v).Distance, "leaf %d", v)
				continue
			}
			longest := 0
			for _, u := range lower {
				longest = max(longest, s.State(u).Distance)
			}
			assert.Equal(t, 1+longest, s.State(v).Distance, "cell %d", v)
		}
	}
}

// TestSolve_Conn8 runs the solver with diagonal moves enabled.
//
//	1 2 1
//	3 9 4
//	1 5 1
func TestSolve_Conn8(t *testing.T) {
	data := []int{1, 2, 1, 3, 9, 4, 1, 5, 1}
	g4 := mustGrid(t, 3, 3, data)
	g8, err := gridgraph.FromFlat(3, 3, data, gridgraph.GridOptions{Conn: gridgraph.Conn8})
	require.NoError(t, err)

	r4, err := skiing.Solve(context.Background(), g4)
	require.NoError(t, err)
	assert.Equal(t, 3, r4.Length())
	assert.Equal(t, 8, r4.Drop)

	r8, err := skiing.Solve(context.Background(), g8)
	require.NoError(t, err)
	assert.Equal(t, 5, r8.Length())
	assert.Equal(t, 8, r8.Drop)
	assert.Equal(t, []int{4, 7, 3, 1, 0}, r8.Path)
}

func TestSolve_LogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := skiing.Solve(context.Background(), mustGrid(t, 4, 4, classic), skiing.WithLogger(l))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "map solved")
	assert.Contains(t, buf.String(), "length=5")
	assert.Contains(t, buf.String(), `from="(2,1)=9"`)
}

// TestSolve_LongChain exercises a descent of a quarter million cells in one
// run, snaking through a 500×500 map.
func TestSolve_LongChain(t *testing.T) {
	const n = 500
	data := make([]int, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			col := x
			if y%2 == 1 {
				col = n - 1 - x
			}
			data[y*n+x] = n*n - (y*n + col)
		}
	}
	res, err := skiing.Solve(context.Background(), mustGrid(t, n, n, data))
	require.NoError(t, err)
	assert.Equal(t, n*n, res.Length())
	assert.Equal(t, n*n-1, res.Drop)
}

// assertValidPath checks that res.Path is a strictly descending run of
// adjacent cells matching the reported length and drop.
func assertValidPath(t *testing.T, g *gridgraph.Grid, res skiing.Result) {
	t.Helper()
	require.Len(t, res.Path, res.Length())
	require.Equal(t, res.Start, res.Path[0])
	for i := 1; i < len(res.Path); i++ {
		assert.Contains(t, g.LowerNeighbors(res.Path[i-1]), res.Path[i])
	}
	last := res.Path[len(res.Path)-1]
	assert.Equal(t, res.Drop, g.Elevation[res.Start]-g.Elevation[last])
}

// bruteForce enumerates every descending run and returns the best
// (distance, drop) pair without memoization.
func bruteForce(g *gridgraph.Grid) (distance, drop int) {
	var walk func(start, v, edges int)
	walk = func(start, v, edges int) {
		d := g.Elevation[start] - g.Elevation[v]
		if edges > distance || (edges == distance && d > drop) {
			distance, drop = edges, d
		}
		for _, u := range g.LowerNeighbors(v) {
			walk(start, u, edges+1)
		}
	}
	for v := 0; v < g.Size(); v++ {
		walk(v, v, 0)
	}

	return distance, drop
}
