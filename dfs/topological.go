// Package dfs provides core algorithms on directed graphs, including
// topological sort.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering.
// If the graph contains a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (work stack and state slice)
package dfs

import (
	"context"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph Graph       // the graph being sorted
	opts  topoOptions // traversal options (cancellation)
	state []int       // visitation state: White, Gray, Black
	order []int       // recorded post-order sequence
	stack []frame     // explicit work stack
}

// TopologicalSort computes a topological ordering of all vertices in g.
// If g is nil, returns ErrGraphNil.
// If a cycle is detected, returns ErrCycleDetected.
// You may pass WithCancelContext(ctx) to enable cancellation.
func TopologicalSort(g Graph, options ...TopoOption) ([]int, error) {
	// 1. Validate graph
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize sorter state; all vertices start White
	n := g.Order()
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make([]int, n),
		order: make([]int, 0, n),
	}
	// 4. Drive DFS from every unvisited vertex
	for v := 0; v < n; v++ {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse post-order to produce topological order
	reverse(sorter.order)

	return sorter.order, nil
}

// visit runs an iterative DFS from root, marking states and detecting cycles.
func (t *topoSorter) visit(root int) error {
	if err := t.push(root); err != nil {
		return err
	}
	for len(t.stack) > 0 {
		top := &t.stack[len(t.stack)-1]
		if top.next < len(top.succ) {
			nid := top.succ[top.next]
			top.next++
			switch t.state[nid] {
			case Gray:
				// back edge: nid is still on the stack
				return ErrCycleDetected
			case White:
				if err := t.push(nid); err != nil {
					return err
				}
			}
			continue
		}
		// all successors Black: finish top
		t.state[top.id] = Black
		t.order = append(t.order, top.id)
		t.stack = t.stack[:len(t.stack)-1]
	}

	return nil
}

// push marks id Gray and places it on the work stack.
func (t *topoSorter) push(id int) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	t.state[id] = Gray
	t.stack = append(t.stack, frame{id: id, succ: t.graph.Successors(id)})

	return nil
}
