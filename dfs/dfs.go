// Package dfs implements depth‑first search (single‑source and forest) on
// implicit directed graphs addressed by integer ids.
//
// Traversal keeps an explicit work stack of pending successor lists instead of
// recursing, so the depth of the graph is bounded by memory, not by the
// goroutine stack.
//
// Key features:
//   - DFS(g, startID, opts...): traverse from a root or full forest via WithFullTraversal
//   - Hooks: OnVisit (pre‑order) & OnExit (post‑order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus overhead of hooks and filters.
//   - Memory: O(V) for the work stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is out of range.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph Graph      // underlying graph
	opts  DFSOptions // traversal options
	res   *DFSResult // result collector
	stack []frame    // pending vertices, root at the bottom
}

// DFS performs depth‑first search on graph g. If opts include WithFullTraversal,
// it covers all vertices in id order; otherwise, it starts only from startID.
// Returns DFSResult or error if aborted by context or hook.
func DFS(g Graph, startID int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single‑source mode: verify startID
	n := g.Order()
	if !dopts.FullTraversal && (startID < 0 || startID >= n) {
		return nil, ErrStartVertexNotFound
	}

	// 4. Initialize result; maps grow with the visited part only
	res := &DFSResult{
		Depth:   make(map[int]int),
		Parent:  make(map[int]int),
		Visited: make(map[int]bool),
	}

	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for v := 0; v < n; v++ {
			if !res.Visited[v] {
				if err := walker.traverse(v); err != nil {
					return res, err
				}
			}
		}
	} else {
		if err := walker.traverse(startID); err != nil {
			return res, err
		}
	}

	// 6. Expose diagnostics
	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// traverse explores the tree rooted at root until its work stack drains.
func (w *dfsWalker) traverse(root int) error {
	if err := w.enter(root, -1, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]

		// 1. Descend into the next pending successor, if any
		if top.next < len(top.succ) {
			nid := top.succ[top.next]
			top.next++

			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
				w.opts.SkippedNeighbors++
				continue
			}
			if !w.res.Visited[nid] {
				// enter may grow the stack; top is not used afterwards
				if err := w.enter(nid, top.id, top.depth+1); err != nil {
					return err
				}
			}
			continue
		}

		// 2. All successors done: pop and finish
		id := top.id
		w.stack = w.stack[:len(w.stack)-1]

		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(id); err != nil {
				w.res.Order = nil

				return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
			}
		}
		w.res.Order = append(w.res.Order, id)
	}

	return nil
}

// enter discovers id from parent (-1 for a root) and pushes it on the stack.
// It honors context cancellation, the depth limit and the pre-order hook.
func (w *dfsWalker) enter(id, parent, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit: stop if exceeded
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Mark visited and record depth and parent
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if parent >= 0 {
		w.res.Parent[id] = parent
	}

	// 4. Pre‑order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	// 5. Fetch successors once and push
	w.stack = append(w.stack, frame{id: id, depth: depth, succ: w.graph.Successors(id)})

	return nil
}
