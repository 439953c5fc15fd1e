// Package dfs implements cycle detection for directed graphs.
// DetectCycle runs an iterative depth-first search with three-color marking
// and reports the first back edge it meets as a closed cycle.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)     (work stack + state slice)
package dfs

// DetectCycle inspects g for a directed cycle.
// Returns (true, cycle, nil) where cycle is closed ([v0, v1, ..., v0]) if one
// exists; (false, nil, nil) otherwise. A nil graph is treated as cycle-free.
// Vertices are explored in id order, so the reported cycle is deterministic.
func DetectCycle(g Graph) (bool, []int, error) {
	// 1) Nil graph is treated as cycle-free
	if g == nil {
		return false, nil, nil
	}

	// 2) Prepare visitation state: White, Gray (on stack), Black (completed)
	n := g.Order()
	state := make([]int, n)
	var stack []frame

	// 3) Launch DFS from each unvisited vertex
	for root := 0; root < n; root++ {
		if state[root] != White {
			continue
		}
		state[root] = Gray
		stack = append(stack[:0], frame{id: root, succ: g.Successors(root)})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(top.succ) {
				state[top.id] = Black
				stack = stack[:len(stack)-1]
				continue
			}
			nbr := top.succ[top.next]
			top.next++

			switch state[nbr] {
			case White:
				state[nbr] = Gray
				stack = append(stack, frame{id: nbr, succ: g.Successors(nbr)})
			case Gray:
				// back edge Gray→Gray: the stack from nbr upward is the cycle
				return true, closeCycle(stack, nbr), nil
			}
		}
	}

	return false, nil, nil
}

// closeCycle extracts the vertices from start to the top of stack and closes
// the loop by appending start again.
func closeCycle(stack []frame, start int) []int {
	idx := indexOfFrame(stack, start)
	cycle := make([]int, 0, len(stack)-idx+1)
	for _, f := range stack[idx:] {
		cycle = append(cycle, f.id)
	}

	return append(cycle, start)
}
