// Package dfs provides common helpers shared by DFS, cycle detection, and
// topological sort.
package dfs

// frame is one entry of an explicit DFS work stack: a vertex together with
// its successor list and the position of the next successor to explore.
type frame struct {
	id    int   // vertex on the stack
	depth int   // distance from the tree root
	succ  []int // successors, fetched once on entry
	next  int   // index into succ of the next successor to examine
}

// indexOfFrame returns the position of the frame holding id in stack, or -1.
// Time Complexity: O(n) where n = len(stack).
func indexOfFrame(stack []frame, id int) int {
	for i := range stack {
		if stack[i].id == id {
			return i
		}
	}

	return -1
}

// reverse reverses s in place.
// Time Complexity: O(n).
func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
