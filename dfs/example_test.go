package dfs_test

import (
	"fmt"
	"strings"

	"github.com/fbleibel/redmart-ski/dfs"
)

// names labels vertices 0..10 as A..K for printing.
var names = strings.Split("A B C D E F G H I J K", " ")

func label(ids []int) string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = names[id]
	}

	return strings.Join(out, " ")
}

// ExampleDFS demonstrates a depth-first traversal (post-order) on a diamond-shaped graph.
// Graph structure:
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
//	 / \
//	E   F
//
// Starting at "A", expected post-order: E F D B C A
func ExampleDFS() {
	// A=0 … F=5, adjacency lists in successor order
	g := adjGraph{
		{1, 2}, // A -> B, C
		{3},    // B -> D
		{3},    // C -> D
		{4, 5}, // D -> E, F
		nil,    // E
		nil,    // F
	}

	res, err := dfs.DFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(label(res.Order))

	// Output:
	// E F D B C A
}

// ExampleTopologicalSort demonstrates computing a valid topological order
// on a DAG with a shared child D. Graph:
//
//	  A
//	 / \
//	B   C
//	 \ / \
//	  D   G
//	 / \   \
//	E   F   H
func ExampleTopologicalSort() {
	g := adjGraph{
		{1, 2}, // A -> B, C
		{3},    // B -> D
		{3, 6}, // C -> D, G
		{4, 5}, // D -> E, F
		nil,    // E
		nil,    // F
		{7},    // G -> H
		nil,    // H
	}

	order, err := dfs.TopologicalSort(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(label(order))

	// Output:
	// A C G H B D F E
}

// ExampleDetectCycle shows detecting a cycle in a directed graph whose
// loop B → D → H → I → J → K → B hangs off a chain starting at A.
func ExampleDetectCycle() {
	g := adjGraph{
		{1},    // A -> B
		{2, 3}, // B -> C, D
		{4},    // C -> E
		{7},    // D -> H
		{5},    // E -> F
		{6},    // F -> G
		nil,    // G
		{8},    // H -> I
		{9},    // I -> J
		{10},   // J -> K
		{1},    // K -> B closes the cycle
	}

	has, cycle, err := dfs.DetectCycle(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(has)
	fmt.Println(strings.ReplaceAll(label(cycle), " ", " -> "))

	// Output:
	// true
	// B -> D -> H -> I -> J -> K -> B
}
