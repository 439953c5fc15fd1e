// Package dfs implements depth‑first search traversal, cycle detection,
// and topological sort on implicit directed graphs whose vertices are the
// integers 0..Order()-1.
//
// What:
//
//   - DFS (Depth‑First Search): explores as far as possible along each
//     branch before backtracking. Supports:
//   - Pre‑order and post‑order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - Forest traversal over every vertex
//   - DetectCycle: reports one directed cycle using vertex coloring
//     (White, Gray, Black) and back‑edge detection.
//   - TopologicalSort: computes a linear ordering of vertices in a directed
//     acyclic graph (DAG), returning ErrCycleDetected if cycles exist.
//
// All three walk an explicit work stack of pending successor lists, never
// the call stack, so a path of a million vertices is as safe as a path of ten.
//
// Why:
//   - Dynamic programming over DAGs in reverse topological order (post-order hooks)
//   - Verify that a graph believed to be acyclic really is
//   - Determine safe processing orders
//
// Key Types & Constants:
//
//   - Graph: Order() and Successors(v), implemented by gridgraph.Grid
//   - VertexState: White, Gray, Black (visitation markers)
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds Context, hooks, MaxDepth, FilterNeighbor
//   - DFSResult: collects post‑order, Depth, Parent, Visited maps
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - DetectCycle:     Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph is nil
//   - ErrStartVertexNotFound  start vertex id out of range
//   - ErrCycleDetected        cycle discovered by TopologicalSort
//   - context.Canceled        traversal canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
