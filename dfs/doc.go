// Package dfs implements depth‑first search traversal, cycle detection,
// and topological sort on a core.Graph.
//
// What:
//
//   - DFS (Depth‑First Search): explores as far as possible along each
//     branch before backtracking. Supports:
//   - Pre‑order and post‑order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - Forest traversal over every node
//   - DetectCycles: reports one directed cycle per back-edge using node
//     coloring (White, Gray, Black), each rotated to start at its smallest node.
//   - TopologicalSort: computes a linear ordering of nodes in an acyclic
//     graph, returning ErrCycleDetected otherwise.
//
// Edges are followed in their stored direction. Weights are ignored, and
// parallel edges between the same pair count once. Neighbors are expanded in
// ascending node order, so every result is deterministic.
//
// Key Types & Constants:
//
//   - White, Gray, Black (visitation markers)
//   - Option[N]: functional options for DFS behavior
//   - DFSOptions[N]: holds Context, hooks, MaxDepth, FilterNeighbor
//   - DFSResult[N]: collects post‑order, Depth, Parent, Visited maps
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start node not in graph
//   - ErrCycleDetected        cycle discovered by TopologicalSort
//   - context.Canceled        traversal canceled via context
//   - hook errors             propagated from OnVisit or OnExit
//
// Functions:
//
//   - DFS(g, start, opts...) (*DFSResult[N], error)
//   - DetectCycles(g) (bool, [][]N, error)
//   - TopologicalSort(g, opts...) ([]N, error)
package dfs
