// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Edges are followed in their stored direction; weights are ignored and
//     parallel edges between the same pair count once.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor pairs via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	core.Graph.Connections returns destinations in ascending node order and
//	BFS enqueues them in that order, so the visit sequence is reproducible.
//
// Complexity (V = nodes, B = distinct connected pairs)
//
//   - Time:   O(V·log B + B)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "start")
//
//	res, err := bfs.BFS(
//	    g, "start",
//	    bfs.WithContext[string](ctx),
//	    bfs.WithMaxDepth[string](3),
//	    bfs.WithFilterNeighbor(func(curr, nbr string) bool { return curr != "skip" }),
//	    bfs.WithOnVisit(func(v string, depth int) error { return nil }),
//	)
//
// Options whose arguments do not mention the node type (WithContext,
// WithMaxDepth) need it spelled out.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start node does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if neighbor lookup fails for any node.
//   - ctx.Err()               on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
