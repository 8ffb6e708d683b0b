// Package prim_kruskal computes minimum spanning trees over the undirected
// view of a *core.Graph.
//
// The graph is directed and may hold parallel edges. Both algorithms treat
// every edge u→v as the undirected pair {u,v}, ignore self-loops and keep
// the lightest of any parallel edges. A graph built with
// builder.WithBidirectional therefore yields the same tree as its one-way
// counterpart.
//
// Algorithms Provided
//
//   - Kruskal(g) sorts all edges by weight (stable, in graph order) and
//     merges components with a union-find. O(E log E).
//
//   - Prim(g, root) grows a single tree from root with a min-heap of
//     candidate edges. O(E log V).
//
// Returned edges keep the orientation they have in g. Both return
// ErrDisconnected when the undirected view is not connected (including the
// empty graph) and ErrGraphNil for a nil graph. Prim also reports
// ErrRootNotFound for an unknown root.
//
// Compute dispatches on MSTOptions for callers that select the method at
// run time.
package prim_kruskal
