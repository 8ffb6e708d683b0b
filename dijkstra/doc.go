// Package dijkstra computes single-source shortest paths over a
// *core.Graph[N, E] with non-negative numeric edge weights.
//
// Parallel edges are collapsed to their lightest member while relaxing, so a
// multigraph behaves like the simple graph of its cheapest connections.
// Self-loops never improve a distance and are ignored.
//
//	res, err := dijkstra.Dijkstra(g, "A")
//	path, _ := res.PathTo("D")
//	cost := res.Dist["D"]
//
// Options:
//
//   - WithMaxDistance(d): vertices farther than d are left unsettled and
//     absent from the result.
//   - WithInfEdgeThreshold(t): edges weighing t or more are impassable.
//
// Errors:
//
//	ErrNilGraph          graph is nil
//	ErrVertexNotFound    source is not a node
//	ErrNegativeWeight    an edge weighs less than zero (O(E) pre-scan)
//	ErrUnreachable       PathTo on a vertex the run never settled
//
// Option constructors panic on a negative distance cap or a non-positive
// threshold.
//
// Complexity: O((V + E)·log V) time, O(V + E) space with a lazy heap.
// Ties are broken by insertion order, so Prev is deterministic.
package dijkstra
