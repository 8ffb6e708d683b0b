// File: view.go
// Role: Non-mutating graph views. Each view returns a fresh graph.
// Determinism:
//   - Views are built by replaying the source in traversal order.

package core

// InducedSubgraph returns a new graph holding the nodes for which keep
// returns true, and every edge whose endpoints are both kept. The input
// graph is not mutated.
//
// Complexity: O(V + E·log E).
func InducedSubgraph[N, E any](g *Graph[N, E], keep func(N) bool) *Graph[N, E] {
	out := g.emptyLike()
	for v := range g.nodes.all() {
		if keep(v) {
			out.InsertNode(v)
		}
	}
	for e := range g.All() {
		if out.IsNode(e.From) && out.IsNode(e.To) {
			_, _ = out.InsertEdge(e.From, e.To, e.Weight)
		}
	}

	return out
}

// Reverse returns a new graph with the same nodes and every edge src→dst
// turned into dst→src with the same weight.
//
// Complexity: O(V + E·log E).
func Reverse[N, E any](g *Graph[N, E]) *Graph[N, E] {
	out := g.emptyLike()
	out.InsertNodes(g.nodes.all())
	for e := range g.All() {
		// both endpoints were copied above
		_, _ = out.InsertEdge(e.To, e.From, e.Weight)
	}

	return out
}
