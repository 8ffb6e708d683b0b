// File: methods_clone.go
// Role: Copying, moving and comparing whole graph instances.
// Determinism:
//   - Clone replays nodes and edges in ascending order, so the copy has the
//     same traversal order as the source.
// Notes:
//   - Clone/Take keep the source's comparators and logger.

package core

// Clone returns an independent deep copy. Later mutations of either graph do
// not affect the other.
//
// Complexity: O(V·log V + E·log E).
func (g *Graph[N, E]) Clone() *Graph[N, E] {
	out := g.emptyLike()
	out.InsertNodes(g.nodes.all())
	for e := range g.All() {
		// endpoints were replayed above; edges arrive in order, so inserts append
		_, _ = out.InsertEdge(e.From, e.To, e.Weight)
	}

	return out
}

// Take moves every node and edge out of g into a new graph and leaves g empty
// but usable. No values are copied.
//
// Complexity: O(1).
func (g *Graph[N, E]) Take() *Graph[N, E] {
	out := &Graph[N, E]{
		cmpNode:   g.cmpNode,
		cmpWeight: g.cmpWeight,
		logger:    g.logger,
		nodes:     g.nodes,
		edges:     g.edges,
	}
	g.nodes = newNodeStore(g.cmpNode)
	g.edges = newEdgeIndex(g.nodes, g.cmpWeight)
	g.logger.Debug("core: graph moved", "nodes", out.nodes.len(), "edges", out.edges.size)

	return out
}

// Equal reports whether both graphs hold the same node values and the same
// (src, dst, weight) triples, compared with g's comparators.
//
// Complexity: O(V + E).
func (g *Graph[N, E]) Equal(other *Graph[N, E]) bool {
	if g == other {
		return true
	}
	if other == nil || g.nodes.len() != other.nodes.len() || g.edges.size != other.edges.size {
		return false
	}
	for i, h := range g.nodes.order {
		if g.cmpNode(g.nodes.value(h), other.nodes.value(other.nodes.order[i])) != 0 {
			return false
		}
	}
	a, b := g.Begin(), other.Begin()
	for ; !a.AtEnd(); a, b = a.Next(), b.Next() {
		ea, eb := a.Value(), b.Value()
		if g.cmpNode(ea.From, eb.From) != 0 || g.cmpNode(ea.To, eb.To) != 0 || g.cmpWeight(ea.Weight, eb.Weight) != 0 {
			return false
		}
	}

	return true
}

// emptyLike returns an empty graph sharing g's comparators and logger.
func (g *Graph[N, E]) emptyLike() *Graph[N, E] {
	nodes := newNodeStore(g.cmpNode)

	return &Graph[N, E]{
		cmpNode:   g.cmpNode,
		cmpWeight: g.cmpWeight,
		logger:    g.logger,
		nodes:     nodes,
		edges:     newEdgeIndex(nodes, g.cmpWeight),
	}
}
