// File: methods_edges.go
// Role: Edge lifecycle & queries: InsertEdge/EraseEdge/EraseEdgeAt/EraseEdgeRange,
//       IsConnected/Weights/Connections/Find/Edges, Clear.
// Determinism:
//   - Weights() ascending; Connections() ascending; Edges() in traversal order.

package core

// resolvePair resolves both endpoints or reports that one is missing.
func (g *Graph[N, E]) resolvePair(src, dst N) (handle, handle, bool) {
	hs, okSrc := g.nodes.resolve(src)
	hd, okDst := g.nodes.resolve(dst)

	return hs, hd, okSrc && okDst
}

// InsertEdge adds the edge src→dst with weight w.
// Returns false if that exact triple is already stored.
// Returns *MissingNodeError if src or dst is not a node.
// Complexity: O(log V + log B + B) worst case for the bucket insertion.
func (g *Graph[N, E]) InsertEdge(src, dst N, w E) (bool, error) {
	hs, hd, ok := g.resolvePair(src, dst)
	if !ok {
		return false, missingNode(OpInsertEdge)
	}

	return g.edges.insert(hs, hd, w), nil
}

// EraseEdge removes the edge src→dst with weight w.
// Returns false if both nodes exist but the triple does not.
// Returns *MissingNodeError if src or dst is not a node.
func (g *Graph[N, E]) EraseEdge(src, dst N, w E) (bool, error) {
	hs, hd, ok := g.resolvePair(src, dst)
	if !ok {
		return false, missingNode(OpEraseEdge)
	}

	return g.edges.eraseTriple(hs, hd, w), nil
}

// EraseEdgeAt removes the edge under it and returns a cursor to the edge that
// followed it, or End(). Given End() (or an iterator of another graph) it
// removes nothing and returns End().
// Complexity: O(W) within the bucket, O(B) when the bucket empties.
func (g *Graph[N, E]) EraseEdgeAt(it Iterator[N, E]) Iterator[N, E] {
	if it.g != g || it.AtEnd() {
		return g.End()
	}
	lastInBucket := len(g.edges.buckets[it.bucket].weights) == 1
	g.edges.removeAt(it.bucket, it.weight)
	if lastInBucket {
		// the following bucket slid into this index
		return Iterator[N, E]{g: g, bucket: it.bucket}
	}
	if it.weight < len(g.edges.buckets[it.bucket].weights) {
		return it
	}

	return Iterator[N, E]{g: g, bucket: it.bucket + 1}
}

// EraseEdgeRange removes every edge in [first, last) and returns the cursor
// now holding last's edge (End() if last was End()). first must not come
// after last in traversal order.
func (g *Graph[N, E]) EraseEdgeRange(first, last Iterator[N, E]) Iterator[N, E] {
	if first.g != g {
		return g.End()
	}
	// Positions shift while erasing, so count first and erase by count.
	n := 0
	for it := first; !it.Equal(last) && !it.AtEnd(); it = it.Next() {
		n++
	}
	cur := first
	for ; n > 0; n-- {
		cur = g.EraseEdgeAt(cur)
	}

	return cur
}

// IsConnected reports whether at least one edge src→dst exists.
// Returns *MissingNodeError if src or dst is not a node.
// Complexity: O(log V + log B).
func (g *Graph[N, E]) IsConnected(src, dst N) (bool, error) {
	hs, hd, ok := g.resolvePair(src, dst)
	if !ok {
		return false, missingNode(OpIsConnected)
	}

	return g.edges.connected(hs, hd), nil
}

// Weights returns the weights of all edges src→dst, ascending. The slice is
// empty when the nodes exist but are not connected.
// Returns *MissingNodeError if src or dst is not a node.
func (g *Graph[N, E]) Weights(src, dst N) ([]E, error) {
	hs, hd, ok := g.resolvePair(src, dst)
	if !ok {
		return nil, missingNode(OpWeights)
	}

	return g.edges.weightsBetween(hs, hd), nil
}

// Connections returns the distinct destinations of src's outgoing edges,
// ascending.
// Returns *MissingNodeError if src is not a node.
func (g *Graph[N, E]) Connections(src N) ([]N, error) {
	hs, ok := g.nodes.resolve(src)
	if !ok {
		return nil, missingNode(OpConnections)
	}
	dsts := g.edges.destinations(hs)
	out := make([]N, len(dsts))
	for i, h := range dsts {
		out[i] = g.nodes.value(h)
	}

	return out, nil
}

// Find returns a cursor at the edge (src, dst, w), or End() if it is not
// stored. Absent nodes are not an error here.
// Complexity: O(log V + log B + log W).
func (g *Graph[N, E]) Find(src, dst N, w E) Iterator[N, E] {
	hs, hd, ok := g.resolvePair(src, dst)
	if !ok {
		return g.End()
	}
	i, j, found := g.edges.locate(hs, hd, w)
	if !found {
		return g.End()
	}

	return Iterator[N, E]{g: g, bucket: i, weight: j}
}

// Edges returns a snapshot of every edge in traversal order.
// Complexity: O(E).
func (g *Graph[N, E]) Edges() []Edge[N, E] {
	out := make([]Edge[N, E], 0, g.edges.size)
	for e := range g.All() {
		out = append(out, e)
	}

	return out
}

// Clear removes all nodes and edges. Options such as the logger are kept.
// Complexity: O(1).
func (g *Graph[N, E]) Clear() {
	nodes, edges := g.nodes.len(), g.edges.size
	g.edges.reset()
	g.nodes.reset()
	g.logger.Debug("core: graph cleared", "nodes", nodes, "edges", edges)
}
