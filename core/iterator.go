// File: iterator.go
// Role: Bidirectional edge cursor over the edge index, plus range-over-func
//       sequences built on it.
// Determinism:
//   - Traversal order is source value, then destination value, then weight.
// Representation:
//   - A cursor is (bucket index, weight index). End is (len(buckets), 0).
//   - There is no "before first" state; Begin() equals End() on an edge-free graph.

package core

import "iter"

// Iterator is a position in a graph's global edge order. It is a small value:
// Next and Prev return the moved cursor and leave the receiver untouched.
//
// The zero Iterator is not bound to any graph and never equals an iterator
// obtained from one. Any mutation of the graph invalidates outstanding
// iterators, except the iterator returned by EraseEdgeAt/EraseEdgeRange.
type Iterator[N, E any] struct {
	g      *Graph[N, E]
	bucket int
	weight int
}

// Begin returns a cursor at the first edge, or End() when there are none.
func (g *Graph[N, E]) Begin() Iterator[N, E] {
	return Iterator[N, E]{g: g}
}

// End returns the past-the-last cursor.
func (g *Graph[N, E]) End() Iterator[N, E] {
	return Iterator[N, E]{g: g, bucket: len(g.edges.buckets)}
}

// AtEnd reports whether the cursor is past the last edge. Unbound iterators
// are always at end.
func (it Iterator[N, E]) AtEnd() bool {
	return it.g == nil || it.bucket >= len(it.g.edges.buckets)
}

// Valid reports whether Value may be called.
func (it Iterator[N, E]) Valid() bool {
	return !it.AtEnd()
}

// Value returns the (From, To, Weight) tuple under the cursor.
// Panics when the cursor is at end.
func (it Iterator[N, E]) Value() Edge[N, E] {
	if it.AtEnd() {
		panic("core: Value called on an end iterator")
	}
	b := it.g.edges.buckets[it.bucket]

	return Edge[N, E]{
		From:   it.g.nodes.value(b.src),
		To:     it.g.nodes.value(b.dst),
		Weight: b.weights[it.weight],
	}
}

// Next returns the cursor advanced by one edge. Advancing past the last
// weight of a bucket moves to the first weight of the next bucket, or to
// End(). Panics when the cursor is already at end.
func (it Iterator[N, E]) Next() Iterator[N, E] {
	if it.AtEnd() {
		panic("core: Next called on an end iterator")
	}
	if it.weight+1 < len(it.g.edges.buckets[it.bucket].weights) {
		it.weight++

		return it
	}
	it.bucket++
	it.weight = 0

	return it
}

// Prev returns the cursor moved back by one edge. From End() it moves to the
// last weight of the last bucket; from the first weight of a bucket it moves
// to the last weight of the previous bucket. Panics on the first edge or on
// an unbound iterator.
func (it Iterator[N, E]) Prev() Iterator[N, E] {
	if it.g == nil {
		panic("core: Prev called on an unbound iterator")
	}
	buckets := it.g.edges.buckets
	if it.bucket < len(buckets) && it.weight > 0 {
		it.weight--

		return it
	}
	if it.bucket == 0 {
		panic("core: Prev called on the first iterator")
	}
	it.bucket--
	it.weight = len(buckets[it.bucket].weights) - 1

	return it
}

// Equal reports whether both cursors belong to the same graph and sit on the
// same position.
func (it Iterator[N, E]) Equal(other Iterator[N, E]) bool {
	return it.g == other.g && it.bucket == other.bucket && it.weight == other.weight
}

// All yields every edge in traversal order.
func (g *Graph[N, E]) All() iter.Seq[Edge[N, E]] {
	return func(yield func(Edge[N, E]) bool) {
		for it := g.Begin(); !it.AtEnd(); it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Backward yields every edge in reverse traversal order.
func (g *Graph[N, E]) Backward() iter.Seq[Edge[N, E]] {
	return func(yield func(Edge[N, E]) bool) {
		if g.edges.size == 0 {
			return
		}
		first := g.Begin()
		for it := g.End().Prev(); ; it = it.Prev() {
			if !yield(it.Value()) || it.Equal(first) {
				return
			}
		}
	}
}
