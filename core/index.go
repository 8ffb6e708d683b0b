// File: index.go
// Role: Edge index. A slice of vertex-pair buckets sorted by (source value,
//       destination value); each bucket owns a sorted weight slice.
// Determinism:
//   - Bucket order depends only on current node values, never on handle numbers.
// Invariants:
//   - No bucket has an empty weight slice.
//   - Weights inside a bucket are strictly ascending (no duplicates).
//   - size == Σ len(bucket.weights).

package core

import "slices"

type bucket[E any] struct {
	src, dst handle
	weights  []E
}

type edgeIndex[N, E any] struct {
	nodes     *nodeStore[N]
	cmpWeight func(a, b E) int
	buckets   []bucket[E]
	size      int
}

func newEdgeIndex[N, E any](nodes *nodeStore[N], cmpWeight func(a, b E) int) *edgeIndex[N, E] {
	return &edgeIndex[N, E]{nodes: nodes, cmpWeight: cmpWeight}
}

type pairKey struct {
	src, dst handle
}

// compareKey orders a bucket against a (src, dst) pair by node values.
func (x *edgeIndex[N, E]) compareKey(b bucket[E], k pairKey) int {
	if c := x.nodes.compare(b.src, k.src); c != 0 {
		return c
	}

	return x.nodes.compare(b.dst, k.dst)
}

func (x *edgeIndex[N, E]) search(src, dst handle) (int, bool) {
	return slices.BinarySearchFunc(x.buckets, pairKey{src, dst}, x.compareKey)
}

// firstFrom returns the index of the first bucket whose source is src.
// Buckets sharing a source are contiguous.
func (x *edgeIndex[N, E]) firstFrom(src handle) int {
	i, _ := slices.BinarySearchFunc(x.buckets, src, func(b bucket[E], h handle) int {
		return x.nodes.compare(b.src, h)
	})

	return i
}

// locate finds the bucket and weight positions of an exact triple.
func (x *edgeIndex[N, E]) locate(src, dst handle, w E) (int, int, bool) {
	i, ok := x.search(src, dst)
	if !ok {
		return i, 0, false
	}
	j, ok := slices.BinarySearchFunc(x.buckets[i].weights, w, x.cmpWeight)

	return i, j, ok
}

// insert adds the triple and reports whether it was absent.
func (x *edgeIndex[N, E]) insert(src, dst handle, w E) bool {
	i, ok := x.search(src, dst)
	if !ok {
		x.buckets = slices.Insert(x.buckets, i, bucket[E]{src: src, dst: dst, weights: []E{w}})
		x.size++

		return true
	}
	b := &x.buckets[i]
	j, found := slices.BinarySearchFunc(b.weights, w, x.cmpWeight)
	if found {
		return false
	}
	b.weights = slices.Insert(b.weights, j, w)
	x.size++

	return true
}

// removeAt drops weight j of bucket i, and the bucket itself once empty.
func (x *edgeIndex[N, E]) removeAt(i, j int) {
	b := &x.buckets[i]
	b.weights = slices.Delete(b.weights, j, j+1)
	x.size--
	if len(b.weights) == 0 {
		x.buckets = slices.Delete(x.buckets, i, i+1)
	}
}

func (x *edgeIndex[N, E]) eraseTriple(src, dst handle, w E) bool {
	i, j, ok := x.locate(src, dst, w)
	if !ok {
		return false
	}
	x.removeAt(i, j)

	return true
}

// eraseIncident removes every bucket touching h and returns how many edges
// went with them.
func (x *edgeIndex[N, E]) eraseIncident(h handle) int {
	removed := 0
	x.buckets = slices.DeleteFunc(x.buckets, func(b bucket[E]) bool {
		if b.src != h && b.dst != h {
			return false
		}
		removed += len(b.weights)

		return true
	})
	x.size -= removed

	return removed
}

func (x *edgeIndex[N, E]) weightsBetween(src, dst handle) []E {
	i, ok := x.search(src, dst)
	if !ok {
		return nil
	}

	return slices.Clone(x.buckets[i].weights)
}

func (x *edgeIndex[N, E]) connected(src, dst handle) bool {
	_, ok := x.search(src, dst)

	return ok
}

// destinations lists the destinations of src's outgoing buckets, ascending.
func (x *edgeIndex[N, E]) destinations(src handle) []handle {
	var out []handle
	for i := x.firstFrom(src); i < len(x.buckets) && x.buckets[i].src == src; i++ {
		out = append(out, x.buckets[i].dst)
	}

	return out
}

// repoint moves every edge incident to from onto to: the affected buckets are
// extracted, their keys rewritten, and their weights reinserted. Rewritten
// triples that already exist collapse into the existing bucket.
func (x *edgeIndex[N, E]) repoint(from, to handle) {
	var moved []bucket[E]
	x.buckets = slices.DeleteFunc(x.buckets, func(b bucket[E]) bool {
		if b.src != from && b.dst != from {
			return false
		}
		moved = append(moved, b)

		return true
	})
	for _, b := range moved {
		x.size -= len(b.weights)
		if b.src == from {
			b.src = to
		}
		if b.dst == from {
			b.dst = to
		}
		for _, w := range b.weights {
			x.insert(b.src, b.dst, w)
		}
	}
}

// resort restores bucket order after a node value changed in place.
func (x *edgeIndex[N, E]) resort() {
	slices.SortFunc(x.buckets, func(a, b bucket[E]) int {
		return x.compareKey(a, pairKey{b.src, b.dst})
	})
}

func (x *edgeIndex[N, E]) reset() {
	x.buckets = nil
	x.size = 0
}
