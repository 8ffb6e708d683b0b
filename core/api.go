// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructors and read-only getters.
// Policy:
//   - No topology algorithms here.
//   - Every exported function documents its complexity.

package core

import (
	"cmp"
	"iter"
	"slices"
)

// New creates an empty Graph whose node values and weights are ordered by
// cmp.Compare.
//
// Complexity:
//   - Time O(len(opts)), Space O(1).
func New[N, E cmp.Ordered](opts ...Option) *Graph[N, E] {
	return NewFunc(cmp.Compare[N], cmp.Compare[E], opts...)
}

// NewFunc creates an empty Graph ordered by caller-supplied comparators.
// Each comparator must define a total order and return a negative number,
// zero, or a positive number as a < b, a == b, a > b. Values comparing equal
// are the same node (or the same weight).
//
// Panics if either comparator is nil.
//
// Complexity:
//   - Time O(len(opts)), Space O(1).
func NewFunc[N, E any](cmpNode func(a, b N) int, cmpWeight func(a, b E) int, opts ...Option) *Graph[N, E] {
	if cmpNode == nil || cmpWeight == nil {
		panic("core: NewFunc requires non-nil comparators")
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	nodes := newNodeStore(cmpNode)

	return &Graph[N, E]{
		cmpNode:   cmpNode,
		cmpWeight: cmpWeight,
		logger:    cfg.logger,
		nodes:     nodes,
		edges:     newEdgeIndex(nodes, cmpWeight),
	}
}

// FromSlice creates a Graph holding the given nodes and no edges.
// Duplicates collapse.
//
// Complexity:
//   - Time O(n·(log n + n)) worst case, Space O(n).
func FromSlice[N, E cmp.Ordered](nodes []N, opts ...Option) *Graph[N, E] {
	return FromSeq[N, E](slices.Values(nodes), opts...)
}

// FromSeq creates a Graph holding every node produced by seq and no edges.
//
// Complexity:
//   - Same as FromSlice over the produced values.
func FromSeq[N, E cmp.Ordered](seq iter.Seq[N], opts ...Option) *Graph[N, E] {
	g := New[N, E](opts...)
	g.InsertNodes(seq)

	return g
}

// NodeCount returns the number of stored nodes.
//
// Complexity: O(1).
func (g *Graph[N, E]) NodeCount() int {
	return g.nodes.len()
}

// EdgeCount returns the number of stored (src, dst, weight) triples.
//
// Complexity: O(1).
func (g *Graph[N, E]) EdgeCount() int {
	return g.edges.size
}

// Empty reports whether the graph stores no nodes. A graph without nodes
// never has edges.
//
// Complexity: O(1).
func (g *Graph[N, E]) Empty() bool {
	return g.nodes.len() == 0
}

// Stats produces a snapshot of catalog sizes.
//
// Complexity: O(1).
func (g *Graph[N, E]) Stats() *GraphStats {
	return &GraphStats{
		NodeCount:   g.nodes.len(),
		EdgeCount:   g.edges.size,
		BucketCount: len(g.edges.buckets),
	}
}
