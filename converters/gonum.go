// SPDX-License-Identifier: MIT

package converters

import (
	"cmp"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/multi"

	"github.com/katalvlaran/gdwg/core"
)

// Exported is a gonum copy of a core graph together with the rank table that
// maps gonum node IDs back to node values.
type Exported[N cmp.Ordered] struct {
	Graph  *multi.WeightedDirectedGraph
	values []N
}

// ID returns the gonum node ID of v.
func (x *Exported[N]) ID(v N) (int64, bool) {
	i, ok := slices.BinarySearch(x.values, v)
	return int64(i), ok
}

// Value returns the node value behind a gonum node ID. Panics if id is out of
// range.
func (x *Exported[N]) Value(id int64) N {
	return x.values[id]
}

// Values translates a gonum node slice into node values.
func (x *Exported[N]) Values(nodes []graph.Node) []N {
	out := make([]N, len(nodes))
	for i, n := range nodes {
		out[i] = x.values[n.ID()]
	}

	return out
}

// ToGonum copies g into a gonum weighted directed multigraph. Node k of the
// result is the k-th smallest node of g; every edge becomes one line whose
// weight is weight(e.Weight). Lines are added in traversal order.
//
// Complexity: O(V + E).
func ToGonum[N cmp.Ordered, E any](g *core.Graph[N, E], weight func(E) float64) (*Exported[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if weight == nil {
		return nil, ErrWeightFnNil
	}

	x := &Exported[N]{Graph: multi.NewWeightedDirectedGraph(), values: g.Nodes()}
	for i := range x.values {
		x.Graph.AddNode(multi.Node(i))
	}
	for e := range g.All() {
		u, _ := x.ID(e.From)
		v, _ := x.ID(e.To)
		x.Graph.SetWeightedLine(x.Graph.NewWeightedLine(multi.Node(u), multi.Node(v), weight(e.Weight)))
	}

	return x, nil
}

// FromGonum builds a core graph from any gonum weighted directed multigraph.
// label names each gonum node; two gonum nodes with the same label collapse
// into one core node. Lines with equal endpoints and equal weight collapse
// into one edge.
func FromGonum[N cmp.Ordered](src graph.WeightedDirectedMultigraph, label func(id int64) N, opts ...core.Option) (*core.Graph[N, float64], error) {
	if src == nil {
		return nil, ErrGraphNil
	}
	if label == nil {
		return nil, ErrLabelFnNil
	}

	g := core.New[N, float64](opts...)
	nodes := graph.NodesOf(src.Nodes())
	for _, n := range nodes {
		g.InsertNode(label(n.ID()))
	}
	for _, u := range nodes {
		for _, v := range graph.NodesOf(src.From(u.ID())) {
			lines := src.WeightedLines(u.ID(), v.ID())
			for lines.Next() {
				if _, err := g.InsertEdge(label(u.ID()), label(v.ID()), lines.WeightedLine().Weight()); err != nil {
					return nil, fmt.Errorf("converters: FromGonum: %w", err)
				}
			}
		}
	}

	return g, nil
}
