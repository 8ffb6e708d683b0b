package converters

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/gdwg/core"
)

// lightest aggregates parallel lines into the smallest weight.
// gonum calls it with nil or empty iterators for absent pairs.
func lightest(lines graph.WeightedLines) float64 {
	w := math.Inf(1)
	if lines == nil {
		return w
	}
	for lines.Next() {
		w = math.Min(w, lines.WeightedLine().Weight())
	}
	lines.Reset()

	return w
}

// ShortestPath returns a minimum-weight route from one node to another,
// treating each bundle of parallel edges as its lightest member. The route
// includes both endpoints; from == to yields [from] and 0.
//
// Complexity: O((V + E)·log V).
func ShortestPath[N cmp.Ordered, E any](g *core.Graph[N, E], from, to N, weight func(E) float64) ([]N, float64, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	if weight == nil {
		return nil, 0, ErrWeightFnNil
	}
	if _, err := g.IsConnected(from, to); err != nil {
		return nil, 0, err
	}
	for e := range g.All() {
		if w := weight(e.Weight); w < 0 {
			return nil, 0, fmt.Errorf("%w: %v → %v (%v)", ErrNegativeWeight, e.From, e.To, w)
		}
	}

	x, err := ToGonum(g, weight)
	if err != nil {
		return nil, 0, err
	}
	x.Graph.EdgeWeightFunc = lightest

	src, _ := x.ID(from)
	dst, _ := x.ID(to)
	nodes, total := path.DijkstraFrom(multi.Node(src), x.Graph).To(dst)
	if nodes == nil {
		return nil, math.Inf(1), fmt.Errorf("%w from %v to %v", ErrNoPath, from, to)
	}

	return x.Values(nodes), total, nil
}

// StronglyConnected returns the strongly connected components of g. Each
// component is sorted ascending and the components are ordered by their
// smallest member.
func StronglyConnected[N cmp.Ordered, E any](g *core.Graph[N, E]) ([][]N, error) {
	x, err := ToGonum(g, func(E) float64 { return 1 })
	if err != nil {
		return nil, err
	}

	sccs := topo.TarjanSCC(x.Graph)
	out := make([][]N, len(sccs))
	for i, c := range sccs {
		out[i] = x.Values(c)
		slices.Sort(out[i])
	}
	slices.SortFunc(out, func(a, b []N) int { return cmp.Compare(a[0], b[0]) })

	return out, nil
}
