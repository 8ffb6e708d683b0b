package prim_kruskal

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/gdwg/core"
)

// Kruskal computes a minimum spanning tree of the undirected view of g.
//
// Edges are taken in graph order (source, destination, weight) and stably
// sorted by weight, so ties resolve the same way on every run.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func Kruskal[N comparable, E Weight](g *core.Graph[N, E]) ([]core.Edge[N, E], E, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	vertices := g.Nodes()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		return []core.Edge[N, E]{}, 0, nil
	}

	edges := slices.DeleteFunc(g.Edges(), func(e core.Edge[N, E]) bool {
		return e.From == e.To
	})
	slices.SortStableFunc(edges, func(a, b core.Edge[N, E]) int {
		return cmp.Compare(a.Weight, b.Weight)
	})

	ds := newDisjointSet(vertices)
	var (
		mst   = make([]core.Edge[N, E], 0, len(vertices)-1)
		total E
	)
	for _, e := range edges {
		if !ds.union(e.From, e.To) {
			continue
		}
		mst = append(mst, e)
		total += e.Weight
		if len(mst) == len(vertices)-1 {
			break
		}
	}
	if len(mst) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// disjointSet is a union-find with path halving and union by rank.
type disjointSet[N comparable] struct {
	parent map[N]N
	rank   map[N]int
}

func newDisjointSet[N comparable](vertices []N) *disjointSet[N] {
	ds := &disjointSet[N]{
		parent: make(map[N]N, len(vertices)),
		rank:   make(map[N]int, len(vertices)),
	}
	for _, v := range vertices {
		ds.parent[v] = v
	}

	return ds
}

func (ds *disjointSet[N]) find(u N) N {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (ds *disjointSet[N]) union(u, v N) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}
