package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/gdwg/core"
)

// Prim computes a minimum spanning tree of the undirected view of g by
// growing outwards from root.
//
// Every edge is reachable from both endpoints. Among equal weights the edge
// pushed first wins, which keeps the result deterministic.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim[N comparable, E Weight](g *core.Graph[N, E], root N) ([]core.Edge[N, E], E, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	if !g.IsNode(root) {
		return nil, 0, ErrRootNotFound
	}
	n := g.NodeCount()

	// incident edges per vertex, in graph order, self-loops dropped
	incident := make(map[N][]core.Edge[N, E], n)
	for e := range g.All() {
		if e.From == e.To {
			continue
		}
		incident[e.From] = append(incident[e.From], e)
		incident[e.To] = append(incident[e.To], e)
	}

	visited := make(map[N]bool, n)
	mst := make([]core.Edge[N, E], 0, n-1)
	var total E
	pq := &edgePQ[N, E]{}

	visit := func(v N) {
		visited[v] = true
		for _, e := range incident[v] {
			if !visited[other(e, v)] {
				pq.seq++
				heap.Push(pq, candidate[N, E]{edge: e, to: other(e, v), seq: pq.seq})
			}
		}
	}

	visit(root)
	for pq.Len() > 0 && len(mst) < n-1 {
		c := heap.Pop(pq).(candidate[N, E])
		if visited[c.to] {
			continue
		}
		mst = append(mst, c.edge)
		total += c.edge.Weight
		visit(c.to)
	}
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

func other[N comparable, E any](e core.Edge[N, E], v N) N {
	if e.From == v {
		return e.To
	}

	return e.From
}

// candidate is an edge that would attach the vertex `to` to the tree.
type candidate[N comparable, E Weight] struct {
	edge core.Edge[N, E]
	to   N
	seq  int
}

// edgePQ is a min-heap of candidates ordered by weight, then push order.
type edgePQ[N comparable, E Weight] struct {
	items []candidate[N, E]
	seq   int
}

func (pq *edgePQ[N, E]) Len() int { return len(pq.items) }

func (pq *edgePQ[N, E]) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.edge.Weight != b.edge.Weight {
		return a.edge.Weight < b.edge.Weight
	}

	return a.seq < b.seq
}

func (pq *edgePQ[N, E]) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *edgePQ[N, E]) Push(x any) { pq.items = append(pq.items, x.(candidate[N, E])) }

func (pq *edgePQ[N, E]) Pop() any {
	old := pq.items
	last := old[len(old)-1]
	pq.items = old[:len(old)-1]

	return last
}
