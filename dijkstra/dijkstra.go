// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gdwg/core"
)

// Dijkstra settles every vertex reachable from source and returns the
// distances together with the predecessor tree.
func Dijkstra[N comparable, E Weight](g *core.Graph[N, E], source N, opts ...Option[E]) (*Result[N, E], error) {
	var cfg Options[E]
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.IsNode(source) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}
	for e := range g.All() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	r := &runner[N, E]{
		g:    g,
		cfg:  cfg,
		best: map[N]E{source: 0},
		res: &Result[N, E]{
			Source: source,
			Dist:   make(map[N]E),
			Prev:   make(map[N]N),
		},
	}
	r.push(source, 0)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

type runner[N comparable, E Weight] struct {
	g    *core.Graph[N, E]
	cfg  Options[E]
	best map[N]E // tentative distances
	pq   nodePQ[N, E]
	seq  int
	res  *Result[N, E]
}

func (r *runner[N, E]) push(v N, d E) {
	heap.Push(&r.pq, nodeItem[N, E]{id: v, dist: d, seq: r.seq})
	r.seq++
}

func (r *runner[N, E]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem[N, E])
		if _, done := r.res.Dist[item.id]; done {
			continue
		}
		if r.cfg.HasMaxDistance && item.dist > r.cfg.MaxDistance {
			break
		}
		r.res.Dist[item.id] = item.dist
		if err := r.relax(item.id, item.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax offers u's neighbours a path through u, using the lightest of the
// parallel edges u→v.
func (r *runner[N, E]) relax(u N, du E) error {
	next, err := r.g.Connections(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbours of %v: %w", u, err)
	}
	for _, v := range next {
		if _, done := r.res.Dist[v]; done {
			continue
		}
		ws, err := r.g.Weights(u, v)
		if err != nil {
			return fmt.Errorf("dijkstra: weights %v→%v: %w", u, v, err)
		}
		w := ws[0]
		for _, x := range ws[1:] {
			w = min(w, x)
		}
		if r.cfg.HasInfThreshold && w >= r.cfg.InfEdgeThreshold {
			continue
		}
		nd := du + w
		if r.cfg.HasMaxDistance && nd > r.cfg.MaxDistance {
			continue
		}
		if old, seen := r.best[v]; seen && nd >= old {
			continue
		}
		r.best[v] = nd
		r.res.Prev[v] = u
		r.push(v, nd)
	}

	return nil
}

type nodeItem[N comparable, E Weight] struct {
	id   N
	dist E
	seq  int
}

type nodePQ[N comparable, E Weight] []nodeItem[N, E]

func (pq nodePQ[N, E]) Len() int { return len(pq) }

func (pq nodePQ[N, E]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ[N, E]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[N, E]) Push(x any) { *pq = append(*pq, x.(nodeItem[N, E])) }

func (pq *nodePQ[N, E]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
