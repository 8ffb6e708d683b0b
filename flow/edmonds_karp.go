// SPDX-License-Identifier: MIT

package flow

import (
	"cmp"
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/gdwg/core"
)

// EdmondsKarp returns the maximum flow from source to sink and the residual
// network left after the last augmentation. source == sink yields zero flow.
func EdmondsKarp[N cmp.Ordered, E Capacity](ctx context.Context, g *core.Graph[N, E], source, sink N, opts ...Option) (float64, *core.Graph[N, float64], error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return 0, nil, ErrGraphNil
	}
	if !g.IsNode(source) {
		return 0, nil, fmt.Errorf("%w: %v", ErrSourceNotFound, source)
	}
	if !g.IsNode(sink) {
		return 0, nil, fmt.Errorf("%w: %v", ErrSinkNotFound, sink)
	}

	res, err := buildResidual(g, cfg.Epsilon)
	if err != nil {
		return 0, nil, err
	}
	if source == sink {
		return 0, res.g, nil
	}

	var total float64
	for {
		if err := ctx.Err(); err != nil {
			return total, res.g, fmt.Errorf("flow: %w", err)
		}
		path, bottle := res.augmentingPath(source, sink)
		if path == nil {
			break
		}
		cfg.Logger.Debug("flow: augmenting path", "path", path, "flow", bottle)
		total += bottle
		for i := 1; i < len(path); i++ {
			u, v := path[i-1], path[i]
			res.add(u, v, -bottle)
			res.add(v, u, bottle)
		}
	}

	return total, res.g, nil
}

// buildResidual sums parallel capacities per ordered pair and drops
// self-loops.
func buildResidual[N cmp.Ordered, E Capacity](g *core.Graph[N, E], eps float64) (network[N], error) {
	r := network[N]{g: core.FromSlice[N, float64](g.Nodes()), eps: eps}

	var (
		sum  float64
		prev core.Edge[N, E]
		open bool
	)
	flush := func() {
		if open && prev.From != prev.To && sum > eps {
			_, _ = r.g.InsertEdge(prev.From, prev.To, sum)
		}
	}
	for e := range g.All() {
		c := float64(e.Weight)
		if c < -eps {
			return r, EdgeError{From: e.From, To: e.To, Cap: c}
		}
		if open && (e.From != prev.From || e.To != prev.To) {
			flush()
			sum = 0
		}
		sum += c
		prev, open = e, true
	}
	flush()

	return r, nil
}

// augmentingPath finds a fewest-edge path with positive residual capacity
// and returns it with its bottleneck, or nil.
func (r network[N]) augmentingPath(source, sink N) ([]N, float64) {
	parent := map[N]N{}
	bottle := map[N]float64{source: math.Inf(1)}
	queue := []N{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		next, _ := r.g.Connections(u)
		for _, v := range next {
			if _, seen := bottle[v]; seen {
				continue
			}
			c := r.capacity(u, v)
			if c <= r.eps {
				continue
			}
			parent[v] = u
			bottle[v] = math.Min(bottle[u], c)
			if v == sink {
				path := []N{sink}
				for cur := sink; cur != source; {
					cur = parent[cur]
					path = append(path, cur)
				}
				for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
					path[i], path[j] = path[j], path[i]
				}
				return path, bottle[sink]
			}
			queue = append(queue, v)
		}
	}

	return nil, 0
}
