// Package dfs implements depth-first search (single-source and forest),
// topological sorting and cycle detection on core.Graph.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root or the full forest via WithFullTraversal
//   - Edges are followed in their stored direction; parallel edges count once
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V·log B + B) where B is the number of distinct connected pairs.
//   - Memory: O(V) for recursion stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is missing.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/gdwg/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker[N comparable, E any] struct {
	graph *core.Graph[N, E]
	opts  DFSOptions[N]
	res   *DFSResult[N]
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it restarts from every unvisited node (start is then ignored); otherwise it
// starts only from start.
// Returns DFSResult or error if aborted by context or hook.
func DFS[N comparable, E any](g *core.Graph[N, E], start N, opts ...Option[N]) (*DFSResult[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions[N]()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal && !g.IsNode(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.NodeCount()
	res := &DFSResult[N]{
		Order:   make([]N, 0, n),
		Depth:   make(map[N]int, n),
		Parent:  make(map[N]N, n),
		Visited: make(map[N]bool, n),
	}
	walker := &dfsWalker[N, E]{graph: g, opts: dopts, res: res}

	if dopts.FullTraversal {
		for _, v := range g.Nodes() {
			if !res.Visited[v] {
				if err := walker.traverse(v, 0); err != nil {
					return res, err
				}
			}
		}
	} else if err := walker.traverse(start, 0); err != nil {
		return res, err
	}

	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// traverse visits v at the given depth, recursing to its out-neighbors.
func (w *dfsWalker[N, E]) traverse(v N, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[v] = true
	w.res.Depth[v] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %v: %w", v, err)
		}
	}

	nbs, err := w.graph.Connections(v)
	if err != nil {
		w.res.Order = nil

		return fmt.Errorf("dfs: Connections(%v): %w", v, err)
	}

	for _, nb := range nbs {
		if nb == v {
			continue // self-loop
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nb) {
			w.opts.SkippedNeighbors++
			continue
		}
		if !w.res.Visited[nb] && (w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth) {
			w.res.Parent[nb] = v
			if err = w.traverse(nb, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %v: %w", v, err)
		}
	}

	w.res.Order = append(w.res.Order, v)

	return nil
}
