// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted hop distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a start node, following
// edges in their stored direction and ignoring weights. Parallel edges count
// once. Neighbors are expanded in ascending node order, so results are
// deterministic.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gdwg/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a node with its BFS depth.
type queueItem[N comparable] struct {
	v     N
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N comparable, E any] struct {
	graph   *core.Graph[N, E]
	opts    BFSOptions[N]
	ctx     context.Context
	queue   []queueItem[N]
	visited map[N]bool
	res     *BFSResult[N]
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// the context error on cancellation, or any user-supplied hook error.
func BFS[N comparable, E any](g *core.Graph[N, E], start N, opts ...Option[N]) (*BFSResult[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.IsNode(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.NodeCount()
	w := &walker[N, E]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[N], 0, n),
		visited: make(map[N]bool, n),
		res: &BFSResult[N]{
			Order:  make([]N, 0, n),
			Depth:  make(map[N]int, n),
			Parent: make(map[N]N, n),
		},
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d, calls OnEnqueue and adds it to the queue.
func (w *walker[N, E]) enqueue(v N, d int) {
	w.visited[v] = true
	w.res.Depth[v] = d
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem[N]{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[N, E]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[N, E]) dequeue() queueItem[N] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v, item.depth)

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker[N, E]) visit(item queueItem[N]) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors retrieves out-neighbors, applies filtering and MaxDepth,
// and enqueues each unseen neighbor. Returns ErrNeighbors on lookup failure.
func (w *walker[N, E]) enqueueNeighbors(item queueItem[N]) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.Connections(item.v)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %v: %v", ErrNeighbors, item.v, err)
	}
	for _, nbr := range neighbors {
		// cancellation check inside neighbor iteration
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		if !w.visited[nbr] {
			w.res.Parent[nbr] = item.v
			w.enqueue(nbr, nextDepth)
		}
	}

	return nil
}
