// TopologicalSort computes a linear ordering of nodes such that for every
// edge u→v, u appears before v. If the graph contains a cycle (self-loops
// included), ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V·log B + B)
//   - Memory: O(V)

package dfs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/gdwg/core"
)

// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
var ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[N comparable, E any] struct {
	graph *core.Graph[N, E]
	opts  topoOptions
	state map[N]int // White / Gray / Black
	order []N       // post-order
}

// TopologicalSort computes a topological ordering of all nodes in g.
// Roots are tried in ascending node order and neighbors in ascending order,
// so the result is deterministic.
// If g is nil, returns ErrGraphNil. If a cycle is detected, returns an error
// wrapping ErrCycleDetected that names the node closing the cycle.
func TopologicalSort[N comparable, E any](g *core.Graph[N, E], options ...TopoOption) ([]N, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	nodes := g.Nodes()
	sorter := &topoSorter[N, E]{
		graph: g,
		opts:  opts,
		state: make(map[N]int, len(nodes)),
		order: make([]N, 0, len(nodes)),
	}
	for _, v := range nodes {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	slices.Reverse(sorter.order)

	return sorter.order, nil
}

// visit performs a DFS from v, marking states and detecting back-edges.
func (t *topoSorter[N, E]) visit(v N) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	switch t.state[v] {
	case Gray:
		return fmt.Errorf("%w at %v", ErrCycleDetected, v)
	case Black:
		return nil
	}
	t.state[v] = Gray

	neighbors, err := t.graph.Connections(v)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, nb := range neighbors {
		if err = t.visit(nb); err != nil {
			return err
		}
	}

	t.state[v] = Black
	t.order = append(t.order, v)

	return nil
}
