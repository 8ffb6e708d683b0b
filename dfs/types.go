// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor filtering,
// full-graph (forest) traversal, and basic diagnostics.
package dfs

import (
	"context"
	"errors"
)

// VertexState represents the DFS visitation state of a node.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the recursion stack (visiting).
	Black        // Black: the node and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS,
	// TopologicalSort, or DetectCycles.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start node does not exist
	// in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option[N comparable] func(*DFSOptions[N])

// DFSOptions holds configurable parameters for DFS traversal.
// It controls hooks, limits, filtering, full-graph mode, and diagnostics.
type DFSOptions[N comparable] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a node (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v N) error

	// OnExit, if non-nil, is invoked after all descendants of a node have
	// been explored (post-order), before appending to result.Order.
	// Returning an error aborts traversal and leaves Order empty.
	OnExit func(v N) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before recursing.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(v N) bool

	// FullTraversal, if true, runs DFS from every unvisited node in ascending
	// order, covering nodes unreachable from the start (forest traversal).
	FullTraversal bool

	// SkippedNeighbors counts neighbors skipped because FilterNeighbor
	// returned false.
	SkippedNeighbors int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions[N comparable]() DFSOptions[N] {
	return DFSOptions[N]{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext[N comparable](ctx context.Context) Option[N] {
	return func(o *DFSOptions[N]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit[N comparable](fn func(v N) error) Option[N] {
	return func(o *DFSOptions[N]) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit[N comparable](fn func(v N) error) Option[N] {
	return func(o *DFSOptions[N]) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start node is visited.
func WithMaxDepth[N comparable](limit int) Option[N] {
	return func(o *DFSOptions[N]) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbors.
// If fn(v) == false, that neighbor is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor[N comparable](fn func(v N) bool) Option[N] {
	return func(o *DFSOptions[N]) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
func WithFullTraversal[N comparable]() Option[N] {
	return func(o *DFSOptions[N]) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult[N comparable] struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []N

	// Depth maps each node to its depth in the DFS tree that discovered it.
	Depth map[N]int

	// Parent maps each node to the node from which it was first discovered.
	// Tree roots do not appear.
	Parent map[N]N

	// Visited flags which nodes were reached during the traversal.
	Visited map[N]bool

	// SkippedNeighbors reports how many neighbors were skipped by
	// FilterNeighbor, aggregated across all trees.
	SkippedNeighbors int
}
