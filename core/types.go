// Package core defines the central Graph and Edge types, the missing-node
// error, and the construction options.
//
// Errors:
//
//	ErrMissingNode - an operation referenced a node value that is not stored.
package core

import (
	"errors"
	"io"
	"log/slog"
)

// ErrMissingNode indicates an operation referenced a node value that is not
// currently stored in the graph. Every *MissingNodeError matches it via errors.Is.
var ErrMissingNode = errors.New("core: node does not exist")

// Operation-specific messages carried by MissingNodeError.
const (
	msgInsertEdge       = "cannot call InsertEdge when either src or dst node does not exist"
	msgReplaceNode      = "cannot call ReplaceNode on a node that doesn't exist"
	msgMergeReplaceNode = "cannot call MergeReplaceNode on old or new data if they don't exist in the graph"
	msgEraseEdge        = "cannot call EraseEdge on src or dst if they don't exist in the graph"
	msgIsConnected      = "cannot call IsConnected if src or dst node don't exist in the graph"
	msgWeights          = "cannot call Weights if src or dst node don't exist in the graph"
	msgConnections      = "cannot call Connections if src doesn't exist in the graph"
)

// Operation names reported by MissingNodeError.Op.
const (
	OpInsertEdge       = "InsertEdge"
	OpReplaceNode      = "ReplaceNode"
	OpMergeReplaceNode = "MergeReplaceNode"
	OpEraseEdge        = "EraseEdge"
	OpIsConnected      = "IsConnected"
	OpWeights          = "Weights"
	OpConnections      = "Connections"
)

var missingNodeMessages = map[string]string{
	OpInsertEdge:       msgInsertEdge,
	OpReplaceNode:      msgReplaceNode,
	OpMergeReplaceNode: msgMergeReplaceNode,
	OpEraseEdge:        msgEraseEdge,
	OpIsConnected:      msgIsConnected,
	OpWeights:          msgWeights,
	OpConnections:      msgConnections,
}

// MissingNodeError reports which operation was called with a node value that
// is not stored in the graph. The message is fixed per operation.
type MissingNodeError struct {
	op string
}

// Error returns the operation-specific message.
func (e *MissingNodeError) Error() string {
	return "core: " + missingNodeMessages[e.op]
}

// Is reports whether target is ErrMissingNode, so that
// errors.Is(err, ErrMissingNode) holds for every MissingNodeError.
func (e *MissingNodeError) Is(target error) bool {
	return target == ErrMissingNode
}

// Op returns the name of the operation whose precondition failed.
func (e *MissingNodeError) Op() string {
	return e.op
}

// IsMissingNode reports whether err is (or wraps) a missing-node error.
func IsMissingNode(err error) bool {
	if err == nil {
		return false
	}
	var e *MissingNodeError

	return errors.As(err, &e) || errors.Is(err, ErrMissingNode)
}

func missingNode(op string) error {
	return &MissingNodeError{op: op}
}

// Edge is the value-level view of one stored edge.
type Edge[N, E any] struct {
	// From is the source node value.
	From N

	// To is the destination node value.
	To N

	// Weight distinguishes parallel edges between From and To.
	Weight E
}

// Option configures a Graph at construction time.
type Option func(c *config)

type config struct {
	logger *slog.Logger
}

func defaultConfig() config {
	return config{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithLogger attaches a structured logger. Destructive topology rewrites
// (EraseNode, ReplaceNode, MergeReplaceNode, Clear, Take) are reported at
// Debug level. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("core: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}

// Graph is a directed weighted multigraph over node values N and weights E.
//
// The zero value is not usable; construct with New, NewFunc, FromSlice or FromSeq.
type Graph[N, E any] struct {
	cmpNode   func(a, b N) int // total order over node values
	cmpWeight func(a, b E) int // total order over weights
	logger    *slog.Logger

	// Storage
	nodes *nodeStore[N]    // node arena + value-ordered handle index
	edges *edgeIndex[N, E] // vertex-pair buckets ordered by node values
}

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	NodeCount   int // stored nodes
	EdgeCount   int // stored (src, dst, weight) triples
	BucketCount int // distinct (src, dst) pairs with at least one weight
}
