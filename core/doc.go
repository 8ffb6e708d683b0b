// Package core provides Graph, a generic directed weighted multigraph with
// value semantics and a deterministic, fully ordered edge traversal.
//
// A Graph[N, E] stores distinct node values of type N and edges identified by
// the triple (From, To, Weight). Any number of parallel edges may connect the
// same ordered pair of nodes as long as their weights differ:
//
//	g := core.New[string, int]()
//	g.InsertNode("A")
//	g.InsertNode("B")
//	g.InsertEdge("A", "B", 3) // true
//	g.InsertEdge("A", "B", 1) // true, parallel edge
//	g.InsertEdge("A", "B", 3) // false, exact triple already present
//
// Ordering:
//
//   - Nodes() is ascending by node value.
//   - Weights(src, dst) is ascending by weight.
//   - Begin()/End(), All() and Backward() walk edges ordered by source value,
//     then destination value, then weight.
//
// Internally nodes live in an arena addressed by small integer handles, and
// edges are kept in a slice of vertex-pair buckets sorted by the values the
// handles resolve to. Each bucket owns a sorted, duplicate-free weight slice.
// Handles never leak: every exported method takes and returns values.
//
// Core Methods:
//
//	// Nodes
//	InsertNode(v N) bool                              // O(log V + V)
//	ReplaceNode(old, new N) (bool, error)              // O(V + B·log B)
//	MergeReplaceNode(old, new N) error                 // O(B·log B)
//	EraseNode(v N) bool                                // O(B)
//	IsNode(v N) bool                                   // O(log V)
//	Nodes() []N                                        // O(V)
//
//	// Edges
//	InsertEdge(src, dst N, w E) (bool, error)          // O(log V + log B + B)
//	EraseEdge(src, dst N, w E) (bool, error)
//	EraseEdgeAt(it Iterator[N, E]) Iterator[N, E]
//	EraseEdgeRange(first, last Iterator[N, E]) Iterator[N, E]
//	IsConnected(src, dst N) (bool, error)
//	Weights(src, dst N) ([]E, error)
//	Connections(src N) ([]N, error)
//	Find(src, dst N, w E) Iterator[N, E]
//
//	// Whole graph
//	Clear(), Clone(), Take(), Equal(other), String(), WriteTo(w), Stats()
//
//	// Views (fresh graphs, input untouched)
//	InducedSubgraph(g, keep func(N) bool), Reverse(g)
//
// Errors:
//
//	ErrMissingNode   - an operation referenced a node value that is not stored.
//	                   Returned as *MissingNodeError carrying an operation-specific
//	                   message; match with errors.Is or IsMissingNode.
//
// "Already present" and "nothing to erase" are reported by boolean results,
// never by errors. Validation always happens before mutation.
//
// A Graph is not safe for concurrent use. Iterators are invalidated by any
// mutation except the ones returned from EraseEdgeAt and EraseEdgeRange.
package core
