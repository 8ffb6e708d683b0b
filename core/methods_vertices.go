// File: methods_vertices.go
// Role: Node lifecycle & queries: InsertNode/InsertNodes/IsNode/Nodes,
//       EraseNode, ReplaceNode, MergeReplaceNode.
//
// Determinism:
//   - Nodes() returns values ascending by the node comparator.
//
// Invariants preserved by every method here:
//   - No two stored nodes compare equal.
//   - No edge references an erased node.
//   - Validation happens before mutation.
package core

import "iter"

// InsertNode stores v if no equal value is stored yet.
//
// Returns:
//   - bool: true if v was added, false if it was already present.
//
// Complexity:
//   - Time O(log V) lookup + O(V) slice insertion, Space O(1) amortized.
func (g *Graph[N, E]) InsertNode(v N) bool {
	_, added := g.nodes.insert(v)

	return added
}

// InsertNodes stores every value produced by seq and returns how many were
// new.
func (g *Graph[N, E]) InsertNodes(seq iter.Seq[N]) int {
	added := 0
	for v := range seq {
		if g.InsertNode(v) {
			added++
		}
	}

	return added
}

// IsNode reports whether v is stored.
//
// Complexity: O(log V).
func (g *Graph[N, E]) IsNode(v N) bool {
	return g.nodes.contains(v)
}

// Nodes returns a freshly allocated slice of all node values, ascending.
//
// Complexity: O(V).
func (g *Graph[N, E]) Nodes() []N {
	return g.nodes.values()
}

// EraseNode removes v together with every edge whose source or destination
// is v.
//
// Implementation:
//   - Stage 1: Resolve v to its handle; absent values return false.
//   - Stage 2: Drop every bucket incident to the handle.
//   - Stage 3: Release the handle.
//
// Returns:
//   - bool: true if a node was removed.
//
// Complexity:
//   - Time O(B + V), Space O(1).
func (g *Graph[N, E]) EraseNode(v N) bool {
	h, ok := g.nodes.resolve(v)
	if !ok {
		return false
	}
	removed := g.edges.eraseIncident(h)
	g.nodes.erase(v)
	g.logger.Debug("core: node erased", "node", v, "edges_removed", removed)

	return true
}

// ReplaceNode renames oldValue to newValue. The node keeps its identity, so
// every edge incident to oldValue is now incident to newValue without being
// rewritten.
//
// Implementation:
//   - Stage 1: Resolve oldValue (missing → *MissingNodeError).
//   - Stage 2: If newValue is already stored, leave the graph untouched and return false.
//   - Stage 3: Rename the slot in place and reposition it in the node order.
//   - Stage 4: Re-sort buckets, since their order follows node values.
//
// Returns:
//   - bool: true if the rename happened.
//   - error: *MissingNodeError (OpReplaceNode) if oldValue is not stored.
//
// Notes:
//   - newValue being present is not an error; use MergeReplaceNode to fold two
//     existing nodes together.
//
// Complexity:
//   - Time O(V + B·log B), Space O(1).
func (g *Graph[N, E]) ReplaceNode(oldValue, newValue N) (bool, error) {
	h, ok := g.nodes.resolve(oldValue)
	if !ok {
		return false, missingNode(OpReplaceNode)
	}
	if g.nodes.contains(newValue) {
		return false, nil
	}
	g.nodes.rename(h, newValue)
	g.edges.resort()
	g.logger.Debug("core: node replaced", "old", oldValue, "new", newValue)

	return true, nil
}

// MergeReplaceNode folds oldValue into newValue: every edge incident to
// oldValue is repointed onto newValue, then oldValue is erased. Edges that
// become identical after the rewrite collapse into one.
//
// For nodes A, B, C, D and edges A→B(3), C→B(2), D→B(4),
// MergeReplaceNode(B, A) leaves nodes {A, C, D} and edges A→A(3), C→A(2), D→A(4).
//
// Implementation:
//   - Stage 1: Resolve both values (either missing → *MissingNodeError).
//   - Stage 2: Extract the buckets incident to oldValue, substitute newValue's handle,
//     and reinsert them.
//   - Stage 3: Release oldValue's handle; it is no longer referenced.
//
// Errors:
//   - *MissingNodeError (OpMergeReplaceNode) if oldValue or newValue is not stored.
//
// Notes:
//   - Merging a node into itself is a no-op.
//
// Complexity:
//   - Time O(B·log B + k·B) for k affected edges, Space O(k).
func (g *Graph[N, E]) MergeReplaceNode(oldValue, newValue N) error {
	ho, okOld := g.nodes.resolve(oldValue)
	hn, okNew := g.nodes.resolve(newValue)
	if !okOld || !okNew {
		return missingNode(OpMergeReplaceNode)
	}
	if ho == hn {
		return nil
	}
	before := g.edges.size
	g.edges.repoint(ho, hn)
	g.nodes.erase(oldValue)
	g.logger.Debug("core: node merged", "old", oldValue, "new", newValue, "edges_collapsed", before-g.edges.size)

	return nil
}
