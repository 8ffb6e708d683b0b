// File: nodes.go
// Role: Node store. An arena of node values addressed by stable integer
//       handles, plus a handle index kept sorted by node value.
// Determinism:
//   - order is always ascending by value; values() materializes it.
// Invariants:
//   - No two handles in order resolve to values that compare equal.
//   - A handle is either in order or in free, never both.

package core

import (
	"iter"
	"slices"
)

// handle is the stable identity of a stored node. It is an index into
// nodeStore.slots and stays valid until the node is erased.
type handle int

type nodeStore[N any] struct {
	cmp   func(a, b N) int
	slots []N      // handle → value
	free  []handle // recycled handles
	order []handle // live handles, ascending by value
}

func newNodeStore[N any](cmp func(a, b N) int) *nodeStore[N] {
	return &nodeStore[N]{cmp: cmp}
}

func (s *nodeStore[N]) value(h handle) N {
	return s.slots[h]
}

// compare orders two handles by the values they resolve to.
func (s *nodeStore[N]) compare(a, b handle) int {
	if a == b {
		return 0
	}

	return s.cmp(s.slots[a], s.slots[b])
}

// search returns the position of v in order, or where it would be inserted.
func (s *nodeStore[N]) search(v N) (int, bool) {
	return slices.BinarySearchFunc(s.order, v, func(h handle, target N) int {
		return s.cmp(s.slots[h], target)
	})
}

func (s *nodeStore[N]) resolve(v N) (handle, bool) {
	i, ok := s.search(v)
	if !ok {
		return -1, false
	}

	return s.order[i], true
}

func (s *nodeStore[N]) contains(v N) bool {
	_, ok := s.search(v)

	return ok
}

// insert stores v if absent and reports whether it was added.
func (s *nodeStore[N]) insert(v N) (handle, bool) {
	i, ok := s.search(v)
	if ok {
		return s.order[i], false
	}
	h := s.alloc(v)
	s.order = slices.Insert(s.order, i, h)

	return h, true
}

func (s *nodeStore[N]) alloc(v N) handle {
	if n := len(s.free); n > 0 {
		h := s.free[n-1]
		s.free = s.free[:n-1]
		s.slots[h] = v

		return h
	}
	s.slots = append(s.slots, v)

	return handle(len(s.slots) - 1)
}

// erase removes v and recycles its handle. Edges referencing the handle must
// already be gone.
func (s *nodeStore[N]) erase(v N) (handle, bool) {
	i, ok := s.search(v)
	if !ok {
		return -1, false
	}
	h := s.order[i]
	s.order = slices.Delete(s.order, i, i+1)
	var zero N
	s.slots[h] = zero
	s.free = append(s.free, h)

	return h, true
}

// rename replaces the value behind h in place. The handle keeps its identity,
// so every edge referencing it stays valid; only its position in order moves.
// The caller guarantees v is not already stored.
func (s *nodeStore[N]) rename(h handle, v N) {
	i, _ := s.search(s.slots[h])
	s.order = slices.Delete(s.order, i, i+1)
	s.slots[h] = v
	j, _ := s.search(v)
	s.order = slices.Insert(s.order, j, h)
}

func (s *nodeStore[N]) values() []N {
	out := make([]N, len(s.order))
	for i, h := range s.order {
		out[i] = s.slots[h]
	}

	return out
}

func (s *nodeStore[N]) len() int {
	return len(s.order)
}

func (s *nodeStore[N]) reset() {
	s.slots = nil
	s.free = nil
	s.order = nil
}

// all yields node values in ascending order.
func (s *nodeStore[N]) all() iter.Seq[N] {
	return func(yield func(N) bool) {
		for _, h := range s.order {
			if !yield(s.slots[h]) {
				return
			}
		}
	}
}
