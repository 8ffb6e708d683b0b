// SPDX-License-Identifier: MIT
// Package core_test holds shared fixtures for the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gdwg/core"
)

// Node values used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeX = "X"
)

// edge is a compact triple for table fixtures.
type edge struct {
	src, dst int
	w        int
}

// serializationEdges is the edge set of the {1..6,64} rendering fixture.
var serializationEdges = []edge{
	{4, 1, -4}, {3, 2, 2}, {2, 4, 2}, {2, 1, 1}, {6, 2, 5},
	{6, 3, 10}, {1, 5, -1}, {3, 6, -8}, {4, 5, 3}, {5, 2, 7},
}

// newIntGraph builds a Graph[int,int] over nodes with the given edges and
// fails the test on any insertion error.
func newIntGraph(t testing.TB, nodes []int, edges []edge) *core.Graph[int, int] {
	t.Helper()
	g := core.FromSlice[int, int](nodes)
	for _, e := range edges {
		ok, err := g.InsertEdge(e.src, e.dst, e.w)
		require.NoError(t, err)
		require.True(t, ok, "duplicate fixture edge %v", e)
	}

	return g
}

// newSerializationGraph returns the {1..6,64} fixture.
func newSerializationGraph(t testing.TB) *core.Graph[int, int] {
	t.Helper()

	return newIntGraph(t, []int{1, 2, 3, 4, 5, 6, 64}, serializationEdges)
}

// newMergeGraph returns A,B,C,D with A→B(3), C→B(2), D→B(4).
func newMergeGraph(t testing.TB) *core.Graph[string, int] {
	t.Helper()
	g := core.FromSlice[string, int]([]string{NodeA, NodeB, NodeC, NodeD})
	for _, e := range []struct {
		src, dst string
		w        int
	}{{NodeA, NodeB, 3}, {NodeC, NodeB, 2}, {NodeD, NodeB, 4}} {
		_, err := g.InsertEdge(e.src, e.dst, e.w)
		require.NoError(t, err)
	}

	return g
}

// collect drains the forward iterator into a slice.
func collect[N, E any](g *core.Graph[N, E]) []core.Edge[N, E] {
	var out []core.Edge[N, E]
	for it := g.Begin(); !it.AtEnd(); it = it.Next() {
		out = append(out, it.Value())
	}

	return out
}
