package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/gdwg/core"
)

// benchNodes is the node count of the benchmark fixtures.
const benchNodes = 1000

func benchGraph() *core.Graph[string, int] {
	g := core.New[string, int]()
	for i := 0; i < benchNodes; i++ {
		g.InsertNode(fmt.Sprintf("N%04d", i))
	}
	for i := 0; i < benchNodes; i++ {
		_, _ = g.InsertEdge(fmt.Sprintf("N%04d", i), fmt.Sprintf("N%04d", (i+1)%benchNodes), i)
		_, _ = g.InsertEdge(fmt.Sprintf("N%04d", i), fmt.Sprintf("N%04d", (i*7)%benchNodes), i)
	}

	return g
}

// BenchmarkInsertEdge measures appending parallel edges to one bucket.
func BenchmarkInsertEdge(b *testing.B) {
	g := core.FromSlice[string, int]([]string{"Root", "Leaf"})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.InsertEdge("Root", "Leaf", i)
	}
}

// BenchmarkInsertNode measures sorted node insertion.
func BenchmarkInsertNode(b *testing.B) {
	g := core.New[int, int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.InsertNode(i)
	}
}

// BenchmarkWeights measures the pair lookup path.
func BenchmarkWeights(b *testing.B) {
	g := benchGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Weights("N0500", "N0501")
	}
}

// BenchmarkIterate measures a full forward traversal.
func BenchmarkIterate(b *testing.B) {
	g := benchGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range g.All() {
		}
	}
}

// BenchmarkClone measures replay-based copying.
func BenchmarkClone(b *testing.B) {
	g := benchGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
