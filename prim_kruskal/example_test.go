package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/gdwg/core"
	"github.com/katalvlaran/gdwg/prim_kruskal"
)

// The MST of the pentagon A–B(1), B–C(2), C–D(3), D–E(5), A–E(12) drops A–E.
func ExamplePrim() {
	g := core.FromSlice[string, int]([]string{"A", "B", "C", "D", "E"})
	_, _ = g.InsertEdge("A", "B", 1)
	_, _ = g.InsertEdge("A", "E", 12)
	_, _ = g.InsertEdge("B", "C", 2)
	_, _ = g.InsertEdge("C", "D", 3)
	_, _ = g.InsertEdge("D", "E", 5)

	edges, total, err := prim_kruskal.Prim(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print("Total: ", total, ", Edges:")
	for _, e := range edges {
		fmt.Printf(" %s-%s", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 11, Edges: A-B B-C C-D D-E
}

func ExampleKruskal() {
	g := core.FromSlice[string, int]([]string{"A", "B", "C"})
	_, _ = g.InsertEdge("A", "B", 1)
	_, _ = g.InsertEdge("B", "C", 2)
	_, _ = g.InsertEdge("C", "A", 4)

	_, total, _ := prim_kruskal.Kruskal(g)
	fmt.Println(total)
	// Output: 3
}
