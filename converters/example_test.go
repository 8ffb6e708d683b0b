package converters_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gdwg/converters"
	"github.com/katalvlaran/gdwg/core"
)

func ExampleAdjacencyMatrix() {
	g := core.FromSlice[string, int]([]string{"x", "y"})
	_, _ = g.InsertEdge("x", "y", 1)
	_, _ = g.InsertEdge("x", "y", 2)
	_, _ = g.InsertEdge("y", "y", 0)

	m, _ := converters.AdjacencyMatrix(g)
	fmt.Printf("%v\n", mat.Formatted(m))
	// Output:
	// ⎡0  2⎤
	// ⎣0  1⎦
}

func ExampleShortestPath() {
	g := core.FromSlice[string, int]([]string{"a", "b", "c"})
	_, _ = g.InsertEdge("a", "c", 10)
	_, _ = g.InsertEdge("a", "b", 3)
	_, _ = g.InsertEdge("b", "c", 4)

	route, cost, _ := converters.ShortestPath(g, "a", "c", func(w int) float64 { return float64(w) })
	fmt.Println(route, cost)
	// Output:
	// [a b c] 7
}
