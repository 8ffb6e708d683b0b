package builder_test

import (
	"fmt"

	"github.com/katalvlaran/gdwg/builder"
)

func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSymbolIDs(), builder.WithConstantWeight(2)},
		builder.Cycle(3),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(g)
	// Output:
	// A (
	//   B | 2
	// )
	// B (
	//   C | 2
	// )
	// C (
	//   A | 2
	// )
}

func ExampleWithBidirectional() {
	g, _ := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithBidirectional()},
		builder.Star(3),
	)
	for e := range g.All() {
		fmt.Println(e.From, "->", e.To)
	}
	// Output:
	// 0 -> Center
	// 1 -> Center
	// Center -> 0
	// Center -> 1
}
