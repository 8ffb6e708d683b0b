package builder

import "github.com/katalvlaran/gdwg/core"

func newTestGraph(nodes ...string) *Graph {
	return core.FromSlice[string, int64](nodes)
}
