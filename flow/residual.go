package flow

import (
	"cmp"

	"github.com/katalvlaran/gdwg/core"
)

// network is a residual graph with one weight per ordered pair.
type network[N cmp.Ordered] struct {
	g   *core.Graph[N, float64]
	eps float64
}

// capacity returns the residual capacity of u→v, zero when absent.
func (r network[N]) capacity(u, v N) float64 {
	ws, _ := r.g.Weights(u, v)
	if len(ws) == 0 {
		return 0
	}

	return ws[0]
}

// set replaces the capacity of u→v; capacities at or below eps drop the edge.
func (r network[N]) set(u, v N, c float64) {
	if old := r.capacity(u, v); old != 0 {
		_, _ = r.g.EraseEdge(u, v, old)
	}
	if c > r.eps {
		_, _ = r.g.InsertEdge(u, v, c)
	}
}

func (r network[N]) add(u, v N, delta float64) {
	r.set(u, v, r.capacity(u, v)+delta)
}
