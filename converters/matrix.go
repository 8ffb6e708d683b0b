package converters

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gdwg/core"
)

// AdjacencyMatrix returns the V×V matrix whose (i, j) entry is the number of
// parallel edges from the i-th to the j-th smallest node.
//
// Complexity: O(V² + E).
func AdjacencyMatrix[N, E any](g *core.Graph[N, E]) (*mat.Dense, error) {
	return fillMatrix(g, 0, func(ws []E) float64 { return float64(len(ws)) })
}

// WeightMatrix returns the V×V matrix whose (i, j) entry is weight(w) for the
// smallest edge weight w from node i to node j, or absent when the pair is
// not connected.
func WeightMatrix[N, E any](g *core.Graph[N, E], weight func(E) float64, absent float64) (*mat.Dense, error) {
	if weight == nil {
		return nil, ErrWeightFnNil
	}

	return fillMatrix(g, absent, func(ws []E) float64 { return weight(ws[0]) })
}

func fillMatrix[N, E any](g *core.Graph[N, E], absent float64, cell func([]E) float64) (*mat.Dense, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	nodes := g.Nodes()
	n := len(nodes)
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	data := make([]float64, n*n)
	if absent != 0 {
		for i := range data {
			data[i] = absent
		}
	}
	for i, u := range nodes {
		for j, v := range nodes {
			ws, err := g.Weights(u, v)
			if err != nil {
				return nil, err
			}
			if len(ws) > 0 {
				data[i*n+j] = cell(ws)
			}
		}
	}

	return mat.NewDense(n, n, data), nil
}
