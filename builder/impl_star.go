// SPDX-License-Identifier: MIT
//
// impl_star.go - Star(n): the hub CenterVertexID plus n-1 leaves idFn(0..n-2),
// edges Center → leaf in ascending leaf index.

package builder

// CenterVertexID is the fixed hub value used by Star and Wheel.
const CenterVertexID = "Center"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds the star S_n (n counts the hub).
func Star(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, n, minStarNodes)
		}
		g.InsertNode(CenterVertexID)
		for _, leaf := range addVertices(g, n-1, cfg.idFn) {
			if err := cfg.connect(g, methodStar, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
