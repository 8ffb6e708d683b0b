// SPDX-License-Identifier: MIT
//
// impl_path.go - Path(n): vertices idFn(0..n-1), edges i → i+1.
//
// Complexity: O(n) vertices and n-1 edges.

package builder

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the path P_n.
func Path(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, n, minPathNodes)
		}
		ids := addVertices(g, n, cfg.idFn)
		for i := 1; i < n; i++ {
			if err := cfg.connect(g, methodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
