// SPDX-License-Identifier: MIT
//
// impl_complete.go - Complete(n): every ordered pair i < j gets i → j, so the
// default result is the transitive tournament on n vertices and the
// bidirectional result is K_n.
//
// Complexity: O(n) vertices and n(n-1)/2 emitted edges.

package builder

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that connects every pair of n vertices.
func Complete(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, n, minCompleteNodes)
		}
		ids := addVertices(g, n, cfg.idFn)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := cfg.connect(g, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
