// SPDX-License-Identifier: MIT
//
// impl_cycle.go - Cycle(n): vertices idFn(0..n-1), edges i → (i+1) mod n,
// emitted in ascending i, closing edge last.

package builder

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the cycle C_n.
func Cycle(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, n, minCycleNodes)
		}
		ids := addVertices(g, n, cfg.idFn)
		for i := range ids {
			if err := cfg.connect(g, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
