// SPDX-License-Identifier: MIT
//
// impl_wheel.go - Wheel(n) = Cycle(n-1) over idFn(0..n-2) plus spokes
// CenterVertexID → rim in ascending rim index.

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // the rim is a cycle of n-1 ≥ 3
)

// Wheel returns a Constructor that builds the wheel W_n (n counts the hub).
func Wheel(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, n, minWheelNodes)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}
		g.InsertNode(CenterVertexID)
		for i := 0; i < n-1; i++ {
			if err := cfg.connect(g, methodWheel, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
