// SPDX-License-Identifier: MIT
//
// impl_random_sparse.go - RandomSparse(n, p), an Erdős–Rényi style sample.
//
// Trial order is fixed: i ascending, then j ascending. Directed mode tries
// every ordered pair i ≠ j; bidirectional mode tries each pair i < j once and
// mirrors the hit. A seeded RNG therefore reproduces the same graph.
//
// p = 0 and p = 1 are deterministic and run without an RNG.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that includes each admissible edge
// independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return tooFew(methodRandomSparse, n, minRandomSparseVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := addVertices(g, n, cfg.idFn)
		hit := func() bool {
			switch p {
			case 0:
				return false
			case 1:
				return true
			}
			return cfg.rng.Float64() < p
		}
		for i := 0; i < n; i++ {
			j0 := 0
			if cfg.bidirectional {
				j0 = i + 1
			}
			for j := j0; j < n; j++ {
				if i == j || !hit() {
					continue
				}
				if err := cfg.connect(g, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
