// SPDX-License-Identifier: MIT
//
// impl_bipartite.go - CompleteBipartite(n1, n2): left "{leftPrefix}{i}",
// right "{rightPrefix}{j}", edges left → right for every pair, i outer.

package builder

import (
	"fmt"
	"strconv"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		left := addVertices(g, n1, func(i int) string { return cfg.leftPrefix + strconv.Itoa(i) })
		right := addVertices(g, n2, func(j int) string { return cfg.rightPrefix + strconv.Itoa(j) })
		for _, u := range left {
			for _, v := range right {
				if err := cfg.connect(g, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
