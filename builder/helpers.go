// SPDX-License-Identifier: MIT
//
// helpers.go - shared vertex and edge emission for the constructors.

package builder

import "fmt"

// addVertices inserts idFn(0..n-1) in index order and returns the IDs.
// Vertices already present are kept, so constructors compose.
func addVertices(g *Graph, n int, idFn IDFn) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = idFn(i)
		g.InsertNode(ids[i])
	}

	return ids
}

// connect draws one weight and inserts u→v, plus v→u when the configuration
// is bidirectional. Both endpoints must already be nodes of g.
func (c builderConfig) connect(g *Graph, method, u, v string) error {
	w := c.weightFn(c.rng)
	if _, err := g.InsertEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: InsertEdge(%s→%s, w=%d): %w", method, u, v, w, err)
	}
	if c.bidirectional && u != v {
		if _, err := g.InsertEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: InsertEdge(%s→%s, w=%d): %w", method, v, u, w, err)
		}
	}

	return nil
}

// tooFew formats the shared "below minimum" error.
func tooFew(method string, n, minimum int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minimum, ErrTooFewVertices)
}
