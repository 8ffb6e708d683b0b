// SPDX-License-Identifier: MIT

package ladder

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gdwg/bfs"
	"github.com/katalvlaran/gdwg/core"
)

// hop is the weight of every neighbour edge.
const hop = 1

// Generate returns every shortest ladder from from to to, each including both
// endpoints, sorted lexicographically. from == to yields [[from]]. When no
// ladder exists the result is empty and the error nil.
//
// Errors: ErrLengthMismatch, ErrNotInLexicon, or the context's error.
func Generate(ctx context.Context, from, to string, lexicon map[string]struct{}, opts ...Option) ([][]string, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(from) != len(to) {
		return nil, fmt.Errorf("%w: %q (%d) vs %q (%d)", ErrLengthMismatch, from, len(from), to, len(to))
	}
	for _, w := range []string{from, to} {
		if _, ok := lexicon[w]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrNotInLexicon, w)
		}
	}
	if from == to {
		return [][]string{{from}}, nil
	}

	g, err := grow(ctx, from, to, lexicon, cfg)
	if err != nil {
		return nil, err
	}
	if !g.IsNode(to) {
		return [][]string{}, nil
	}

	res, err := bfs.BFS(g, to, bfs.WithContext[string](ctx))
	if err != nil {
		return nil, fmt.Errorf("ladder: distances: %w", err)
	}

	e := enumerator{g: g, dist: res.Depth, to: to}
	if err := e.walk(from, []string{from}); err != nil {
		return nil, err
	}
	if e.paths == nil {
		e.paths = [][]string{}
	}

	return e.paths, nil
}

// grow expands the neighbour graph layer by layer from the start word until
// the target is discovered or nothing new is reachable. Edges are inserted in
// both directions.
func grow(ctx context.Context, from, to string, lexicon map[string]struct{}, cfg config) (*core.Graph[string, int], error) {
	g := core.New[string, int](core.WithLogger(cfg.logger))
	g.InsertNode(from)

	frontier := []string{from}
	layers := 0
	for len(frontier) > 0 && !g.IsNode(to) {
		nbrs, err := expand(ctx, frontier, lexicon, cfg.workers)
		if err != nil {
			return nil, err
		}

		var next []string
		for i, w := range frontier {
			for _, n := range nbrs[i] {
				if g.InsertNode(n) {
					next = append(next, n)
				}
				// both endpoints exist, errors are impossible here
				_, _ = g.InsertEdge(w, n, hop)
				_, _ = g.InsertEdge(n, w, hop)
			}
		}
		frontier = next
		layers++
	}
	cfg.logger.Debug("ladder: neighbour graph built",
		"words", g.NodeCount(), "edges", g.EdgeCount(), "layers", layers, "reached", g.IsNode(to))

	return g, nil
}

// expand computes the lexicon neighbours of every frontier word in parallel.
// out[i] belongs to frontier[i].
func expand(ctx context.Context, frontier []string, lexicon map[string]struct{}, workers int) ([][]string, error) {
	out := make([][]string, len(frontier))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, w := range frontier {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = neighbours(w, lexicon)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("ladder: expand: %w", err)
	}

	return out, nil
}

// neighbours returns the lexicon words that differ from w in exactly one
// position by a letter in 'a'..'z'.
func neighbours(w string, lexicon map[string]struct{}) []string {
	var out []string
	buf := []byte(w)
	for i := range buf {
		orig := buf[i]
		for c := byte('a'); c <= 'z'; c++ {
			if c == orig {
				continue
			}
			buf[i] = c
			if _, ok := lexicon[string(buf)]; ok {
				out = append(out, string(buf))
			}
		}
		buf[i] = orig
	}

	return out
}

type enumerator struct {
	g     *core.Graph[string, int]
	dist  map[string]int
	to    string
	paths [][]string
}

// walk extends path, which ends at cur, with every neighbour one hop closer
// to the target. Connections is ascending, so paths are produced in
// lexicographic order.
func (e *enumerator) walk(cur string, path []string) error {
	if cur == e.to {
		e.paths = append(e.paths, slices.Clone(path))
		return nil
	}
	d, ok := e.dist[cur]
	if !ok {
		return nil
	}
	next, err := e.g.Connections(cur)
	if err != nil {
		return err
	}
	for _, n := range next {
		if dn, ok := e.dist[n]; ok && dn == d-1 {
			if err := e.walk(n, append(path, n)); err != nil {
				return err
			}
		}
	}

	return nil
}
