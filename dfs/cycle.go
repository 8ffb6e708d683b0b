// DetectCycles reports directed cycles using depth-first search with
// three-color marking. Every back-edge u→v closes one cycle v → … → u → v.
// Self-loops are cycles of length one. Each cycle is rotated so that its
// smallest node comes first (Booth's algorithm), and the list is sorted
// lexicographically for deterministic output.
//
// Complexity:
//
//   - Time:   O(V·log B + B + C·L)   (C = #cycles, L = average cycle length)
//   - Memory: O(V + L_max)

package dfs

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/gdwg/core"
)

// cycleFinder holds the traversal state of DetectCycles.
type cycleFinder[N cmp.Ordered, E any] struct {
	graph  *core.Graph[N, E]
	state  map[N]int
	path   []N
	cycles [][]N
}

// DetectCycles inspects g for directed cycles.
// Returns (true, cycles, nil) if any cycles are found, (false, nil, nil)
// otherwise. A nil graph is treated as cycle-free.
func DetectCycles[N cmp.Ordered, E any](g *core.Graph[N, E]) (bool, [][]N, error) {
	if g == nil {
		return false, nil, nil
	}
	nodes := g.Nodes()
	f := &cycleFinder[N, E]{
		graph: g,
		state: make(map[N]int, len(nodes)),
		path:  make([]N, 0, len(nodes)),
	}
	for _, v := range nodes {
		if f.state[v] == White {
			if err := f.visit(v); err != nil {
				return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
			}
		}
	}
	if len(f.cycles) == 0 {
		return false, nil, nil
	}
	slices.SortFunc(f.cycles, slices.Compare[[]N])

	return true, f.cycles, nil
}

func (f *cycleFinder[N, E]) visit(v N) error {
	f.state[v] = Gray
	f.path = append(f.path, v)

	nbs, err := f.graph.Connections(v)
	if err != nil {
		return fmt.Errorf("Connections(%v): %w", v, err)
	}
	for _, nb := range nbs {
		switch f.state[nb] {
		case White:
			if err = f.visit(nb); err != nil {
				return err
			}
		case Gray:
			f.record(nb)
		}
	}

	f.path = f.path[:len(f.path)-1]
	f.state[v] = Black

	return nil
}

// record stores the cycle that starts at start on the current path, closed
// by repeating its first node.
func (f *cycleFinder[N, E]) record(start N) {
	idx := slices.Index(f.path, start)
	rot := MinimalRotation(f.path[idx:])
	f.cycles = append(f.cycles, append(rot, rot[0]))
}
