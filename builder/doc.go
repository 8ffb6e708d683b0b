// Package builder assembles deterministic *core.Graph[string, int64] fixtures
// from small topology constructors.
//
// A Constructor mutates a graph using a resolved, immutable configuration.
// BuildGraph creates the graph, resolves BuilderOptions and runs the
// constructors in order:
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 9)},
//		builder.Cycle(5),
//		builder.Star(4),
//	)
//
// Topologies:
//
//	Path(n)                 n ≥ 2   i → i+1
//	Cycle(n)                n ≥ 3   i → (i+1) mod n
//	Star(n)                 n ≥ 2   "Center" → leaf, n-1 leaves
//	Wheel(n)                n ≥ 4   Cycle(n-1) plus "Center" → rim spokes
//	Complete(n)             n ≥ 1   i → j for every i < j
//	CompleteBipartite(a, b) a, b ≥ 1  "L{i}" → "R{j}"
//	Grid(rows, cols)        ≥ 1     "r,c" → right and down neighbour
//	RandomSparse(n, p)      n ≥ 1   each ordered pair i ≠ j with probability p
//
// Every edge is directed. WithBidirectional mirrors each emitted edge with the
// same weight, which turns the fixtures into their undirected counterparts.
//
// Vertex IDs come from an IDFn (decimal by default; PaddedIDFn keeps value
// order equal to index order). Weights come from a WeightFn fed with the
// configured *rand.Rand. Because the graph orders nodes by value and keeps
// parallel edges only when their weights differ, two constructors that
// produce the same (src, dst, weight) triple share a single edge.
//
// Option constructors panic on meaningless input. Constructors never panic
// on bad parameters; they return errors wrapping the package sentinels.
package builder
