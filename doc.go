// Package gdwg is an in-memory toolkit around a generic directed weighted
// multigraph: one container, plus the algorithms and utilities built on it.
//
// 🚀 What is gdwg?
//
//	A directed graph whose nodes and weights are any totally ordered values,
//	with parallel edges between the same ordered pair told apart by weight:
//		• Core container: insert/erase/replace/merge nodes and edges, ordered queries
//		• Bidirectional edge iterator plus iter.Seq ranges in (src, dst, weight) order
//		• Value semantics: Clone, Take, Equal and a stable textual form
//		• Traversals: BFS, DFS, topological sort, cycle detection
//		• Shortest paths: Dijkstra, gonum-backed ShortestPath
//		• Spanning trees: Prim, Kruskal (undirected view)
//		• Max flow: Edmonds–Karp over a residual core.Graph
//		• Builders: path, cycle, star, wheel, complete, bipartite, grid, random
//		• Word ladders and fixed-dimension Euclidean vectors
//
// Layout:
//
//	core/: Graph[N, E], Iterator, Edge, options and errors
//	bfs/, dfs/: unweighted traversals over core.Graph
//	dijkstra/: single-source shortest paths with non-negative weights
//	prim_kruskal/: minimum spanning trees
//	flow/: Edmonds–Karp max flow
//	builder/: deterministic topology constructors for core.Graph[string, int64]
//	converters/: gonum graph/multi and mat.Dense bridges, SCC, shortest paths
//	ladder/: all shortest word ladders between two words
//	euclid/: dense float64 vectors with a cached Euclidean norm
//
// Quick ASCII example:
//
//	    A──1──▶B
//	    │      ║ 2, 5
//	    3      ▼
//	    └─────▶C
//
//	is the graph
//
//	A (
//	  B | 1
//	  C | 3
//	)
//	B (
//	  C | 2
//	  C | 5
//	)
//	C (
//	)
//
//	go get github.com/katalvlaran/gdwg
package gdwg
