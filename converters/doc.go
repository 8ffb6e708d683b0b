// Package converters bridges core.Graph and gonum.
//
// ToGonum exports a graph to a *multi.WeightedDirectedGraph, one weighted
// line per (src, dst, weight) triple. Gonum node IDs are the ascending value
// ranks of the core nodes, so the export is deterministic. FromGonum imports
// any weighted directed multigraph back into a *core.Graph[N, float64].
//
// On top of the export the package offers gonum-backed analyses that the core
// container does not carry itself:
//
//	AdjacencyMatrix(g)                  *mat.Dense of parallel-edge multiplicities
//	WeightMatrix(g, weight, absent)     *mat.Dense of the smallest weight per pair
//	ShortestPath(g, from, to, weight)   Dijkstra over the lightest parallel edge
//	StronglyConnected(g)                Tarjan components, sorted
//
// Errors:
//
//	ErrGraphNil        - nil *core.Graph.
//	ErrWeightFnNil     - nil weight projection.
//	ErrLabelFnNil      - nil label function in FromGonum.
//	ErrEmptyGraph      - a matrix was requested for a graph with no nodes.
//	ErrNegativeWeight  - ShortestPath met a negative projected weight.
//	ErrNoPath          - ShortestPath found no route.
//
// Missing endpoints are reported with the core package's *MissingNodeError.
package converters
