// Package flow computes maximum flows over a *core.Graph[N, E] whose edge
// weights are read as capacities.
//
// Parallel edges u→v contribute the sum of their weights as the capacity of
// the pair. Self-loops carry no flow.
//
// EdmondsKarp augments along shortest (fewest-edge) residual paths found by
// breadth-first search and returns the flow value together with the final
// residual network, itself a *core.Graph[N, float64] holding at most one
// edge per ordered pair: its weight is the remaining capacity.
//
//	f, residual, err := flow.EdmondsKarp(ctx, g, "s", "t")
//
// Complexity: O(V·E²) augmentations in the worst case, each residual update
// O(log V + B) on the core bucket index.
//
// Errors:
//
//	ErrGraphNil        graph is nil
//	ErrSourceNotFound  source is not a node
//	ErrSinkNotFound    sink is not a node
//	*EdgeError         a capacity is negative
//	ctx.Err()          the context was cancelled between augmentations
package flow
