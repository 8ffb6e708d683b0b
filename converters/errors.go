package converters

import "errors"

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("converters: graph is nil")

	// ErrWeightFnNil is returned when a nil weight projection is passed.
	ErrWeightFnNil = errors.New("converters: weight function is nil")

	// ErrLabelFnNil is returned by FromGonum when label is nil.
	ErrLabelFnNil = errors.New("converters: label function is nil")

	// ErrEmptyGraph is returned when a matrix is requested for a graph
	// without nodes; gonum does not allow zero-sized dense matrices.
	ErrEmptyGraph = errors.New("converters: graph has no nodes")

	// ErrNegativeWeight is returned by ShortestPath when an edge projects to
	// a negative weight.
	ErrNegativeWeight = errors.New("converters: negative edge weight")

	// ErrNoPath is returned by ShortestPath when the target is unreachable.
	ErrNoPath = errors.New("converters: no path")
)
