package dijkstra

import (
	"errors"
	"fmt"
)

var (
	ErrNilGraph        = errors.New("dijkstra: graph is nil")
	ErrVertexNotFound  = errors.New("dijkstra: source vertex not found in graph")
	ErrNegativeWeight  = errors.New("dijkstra: negative edge weight encountered")
	ErrUnreachable     = errors.New("dijkstra: vertex not reachable")
	ErrBadMaxDistance  = errors.New("dijkstra: MaxDistance must be non-negative")
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Weight is the set of edge weight types distances can be summed over.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Options holds the resolved run configuration.
type Options[E Weight] struct {
	MaxDistance      E
	HasMaxDistance   bool
	InfEdgeThreshold E
	HasInfThreshold  bool
}

// Option configures a Dijkstra run.
type Option[E Weight] func(*Options[E])

// WithMaxDistance stops settling vertices beyond d. Panics if d < 0.
func WithMaxDistance[E Weight](d E) Option[E] {
	if d < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options[E]) {
		o.MaxDistance, o.HasMaxDistance = d, true
	}
}

// WithInfEdgeThreshold makes every edge weighing t or more impassable.
// Panics if t <= 0.
func WithInfEdgeThreshold[E Weight](t E) Option[E] {
	if t <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options[E]) {
		o.InfEdgeThreshold, o.HasInfThreshold = t, true
	}
}

// Result holds the settled distances and the shortest-path tree.
type Result[N comparable, E Weight] struct {
	Source N
	// Dist holds every settled vertex, the source included.
	Dist map[N]E
	// Prev maps each settled vertex except the source to its predecessor.
	Prev map[N]N
}

// PathTo rebuilds the path from the source to dst, both included.
func (r *Result[N, E]) PathTo(dst N) ([]N, error) {
	if _, ok := r.Dist[dst]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, dst)
	}
	path := []N{dst}
	for v := dst; v != r.Source; {
		v = r.Prev[v]
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
