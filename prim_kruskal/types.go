package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/gdwg/core"
)

// Sentinel errors.
var (
	ErrGraphNil      = errors.New("prim_kruskal: graph is nil")
	ErrRootNotFound  = errors.New("prim_kruskal: root vertex not found")
	ErrDisconnected  = errors.New("prim_kruskal: graph is disconnected")
	ErrUnknownMethod = errors.New("prim_kruskal: unknown method")
)

// Weight is the set of edge weights the algorithms can sum.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions selects the algorithm and, for Prim, the start vertex.
type MSTOptions[N any] struct {
	Method string

	// Root is ignored by Kruskal.
	Root    N
	HasRoot bool
}

// Option configures MSTOptions.
type Option[N any] func(*MSTOptions[N])

// WithMethod sets the algorithm: MethodPrim or MethodKruskal.
func WithMethod[N any](m string) Option[N] {
	return func(o *MSTOptions[N]) { o.Method = m }
}

// WithRoot sets the start vertex for Prim.
func WithRoot[N any](root N) Option[N] {
	return func(o *MSTOptions[N]) {
		o.Root = root
		o.HasRoot = true
	}
}

// DefaultOptions selects Kruskal.
func DefaultOptions[N any]() MSTOptions[N] {
	return MSTOptions[N]{Method: MethodKruskal}
}

// Compute runs the configured algorithm. Prim without WithRoot starts from
// the smallest node of g.
func Compute[N comparable, E Weight](g *core.Graph[N, E], opts ...Option[N]) ([]core.Edge[N, E], E, error) {
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		if g == nil {
			return nil, 0, ErrGraphNil
		}
		root := o.Root
		if !o.HasRoot {
			nodes := g.Nodes()
			if len(nodes) == 0 {
				return nil, 0, ErrDisconnected
			}
			root = nodes[0]
		}

		return Prim(g, root)
	default:
		return nil, 0, ErrUnknownMethod
	}
}
