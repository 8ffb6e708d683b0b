package flow

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

var (
	ErrGraphNil       = errors.New("flow: graph is nil")
	ErrSourceNotFound = errors.New("flow: source vertex not found")
	ErrSinkNotFound   = errors.New("flow: sink vertex not found")
)

// Capacity is the set of edge weight types read as capacities.
type Capacity interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// EdgeError reports a negative capacity on From→To.
type EdgeError struct {
	From, To any
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %v→%v: %g", e.From, e.To, e.Cap)
}

const defaultEpsilon = 1e-9

// Options holds the resolved configuration of a run.
type Options struct {
	// Epsilon is the smallest residual capacity still treated as usable.
	Epsilon float64
	Logger  *slog.Logger
}

// Option configures a max-flow run.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Epsilon: defaultEpsilon,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithEpsilon sets the capacity tolerance. Panics if eps <= 0.
func WithEpsilon(eps float64) Option {
	if eps <= 0 {
		panic("flow: WithEpsilon requires eps > 0")
	}
	return func(o *Options) { o.Epsilon = eps }
}

// WithLogger logs every augmenting path at Debug. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("flow: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}
