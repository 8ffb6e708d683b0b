package ladder

import (
	"io"
	"log/slog"
	"runtime"
)

// Option configures Generate.
type Option func(*config)

type config struct {
	workers int
	logger  *slog.Logger
}

func defaultConfig() config {
	return config{
		workers: runtime.GOMAXPROCS(0),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithWorkers bounds the number of goroutines computing neighbours.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("ladder: WithWorkers requires n >= 1")
	}
	return func(c *config) {
		c.workers = n
	}
}

// WithLogger attaches a structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("ladder: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
