// SPDX-License-Identifier: MIT
//
// config.go - resolved builder configuration and its deterministic defaults.
//
// Defaults:
//   - idFn          = DefaultIDFn   ("0","1","2",...)
//   - rng           = nil           (RandomSparse needs WithSeed/WithRand for 0 < p < 1)
//   - weightFn      = DefaultWeightFn
//   - bidirectional = false
//   - left/right    = "L" / "R"

package builder

import "math/rand"

// builderConfig is passed by value to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn

	// mirror every emitted edge v→u with the same weight
	bidirectional bool

	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig applies opts over the defaults; later options win.
// Empty bipartite prefixes fall back to the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		weightFn:    DefaultWeightFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}
