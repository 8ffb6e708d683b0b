package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every edge when no WeightFn is set.
const DefaultEdgeWeight int64 = 1

// WeightFn produces an edge weight from the configured RNG, which may be nil.
// For a fixed seed it must be deterministic.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value.
func ConstantWeightFn(value int64) WeightFn {
	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn samples uniformly from [min, max] inclusive.
// With a nil RNG it returns min. Panics if max < min.
func UniformWeightFn(min, max int64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("builder: UniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil || min == max {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}

// NormalWeightFn samples N(mean, stddev) rounded to the nearest integer and
// saturated to the int64 range. With a nil RNG it returns round(mean).
// Panics if stddev < 0.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("builder: NormalWeightFn: stddev must be ≥ 0, got %g", stddev))
	}
	return func(rng *rand.Rand) int64 {
		x := mean
		if rng != nil {
			x += rng.NormFloat64() * stddev
		}

		return saturate(math.Round(x))
	}
}

// ExponentialWeightFn samples Exp(rate) rounded to the nearest integer.
// With a nil RNG it returns round(1/rate). Panics if rate ≤ 0.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("builder: ExponentialWeightFn: rate must be > 0, got %g", rate))
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return saturate(math.Round(1 / rate))
		}

		return saturate(math.Round(rng.ExpFloat64() / rate))
	}
}

func saturate(x float64) int64 {
	switch {
	case x >= math.MaxInt64:
		return math.MaxInt64
	case x <= math.MinInt64:
		return math.MinInt64
	}

	return int64(x)
}

// WithConstantWeight sets ConstantWeightFn(w).
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets UniformWeightFn(min, max).
func WithUniformWeight(min, max int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithNormalWeight sets NormalWeightFn(mean, stddev).
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}

// WithExponentialWeight sets ExponentialWeightFn(rate).
func WithExponentialWeight(rate float64) BuilderOption {
	return WithWeightFn(ExponentialWeightFn(rate))
}
