package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gdwg/builder"
)

func TestConstantAndDefaultWeight(t *testing.T) {
	assert.Equal(t, int64(1), builder.DefaultWeightFn(nil))
	assert.Equal(t, int64(-3), builder.ConstantWeightFn(-3)(nil))
}

func TestUniformWeightFn(t *testing.T) {
	fn := builder.UniformWeightFn(2, 4)
	assert.Equal(t, int64(2), fn(nil), "nil rng yields min")

	rng := rand.New(rand.NewSource(3))
	seen := map[int64]bool{}
	for range 200 {
		w := fn(rng)
		assert.GreaterOrEqual(t, w, int64(2))
		assert.LessOrEqual(t, w, int64(4))
		seen[w] = true
	}
	assert.Len(t, seen, 3, "both bounds are reachable")

	assert.Equal(t, int64(7), builder.UniformWeightFn(7, 7)(rng))
	assert.Panics(t, func() { builder.UniformWeightFn(5, 1) })
}

func TestNormalWeightFn(t *testing.T) {
	assert.Equal(t, int64(10), builder.NormalWeightFn(9.6, 2)(nil))
	assert.Equal(t, int64(4), builder.NormalWeightFn(4, 0)(rand.New(rand.NewSource(1))))
	assert.Panics(t, func() { builder.NormalWeightFn(0, -1) })
}

func TestExponentialWeightFn(t *testing.T) {
	assert.Equal(t, int64(4), builder.ExponentialWeightFn(0.25)(nil))

	rng := rand.New(rand.NewSource(5))
	for range 50 {
		assert.GreaterOrEqual(t, builder.ExponentialWeightFn(1)(rng), int64(0))
	}
	assert.Panics(t, func() { builder.ExponentialWeightFn(0) })
}

func TestWeightFn_SeedDeterminism(t *testing.T) {
	fn := builder.NormalWeightFn(50, 10)
	a := rand.New(rand.NewSource(11))
	b := rand.New(rand.NewSource(11))
	for range 20 {
		assert.Equal(t, fn(a), fn(b))
	}
}
