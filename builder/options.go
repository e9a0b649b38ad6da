package builder

import (
	"math/rand"
)

// defaultConstWeight is the edge weight used when no weight option is given.
const defaultConstWeight = int64(1)

// builderConfig aggregates the knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	rng      *rand.Rand // nil means no randomness
	weightFn WeightFn
}

// Option customizes a Build call.
type Option func(*builderConfig)

// newBuilderConfig applies opts over the deterministic defaults, last wins.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		weightFn: ConstantWeightFn(defaultConstWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand uses r for stochastic choices. Panics if r is nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed uses a fresh *rand.Rand seeded with seed.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithWeightFn sets the edge weight generator. Panics if fn is nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithConstantWeight gives every edge weight w.
func WithConstantWeight(w int64) Option {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight draws weights uniformly from [lo, hi].
// Without WithSeed or WithRand every edge gets lo.
func WithUniformWeight(lo, hi int64) Option {
	return WithWeightFn(UniformWeightFn(lo, hi))
}
