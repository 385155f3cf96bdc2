package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvroute/core"
)

// config holds the resolved options of one Build call.
type config struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
	gopts    []core.GraphOption
}

// Option customizes a Build call.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:     ExcelColumnIDFn,
		weightFn: ConstantWeightFn(DefaultEdgeWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the vertex label generator. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *config) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil;
// prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *config) {
		c.weightFn = fn
	}
}

// WithGraphOptions forwards options to core.NewGraph.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(c *config) {
		c.gopts = append(c.gopts, opts...)
	}
}
