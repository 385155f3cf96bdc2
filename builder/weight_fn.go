package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every edge when no WeightFn is set.
const DefaultEdgeWeight int64 = 1

// WeightFn draws one edge weight. rng may be nil for deterministic builders.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn drawing uniformly from [min, max].
// Without an RNG it yields min.
// Panics unless 0 ≤ min ≤ max.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Int63n(max-min+1)
	}
}
