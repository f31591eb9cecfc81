// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/trigraph/core"
)

// WeightFn produces one edge weight. rng is nil unless WithSeed or WithRand
// was given; implementations must then fall back to a fixed value.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns core.DefaultWeight.
func DefaultWeightFn(_ *rand.Rand) int64 { return core.DefaultWeight }

// ConstantWeightFn always returns value. Negative values are allowed so
// fixtures can exercise the negative-weight mode.
func ConstantWeightFn(value int64) WeightFn {
	return func(_ *rand.Rand) int64 { return value }
}

// UniformWeightFn draws uniformly from [min, max]. Without an rng it returns min.
// Panics if max < min.
func UniformWeightFn(min, max int64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}
		// The width is computed modulo 2^64 so ranges wider than MaxInt64 work;
		// 0 means the full int64 range.
		width := uint64(max) - uint64(min) + 1
		if width == 0 {
			return int64(rng.Uint64())
		}
		return min + int64(rng.Uint64N(width))
	}
}
