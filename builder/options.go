// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand/v2"
	"strconv"
)

// BuilderOption configures a single BuildGraph call.
type BuilderOption func(*builderConfig)

// builderConfig is resolved once per BuildGraph call and shared read-only by
// its constructors. rng is the only stateful field.
type builderConfig struct {
	idFn     func(int) string
	rng      *rand.Rand
	weightFn WeightFn
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     decimalID,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func decimalID(i int) string { return strconv.Itoa(i) }

// WithIDScheme sets the vertex ID function for index-based topologies.
// Grid keeps its fixed "r,c" scheme and Star/Wheel keep "Center".
// Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand supplies the random source. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed seeds a PCG source; equal seeds give identical graphs.
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithWeightFn sets the edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// SymbolID maps 0..25 to "A".."Z" and larger indices to "A26", "A27", ...
func SymbolID(i int) string {
	if i >= 0 && i < 26 {
		return string(rune('A' + i))
	}
	return "A" + strconv.Itoa(i)
}
