// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/trigraph/core"
)

// Constructor applies one deterministic mutation to g. Constructors validate
// their parameters before touching g and return wrapped sentinel errors.
type Constructor func(g *core.Graph[string], cfg builderConfig) error

// BuildGraph creates a graph with gopts, resolves bopts and applies cons in
// order. The first constructor error is returned wrapped as "BuildGraph: %w"
// and the partial graph is discarded.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	g := core.NewGraph[string](gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts cfg.idFn(0..n-1) in index order.
func addVertices(g *core.Graph[string], cfg builderConfig, n int) {
	for i := 0; i < n; i++ {
		g.AddVertex(cfg.idFn(i))
	}
}

// link adds u-v with the next generated weight.
func link(g *core.Graph[string], cfg builderConfig, u, v string) {
	g.AddWeightedEdge(u, v, cfg.weightFn(cfg.rng))
}
