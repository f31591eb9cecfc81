// SPDX-License-Identifier: MIT

// Package builder assembles deterministic core.Graph[string] fixtures from
// classic topologies: paths, cycles, stars, wheels, complete graphs, grids
// and Erdős–Rényi style random graphs.
//
// A build is one BuildGraph call: graph options for core.NewGraph, builder
// options resolved into an immutable config, and a list of constructors
// applied in order. Constructors only add vertices and edges, so they
// compose: Cycle(5) followed by Star(3) shares vertices "0".."2".
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
//		builder.Grid(4, 4),
//	)
//
// Weights come from the configured WeightFn; the default emits
// core.DefaultWeight, which leaves the result a unit-weight graph.
//
// Every vertex insertion rebuilds the packed store, so building n vertices
// costs O(n³) overall. Fixtures are meant to stay in the hundreds.
package builder
