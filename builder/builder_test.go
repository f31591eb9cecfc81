// SPDX-License-Identifier: MIT

package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trigraph/builder"
	"github.com/katalvlaran/trigraph/core"
)

func TestBuilders_Topology(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cons       builder.Constructor
		vertices   int
		edges      int
		components int
	}{
		{name: "Path5", cons: builder.Path(5), vertices: 5, edges: 4, components: 1},
		{name: "Cycle6", cons: builder.Cycle(6), vertices: 6, edges: 6, components: 1},
		{name: "Star5", cons: builder.Star(5), vertices: 5, edges: 4, components: 1},
		{name: "Wheel6", cons: builder.Wheel(6), vertices: 6, edges: 10, components: 1},
		{name: "Complete5", cons: builder.Complete(5), vertices: 5, edges: 10, components: 1},
		{name: "Complete1", cons: builder.Complete(1), vertices: 1, edges: 0, components: 1},
		{name: "Grid3x4", cons: builder.Grid(3, 4), vertices: 12, edges: 17, components: 1},
		{name: "Empty G(n,0)", cons: builder.RandomSparse(4, 0), vertices: 4, edges: 0, components: 4},
		{name: "Full G(n,1)", cons: builder.RandomSparse(5, 1), vertices: 5, edges: 10, components: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, tc.cons)
			require.NoError(t, err)
			assert.Equal(t, tc.vertices, g.Size())
			assert.Equal(t, tc.edges, g.EdgeCount())
			assert.Len(t, g.ConnectedComponents(), tc.components)
			assert.Equal(t, core.ModeUnit, g.Classify(), "default weights are unit")
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cons builder.Constructor
		want error
	}{
		{"Path1", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle2", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star1", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel3", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete0", builder.Complete(0), builder.ErrTooFewVertices},
		{"Grid0", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomP", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomNoRNG", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"Nil", nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, tc.cons)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

func TestBuilders_SeedDeterminism(t *testing.T) {
	t.Parallel()

	build := func(seed uint64) *core.Graph[string] {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
			builder.RandomSparse(30, 0.2),
		)
		require.NoError(t, err)
		return g
	}

	a, b := build(7), build(7)
	require.Equal(t, a.EdgeCount(), b.EdgeCount())
	for _, u := range a.Vertices() {
		assert.Equal(t, a.Neighbors(u), b.Neighbors(u))
		for _, v := range a.Neighbors(u) {
			wa, _ := a.Weight(u, v)
			wb, _ := b.Weight(u, v)
			assert.Equal(t, wa, wb)
			x, _ := wa.Value()
			assert.True(t, x >= 1 && x <= 9, "weight %d out of range", x)
		}
	}
}

func TestBuilders_Compose(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(builder.SymbolID)},
		builder.Cycle(4), builder.Star(3),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D", "Center"}, g.Vertices())
	assert.Equal(t, 6, g.EdgeCount())
	assert.True(t, g.HasEdge("Center", "B"))
}

func TestBuilders_WeightFns(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(-3))},
		builder.Path(3),
	)
	require.NoError(t, err)
	assert.Equal(t, core.ModeNegative, g.Classify())

	// Without an rng the uniform generator falls back to min.
	assert.Equal(t, int64(4), builder.UniformWeightFn(4, 10)(nil))
	assert.Panics(t, func() { builder.UniformWeightFn(5, 1) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Equal(t, "Z", builder.SymbolID(25))
	assert.Equal(t, "A26", builder.SymbolID(26))
}

func TestBuilders_GridShortestPath(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, builder.Grid(4, 5))
	require.NoError(t, err)

	p, err := g.ShortestPathWeighted("0,0", "3,4")
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.Weight, "Manhattan distance")
	assert.Len(t, p.Vertices, 8)
}

func TestBuilders_UniformWeightFnWideRange(t *testing.T) {
	t.Parallel()

	ranges := []struct{ min, max int64 }{
		{-1, math.MaxInt64},
		{math.MinInt64, 0},
		{math.MinInt64, math.MaxInt64},
	}
	for _, r := range ranges {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(1), builder.WithWeightFn(builder.UniformWeightFn(r.min, r.max))},
			builder.Complete(6),
		)
		require.NoError(t, err, "range [%d, %d]", r.min, r.max)
		for _, u := range g.Vertices() {
			for _, v := range g.Neighbors(u) {
				w, _ := g.Weight(u, v)
				x, _ := w.Value()
				assert.True(t, x >= r.min && x <= r.max, "weight %d outside [%d, %d]", x, r.min, r.max)
			}
		}
	}
}

func TestBuilders_HubCollision(t *testing.T) {
	t.Parallel()

	scheme := builder.WithIDScheme(func(i int) string {
		if i == 1 {
			return "Center"
		}
		return builder.SymbolID(i)
	})

	for name, cons := range map[string]builder.Constructor{
		"Star":  builder.Star(4),
		"Wheel": builder.Wheel(5),
	} {
		t.Run(name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, []builder.BuilderOption{scheme}, cons)
			require.ErrorIs(t, err, builder.ErrIDCollision)
			assert.Nil(t, g)
		})
	}

	// Indices past the leaf range are never generated, so they may collide.
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{scheme}, builder.Star(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"Center", "A"}, g.Vertices())
}
