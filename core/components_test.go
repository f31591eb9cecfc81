// SPDX-License-Identifier: MIT
package core_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trigraph/core"
)

func TestConnectedComponents_Empty(t *testing.T) {
	g := core.NewGraph[int]()
	assert.Empty(t, g.ConnectedComponents())
	assert.True(t, g.IsConnected())
}

func TestConnectedComponents_TwoComponents(t *testing.T) {
	g := newGraph(span(1, 5), edge{1, 2, 1}, edge{2, 3, 1}, edge{4, 5, 1})

	comps := g.ConnectedComponents()
	require.Len(t, comps, 2)
	assert.Equal(t, []int{1, 2, 3}, comps[0])
	assert.Equal(t, []int{4, 5}, comps[1])
	assert.False(t, g.IsConnected())

	g.AddEdge(3, 4)
	assert.Len(t, g.ConnectedComponents(), 1)
	assert.True(t, g.IsConnected())
}

func TestConnectedComponents_OrderedByLowestIndex(t *testing.T) {
	// Insertion order decides indices: 9 is index 0, 7 is index 1, 8 is index 2.
	g := core.NewGraph[int]()
	for _, v := range []int{9, 7, 8} {
		g.AddVertex(v)
	}
	g.AddEdge(9, 8)

	assert.Equal(t, [][]int{{9, 8}, {7}}, g.ConnectedComponents())
}

func TestConnectedComponents_Partition(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for round := 0; round < 30; round++ {
		g := randomGraph(rng, 12, 0.12, 0, 3)
		seen := map[int]int{}
		total := 0
		for ci, comp := range g.ConnectedComponents() {
			require.NotEmpty(t, comp)
			for _, v := range comp {
				prev, dup := seen[v]
				require.False(t, dup, "vertex %d in components %d and %d", v, prev, ci)
				seen[v] = ci
				total++
			}
		}
		require.Equal(t, g.Size(), total)
		for _, u := range g.Vertices() {
			for _, v := range g.Neighbors(u) {
				require.Equal(t, seen[u], seen[v], "edge %d-%d crosses components", u, v)
			}
		}
	}
}
