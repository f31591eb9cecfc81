// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.

package core_test

import (
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/trigraph/core"
)

// edge is a weighted test edge.
type edge struct {
	u, v int
	w    int64
}

// newGraph builds a graph over vertices with the given weighted edges.
func newGraph(vertices []int, edges ...edge) *core.Graph[int] {
	g := core.NewGraph[int]()
	for _, v := range vertices {
		g.AddVertex(v)
	}
	for _, e := range edges {
		g.AddWeightedEdge(e.u, e.v, e.w)
	}

	return g
}

// span returns [lo, hi].
func span(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		out = append(out, v)
	}

	return out
}

// weightedFixture is the five-vertex graph with competing routes 1-2-3-5 (7) and 1-4-5 (4).
func weightedFixture() *core.Graph[int] {
	return newGraph(span(1, 5),
		edge{1, 2, 2}, edge{2, 3, 2}, edge{3, 5, 3},
		edge{1, 4, 1}, edge{4, 5, 3},
	)
}

// pathWeight sums the weights along path, failing with ok=false on a missing edge.
func pathWeight(g *core.Graph[int], path []int) (int64, bool) {
	var total int64
	for i := 1; i < len(path); i++ {
		w, ok := g.Weight(path[i-1], path[i])
		if !ok || w.IsAbsent() {
			return 0, false
		}
		v, _ := w.Value()
		total += v
	}

	return total, true
}

// bruteForce returns the minimum weight over all simple paths from s to t,
// or ok=false when none exists.
func bruteForce(g *core.Graph[int], s, t int) (int64, bool) {
	if s == t {
		return 0, true
	}
	best := int64(math.MaxInt64)
	onPath := map[int]bool{s: true}
	var dfs func(cur int, acc int64)
	dfs = func(cur int, acc int64) {
		for _, nb := range g.Neighbors(cur) {
			if onPath[nb] {
				continue
			}
			w, _ := g.Weight(cur, nb)
			v, _ := w.Value()
			if nb == t {
				if acc+v < best {
					best = acc + v
				}
				continue
			}
			onPath[nb] = true
			dfs(nb, acc+v)
			delete(onPath, nb)
		}
	}
	dfs(s, 0)

	return best, best != math.MaxInt64
}

// randomGraph builds a graph on n vertices (0..n-1) with edge probability p
// and weights drawn from [minW, maxW].
func randomGraph(rng *rand.Rand, n int, p float64, minW, maxW int64) *core.Graph[int] {
	g := core.NewGraph[int]()
	for v := 0; v < n; v++ {
		g.AddVertex(v)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				g.AddWeightedEdge(i, j, minW+rng.Int64N(maxW-minW+1))
			}
		}
	}

	return g
}

// collect runs walk from start and returns the visit order.
func collect(walk func(int, func(int)), start int) []int {
	var order []int
	walk(start, func(v int) { order = append(order, v) })

	return order
}
