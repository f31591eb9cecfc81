// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood queries.
// Determinism:
//   - Neighbors are reported in ascending index order, the same order the
//     walkers use when expanding a vertex.

package core

// Neighbors returns the labels adjacent to label, including label itself when
// it carries a self-loop. Returns nil for an absent label.
// Complexity: O(n).
func (g *Graph[T]) Neighbors(label T) []T {
	i, ok := g.reg.Index(label)
	if !ok {
		return nil
	}
	out := make([]T, 0)
	g.eachNeighbor(i, func(j int) {
		out = append(out, g.reg.Label(j))
	})

	return out
}

// Degree returns the number of edges incident to label; a self-loop counts
// twice, as usual for undirected graphs. Returns 0 for an absent label.
// Complexity: O(n).
func (g *Graph[T]) Degree(label T) int {
	i, ok := g.reg.Index(label)
	if !ok {
		return 0
	}
	deg := 0
	g.eachNeighbor(i, func(j int) {
		deg++
		if j == i {
			deg++
		}
	})

	return deg
}

// eachNeighbor calls fn for every j in ascending order with an edge {i,j}.
func (g *Graph[T]) eachNeighbor(i int, fn func(j int)) {
	n := g.store.Order()
	for j := 0; j < n; j++ {
		if g.hasEdgeAt(i, j) {
			fn(j)
		}
	}
}
