// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating derived graphs.
// Policy:
//   - Views never touch the source graph; the result is a fresh Graph sharing options.

package core

// UnitView returns a copy of g in which every edge weighs 1. Shortest paths on
// the view minimise hop count regardless of the source weights.
// Complexity: O(n²).
func UnitView[T comparable](g *Graph[T]) *Graph[T] {
	out := g.Clone()
	out.store.Cells(func(i, j int, _ Weight) bool {
		out.store.Set(i, j, Finite(1))
		return true
	})

	return out
}

// InducedSubgraph returns the subgraph on the labels in keep that exist in g,
// with every edge of g whose endpoints are both kept. Kept vertices preserve
// their relative order. Unknown labels are ignored.
// Complexity: O(r·n²) for r dropped vertices, one rebuild each.
func InducedSubgraph[T comparable](g *Graph[T], keep []T) *Graph[T] {
	want := make(map[T]bool, len(keep))
	for _, l := range keep {
		want[l] = true
	}
	out := g.Clone()
	for _, l := range g.Vertices() {
		if !want[l] {
			out.RemoveVertex(l)
		}
	}

	return out
}
