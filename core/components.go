// SPDX-License-Identifier: MIT
//
// File: components.go
// Role: Connected-component discovery.

package core

// ConnectedComponents partitions the vertices into connected components.
//
// Indices are scanned in ascending order; each one not yet seen seeds a BFS
// that shares the same seen set. Components therefore appear in ascending
// order of their lowest index, and each lists its vertices in BFS order from
// that index. An empty graph yields an empty (nil) result.
//
// Complexity: O(n²).
func (g *Graph[T]) ConnectedComponents() [][]T {
	_, span := g.obs.startSpan("Graph.ConnectedComponents", g.Size())
	defer span.End()

	var components [][]T
	w := g.newWalker()
	for i := range w.seen {
		if w.seen[i] {
			continue
		}
		var comp []T
		w.bfs(i, func(j int) { comp = append(comp, g.reg.Label(j)) })
		components = append(components, comp)
	}

	return components
}

// IsConnected reports whether every vertex is reachable from every other.
// The empty graph counts as connected.
// Complexity: O(n²).
func (g *Graph[T]) IsConnected() bool {
	if g.Empty() {
		return true
	}
	count := 0
	g.newWalker().bfs(0, func(int) { count++ })

	return count == g.Size()
}
