// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle and lookups on the packed store.
// Policy:
//   - Undirected: {u,v} and {v,u} share one cell, so every edge is stored once.
//   - Self-loops are ordinary cells on the diagonal.

package core

// AddEdge connects u and v with DefaultWeight. See AddWeightedEdge.
func (g *Graph[T]) AddEdge(u, v T) bool {
	return g.AddWeightedEdge(u, v, DefaultWeight)
}

// AddWeightedEdge sets the weight of {u,v} to w, creating the edge if needed.
// It returns false when either endpoint is absent, or when the edge already
// carries exactly w (nothing observable changes). u == v adds a self-loop.
//
// Complexity: O(1).
func (g *Graph[T]) AddWeightedEdge(u, v T, w int64) bool {
	i, j, ok := g.pair(u, v)
	if !ok {
		return false
	}
	next := Finite(w)
	if g.store.At(i, j) == next {
		return false
	}
	g.store.Set(i, j, next)

	return true
}

// RemoveEdge clears {u,v}. It returns false when either endpoint is absent or
// the pair holds no edge.
//
// Complexity: O(1).
func (g *Graph[T]) RemoveEdge(u, v T) bool {
	i, j, ok := g.pair(u, v)
	if !ok {
		return false
	}

	return g.store.Set(i, j, Absent).Present()
}

// HasEdge reports whether {u,v} holds an edge. Absent endpoints yield false.
// Complexity: O(1).
func (g *Graph[T]) HasEdge(u, v T) bool {
	i, j, ok := g.pair(u, v)

	return ok && g.hasEdgeAt(i, j)
}

// Weight returns the cell for {u,v} and whether both endpoints exist.
// For existing endpoints without an edge the cell is Absent.
func (g *Graph[T]) Weight(u, v T) (Weight, bool) {
	i, j, ok := g.pair(u, v)
	if !ok {
		return Absent, false
	}

	return g.store.At(i, j), true
}

// hasEdgeAt is the index-level edge test used by the walkers; it skips the
// registry entirely. Out-of-range indices report false.
func (g *Graph[T]) hasEdgeAt(i, j int) bool {
	n := g.store.Order()
	if i < 0 || j < 0 || i >= n || j >= n {
		return false
	}

	return g.store.At(i, j).Present()
}

// pair resolves both labels to indices.
func (g *Graph[T]) pair(u, v T) (int, int, bool) {
	i, ok := g.reg.Index(u)
	if !ok {
		return 0, 0, false
	}
	j, ok := g.reg.Index(v)
	if !ok {
		return 0, 0, false
	}

	return i, j, true
}
