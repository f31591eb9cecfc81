// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle (AddVertex, RemoveVertex, HasVertex).
// Policy:
//   - Each structural change rebuilds the packed store in full (O(n²)); there is
//     no incremental resize. Registry and store are updated together so the
//     label ↔ index bijection and the matrix order never disagree.

package core

import "log/slog"

// AddVertex inserts label as a new isolated vertex at index Size().
// It returns false, leaving the graph untouched, when label is already present.
//
// Complexity: O(n²) for the store rebuild.
func (g *Graph[T]) AddVertex(label T) bool {
	if _, added := g.reg.Add(label); !added {
		return false
	}
	n := g.store.Grow()
	g.rebuilt("grow", n)

	return true
}

// RemoveVertex deletes label and every edge touching it. Vertices with a
// higher index move down by one. Returns false when label is absent.
//
// Complexity: O(n²).
func (g *Graph[T]) RemoveVertex(label T) bool {
	k, ok := g.reg.Index(label)
	if !ok {
		return false
	}
	n := g.store.Shrink(k)
	g.reg.Remove(label)
	g.rebuilt("shrink", n)

	return true
}

// HasVertex reports whether label is present.
// Complexity: O(1).
func (g *Graph[T]) HasVertex(label T) bool {
	return g.reg.Contains(label)
}

func (g *Graph[T]) rebuilt(op string, order int) {
	cells := g.store.Len()
	g.obs.recordRebuild(op, cells)
	g.log.Debug("core: packed store rebuilt",
		slog.String("op", op),
		slog.Int("order", order),
		slog.Int("cells", cells),
	)
}
