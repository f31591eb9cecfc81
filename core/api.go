// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only size and catalog getters.

package core

// Size returns the number of vertices.
// Complexity: O(1).
func (g *Graph[T]) Size() int { return g.reg.Len() }

// Empty reports whether the graph has no vertices.
func (g *Graph[T]) Empty() bool { return g.reg.Len() == 0 }

// EdgeCount returns the number of edges, self-loops included. Each unordered
// pair is stored once, so nothing is double counted.
//
// The count is recomputed on every call rather than cached: keeping a counter
// exact across vertex removal would mean scanning the removed row anyway.
//
// Complexity: O(n²).
func (g *Graph[T]) EdgeCount() int { return g.store.Count() }

// Vertices returns all labels in index order, i.e. insertion order with
// removed labels skipped.
// Complexity: O(n).
func (g *Graph[T]) Vertices() []T { return g.reg.Labels() }
