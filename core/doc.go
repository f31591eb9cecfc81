// Package core provides an in-memory, undirected, weighted Graph over
// caller-chosen labels, stored as a packed upper-triangle matrix.
//
// Storage
//
//	Labels map to dense indices 0..n-1 through a bidirectional registry. The
//	weight matrix is symmetric, so only the upper triangle is kept: one Weight
//	cell per unordered pair {i,j}, self-pairs included, n(n+1)/2 cells in all.
//
//	    Finite(w): an edge of weight w (any int64, zero and negatives included)
//	    Absent:    no edge
//
//	AddVertex and RemoveVertex rebuild the whole triangle (O(n²)). Removal
//	also shifts every higher index down by one. Edge operations are O(1).
//
// Queries
//
//	BFS(start, visit), DFS(start, visit)   iterative, mark-on-push, ascending neighbor order
//	ShortestPath(start, end)               unit-weight BFS or Dijkstra, chosen per call
//	ConnectedComponents()                  ascending-index BFS sweep
//
// Shortest-path modes (see Classify):
//
//	ModeUnit        every weight == 1 → BFS, minimum hop count
//	ModeNonNegative every weight ≥ 0  → Dijkstra
//	ModeNegative    some weight < 0   → ErrNegativeWeight
//
// Failure semantics
//
//	Mutations return false for absent vertices, duplicate inserts and no-op
//	edits; nothing panics on ordinary misuse. ShortestPath returns a nil path
//	with ErrVertexNotFound, ErrNoPath, ErrNegativeWeight or ErrWeightOverflow.
//
// Concurrency
//
//	A Graph is meant for single-goroutine use. There is no internal locking;
//	callers sharing a Graph must synchronise externally. Visitors must not
//	mutate the graph they are called from.
//
// Observability
//
//	WithLogger receives debug records for rebuilds and mode selection.
//	WithMeterProvider / WithTracerProvider receive rebuild counters, per-mode
//	query counters and query spans; both default to the otel globals.
//
// Example:
//
//	g := core.NewGraph[int]()
//	for v := 1; v <= 5; v++ {
//	    g.AddVertex(v)
//	}
//	g.AddWeightedEdge(1, 2, 2)
//	g.AddWeightedEdge(2, 3, 2)
//	g.AddWeightedEdge(3, 5, 3)
//	g.AddWeightedEdge(1, 4, 1)
//	g.AddWeightedEdge(4, 5, 3)
//	path, _ := g.ShortestPath(1, 5) // [1 4 5]
package core
