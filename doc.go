// Package trigraph is an in-memory, undirected, integer-weighted graph
// engine for small and medium graphs whose vertex set changes rarely and
// whose edges are queried often.
//
// 🚀 What is trigraph?
//
//	A compact library built around one storage idea:
//		• Packed triangle: one Weight cell per unordered vertex pair, self-pairs
//		  included, n(n+1)/2 cells in one slice
//		• O(1) edge insert/remove/lookup; O(n²) rebuild on vertex add/remove
//		• Traversals: BFS, DFS (mark on push, ascending neighbor order)
//		• Shortest paths: unit-weight BFS or Dijkstra, chosen from the weights
//		• Connected components
//
// Everything lives under a few packages:
//
//	core/      - Graph[T], Weight, traversals, shortest paths, components, views
//	builder/   - deterministic fixture topologies (path, cycle, grid, G(n,p), ...)
//	internal/  - label registry and the packed triangular store
//	cmd/       - the trigraph CLI for one-off queries
//	examples/  - runnable scenarios
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	g := core.NewGraph[string]()
//	for _, v := range []string{"A", "B", "C", "D"} {
//		g.AddVertex(v)
//	}
//	g.AddEdge("A", "B"); g.AddEdge("B", "D"); g.AddEdge("A", "C"); g.AddEdge("C", "D")
//	path, _ := g.ShortestPath("A", "D") // [A B D]
//
// Negative weights are stored but shortest-path queries on such a graph
// fail with core.ErrNegativeWeight.
//
//	go get github.com/katalvlaran/trigraph
package trigraph
