// SPDX-License-Identifier: MIT
//
// File: traversal.go
// Role: Iterative BFS and DFS over dense indices.
// Policy:
//   - A vertex is marked seen when it is pushed onto the frontier, not when it
//     is popped. This keeps any vertex from entering the frontier twice.
//   - Neighbors are scanned in ascending index order, so walks are reproducible.

package core

// BFS visits every vertex in start's component in breadth-first order,
// calling visit once per vertex as it leaves the queue. An absent start
// is a no-op.
//
// visit must not mutate g.
//
// Complexity: O(n²) on the packed matrix (each dequeue scans one row).
func (g *Graph[T]) BFS(start T, visit func(T)) {
	s, ok := g.reg.Index(start)
	if !ok {
		return
	}
	w := g.newWalker()
	w.bfs(s, func(i int) { visit(g.reg.Label(i)) })
}

// DFS visits every vertex in start's component depth-first using an explicit
// stack, calling visit once per vertex as it is popped. An absent start is a
// no-op.
//
// Vertices are marked on push, like BFS. The result is a valid depth-first
// order but not necessarily the pre-order of the recursive formulation: a
// vertex pushed early by one parent is not pushed again by a deeper one.
// Neighbors go onto the stack in ascending index order, so the highest-index
// neighbor is expanded first.
//
// visit must not mutate g.
//
// Complexity: O(n²).
func (g *Graph[T]) DFS(start T, visit func(T)) {
	s, ok := g.reg.Index(start)
	if !ok {
		return
	}
	w := g.newWalker()
	w.dfs(s, func(i int) { visit(g.reg.Label(i)) })
}

// walker holds per-walk state. The seen slice may be shared across several
// walks (see ConnectedComponents).
type walker[T comparable] struct {
	g    *Graph[T]
	seen []bool
}

func (g *Graph[T]) newWalker() *walker[T] {
	return &walker[T]{g: g, seen: make([]bool, g.Size())}
}

// bfs walks from s with a FIFO frontier.
func (w *walker[T]) bfs(s int, visit func(int)) {
	queue := make([]int, 0, len(w.seen))
	w.seen[s] = true
	queue = append(queue, s)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		visit(cur)
		w.g.eachNeighbor(cur, func(j int) {
			if !w.seen[j] {
				w.seen[j] = true
				queue = append(queue, j)
			}
		})
	}
}

// dfs walks from s with a LIFO frontier.
func (w *walker[T]) dfs(s int, visit func(int)) {
	stack := make([]int, 0, len(w.seen))
	w.seen[s] = true
	stack = append(stack, s)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(cur)
		w.g.eachNeighbor(cur, func(j int) {
			if !w.seen[j] {
				w.seen[j] = true
				stack = append(stack, j)
			}
		})
	}
}
