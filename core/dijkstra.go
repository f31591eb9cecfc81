// SPDX-License-Identifier: MIT
//
// File: dijkstra.go
// Role: Dijkstra's algorithm over dense indices for ModeNonNegative graphs.
// Notes:
//   - Lazy decrease-key: an improved distance pushes a new heap entry; stale
//     entries are skipped when popped because their vertex is already final.
//   - Correctness needs only non-negative weights; the order in which equal
//     distances pop does not matter.
//   - Relaxations whose sum exceeds MaxInt64 are dropped and flagged. With
//     non-negative weights every prefix of a representable path is itself
//     representable, so a target left unreached after such a drop is either
//     disconnected or reachable only through overflowing paths.

package core

import (
	"container/heap"
	"math"
)

// runner holds the state of one Dijkstra execution.
type runner[T comparable] struct {
	g       *Graph[T]
	src     int
	dist    []int64 // tentative distance, valid where reached
	reached []bool  // dist holds a finite upper bound
	final   []bool  // dist is proven minimal
	parent  []int   // predecessor on the best known path, -1 if none
	pq      nodePQ

	overflowed bool // some relaxation was dropped because d+w > MaxInt64
}

func newRunner[T comparable](g *Graph[T], src int) *runner[T] {
	n := g.Size()
	r := &runner[T]{
		g:       g,
		src:     src,
		dist:    make([]int64, n),
		reached: make([]bool, n),
		final:   make([]bool, n),
		parent:  make([]int, n),
		pq:      make(nodePQ, 0, n),
	}
	for i := range r.parent {
		r.parent[i] = -1
	}
	r.reached[src] = true
	heap.Push(&r.pq, nodeItem{idx: src, dist: 0})

	return r
}

// run finalizes vertices until dst is final or the heap drains.
// It returns the parent links, dist[dst], and whether dst was reached.
func (r *runner[T]) run(dst int) ([]int, int64, bool) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		if r.final[item.idx] {
			continue
		}
		r.final[item.idx] = true
		if item.idx == dst {
			break
		}
		r.relax(item.idx)
	}

	return r.parent, r.dist[dst], r.final[dst]
}

// relax improves every non-final neighbor of the just-finalized u.
func (r *runner[T]) relax(u int) {
	d := r.dist[u]
	r.g.eachNeighbor(u, func(v int) {
		if r.final[v] {
			return
		}
		w, _ := r.g.store.At(u, v).Value()
		// A sum past MaxInt64 cannot be shorter than anything representable.
		if w > 0 && d > math.MaxInt64-w {
			r.overflowed = true
			return
		}
		nd := d + w
		if r.reached[v] && nd >= r.dist[v] {
			return
		}
		r.dist[v] = nd
		r.reached[v] = true
		r.parent[v] = u
		heap.Push(&r.pq, nodeItem{idx: v, dist: nd})
	})
}

// nodeItem is a heap entry: a vertex index and the distance it was pushed with.
type nodeItem struct {
	idx  int
	dist int64
}

// nodePQ is a min-heap of nodeItem by (dist, idx).
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].idx < pq[j].idx
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
