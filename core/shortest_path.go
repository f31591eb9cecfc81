// SPDX-License-Identifier: MIT
//
// File: shortest_path.go
// Role: Shortest-path mode selection, unit-weight BFS search, path reconstruction.
// Policy:
//   - The mode is computed once per query from a full scan of the store; the
//     Graph type itself carries no strategy.
//   - Every failure returns a nil path together with a sentinel error.

package core

import (
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/codes"
)

// Mode is the shortest-path strategy implied by the current edge weights.
type Mode int

const (
	// ModeUnit: every edge weighs exactly 1; BFS yields minimum-hop paths.
	ModeUnit Mode = iota

	// ModeNonNegative: all weights ≥ 0 with at least one ≠ 1; Dijkstra applies.
	ModeNonNegative

	// ModeNegative: some weight is < 0; shortest paths are not supported.
	ModeNegative
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeUnit:
		return "unit"
	case ModeNonNegative:
		return "non-negative"
	case ModeNegative:
		return "negative"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Path is a shortest path together with how it was obtained.
type Path[T comparable] struct {
	// Vertices runs from start to end inclusive.
	Vertices []T

	// Weight is the sum of edge weights along Vertices. In ModeUnit this is the hop count.
	Weight int64

	// Mode is the strategy that produced the path.
	Mode Mode
}

// Classify scans every edge and reports the shortest-path mode.
// A graph without edges is ModeUnit.
// Complexity: O(n²).
func (g *Graph[T]) Classify() Mode {
	mode := ModeUnit
	g.store.Cells(func(_, _ int, w Weight) bool {
		v, _ := w.Value()
		switch {
		case v < 0:
			mode = ModeNegative
			return false
		case v != 1:
			mode = ModeNonNegative
		}
		return true
	})

	return mode
}

// ShortestPath returns the labels of a shortest path from start to end,
// both inclusive. When start == end the path is just [start].
//
// Errors:
//   - ErrVertexNotFound if start or end is absent.
//   - ErrNegativeWeight if any edge weight is negative.
//   - ErrNoPath if end is not reachable from start.
//   - ErrWeightOverflow if end is reachable but every path weighs more than
//     math.MaxInt64.
//
// The path is nil whenever err != nil.
func (g *Graph[T]) ShortestPath(start, end T) ([]T, error) {
	p, err := g.ShortestPathWeighted(start, end)
	if err != nil {
		return nil, err
	}

	return p.Vertices, nil
}

// ShortestPathWeighted is ShortestPath returning the total weight and the
// selected mode as well.
//
// Mode selection:
//   - ModeUnit: BFS with parent links, stopping as soon as end is discovered. O(n²).
//   - ModeNonNegative: Dijkstra with a binary heap and lazy deletion, stopping
//     once end is finalized. O(n² + E log E).
//   - ModeNegative: rejected with ErrNegativeWeight.
//
// Among several shortest paths, which one is returned depends on scan and
// heap order; its weight is always minimal.
func (g *Graph[T]) ShortestPathWeighted(start, end T) (Path[T], error) {
	ctx, span := g.obs.startSpan("Graph.ShortestPath", g.Size())
	defer span.End()

	mode := g.Classify()
	g.log.Debug("core: shortest path mode selected",
		slog.String("mode", mode.String()),
		slog.Int("vertices", g.Size()),
	)

	p, err := g.shortestPath(start, end, mode)
	g.obs.recordPath(ctx, mode, err == nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return p, err
}

func (g *Graph[T]) shortestPath(start, end T, mode Mode) (Path[T], error) {
	s, ok := g.reg.Index(start)
	if !ok {
		return Path[T]{Mode: mode}, fmt.Errorf("%w: start %v", ErrVertexNotFound, start)
	}
	e, ok := g.reg.Index(end)
	if !ok {
		return Path[T]{Mode: mode}, fmt.Errorf("%w: end %v", ErrVertexNotFound, end)
	}

	var (
		parent []int
		dist   int64
		found  bool
	)
	switch mode {
	case ModeUnit:
		parent, dist, found = g.unitSearch(s, e)
	case ModeNonNegative:
		r := newRunner(g, s)
		parent, dist, found = r.run(e)
		if !found && r.overflowed && g.reaches(s, e) {
			return Path[T]{Mode: mode}, fmt.Errorf("%w: %v to %v", ErrWeightOverflow, start, end)
		}
	default:
		return Path[T]{Mode: mode}, ErrNegativeWeight
	}
	if !found {
		return Path[T]{Mode: mode}, fmt.Errorf("%w: %v to %v", ErrNoPath, start, end)
	}

	return Path[T]{Vertices: g.trace(parent, s, e), Weight: dist, Mode: mode}, nil
}

// unitSearch runs BFS from s until e is discovered. parent[i] is the index
// i was discovered from, or -1.
func (g *Graph[T]) unitSearch(s, e int) ([]int, int64, bool) {
	n := g.Size()
	parent := make([]int, n)
	depth := make([]int64, n)
	seen := make([]bool, n)
	for i := range parent {
		parent[i] = -1
	}
	seen[s] = true
	queue := []int{s}
	for len(queue) > 0 && !seen[e] {
		cur := queue[0]
		queue = queue[1:]
		g.eachNeighbor(cur, func(j int) {
			if seen[j] {
				return
			}
			seen[j] = true
			parent[j] = cur
			depth[j] = depth[cur] + 1
			queue = append(queue, j)
		})
	}

	return parent, depth[e], seen[e]
}

// reaches reports whether e is in the component of s, ignoring weights.
func (g *Graph[T]) reaches(s, e int) bool {
	w := g.newWalker()
	w.bfs(s, func(int) {})

	return w.seen[e]
}

// trace follows parent links from e back to s and returns the labels in
// start-to-end order.
func (g *Graph[T]) trace(parent []int, s, e int) []T {
	var rev []int
	for cur := e; ; cur = parent[cur] {
		rev = append(rev, cur)
		if cur == s {
			break
		}
	}
	path := make([]T, len(rev))
	for k, i := range rev {
		path[len(rev)-1-k] = g.reg.Label(i)
	}

	return path
}
