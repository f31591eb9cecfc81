// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Weight and option declarations, sentinel errors, NewGraph.
// Policy:
//   - Labels are opaque comparable values; dense indices never leave the package.
//   - Mutations fail softly (bool); lookups that can fail in more than one way return errors.

package core

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/trigraph/internal/registry"
	"github.com/katalvlaran/trigraph/internal/tri"
)

// Sentinel errors for core graph queries.
var (
	// ErrVertexNotFound indicates a query referenced a label that is not in the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNoPath indicates both endpoints exist but lie in different components.
	ErrNoPath = errors.New("core: no path between vertices")

	// ErrNegativeWeight indicates a shortest-path query on a graph holding a negative edge weight.
	ErrNegativeWeight = errors.New("core: negative edge weight not supported")

	// ErrWeightOverflow indicates end is reachable from start, but every path
	// between them has a total weight above math.MaxInt64.
	ErrWeightOverflow = errors.New("core: path weight overflows int64")
)

// Weight is the value stored for one unordered vertex pair.
// It is either Finite(v) or Absent; the zero value is Absent, so no integer
// is reserved as a "no edge" marker.
type Weight struct {
	v  int64
	ok bool
}

// Absent is the Weight of a pair with no edge.
var Absent = Weight{}

// Finite returns the Weight of an edge carrying v. Any int64 is legal,
// including zero and negative values.
func Finite(v int64) Weight { return Weight{v: v, ok: true} }

// Present reports whether w denotes an edge.
func (w Weight) Present() bool { return w.ok }

// IsAbsent reports whether w denotes "no edge".
func (w Weight) IsAbsent() bool { return !w.ok }

// Value returns the edge weight and true, or 0 and false for Absent.
func (w Weight) Value() (int64, bool) { return w.v, w.ok }

// String implements fmt.Stringer.
func (w Weight) String() string {
	if !w.ok {
		return "absent"
	}

	return fmt.Sprintf("%d", w.v)
}

// DefaultWeight is the weight AddEdge assigns.
const DefaultWeight int64 = 1

// GraphOption configures a Graph at construction.
type GraphOption func(*graphOptions)

type graphOptions struct {
	capacity int
	logger   *slog.Logger
	meters   metric.MeterProvider
	tracers  trace.TracerProvider
}

// WithCapacity pre-sizes the label registry for n vertices.
// The packed store is always rebuilt on growth, so only the registry benefits.
func WithCapacity(n int) GraphOption {
	return func(o *graphOptions) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithLogger routes debug events (store rebuilds, shortest-path mode
// selection) to l. A nil logger keeps the default, which discards everything.
func WithLogger(l *slog.Logger) GraphOption {
	return func(o *graphOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMeterProvider sets the provider for rebuild and query metrics.
// Defaults to otel.GetMeterProvider().
func WithMeterProvider(mp metric.MeterProvider) GraphOption {
	return func(o *graphOptions) {
		if mp != nil {
			o.meters = mp
		}
	}
}

// WithTracerProvider sets the provider for query spans.
// Defaults to otel.GetTracerProvider().
func WithTracerProvider(tp trace.TracerProvider) GraphOption {
	return func(o *graphOptions) {
		if tp != nil {
			o.tracers = tp
		}
	}
}

// Graph is an undirected, weighted graph over labels of type T.
//
// Storage is a packed upper triangle of Weight cells (one per unordered pair,
// self-pairs included) addressed through a label registry. Adding or removing
// a vertex rebuilds the whole triangle in O(n²); edge operations are O(1).
//
// A Graph is not safe for concurrent use, and visitors passed to BFS/DFS must
// not mutate the graph they are walking.
type Graph[T comparable] struct {
	reg   *registry.Registry[T]
	store *tri.Store[Weight]

	opts graphOptions
	log  *slog.Logger
	obs  *instruments
}

// NewGraph returns an empty graph.
// Complexity: O(1).
func NewGraph[T comparable](opts ...GraphOption) *Graph[T] {
	o := graphOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Graph[T]{
		reg:   registry.New[T](o.capacity),
		store: tri.New[Weight](0, Absent),
		opts:  o,
		log:   o.logger,
		obs:   newInstruments(o.meters, o.tracers),
	}
}
