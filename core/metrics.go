// SPDX-License-Identifier: MIT

package core

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName scopes the meter and tracer.
const instrumentationName = "github.com/katalvlaran/trigraph/core"

// Metric names.
const (
	metricRebuilds     = "trigraph.rebuilds"
	metricRebuildCells = "trigraph.rebuild.cells"
	metricPathCalls    = "trigraph.shortest_path.calls"
)

// instruments bundles the meters and tracer a Graph reports to.
type instruments struct {
	tracer       trace.Tracer
	rebuilds     metric.Int64Counter
	rebuildCells metric.Int64Histogram
	pathCalls    metric.Int64Counter
}

// newInstruments builds instruments from the given providers, falling back to
// the global ones. Instrument creation errors degrade to no-op instruments.
func newInstruments(mp metric.MeterProvider, tp trace.TracerProvider) *instruments {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	meter := mp.Meter(instrumentationName)
	fallback := noop.NewMeterProvider().Meter(instrumentationName)

	in := &instruments{tracer: tp.Tracer(instrumentationName)}

	var err error
	if in.rebuilds, err = meter.Int64Counter(metricRebuilds,
		metric.WithDescription("Full packed-store rebuilds caused by vertex insertion or removal"),
	); err != nil {
		in.rebuilds, _ = fallback.Int64Counter(metricRebuilds)
	}
	if in.rebuildCells, err = meter.Int64Histogram(metricRebuildCells,
		metric.WithDescription("Packed cells allocated per rebuild"),
	); err != nil {
		in.rebuildCells, _ = fallback.Int64Histogram(metricRebuildCells)
	}
	if in.pathCalls, err = meter.Int64Counter(metricPathCalls,
		metric.WithDescription("Shortest-path queries by selected mode and outcome"),
	); err != nil {
		in.pathCalls, _ = fallback.Int64Counter(metricPathCalls)
	}

	return in
}

// recordRebuild records one grow or shrink of the packed store.
func (in *instruments) recordRebuild(op string, cells int) {
	ctx := context.Background()
	attrs := metric.WithAttributes(attribute.String("op", op))
	in.rebuilds.Add(ctx, 1, attrs)
	in.rebuildCells.Record(ctx, int64(cells), attrs)
}

// recordPath records one shortest-path query.
func (in *instruments) recordPath(ctx context.Context, mode Mode, found bool) {
	in.pathCalls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("mode", mode.String()),
		attribute.Bool("found", found),
	))
}

// startSpan opens a span for a read-only query.
func (in *instruments) startSpan(name string, vertices int) (context.Context, trace.Span) {
	return in.tracer.Start(context.Background(), name,
		trace.WithAttributes(attribute.Int("graph.vertices", vertices)),
	)
}
