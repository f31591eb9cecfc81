// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/katalvlaran/trigraph/core"
)

const serviceName = "trigraph"

type telemetryFlags struct {
	metrics bool
	traces  bool
}

func (f *telemetryFlags) register(fs *pflag.FlagSet) {
	fs.BoolVar(&f.metrics, "metrics", false, "dump OpenTelemetry metrics to stderr on exit")
	fs.BoolVar(&f.traces, "traces", false, "dump OpenTelemetry spans to stderr on exit")
}

// telemetry owns the SDK providers installed for a single command run.
// Providers are passed to the graph explicitly and never registered globally.
type telemetry struct {
	meters  *sdkmetric.MeterProvider
	tracers *sdktrace.TracerProvider
}

func startTelemetry(w io.Writer, f telemetryFlags) (*telemetry, error) {
	t := &telemetry{}
	if !f.metrics && !f.traces {
		return t, nil
	}

	res := resource.NewWithAttributes(
		"",
		attribute.String("service.name", serviceName),
	)

	if f.metrics {
		exporter, err := stdoutmetric.New(stdoutmetric.WithWriter(w), stdoutmetric.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("create stdout metric exporter: %w", err)
		}
		t.meters = sdkmetric.NewMeterProvider(
			sdkmetric.WithResource(res),
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		)
	}

	if f.traces {
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("create stdout trace exporter: %w", err)
		}
		t.tracers = sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exporter),
			sdktrace.WithResource(res),
			sdktrace.WithSampler(sdktrace.AlwaysSample()),
		)
	}

	return t, nil
}

// options returns the graph options wiring the active providers.
func (t *telemetry) options() []core.GraphOption {
	var opts []core.GraphOption
	if t.meters != nil {
		opts = append(opts, core.WithMeterProvider(t.meters))
	}
	if t.tracers != nil {
		opts = append(opts, core.WithTracerProvider(t.tracers))
	}
	return opts
}

// shutdown flushes and stops every active provider.
func (t *telemetry) shutdown(ctx context.Context) error {
	var errs []error
	if t.tracers != nil {
		if err := t.tracers.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown tracer provider: %w", err))
		}
	}
	if t.meters != nil {
		if err := t.meters.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown meter provider: %w", err))
		}
	}
	return errors.Join(errs...)
}
