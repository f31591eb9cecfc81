// SPDX-License-Identifier: MIT

// Package cli implements the trigraph command-line interface.
//
// The graph under query is given entirely through flags: --vertex adds an
// isolated vertex and --edge u-v[:w] adds an edge, creating its endpoints on
// first use. Each invocation builds the graph, runs one subcommand and exits.
//
// # Commands
//
//   - path: shortest path between --from and --to
//   - components: connected components
//   - walk: BFS (or DFS with --dfs) order from --from
//   - stats: vertex and edge counts, weight mode, connectivity
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The
// charmbracelet logger doubles as the slog.Handler handed to the graph, so
// the library's own debug records (store rebuilds, mode selection) show up
// in the same stream.
//
// # Telemetry
//
// --metrics and --traces install OpenTelemetry SDK providers whose stdout
// exporters write to the error stream when the command finishes.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at debug level along with the elapsed time, rounded to the microsecond.
func (p *progress) done(msg string) {
	p.logger.Debugf("%s (%s)", msg, time.Since(p.start).Round(time.Microsecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
