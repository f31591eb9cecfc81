// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/trigraph/core"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out       io.Writer
	errOut    io.Writer
	verbose   bool
	graph     graphFlags
	telemetry telemetryFlags
}

// New creates a CLI that prints results to out and logs and telemetry to errOut.
func New(out, errOut io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(errOut, level),
		out:    out,
		errOut: errOut,
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "trigraph",
		Short: "Query small undirected weighted graphs from the command line",
		Long: `trigraph builds an undirected weighted graph from --vertex and --edge flags
and runs a single query against it.

Edges are written as u-v for a unit edge or u-v:w for an integer weight w.
Endpoints are created on demand; --vertex adds isolated vertices.

Examples:
  trigraph path --edge a-b:4 --edge b-c:1 --edge a-c:9 --from a --to c
  trigraph components --edge a-b --edge c-d --vertex e
  trigraph walk --edge a-b --edge a-c --edge b-d --from a --dfs`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if c.verbose {
				c.Logger.SetLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	c.graph.register(root.PersistentFlags())
	c.telemetry.register(root.PersistentFlags())

	root.AddCommand(c.pathCommand())
	root.AddCommand(c.componentsCommand())
	root.AddCommand(c.walkCommand())
	root.AddCommand(c.statsCommand())

	return root
}

// withGraph builds the graph described by the persistent flags and hands it to fn.
// Telemetry providers live for the duration of fn and are flushed before return.
func (c *CLI) withGraph(ctx context.Context, fn func(*core.Graph[string]) error) (err error) {
	logger := loggerFromContext(ctx)

	tel, err := startTelemetry(c.errOut, c.telemetry)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, tel.shutdown(context.WithoutCancel(ctx)))
	}()

	opts := append(tel.options(), core.WithLogger(slog.New(logger)))
	g, err := c.graph.build(opts...)
	if err != nil {
		return err
	}
	logger.Debug("graph loaded", "vertices", g.Size(), "edges", g.EdgeCount())

	return fn(g)
}
