// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trigraph/core"
)

type pathOpts struct {
	from, to string
}

// pathCommand prints a shortest path between two vertices and its total weight.
// A missing path is reported as a warning and returned as the command error.
func (c *CLI) pathCommand() *cobra.Command {
	var opts pathOpts

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Find a shortest path between two vertices",
		Long: `Find a shortest path between --from and --to.

Unit-weight graphs are searched breadth-first; graphs with any other
non-negative weight use Dijkstra. Negative weights are rejected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withGraph(cmd.Context(), func(g *core.Graph[string]) error {
				return c.runPath(cmd, g, opts)
			})
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "start vertex")
	cmd.Flags().StringVar(&opts.to, "to", "", "end vertex")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func (c *CLI) runPath(cmd *cobra.Command, g *core.Graph[string], opts pathOpts) error {
	p := newProgress(loggerFromContext(cmd.Context()))

	path, err := g.ShortestPathWeighted(opts.from, opts.to)
	if err != nil {
		if errors.Is(err, core.ErrNoPath) || errors.Is(err, core.ErrNegativeWeight) ||
			errors.Is(err, core.ErrWeightOverflow) {
			printWarning(c.out, "%v", err)
		}
		return fmt.Errorf("path %s to %s: %w", opts.from, opts.to, err)
	}
	p.done("shortest path computed")

	printSuccess(c.out, "%s", joinLabels(path.Vertices, " "+iconArrow+" "))
	printDetails(c.out,
		"weight "+strconv.FormatInt(path.Weight, 10),
		"mode "+path.Mode.String(),
		strconv.Itoa(len(path.Vertices))+" vertices",
	)

	return nil
}
