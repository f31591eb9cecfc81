// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trigraph/core"
)

type walkOpts struct {
	from string
	dfs  bool
}

func (c *CLI) walkCommand() *cobra.Command {
	var opts walkOpts

	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Print the BFS or DFS visit order from a vertex",
		Long: `Print every vertex reachable from --from in visit order.

Breadth-first by default; --dfs switches to an iterative depth-first walk.
Neighbors are considered in insertion order of the vertices.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withGraph(cmd.Context(), func(g *core.Graph[string]) error {
				if !g.HasVertex(opts.from) {
					return fmt.Errorf("walk from %s: %w", opts.from, core.ErrVertexNotFound)
				}

				var order []string
				visit := func(v string) { order = append(order, v) }
				kind := "bfs"
				if opts.dfs {
					kind = "dfs"
					g.DFS(opts.from, visit)
				} else {
					g.BFS(opts.from, visit)
				}

				printSuccess(c.out, "%s", joinLabels(order, " "+iconArrow+" "))
				printDetails(c.out, kind, fmt.Sprintf("%d of %d vertices", len(order), g.Size()))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "start vertex")
	cmd.Flags().BoolVar(&opts.dfs, "dfs", false, "walk depth-first")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}
