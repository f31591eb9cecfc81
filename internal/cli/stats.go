// SPDX-License-Identifier: MIT

package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trigraph/core"
	"github.com/katalvlaran/trigraph/internal/tri"
)

func (c *CLI) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withGraph(cmd.Context(), func(g *core.Graph[string]) error {
				printKeyValue(c.out, "vertices", strconv.Itoa(g.Size()))
				printKeyValue(c.out, "edges", strconv.Itoa(g.EdgeCount()))
				printKeyValue(c.out, "cells", strconv.Itoa(tri.Size(g.Size())))
				printKeyValue(c.out, "components", strconv.Itoa(len(g.ConnectedComponents())))
				printKeyValue(c.out, "connected", strconv.FormatBool(g.IsConnected()))
				printKeyValue(c.out, "mode", g.Classify().String())
				return nil
			})
		},
	}
}
