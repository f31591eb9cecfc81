// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trigraph/core"
)

// componentsCommand lists connected components, one per line, in the order
// the graph discovers them (by lowest member index).
func (c *CLI) componentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List connected components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withGraph(cmd.Context(), func(g *core.Graph[string]) error {
				comps := g.ConnectedComponents()
				printTitle(c.out, fmt.Sprintf("%d components", len(comps)))
				for i, comp := range comps {
					fmt.Fprintf(c.out, "%s %s\n",
						StyleNumber.Render(strconv.Itoa(i+1)),
						joinLabels(comp, ", "),
					)
				}
				return nil
			})
		},
	}
}
