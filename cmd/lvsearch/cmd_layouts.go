package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/maze"
)

func newLayoutsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List the embedded maze layouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range maze.Layouts() {
				m, err := maze.Layout(name)
				if err != nil {
					return err
				}
				reach := "reachable"
				if !m.GoalReachable() {
					reach = "unreachable"
				}
				fmt.Fprintf(a.out, "%-12s %3dx%-3d goals=%d %s\n", name, m.Width, m.Height, len(m.Goals()), reach)
			}
			return nil
		},
	}
}
