package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/cachet/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate the provider graph and report cache validity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noCache, _ := cmd.Flags().GetBool("no-cache")

			report, err := c.components.App.Run(cmd.Context(), ".", app.RunOptions{
				NoCache: noCache,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), app.RenderReport(report))
			return nil
		},
	}
	cmd.Flags().BoolP("no-cache", "n", false, "Ignore the previous snapshot and force re-evaluation")
	return cmd
}
