package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/cachet/internal/app"
	"go.trai.ch/cachet/internal/core/domain"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-evaluate whenever a tracked input file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noCache, _ := cmd.Flags().GetBool("no-cache")
			out := cmd.OutOrStdout()

			opts := app.RunOptions{NoCache: noCache}
			return c.components.App.Watch(cmd.Context(), ".", c.components.Watcher, opts, func(r *domain.RunReport) {
				_, _ = fmt.Fprint(out, app.RenderReport(r))
			})
		},
	}
	cmd.Flags().BoolP("no-cache", "n", false, "Ignore the previous snapshot for the initial run")
	return cmd
}
