package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the snapshot and side-state directory",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := os.RemoveAll(domain.CachetDirName); err != nil {
				return zerr.Wrap(err, "failed to remove workspace directory")
			}
			c.components.Logger.Info("removed " + domain.CachetDirName)
			return nil
		},
	}
}
