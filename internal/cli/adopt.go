package cli

import (
	"github.com/spf13/cobra"

	"github.com/aurum-pm/aurum/pkg/errors"
)

// adoptCommand creates the adopt command.
func (c *CLI) adoptCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "adopt [package]...",
		Short: "Start tracking packages that were installed by hand",
		Long: `Bring already-installed foreign packages under aurum's management by
cloning their sources into the store. Nothing is built or reinstalled.

With --all every foreign package pacman reports is considered; ones
without an AUR record (split packages, manually built software) are
skipped quietly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (len(args) > 0) {
				return errors.New(errors.ErrCodeInvalidInput, "name packages to adopt or pass --all")
			}

			eng, cleanup, err := c.newEngine(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer cleanup()

			if all {
				return eng.MigrateAll(cmd.Context())
			}
			for _, name := range args {
				if err := eng.Migrate(cmd.Context(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "adopt every foreign package pacman knows about")
	return cmd
}
