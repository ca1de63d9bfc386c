package cli

import (
	"github.com/spf13/cobra"

	"github.com/aurum-pm/aurum/pkg/errors"
	"github.com/aurum-pm/aurum/pkg/store"
)

// removeCommand creates the remove command.
func (c *CLI) removeCommand() *cobra.Command {
	var uninstall bool

	cmd := &cobra.Command{
		Use:   "remove <package>...",
		Short: "Stop tracking packages",
		Long: `Drop packages from the local store. The installed packages are left
alone unless --uninstall is given, in which case pacman removes them
together with their unneeded dependencies.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.New(c.cfg.RepoDir, c.runner, c.cfg.Commands.Git, c.cfg.GitURL)
			if err != nil {
				return err
			}

			for _, name := range args {
				if !st.Exists(name) {
					return errors.New(errors.ErrCodeNotFound, "%s is not tracked", name)
				}
			}

			if uninstall {
				if err := c.pacman().Remove(cmd.Context(), args...); err != nil {
					return err
				}
			}
			for _, name := range args {
				if err := st.Delete(name); err != nil {
					return err
				}
				printSuccess("removed %s from the store", name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&uninstall, "uninstall", false, "also remove the installed packages via pacman")
	return cmd
}
