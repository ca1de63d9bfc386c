package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aurum-pm/aurum/pkg/engine"
)

// installCommand creates the install command.
func (c *CLI) installCommand() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "install <package>...",
		Short: "Resolve, fetch and build packages from the AUR",
		Long: `Resolve the named packages and their AUR dependency trees, clone
everything into the local store, then build and install in dependency
order. Each PKGBUILD is offered for review before it runs.

Dependencies available from the official repositories are left to pacman
(makepkg pulls them in during the build).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cleanup, err := c.newEngine(cmd.Context(), refresh)
			if err != nil {
				return err
			}
			defer cleanup()

			p := newProgress(loggerFromContext(cmd.Context()))
			plan, err := eng.Acquire(cmd.Context(), args)
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("resolved %d package(s)", plan.Len()))
			if plan.Empty() {
				printInfo("nothing to install")
				return nil
			}

			outcomes, err := eng.Install(cmd.Context(), plan, false)
			if err != nil {
				return err
			}
			return summarize(outcomes)
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cached AUR metadata")
	return cmd
}

// summarize prints per-package results and reports overall failure when
// any package did not install.
func summarize(outcomes []engine.Outcome) error {
	var installed, skipped, failed int
	for _, o := range outcomes {
		switch o.Status {
		case engine.StatusInstalled:
			installed++
		case engine.StatusSkipped:
			skipped++
		case engine.StatusFailed:
			failed++
		}
	}

	printDetail("%d installed, %d skipped, %d failed", installed, skipped, failed)
	if failed > 0 {
		return errPartialFailure(outcomes)
	}
	return nil
}
