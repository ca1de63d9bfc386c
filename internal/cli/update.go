package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aurum-pm/aurum/pkg/engine"
	"github.com/aurum-pm/aurum/pkg/errors"
)

// errPartialFailure folds failed outcomes into a single error for the
// exit status.
func errPartialFailure(outcomes []engine.Outcome) error {
	for _, o := range outcomes {
		if o.Status == engine.StatusFailed {
			return errors.Wrap(errors.ErrCodeInternal, o.Err, "%s failed", o.Name)
		}
	}
	return nil
}

// updateCommand creates the update command.
func (c *CLI) updateCommand() *cobra.Command {
	var (
		checkOnly bool
		refresh   bool
	)

	cmd := &cobra.Command{
		Use:   "update [package]...",
		Short: "Pull tracked packages and rebuild the outdated ones",
		Long: `Pull the latest sources for tracked packages, compare the upstream
version against the installed one, and rebuild anything that is behind.
Without arguments every tracked package is checked.

Declining a rebuild keeps the updated sources in the store so the next
run does not re-fetch them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cleanup, err := c.newEngine(cmd.Context(), refresh)
			if err != nil {
				return err
			}
			defer cleanup()

			p := newProgress(loggerFromContext(cmd.Context()))
			plan, err := eng.CheckUpdates(cmd.Context(), args)
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("update check finished, %d behind", plan.Len()))
			if plan.Empty() {
				printSuccess("everything is up to date")
				return nil
			}
			if checkOnly {
				printInfo("%d package(s) behind", plan.Len())
				printNextStep("Rebuild them", "aurum update")
				return nil
			}

			outcomes, err := eng.Install(cmd.Context(), plan, true)
			if err != nil {
				return err
			}
			return summarize(outcomes)
		},
	}

	cmd.Flags().BoolVar(&checkOnly, "check-only", false, "report outdated packages without rebuilding")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cached AUR metadata")
	return cmd
}
