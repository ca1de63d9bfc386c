package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aurum-pm/aurum/pkg/engine"
)

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	var (
		local   bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "check <package>",
		Short: "Show a package's dependencies and their installed state",
		Long: `List a package's dependencies together with their locally installed
versions. By default the dependency list comes from AUR metadata; with
--local it is read from the PKGBUILD in the store instead, which also
covers packages the AUR metadata lags behind on.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cleanup, err := c.newEngine(cmd.Context(), refresh)
			if err != nil {
				return err
			}
			defer cleanup()

			var statuses []engine.DepStatus
			if local {
				statuses, err = eng.VerifyLocal(cmd.Context(), args[0])
			} else {
				statuses, err = eng.VerifyRemote(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}

			if len(statuses) == 0 {
				printInfo("%s has no dependencies", args[0])
				return nil
			}
			printDeps(args[0], statuses)
			return nil
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "read dependencies from the stored PKGBUILD")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cached AUR metadata")
	return cmd
}

func printDeps(name string, statuses []engine.DepStatus) {
	fmt.Println(StyleTitle.Render(name))
	for _, s := range statuses {
		if s.Installed {
			fmt.Println("  " + styleIconSuccess.Render(iconSuccess) + " " +
				StyleValue.Render(s.Name) + " " + StyleDim.Render(s.Version))
		} else {
			fmt.Println("  " + styleIconError.Render(iconError) + " " +
				StyleValue.Render(s.Name) + " " + StyleDim.Render("not installed"))
		}
	}
}
