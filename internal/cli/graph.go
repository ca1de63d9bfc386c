package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aurum-pm/aurum/pkg/errors"
	"github.com/aurum-pm/aurum/pkg/graph"
)

// graphCommand creates the graph command.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		output  string
		depth   int
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "graph <package>...",
		Short: "Render the AUR dependency graph of packages",
		Long: `Walk AUR metadata from the named packages and emit the dependency
graph. Without --output the graph is written to stdout in Graphviz DOT
format; with an .svg output path it is rendered via Graphviz.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cleanup, err := c.newAURClient(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			g, err := graph.Build(cmd.Context(), client, args, graph.Options{
				MaxDepth: depth,
				Refresh:  refresh,
			})
			if err != nil {
				return err
			}

			dot := graph.ToDOT(g)
			if output == "" {
				fmt.Print(dot)
				return nil
			}

			switch {
			case strings.HasSuffix(output, ".dot"):
				err = os.WriteFile(output, []byte(dot), 0o644)
			case strings.HasSuffix(output, ".svg"):
				var svg []byte
				svg, err = graph.RenderSVG(cmd.Context(), dot)
				if err == nil {
					err = os.WriteFile(output, svg, 0o644)
				}
			default:
				return errors.New(errors.ErrCodeUnsupported, "unsupported output format: %s (use .dot or .svg)", output)
			}
			if err != nil {
				return err
			}

			printSuccess("wrote %s", output)
			printDetail("%d nodes, %d edges", len(g.Nodes), len(g.Edges))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.dot or .svg); stdout when omitted")
	cmd.Flags().IntVar(&depth, "depth", graph.DefaultMaxDepth, "maximum dependency depth to walk")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cached AUR metadata")
	return cmd
}
