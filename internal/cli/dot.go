package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/agentic-research/yosysnet/internal/dot"
)

func dotCommand(logger *log.Logger) *cobra.Command {
	var (
		svg    bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "dot <netlist.json> [module]",
		Short: "Export module connectivity as Graphviz DOT",
		Long: `Write a DOT digraph of one module: ports and cells as nodes, edges
where connections share signal bits. When the netlist holds a single
module the name may be omitted. With --svg the graph is rendered in
process instead of printed as DOT source.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := readNetlist(args[0])
			if err != nil {
				return err
			}

			name := ""
			if len(args) == 2 {
				name = args[1]
			} else if n.Modules.Len() == 1 {
				name = n.Modules.Oldest().Key
			} else {
				return fmt.Errorf("%s has %d modules, name one", args[0], n.Modules.Len())
			}
			mod, ok := n.Modules.Get(name)
			if !ok {
				return fmt.Errorf("no module %q in %s", name, args[0])
			}

			src := dot.Graph(name, mod)
			logger.Debug("graph built", "module", name, "bytes", len(src))

			if !svg {
				if output == "" {
					fmt.Fprint(cmd.OutOrStdout(), src)
					return nil
				}
				return os.WriteFile(output, []byte(src), 0o644)
			}
			rendered, err := dot.RenderSVG(cmd.Context(), src)
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(rendered)
				return err
			}
			return os.WriteFile(output, rendered, 0o644)
		},
	}
	cmd.Flags().BoolVar(&svg, "svg", false, "render SVG instead of DOT source")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")
	return cmd
}
