package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func infoCommand(logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "info <netlist.json>",
		Short: "Summarize a netlist's modules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := readNetlist(args[0])
			if err != nil {
				return err
			}
			logger.Debug("decoded", "file", args[0])

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "creator: %s\n", n.Creator)
			for pair := n.Modules.Oldest(); pair != nil; pair = pair.Next() {
				m := pair.Value
				fmt.Fprintf(out, "%s: %d ports, %d cells, %d memories, %d nets\n",
					pair.Key, m.Ports.Len(), m.Cells.Len(), m.Memories.Len(), m.Nets.Len())
			}
			return nil
		},
	}
}
