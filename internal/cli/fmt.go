package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/agentic-research/yosysnet/netlist"
)

func fmtCommand(logger *log.Logger) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "fmt <netlist.json>",
		Short: "Re-encode a netlist in canonical field order",
		Long: `Decode a netlist document and write it back out with known fields in
schema order. Unrecognized fields are preserved verbatim after the
known ones, and all named collections keep their original key order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := readNetlist(args[0])
			if err != nil {
				return err
			}
			logger.Debug("decoded", "file", args[0], "modules", n.Modules.Len())

			out, err := n.ToString()
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}
			if err := os.WriteFile(output, []byte(out+"\n"), 0o644); err != nil {
				return err
			}
			logger.Info("wrote", "file", output, "bytes", len(out)+1)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")
	return cmd
}

func readNetlist(path string) (*netlist.Netlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	n, err := netlist.FromSlice(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return n, nil
}
