package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/agentic-research/yosysnet/internal/query"
)

func queryCommand(logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "query <netlist.json> <jsonpath>",
		Short: "Run a JSONPath expression over a raw netlist document",
		Long: `Evaluate a JSONPath expression against the document as parsed JSON and
print one match per line. The query sees the raw document, so it can
reach vendor-specific fields the schema does not know about.

Example:
  yosysnet query design.json '$.modules.*.cells.*.type'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			matches, err := query.Run(data, args[1])
			if err != nil {
				return err
			}
			logger.Debug("query done", "selector", args[1], "matches", len(matches))

			for _, m := range matches {
				fmt.Fprintln(cmd.OutOrStdout(), oj.JSON(m))
			}
			return nil
		},
	}
}
