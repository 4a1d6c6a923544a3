// Package cli implements the yosysnet command-line interface.
//
// The commands are thin wrappers over the netlist codec: fmt re-emits
// a document in canonical field order, info summarizes module
// contents, query runs JSONPath expressions over the raw document, and
// dot exports module connectivity for Graphviz. Logging goes to stderr
// via charmbracelet/log and stays at info level unless --verbose is
// set; command output itself goes to stdout so it can be piped.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // set via ldflags
	commit  = "none"
)

// SetVersion overrides the version information shown by --version,
// typically from ldflags in the main package.
func SetVersion(v, c string) {
	version = v
	commit = c
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
}

// NewRoot builds the command tree. Split from Execute so tests can run
// commands against buffers.
func NewRoot(logger *log.Logger) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:     "yosysnet",
		Short:   "Inspect and reformat JSON netlists",
		Long:    "yosysnet reads the JSON netlist format written by logic-synthesis tools\nand re-emits, summarizes, queries, or graphs it. Unknown fields survive\nevery trip untouched.",
		Version: version + " (" + commit + ")",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(fmtCommand(logger))
	root.AddCommand(infoCommand(logger))
	root.AddCommand(queryCommand(logger))
	root.AddCommand(dotCommand(logger))
	return root
}

// Execute runs the CLI until completion or ctx cancellation.
func Execute(ctx context.Context) error {
	logger := newLogger(os.Stderr, log.InfoLevel)
	return NewRoot(logger).ExecuteContext(ctx)
}
