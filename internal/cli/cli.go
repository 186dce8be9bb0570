// Package cli implements the planarize command-line interface: a thin
// caller layer over the planarity library. Edge lists come in as "u-v"
// tokens (arguments or stdin), reports and DOT dumps go out; all formatting
// lives here, the library packages stay format-free.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the planarize CLI. It wires the subcommands, configures
// logging from the --verbose flag and executes the command tree under ctx.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:           "planarize",
		Short:         "Planarity testing, embedding and crossing minimization",
		Long:          "planarize tests graphs for planarity, computes combinatorial embeddings\nand planarizes non-planar graphs with near-minimal crossings.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newTestCmd())
	root.AddCommand(newEmbedCmd())
	root.AddCommand(newPlanarizeCmd())

	return root.ExecuteContext(ctx)
}

// newLogger creates a timestamped logger writing to w at the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey keeps this package's context keys collision-free.
type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by Execute, or the default
// logger when the context carries none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}

	return log.Default()
}
