// Package cli provides the command-line interface for pidplot.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/pidplot/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		// SilenceErrors keeps cobra from printing this itself
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	global := &commands.GlobalOptions{}

	rootCmd := &cobra.Command{
		Use:   "pidplot",
		Short: "Plot PID controller and Twiddle tuner debug logs",
		Long: `pidplot reads the tab-separated debug logs written by a PID controller and
its Twiddle tuner and saves PNG plots next to them.

  pid      P, I, D error and CTE per step on one figure
  twiddle  KP, KI, KD and best error per cycle, one figure each

Configuration is read from --config (YAML), then PIDPLOT_* environment
variables, then command-line flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&global.ConfigPath, "config", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "Log debug diagnostics to stderr")

	rootCmd.AddCommand(commands.NewPIDCommand(global))
	rootCmd.AddCommand(commands.NewTwiddleCommand(global))
	rootCmd.AddCommand(commands.NewValidateCommand(global))
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
