package commands

import (
	"github.com/spf13/cobra"

	"github.com/ccollicutt/pidplot/pkg/config"
	"github.com/ccollicutt/pidplot/pkg/pipeline"
)

// NewTwiddleCommand creates the twiddle command.
func NewTwiddleCommand(global *GlobalOptions) *cobra.Command {
	opts := &PlotOptions{}

	cmd := &cobra.Command{
		Use:   "twiddle [--input_filename <log-file>]",
		Short: "Plot gain and best-error evolution of a Twiddle debug log",
		Long: `Plot KP, KI, KD and BEST_ERROR_IN_CYCLE of a Twiddle debug log against
GLOBAL_STEP, one image per quantity, and print the best-error range.

Zero best-error values are placeholders for cycles not yet evaluated and are
dropped before plotting.

The log is taken from --input_filename, then PIDPLOT_TWIDDLE_INPUT, then
twiddle.input in the config file, then /tmp/pid_wrapper_debug_twiddle.txt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, global, opts, func(cfg *config.Config) string {
				if opts.Input != "" {
					return opts.Input
				}
				return cfg.Twiddle.Input
			}, pipeline.RunTwiddle)
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input_filename", "i", "", "Twiddle debug log to plot")
	opts.addFlags(cmd)

	return cmd
}
