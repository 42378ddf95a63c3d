package commands

import (
	"github.com/spf13/cobra"

	"github.com/ccollicutt/pidplot/pkg/config"
	"github.com/ccollicutt/pidplot/pkg/pipeline"
)

// NewPIDCommand creates the pid command.
func NewPIDCommand(global *GlobalOptions) *cobra.Command {
	opts := &PlotOptions{}

	cmd := &cobra.Command{
		Use:   "pid --input_filename <log-file>",
		Short: "Plot the error terms of a PID debug log",
		Long: `Plot the P, I and D error terms and the cross-track error of a PID debug
log against the step index on a single figure.

The log must carry P_ERROR, I_ERROR, D_ERROR, CTE, KP, KI and KD columns.
The gains of the first row label the x axis. The image is written next to the
log as <log without extension>_plot.png.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, global, opts,
				func(*config.Config) string { return opts.Input },
				pipeline.RunPID)
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input_filename", "i", "", "PID debug log to plot")
	_ = cmd.MarkFlagRequired("input_filename")
	opts.addFlags(cmd)

	return cmd
}
