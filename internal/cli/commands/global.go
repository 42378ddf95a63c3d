package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/pidplot/pkg/config"
	"github.com/ccollicutt/pidplot/pkg/output"
	"github.com/ccollicutt/pidplot/pkg/pipeline"
	"github.com/ccollicutt/pidplot/pkg/render"
)

// GlobalOptions holds the flags shared by every subcommand.
type GlobalOptions struct {
	ConfigPath string
	Verbose    bool
}

// Logger returns a text logger on w, at debug level when verbose.
func (g *GlobalOptions) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if g.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// PlotOptions holds the flags of the plotting subcommands.
type PlotOptions struct {
	Input    string
	Output   string
	Renderer string
	Quiet    bool
}

func (o *PlotOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().StringVar(&o.Renderer, "renderer", "", "Plot backend (gonum|gochart), overrides config")
	cmd.Flags().BoolVarP(&o.Quiet, "quiet", "q", false, "Print only the written image paths")
}

type runFunc func(ctx context.Context, input string, opts pipeline.Options) (*output.Report, error)

// runPlot loads configuration, runs one pipeline and prints its report. A
// partial report is printed before the pipeline error is returned.
func runPlot(cmd *cobra.Command, global *GlobalOptions, opts *PlotOptions,
	input func(*config.Config) string, run runFunc) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(ctx, global.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if opts.Renderer != "" {
		cfg.Renderer = opts.Renderer
	}

	formatter, err := output.NewFormatter(opts.Output, output.FormatOptions{Quiet: opts.Quiet})
	if err != nil {
		return err
	}

	renderer, err := render.New(cfg.Renderer, cfg.RenderOptions())
	if err != nil {
		return err
	}

	log := global.Logger(cmd.ErrOrStderr())
	path := input(cfg)
	log.Debug("starting run", "command", cmd.Name(), "input", path, "renderer", renderer.Name())

	report, runErr := run(ctx, path, pipeline.Options{
		Renderer: renderer,
		Suffix:   cfg.Output.Suffix,
		Logger:   log,
	})

	if report != nil && (runErr == nil || len(report.Images) > 0) {
		if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("formatting output: %w", err)
		}
	}

	return runErr
}
