// Package pipeline runs the load, select and render stages for the PID and
// Twiddle debug logs.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ccollicutt/pidplot/pkg/output"
	"github.com/ccollicutt/pidplot/pkg/parser"
	"github.com/ccollicutt/pidplot/pkg/render"
	"github.com/ccollicutt/pidplot/pkg/series"
)

// Command names recorded in reports.
const (
	CommandPID     = "pid"
	CommandTwiddle = "twiddle"
)

// Options configures a pipeline run.
type Options struct {
	// Renderer draws and encodes the images.
	Renderer render.Renderer

	// Suffix replaces the input extension in output names.
	Suffix string

	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

// RunPID plots the P, I, D error and CTE series of a PID debug log on one
// figure written next to the input.
func RunPID(ctx context.Context, input string, opts Options) (*output.Report, error) {
	start := time.Now()
	log := opts.logger().With("command", CommandPID)
	report := output.NewReport(CommandPID, input, opts.Renderer.Name())

	table, err := parser.Load(ctx, input)
	if err != nil {
		return report, fmt.Errorf("loading PID log: %w", err)
	}
	log.Debug("loaded log", "path", input, "rows", table.Rows(), "columns", table.Names())

	run, err := series.ExtractPID(table)
	if err != nil {
		return report, fmt.Errorf("selecting PID series: %w", err)
	}
	log.Debug("selected series", "steps", len(run.Steps), "gains", run.Gains.Label())

	fig := &render.Figure{
		XLabel: run.Gains.Label(),
		Legend: true,
		Series: figureSeries(run.Traces...),
	}

	path := render.OutputPath(input, "", opts.Suffix)
	if err := render.WriteFile(ctx, opts.Renderer, fig, path); err != nil {
		return report, err
	}
	report.AddImage("", path)
	log.Info("wrote plot", "path", path, "renderer", opts.Renderer.Name())

	report.Duration = time.Since(start)
	return report, nil
}

// RunTwiddle plots each gain and the best error per cycle of a Twiddle debug
// log against the global step, one figure per quantity. Images written before
// a failure stay on disk and are listed in the returned report.
func RunTwiddle(ctx context.Context, input string, opts Options) (*output.Report, error) {
	start := time.Now()
	log := opts.logger().With("command", CommandTwiddle)
	report := output.NewReport(CommandTwiddle, input, opts.Renderer.Name())

	table, err := parser.Load(ctx, input)
	if err != nil {
		return report, fmt.Errorf("loading Twiddle log: %w", err)
	}
	log.Debug("loaded log", "path", input, "rows", table.Rows(), "columns", table.Names())

	if table.Rows() == 0 {
		return report, &series.DataConsistencyError{
			Source: input,
			Reason: "log has no samples",
			Err:    series.ErrNoSamples,
		}
	}

	for _, q := range series.TwiddleQuantities {
		trace, err := series.ExtractTwiddle(table, q)
		if err != nil {
			return report, fmt.Errorf("selecting %s: %w", q.Name, err)
		}
		if dropped := table.Rows() - len(trace.Y); dropped > 0 {
			log.Debug("dropped placeholder values", "quantity", q.Name, "dropped", dropped)
		}

		fig := &render.Figure{
			Title:  fmt.Sprintf("Evolution of %s in the Twiddle algorithm.", q.Name),
			XLabel: "Global step",
			YLabel: q.Name,
			Series: figureSeries(*trace),
		}

		path := render.OutputPath(input, q.Name, opts.Suffix)
		if err := render.WriteFile(ctx, opts.Renderer, fig, path); err != nil {
			return report, err
		}
		report.AddImage(q.Name, path)
		log.Info("wrote plot", "quantity", q.Name, "path", path, "renderer", opts.Renderer.Name())

		if q.Name == series.ColBestErrorInCycle {
			bounds := series.Bounds(trace.Y)
			report.BestError = &bounds
		}
	}

	report.Duration = time.Since(start)
	return report, nil
}

func figureSeries(traces ...series.Trace) []render.Series {
	out := make([]render.Series, len(traces))
	for i, tr := range traces {
		out[i] = render.Series{Name: tr.Name, Color: tr.Color, X: tr.X, Y: tr.Y}
	}
	return out
}
