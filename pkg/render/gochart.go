package render

import (
	"context"
	"fmt"
	"image/color"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/floats"
)

// GoChartRenderer draws figures with github.com/wcharczuk/go-chart/v2.
type GoChartRenderer struct {
	opts Options
}

// NewGoChartRenderer creates a go-chart backed renderer.
func NewGoChartRenderer(opts Options) *GoChartRenderer {
	return &GoChartRenderer{opts: opts}
}

// Name returns the backend name.
func (r *GoChartRenderer) Name() string {
	return BackendGoChart
}

// Render draws fig and writes it to w as PNG.
func (r *GoChartRenderer) Render(ctx context.Context, fig *Figure, w io.Writer) error {
	if err := fig.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var xs, ys []float64
	series := make([]chart.Series, 0, len(fig.Series))
	for _, s := range fig.Series {
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: s.X,
			YValues: s.Y,
			Style: chart.Style{
				StrokeColor: drawingColor(s.Color),
				StrokeWidth: 1.5,
			},
		})
		xs = append(xs, s.X...)
		ys = append(ys, s.Y...)
	}

	ch := chart.Chart{
		Title:  fig.Title,
		Width:  r.opts.Width,
		Height: r.opts.Height,
		DPI:    float64(r.opts.DPI),
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis:  chart.XAxis{Name: fig.XLabel, Range: paddedRange(xs)},
		YAxis:  chart.YAxis{Name: fig.YLabel, Range: paddedRange(ys)},
		Series: series,
	}
	if fig.Legend {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}

// paddedRange spans values, widened when they are all equal since go-chart
// rejects a zero-width range.
func paddedRange(values []float64) *chart.ContinuousRange {
	lo, hi := floats.Min(values), floats.Max(values)
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

func drawingColor(c color.Color) drawing.Color {
	r, g, b, a := c.RGBA()
	return drawing.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
