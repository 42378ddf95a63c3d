package render

import (
	"context"
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// GonumRenderer draws figures with gonum.org/v1/plot.
type GonumRenderer struct {
	opts Options
}

// NewGonumRenderer creates a gonum/plot backed renderer.
func NewGonumRenderer(opts Options) *GonumRenderer {
	return &GonumRenderer{opts: opts}
}

// Name returns the backend name.
func (r *GonumRenderer) Name() string {
	return BackendGonum
}

// Render draws fig and writes it to w as PNG.
func (r *GonumRenderer) Render(ctx context.Context, fig *Figure, w io.Writer) error {
	if err := fig.Validate(); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = fig.Title
	p.X.Label.Text = fig.XLabel
	p.Y.Label.Text = fig.YLabel
	p.Legend.Top = true

	for _, s := range fig.Series {
		if err := ctx.Err(); err != nil {
			return err
		}

		pts := make(plotter.XYs, len(s.X))
		for i := range pts {
			pts[i].X = s.X[i]
			pts[i].Y = s.Y[i]
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("series %q: %w", s.Name, err)
		}
		line.Color = s.Color
		line.Width = vg.Points(1.5)

		p.Add(line)
		if fig.Legend {
			p.Legend.Add(s.Name, line)
		}
	}

	dpi := float64(r.opts.DPI)
	c := vgimg.NewWith(
		vgimg.UseWH(
			vg.Length(float64(r.opts.Width)/dpi)*vg.Inch,
			vg.Length(float64(r.opts.Height)/dpi)*vg.Inch,
		),
		vgimg.UseDPI(r.opts.DPI),
	)
	p.Draw(draw.New(c))

	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
