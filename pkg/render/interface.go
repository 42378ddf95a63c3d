package render

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
)

// Renderer draws a figure as a PNG image.
type Renderer interface {
	// Render encodes fig as PNG into w.
	Render(ctx context.Context, fig *Figure, w io.Writer) error

	// Name returns the backend name (gonum, gochart).
	Name() string
}

// Options controls the size of rendered images.
type Options struct {
	// Width and Height are the image size in pixels.
	Width  int
	Height int

	// DPI is the resolution used to scale fonts and line widths.
	DPI int
}

// DefaultOptions matches a 6.4x4.8 inch figure at 100 dpi.
func DefaultOptions() Options {
	return Options{Width: 640, Height: 480, DPI: 100}
}

// Series is one line of a figure.
type Series struct {
	Name  string
	Color color.Color
	X     []float64
	Y     []float64
}

// Figure is a single plot: labels, an optional legend and its lines.
type Figure struct {
	Title  string
	XLabel string
	YLabel string
	Legend bool
	Series []Series
}

// ErrEmptyFigure is returned when a figure has no lines or a line has no points.
var ErrEmptyFigure = errors.New("figure has nothing to draw")

// Validate checks that every series has matching, non-empty x and y.
func (f *Figure) Validate() error {
	if len(f.Series) == 0 {
		return ErrEmptyFigure
	}
	for _, s := range f.Series {
		if len(s.X) != len(s.Y) {
			return fmt.Errorf("series %q has %d x values and %d y values", s.Name, len(s.X), len(s.Y))
		}
		if len(s.X) == 0 {
			return fmt.Errorf("series %q: %w", s.Name, ErrEmptyFigure)
		}
	}
	return nil
}
