package output

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// TextFormatter prints one line per written image, plus the best-error range.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		for _, img := range report.Images {
			if _, err := fmt.Fprintln(w, img.Path); err != nil {
				return err
			}
		}
		return nil
	}

	for _, img := range report.Images {
		var err error
		if img.Quantity == "" {
			_, err = fmt.Fprintf(w, "Saved plot at %s\n", img.Path)
		} else {
			_, err = fmt.Fprintf(w, "Saved %s plot at %s\n", img.Quantity, img.Path)
		}
		if err != nil {
			return err
		}
	}

	if report.BestError != nil {
		if _, err := fmt.Fprintf(w, "Min best error: %s\nMax best error: %s\n",
			formatValue(report.BestError.Min),
			formatValue(report.BestError.Max)); err != nil {
			return err
		}
	}

	return nil
}

// formatValue prints the shortest exact representation, keeping a decimal
// point on whole numbers (3 prints as 3.0).
func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if strings.ContainsAny(s, ".eNI") {
		return s
	}
	return s + ".0"
}
