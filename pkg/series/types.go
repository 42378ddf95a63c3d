// Package series selects and filters the columns that the PID and Twiddle
// plots draw, and owns the fixed color convention shared by both plots.
package series

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strings"

	"golang.org/x/image/colornames"
)

// Column names written by the PID controller debug log.
const (
	ColPError = "P_ERROR"
	ColIError = "I_ERROR"
	ColDError = "D_ERROR"
	ColCTE    = "CTE"
	ColKP     = "KP"
	ColKI     = "KI"
	ColKD     = "KD"
)

// Column names written by the Twiddle tuner debug log.
const (
	ColGlobalStep       = "GLOBAL_STEP"
	ColBestErrorInCycle = "BEST_ERROR_IN_CYCLE"
)

// Fixed color convention. The gains reuse the colors of the error term they
// scale, and the best error reuses the CTE color.
var (
	ColorP   color.Color = colornames.Red
	ColorI   color.Color = colornames.Blue
	ColorD   color.Color = colornames.Green
	ColorCTE color.Color = colornames.Orange
)

// Table is the column lookup the extractors need; *parser.Table implements it.
type Table interface {
	// Column returns the named column or an error if it is missing.
	Column(name string) ([]float64, error)
	// Origin names where the columns were read from.
	Origin() string
}

func columns(t Table, names ...string) ([][]float64, error) {
	out := make([][]float64, len(names))
	for i, name := range names {
		values, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		out[i] = values
	}
	return out, nil
}

// Quantity is a named logged value plotted with a fixed color.
type Quantity struct {
	Name  string
	Color color.Color
}

// Causes carried by DataConsistencyError.
var (
	ErrLengthMismatch = errors.New("series lengths differ")
	ErrNoSamples      = errors.New("no samples to plot")
)

// DataConsistencyError is returned when extracted series cannot be plotted
// together: their lengths differ, or there is nothing to plot.
type DataConsistencyError struct {
	Source string
	Reason string
	// Lengths maps column name to length for length mismatches.
	Lengths map[string]int
	// Err is ErrLengthMismatch or ErrNoSamples.
	Err error
}

func (e *DataConsistencyError) Error() string {
	msg := fmt.Sprintf("inconsistent data in %s: %s", e.Source, e.Reason)
	if len(e.Lengths) == 0 {
		return msg
	}

	names := make([]string, 0, len(e.Lengths))
	for name := range e.Lengths {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%d", name, e.Lengths[name])
	}
	return msg + " (" + strings.Join(parts, ", ") + ")"
}

func (e *DataConsistencyError) Unwrap() error {
	return e.Err
}

// StepAxis returns the implicit x axis 0, 1, ..., n-1.
func StepAxis(n int) []float64 {
	steps := make([]float64, n)
	for i := range steps {
		steps[i] = float64(i)
	}
	return steps
}
