package series

import (
	"gonum.org/v1/gonum/floats"
)

// TwiddleQuantities are the Twiddle log values plotted, in plotting order.
var TwiddleQuantities = []Quantity{
	{Name: ColKP, Color: ColorP},
	{Name: ColKI, Color: ColorI},
	{Name: ColKD, Color: ColorD},
	{Name: ColBestErrorInCycle, Color: ColorCTE},
}

// Range is the minimum and maximum of a series.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ExtractTwiddle returns the trace of one Twiddle quantity against the global
// step counter. The best error is filtered with FilterBestError.
func ExtractTwiddle(table Table, q Quantity) (*Trace, error) {
	cols, err := columns(table, ColGlobalStep, q.Name)
	if err != nil {
		return nil, err
	}
	steps, values := cols[0], cols[1]

	if len(steps) != len(values) {
		return nil, &DataConsistencyError{
			Source:  table.Origin(),
			Reason:  q.Name + " and " + ColGlobalStep + " differ in length",
			Lengths: map[string]int{ColGlobalStep: len(steps), q.Name: len(values)},
			Err:     ErrLengthMismatch,
		}
	}

	if q.Name == ColBestErrorInCycle {
		steps, values = FilterBestError(steps, values)
	}

	if len(values) == 0 {
		return nil, &DataConsistencyError{
			Source: table.Origin(),
			Reason: "no " + q.Name + " samples to plot",
			Err:    ErrNoSamples,
		}
	}

	return &Trace{Quantity: q, X: steps, Y: values}, nil
}

// FilterBestError drops the placeholder values the tuner logs before the first
// best error is computed and truncates steps to the same length.
//
// Every non-positive value is dropped, wherever it occurs, but steps keep their
// prefix. That pairs values with the right steps only when the placeholders form
// a leading run.
func FilterBestError(steps, values []float64) (xs, ys []float64) {
	ys = make([]float64, 0, len(values))
	for _, v := range values {
		if v > 0 {
			ys = append(ys, v)
		}
	}
	xs = steps[:len(ys):len(ys)]
	return xs, ys
}

// Bounds returns the minimum and maximum of values, which must not be empty.
func Bounds(values []float64) Range {
	return Range{Min: floats.Min(values), Max: floats.Max(values)}
}
