package series

import (
	"fmt"
	"image/color"
)

// Gains are the controller constants of a PID run.
type Gains struct {
	KP float64
	KI float64
	KD float64
}

// Label formats the gains the way the PID plot's x axis shows them.
func (g Gains) Label() string {
	return fmt.Sprintf("KP=%.4f, KI=%.4f, KD=%.4f", g.KP, g.KI, g.KD)
}

// Trace is one plotted line: a quantity and its x/y samples.
type Trace struct {
	Quantity
	X []float64
	Y []float64
}

// PIDRun holds the four error series of a controller run over a shared step axis.
type PIDRun struct {
	Source string
	Gains  Gains
	Steps  []float64
	Traces []Trace
}

// pidTerms lists the plotted PID columns, their legend names and colors.
var pidTerms = []struct {
	column string
	legend string
	color  color.Color
}{
	{ColPError, "P error", ColorP},
	{ColIError, "I error", ColorI},
	{ColDError, "D error", ColorD},
	{ColCTE, "CTE", ColorCTE},
}

// ExtractPID selects the P, I, D error and CTE series and the run's gains.
// The four series must have equal length and at least one row, since the
// gains are read from the first row (they are constant for a run).
func ExtractPID(table Table) (*PIDRun, error) {
	terms := make([][]float64, len(pidTerms))
	lengths := make(map[string]int, len(pidTerms))
	for i, term := range pidTerms {
		values, err := table.Column(term.column)
		if err != nil {
			return nil, err
		}
		terms[i] = values
		lengths[term.column] = len(values)
	}

	n := len(terms[0])
	for _, values := range terms[1:] {
		if len(values) != n {
			return nil, &DataConsistencyError{
				Source:  table.Origin(),
				Reason:  "PID error series differ in length",
				Lengths: lengths,
				Err:     ErrLengthMismatch,
			}
		}
	}

	gainNames := []string{ColKP, ColKI, ColKD}
	gainCols, err := columns(table, gainNames...)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, &DataConsistencyError{Source: table.Origin(), Reason: "log has no samples", Err: ErrNoSamples}
	}
	for i, gains := range gainCols {
		if len(gains) == 0 {
			return nil, &DataConsistencyError{
				Source: table.Origin(),
				Reason: "gain column " + gainNames[i] + " is empty",
				Err:    ErrNoSamples,
			}
		}
	}

	run := &PIDRun{
		Source: table.Origin(),
		Gains: Gains{
			KP: gainCols[0][0],
			KI: gainCols[1][0],
			KD: gainCols[2][0],
		},
		Steps:  StepAxis(n),
		Traces: make([]Trace, len(pidTerms)),
	}
	for i, term := range pidTerms {
		run.Traces[i] = Trace{
			Quantity: Quantity{Name: term.legend, Color: term.color},
			X:        run.Steps,
			Y:        terms[i],
		}
	}

	return run, nil
}
