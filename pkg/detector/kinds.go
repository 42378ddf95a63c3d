package detector

import "github.com/ccollicutt/pidplot/pkg/series"

// LogKind describes a debug log layout written by the controller programs.
type LogKind struct {
	Name        string   // Short name, also the pidplot subcommand that plots it
	Description string   // Human-readable description
	Columns     []string // Every column the writer emits, in header order
	Required    []string // Columns the plotter reads
}

// DefaultKinds returns the known debug log layouts.
func DefaultKinds() []*LogKind {
	return []*LogKind{
		{
			Name:        "pid",
			Description: "PID controller debug log",
			Columns: []string{
				series.ColCTE, "CTE_PREV", "CTE_SUM",
				series.ColKP, series.ColKI, series.ColKD,
				series.ColPError, series.ColIError, series.ColDError,
			},
			Required: []string{
				series.ColPError, series.ColIError, series.ColDError, series.ColCTE,
				series.ColKP, series.ColKI, series.ColKD,
			},
		},
		{
			Name:        "twiddle",
			Description: "Twiddle tuner debug log",
			Columns: []string{
				series.ColGlobalStep, "CYCLE_STEP",
				series.ColKP, series.ColKI, series.ColKD,
				"PARAM_BEING_UPDATED", series.ColBestErrorInCycle, "TOTAL_ERROR_IN_CYCLE",
			},
			Required: []string{
				series.ColGlobalStep,
				series.ColKP, series.ColKI, series.ColKD,
				series.ColBestErrorInCycle,
			},
		},
	}
}
