// Package output reports what a plotting run produced.
package output

import (
	"time"

	"github.com/ccollicutt/pidplot/pkg/series"
)

// Report describes the images written by one run.
type Report struct {
	// Command is the pipeline that ran (pid or twiddle).
	Command string `json:"command"`

	// Input is the debug log that was plotted.
	Input string `json:"input"`

	// Renderer is the plotting backend used.
	Renderer string `json:"renderer"`

	// Images lists the written files in the order they were written.
	Images []Image `json:"images"`

	// BestError is the range of retained best-error values (Twiddle only).
	BestError *series.Range `json:"best_error,omitempty"`

	// Duration is how long the run took.
	Duration time.Duration `json:"duration_ns"`
}

// Image is one written plot.
type Image struct {
	// Quantity is the plotted column for per-quantity images, empty for the
	// combined PID plot.
	Quantity string `json:"quantity,omitempty"`

	// Path is where the PNG was written.
	Path string `json:"path"`
}

// NewReport creates an empty report for a run.
func NewReport(command, input, renderer string) *Report {
	return &Report{
		Command:  command,
		Input:    input,
		Renderer: renderer,
		Images:   []Image{},
	}
}

// AddImage records a written image.
func (r *Report) AddImage(quantity, path string) {
	r.Images = append(r.Images, Image{Quantity: quantity, Path: path})
}
