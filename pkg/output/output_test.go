package output

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ccollicutt/pidplot/pkg/series"
)

func twiddleReport() *Report {
	r := NewReport("twiddle", "/tmp/pid_wrapper_debug_twiddle.txt", "gonum")
	r.AddImage("KP", "/tmp/pid_wrapper_debug_twiddle_KP_plot.png")
	r.AddImage("BEST_ERROR_IN_CYCLE", "/tmp/pid_wrapper_debug_twiddle_BEST_ERROR_IN_CYCLE_plot.png")
	r.BestError = &series.Range{Min: 3, Max: 5.25}
	r.Duration = 42 * time.Millisecond
	return r
}

func TestNewFormatter(t *testing.T) {
	for _, name := range []string{"text", "json"} {
		f, err := NewFormatter(name, FormatOptions{})
		if err != nil {
			t.Fatalf("NewFormatter(%q) error = %v", name, err)
		}
		if f.Name() != name {
			t.Errorf("Name() = %q, want %q", f.Name(), name)
		}
	}

	if _, err := NewFormatter("yaml", FormatOptions{}); err == nil {
		t.Error("NewFormatter() expected error for unknown format")
	}
}

func TestTextFormatter_PIDReport(t *testing.T) {
	r := NewReport("pid", "/tmp/pid_debug_1.txt", "gonum")
	r.AddImage("", "/tmp/pid_debug_1_plot.png")

	var buf bytes.Buffer
	if err := NewTextFormatter(FormatOptions{}).Format(context.Background(), r, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if diff := cmp.Diff("Saved plot at /tmp/pid_debug_1_plot.png\n", buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestTextFormatter_TwiddleReport(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTextFormatter(FormatOptions{}).Format(context.Background(), twiddleReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "Saved KP plot at /tmp/pid_wrapper_debug_twiddle_KP_plot.png\n" +
		"Saved BEST_ERROR_IN_CYCLE plot at /tmp/pid_wrapper_debug_twiddle_BEST_ERROR_IN_CYCLE_plot.png\n" +
		"Min best error: 3.0\n" +
		"Max best error: 5.25\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestTextFormatter_Quiet(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTextFormatter(FormatOptions{Quiet: true}).Format(context.Background(), twiddleReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "/tmp/pid_wrapper_debug_twiddle_KP_plot.png\n" +
		"/tmp/pid_wrapper_debug_twiddle_BEST_ERROR_IN_CYCLE_plot.png\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatValue(t *testing.T) {
	tests := map[float64]string{
		3:           "3.0",
		5.25:        "5.25",
		0.0001:      "0.0001",
		1e21:        "1e+21",
		math.Inf(1): "+Inf",
	}
	for in, want := range tests {
		if got := formatValue(in); got != want {
			t.Errorf("formatValue(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONFormatter(FormatOptions{}).Format(context.Background(), twiddleReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var parsed Report
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if diff := cmp.Diff(twiddleReport(), &parsed); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONFormatter_OmitsBestErrorForPID(t *testing.T) {
	r := NewReport("pid", "run.txt", "gochart")
	r.AddImage("", "run_plot.png")

	var buf bytes.Buffer
	if err := NewJSONFormatter(FormatOptions{}).Format(context.Background(), r, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if bytes.Contains(buf.Bytes(), []byte("best_error")) {
		t.Errorf("PID report should omit best_error:\n%s", buf.String())
	}
	if bytes.Contains(buf.Bytes(), []byte("quantity")) {
		t.Errorf("combined image should omit quantity:\n%s", buf.String())
	}
}

func TestJSONFormatter_Quiet(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONFormatter(FormatOptions{Quiet: true}).Format(context.Background(), twiddleReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var images []Image
	if err := json.Unmarshal(buf.Bytes(), &images); err != nil {
		t.Fatalf("Output is not a JSON image list: %v", err)
	}
	if len(images) != 2 {
		t.Errorf("got %d images, want 2", len(images))
	}
}
