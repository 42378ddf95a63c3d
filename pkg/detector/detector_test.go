package detector

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDetector_FullPIDHeader(t *testing.T) {
	header := []string{"CTE", "CTE_PREV", "CTE_SUM", "KP", "KI", "KD", "P_ERROR", "I_ERROR", "D_ERROR"}

	result := New().Detect(header)
	best, ok := result.Best()
	if !ok {
		t.Fatal("Expected to detect a log kind")
	}
	if best.Kind.Name != "pid" {
		t.Errorf("Expected pid, got %s", best.Kind.Name)
	}
	if best.Confidence != 1.0 {
		t.Errorf("Expected 100%% confidence, got %.1f%%", best.Confidence*100)
	}
	if !best.Plottable() {
		t.Errorf("Expected plottable, missing %v", best.Missing)
	}
	if result.Columns != len(header) {
		t.Errorf("Columns = %d, want %d", result.Columns, len(header))
	}
}

func TestDetector_TrimmedPIDHeaderStillPlottable(t *testing.T) {
	header := []string{"P_ERROR", "I_ERROR", "D_ERROR", "CTE", "KP", "KI", "KD"}

	best, ok := New().Detect(header).Best()
	if !ok || best.Kind.Name != "pid" {
		t.Fatalf("Best() = %+v, %v; want pid", best, ok)
	}
	if !best.Plottable() {
		t.Errorf("Expected plottable, missing %v", best.Missing)
	}
	if best.Confidence >= 1.0 {
		t.Errorf("Confidence = %v, want below 1 without CTE_PREV and CTE_SUM", best.Confidence)
	}
}

func TestDetector_TwiddleHeader(t *testing.T) {
	header := []string{"GLOBAL_STEP", "CYCLE_STEP", "KP", "KI", "KD",
		"PARAM_BEING_UPDATED", "BEST_ERROR_IN_CYCLE", "TOTAL_ERROR_IN_CYCLE"}

	result := New().Detect(header)
	best, _ := result.Best()
	if best.Kind.Name != "twiddle" {
		t.Errorf("Expected twiddle, got %s", best.Kind.Name)
	}

	// The gains are shared, so the pid kind matches partially and ranks below.
	if len(result.Matches) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(result.Matches))
	}
	pid := result.Matches[1]
	if pid.Plottable() {
		t.Error("pid should not be plottable from a twiddle header")
	}
	want := []string{"P_ERROR", "I_ERROR", "D_ERROR", "CTE"}
	if diff := cmp.Diff(want, pid.Missing); diff != "" {
		t.Errorf("Missing mismatch (-want +got):\n%s", diff)
	}
}

func TestDetector_PrefersPlottableKind(t *testing.T) {
	// Some pid columns, but only twiddle has everything it needs.
	header := []string{"GLOBAL_STEP", "KP", "KI", "KD", "BEST_ERROR_IN_CYCLE", "CTE"}

	best, _ := New().Detect(header).Best()
	if best.Kind.Name != "twiddle" {
		t.Errorf("Expected twiddle, got %s", best.Kind.Name)
	}
}

func TestDetector_UnknownHeader(t *testing.T) {
	result := New().Detect([]string{"time", "speed", "steering"})
	if _, ok := result.Best(); ok {
		t.Errorf("Expected no match, got %+v", result.Matches)
	}
}

func TestDetector_WithKinds(t *testing.T) {
	custom := &LogKind{
		Name:     "throttle",
		Columns:  []string{"SPEED", "THROTTLE"},
		Required: []string{"THROTTLE"},
	}

	d := New(WithKinds(custom))
	best, ok := d.Detect([]string{"SPEED"}).Best()
	if !ok || best.Kind != custom {
		t.Fatalf("Best() = %+v, %v; want custom kind", best, ok)
	}
	if best.Confidence != 0.5 {
		t.Errorf("Confidence = %v, want 0.5", best.Confidence)
	}
	if diff := cmp.Diff([]string{"THROTTLE"}, best.Missing); diff != "" {
		t.Errorf("Missing mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultKinds_RequiredAreKnownColumns(t *testing.T) {
	for _, kind := range DefaultKinds() {
		known := make(map[string]bool)
		for _, c := range kind.Columns {
			known[c] = true
		}
		for _, c := range kind.Required {
			if !known[c] {
				t.Errorf("%s: required column %s not in Columns", kind.Name, c)
			}
		}
	}
}
