// Package detector recognizes which controller program wrote a debug log by
// looking at its header columns.
package detector

import (
	"sort"
)

// DetectionResult holds the result of matching a header against known log kinds.
type DetectionResult struct {
	Matches []KindMatch // Kinds sharing at least one column, best first
	Columns int         // Number of header columns examined
}

// KindMatch scores one log kind against a header.
type KindMatch struct {
	Kind       *LogKind
	Confidence float64  // Fraction of the kind's columns present, 0.0 to 1.0
	Missing    []string // Required columns absent from the header
}

// Plottable reports whether every column the kind's plotter reads is present.
func (m KindMatch) Plottable() bool {
	return len(m.Missing) == 0
}

// Best returns the highest-confidence match, or false if nothing matched.
func (r *DetectionResult) Best() (KindMatch, bool) {
	if len(r.Matches) == 0 {
		return KindMatch{}, false
	}
	return r.Matches[0], true
}

// Detector matches headers against a set of log kinds.
type Detector struct {
	kinds []*LogKind
}

// Option configures the Detector.
type Option func(*Detector)

// WithKinds replaces the known log kinds.
func WithKinds(kinds ...*LogKind) Option {
	return func(d *Detector) {
		d.kinds = kinds
	}
}

// New creates a new Detector with the default log kinds.
func New(opts ...Option) *Detector {
	d := &Detector{kinds: DefaultKinds()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect scores every known kind against the header column names.
func (d *Detector) Detect(columns []string) *DetectionResult {
	result := &DetectionResult{Columns: len(columns)}

	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}

	for _, kind := range d.kinds {
		found := 0
		for _, c := range kind.Columns {
			if present[c] {
				found++
			}
		}
		if found == 0 {
			continue
		}

		var missing []string
		for _, c := range kind.Required {
			if !present[c] {
				missing = append(missing, c)
			}
		}

		result.Matches = append(result.Matches, KindMatch{
			Kind:       kind,
			Confidence: float64(found) / float64(len(kind.Columns)),
			Missing:    missing,
		})
	}

	// Plottable kinds first, then by confidence; ties keep declaration order.
	sort.SliceStable(result.Matches, func(i, j int) bool {
		a, b := result.Matches[i], result.Matches[j]
		if a.Plottable() != b.Plottable() {
			return a.Plottable()
		}
		return a.Confidence > b.Confidence
	})

	return result
}
