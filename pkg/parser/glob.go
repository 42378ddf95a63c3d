package parser

import (
	"fmt"
	"path/filepath"
	"slices"
)

// ExpandGlobs expands debug log paths and glob patterns (e.g. /tmp/pid_debug_*.txt)
// into a sorted, deduplicated list. A pattern matching nothing is kept verbatim so
// that Load reports it as a FileAccessError with the name the user typed.
func ExpandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var paths []string

	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		paths = append(paths, p)
	}

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid log path pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			add(pattern)
			continue
		}
		for _, m := range matches {
			add(m)
		}
	}

	slices.Sort(paths)
	return paths, nil
}
