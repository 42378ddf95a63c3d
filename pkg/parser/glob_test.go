package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("CTE\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestExpandGlobs_LiteralFile(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "pid_debug_1.txt")
	file := filepath.Join(dir, "pid_debug_1.txt")

	got, err := ExpandGlobs([]string{file})
	if err != nil {
		t.Fatalf("ExpandGlobs() error = %v", err)
	}
	if diff := cmp.Diff([]string{file}, got); diff != "" {
		t.Errorf("ExpandGlobs() mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandGlobs_GlobSortedAndDeduplicated(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "pid_debug_c.txt", "pid_debug_a.txt", "pid_debug_b.txt", "notes.md")

	pattern := filepath.Join(dir, "pid_debug_*.txt")
	got, err := ExpandGlobs([]string{pattern, filepath.Join(dir, "pid_debug_a.txt")})
	if err != nil {
		t.Fatalf("ExpandGlobs() error = %v", err)
	}

	want := []string{
		filepath.Join(dir, "pid_debug_a.txt"),
		filepath.Join(dir, "pid_debug_b.txt"),
		filepath.Join(dir, "pid_debug_c.txt"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExpandGlobs() mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandGlobs_NoMatchKeptVerbatim(t *testing.T) {
	pattern := filepath.Join(t.TempDir(), "*.nothing")

	got, err := ExpandGlobs([]string{pattern})
	if err != nil {
		t.Fatalf("ExpandGlobs() error = %v", err)
	}
	if len(got) != 1 || got[0] != pattern {
		t.Errorf("ExpandGlobs() = %v, want [%s]", got, pattern)
	}
}

func TestExpandGlobs_InvalidPattern(t *testing.T) {
	if _, err := ExpandGlobs([]string{"[invalid"}); err == nil {
		t.Error("ExpandGlobs() expected error for invalid pattern")
	}
}

func TestExpandGlobs_Empty(t *testing.T) {
	got, err := ExpandGlobs(nil)
	if err != nil {
		t.Fatalf("ExpandGlobs() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ExpandGlobs(nil) = %v, want empty", got)
	}
}
