// Package render draws line figures to PNG files with a pluggable plotting backend.
package render

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Backend names accepted by New.
const (
	BackendGonum   = "gonum"
	BackendGoChart = "gochart"
)

// Backends lists the available backend names.
func Backends() []string {
	return []string{BackendGonum, BackendGoChart}
}

// New creates the renderer for the named backend.
func New(backend string, opts Options) (Renderer, error) {
	switch backend {
	case BackendGonum:
		return NewGonumRenderer(opts), nil
	case BackendGoChart:
		return NewGoChartRenderer(opts), nil
	default:
		return nil, fmt.Errorf("unknown renderer %q (use %s)", backend, strings.Join(Backends(), " or "))
	}
}

// OutputPath derives an image path from the input log path: the extension is
// replaced by suffix, with "_<quantity>" inserted first when quantity is set.
//
//	OutputPath("/tmp/pid_debug_1.txt", "", "_plot.png")    // /tmp/pid_debug_1_plot.png
//	OutputPath("/tmp/twiddle.txt", "KP", "_plot.png")      // /tmp/twiddle_KP_plot.png
func OutputPath(input, quantity, suffix string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	if quantity != "" {
		base += "_" + quantity
	}
	return base + suffix
}

// WriteFile renders fig into path, replacing any existing file. A failed render
// does not leave a partial image behind.
func WriteFile(ctx context.Context, r Renderer, fig *Figure, path string) (err error) {
	f, err := os.Create(path) // #nosec G304 -- output path derives from the user's input path
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
		if err != nil {
			err = errors.Join(err, removeIfExists(path))
		}
	}()

	bw := bufio.NewWriter(f)
	if err := r.Render(ctx, fig, bw); err != nil {
		return fmt.Errorf("rendering %s with %s: %w", path, r.Name(), err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
