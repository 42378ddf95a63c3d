package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ccollicutt/pidplot/pkg/render"
)

// Load builds the configuration: defaults, then the YAML file at path (skipped
// when path is empty), then environment overrides. The result is validated.
func Load(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnvironmentOverrides(); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if !slices.Contains(render.Backends(), cfg.Renderer) {
		return fmt.Errorf("renderer: invalid value %q (must be %s)",
			cfg.Renderer, strings.Join(render.Backends(), " or "))
	}

	if cfg.Image.Width <= 0 || cfg.Image.Height <= 0 {
		return fmt.Errorf("image: width and height must be positive, got %dx%d",
			cfg.Image.Width, cfg.Image.Height)
	}
	if cfg.Image.DPI <= 0 {
		return fmt.Errorf("image: dpi must be positive, got %d", cfg.Image.DPI)
	}

	if cfg.Output.Suffix == "" {
		return errors.New("output.suffix: must not be empty")
	}
	if !strings.HasSuffix(strings.ToLower(cfg.Output.Suffix), ".png") {
		return fmt.Errorf("output.suffix: %q must end in .png", cfg.Output.Suffix)
	}
	if strings.ContainsRune(cfg.Output.Suffix, os.PathSeparator) {
		return fmt.Errorf("output.suffix: %q must not contain a path separator", cfg.Output.Suffix)
	}

	if cfg.Twiddle.Input == "" {
		return errors.New("twiddle.input: must not be empty")
	}

	return nil
}

// RenderOptions returns the image settings in the form the renderers take.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		Width:  c.Image.Width,
		Height: c.Image.Height,
		DPI:    c.Image.DPI,
	}
}
