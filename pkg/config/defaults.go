package config

import (
	"fmt"
	"os"
	"strconv"
)

// Default values for configuration.
const (
	DefaultRenderer     = "gonum"
	DefaultWidth        = 640
	DefaultHeight       = 480
	DefaultDPI          = 100
	DefaultSuffix       = "_plot.png"
	DefaultTwiddleInput = "/tmp/pid_wrapper_debug_twiddle.txt"
)

// Environment variable names.
const (
	EnvRenderer     = "PIDPLOT_RENDERER"
	EnvSuffix       = "PIDPLOT_OUTPUT_SUFFIX"
	EnvTwiddleInput = "PIDPLOT_TWIDDLE_INPUT"
	EnvDPI          = "PIDPLOT_DPI"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Renderer: DefaultRenderer,
		Image: ImageConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			DPI:    DefaultDPI,
		},
		Output: OutputConfig{
			Suffix: DefaultSuffix,
		},
		Twiddle: TwiddleConfig{
			Input: DefaultTwiddleInput,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() error {
	if v := os.Getenv(EnvRenderer); v != "" {
		c.Renderer = v
	}
	if v := os.Getenv(EnvSuffix); v != "" {
		c.Output.Suffix = v
	}
	if v := os.Getenv(EnvTwiddleInput); v != "" {
		c.Twiddle.Input = v
	}
	if v := os.Getenv(EnvDPI); v != "" {
		dpi, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvDPI, v, err)
		}
		c.Image.DPI = dpi
	}
	return nil
}
