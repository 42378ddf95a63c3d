// Package config provides configuration loading and validation for pidplot.
package config

// Config is the root configuration structure loaded from YAML.
// Every field has a default, so a config file is optional.
type Config struct {
	// Renderer is the plotting backend (gonum or gochart).
	Renderer string `yaml:"renderer"`

	Image   ImageConfig   `yaml:"image"`
	Output  OutputConfig  `yaml:"output"`
	Twiddle TwiddleConfig `yaml:"twiddle"`
}

// ImageConfig sets the size of every rendered PNG.
type ImageConfig struct {
	// Width and Height are in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	DPI    int `yaml:"dpi"`
}

// OutputConfig controls how image paths are derived from the input log path.
type OutputConfig struct {
	// Suffix replaces the input's extension, e.g. run.txt -> run_plot.png.
	Suffix string `yaml:"suffix"`
}

// TwiddleConfig configures the Twiddle plots.
type TwiddleConfig struct {
	// Input is the Twiddle debug log read when no --input_filename is given.
	Input string `yaml:"input"`
}
