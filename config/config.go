// Package config loads the TOML configuration of the vision CLI.
//
// A minimal file:
//
//	[pipeline]
//	binarize_threshold = 100
//	edge_threshold = 15
//	pyramid_depth = 3
//
//	[output]
//	dir = "out"
//	format = "jpg"
//
//	[logging]
//	level = "info"
//	logfile = "vision.log"
//	max_log_size = 10
//	max_log_age = 7
package config

import (
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-vision/images"
)

// Config is the complete configuration.
type Config struct {
	Pipeline PipelineConfig `toml:"pipeline"`
	Output   OutputConfig   `toml:"output"`
	Logging  LogConfig      `toml:"logging"`
	Display  DisplayConfig  `toml:"display"`
}

// PipelineConfig holds the analysis parameters. The thresholds have no
// default: nil means "not configured" and the caller must supply a value.
type PipelineConfig struct {
	BinarizeThreshold *int `toml:"binarize_threshold"`
	EdgeThreshold     *int `toml:"edge_threshold"`
	PyramidDepth      int  `toml:"pyramid_depth"`
	Parallel          bool `toml:"parallel"`
}

// OutputConfig controls what is exported and how.
type OutputConfig struct {
	Dir         string `toml:"dir"`
	Format      string `toml:"format"`
	Quality     int    `toml:"quality"`
	Histograms  bool   `toml:"histograms"`
	ChartWidth  int    `toml:"chart_width"`
	ChartHeight int    `toml:"chart_height"`
}

// DisplayConfig controls the on-screen viewer.
type DisplayConfig struct {
	Enabled bool `toml:"enabled"`
	// WaitMillis is how long each window waits for a key; 0 waits forever.
	WaitMillis int `toml:"wait_ms"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			PyramidDepth: 3,
		},
		Output: OutputConfig{
			Dir:         ".",
			Format:      "jpg",
			Quality:     95,
			Histograms:  true,
			ChartWidth:  640,
			ChartHeight: 400,
		},
		Logging: LogConfig{
			Level:   "info",
			MaxSize: 10,
			MaxAge:  7,
		},
	}
}

// Load reads a TOML file over the defaults and validates the result. Keys
// that do not map to a field are rejected so typos do not go unnoticed.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, errors.Errorf("unknown keys in config %s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Validate checks value ranges. Thresholds are not range checked: any
// integer is a valid threshold.
func (c *Config) Validate() error {
	if c.Pipeline.PyramidDepth < 0 {
		return errors.Errorf("pyramid_depth must not be negative, got %d", c.Pipeline.PyramidDepth)
	}
	// Each level halves the edge; the last level must keep at least one pixel.
	if images.WorkingSize>>uint(c.Pipeline.PyramidDepth) < 1 {
		return errors.Errorf("pyramid_depth %d is too deep for a %dpx raster", c.Pipeline.PyramidDepth, images.WorkingSize)
	}
	if _, err := images.ParseFormat(c.Output.Format); err != nil {
		return err
	}
	if c.Output.Quality < 1 || c.Output.Quality > 100 {
		return errors.Errorf("quality must be within 1..100, got %d", c.Output.Quality)
	}
	if c.Output.ChartWidth < 0 || c.Output.ChartHeight < 0 {
		return errors.Errorf("chart size must not be negative, got %dx%d", c.Output.ChartWidth, c.Output.ChartHeight)
	}
	if c.Display.WaitMillis < 0 {
		return errors.Errorf("wait_ms must not be negative, got %d", c.Display.WaitMillis)
	}
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

// OutputFormat returns the parsed output format.
func (c *Config) OutputFormat() images.ImageFormat {
	f, _ := images.ParseFormat(c.Output.Format)
	return f
}
