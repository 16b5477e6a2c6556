// Package config provides the viewer configuration: a TOML file
// loaded fail-open, so a missing or broken config always degrades to
// working defaults rather than stopping startup.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the user-tunable settings.
type Config struct {
	// FontSize is the monospace font size passed to the metrics
	// collaborator. Fixed for the lifetime of the session.
	FontSize float64 `toml:"font_size"`

	// ArrowScrollStep is the pixel nudge per unmodified arrow key.
	ArrowScrollStep float64 `toml:"arrow_scroll_step"`

	// WheelScrollLines is the line delta per wheel tick for backends
	// that synthesize line deltas.
	WheelScrollLines int `toml:"wheel_scroll_lines"`

	// Watch reloads the buffer when the source file changes on disk.
	Watch bool `toml:"watch"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `toml:"log_level"`

	Theme ThemeConfig `toml:"theme"`
}

// ThemeConfig holds hex color overrides. Empty slots keep defaults.
type ThemeConfig struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	Cursor     string `toml:"cursor"`
	Label      string `toml:"label"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		FontSize:         14,
		ArrowScrollStep:  16,
		WheelScrollLines: 3,
		Watch:            true,
		LogLevel:         "info",
	}
}

// Load reads a TOML config from path. A missing file is not an error:
// it returns the defaults. A parse error also returns the defaults,
// plus the error so the caller can log a warning; startup never fails
// on configuration.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize clamps nonsensical values back to defaults.
func (c *Config) normalize() {
	def := Default()
	if c.FontSize <= 0 {
		c.FontSize = def.FontSize
	}
	if c.ArrowScrollStep <= 0 {
		c.ArrowScrollStep = def.ArrowScrollStep
	}
	if c.WheelScrollLines < 1 {
		c.WheelScrollLines = def.WheelScrollLines
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		c.LogLevel = def.LogLevel
	}
}
