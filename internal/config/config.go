// Package config loads chronon's runtime settings from viper.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// ErrInvalid is wrapped by every validation failure from Load.
var ErrInvalid = errors.New("invalid config")

// Config holds all runtime configuration for an editing session.
// Values are populated from .chronon.yaml, CHRONON_* env vars, and CLI flags.
type Config struct {
	Scene         string  `mapstructure:"scene"`
	StartTime     float64 `mapstructure:"start_time"`
	EndTime       float64 `mapstructure:"end_time"`
	TrackHeight   float64 `mapstructure:"track_height"`
	GutterWidth   int     `mapstructure:"gutter_width"`
	DoubleClickMS int     `mapstructure:"double_click_ms"`
	JournalPath   string  `mapstructure:"journal_path"`
	Watch         bool    `mapstructure:"watch"`
	Verbose       bool    `mapstructure:"verbose"`
}

// DoubleClick returns the double-click threshold as a duration.
func (c Config) DoubleClick() time.Duration {
	return time.Duration(c.DoubleClickMS) * time.Millisecond
}

// HasRange reports whether the config overrides the scene's time range.
func (c Config) HasRange() bool {
	return c.StartTime != 0 || c.EndTime != 0
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags, then validates it.
func Load() (Config, error) {
	viper.SetDefault("scene", "chronon.toml")
	viper.SetDefault("start_time", 0.0)
	viper.SetDefault("end_time", 0.0)
	viper.SetDefault("track_height", 2.0)
	viper.SetDefault("gutter_width", 12)
	viper.SetDefault("double_click_ms", 400)
	viper.SetDefault("journal_path", "")
	viper.SetDefault("watch", true)
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every out-of-range setting.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}
	if c.TrackHeight <= 0 {
		bad("track_height must be positive, got %v", c.TrackHeight)
	}
	if c.GutterWidth < 4 {
		bad("gutter_width must be at least 4, got %d", c.GutterWidth)
	}
	if c.DoubleClickMS <= 0 {
		bad("double_click_ms must be positive, got %d", c.DoubleClickMS)
	}
	if c.HasRange() && !(c.EndTime > c.StartTime) {
		bad("end_time %v must be after start_time %v", c.EndTime, c.StartTime)
	}
	return errors.Join(errs...)
}
