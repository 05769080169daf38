// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Loading layers a YAML file and SALAT_* environment variables on top.
// - External errors are wrapped with this package's sentinel kinds.
package config

import (
	"fmt"
	"strings"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8001".
	Addr string `koanf:"addr"`

	// MeridiemAM and MeridiemPM are the markers appended to 12-hour times.
	MeridiemAM string `koanf:"meridiem_am"`
	MeridiemPM string `koanf:"meridiem_pm"`

	// PlaceTolerance is the per-axis distance in degrees used to match a
	// coordinate to a known city.
	PlaceTolerance float64 `koanf:"place_tolerance"`

	// CORSAllowedOrigins lists the origins allowed by the CORS middleware.
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`

	// MaxCalendarDays caps the days query parameter of the calendar endpoint.
	MaxCalendarDays int `koanf:"max_calendar_days"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		LogFormat:          "text",
		Addr:               ":8001",
		MeridiemAM:         "ب.ن",
		MeridiemPM:         "د.ن",
		PlaceTolerance:     0.1,
		CORSAllowedOrigins: []string{"*"},
		MaxCalendarDays:    31,
	}
}

// Validate reports the first invalid field as ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.PlaceTolerance <= 0:
		return fmt.Errorf("%w: place_tolerance must be positive, got %g", ErrInvalidConfig, c.PlaceTolerance)
	case c.MeridiemAM == "" || c.MeridiemPM == "":
		return fmt.Errorf("%w: meridiem markers must not be empty", ErrInvalidConfig)
	case c.MeridiemAM == c.MeridiemPM:
		return fmt.Errorf("%w: meridiem markers must differ", ErrInvalidConfig)
	case c.MaxCalendarDays < 1:
		return fmt.Errorf("%w: max_calendar_days must be at least 1, got %d", ErrInvalidConfig, c.MaxCalendarDays)
	}
	return nil
}
