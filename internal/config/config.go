// Package config provides YAML-based runtime configuration for the engine,
// with environment overrides.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridwalk/internal/random"
)

// Config contains all runtime configuration.
type Config struct {
	Variant   string          `yaml:"variant"`
	Random    RandomConfig    `yaml:"random"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Path records where the configuration was read from ("embedded" for the default).
	Path string `yaml:"-"`
}

// RandomConfig selects the randomness provider for actor motion.
type RandomConfig struct {
	Provider string `yaml:"provider"` // "crypto" or "seeded"
	Seed     int64  `yaml:"seed"`     // only used by "seeded"
}

// LogConfig defines diagnostics output.
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "text", "json" or "logfmt"
	File   string `yaml:"file"`   // empty means stderr
}

// TelemetryConfig toggles OpenTelemetry tracing.
type TelemetryConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Log formats.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatLogfmt = "logfmt"
)

// Validate checks that every field holds a known value.
// The variant is checked by the caller against the registry.
func (c Config) Validate() error {
	if c.Variant == "" {
		return fmt.Errorf("config: variant must be set")
	}
	if !random.Provider(c.Random.Provider).Valid() {
		return fmt.Errorf("config: unknown random provider %q (want one of %v)", c.Random.Provider, random.Providers)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: invalid log level %q: %w", c.Log.Level, err)
	}
	switch c.Log.Format {
	case FormatText, FormatJSON, FormatLogfmt:
	default:
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	return nil
}

// Formatter returns the charmbracelet/log formatter for the configured format.
func (c LogConfig) Formatter() log.Formatter {
	switch c.Format {
	case FormatJSON:
		return log.JSONFormatter
	case FormatLogfmt:
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
