package config

import (
	_ "embed"
)

//go:embed defaults/gridwalk.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Variant: "chase",
		Random: RandomConfig{
			Provider: "crypto",
		},
		Log: LogConfig{
			Level:  "info",
			Format: FormatText,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
