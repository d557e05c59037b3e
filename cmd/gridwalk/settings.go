package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridwalk/internal/config"
	"github.com/vovakirdan/gridwalk/internal/registry"
)

// resolveConfig builds the effective configuration.
// Precedence: flags -> GRIDWALK_* env (including .env) -> config file -> defaults
func resolveConfig(cmd *cobra.Command) (config.Config, registry.Variant, error) {
	if err := config.LoadDotEnv(flagEnvFile); err != nil {
		return config.Config{}, registry.Variant{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, registry.Variant{}, err
	}
	if err := config.ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, registry.Variant{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("variant") {
		cfg.Variant = flagVariant
	}
	if flags.Changed("rng") {
		cfg.Random.Provider = flagRNG
	}
	if flags.Changed("seed") {
		cfg.Random.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = flagLogFormat
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Changed("telemetry") {
		cfg.Telemetry.Enabled = flagTelemetry
	}

	if err := cfg.Validate(); err != nil {
		return cfg, registry.Variant{}, err
	}

	variant, err := registry.Get(cfg.Variant)
	if err != nil {
		return cfg, registry.Variant{}, fmt.Errorf("%w (run 'gridwalk variants' to see available variants)", err)
	}
	return cfg, variant, nil
}
