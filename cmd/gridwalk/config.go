package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridwalk/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Resolve configuration from defaults, the config file, GRIDWALK_*
environment variables and flags, validate it, and print it as YAML.

Examples:
  gridwalk config
  GRIDWALK_RNG=seeded gridwalk config --seed 7`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, _, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "# source: %s\n", cfg.Path)
	_, err = os.Stdout.Write(data)
	return err
}
