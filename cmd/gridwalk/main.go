// gridwalk runs the grid chase engine over standard input and output.
//
// Usage:
//
//	gridwalk [run]           - Run the engine (default command)
//	gridwalk variants        - List available variants
//	gridwalk config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Path to a config YAML
//	--variant <id>      - Variant to run (chase, walk)
//	--rng <provider>    - Randomness provider (crypto, seeded)
//	--seed <value>      - Seed for the seeded provider
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file instead of stderr
//
// Standard output carries only protocol frames; diagnostics go to stderr.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	// Import the engine to register its variants
	_ "github.com/vovakirdan/gridwalk/internal/engine"
)

var (
	// Global flags
	flagConfig    string
	flagEnvFile   string
	flagVariant   string
	flagRNG       string
	flagSeed      int64
	flagLogLevel  string
	flagLogFormat string
	flagLogFile   string
	flagTelemetry bool
	flagAllowTTY  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridwalk",
	Short: "Grid chase engine speaking a binary frame protocol on stdin/stdout",
	Long: `gridwalk is a tick-driven 64x64 grid simulation driven by a host process.

Each tick the host writes an input frame with the keys pressed:

  [4-byte big-endian length n][n key bytes: 1=up 2=down 3=left 4=right]

and gridwalk answers with one 4096-byte raster of cell intensities. In the
chase variant the run ends after a frame starting with "WON" or "LOSE".

Examples:
  gridwalk < keys.bin > frames.bin
  gridwalk run --variant walk
  gridwalk variants
  gridwalk config --rng seeded --seed 42`,
	Args:          cobra.NoArgs,
	RunE:          runEngine,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	addGlobalFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(configCmd)
}

// addGlobalFlags binds the flags shared by every command.
func addGlobalFlags(flags *pflag.FlagSet) {
	flags.StringVar(&flagConfig, "config", "", "Path to config YAML")
	flags.StringVar(&flagEnvFile, "env-file", ".env", "Path to a .env file with GRIDWALK_* overrides")
	flags.StringVar(&flagVariant, "variant", "", "Variant to run (see 'gridwalk variants')")
	flags.StringVar(&flagRNG, "rng", "", "Randomness provider: crypto, seeded")
	flags.Int64Var(&flagSeed, "seed", 0, "Seed for the seeded provider")
	flags.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&flagLogFormat, "log-format", "", "Log format: text, json, logfmt")
	flags.StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")
	flags.BoolVar(&flagAllowTTY, "allow-tty", false, "Write raw frames even when stdout is a terminal")
	flags.BoolVar(&flagTelemetry, "telemetry", false, "Export traces via OTLP (uses OTEL_* env vars)")
}
