package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridwalk/internal/engine"
	"github.com/vovakirdan/gridwalk/internal/protocol"
	"github.com/vovakirdan/gridwalk/internal/random"
	"github.com/vovakirdan/gridwalk/internal/telemetry"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the engine over stdin/stdout",
	Long: `Run the engine until it reaches a terminal state.

The process exits with status 0 after emitting the WON or LOSE frame, and
with status 1 if the input stream closes mid-run or a frame is truncated.
The walk variant never terminates on its own.

Examples:
  host | gridwalk run > frames.bin
  gridwalk run --variant walk --log-level debug --log-file gridwalk.log`,
	Args: cobra.NoArgs,
	RunE: runEngine,
}

func runEngine(cmd *cobra.Command, _ []string) error {
	cfg, variant, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	if !flagAllowTTY && term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("refusing to write binary frames to a terminal; redirect stdout or pass --allow-tty")
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	logger = logger.With("run_id", uuid.NewString())
	logger.Info("starting",
		"variant", variant.ID,
		"rng", cfg.Random.Provider,
		"config", cfg.Path,
	)

	ctx := context.Background()

	tracer := telemetry.NoopTracer()
	if cfg.Telemetry.Enabled {
		shutdown, tErr := telemetry.Setup(ctx)
		if tErr != nil {
			// Continue without telemetry - the engine still works
			logger.Warn("telemetry setup failed", "error", tErr)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Warn("telemetry shutdown failed", "error", err)
				}
			}()
			tracer = telemetry.Tracer("engine")
		}
	}

	src, err := random.New(random.Provider(cfg.Random.Provider), cfg.Random.Seed)
	if err != nil {
		return err
	}
	if random.Provider(cfg.Random.Provider) == random.ProviderSeeded {
		logger.Warn("seeded randomness makes actor motion predictable", "seed", cfg.Random.Seed)
	}

	e := engine.New(engine.Options{
		Features: variant.Features,
		Source:   src,
		Logger:   logger,
		Tracer:   tracer,
	})
	res, err := e.Run(ctx, protocol.NewReader(os.Stdin), protocol.NewWriter(os.Stdout))
	if err != nil {
		logger.Error("run aborted", "ticks", res.Ticks, "error", err)
		return fmt.Errorf("run aborted after %d ticks: %w", res.Ticks, err)
	}
	return nil
}
