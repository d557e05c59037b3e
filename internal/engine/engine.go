// Package engine runs the tick loop: it decodes one input frame, advances the
// world, and emits one raster, until the world reaches a terminal state.
package engine

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/gridwalk/internal/core"
	"github.com/vovakirdan/gridwalk/internal/protocol"
	"github.com/vovakirdan/gridwalk/internal/random"
	"github.com/vovakirdan/gridwalk/internal/telemetry"
	"github.com/vovakirdan/gridwalk/internal/world"
)

// State is the engine's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Options configures a new Engine.
type Options struct {
	Features core.Features
	Source   random.Source // required
	Logger   *log.Logger   // nil discards logs
	Tracer   trace.Tracer  // nil disables tracing

	// Layout fixes the starting positions instead of randomizing them.
	Layout *world.Layout
}

// Result is returned by Run once the engine terminates.
type Result struct {
	Outcome core.Outcome
	Ticks   uint64
}

// Engine owns the world and advances it one tick at a time.
type Engine struct {
	world  *world.World
	state  State
	tick   uint64
	logger *log.Logger
	tracer trace.Tracer

	lost, won bool // last flags seen, for transition logging
}

// New creates an engine with a freshly generated world.
func New(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = telemetry.NoopTracer()
	}

	var w *world.World
	if opts.Layout != nil {
		w = world.NewFromLayout(opts.Features, opts.Source, *opts.Layout)
	} else {
		w = world.New(opts.Features, opts.Source)
	}

	return &Engine{
		world:  w,
		state:  StateRunning,
		logger: logger,
		tracer: tracer,
	}
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Ticks returns the number of ticks processed so far.
func (e *Engine) Ticks() uint64 {
	return e.tick
}

// Snapshot returns the current world snapshot.
func (e *Engine) Snapshot() world.Snapshot {
	return e.world.Snapshot()
}

// Step advances the simulation by one tick and returns the frame to emit.
// done is true when the returned frame is the final sentinel frame; any
// further call returns the same sentinel frame without moving anything.
func (e *Engine) Step(moves core.MoveSet) (frame core.Grid, done bool) {
	e.tick++
	delta := moves.Delta()

	// A flag set on the previous tick ends the run before anything moves.
	if e.world.Outcome() != core.OutcomeRunning {
		e.state = StateTerminated
		return e.world.Sentinel(), true
	}

	features := e.world.Features()
	w := e.world

	if w.ApplyPlayerDelta(delta) && w.CheckEnemyCollision() {
		w.MarkLost()
	}

	if features.Enemies {
		w.MoveEnemies()
		if w.CheckEnemyCollision() {
			w.MarkLost()
		}
	}

	if features.Target {
		w.MoveTarget()
		if w.CheckTargetCapture() {
			w.MarkWon()
		}
	}

	e.logTransitions()
	return w.Render(), false
}

func (e *Engine) logTransitions() {
	if e.world.Lost() && !e.lost {
		e.lost = true
		e.logger.Info("player caught", "tick", e.tick, "player", e.world.Player())
	}
	if e.world.Won() && !e.won {
		e.won = true
		e.logger.Info("target captured", "tick", e.tick, "player", e.world.Player())
	}
}

// Run drives the engine over the given streams until it terminates, the
// context is cancelled, or a stream fails. Framing errors are returned as-is
// wrapped with the tick number and can be detected with protocol.IsFramingError.
func (e *Engine) Run(ctx context.Context, in *protocol.Reader, out *protocol.Writer) (Result, error) {
	ctx, runSpan := e.tracer.Start(ctx, "engine.run")
	defer runSpan.End()

	for {
		if err := ctx.Err(); err != nil {
			return e.result(), err
		}

		moves, err := in.ReadMoves()
		if err != nil {
			runSpan.RecordError(err)
			runSpan.SetStatus(codes.Error, "input framing")
			return e.result(), fmt.Errorf("engine: tick %d: %w", e.tick+1, err)
		}

		done, err := e.tickOnce(ctx, moves, out)
		if err != nil {
			runSpan.RecordError(err)
			runSpan.SetStatus(codes.Error, "output")
			return e.result(), err
		}
		if done {
			res := e.result()
			runSpan.SetAttributes(
				attribute.String("outcome", res.Outcome.String()),
				attribute.Int64("ticks", int64(res.Ticks)),
			)
			e.logger.Info("run finished", "outcome", res.Outcome, "ticks", res.Ticks)
			return res, nil
		}
	}
}

func (e *Engine) tickOnce(ctx context.Context, moves core.MoveSet, out *protocol.Writer) (bool, error) {
	_, span := e.tracer.Start(ctx, "engine.tick")
	defer span.End()

	frame, done := e.Step(moves)
	player := e.world.Player()

	span.SetAttributes(
		attribute.Int64("tick", int64(e.tick)),
		attribute.Int("keys", moves.Len()),
		attribute.Int("player.row", player.Row),
		attribute.Int("player.col", player.Col),
		attribute.Bool("terminal", done),
	)
	e.logger.Debug("tick",
		"tick", e.tick,
		"keys", moves.Moves(),
		"player", player,
		"lost", e.world.Lost(),
		"won", e.world.Won(),
	)

	if err := out.WriteFrame(&frame); err != nil {
		span.RecordError(err)
		return false, fmt.Errorf("engine: tick %d: %w", e.tick, err)
	}
	return done, nil
}

func (e *Engine) result() Result {
	outcome := core.OutcomeRunning
	if e.state == StateTerminated {
		outcome = e.world.Outcome()
	}
	return Result{Outcome: outcome, Ticks: e.tick}
}
