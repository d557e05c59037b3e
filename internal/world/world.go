// Package world holds the board state: the visit-count grid, the player, the
// target, the enemy roster and the two terminal flags.
package world

import (
	"github.com/vovakirdan/gridwalk/internal/core"
	"github.com/vovakirdan/gridwalk/internal/random"
)

// Layout fixes the starting positions of every actor.
type Layout struct {
	Player  core.Position
	Target  core.Position
	Enemies []core.Position
}

// World is the mutable board state of one run.
type World struct {
	features core.Features
	src      random.Source

	grid    core.Grid
	player  core.Position
	target  core.Position
	enemies []core.Position

	lost bool
	won  bool
}

// New creates a world with the player at the origin and the enabled actors
// scattered uniformly over the board. The target is placed before the enemies.
func New(features core.Features, src random.Source) *World {
	layout := Layout{Player: core.Pos(0, 0)}
	if features.Target {
		layout.Target = random.Position(src)
	}
	if features.Enemies {
		layout.Enemies = make([]core.Position, core.EnemyCount)
		for i := range layout.Enemies {
			layout.Enemies[i] = random.Position(src)
		}
	}
	return NewFromLayout(features, src, layout)
}

// NewFromLayout creates a world with fixed starting positions.
// Actors that the feature set disables are discarded.
func NewFromLayout(features core.Features, src random.Source, layout Layout) *World {
	w := &World{
		features: features,
		src:      src,
		grid:     core.NewGrid(),
		player:   layout.Player,
	}
	if features.Target {
		w.target = layout.Target
	}
	if features.Enemies {
		w.enemies = append([]core.Position(nil), layout.Enemies...)
	}
	return w
}

// Features returns the enabled feature set.
func (w *World) Features() core.Features {
	return w.features
}

// ApplyPlayerDelta moves the player by d unless the move would leave the
// board. When the player lands on a new cell its visit count is incremented.
// Returns true if the player's position changed.
func (w *World) ApplyPlayerDelta(d core.Delta) bool {
	next := w.player.Step(d)
	if next == w.player {
		return false
	}
	w.player = next
	w.grid.Increment(next)
	return true
}

// ApplyRandomDelta returns p displaced by a random step in each axis,
// or p itself if the step would leave the board.
func (w *World) ApplyRandomDelta(p core.Position) core.Position {
	return p.Step(random.Delta(w.src))
}

// MoveEnemies steps every enemy once, in roster order.
func (w *World) MoveEnemies() {
	for i := range w.enemies {
		w.enemies[i] = w.ApplyRandomDelta(w.enemies[i])
	}
}

// MoveTarget steps the target once.
func (w *World) MoveTarget() {
	if !w.features.Target {
		return
	}
	w.target = w.ApplyRandomDelta(w.target)
}

// CheckEnemyCollision returns true if the player shares a cell with any enemy.
func (w *World) CheckEnemyCollision() bool {
	for _, e := range w.enemies {
		if e == w.player {
			return true
		}
	}
	return false
}

// CheckTargetCapture returns true if the player shares a cell with the target.
func (w *World) CheckTargetCapture() bool {
	return w.features.Target && w.player == w.target
}

// MarkLost sets the lost flag. It is never cleared.
func (w *World) MarkLost() {
	w.lost = true
}

// MarkWon sets the won flag. It is never cleared.
func (w *World) MarkWon() {
	w.won = true
}

// Lost reports whether the player has been caught.
func (w *World) Lost() bool {
	return w.lost
}

// Won reports whether the player has caught the target.
func (w *World) Won() bool {
	return w.won
}

// Outcome returns the terminal classification. Lost takes precedence.
func (w *World) Outcome() core.Outcome {
	switch {
	case w.lost:
		return core.OutcomeLost
	case w.won:
		return core.OutcomeWon
	default:
		return core.OutcomeRunning
	}
}

// Player returns the player's position.
func (w *World) Player() core.Position {
	return w.player
}

// Target returns the target's position.
func (w *World) Target() core.Position {
	return w.target
}

// Enemies returns a copy of the enemy roster.
func (w *World) Enemies() []core.Position {
	return append([]core.Position(nil), w.enemies...)
}

// Grid returns a copy of the persisted visit-count grid.
func (w *World) Grid() core.Grid {
	return w.grid.Clone()
}

// Render returns the frame for a running tick: a copy of the grid with the
// target marker and then each enemy marker drawn on top.
func (w *World) Render() core.Grid {
	out := w.grid.Clone()
	if w.features.Target {
		out.Set(w.target, core.CellTarget)
	}
	for _, e := range w.enemies {
		out.Set(e, core.CellEnemy)
	}
	return out
}

// Sentinel returns the final frame: a copy of the grid with row 0 prefixed
// by "LOSE" or "WON". Without a terminal flag it is a plain copy.
func (w *World) Sentinel() core.Grid {
	out := w.grid.Clone()
	switch w.Outcome() {
	case core.OutcomeLost:
		out.WriteRow(0, core.SentinelLose)
	case core.OutcomeWon:
		out.WriteRow(0, core.SentinelWon)
	}
	return out
}
