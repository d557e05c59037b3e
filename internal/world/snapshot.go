package world

import "github.com/vovakirdan/gridwalk/internal/core"

// Snapshot captures the actor state for tests and logging.
type Snapshot struct {
	Player  core.Position
	Target  core.Position
	Enemies []core.Position
	Lost    bool
	Won     bool
	Outcome core.Outcome
}

// Snapshot returns the current world snapshot.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Player:  w.player,
		Target:  w.target,
		Enemies: w.Enemies(),
		Lost:    w.lost,
		Won:     w.won,
		Outcome: w.Outcome(),
	}
}
