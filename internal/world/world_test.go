package world

import (
	"bytes"
	"testing"

	"github.com/vovakirdan/gridwalk/internal/core"
	"github.com/vovakirdan/gridwalk/internal/random"
)

var fullGame = core.Features{Target: true, Enemies: true}

// still returns a source whose random deltas are always zero.
func still() random.Source {
	return random.NewSequence(1)
}

func TestNewPlacesActors(t *testing.T) {
	w := New(fullGame, random.NewSeeded(42))

	if w.Player() != core.Pos(0, 0) {
		t.Errorf("Player should start at origin, got %v", w.Player())
	}
	if !w.Target().InBounds() {
		t.Errorf("Target out of bounds: %v", w.Target())
	}
	if len(w.Enemies()) != core.EnemyCount {
		t.Fatalf("Expected %d enemies, got %d", core.EnemyCount, len(w.Enemies()))
	}
	for i, e := range w.Enemies() {
		if !e.InBounds() {
			t.Errorf("Enemy %d out of bounds: %v", i, e)
		}
	}
	if w.Lost() || w.Won() {
		t.Error("New world should not be terminal")
	}
}

func TestNewPlacementOrder(t *testing.T) {
	// Target draws first (row, col), then each enemy.
	src := random.NewSequence(10, 20, 30, 40)
	w := New(fullGame, src)

	if w.Target() != core.Pos(10, 20) {
		t.Errorf("Target = %v, expected (10, 20)", w.Target())
	}
	if w.Enemies()[0] != core.Pos(30, 40) {
		t.Errorf("Enemy 0 = %v, expected (30, 40)", w.Enemies()[0])
	}
}

func TestNewPlayerOnly(t *testing.T) {
	w := New(core.Features{}, random.NewSeeded(1))

	if len(w.Enemies()) != 0 {
		t.Errorf("Player-only world should have no enemies, got %d", len(w.Enemies()))
	}
	w.MoveEnemies()
	w.MoveTarget()
	if w.CheckEnemyCollision() || w.CheckTargetCapture() {
		t.Error("Player-only world should never collide")
	}

	g := w.Render()
	if !g.IsZero() {
		t.Error("Player-only render should carry no overlays")
	}
}

func TestApplyPlayerDelta(t *testing.T) {
	tests := []struct {
		name      string
		start     core.Position
		delta     core.Delta
		expected  core.Position
		moved     bool
		visitCell core.Position
	}{
		{"diagonal", core.Pos(5, 5), core.Delta{Row: -1, Col: -1}, core.Pos(4, 4), true, core.Pos(4, 4)},
		{"top edge", core.Pos(0, 0), core.Delta{Row: -1}, core.Pos(0, 0), false, core.Pos(0, 0)},
		{"partial out of bounds", core.Pos(0, 5), core.Delta{Row: -1, Col: 1}, core.Pos(0, 5), false, core.Pos(0, 6)},
		{"zero", core.Pos(9, 9), core.Delta{}, core.Pos(9, 9), false, core.Pos(9, 9)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewFromLayout(core.Features{}, still(), Layout{Player: tc.start})

			moved := w.ApplyPlayerDelta(tc.delta)
			if moved != tc.moved {
				t.Errorf("moved = %v, expected %v", moved, tc.moved)
			}
			if w.Player() != tc.expected {
				t.Errorf("Player = %v, expected %v", w.Player(), tc.expected)
			}

			g := w.Grid()
			want := core.Cell(0)
			if tc.moved {
				want = 1
			}
			if g.Get(tc.visitCell) != want {
				t.Errorf("visit count at %v = %d, expected %d", tc.visitCell, g.Get(tc.visitCell), want)
			}
		})
	}
}

func TestVisitCounterWraps(t *testing.T) {
	w := NewFromLayout(core.Features{}, still(), Layout{Player: core.Pos(10, 10)})
	right := core.Delta{Col: 1}
	left := core.Delta{Col: -1}

	// Each round trip visits (10, 11) once.
	for i := 0; i < 256; i++ {
		w.ApplyPlayerDelta(right)
		w.ApplyPlayerDelta(left)
		g := w.Grid()
		want := core.Cell((i + 1) % 256)
		if g.Get(core.Pos(10, 11)) != want {
			t.Fatalf("visit %d: count = %d, expected %d", i+1, g.Get(core.Pos(10, 11)), want)
		}
	}
}

func TestApplyRandomDeltaRejectsWholeMove(t *testing.T) {
	// Row offset -1, column offset +1
	w := NewFromLayout(fullGame, random.NewSequence(0, 2), Layout{})

	if got := w.ApplyRandomDelta(core.Pos(0, 10)); got != core.Pos(0, 10) {
		t.Errorf("Move off the top edge should be rejected, got %v", got)
	}
	if got := w.ApplyRandomDelta(core.Pos(5, 10)); got != core.Pos(4, 11) {
		t.Errorf("In-bounds move = %v, expected (4, 11)", got)
	}
}

func TestCollisionExactEquality(t *testing.T) {
	layout := Layout{
		Player:  core.Pos(5, 5),
		Target:  core.Pos(5, 6),
		Enemies: []core.Position{core.Pos(5, 7), core.Pos(6, 5)},
	}
	w := NewFromLayout(fullGame, still(), layout)

	if w.CheckEnemyCollision() {
		t.Error("Sharing one axis is not a collision")
	}
	if w.CheckTargetCapture() {
		t.Error("Sharing one axis is not a capture")
	}

	w.ApplyPlayerDelta(core.Delta{Col: 1})
	if !w.CheckTargetCapture() {
		t.Error("Player on target should capture")
	}

	w.ApplyPlayerDelta(core.Delta{Col: 1})
	if !w.CheckEnemyCollision() {
		t.Error("Player on enemy should collide")
	}
}

func TestRenderDoesNotMutateGrid(t *testing.T) {
	layout := Layout{
		Player:  core.Pos(0, 0),
		Target:  core.Pos(3, 3),
		Enemies: []core.Position{core.Pos(3, 3), core.Pos(8, 8)},
	}
	w := NewFromLayout(fullGame, still(), layout)

	frame := w.Render()
	if frame.Get(core.Pos(3, 3)) != core.CellEnemy {
		t.Errorf("Enemy overlay should win over target, got %d", frame.Get(core.Pos(3, 3)))
	}
	if frame.Get(core.Pos(8, 8)) != core.CellEnemy {
		t.Error("Enemy marker missing")
	}

	g := w.Grid()
	if !g.IsZero() {
		t.Error("Render should not touch the persisted grid")
	}
}

func TestRenderTargetMarker(t *testing.T) {
	layout := Layout{Target: core.Pos(7, 7), Enemies: []core.Position{core.Pos(1, 1)}}
	w := NewFromLayout(fullGame, still(), layout)

	frame := w.Render()
	if frame.Get(core.Pos(7, 7)) != core.CellTarget {
		t.Errorf("Target marker = %d, expected %d", frame.Get(core.Pos(7, 7)), core.CellTarget)
	}
}

func TestSentinel(t *testing.T) {
	w := NewFromLayout(fullGame, still(), Layout{Player: core.Pos(0, 0)})
	for i := 0; i < 3; i++ {
		w.ApplyPlayerDelta(core.Delta{Col: 1})
	}

	plain := w.Sentinel()
	if plain.Get(core.Pos(0, 1)) != 1 {
		t.Error("Sentinel without a flag should be a plain grid copy")
	}

	w.MarkWon()
	won := w.Sentinel()
	row := won.Row(0)
	if !bytes.Equal(row[:3], []byte{0x57, 0x4F, 0x4E}) {
		t.Errorf("Won row 0 = %v, expected WON", row[:3])
	}
	if row[3] != 1 {
		t.Errorf("Fourth byte should keep the grid value 1, got %d", row[3])
	}

	// Lost takes precedence once both are set.
	w.MarkLost()
	lost := w.Sentinel()
	row = lost.Row(0)
	if !bytes.Equal(row[:4], []byte{0x4C, 0x4F, 0x53, 0x45}) {
		t.Errorf("Lost row 0 = %v, expected LOSE", row[:4])
	}
	if w.Outcome() != core.OutcomeLost {
		t.Errorf("Outcome = %v, expected lost", w.Outcome())
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	layout := Layout{Enemies: []core.Position{core.Pos(2, 2)}}
	w := NewFromLayout(fullGame, still(), layout)

	snap := w.Snapshot()
	snap.Enemies[0] = core.Pos(9, 9)

	if w.Enemies()[0] != core.Pos(2, 2) {
		t.Error("Snapshot should not alias the roster")
	}
}
