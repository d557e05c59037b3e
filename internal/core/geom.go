// Package core provides fundamental types and utilities for the grid engine.
// It contains no external dependencies to keep simulation logic pure and testable.
package core

import "strconv"

// ScreenSize is the side length of the square board, in cells.
const ScreenSize = 64

// Position is a cell coordinate on the board.
// Row grows downward, Col grows to the right.
type Position struct {
	Row, Col int
}

// String formats the position as "(row, col)".
func (p Position) String() string {
	return "(" + strconv.Itoa(p.Row) + ", " + strconv.Itoa(p.Col) + ")"
}

// Delta is a displacement applied to a Position.
type Delta struct {
	Row, Col int
}

// Pos creates a new position.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns the position displaced by d. The result may be off the board.
func (p Position) Add(d Delta) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// InBounds returns true if both coordinates lie in [0, ScreenSize-1].
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < ScreenSize && p.Col >= 0 && p.Col < ScreenSize
}

// Step moves p by d if the whole move stays on the board.
// A move with either axis out of bounds is rejected entirely and p is returned.
func (p Position) Step(d Delta) Position {
	next := p.Add(d)
	if !next.InBounds() {
		return p
	}
	return next
}

// Plus returns the component-wise sum of two deltas.
func (d Delta) Plus(other Delta) Delta {
	return Delta{Row: d.Row + other.Row, Col: d.Col + other.Col}
}
