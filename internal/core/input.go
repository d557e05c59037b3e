package core

// Move is a directional key as it appears on the wire.
type Move byte

const (
	MoveUp    Move = 1
	MoveDown  Move = 2
	MoveLeft  Move = 3
	MoveRight Move = 4
)

// ParseMove maps a raw input byte to a Move.
// Returns false for bytes outside the recognized code range.
func ParseMove(b byte) (Move, bool) {
	m := Move(b)
	switch m {
	case MoveUp, MoveDown, MoveLeft, MoveRight:
		return m, true
	default:
		return 0, false
	}
}

// Delta returns the unit displacement of the move.
func (m Move) Delta() Delta {
	switch m {
	case MoveUp:
		return Delta{Row: -1}
	case MoveDown:
		return Delta{Row: 1}
	case MoveLeft:
		return Delta{Col: -1}
	case MoveRight:
		return Delta{Col: 1}
	default:
		return Delta{}
	}
}

// String returns a human-readable name for the move.
func (m Move) String() string {
	switch m {
	case MoveUp:
		return "Up"
	case MoveDown:
		return "Down"
	case MoveLeft:
		return "Left"
	case MoveRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// AllMoves lists the recognized moves in wire-code order.
var AllMoves = [...]Move{MoveUp, MoveDown, MoveLeft, MoveRight}

// MoveSet is the set of distinct moves pressed during one tick.
// The zero value is an empty set.
type MoveSet struct {
	bits uint8
}

// NewMoveSet builds a set from the given moves. Unknown moves are ignored.
func NewMoveSet(moves ...Move) MoveSet {
	var s MoveSet
	for _, m := range moves {
		s.Add(m)
	}
	return s
}

// DecodeMoves collapses raw key bytes into a MoveSet, dropping unrecognized bytes.
func DecodeMoves(keys []byte) MoveSet {
	var s MoveSet
	for _, b := range keys {
		if m, ok := ParseMove(b); ok {
			s.Add(m)
		}
	}
	return s
}

func bit(m Move) uint8 {
	return 1 << (m - 1)
}

// Add marks a move as pressed. Unknown moves are ignored.
func (s *MoveSet) Add(m Move) {
	if _, ok := ParseMove(byte(m)); !ok {
		return
	}
	s.bits |= bit(m)
}

// Has returns true if the given move was pressed.
func (s MoveSet) Has(m Move) bool {
	if _, ok := ParseMove(byte(m)); !ok {
		return false
	}
	return s.bits&bit(m) != 0
}

// Len returns the number of distinct moves in the set.
func (s MoveSet) Len() int {
	n := 0
	for _, m := range AllMoves {
		if s.Has(m) {
			n++
		}
	}
	return n
}

// Empty returns true if no move was pressed.
func (s MoveSet) Empty() bool {
	return s.bits == 0
}

// Moves returns the pressed moves in wire-code order.
func (s MoveSet) Moves() []Move {
	out := make([]Move, 0, len(AllMoves))
	for _, m := range AllMoves {
		if s.Has(m) {
			out = append(out, m)
		}
	}
	return out
}

// Delta sums the unit deltas of every pressed move.
// Opposite directions cancel out.
func (s MoveSet) Delta() Delta {
	var d Delta
	for _, m := range AllMoves {
		if s.Has(m) {
			d = d.Plus(m.Delta())
		}
	}
	return d
}
