package core

// Cell is the intensity byte of a single board cell.
// The host maps each value to a color from the xterm 256-color palette.
type Cell = byte

// Marker values overlaid on the rendered copy of the grid.
const (
	CellEmpty  Cell = 0
	CellTarget Cell = 118 // bright green
	CellEnemy  Cell = 160 // red
)

// Sentinels written over the start of row 0 in the final frame.
var (
	SentinelWon  = []byte("WON")
	SentinelLose = []byte("LOSE")
)
