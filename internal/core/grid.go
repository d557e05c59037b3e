package core

// FrameSize is the number of bytes in one emitted raster.
const FrameSize = ScreenSize * ScreenSize

// Grid is a square byte buffer holding per-cell intensities.
// It is a value type: assigning a Grid copies every cell, which is how
// rendered frames are kept apart from the persisted board.
type Grid struct {
	cells [ScreenSize][ScreenSize]Cell
}

// NewGrid creates a zeroed grid.
func NewGrid() Grid {
	return Grid{}
}

// Get returns the value at p.
// Returns CellEmpty for out-of-bounds coordinates.
func (g *Grid) Get(p Position) Cell {
	if !p.InBounds() {
		return CellEmpty
	}
	return g.cells[p.Row][p.Col]
}

// Set places a value at p.
// Out-of-bounds coordinates are silently ignored.
func (g *Grid) Set(p Position, v Cell) {
	if !p.InBounds() {
		return
	}
	g.cells[p.Row][p.Col] = v
}

// Increment adds one to the cell at p, wrapping 255 to 0.
func (g *Grid) Increment(p Position) {
	if !p.InBounds() {
		return
	}
	g.cells[p.Row][p.Col]++
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() Grid {
	return *g
}

// WriteRow overwrites row y starting at column 0 with data.
// Bytes beyond the row width are clipped.
func (g *Grid) WriteRow(y int, data []byte) {
	if y < 0 || y >= ScreenSize {
		return
	}
	copy(g.cells[y][:], data)
}

// Row returns a copy of row y.
func (g *Grid) Row(y int) []byte {
	row := make([]byte, ScreenSize)
	if y < 0 || y >= ScreenSize {
		return row
	}
	copy(row, g.cells[y][:])
	return row
}

// Bytes returns the grid as a row-major byte slice of length FrameSize.
func (g *Grid) Bytes() []byte {
	return g.AppendBytes(make([]byte, 0, FrameSize))
}

// AppendBytes appends the row-major grid to dst and returns the extended slice.
func (g *Grid) AppendBytes(dst []byte) []byte {
	for y := range g.cells {
		dst = append(dst, g.cells[y][:]...)
	}
	return dst
}

// IsZero returns true if every cell is empty.
func (g *Grid) IsZero() bool {
	return *g == (Grid{})
}
