package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Index maps (row, col) to the row-major offset used by every cell slice.
func (s Size) Index(row, col int) int { return row*s.W + col }

// Snapshot is a read-only copy of the grid taken for a full redraw.
type Snapshot struct {
	Size       Size
	Cells      []Cell
	Generation int64
}

// At returns the cell at (col, row) of the snapshot. Coordinates must be in range.
func (s Snapshot) At(col, row int) Cell { return s.Cells[s.Size.Index(row, col)] }

// Renderer is the drawing port the controller calls into. Each Snapshot
// carries its own copy of the cells, so implementations may keep it.
type Renderer interface {
	RequestRedraw(s Snapshot)
	DrawCell(cell Cell, col, row int)
}

// NopRenderer discards all draw requests.
type NopRenderer struct{}

// RequestRedraw does nothing.
func (NopRenderer) RequestRedraw(Snapshot) {}

// DrawCell does nothing.
func (NopRenderer) DrawCell(Cell, int, int) {}
