package core

import (
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Cell is the binary state of a single grid position.
type Cell uint8

const (
	// Dead is the empty state and the zero value.
	Dead Cell = iota
	// Alive marks a populated cell.
	Alive
)

// String returns "alive" or "dead".
func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// parallelRows is the minimum row count before Tick splits work into bands.
const parallelRows = 64

// Grid stores a fixed-size toroidal matrix of cells in row-major order.
type Grid struct {
	w, h int
	cur  []Cell
	nxt  []Cell

	// Bands caps the number of row bands computed concurrently by Tick.
	// Values below 2 force a sequential pass.
	Bands int
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("grid %dx%d: %w", w, h, ErrInvariant)
	}
	return &Grid{w: w, h: h, cur: make([]Cell, w*h), nxt: make([]Cell, w*h), Bands: 4}, nil
}

// NewGridFromCells builds a grid over a copy of cells, which must hold w*h values.
func NewGridFromCells(w, h int, cells []Cell) (*Grid, error) {
	g, err := NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	if len(cells) != w*h {
		return nil, fmt.Errorf("grid %dx%d with %d cells: %w", w, h, len(cells), ErrInvariant)
	}
	copy(g.cur, cells)
	return g, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return g.Size().Index(row, col) }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.h + g.h) % g.h
	col = (col%g.w + g.w) % g.w
	return row, col
}

// Contains reports whether (col, row) addresses a cell of the grid.
func (g *Grid) Contains(col, row int) bool {
	return col >= 0 && col < g.w && row >= 0 && row < g.h
}

// Cell returns the state at (col, row).
func (g *Grid) Cell(col, row int) (Cell, error) {
	if !g.Contains(col, row) {
		return Dead, fmt.Errorf("cell (%d,%d) in %dx%d grid: %w", col, row, g.w, g.h, ErrOutOfRange)
	}
	return g.cur[g.Index(row, col)], nil
}

// Cells returns a copy of the current cell values.
func (g *Grid) Cells() []Cell { return append([]Cell(nil), g.cur...) }

// SetCell overwrites the cell at (col, row).
func (g *Grid) SetCell(cell Cell, col, row int) error {
	if !g.Contains(col, row) {
		return fmt.Errorf("set cell (%d,%d) in %dx%d grid: %w", col, row, g.w, g.h, ErrOutOfRange)
	}
	g.cur[g.Index(row, col)] = cell
	return nil
}

// NeighborCount returns the number of live cells in the wrapped Moore
// neighborhood of (row, col).
func (g *Grid) NeighborCount(row, col int) (int, error) {
	if !g.Contains(col, row) {
		return 0, fmt.Errorf("neighbors of (%d,%d) in %dx%d grid: %w", col, row, g.w, g.h, ErrOutOfRange)
	}
	return g.neighbors(row, col), nil
}

func (g *Grid) neighbors(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n += int(g.cur[g.Index(g.Wrap(row+dr, col+dc))])
		}
	}
	return n
}

// Next applies the transition rule to a cell with n live neighbors.
func Next(cell Cell, n int) Cell {
	switch {
	case cell == Alive && n < 2:
		return Dead
	case cell == Alive && (n == 2 || n == 3):
		return Alive
	case cell == Alive && n > 3:
		return Dead
	case cell == Dead && n == 3:
		return Alive
	}
	return cell
}

// Tick advances every cell by one generation. All transitions read the
// previous generation; the buffers are swapped once every row is computed.
func (g *Grid) Tick() {
	bands := g.Bands
	if g.h < parallelRows || bands < 2 {
		g.stepRows(0, g.h)
	} else {
		if bands > g.h {
			bands = g.h
		}
		per := (g.h + bands - 1) / bands
		var eg errgroup.Group
		for start := 0; start < g.h; start += per {
			start, end := start, min(start+per, g.h)
			eg.Go(func() error {
				g.stepRows(start, end)
				return nil
			})
		}
		// Bands write disjoint rows of nxt and never return an error.
		_ = eg.Wait()
	}
	g.cur, g.nxt = g.nxt, g.cur
}

func (g *Grid) stepRows(from, to int) {
	for row := from; row < to; row++ {
		for col := 0; col < g.w; col++ {
			idx := g.Index(row, col)
			g.nxt[idx] = Next(g.cur[idx], g.neighbors(row, col))
		}
	}
}

// FillRandom replaces every cell; each is alive when a draw over [0,10)
// exceeds 5.
func (g *Grid) FillRandom(rng *RNG) {
	for i := range g.cur {
		g.cur[i] = Dead
		if rng.Intn(10) > 5 {
			g.cur[i] = Alive
		}
	}
}

// FillDead marks every cell dead.
func (g *Grid) FillDead() {
	for i := range g.cur {
		g.cur[i] = Dead
	}
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cur {
		n += int(c)
	}
	return n
}

// String renders the grid one row per line using ◼ for live cells and ◻ for
// dead ones.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.h * (g.w*3 + 1))
	for row := 0; row < g.h; row++ {
		for _, c := range g.cur[g.Index(row, 0):g.Index(row+1, 0)] {
			if c == Alive {
				b.WriteRune('◼')
			} else {
				b.WriteRune('◻')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
