//go:build ebiten

package ui

import (
	"image/color"

	"github.com/JavaHello/game-life/internal/core"
	"github.com/JavaHello/game-life/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type pauseReporter interface {
	IsPaused() bool
}

// Overlay outlines the cell under the cursor while the simulation is paused.
type Overlay struct {
	sim   pauseReporter
	size  core.Size
	pitch int

	col, row int
	hover    bool
	paused   bool
}

// NewOverlay constructs an overlay for a grid of the given size and pitch.
func NewOverlay(sim pauseReporter, size core.Size, pitch int) *Overlay {
	return &Overlay{sim: sim, size: size, pitch: pitch}
}

// Update tracks the hovered cell.
func (o *Overlay) Update() {
	x, y := ebiten.CursorPosition()
	o.paused = o.sim.IsPaused()
	if x < 0 || y < 0 {
		o.hover = false
		return
	}
	o.col, o.row = input.CellAt(x, y, o.pitch)
	o.hover = o.col < o.size.W && o.row < o.size.H
}

// Draw renders the hover outline onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.paused || !o.hover {
		return
	}
	p := float32(o.pitch)
	x := float32(o.col) * p
	y := float32(o.row) * p
	vector.StrokeRect(screen, x+0.5, y+0.5, p, p, 1, color.RGBA{R: 220, G: 60, B: 60, A: 255}, false)
}
