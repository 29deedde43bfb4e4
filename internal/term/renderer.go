// Package term runs the simulation inside a terminal using tcell.
package term

import (
	"fmt"

	"github.com/JavaHello/game-life/internal/core"

	"github.com/gdamore/tcell/v2"
)

const (
	glyphAlive = '█'
	glyphDead  = '·'
)

// Renderer draws snapshots onto a tcell screen, one terminal cell per grid
// cell, with a status line below the grid.
type Renderer struct {
	screen tcell.Screen

	alive  tcell.Style
	dead   tcell.Style
	status tcell.Style
}

// NewRenderer returns a renderer targeting screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	return &Renderer{
		screen: screen,
		alive:  base.Foreground(tcell.ColorWhite),
		dead:   base.Foreground(tcell.ColorGray),
		status: base.Foreground(tcell.ColorYellow),
	}
}

// RequestRedraw paints every cell plus the generation line and shows the frame.
func (r *Renderer) RequestRedraw(s core.Snapshot) {
	for row := 0; row < s.Size.H; row++ {
		for col := 0; col < s.Size.W; col++ {
			r.put(s.At(col, row), col, row)
		}
	}
	r.drawStatus(s.Size, fmt.Sprintf("Generation: %d  [space] pause  [r] reset  [c] clear  [q] quit", s.Generation))
	r.screen.Show()
}

// DrawCell paints a single cell and shows the frame.
func (r *Renderer) DrawCell(cell core.Cell, col, row int) {
	r.put(cell, col, row)
	r.screen.Show()
}

func (r *Renderer) put(cell core.Cell, col, row int) {
	if cell == core.Alive {
		r.screen.SetContent(col, row, glyphAlive, nil, r.alive)
		return
	}
	r.screen.SetContent(col, row, glyphDead, nil, r.dead)
}

func (r *Renderer) drawStatus(size core.Size, msg string) {
	width, _ := r.screen.Size()
	if width < size.W {
		width = size.W
	}
	x := 0
	for _, ch := range msg {
		if x >= width {
			break
		}
		r.screen.SetContent(x, size.H, ch, nil, r.status)
		x++
	}
	for ; x < width; x++ {
		r.screen.SetContent(x, size.H, ' ', nil, r.status)
	}
}
