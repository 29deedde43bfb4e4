//go:build ebiten

package render

import (
	"github.com/JavaHello/game-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps an offscreen image of the grid. Full redraws and single
// cell edits update it; Blit copies it to the screen every frame.
type GridPainter struct {
	size   core.Size
	pitch  int
	pal    Palette
	stride int
	img    *ebiten.Image
	buf    []byte

	generation int64
}

// NewGridPainter allocates a painter for a grid of the given size.
func NewGridPainter(size core.Size, pitch int, pal Palette) *GridPainter {
	w, h := CanvasSize(size, pitch)
	gp := &GridPainter{size: size, pitch: pitch, pal: pal, stride: w, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// RequestRedraw repaints the whole grid from the snapshot.
func (gp *GridPainter) RequestRedraw(s core.Snapshot) {
	if s.Size != gp.size {
		return
	}
	fillGridRGBA(gp.buf, s, gp.pitch, gp.pal)
	gp.img.WritePixels(gp.buf)
	gp.generation = s.Generation
}

// DrawCell repaints one cell.
func (gp *GridPainter) DrawCell(cell core.Cell, col, row int) {
	c := gp.pal.Dead
	if cell == core.Alive {
		c = gp.pal.Alive
	}
	rect := CellRect(col, row, gp.pitch)
	fillRectRGBA(gp.buf, gp.stride, rect, c)
	gp.img.SubImage(rect).(*ebiten.Image).Fill(c)
}

// Generation returns the generation of the last full redraw.
func (gp *GridPainter) Generation() int64 { return gp.generation }

// Blit draws the painter image onto dst at the origin.
func (gp *GridPainter) Blit(dst *ebiten.Image) {
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// Size returns the pixel dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return CanvasSize(gp.size, gp.pitch) }
