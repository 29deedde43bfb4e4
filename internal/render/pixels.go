package render

import (
	"image"
	"image/color"

	"github.com/JavaHello/game-life/internal/core"
)

// Palette holds the colors used to rasterize a grid.
type Palette struct {
	Alive color.RGBA
	Dead  color.RGBA
	Line  color.RGBA
}

// DefaultPalette paints live cells black and dead cells white over dark grid lines.
func DefaultPalette() Palette {
	return Palette{
		Alive: color.RGBA{A: 255},
		Dead:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Line:  color.RGBA{R: 96, G: 96, B: 104, A: 255},
	}
}

// CanvasSize returns the pixel dimensions of a grid drawn at pitch, including
// the closing grid line.
func CanvasSize(size core.Size, pitch int) (int, int) {
	return size.W*pitch + 1, size.H*pitch + 1
}

// CellRect returns the filled area of the cell at (col, row). Pitches of
// three or more leave a one-pixel gutter on every side for grid lines.
func CellRect(col, row, pitch int) image.Rectangle {
	x, y := col*pitch, row*pitch
	if pitch < 3 {
		return image.Rect(x, y, x+pitch, y+pitch)
	}
	return image.Rect(x+1, y+1, x+pitch-1, y+pitch-1)
}

// fillRectRGBA paints rect in buf, an RGBA buffer with the given row stride
// in pixels. Parts of rect outside the buffer are skipped.
func fillRectRGBA(buf []byte, stride int, rect image.Rectangle, c color.RGBA) {
	rows := len(buf) / (4 * stride)
	rect = rect.Intersect(image.Rect(0, 0, stride, rows))
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		base := (y*stride + rect.Min.X) * 4
		for x := rect.Min.X; x < rect.Max.X; x++ {
			buf[base+0] = c.R
			buf[base+1] = c.G
			buf[base+2] = c.B
			buf[base+3] = c.A
			base += 4
		}
	}
}

// fillGridRGBA rasterizes a full snapshot into buf, which must be sized for
// CanvasSize(s.Size, pitch).
func fillGridRGBA(buf []byte, s core.Snapshot, pitch int, pal Palette) {
	stride, rows := CanvasSize(s.Size, pitch)
	if len(buf) != 4*stride*rows || len(s.Cells) != s.Size.W*s.Size.H {
		return
	}
	fillRectRGBA(buf, stride, image.Rect(0, 0, stride, rows), pal.Line)
	for row := 0; row < s.Size.H; row++ {
		for col := 0; col < s.Size.W; col++ {
			c := pal.Dead
			if s.At(col, row) == core.Alive {
				c = pal.Alive
			}
			fillRectRGBA(buf, stride, CellRect(col, row, pitch), c)
		}
	}
}
