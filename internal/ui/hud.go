//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel to the right of the grid.
type HUD struct {
	src        ParameterProvider
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []string
}

// NewHUD constructs a HUD for the provided status source and panel width.
func NewHUD(src ParameterProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{src: src, width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached status text. drawn is the generation of the
// board currently on screen.
func (h *HUD) Update(drawn int64) {
	if h == nil || h.src == nil {
		return
	}
	h.lines = statusLines(h.src.Parameters(), drawn)
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	for _, line := range h.lines {
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		y += lineHeight
	}
	y += lineHeight
	for _, line := range helpLines {
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 150, G: 150, B: 165, A: 255})
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding = 12
	lineHeight   = 16
)
