// Package input maps pointer and hotkey intents onto simulation edits.
package input

import (
	"fmt"

	"github.com/JavaHello/game-life/internal/core"
)

// DefaultPitch is the on-screen size of one cell in device pixels, grid line included.
const DefaultPitch = 13

// Button identifies the pointer button driving an edit.
type Button int

const (
	ButtonNone Button = iota
	// ButtonPrimary paints live cells.
	ButtonPrimary
	// ButtonSecondary paints dead cells.
	ButtonSecondary
)

// Hotkey identifies a keyboard shortcut.
type Hotkey int

const (
	HotkeyPause Hotkey = iota
	HotkeyReset
	HotkeyClear
)

// Controller is the subset of the simulation controller the gateway drives.
type Controller interface {
	IsPaused() bool
	PauseForEdit()
	ResumeAfterEdit()
	Edit(cell core.Cell, col, row int) (bool, error)
	TogglePauseAndRender()
	Reset()
	Clear()
}

// Gateway translates device events into controller calls. It is the only
// caller of Controller.Edit. A Gateway is meant to be driven from a single
// event goroutine.
type Gateway struct {
	ctrl  Controller
	pitch int
	held  Button
}

// NewGateway returns a gateway mapping pixels to cells with the given pitch.
// Non-positive pitches fall back to DefaultPitch.
func NewGateway(ctrl Controller, pitch int) *Gateway {
	if pitch <= 0 {
		pitch = DefaultPitch
	}
	return &Gateway{ctrl: ctrl, pitch: pitch}
}

// Pitch returns the pixel size of one cell.
func (g *Gateway) Pitch() int { return g.pitch }

// Held returns the button of the gesture in progress, if any.
func (g *Gateway) Held() Button { return g.held }

// CellAt maps device pixel coordinates to a grid column and row, truncating
// toward zero.
func CellAt(x, y, pitch int) (col, row int) {
	return x / pitch, y / pitch
}

// PointerDown starts an edit gesture and paints the cell under (x, y).
func (g *Gateway) PointerDown(b Button, x, y int) error {
	if b == ButtonNone {
		return nil
	}
	g.held = b
	return g.paint(x, y)
}

// PointerDrag paints the cell under (x, y) with the held button.
func (g *Gateway) PointerDrag(x, y int) error {
	if g.held == ButtonNone {
		return nil
	}
	return g.paint(x, y)
}

// PointerUp ends the edit gesture and re-arms rendering.
func (g *Gateway) PointerUp(b Button) {
	if b == g.held {
		g.held = ButtonNone
	}
	g.ctrl.ResumeAfterEdit()
}

// KeyDown dispatches a hotkey.
func (g *Gateway) KeyDown(k Hotkey) {
	switch k {
	case HotkeyPause:
		g.ctrl.TogglePauseAndRender()
	case HotkeyReset:
		g.ctrl.Reset()
	case HotkeyClear:
		g.ctrl.Clear()
	}
}

func (g *Gateway) paint(x, y int) error {
	if !g.ctrl.IsPaused() {
		return nil
	}
	if x < 0 || y < 0 {
		return fmt.Errorf("pointer (%d,%d): %w", x, y, core.ErrOutOfRange)
	}
	cell := core.Alive
	if g.held == ButtonSecondary {
		cell = core.Dead
	}
	col, row := CellAt(x, y, g.pitch)
	g.ctrl.PauseForEdit()
	_, err := g.ctrl.Edit(cell, col, row)
	return err
}
