//go:build ebiten

package app

import (
	"errors"
	"image/color"

	"github.com/JavaHello/game-life/internal/core"
	"github.com/JavaHello/game-life/internal/driver"
	"github.com/JavaHello/game-life/internal/input"
	"github.com/JavaHello/game-life/internal/render"
	"github.com/JavaHello/game-life/internal/sims/life"
	"github.com/JavaHello/game-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	hudWidth = 200
	// maxQuantaPerFrame bounds catch-up work after a slow frame.
	maxQuantaPerFrame = 8
)

var buttons = []struct {
	mouse ebiten.MouseButton
	btn   input.Button
}{
	{ebiten.MouseButtonLeft, input.ButtonPrimary},
	{ebiten.MouseButtonRight, input.ButtonSecondary},
}

// Game adapts a life controller to the ebiten.Game interface.
type Game struct {
	ctrl    *life.Controller
	gateway *input.Gateway
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	step    *core.FixedStep
	driver  *driver.Driver

	lastX, lastY int
}

// New constructs a Game for the provided controller and installs its
// painter as the controller's renderer.
func New(ctrl *life.Controller, cfg *Config) *Game {
	painter := render.NewGridPainter(ctrl.Size(), cfg.Pitch, render.DefaultPalette())
	ctrl.SetRenderer(painter)
	painter.RequestRedraw(ctrl.Snapshot())
	return &Game{
		ctrl:    ctrl,
		gateway: input.NewGateway(ctrl, cfg.Pitch),
		painter: painter,
		hud:     ui.NewHUD(ctrl, hudWidth),
		overlay: ui.NewOverlay(ctrl, ctrl.Size(), cfg.Pitch),
		step:    core.NewFixedStep(cfg.Period),
		driver:  driver.New(ctrl, cfg.Period),
	}
}

// Update handles input and advances the simulation by the quanta that
// elapsed since the previous frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.gateway.KeyDown(input.HotkeyPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.gateway.KeyDown(input.HotkeyReset)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.gateway.KeyDown(input.HotkeyClear)
	}
	if err := g.updatePointer(); err != nil {
		return err
	}
	g.overlay.Update()

	for n := g.step.Due(maxQuantaPerFrame); n > 0; n-- {
		g.driver.OnQuantum()
	}
	g.hud.Update(g.painter.Generation())
	return nil
}

func (g *Game) updatePointer() error {
	x, y := ebiten.CursorPosition()
	moved := x != g.lastX || y != g.lastY
	g.lastX, g.lastY = x, y

	for _, b := range buttons {
		var err error
		switch {
		case inpututil.IsMouseButtonJustPressed(b.mouse):
			err = g.gateway.PointerDown(b.btn, x, y)
		case moved && ebiten.IsMouseButtonPressed(b.mouse) && g.gateway.Held() == b.btn:
			err = g.gateway.PointerDrag(x, y)
		case inpututil.IsMouseButtonJustReleased(b.mouse):
			g.gateway.PointerUp(b.btn)
		}
		// The cursor can leave the window mid-drag.
		if err != nil && !errors.Is(err, core.ErrOutOfRange) {
			return err
		}
	}
	return nil
}

// Draw renders the grid, the hover outline and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	g.painter.Blit(screen)
	g.overlay.Draw(screen)
	w, h := g.painter.Size()
	g.hud.Draw(screen, w, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w + g.hud.Width(), h
}
