package life

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/JavaHello/game-life/internal/core"
)

// Flags holds the two orthogonal switches that gate ticking and rendering.
type Flags struct {
	Running     bool
	RenderArmed bool
}

// Controller owns a toroidal Game of Life grid and decides when it advances
// and when a redraw is requested. It is safe for concurrent use. Draw calls
// reach the renderer in the order their state changes were made, and a
// renderer may read the controller while drawing but must not call Tick or
// Edit.
type Controller struct {
	// renderMu is taken before mu by Tick and Edit and held through the
	// renderer call.
	renderMu sync.Mutex

	mu         sync.RWMutex
	grid       *core.Grid
	rng        *core.RNG
	generation int64
	flags      Flags

	renderer core.Renderer
}

// New builds a controller over a randomly filled grid. A nil renderer
// discards draw requests.
func New(cfg Config, r core.Renderer) (*Controller, error) {
	grid, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("life: %w", err)
	}
	if r == nil {
		r = core.NopRenderer{}
	}
	c := &Controller{
		grid:     grid,
		rng:      core.NewRNG(cfg.Seed),
		flags:    Flags{Running: true, RenderArmed: true},
		renderer: r,
	}
	c.grid.FillRandom(c.rng)
	return c, nil
}

// NewFromGrid wraps an existing grid. The controller takes ownership of it.
func NewFromGrid(grid *core.Grid, seed int64, r core.Renderer) *Controller {
	if r == nil {
		r = core.NopRenderer{}
	}
	return &Controller{
		grid:     grid,
		rng:      core.NewRNG(seed),
		flags:    Flags{Running: true, RenderArmed: true},
		renderer: r,
	}
}

// SetRenderer swaps the drawing port. Passing nil discards draw requests.
func (c *Controller) SetRenderer(r core.Renderer) {
	if r == nil {
		r = core.NopRenderer{}
	}
	c.mu.Lock()
	c.renderer = r
	c.mu.Unlock()
}

// Size returns the grid dimensions.
func (c *Controller) Size() core.Size { return c.grid.Size() }

// Tick advances the grid when running and emits a redraw when armed. A tick
// that starts paused with rendering armed redraws once and then disarms,
// so the paused board is shown a single time. It reports whether a redraw
// was emitted.
func (c *Controller) Tick() bool {
	c.renderMu.Lock()
	defer c.renderMu.Unlock()

	c.mu.Lock()
	wasRunning := c.flags.Running
	if wasRunning {
		c.grid.Tick()
		c.generation++
	}
	if !c.flags.RenderArmed {
		c.mu.Unlock()
		return false
	}
	if !wasRunning {
		c.flags.RenderArmed = false
	}
	snap := c.snapshotLocked()
	r := c.renderer
	c.mu.Unlock()

	r.RequestRedraw(snap)
	return true
}

// PauseForEdit disarms rendering while an edit gesture is in progress.
func (c *Controller) PauseForEdit() {
	c.mu.Lock()
	c.flags.RenderArmed = false
	c.mu.Unlock()
}

// ResumeAfterEdit re-arms rendering at the end of an edit gesture.
func (c *Controller) ResumeAfterEdit() {
	c.mu.Lock()
	c.flags.RenderArmed = true
	c.mu.Unlock()
}

// TogglePause flips the running flag.
func (c *Controller) TogglePause() {
	c.mu.Lock()
	c.flags.Running = !c.flags.Running
	c.mu.Unlock()
}

// ToggleRender flips the render-armed flag.
func (c *Controller) ToggleRender() {
	c.mu.Lock()
	c.flags.RenderArmed = !c.flags.RenderArmed
	c.mu.Unlock()
}

// TogglePauseAndRender flips both flags in one step.
func (c *Controller) TogglePauseAndRender() {
	c.mu.Lock()
	c.flags.Running = !c.flags.Running
	c.flags.RenderArmed = !c.flags.RenderArmed
	c.mu.Unlock()
}

// Clear kills every cell, stops the simulation and arms a redraw.
func (c *Controller) Clear() {
	c.mu.Lock()
	c.generation = 0
	c.grid.FillDead()
	c.flags = Flags{Running: false, RenderArmed: true}
	c.mu.Unlock()
}

// Reset refills the grid randomly and arms a redraw. The running flag is kept.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.generation = 0
	c.flags.RenderArmed = true
	c.grid.FillRandom(c.rng)
	c.mu.Unlock()
}

// IsPaused reports whether the simulation is stopped.
func (c *Controller) IsPaused() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.flags.Running
}

// Flags returns the current flag record.
func (c *Controller) Flags() Flags {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.flags
}

// Generation returns the number of generations since the last reset or clear.
func (c *Controller) Generation() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

// Edit sets one cell while the simulation is paused and forwards it to the
// renderer. Coordinates past the right or bottom edge, or an edit while
// running, are ignored. Negative coordinates fail with core.ErrOutOfRange.
// It reports whether the cell was written.
func (c *Controller) Edit(cell core.Cell, col, row int) (bool, error) {
	if col < 0 || row < 0 {
		return false, fmt.Errorf("edit (%d,%d): %w", col, row, core.ErrOutOfRange)
	}
	c.renderMu.Lock()
	defer c.renderMu.Unlock()

	c.mu.Lock()
	size := c.grid.Size()
	if c.flags.Running || col >= size.W || row >= size.H {
		c.mu.Unlock()
		return false, nil
	}
	if err := c.grid.SetCell(cell, col, row); err != nil {
		c.mu.Unlock()
		return false, err
	}
	r := c.renderer
	c.mu.Unlock()

	r.DrawCell(cell, col, row)
	return true, nil
}

// Population counts live cells.
func (c *Controller) Population() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.grid.Population()
}

// String renders the current board as rows of ◼ and ◻.
func (c *Controller) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.grid.String()
}

// Snapshot copies the grid and generation under the read lock.
func (c *Controller) Snapshot() core.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() core.Snapshot {
	return core.Snapshot{
		Size:       c.grid.Size(),
		Cells:      c.grid.Cells(),
		Generation: c.generation,
	}
}

// Parameters reports the status values shown on the HUD.
func (c *Controller) Parameters() core.ParameterSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	size := c.grid.Size()
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Simulation",
				Params: []core.Parameter{
					{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.FormatInt(c.generation, 10)},
					{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(c.grid.Population())},
					{Key: "running", Label: "Running", Type: core.ParamTypeBool, Value: strconv.FormatBool(c.flags.Running)},
					{Key: "render", Label: "Render armed", Type: core.ParamTypeBool, Value: strconv.FormatBool(c.flags.RenderArmed)},
				},
			},
			{
				Name: "Grid",
				Params: []core.Parameter{
					{Key: "w", Label: "Width", Type: core.ParamTypeInt, Value: strconv.Itoa(size.W)},
					{Key: "h", Label: "Height", Type: core.ParamTypeInt, Value: strconv.Itoa(size.H)},
				},
			},
		},
	}
}
