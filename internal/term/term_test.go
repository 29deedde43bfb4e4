package term

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/JavaHello/game-life/internal/core"
	"github.com/JavaHello/game-life/internal/input"
	"github.com/JavaHello/game-life/internal/sims/life"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func newController(t *testing.T, w, h int, alive ...[2]int) *life.Controller {
	t.Helper()
	grid, err := core.NewGrid(w, h)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	for _, p := range alive {
		if err := grid.SetCell(core.Alive, p[0], p[1]); err != nil {
			t.Fatalf("SetCell: %v", err)
		}
	}
	return life.NewFromGrid(grid, 1, nil)
}

func rowText(s tcell.SimulationScreen, row, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := s.GetContent(x, row)
		b.WriteRune(r)
	}
	return b.String()
}

func TestRendererDrawsSnapshot(t *testing.T) {
	screen := newScreen(t, 40, 6)
	r := NewRenderer(screen)
	r.RequestRedraw(core.Snapshot{
		Size:       core.Size{W: 3, H: 2},
		Cells:      []core.Cell{core.Alive, core.Dead, core.Dead, core.Dead, core.Dead, core.Alive},
		Generation: 7,
	})
	if got := rowText(screen, 0, 3); got != "█··" {
		t.Fatalf("row 0 = %q", got)
	}
	if got := rowText(screen, 1, 3); got != "··█" {
		t.Fatalf("row 1 = %q", got)
	}
	if got := rowText(screen, 2, 40); !strings.HasPrefix(got, "Generation: 7") {
		t.Fatalf("status line = %q", got)
	}

	r.DrawCell(core.Alive, 1, 0)
	if got := rowText(screen, 0, 3); got != "██·" {
		t.Fatalf("row 0 after DrawCell = %q", got)
	}
}

func TestInputKeys(t *testing.T) {
	ctrl := newController(t, 4, 4)
	in := NewInput(input.NewGateway(ctrl, 1))

	if quit, _ := in.Handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)); quit {
		t.Fatal("space must not quit")
	}
	if !ctrl.IsPaused() {
		t.Fatal("space must toggle pause")
	}
	in.Handle(tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModNone))
	if !ctrl.Flags().RenderArmed {
		t.Fatal("reset must arm rendering")
	}
	in.Handle(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone))
	if ctrl.Snapshot().Cells[0] != core.Dead || ctrl.Generation() != 0 {
		t.Fatal("clear key did not clear")
	}
	if quit, _ := in.Handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); !quit {
		t.Fatal("q must quit")
	}
	if quit, _ := in.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); !quit {
		t.Fatal("escape must quit")
	}
}

func TestInputMouseEdits(t *testing.T) {
	ctrl := newController(t, 6, 4)
	ctrl.TogglePause()
	in := NewInput(input.NewGateway(ctrl, 1))

	steps := []*tcell.EventMouse{
		tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone),
		tcell.NewEventMouse(2, 1, tcell.Button1, tcell.ModNone),
		tcell.NewEventMouse(2, 1, tcell.ButtonNone, tcell.ModNone),
		tcell.NewEventMouse(1, 1, tcell.Button2, tcell.ModNone),
		tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone),
	}
	for i, ev := range steps {
		if _, err := in.Handle(ev); err != nil {
			t.Fatalf("event %d: %v", i, err)
		}
	}
	snap := ctrl.Snapshot()
	if snap.At(1, 1) != core.Dead || snap.At(2, 1) != core.Alive {
		t.Fatalf("unexpected cells: (1,1)=%v (2,1)=%v", snap.At(1, 1), snap.At(2, 1))
	}
	if !ctrl.Flags().RenderArmed {
		t.Fatal("release must re-arm rendering")
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	screen := newScreen(t, 20, 10)
	ctrl := newController(t, 8, 6, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})

	done := make(chan error, 1)
	go func() { done <- Run(context.Background(), screen, ctrl, time.Millisecond) }()

	deadline := time.After(2 * time.Second)
	for ctrl.Generation() < 2 {
		select {
		case <-deadline:
			t.Fatalf("driver stalled at generation %d", ctrl.Generation())
		default:
			time.Sleep(time.Millisecond)
		}
	}
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after quit key")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	screen := newScreen(t, 20, 10)
	ctrl := newController(t, 8, 6)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, screen, ctrl, time.Millisecond) }()
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
