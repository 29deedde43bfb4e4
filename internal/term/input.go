package term

import (
	"unicode"

	"github.com/JavaHello/game-life/internal/input"

	"github.com/gdamore/tcell/v2"
)

const editButtons = tcell.Button1 | tcell.Button2

// Input decodes tcell events into gateway calls.
type Input struct {
	gw   *input.Gateway
	prev tcell.ButtonMask
}

// NewInput returns a decoder feeding gw.
func NewInput(gw *input.Gateway) *Input {
	return &Input{gw: gw}
}

// Handle processes one event and reports whether the user asked to quit.
func (in *Input) Handle(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return in.handleKey(ev), nil
	case *tcell.EventMouse:
		return false, in.handleMouse(ev)
	}
	return false, nil
}

func (in *Input) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return in.handleRune(ev.Rune())
	}
	return false
}

func (in *Input) handleRune(r rune) bool {
	switch unicode.ToLower(r) {
	case ' ', 'p':
		in.gw.KeyDown(input.HotkeyPause)
	case 'r':
		in.gw.KeyDown(input.HotkeyReset)
	case 'c':
		in.gw.KeyDown(input.HotkeyClear)
	case 'q':
		return true
	}
	return false
}

func (in *Input) handleMouse(ev *tcell.EventMouse) error {
	x, y := ev.Position()
	cur := ev.Buttons() & editButtons
	prev := in.prev
	in.prev = cur

	switch {
	case cur == 0 && prev == 0:
		return nil
	case cur == 0:
		in.gw.PointerUp(buttonFor(prev))
		return nil
	case cur == prev:
		return in.gw.PointerDrag(x, y)
	case prev != 0:
		in.gw.PointerUp(buttonFor(prev))
	}
	return in.gw.PointerDown(buttonFor(cur), x, y)
}

func buttonFor(m tcell.ButtonMask) input.Button {
	if m&tcell.Button1 != 0 {
		return input.ButtonPrimary
	}
	if m&tcell.Button2 != 0 {
		return input.ButtonSecondary
	}
	return input.ButtonNone
}
