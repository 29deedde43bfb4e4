package ui

import (
	"fmt"

	"github.com/JavaHello/game-life/internal/core"
)

// ParameterProvider exposes the status values rendered by the HUD.
type ParameterProvider interface {
	Parameters() core.ParameterSnapshot
}

var helpLines = []string{
	"Space  pause / resume",
	"R      reset random",
	"C      clear",
	"LMB    paint alive",
	"RMB    paint dead",
	"Q/Esc  quit",
}

// statusLines formats the HUD text. The generation shown is the one of the
// last full redraw so it always matches the board on screen.
func statusLines(s core.ParameterSnapshot, drawn int64) []string {
	lines := []string{fmt.Sprintf("Generation: %d", drawn)}
	for _, g := range s.Groups {
		lines = append(lines, "", g.Name)
		for _, p := range g.Params {
			if p.Key == "generation" {
				continue
			}
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}
