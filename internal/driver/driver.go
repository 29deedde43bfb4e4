// Package driver issues periodic simulation quanta.
package driver

import (
	"context"
	"time"
)

// DefaultPeriod matches a 10ms host timer.
const DefaultPeriod = 10 * time.Millisecond

// Ticker is anything advanced once per quantum.
type Ticker interface {
	Tick() bool
}

// Driver calls Tick on its target at a fixed period.
type Driver struct {
	target Ticker
	period time.Duration
}

// New returns a driver for target. Non-positive periods use DefaultPeriod.
func New(target Ticker, period time.Duration) *Driver {
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Driver{target: target, period: period}
}

// Period returns the quantum length.
func (d *Driver) Period() time.Duration { return d.period }

// OnQuantum performs a single tick and reports whether it requested a redraw.
func (d *Driver) OnQuantum() bool { return d.target.Tick() }

// Run ticks until ctx is cancelled. A tick in progress always completes.
func (d *Driver) Run(ctx context.Context) error {
	t := time.NewTicker(d.period)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			d.OnQuantum()
		}
	}
}
