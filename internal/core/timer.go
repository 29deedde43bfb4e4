package core

import "time"

// FixedStep converts wall-clock time into whole simulation quanta at a steady
// rate, independent of how often the host loop polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time

	now func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given quantum period.
func NewFixedStep(period time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetPeriod(period)
	fs.accumulator = fs.step
	return fs
}

// SetPeriod changes the quantum length. Non-positive values fall back to 10ms.
func (f *FixedStep) SetPeriod(period time.Duration) {
	if period <= 0 {
		period = 10 * time.Millisecond
	}
	f.step = period
}

// Period returns the quantum length.
func (f *FixedStep) Period() time.Duration { return f.step }

// Due reports how many quanta elapsed since the previous call, at most limit.
// Time beyond limit quanta is dropped so a stalled host does not burst.
func (f *FixedStep) Due(limit int) int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := 0
	for f.accumulator >= f.step && n < limit {
		f.accumulator -= f.step
		n++
	}
	if f.accumulator >= f.step {
		f.accumulator %= f.step
	}
	return n
}
