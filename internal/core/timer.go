package core

import "time"

// DefaultTickInterval is the simulation period used when none is configured.
const DefaultTickInterval = 250 * time.Millisecond

// maxCatchUp bounds how many ticks a single frame may run after a stall.
const maxCatchUp = 4

// FixedStep decouples simulation ticks from the display refresh rate. Each frame
// reports its timestamp and receives the number of ticks that are due.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller ticking every interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the tick period. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	f.step = interval
}

// Interval returns the configured tick period.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Reset forgets the previous frame timestamp and any accumulated time.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// Due accumulates the time elapsed since the previous frame and returns how many
// ticks should run now. The first frame after a Reset only records its timestamp.
func (f *FixedStep) Due(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta < 0 {
		return 0
	}
	f.accumulator += delta
	n := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		n++
		if n == maxCatchUp {
			f.accumulator = 0
			break
		}
	}
	return n
}
