package core

import "time"

// FixedStep paces a loop at a steady ticks-per-second rate.
type FixedStep struct {
	step time.Duration
	last time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now, sleep: time.Sleep}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. Non-positive values fall back to 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the duration of a single tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// Wait blocks until one tick has elapsed since the previous call. The first
// call returns immediately.
func (f *FixedStep) Wait() {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
		return
	}
	next := f.last.Add(f.step)
	if d := next.Sub(now); d > 0 {
		f.sleep(d)
		f.last = next
		return
	}
	// Running behind: resynchronise instead of bursting to catch up.
	f.last = now
}
