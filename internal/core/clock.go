package core

import "time"

// MaxFrameDT is the longest frame, in seconds, a clock will report.
const MaxFrameDT = 0.1

// FrameClock turns wall-clock tick times into per-frame delta seconds.
type FrameClock struct {
	nominal float64
	last    time.Time
	started bool
}

// NewFrameClock creates a clock for the given target tick rate.
// The first Tick returns the nominal frame time 1/tickRate.
func NewFrameClock(tickRate int) *FrameClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FrameClock{nominal: 1.0 / float64(tickRate)}
}

// Tick records now and returns the elapsed seconds since the previous tick,
// clamped to [0, MaxFrameDT].
func (c *FrameClock) Tick(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return c.nominal
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return ClampF(dt, 0, MaxFrameDT)
}

// Reset forgets the previous tick so the next one returns the nominal time.
func (c *FrameClock) Reset() {
	c.started = false
}
