package core

import "time"

// DefaultMaxDelta caps a single frame's elapsed time. A stalled terminal or a
// suspended process would otherwise teleport every entity across the field.
const DefaultMaxDelta = 0.25

// Clock converts wall-clock tick timestamps into per-frame elapsed seconds.
// The race never reads the wall clock itself; platforms own a Clock and feed
// its output to the simulation.
type Clock struct {
	MaxDelta float64 // Upper bound on a single delta, in seconds (0 = no cap)

	last    time.Time
	started bool
}

// NewClock creates a clock with the default delta cap.
func NewClock() *Clock {
	return &Clock{MaxDelta: DefaultMaxDelta}
}

// Tick records now and returns the seconds elapsed since the previous tick.
// The first tick returns 0. The result is never negative.
func (c *Clock) Tick(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	dt := now.Sub(c.last).Seconds()
	c.last = now

	if dt < 0 {
		return 0
	}
	if c.MaxDelta > 0 && dt > c.MaxDelta {
		return c.MaxDelta
	}
	return dt
}

// Reset forgets the previous tick so the next Tick returns 0.
func (c *Clock) Reset() {
	c.started = false
}
