package game

// tickEpsilon absorbs float drift when frame deltas sum to exactly one interval.
const tickEpsilon = 1e-9

// Clock converts variable frame time into a count of fixed simulation steps.
type Clock struct {
	Interval float64 // seconds per tick
	MaxSteps int     // ticks allowed per Advance; 0 means unbounded

	acc float64
}

func NewClock(interval float64, maxSteps int) *Clock {
	return &Clock{Interval: interval, MaxSteps: maxSteps}
}

// Advance adds dt seconds and returns how many ticks are now due. When more
// than MaxSteps are due the surplus time is discarded.
func (c *Clock) Advance(dt float64) int {
	if dt > 0 {
		c.acc += dt
	}
	if c.Interval <= 0 {
		return 0
	}
	n := int((c.acc + tickEpsilon) / c.Interval)
	if c.MaxSteps > 0 && n > c.MaxSteps {
		c.acc = 0
		return c.MaxSteps
	}
	c.acc -= float64(n) * c.Interval
	if c.acc < 0 {
		c.acc = 0
	}
	return n
}

// Reset drops any accumulated time.
func (c *Clock) Reset() {
	c.acc = 0
}

// Pending returns the accumulated time not yet spent on a tick.
func (c *Clock) Pending() float64 {
	return c.acc
}
