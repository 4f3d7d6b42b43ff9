package enemies

import "time"

// Clock is a monotonic millisecond clock. The manager reads it once per frame.
type Clock interface {
	NowMillis() int64
}

// SystemClock measures milliseconds since it was created, using the
// monotonic reading of time.Now.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) NowMillis() int64 {
	return time.Since(c.start).Milliseconds()
}

// StepClock only moves when advanced. Hosts with a fixed tick, such as the
// headless server, advance it once per tick.
type StepClock struct {
	now time.Duration
}

func (c *StepClock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

func (c *StepClock) NowMillis() int64 {
	return c.now.Milliseconds()
}
