package structure

import "time"

// Clock tells the time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant until it is moved with
// Advance or Set. It is meant for tests and demos.
type FixedClock struct {
	T time.Time
}

func (c *FixedClock) Now() time.Time { return c.T }

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) { c.T = c.T.Add(d) }

// Set moves the clock to t.
func (c *FixedClock) Set(t time.Time) { c.T = t }

// RemainingMinutes returns the minutes left until deadline as seen from
// now, clamped at zero.
func RemainingMinutes(deadline, now time.Time) float64 {
	m := deadline.Sub(now).Minutes()
	if m < 0 {
		return 0
	}
	return m
}
