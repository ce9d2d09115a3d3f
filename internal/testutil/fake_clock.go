// Package testutil provides fakes shared by package tests.
package testutil

import "time"

// FakeClock is a manual clock; Sleep advances Now instantly.
type FakeClock struct {
	now    time.Time
	Sleeps []time.Duration
	// OnSleep runs after each Sleep advances the clock.
	OnSleep func()
}

// NewFakeClock returns a clock starting at a fixed instant.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Unix(1_700_000_000, 0)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	return c.now
}

// Sleep records d and advances the clock by it.
func (c *FakeClock) Sleep(d time.Duration) {
	c.Sleeps = append(c.Sleeps, d)
	c.now = c.now.Add(d)
	if c.OnSleep != nil {
		c.OnSleep()
	}
}

// Advance moves the clock forward without recording a sleep.
func (c *FakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Slept returns the sum of recorded sleeps.
func (c *FakeClock) Slept() time.Duration {
	var total time.Duration
	for _, d := range c.Sleeps {
		total += d
	}
	return total
}
