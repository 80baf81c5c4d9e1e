// Package testutil holds helpers shared by tests.
package testutil

import (
	"sync"
	"time"
)

// StepClock is a deterministic clock for tests. Each call to Now returns a
// time one step after the previous one, so timestamps are strictly
// increasing and reproducible.
//
// Thread-safety: All methods are safe for concurrent use.
type StepClock struct {
	mu    sync.Mutex
	start time.Time
	now   time.Time
	step  time.Duration
}

// NewStepClock creates a clock whose first Now returns start+step.
func NewStepClock(start time.Time, step time.Duration) *StepClock {
	return &StepClock{start: start, now: start, step: step}
}

// Now advances the clock by one step and returns the new time.
// It has the signature of time.Now so it can replace it.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(c.step)
	return c.now
}

// Current returns the last time handed out, or the start time.
func (c *StepClock) Current() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Reset rewinds the clock to its start time.
func (c *StepClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.start
}
