// Package testutil provides deterministic helpers for harness and test use.
package testutil

import (
	"sync"
	"time"
)

// DeterministicClock is a thread-safe wall clock that advances by a fixed
// step on every reading. It lets the diagnostic harness produce identical
// per-case durations across runs, which keeps golden report files stable.
//
// Unlike time.Now, the same sequence of readings always yields the same
// sequence of instants. Reset restores the epoch for test reuse.
type DeterministicClock struct {
	mu    sync.Mutex
	epoch time.Time
	step  time.Duration
	now   time.Time
}

// NewDeterministicClock creates a clock starting at a fixed epoch
// (2024-01-01T00:00:00Z) advancing one millisecond per reading.
func NewDeterministicClock() *DeterministicClock {
	epoch := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &DeterministicClock{epoch: epoch, step: time.Millisecond, now: epoch}
}

// Now returns the current instant and advances the clock by one step.
func (c *DeterministicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

// Reset rewinds the clock to its epoch. After Reset, the next reading
// equals the first reading ever taken.
func (c *DeterministicClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.epoch
}
