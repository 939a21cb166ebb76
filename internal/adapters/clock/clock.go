// Package clock provides the logical clock that drives cache staleness.
package clock

import (
	"sync"
	"sync/atomic"
	"time"
)

// Ticking is a logical clock advanced by a wall-time ticker. Readings are
// plain tick counts; callers must not assume any relationship to wall time
// beyond monotonicity.
type Ticking struct {
	ticks    atomic.Uint64
	interval time.Duration
	stop     chan struct{}
	once     sync.Once
}

// NewTicking creates a stopped clock advancing once per interval.
func NewTicking(interval time.Duration) *Ticking {
	return &Ticking{
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start begins advancing the clock in a background goroutine.
func (c *Ticking) Start() {
	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.ticks.Add(1)
			case <-c.stop:
				return
			}
		}
	}()
}

// Stop halts the clock. Readings stay valid after Stop. Safe to call more
// than once.
func (c *Ticking) Stop() {
	c.once.Do(func() { close(c.stop) })
}

// Read returns the current tick count.
func (c *Ticking) Read() uint64 {
	return c.ticks.Load()
}

// Manual is a hand-driven logical clock for tests.
type Manual struct {
	ticks atomic.Uint64
}

// NewManual creates a manual clock starting at the given reading.
func NewManual(start uint64) *Manual {
	c := &Manual{}
	c.ticks.Store(start)
	return c
}

// Read returns the current reading.
func (c *Manual) Read() uint64 {
	return c.ticks.Load()
}

// Advance moves the clock forward by n ticks.
func (c *Manual) Advance(n uint64) {
	c.ticks.Add(n)
}
