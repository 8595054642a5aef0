// Package engine provides the simulation clock: a fixed-interval loop that
// drives the economy tick and the periodic persistence flush for the life
// of the process.
package engine

import (
	"context"
	"log/slog"
	"time"
)

// Default cadences: the economy recomputes every second, the save flushes
// every fifth tick.
const (
	DefaultInterval   = time.Second
	DefaultFlushEvery = 5
)

// Clock fires OnTick once per interval and OnFlush every FlushEvery ticks.
// Ticks are assumed cheap enough to finish before the next fires; the
// ticker drops fires rather than queueing them if that ever fails.
type Clock struct {
	Interval   time.Duration
	FlushEvery int

	OnTick  func(dt float64)
	OnFlush func()

	tick uint64
}

// New creates a clock with the default cadences.
func New() *Clock {
	return &Clock{
		Interval:   DefaultInterval,
		FlushEvery: DefaultFlushEvery,
	}
}

// Run drives the loop until the context is cancelled. The clock is never
// paused during normal operation; cancellation only happens at process
// shutdown.
func (c *Clock) Run(ctx context.Context) {
	slog.Info("simulation clock started",
		"interval", c.Interval, "flush_every", c.FlushEvery)

	ticker := time.NewTicker(c.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("simulation clock stopped", "ticks", c.tick)
			return
		case <-ticker.C:
			c.step()
		}
	}
}

// step advances the clock one tick and fires the flush on its cadence.
func (c *Clock) step() {
	c.tick++
	if c.OnTick != nil {
		c.OnTick(c.Interval.Seconds())
	}
	if c.OnFlush != nil && c.FlushEvery > 0 && c.tick%uint64(c.FlushEvery) == 0 {
		c.OnFlush()
	}
}

// Ticks returns the number of ticks fired so far.
func (c *Clock) Ticks() uint64 {
	return c.tick
}
