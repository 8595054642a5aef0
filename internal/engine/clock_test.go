package engine

import (
	"context"
	"testing"
	"time"
)

func TestStepCadence(t *testing.T) {
	var ticks, flushes int
	var lastDT float64

	c := New()
	c.OnTick = func(dt float64) {
		ticks++
		lastDT = dt
	}
	c.OnFlush = func() { flushes++ }

	for i := 0; i < 12; i++ {
		c.step()
	}

	if ticks != 12 {
		t.Errorf("got %d ticks, expected 12", ticks)
	}
	if flushes != 2 {
		t.Errorf("got %d flushes, expected 2 (every %d ticks)", flushes, c.FlushEvery)
	}
	if lastDT != 1.0 {
		t.Errorf("dt %v, expected 1.0 for a 1s interval", lastDT)
	}
	if c.Ticks() != 12 {
		t.Errorf("tick counter %d, expected 12", c.Ticks())
	}
}

func TestStepFlushOrderedAfterTick(t *testing.T) {
	var order []string
	c := &Clock{
		Interval:   time.Second,
		FlushEvery: 1,
		OnTick:     func(float64) { order = append(order, "tick") },
		OnFlush:    func() { order = append(order, "flush") },
	}

	c.step()
	if len(order) != 2 || order[0] != "tick" || order[1] != "flush" {
		t.Errorf("unexpected order %v, flush must see the ticked state", order)
	}
}

func TestStepNilCallbacks(t *testing.T) {
	c := New()
	for i := 0; i < 10; i++ {
		c.step() // must not panic
	}
	if c.Ticks() != 10 {
		t.Errorf("tick counter %d, expected 10", c.Ticks())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	fired := make(chan struct{}, 1)
	c := &Clock{
		Interval:   time.Millisecond,
		FlushEvery: 5,
		OnTick: func(float64) {
			select {
			case fired <- struct{}{}:
			default:
			}
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Run(ctx)
		close(done)
	}()

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("clock never ticked")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("clock did not stop on cancel")
	}
}
