package scroll

import (
	"sort"
	"testing"
	"time"
)

// fakeClock schedules timer callbacks and runs them in time order.
type fakeClock struct {
	now    time.Duration
	timers []fakeTimer
}

type fakeTimer struct {
	at  time.Duration
	gen uint64
}

func (c *fakeClock) after(d time.Duration, gen uint64) {
	c.timers = append(c.timers, fakeTimer{at: c.now + d, gen: gen})
}

// advance moves time forward and returns the generations whose timers
// expired, in order.
func (c *fakeClock) advance(d time.Duration) []uint64 {
	c.now += d
	sort.Slice(c.timers, func(i, j int) bool { return c.timers[i].at < c.timers[j].at })
	var fired []uint64
	kept := c.timers[:0]
	for _, t := range c.timers {
		if t.at <= c.now {
			fired = append(fired, t.gen)
			continue
		}
		kept = append(kept, t)
	}
	c.timers = kept
	return fired
}

// TestReconcilerBurst verifies a burst reconciles exactly once after the last signal
func TestReconcilerBurst(t *testing.T) {
	r := Reconciler{Quiet: 250 * time.Millisecond}
	clock := &fakeClock{}
	reconciled := 0
	deliver := func(gens []uint64) {
		for _, g := range gens {
			if r.Fire(g) {
				reconciled++
			}
		}
	}

	clock.after(r.Quiet, r.Signal())
	deliver(clock.advance(100 * time.Millisecond))
	clock.after(r.Quiet, r.Signal())
	deliver(clock.advance(200 * time.Millisecond))

	// The first timer expired at 250ms but was superseded at 100ms.
	if reconciled != 0 {
		t.Fatalf("Expected no reconciliation yet, got %d", reconciled)
	}
	if !r.Pending() {
		t.Error("Expected a pending reconciliation")
	}

	deliver(clock.advance(50 * time.Millisecond))
	if reconciled != 1 {
		t.Fatalf("Expected exactly one reconciliation at 350ms, got %d", reconciled)
	}

	deliver(clock.advance(time.Second))
	if reconciled != 1 {
		t.Errorf("Expected no further reconciliation, got %d", reconciled)
	}
}

// TestReconcilerFireOnce verifies a generation cannot fire twice
func TestReconcilerFireOnce(t *testing.T) {
	var r Reconciler
	gen := r.Signal()
	if !r.Fire(gen) {
		t.Fatal("Expected first fire to succeed")
	}
	if r.Fire(gen) {
		t.Error("Expected second fire to be rejected")
	}
	if r.Pending() {
		t.Error("Expected nothing pending")
	}
}
