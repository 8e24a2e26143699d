package game

import (
	"errors"
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func newFakeClock() *fakeClock               { return &fakeClock{t: time.Unix(1000, 0)} }
func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFrameGateNothingPending(t *testing.T) {
	g := NewFrameGate(newFakeClock().now)
	if g.Pending() || g.Take() {
		t.Error("new gate has a pending frame")
	}
}

func TestFrameGateImmediate(t *testing.T) {
	g := NewFrameGate(newFakeClock().now)
	if err := g.ScheduleFrame(0); err != nil {
		t.Fatal(err)
	}
	if !g.Take() {
		t.Fatal("zero-delay frame not due")
	}
	if g.Take() {
		t.Error("frame taken twice")
	}
}

func TestFrameGateDelay(t *testing.T) {
	clk := newFakeClock()
	g := NewFrameGate(clk.now)
	if err := g.ScheduleFrame(30 * time.Millisecond); err != nil {
		t.Fatal(err)
	}

	clk.advance(16 * time.Millisecond)
	if g.Take() {
		t.Fatal("frame released after 16ms of 30ms")
	}
	clk.advance(16 * time.Millisecond)
	if !g.Take() {
		t.Fatal("frame not released after 32ms")
	}
	if g.Pending() {
		t.Error("still pending after Take")
	}
}

func TestFrameGateReschedule(t *testing.T) {
	clk := newFakeClock()
	g := NewFrameGate(clk.now)
	g.ScheduleFrame(time.Second)
	g.ScheduleFrame(0)
	if !g.Take() {
		t.Error("later schedule did not replace the earlier one")
	}
}

func TestFrameGateNegativeDelay(t *testing.T) {
	g := NewFrameGate(newFakeClock().now)
	if err := g.ScheduleFrame(-time.Millisecond); !errors.Is(err, ErrNegativeDelay) {
		t.Fatalf("ScheduleFrame(-1ms) = %v, want ErrNegativeDelay", err)
	}
	if g.Pending() {
		t.Error("failed schedule left a pending frame")
	}
}

func TestNewFrameGateDefaultClock(t *testing.T) {
	g := NewFrameGate(nil)
	g.ScheduleFrame(0)
	if !g.Take() {
		t.Error("zero-delay frame not due with the real clock")
	}
}
