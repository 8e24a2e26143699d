package game

import (
	"errors"
	"time"
)

// ErrNegativeDelay is returned when a frame is scheduled in the past.
var ErrNegativeDelay = errors.New("negative frame delay")

// FrameGate schedules frames on top of ebiten's fixed tick loop. ebiten
// calls Update every tick; Take reports whether the scheduled frame is due.
// Only one frame is pending at a time.
type FrameGate struct {
	now     func() time.Time
	due     time.Time
	pending bool
}

// NewFrameGate returns a gate using now as its clock, time.Now if nil.
func NewFrameGate(now func() time.Time) *FrameGate {
	if now == nil {
		now = time.Now
	}
	return &FrameGate{now: now}
}

func (g *FrameGate) ScheduleFrame(delay time.Duration) error {
	if delay < 0 {
		return ErrNegativeDelay
	}
	g.due = g.now().Add(delay)
	g.pending = true
	return nil
}

// Take consumes the pending frame once its delay has elapsed.
func (g *FrameGate) Take() bool {
	if !g.pending || g.now().Before(g.due) {
		return false
	}
	g.pending = false
	return true
}

func (g *FrameGate) Pending() bool { return g.pending }
