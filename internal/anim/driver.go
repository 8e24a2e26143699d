package anim

import (
	"log/slog"
	"time"
)

// Scheduler asks the host to deliver one more frame after delay. A later
// call replaces an earlier pending one.
type Scheduler interface {
	ScheduleFrame(delay time.Duration) error
}

// Driver paces the frame loop. It is idle until Start and goes idle again on
// Stop; both are idempotent.
type Driver struct {
	sched  Scheduler
	delay  time.Duration
	active bool
	log    *slog.Logger
}

// NewDriver returns an idle driver that spaces frames delay apart.
func NewDriver(sched Scheduler, delay time.Duration, log *slog.Logger) *Driver {
	return &Driver{sched: sched, delay: delay, log: OrNop(log)}
}

func (d *Driver) Active() bool        { return d.active }
func (d *Driver) Delay() time.Duration { return d.delay }

// Start moves the driver to running and requests the first frame right away.
func (d *Driver) Start() {
	if d.active {
		return
	}
	d.active = true
	d.schedule(0)
}

// Stop moves the driver to idle. A frame already scheduled is still
// delivered by the host but Tick ignores it.
func (d *Driver) Stop() {
	d.active = false
}

// Tick is called for every frame the host delivers. It reports whether the
// caller should run one update; when it does, the next frame is scheduled.
func (d *Driver) Tick() bool {
	if !d.active {
		return false
	}
	d.schedule(d.delay)
	return true
}

// schedule never fails the loop: an error leaves no frame pending, so the
// animation stalls where it is.
func (d *Driver) schedule(delay time.Duration) {
	if err := d.sched.ScheduleFrame(delay); err != nil {
		d.log.Debug("frame not scheduled", "delay", delay, "err", err)
	}
}
