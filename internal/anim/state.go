// Package anim holds the scale animation state machine and the bouncing
// chain traversal that decides which node animates next.
package anim

import "math"

// Status reports what a single Advance did.
type Status int

const (
	// InProgress means the step has not reached its boundary yet, or the
	// state was idle.
	InProgress Status = iota
	// Settled means this call finished the step.
	Settled
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in-progress"
	case Settled:
		return "settled"
	}
	return "unknown"
}

// AdvanceResult is returned by every Advance/Update call. Value is only
// meaningful when Status is Settled and holds the new committed boundary.
type AdvanceResult struct {
	Status Status
	Value  float64
}

// Settled reports whether the step completed on this call.
func (r AdvanceResult) Settled() bool { return r.Status == Settled }

// ScaleState is the per-node animated scalar.
//
// While idle (direction 0) scale equals committed. While animating, scale
// moves by rate*direction per Advance until it passes committed±1, where it
// is clamped and becomes the new committed value.
type ScaleState struct {
	scale     float64
	direction float64
	committed float64
	rate      float64
}

// NewScaleState returns an idle state at 0 that moves by rate per frame.
func NewScaleState(rate float64) ScaleState {
	return ScaleState{rate: rate}
}

func (s *ScaleState) Scale() float64     { return s.scale }
func (s *ScaleState) Direction() float64 { return s.direction }
func (s *ScaleState) Committed() float64 { return s.committed }
func (s *ScaleState) Idle() bool         { return s.direction == 0 }

// Advance moves the scale one frame.
func (s *ScaleState) Advance() AdvanceResult {
	s.scale += s.rate * s.direction
	if math.Abs(s.scale-s.committed) > 1.0 {
		s.scale = s.committed + s.direction
		s.direction = 0
		s.committed = s.scale
		return AdvanceResult{Status: Settled, Value: s.committed}
	}
	return AdvanceResult{Status: InProgress}
}

// BeginStep starts a step away from the committed boundary: up from 0, down
// from 1. It returns false and changes nothing when a step is already running.
func (s *ScaleState) BeginStep() bool {
	if s.direction != 0 {
		return false
	}
	s.direction = 1 - 2*s.committed
	return true
}
