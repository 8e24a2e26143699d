package anim

import (
	"testing"

	"github.com/iburimskiy/tri-rot-bouncy/internal/config"
)

// runStep advances s until it settles and returns the number of frames taken.
func runStep(t *testing.T, s *ScaleState) (AdvanceResult, int) {
	t.Helper()
	for frames := 1; frames <= 1000; frames++ {
		if res := s.Advance(); res.Settled() {
			return res, frames
		}
	}
	t.Fatal("step never settled")
	return AdvanceResult{}, 0
}

func TestScaleStateStartsIdle(t *testing.T) {
	s := NewScaleState(config.StepRate)
	if !s.Idle() || s.Scale() != 0 || s.Committed() != 0 {
		t.Fatalf("new state = (scale %v, dir %v, committed %v), want idle at 0", s.Scale(), s.Direction(), s.Committed())
	}

	res := s.Advance()
	if res.Settled() {
		t.Error("Advance on idle state settled")
	}
	if s.Scale() != 0 {
		t.Errorf("Advance on idle state moved scale to %v", s.Scale())
	}
}

func TestBeginStepDirection(t *testing.T) {
	s := NewScaleState(config.StepRate)
	if !s.BeginStep() {
		t.Fatal("BeginStep on idle state = false")
	}
	if s.Direction() != 1 {
		t.Fatalf("direction from committed 0 = %v, want 1", s.Direction())
	}
	runStep(t, &s)

	if !s.BeginStep() {
		t.Fatal("BeginStep after settle = false")
	}
	if s.Direction() != -1 {
		t.Fatalf("direction from committed 1 = %v, want -1", s.Direction())
	}
}

func TestBeginStepIgnoredWhileAnimating(t *testing.T) {
	s := NewScaleState(config.StepRate)
	s.BeginStep()
	s.Advance()
	s.Advance()
	scale := s.Scale()

	if s.BeginStep() {
		t.Error("BeginStep mid-animation = true, want false")
	}
	if s.Direction() != 1 || s.Scale() != scale || s.Committed() != 0 {
		t.Errorf("BeginStep mid-animation changed state: scale %v dir %v committed %v", s.Scale(), s.Direction(), s.Committed())
	}
}

func TestAdvanceMonotonicAndExact(t *testing.T) {
	tests := []struct {
		name string
		rate float64
	}{
		{"default rate", config.StepRate},
		{"coarse rate", 0.3},
		{"rate past boundary", 1.7},
		{"fine rate", 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScaleState(tt.rate)
			for _, want := range []float64{1, 0, 1} {
				s.BeginStep()
				prev := s.Scale()
				up := s.Direction() > 0
				for {
					res := s.Advance()
					cur := s.Scale()
					if cur < 0 || cur > 1 {
						t.Fatalf("scale %v left [0,1]", cur)
					}
					if up && cur < prev || !up && cur > prev {
						t.Fatalf("scale moved backwards: %v -> %v", prev, cur)
					}
					prev = cur
					if res.Settled() {
						if res.Value != want || s.Committed() != want || cur != want {
							t.Fatalf("settled at value %v committed %v scale %v, want %v", res.Value, s.Committed(), cur, want)
						}
						break
					}
				}
				if !s.Idle() {
					t.Fatal("state not idle after settle")
				}
			}
		})
	}
}

func TestDefaultStepFrameCount(t *testing.T) {
	s := NewScaleState(config.StepRate)
	s.BeginStep()
	_, frames := runStep(t, &s)
	if frames < 50 || frames > 51 {
		t.Errorf("step took %d frames, want 50 or 51", frames)
	}
}

func TestStatusString(t *testing.T) {
	if got := InProgress.String(); got != "in-progress" {
		t.Errorf("InProgress.String() = %q", got)
	}
	if got := Settled.String(); got != "settled" {
		t.Errorf("Settled.String() = %q", got)
	}
	if got := Status(9).String(); got != "unknown" {
		t.Errorf("Status(9).String() = %q", got)
	}
}
