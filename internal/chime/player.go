package chime

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/tri-rot-bouncy/internal/anim"
)

const (
	SampleRate = beep.SampleRate(44100)
	blipLength = 120 * time.Millisecond
	volume     = 0.25
)

// Player sends a Blip to the speaker for every settle. It is silent until
// Init succeeds.
type Player struct {
	rate  beep.SampleRate
	ready bool
	log   *slog.Logger
}

// NewPlayer returns a silent player. A nil log discards its output.
func NewPlayer(log *slog.Logger) *Player {
	return &Player{rate: SampleRate, log: anim.OrNop(log)}
}

// Init opens the audio device.
func (p *Player) Init() error {
	if p.ready {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(time.Second/20)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.ready = true
	return nil
}

func (p *Player) Ready() bool { return p.ready }

// Settled plays the tone for node index resting at value.
func (p *Player) Settled(index int, value float64) {
	if !p.ready {
		return
	}
	f := Pitch(index, value)
	p.log.Debug("chime", "node", index, "value", value, "freq", f)
	speaker.Play(NewBlip(p.rate, f, blipLength, volume))
}
