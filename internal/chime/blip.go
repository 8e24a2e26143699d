// Package chime plays a short tone each time a node settles.
package chime

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Blip is a decaying sine tone. It implements beep.Streamer and ends after
// its duration.
type Blip struct {
	freq   float64
	volume float64
	rate   beep.SampleRate
	length int
	pos    int
}

func NewBlip(rate beep.SampleRate, freq float64, d time.Duration, volume float64) *Blip {
	return &Blip{
		freq:   freq,
		volume: volume,
		rate:   rate,
		length: rate.N(d),
	}
}

func (b *Blip) Stream(samples [][2]float64) (int, bool) {
	if b.pos >= b.length {
		return 0, false
	}
	n := 0
	for i := range samples {
		if b.pos >= b.length {
			break
		}
		env := 1 - float64(b.pos)/float64(b.length)
		v := b.volume * env * math.Sin(2*math.Pi*b.freq*float64(b.pos)/float64(b.rate))
		samples[i][0], samples[i][1] = v, v
		b.pos++
		n++
	}
	return n, true
}

func (b *Blip) Err() error { return nil }

// Len is the total number of samples the blip produces.
func (b *Blip) Len() int { return b.length }

// pentatonic semitone offsets, one per node position.
var pentatonic = []int{0, 2, 4, 7, 9}

const baseFreq = 523.25 // C5

// Pitch returns the tone for a node settling at value. Nodes climb a major
// pentatonic scale; collapsing (value 0) sounds an octave lower.
func Pitch(index int, value float64) float64 {
	octave, step := index/len(pentatonic), index%len(pentatonic)
	semis := float64(pentatonic[step] + 12*octave)
	f := baseFreq * math.Pow(2, semis/12)
	if value < 0.5 {
		f /= 2
	}
	return f
}
