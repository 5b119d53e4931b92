// Package audio plays short feedback tones through the system speaker.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the rate the speaker is initialised with.
const SampleRate = beep.SampleRate(44100)

// Default bounce tone.
const (
	DefaultFreq     = 880
	DefaultDuration = 50 * time.Millisecond
)

// Tone returns a sine tone of freq hertz lasting d. It fails when freq is
// not representable at sr (at or above the Nyquist frequency, or not
// positive).
func Tone(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	if freq <= 0 {
		return nil, fmt.Errorf("tone: frequency must be positive, got %v", freq)
	}
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("tone: %w", err)
	}
	return beep.Take(sr.N(d), sine), nil
}

// Player plays a tone each time Bounce is called.
type Player struct {
	Freq     float64
	Duration time.Duration
}

// NewPlayer initialises the speaker. Only one Player should exist per
// process; Close releases the speaker.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Player{Freq: DefaultFreq, Duration: DefaultDuration}, nil
}

// Bounce plays the configured tone without blocking. A tone that cannot be
// generated is skipped.
func (p *Player) Bounce() {
	s, err := Tone(SampleRate, p.Freq, p.Duration)
	if err != nil {
		return
	}
	speaker.Play(s)
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	speaker.Close()
}
