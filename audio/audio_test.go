package audio

import (
	"math"
	"testing"
	"time"
)

func TestToneLength(t *testing.T) {
	s, err := Tone(SampleRate, DefaultFreq, DefaultDuration)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := SampleRate.N(DefaultDuration)
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
}

func TestToneAmplitude(t *testing.T) {
	s, err := Tone(SampleRate, 440, 10*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	buf := make([][2]float64, SampleRate.N(10*time.Millisecond))
	n, _ := s.Stream(buf)
	var peak float64
	for _, smp := range buf[:n] {
		peak = math.Max(peak, math.Abs(smp[0]))
		if smp[0] != smp[1] {
			t.Fatalf("channels differ: %v", smp)
		}
	}
	if peak < 0.5 || peak > 1.0001 {
		t.Errorf("peak amplitude = %v, want within (0.5, 1]", peak)
	}
}

func TestToneInvalidFrequency(t *testing.T) {
	for _, freq := range []float64{0, -10, float64(SampleRate)} {
		if _, err := Tone(SampleRate, freq, time.Millisecond); err == nil {
			t.Errorf("Tone(freq=%v) returned nil error", freq)
		}
	}
}
