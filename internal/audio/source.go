package audio

import (
	"fmt"
	"math"
)

// Source produces the next sample. A Source is stateful and must only be
// called from one goroutine.
type Source func() float64

// phasor returns a function yielding the phase in [0,1) of each
// successive sample of a freq Hz cycle.
func phasor(freq float64, sampleRate int) func() float64 {
	step := freq / float64(sampleRate)
	var phase float64
	return func() float64 {
		p := phase
		phase += step
		phase -= math.Floor(phase)
		return p
	}
}

// Saw returns a rising sawtooth at freq Hz.
func Saw(freq float64, sampleRate int) Source {
	next := phasor(freq, sampleRate)
	return func() float64 {
		return next()*2 - 1
	}
}

// Sine returns a sine wave at freq Hz.
func Sine(freq float64, sampleRate int) Source {
	next := phasor(freq, sampleRate)
	return func() float64 {
		return math.Sin(2 * math.Pi * next())
	}
}

// Silence always returns 0.
func Silence() float64 {
	return 0
}

// ForWaveform returns the oscillator named by waveform ("saw" or "sine").
func ForWaveform(waveform string, freq float64, sampleRate int) (Source, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("audio: sample rate %d must be positive", sampleRate)
	}
	switch waveform {
	case "saw":
		return Saw(freq, sampleRate), nil
	case "sine":
		return Sine(freq, sampleRate), nil
	}
	return nil, fmt.Errorf("audio: unknown waveform %q", waveform)
}

// Gain scales src by g.
func Gain(src Source, g float64) Source {
	return func() float64 {
		return src() * g
	}
}
