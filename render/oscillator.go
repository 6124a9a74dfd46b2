package render

import (
	"fmt"
	"math"
)

// Oscillator is a phase-accumulating sine source for driving the
// pipeline without audio I/O.
type Oscillator struct {
	sampleRate float64
	frequency  float64
	amplitude  float64
	phase      float64
	step       float64
}

// NewOscillator creates a sine oscillator. The sample rate must be
// positive and finite; the frequency must stay below Nyquist.
func NewOscillator(sampleRate, frequency, amplitude float64) (*Oscillator, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("oscillator sample rate must be > 0 and finite: %f", sampleRate)
	}

	if frequency < 0 || frequency >= sampleRate*0.5 || math.IsNaN(frequency) {
		return nil, fmt.Errorf("oscillator frequency must be in [0, Nyquist): %f", frequency)
	}

	if math.IsNaN(amplitude) || math.IsInf(amplitude, 0) {
		return nil, fmt.Errorf("oscillator amplitude must be finite: %f", amplitude)
	}

	return &Oscillator{
		sampleRate: sampleRate,
		frequency:  frequency,
		amplitude:  amplitude,
		step:       2 * math.Pi * frequency / sampleRate,
	}, nil
}

// SampleRate returns the sample rate in Hz.
func (o *Oscillator) SampleRate() float64 { return o.sampleRate }

// Frequency returns the oscillator frequency in Hz.
func (o *Oscillator) Frequency() float64 { return o.frequency }

// Amplitude returns the peak amplitude.
func (o *Oscillator) Amplitude() float64 { return o.amplitude }

// NextSample advances the phase by one sample period and returns the
// next sine value.
func (o *Oscillator) NextSample() float64 {
	out := o.amplitude * math.Sin(o.phase)

	o.phase += o.step
	if o.phase >= 2*math.Pi {
		o.phase -= 2 * math.Pi
	}

	return out
}

// Fill writes successive samples into dst.
func (o *Oscillator) Fill(dst []float64) {
	for i := range dst {
		dst[i] = o.NextSample()
	}
}

// Reset rewinds the phase to zero.
func (o *Oscillator) Reset() {
	o.phase = 0
}
