// SPDX-License-Identifier: MIT

package audio

import "math"

// softStartDuration is the length of the linear fade-in applied by Sine
// when softStart is requested, chosen to suppress click transients.
const softStartDuration = 0.005

// Sine synthesizes amplitude·sin(2πft + phase) for dur seconds at fs Hz.
// With softStart a linear amplitude ramp covers the first 5 ms so the
// waveform does not begin with a click — useful when the clip feeds an
// onset detector and the edit point must not register as a transient.
func Sine(amplitude, freq, phase, dur float64, fs int, softStart bool) (*Clip, error) {
	n := int(math.Round(dur * float64(fs)))
	samples := make([]float64, n)
	for i := range samples {
		t := float64(i) / float64(fs)
		samples[i] = amplitude * math.Sin(2*math.Pi*freq*t+phase)
	}

	if softStart {
		ramp := int(float64(fs) * softStartDuration)
		if ramp > n {
			ramp = n
		}
		for i := 0; i < ramp; i++ {
			samples[i] *= float64(i) / float64(ramp)
		}
	}

	return NewClip(samples, fs, "")
}
