// SPDX-License-Identifier: MIT

package pitch

import (
	"math"

	"github.com/staccato-dev/staccato/timeseries"
)

// HzToMIDI converts a frequency to the (fractional) MIDI note number with
// A4 = 440 Hz = note 69. Non-positive frequencies map to 0 (unvoiced).
func HzToMIDI(hz float64) float64 {
	if hz <= 0 {
		return 0
	}

	return 69 + 12*math.Log2(hz/440)
}

// MIDIToHz converts a MIDI note number back to Hz. Note 0 maps to 0
// (unvoiced), mirroring HzToMIDI.
func MIDIToHz(midi float64) float64 {
	if midi == 0 {
		return 0
	}

	return 440 * math.Pow(2, (midi-69)/12)
}

// ToMIDI converts a pitch curve in Hz to MIDI note numbers.
func ToMIDI(curve *timeseries.Series) *timeseries.Series {
	data := curve.Floats()
	for i, v := range data {
		data[i] = HzToMIDI(v)
	}

	out, _ := timeseries.NewMulti(curve.SampleRate(), data, curve.NFeatures(),
		timeseries.WithStartTime(curve.StartTime()),
		timeseries.WithCaption(curve.Caption()))

	return out.Relabel("Pitch (MIDI)", "MIDI note")
}
