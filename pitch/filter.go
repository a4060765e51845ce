// SPDX-License-Identifier: MIT

package pitch

import (
	"fmt"
	"math"

	"github.com/staccato-dev/staccato/timeseries"
)

// DefaultDeltaMax is the relative-change tolerance of Filter.
const DefaultDeltaMax = 0.04

// Filter smooths a noisy pitch curve. Samples that jump away from both
// neighbors by more than deltaMax (relative) while the neighbors agree
// with each other are replaced by the neighbor mean; isolated voiced
// samples between two unvoiced (zero) neighbors are zeroed.
func Filter(curve *timeseries.Series, deltaMax float64) *timeseries.Series {
	data := curve.Floats()
	n := len(data)
	out := append([]float64(nil), data...)

	for i := range data {
		var prev, next float64
		if i > 0 {
			prev = data[i-1]
		}
		if i < n-1 {
			next = data[i+1]
		}

		if prev == 0 && next == 0 {
			out[i] = 0
			continue
		}

		neighborsAgree := math.Abs(next-prev) < (next+prev)/2*deltaMax
		jumps := math.Abs(data[i]-prev) > data[i]*deltaMax ||
			math.Abs(data[i]-next) > data[i]*deltaMax
		if neighborsAgree && jumps {
			out[i] = (prev + next) / 2
		}
	}

	res, _ := timeseries.New(curve.SampleRate(), out,
		timeseries.WithStartTime(curve.StartTime()),
		timeseries.WithCaption(curve.Caption()))

	return res.Relabel("Pitch (filtered)", "Hz")
}

// Mode smooths a pitch curve on a semitone grid: each sample is replaced
// by the most frequent rounded MIDI note within the centered window,
// converted back to Hz. Ties keep the lower note; unvoiced samples stay 0
// when 0 wins the vote. window must be positive.
func Mode(curve *timeseries.Series, window int) (*timeseries.Series, error) {
	if window < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadWindow, window)
	}

	data := curve.Floats()
	notes := make([]int, len(data))
	for i, v := range data {
		notes[i] = int(math.Round(HzToMIDI(v)))
	}

	half := window / 2
	out := make([]float64, len(data))
	counts := make(map[int]int, window)
	for i := range data {
		lo, hi := i-half, i+half+1
		if lo < 0 {
			lo = 0
		}
		if hi > len(data) {
			hi = len(data)
		}

		clear(counts)
		for j := lo; j < hi; j++ {
			counts[notes[j]]++
		}
		best, bestCount := notes[i], 0
		for note, c := range counts {
			if c > bestCount || (c == bestCount && note < best) {
				best, bestCount = note, c
			}
		}
		out[i] = MIDIToHz(float64(best))
	}

	res, err := timeseries.New(curve.SampleRate(), out,
		timeseries.WithStartTime(curve.StartTime()),
		timeseries.WithCaption(curve.Caption()))
	if err != nil {
		return nil, err
	}

	return res.Relabel("Pitch (mode)", "Hz"), nil
}
