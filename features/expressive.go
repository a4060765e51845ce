// SPDX-License-Identifier: MIT

package features

import (
	"fmt"

	"github.com/staccato-dev/staccato/timeseries"
	"github.com/staccato-dev/staccato/timing"
)

// LocalTempo estimates the tempo, in beats per minute, of each
// inter-onset interval given the nominal (score-based) duration of every
// interval in beats-normalized seconds. len(nominalIOIs) must equal
// len(onsets)−1.
func LocalTempo(onsets timing.PointList, nominalIOIs []float64) ([]float64, error) {
	if len(onsets) < 2 {
		return nil, fmt.Errorf("%w: %d onsets", ErrTooFewItems, len(onsets))
	}
	if len(nominalIOIs) != len(onsets)-1 {
		return nil, fmt.Errorf("%w: %d intervals vs %d nominal durations",
			ErrLengthMismatch, len(onsets)-1, len(nominalIOIs))
	}

	out := make([]float64, len(nominalIOIs))
	for i := range out {
		ioi := onsets[i+1].Sub(onsets[i]).Float64()
		out[i] = 60 * nominalIOIs[i] / ioi
	}

	return out, nil
}

// LegatoIndex estimates, for each note transition, how connected the
// performance is: the ratio of the RMS area over the transition to the
// trapezoid spanned by the boundary RMS values, clipped to [0, 1]. Values
// near 1 indicate legato, near 0 staccato.
//
// The transition of note i spans releaseStarts[i] to attackEnds[i+1], so
// the two lists must be equally long and one index is produced per
// consecutive pair.
func LegatoIndex(ts *timeseries.Series, releaseStarts, attackEnds timing.PointList, windowSize, hopSize int) ([]float64, error) {
	if len(releaseStarts) != len(attackEnds) {
		return nil, fmt.Errorf("%w: %d release starts vs %d attack ends",
			ErrLengthMismatch, len(releaseStarts), len(attackEnds))
	}
	if len(releaseStarts) < 2 {
		return nil, fmt.Errorf("%w: %d notes", ErrTooFewItems, len(releaseStarts))
	}

	env, err := RMS(ts, windowSize, hopSize)
	if err != nil {
		return nil, err
	}

	out := make([]float64, 0, len(releaseStarts)-1)
	for i := 0; i+1 < len(releaseStarts); i++ {
		transition, err := timing.NewSegment(releaseStarts[i], attackEnds[i+1])
		if err != nil {
			return nil, err
		}
		seg, err := env.SliceSegment(transition)
		if err != nil {
			return nil, err
		}
		out = append(out, legato(seg.Row(0)))
	}

	return out, nil
}

// legato compares the RMS area of one transition against the trapezoid
// between its boundary levels.
func legato(rms []float64) float64 {
	if len(rms) == 0 {
		return 0
	}

	first, last := rms[0], rms[len(rms)-1]
	lo, hi := first, last
	if lo > hi {
		lo, hi = hi, lo
	}
	n := float64(len(rms))

	triangle := (hi - lo) * n / 2
	rectangle := lo * (n + 1)
	total := triangle + rectangle
	if total == 0 {
		return 0
	}

	var sum float64
	for _, v := range rms {
		sum += v
	}
	idx := sum / total
	if idx < 0 {
		return 0
	}
	if idx > 1 {
		return 1
	}

	return idx
}
