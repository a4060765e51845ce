// SPDX-License-Identifier: MIT

package pitch

import (
	"github.com/staccato-dev/staccato/aggregation"
	"github.com/staccato-dev/staccato/timeseries"
)

// DefaultYINThreshold is the aperiodicity tolerance of the absolute
// threshold step.
const DefaultYINThreshold = 0.15

// YINOption configures the YIN estimator.
type YINOption func(*yinConfig)

type yinConfig struct {
	threshold float64
}

// WithThreshold sets the aperiodicity tolerance.
func WithThreshold(t float64) YINOption { return func(c *yinConfig) { c.threshold = t } }

// YIN estimates the fundamental frequency of each analysis window with
// the YIN algorithm: squared difference against a lag-shifted copy,
// cumulative mean normalization, absolute thresholding and parabolic
// interpolation of the chosen lag. Windows with no lag under the
// threshold yield 0 (unvoiced).
func YIN(ts *timeseries.Series, windowSize, hopSize int, opts ...YINOption) (*timeseries.Series, error) {
	cfg := yinConfig{threshold: DefaultYINThreshold}
	for _, opt := range opts {
		opt(&cfg)
	}

	fs := ts.SampleRate().Float64()
	half := windowSize / 2
	diff := make([]float64, half)

	out, err := aggregation.SlidingWindow(ts, windowSize, hopSize, func(frame []float64) []float64 {
		yinDifference(frame, diff)
		yinNormalize(diff)
		tau := yinThreshold(diff, cfg.threshold)
		if tau < 0 {
			return []float64{0}
		}

		return []float64{fs / yinInterpolate(diff, tau)}
	})
	if err != nil {
		return nil, err
	}

	return out.Relabel("Pitch (YIN)", "Hz"), nil
}

// yinDifference fills diff[tau] with the squared difference between the
// frame and its tau-shifted copy over the first half of the window.
func yinDifference(frame, diff []float64) {
	half := len(diff)
	for tau := 0; tau < half; tau++ {
		var acc float64
		for i := 0; i < half; i++ {
			d := frame[i] - frame[i+tau]
			acc += d * d
		}
		diff[tau] = acc
	}
}

// yinNormalize replaces each entry with its cumulative mean normalized
// difference; lag 0 is pinned to 1.
func yinNormalize(diff []float64) {
	var running float64
	diff[0] = 1
	for tau := 1; tau < len(diff); tau++ {
		running += diff[tau]
		if running == 0 { // silent frame
			diff[tau] = 1
			continue
		}
		diff[tau] *= float64(tau) / running
	}
}

// yinThreshold returns the first lag whose normalized difference dips
// under the threshold, extended to the local minimum of the dip, or -1
// when every lag stays above it.
func yinThreshold(diff []float64, threshold float64) int {
	for tau := 2; tau < len(diff); tau++ {
		if diff[tau] < threshold {
			for tau+1 < len(diff) && diff[tau+1] < diff[tau] {
				tau++
			}

			return tau
		}
	}

	return -1
}

// yinInterpolate refines the integer lag with a parabolic fit through its
// neighbors.
func yinInterpolate(diff []float64, tau int) float64 {
	x0, x2 := tau-1, tau+1
	if x0 < 0 {
		x0 = tau
	}
	if x2 >= len(diff) {
		x2 = tau
	}

	switch {
	case x0 == tau:
		if diff[tau] > diff[x2] {
			return float64(x2)
		}

		return float64(tau)
	case x2 == tau:
		if diff[tau] > diff[x0] {
			return float64(x0)
		}

		return float64(tau)
	}

	s0, s1, s2 := diff[x0], diff[tau], diff[x2]
	denom := 2 * (2*s1 - s2 - s0)
	if denom == 0 {
		return float64(tau)
	}

	return float64(tau) + (s2-s0)/denom
}
