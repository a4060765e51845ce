// SPDX-License-Identifier: MIT

package features

import (
	"math"

	"github.com/staccato-dev/staccato/aggregation"
	"github.com/staccato-dev/staccato/timeseries"
)

// PeakEnvelope reduces each window to the maximum absolute amplitude.
func PeakEnvelope(ts *timeseries.Series, windowSize, hopSize int) (*timeseries.Series, error) {
	out, err := aggregation.SlidingWindow(ts, windowSize, hopSize, func(frame []float64) []float64 {
		var peak float64
		for _, v := range frame {
			if a := math.Abs(v); a > peak {
				peak = a
			}
		}

		return []float64{peak}
	})
	if err != nil {
		return nil, err
	}

	return out.Relabel("PeakEnvelope", "amplitude"), nil
}

// RMS reduces each window to its root mean square amplitude.
func RMS(ts *timeseries.Series, windowSize, hopSize int) (*timeseries.Series, error) {
	out, err := aggregation.SlidingWindow(ts, windowSize, hopSize, func(frame []float64) []float64 {
		var acc float64
		for _, v := range frame {
			acc += v * v
		}

		return []float64{math.Sqrt(acc / float64(len(frame)))}
	})
	if err != nil {
		return nil, err
	}

	return out.Relabel("RMS", "amplitude"), nil
}

// ZCR reduces each window to the zero-crossing rate in crossings per
// second: the count of sign changes between successive samples scaled by
// fs/windowSize.
func ZCR(ts *timeseries.Series, windowSize, hopSize int) (*timeseries.Series, error) {
	fs := ts.SampleRate().Float64()
	scale := fs / float64(windowSize)

	out, err := aggregation.SlidingWindow(ts, windowSize, hopSize, func(frame []float64) []float64 {
		crossings := 0
		for i := 1; i < len(frame); i++ {
			if frame[i]*frame[i-1] < 0 {
				crossings++
			}
		}

		return []float64{float64(crossings) * scale}
	})
	if err != nil {
		return nil, err
	}

	return out.Relabel("ZCR", "Hz"), nil
}
