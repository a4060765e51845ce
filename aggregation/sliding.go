// SPDX-License-Identifier: MIT

package aggregation

import (
	"fmt"

	"github.com/staccato-dev/staccato/timeseries"
	"github.com/staccato-dev/staccato/timing"
)

// FrameFunc reduces one (tapered) window to a scalar or fixed-length
// vector. The frame slice is reused between calls; implementations must not
// retain it.
type FrameFunc func(frame []float64) []float64

// SlideOption configures SlidingWindow.
type SlideOption func(*slideConfig)

type slideConfig struct {
	taper Taper
}

// WithTaper applies the given apodization taper to each window before
// reduction. The default is no taper.
func WithTaper(t Taper) SlideOption { return func(c *slideConfig) { c.taper = t } }

// SlidingWindow reduces ts window by window and assembles the results into
// a new series sampled at fs/hopSize, keeping the input start time. The
// reduction output length is fixed by the first frame and sets the feature
// count of the result.
func SlidingWindow(ts *timeseries.Series, windowSize, hopSize int, fn FrameFunc, opts ...SlideOption) (*timeseries.Series, error) {
	if ts.NFeatures() != 1 {
		return nil, fmt.Errorf("%w: got %d features", ErrMultiFeature, ts.NFeatures())
	}

	var cfg slideConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	plan, err := NewPlan(windowSize, hopSize, ts.NSamples())
	if err != nil {
		return nil, err
	}
	taper, err := cfg.taper.Values(windowSize)
	if err != nil {
		return nil, err
	}

	padded := plan.Pad(ts.Row(0))
	scratch := make([]float64, windowSize)

	var out []float64 // feature-major, allocated after the first frame
	nfeat := 0
	for i := 0; i < plan.NumHops; i++ {
		frame := plan.Frame(padded, i)
		if taper != nil {
			for j, v := range frame {
				scratch[j] = v * taper[j]
			}
		} else {
			copy(scratch, frame)
		}

		val := fn(scratch)
		if i == 0 {
			nfeat = len(val)
			out = make([]float64, nfeat*plan.NumHops)
		} else if len(val) != nfeat {
			return nil, fmt.Errorf("%w: %d then %d", ErrFrameShape, nfeat, len(val))
		}
		for f, v := range val {
			out[f*plan.NumHops+i] = v
		}
	}

	newFs := ts.SampleRate().Div(timing.FromInt(int64(hopSize)))

	return timeseries.NewMulti(newFs, out, nfeat,
		timeseries.WithStartTime(ts.StartTime()), timeseries.WithCaption(ts.Caption()))
}

// Padding selects the synthetic "previous sample" used by Successive for
// the first real sample.
type Padding int

const (
	// PadZeros uses an all-zero previous sample.
	PadZeros Padding = iota
	// PadOnes uses an all-one previous sample.
	PadOnes
	// PadRepeatFirst repeats the first sample as its own predecessor.
	PadRepeatFirst
)

// PairFunc reduces a (previous, current) pair of feature columns to one
// output value. Slices are reused between calls.
type PairFunc func(prev, cur []float64) float64

// Successive aggregates consecutive samples of ts: output sample i is
// fn(sample i−1, sample i), with sample −1 synthesized per padding. The
// result keeps the input rate and start time.
func Successive(ts *timeseries.Series, fn PairFunc, padding Padding) (*timeseries.Series, error) {
	n := ts.NSamples()
	out := make([]float64, n)
	if n == 0 {
		return timeseries.New(ts.SampleRate(), out, timeseries.WithStartTime(ts.StartTime()))
	}

	prev := make([]float64, ts.NFeatures())
	switch padding {
	case PadZeros:
	case PadOnes:
		for i := range prev {
			prev[i] = 1
		}
	case PadRepeatFirst:
		copy(prev, ts.Sample(0))
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadPadding, int(padding))
	}

	cur := make([]float64, ts.NFeatures())
	for i := 0; i < n; i++ {
		copy(cur, ts.Sample(i))
		out[i] = fn(prev, cur)
		prev, cur = cur, prev
	}

	return timeseries.New(ts.SampleRate(), out, timeseries.WithStartTime(ts.StartTime()))
}

// SampleFunc reduces one feature column to a scalar.
type SampleFunc func(sample []float64) float64

// Features reduces the feature axis sample by sample, producing a
// single-feature series at the same rate and start time.
func Features(ts *timeseries.Series, fn SampleFunc) (*timeseries.Series, error) {
	out := make([]float64, ts.NSamples())
	for i := range out {
		out[i] = fn(ts.Sample(i))
	}

	return timeseries.New(ts.SampleRate(), out, timeseries.WithStartTime(ts.StartTime()))
}
