// SPDX-License-Identifier: MIT

package timeseries_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staccato-dev/staccato/timeseries"
	"github.com/staccato-dev/staccato/timing"
)

// TestResample_ExactLength verifies newN = round(n * newFs/fs) for an
// awkward ratio.
func TestResample_ExactLength(t *testing.T) {
	s := mustSeries(t, 44100, make([]float64, 44100))

	r, err := s.Resample(timing.FromInt(22050))
	require.NoError(t, err)
	assert.Equal(t, 22050, r.NSamples())
	assert.True(t, r.SampleRate().Equal(timing.FromInt(22050)))

	odd, err := s.Resample(timing.FromInt(8000))
	require.NoError(t, err)
	assert.Equal(t, 8000, odd.NSamples())
}

// TestResample_PreservesDC verifies that a constant signal survives the
// rate conversion unchanged.
func TestResample_PreservesDC(t *testing.T) {
	data := make([]float64, 200)
	for i := range data {
		data[i] = 1
	}
	s := mustSeries(t, 100, data)

	r, err := s.Resample(timing.FromInt(50))
	require.NoError(t, err)
	require.Equal(t, 100, r.NSamples())
	for i, v := range r.Data() {
		assert.InDelta(t, 1.0, v, 1e-9, "sample %d", i)
	}
}

// TestResample_RequiresZeroStart verifies the unsupported-operation
// failure for shifted series.
func TestResample_RequiresZeroStart(t *testing.T) {
	s := mustSeries(t, 100, make([]float64, 10),
		timeseries.WithStartTime(timing.NewRational(1, 2)))

	_, err := s.Resample(timing.FromInt(50))
	assert.ErrorIs(t, err, timeseries.ErrUnsupportedStart)
}

// TestFilter_LowPassAttenuatesHigh verifies strong stopband attenuation
// and near-unity passband gain.
func TestFilter_LowPassAttenuatesHigh(t *testing.T) {
	const fs = 200
	n := 4 * fs
	low := make([]float64, n)
	high := make([]float64, n)
	for i := range low {
		ti := float64(i) / fs
		low[i] = math.Sin(2 * math.Pi * 2 * ti)
		high[i] = math.Sin(2 * math.Pi * 80 * ti)
	}

	rms := func(x []float64) float64 {
		var acc float64
		for _, v := range x {
			acc += v * v
		}
		return math.Sqrt(acc / float64(len(x)))
	}

	hs := mustSeries(t, fs, high)
	filtered, err := hs.Filter(10, timeseries.LowPass, timeseries.WithZeroPhase())
	require.NoError(t, err)
	assert.Less(t, rms(filtered.Data()), 0.05*rms(high), "80 Hz must be deep in the stopband")

	ls := mustSeries(t, fs, low)
	kept, err := ls.Filter(10, timeseries.LowPass, timeseries.WithZeroPhase())
	require.NoError(t, err)
	assert.InDelta(t, rms(low), rms(kept.Data()), 0.15*rms(low), "2 Hz must pass nearly unchanged")
}

// TestFilter_Validation verifies the construction-time failure modes.
func TestFilter_Validation(t *testing.T) {
	s := mustSeries(t, 100, make([]float64, 64))

	_, err := s.Filter(0, timeseries.LowPass)
	assert.ErrorIs(t, err, timeseries.ErrFilterSpec, "zero frequency")

	_, err = s.Filter(60, timeseries.LowPass)
	assert.ErrorIs(t, err, timeseries.ErrFilterSpec, "frequency above nyquist")

	_, err = s.Filter(10, timeseries.LowPass, timeseries.WithOrder(0))
	assert.ErrorIs(t, err, timeseries.ErrFilterSpec, "order < 1")

	_, err = s.Filter(10, timeseries.BandPass, timeseries.WithBand(5))
	assert.ErrorIs(t, err, timeseries.ErrFilterSpec, "band edge below lower edge")
}
