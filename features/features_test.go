// SPDX-License-Identifier: MIT

package features_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staccato-dev/staccato/features"
	"github.com/staccato-dev/staccato/spectral"
	"github.com/staccato-dev/staccato/timeseries"
	"github.com/staccato-dev/staccato/timing"
)

func sine(t *testing.T, freq float64, fs int64, n int) *timeseries.Series {
	t.Helper()
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * freq * float64(i) / float64(fs))
	}
	s, err := timeseries.New(timing.FromInt(fs), data)
	require.NoError(t, err)
	return s
}

// TestRMS_ConstantSignal verifies the RMS of an all-ones signal is 1 in
// every fully covered window.
func TestRMS_ConstantSignal(t *testing.T) {
	data := make([]float64, 1000)
	for i := range data {
		data[i] = 1
	}
	s, err := timeseries.New(timing.FromInt(1000), data)
	require.NoError(t, err)

	env, err := features.RMS(s, 64, 32)
	require.NoError(t, err)

	mid := env.NSamples() / 2
	assert.InDelta(t, 1.0, env.At(0, mid), 1e-12)
	assert.Equal(t, "RMS", env.Label())
}

// TestPeakEnvelope verifies the max-abs reduction.
func TestPeakEnvelope(t *testing.T) {
	s := sine(t, 50, 1000, 1000)

	env, err := features.PeakEnvelope(s, 100, 50)
	require.NoError(t, err)

	mid := env.NSamples() / 2
	assert.InDelta(t, 1.0, env.At(0, mid), 1e-2, "peak of a unit sine is 1")
}

// TestZCR_SineRate verifies the zero-crossing rate of a sine is about
// twice its frequency.
func TestZCR_SineRate(t *testing.T) {
	s := sine(t, 100, 8000, 8000)

	rate, err := features.ZCR(s, 1024, 512)
	require.NoError(t, err)

	mid := rate.NSamples() / 2
	assert.InDelta(t, 200, rate.At(0, mid), 20, "a 100 Hz sine crosses zero 200 times per second")
}

// TestSpectralCentroid_SineLandsOnFrequency verifies the centroid of a
// near-pure tone.
func TestSpectralCentroid_SineLandsOnFrequency(t *testing.T) {
	s := sine(t, 440, 8000, 16000)

	spec, err := spectral.ComputeSpectrogram(s, 1024, 512)
	require.NoError(t, err)
	sc, err := features.SpectralCentroid(spec)
	require.NoError(t, err)

	mid := sc.NSamples() / 2
	assert.InDelta(t, 440, sc.At(0, mid), 60)
}

// TestSpectralCentroid_SilenceIsNeutral verifies the all-zero frame rule.
func TestSpectralCentroid_SilenceIsNeutral(t *testing.T) {
	z, err := timeseries.New(timing.FromInt(8000), make([]float64, 4096))
	require.NoError(t, err)

	spec, err := spectral.ComputeSpectrogram(z, 1024, 512)
	require.NoError(t, err)
	sc, err := features.SpectralCentroid(spec)
	require.NoError(t, err)

	for i := 0; i < sc.NSamples(); i++ {
		assert.Equal(t, 0.0, sc.At(0, i), "silent frames yield the neutral value")
	}
}

// TestSpectralFlux_DetectsSpectrumChange verifies that flux spikes when
// the signal switches frequency.
func TestSpectralFlux_DetectsSpectrumChange(t *testing.T) {
	const fs = 8000
	n := 2 * fs
	data := make([]float64, n)
	for i := range data {
		freq := 220.0
		if i >= n/2 {
			freq = 880
		}
		data[i] = math.Sin(2 * math.Pi * freq * float64(i) / fs)
	}
	s, err := timeseries.New(timing.FromInt(fs), data)
	require.NoError(t, err)

	spec, err := spectral.ComputeSpectrogram(s, 1024, 512)
	require.NoError(t, err)
	flux, err := features.SpectralFlux(spec, features.FluxHWRDiff)
	require.NoError(t, err)

	// the largest flux (past the first frame) must sit near the switch
	best, bestVal := 1, 0.0
	for i := 1; i < flux.NSamples(); i++ {
		if v := flux.At(0, i); v > bestVal {
			best, bestVal = i, v
		}
	}
	switchFrame := flux.NSamples() / 2
	assert.InDelta(t, float64(switchFrame), float64(best), 2, "flux peak must sit at the frequency switch")
}

// TestSpectralFlux_BadMethod verifies the enum guard.
func TestSpectralFlux_BadMethod(t *testing.T) {
	s := sine(t, 440, 8000, 4096)
	spec, err := spectral.ComputeSpectrogram(s, 1024, 512)
	require.NoError(t, err)

	_, err = features.SpectralFlux(spec, features.FluxMethod(7))
	assert.ErrorIs(t, err, features.ErrBadMethod)
}

// TestHFC_RisesWithFrequency verifies that high content weighs more.
func TestHFC_RisesWithFrequency(t *testing.T) {
	lowSpec, err := spectral.ComputeSpectrogram(sine(t, 220, 8000, 8192), 1024, 512)
	require.NoError(t, err)
	highSpec, err := spectral.ComputeSpectrogram(sine(t, 2000, 8000, 8192), 1024, 512)
	require.NoError(t, err)

	lowHFC, err := features.HFC(lowSpec, features.HFCEnergy)
	require.NoError(t, err)
	highHFC, err := features.HFC(highSpec, features.HFCEnergy)
	require.NoError(t, err)

	mid := lowHFC.NSamples() / 2
	assert.Greater(t, highHFC.At(0, mid), lowHFC.At(0, mid))
}

// TestOER_OddOnlySpectrum verifies the odd-to-even ratio on synthetic
// harmonic magnitudes.
func TestOER_OddOnlySpectrum(t *testing.T) {
	// two frames, 4 harmonics apiece, feature-major: harmonics 1 and 3
	// (odd) carry all the energy in frame 0
	mags, err := timeseries.NewMulti(timing.FromInt(100), []float64{
		1, 0, // harmonic 1
		0, 1, // harmonic 2
		1, 0, // harmonic 3
		0, 1, // harmonic 4
	}, 4)
	require.NoError(t, err)

	oer, err := features.OER(mags)
	require.NoError(t, err)
	assert.Equal(t, 0.0, oer.At(0, 0), "no even energy yields neutral 0")
	assert.Equal(t, 0.0, oer.At(0, 1), "no odd energy yields ratio 0")
}

// TestLocalTempo verifies BPM from inter-onset intervals.
func TestLocalTempo(t *testing.T) {
	onsets := timing.PointsFromSeconds([]float64{0, 0.5, 1.0, 1.75})
	// first two IOIs are one nominal beat, the last is 1.5 beats
	bpm, err := features.LocalTempo(onsets, []float64{0.5, 0.5, 0.75})
	require.NoError(t, err)

	require.Len(t, bpm, 3)
	assert.InDelta(t, 60, bpm[0], 1e-9)
	assert.InDelta(t, 60, bpm[1], 1e-9)
	assert.InDelta(t, 60, bpm[2], 1e-9)

	_, err = features.LocalTempo(onsets, []float64{1})
	assert.ErrorIs(t, err, features.ErrLengthMismatch)
}
