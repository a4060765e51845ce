// SPDX-License-Identifier: MIT

package pitch_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staccato-dev/staccato/pitch"
	"github.com/staccato-dev/staccato/spectral"
	"github.com/staccato-dev/staccato/timeseries"
	"github.com/staccato-dev/staccato/timing"
)

// harmonicTone builds a signal with energy at f0 and its harmonics, the
// kind of input HPS is built for.
func harmonicTone(t *testing.T, f0 float64, fs int64, n, nharm int) *timeseries.Series {
	t.Helper()
	data := make([]float64, n)
	for h := 1; h <= nharm; h++ {
		amp := 1.0 / float64(h)
		for i := range data {
			data[i] += amp * math.Sin(2*math.Pi*f0*float64(h)*float64(i)/float64(fs))
		}
	}
	s, err := timeseries.New(timing.FromInt(fs), data)
	require.NoError(t, err)
	return s
}

// TestHPS_HarmonicTone verifies f0 recovery from a harmonic-rich tone.
func TestHPS_HarmonicTone(t *testing.T) {
	s := harmonicTone(t, 220, 22050, 22050, 6)

	stft, err := spectral.ComputeSTFT(s, 2048, 512)
	require.NoError(t, err)
	curve, err := pitch.HPS(stft, 100, 1000)
	require.NoError(t, err)

	mid := curve.NSamples() / 2
	assert.InDelta(t, 220, curve.At(0, mid), 15, "HPS must land on the fundamental")
}

// TestHPS_Validation verifies the range guard.
func TestHPS_Validation(t *testing.T) {
	s := harmonicTone(t, 220, 8000, 8192, 3)
	stft, err := spectral.ComputeSTFT(s, 1024, 512)
	require.NoError(t, err)

	_, err = pitch.HPS(stft, 500, 100)
	assert.ErrorIs(t, err, pitch.ErrBadRange)

	_, err = pitch.HPS(stft, 0, 100)
	assert.ErrorIs(t, err, pitch.ErrBadRange)
}

// TestYIN_PureSine verifies f0 recovery in the time domain.
func TestYIN_PureSine(t *testing.T) {
	data := make([]float64, 22050)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 440 * float64(i) / 22050)
	}
	s, err := timeseries.New(timing.FromInt(22050), data)
	require.NoError(t, err)

	curve, err := pitch.YIN(s, 2048, 512)
	require.NoError(t, err)

	mid := curve.NSamples() / 2
	assert.InDelta(t, 440, curve.At(0, mid), 5, "YIN must land on the sine frequency")
}

// TestYIN_SilenceIsUnvoiced verifies that silence yields 0.
func TestYIN_SilenceIsUnvoiced(t *testing.T) {
	s, err := timeseries.New(timing.FromInt(8000), make([]float64, 8192))
	require.NoError(t, err)

	curve, err := pitch.YIN(s, 1024, 512)
	require.NoError(t, err)
	for i := 0; i < curve.NSamples(); i++ {
		assert.Equal(t, 0.0, curve.At(0, i), "frame %d", i)
	}
}

// TestHzToMIDI_RoundTrip verifies the A4 anchor and inversion.
func TestHzToMIDI_RoundTrip(t *testing.T) {
	assert.InDelta(t, 69, pitch.HzToMIDI(440), 1e-12)
	assert.InDelta(t, 57, pitch.HzToMIDI(220), 1e-12)
	assert.InDelta(t, 440, pitch.MIDIToHz(pitch.HzToMIDI(440)), 1e-9)
	assert.Equal(t, 0.0, pitch.HzToMIDI(0), "unvoiced stays 0")
	assert.Equal(t, 0.0, pitch.MIDIToHz(0), "unvoiced stays 0")
}

// TestFilter_InterpolatesSpikes verifies the unstable-sample rule and the
// isolated-point rule.
func TestFilter_InterpolatesSpikes(t *testing.T) {
	curve, err := timeseries.New(timing.FromInt(100),
		[]float64{440, 440, 510, 440, 440})
	require.NoError(t, err)

	smoothed := pitch.Filter(curve, pitch.DefaultDeltaMax)
	assert.InDelta(t, 440, smoothed.At(0, 2), 1e-9, "the spike must be interpolated away")
	assert.InDelta(t, 440, smoothed.At(0, 1), 1e-9, "stable samples stay put")

	isolated, err := timeseries.New(timing.FromInt(100), []float64{0, 330, 0})
	require.NoError(t, err)
	zeroed := pitch.Filter(isolated, pitch.DefaultDeltaMax)
	assert.Equal(t, 0.0, zeroed.At(0, 1), "isolated voiced points between zeros are dropped")
}

// TestMode_SnapsToDominantNote verifies windowed-mode smoothing on the
// semitone grid.
func TestMode_SnapsToDominantNote(t *testing.T) {
	curve, err := timeseries.New(timing.FromInt(100),
		[]float64{440, 440, 440, 466, 440, 440, 440})
	require.NoError(t, err)

	smoothed, err := pitch.Mode(curve, 5)
	require.NoError(t, err)
	for i := 0; i < smoothed.NSamples(); i++ {
		assert.InDelta(t, 440, smoothed.At(0, i), 1, "sample %d must snap to A4", i)
	}

	_, err = pitch.Mode(curve, 0)
	assert.ErrorIs(t, err, pitch.ErrBadWindow)
}
