// SPDX-License-Identifier: MIT

package harmonics

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/staccato-dev/staccato/spectral"
	"github.com/staccato-dev/staccato/timeseries"
)

var (
	// ErrTooFewHarmonics signals a harmonic count below 3.
	ErrTooFewHarmonics = errors.New("harmonics: nharm must be at least 3")

	// ErrFrameMismatch signals an STFT and pitch curve with different
	// frame counts.
	ErrFrameMismatch = errors.New("harmonics: stft and pitch frame counts differ")
)

// DefaultTolerance is the relative frequency margin searched around each
// expected harmonic position.
const DefaultTolerance = 0.04

// Tracks holds the extracted harmonic series, one feature row per
// harmonic. Unvoiced frames carry zeros.
type Tracks struct {
	Frequencies *timeseries.Series
	Magnitudes  *timeseries.Series
	Phases      *timeseries.Series
}

// Option configures Extract.
type Option func(*config)

type config struct {
	tolerance float64
}

// WithTolerance sets the relative search margin around each harmonic.
func WithTolerance(t float64) Option { return func(c *config) { c.tolerance = t } }

// Extract follows the pitch curve through the STFT and picks, for each
// frame and each of nharm harmonics, the strongest local peak within the
// tolerance margin around the integer multiple of f0, or the exact bin
// when the margin holds no peak. The pitch curve must share the STFT's
// frame count.
func Extract(stft *spectral.STFT, pitchCurve *timeseries.Series, nharm int, opts ...Option) (*Tracks, error) {
	if nharm < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewHarmonics, nharm)
	}
	if pitchCurve.NSamples() != stft.NFrames() {
		return nil, fmt.Errorf("%w: %d vs %d", ErrFrameMismatch, stft.NFrames(), pitchCurve.NSamples())
	}

	cfg := config{tolerance: DefaultTolerance}
	for _, opt := range opts {
		opt(&cfg)
	}

	nframes := stft.NFrames()
	nbins := stft.NBins()
	maxFreq := stft.MaxFrequency()

	freqData := make([]float64, nharm*nframes)
	magData := make([]float64, nharm*nframes)
	phaseData := make([]float64, nharm*nframes)

	mag := make([]float64, nbins)
	phase := make([]float64, nbins)
	for i := 0; i < nframes; i++ {
		f0 := pitchCurve.At(0, i)
		if f0 <= 0 {
			continue
		}
		for b, c := range stft.Frame(i) {
			mag[b] = cmplx.Abs(c)
			phase[b] = cmplx.Phase(c)
		}

		f0Bin := int(float64(nbins)*f0/maxFreq + 0.5)
		delta := int(float64(f0Bin) * cfg.tolerance)
		for h := 0; h < nharm; h++ {
			bin := f0Bin * (h + 1)
			if bin >= nbins {
				break
			}
			picked := peakNear(mag, bin, delta)
			freqData[h*nframes+i] = float64(picked) * maxFreq / float64(nbins)
			magData[h*nframes+i] = mag[picked]
			phaseData[h*nframes+i] = phase[picked]
		}
	}

	build := func(data []float64, label, unit string) (*timeseries.Series, error) {
		s, err := timeseries.NewMulti(stft.SampleRate(), data, nharm,
			timeseries.WithStartTime(stft.StartTime()))
		if err != nil {
			return nil, err
		}

		return s.Relabel(label, unit), nil
	}

	freqs, err := build(freqData, "Harmonics (frequency)", "Hz")
	if err != nil {
		return nil, err
	}
	mags, err := build(magData, "Harmonics (magnitude)", "amplitude")
	if err != nil {
		return nil, err
	}
	phases, err := build(phaseData, "Harmonics (phase)", "rad")
	if err != nil {
		return nil, err
	}

	return &Tracks{Frequencies: freqs, Magnitudes: mags, Phases: phases}, nil
}

// peakNear returns the index of the highest local maximum of mag within
// [bin−delta, bin+delta], or bin itself when the margin holds none.
func peakNear(mag []float64, bin, delta int) int {
	lo, hi := bin-delta, bin+delta
	if lo < 1 {
		lo = 1
	}
	if hi > len(mag)-2 {
		hi = len(mag) - 2
	}

	best, bestVal := -1, 0.0
	for b := lo; b <= hi; b++ {
		if mag[b] > mag[b-1] && mag[b] >= mag[b+1] && mag[b] > bestVal {
			best, bestVal = b, mag[b]
		}
	}
	if best < 0 {
		return bin
	}

	return best
}
