// SPDX-License-Identifier: MIT

package pitch

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/staccato-dev/staccato/spectral"
	"github.com/staccato-dev/staccato/timeseries"
)

// Decimation selects how the spectrum is downsampled between HPS stages.
type Decimation int

const (
	// DecimateDiscard keeps every q-th bin. The default.
	DecimateDiscard Decimation = iota
	// DecimateMean averages each group of q bins.
	DecimateMean
)

// DefaultHPSDownsamplings is the number of downsampling stages used when
// no option overrides it.
const DefaultHPSDownsamplings = 16

// HPSOption configures the harmonic product spectrum.
type HPSOption func(*hpsConfig)

type hpsConfig struct {
	stages     int
	decimation Decimation
}

// WithDownsamplings sets the number of downsampling stages.
func WithDownsamplings(n int) HPSOption { return func(c *hpsConfig) { c.stages = n } }

// WithDecimation sets the decimation scheme.
func WithDecimation(d Decimation) HPSOption { return func(c *hpsConfig) { c.decimation = d } }

// HPS estimates the fundamental frequency of each STFT frame with the
// harmonic product spectrum: the magnitude spectrum is decimated by
// factors 2..stages+1, each stage offset by 1 before summation so that
// near-zero harmonics cannot collapse the product, and the f0 is the
// arg-max of the stage sum within [minF0, maxF0].
func HPS(stft *spectral.STFT, minF0, maxF0 float64, opts ...HPSOption) (*timeseries.Series, error) {
	if minF0 <= 0 || minF0 >= maxF0 {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrBadRange, minF0, maxF0)
	}

	cfg := hpsConfig{stages: DefaultHPSDownsamplings, decimation: DecimateDiscard}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.decimation != DecimateDiscard && cfg.decimation != DecimateMean {
		return nil, fmt.Errorf("%w: %d", ErrBadDecimation, int(cfg.decimation))
	}

	nbins := stft.NBins()
	freqs := stft.Frequencies()
	loBin := int(math.Ceil(float64(nbins) * minF0 / stft.MaxFrequency()))
	hiBin := int(math.Ceil(float64(nbins) * maxF0 / stft.MaxFrequency()))
	if hiBin > nbins {
		hiBin = nbins
	}
	if loBin >= hiBin {
		return nil, fmt.Errorf("%w: [%g, %g] maps to empty bin range", ErrBadRange, minF0, maxF0)
	}

	mag := make([]float64, nbins)
	acc := make([]float64, nbins)
	data := make([]float64, stft.NFrames())
	for i := 0; i < stft.NFrames(); i++ {
		for b, c := range stft.Frame(i) {
			mag[b] = cmplx.Abs(c)
		}
		// stage 1 is the undecimated spectrum; each stage contributes
		// its +1 offset to the accumulator
		for b, v := range mag {
			acc[b] = v + 1
		}
		for q := 2; q <= cfg.stages+1; q++ {
			dsLen := decimate(mag, acc, q, cfg.decimation)
			for b := dsLen; b < nbins; b++ {
				acc[b]++
			}
		}

		best := loBin
		for b := loBin + 1; b < hiBin; b++ {
			if acc[b] > acc[best] {
				best = b
			}
		}
		data[i] = freqs[best]
	}

	out, err := timeseries.New(stft.SampleRate(), data,
		timeseries.WithStartTime(stft.StartTime()))
	if err != nil {
		return nil, err
	}

	return out.Relabel("Pitch (HPS)", "Hz"), nil
}

// decimate folds mag downsampled by q into acc (adding value/q + 1 per
// bin) and returns the decimated length.
func decimate(mag, acc []float64, q int, d Decimation) int {
	n := (len(mag) + q - 1) / q
	for b := 0; b < n; b++ {
		var v float64
		if d == DecimateMean {
			var sum float64
			count := 0
			for j := b * q; j < (b+1)*q && j < len(mag); j++ {
				sum += mag[j]
				count++
			}
			v = sum / float64(count)
		} else {
			v = mag[b*q]
		}
		acc[b] += v/float64(q) + 1
	}

	return n
}
