// SPDX-License-Identifier: MIT

package features

import (
	"fmt"

	"github.com/staccato-dev/staccato/aggregation"
	"github.com/staccato-dev/staccato/spectral"
	"github.com/staccato-dev/staccato/timeseries"
)

// HarmonicCentroid reduces each frame of harmonic magnitudes to the
// center of gravity across harmonic numbers. Silent frames yield 0.
func HarmonicCentroid(magnitudes *timeseries.Series) (*timeseries.Series, error) {
	out, err := aggregation.Features(magnitudes, func(frame []float64) float64 {
		var num, den float64
		for h, a := range frame {
			num += float64(h) * a
			den += a
		}
		if den == 0 {
			return 0
		}

		return num / den
	})
	if err != nil {
		return nil, err
	}

	return out.Relabel("HarmonicCentroid", "harmonic number"), nil
}

// HarmonicEnergy reduces each frame of harmonic magnitudes to ΣA(h)².
func HarmonicEnergy(magnitudes *timeseries.Series) (*timeseries.Series, error) {
	out, err := aggregation.Features(magnitudes, func(frame []float64) float64 {
		var acc float64
		for _, a := range frame {
			acc += a * a
		}

		return acc
	})
	if err != nil {
		return nil, err
	}

	return out.Relabel("HarmonicEnergy", ""), nil
}

// Noisiness is the ratio of non-harmonic to total spectral energy per
// frame: (SE − HE)/SE, close to 1 for noisy frames and 0 for purely
// harmonic ones. The two inputs must share the frame count.
func Noisiness(spec *spectral.Spectrogram, harmonicMagnitudes *timeseries.Series) (*timeseries.Series, error) {
	se, err := SpectralEnergy(spec)
	if err != nil {
		return nil, err
	}
	he, err := HarmonicEnergy(harmonicMagnitudes)
	if err != nil {
		return nil, err
	}
	if se.NSamples() != he.NSamples() {
		return nil, fmt.Errorf("%w: %d spectral vs %d harmonic frames",
			ErrLengthMismatch, se.NSamples(), he.NSamples())
	}

	data := make([]float64, se.NSamples())
	for i := range data {
		total := se.At(0, i)
		if total == 0 {
			continue
		}
		data[i] = (total - he.At(0, i)) / total
	}

	out, err := timeseries.New(se.SampleRate(), data,
		timeseries.WithStartTime(se.StartTime()),
		timeseries.WithCaption(se.Caption()))
	if err != nil {
		return nil, err
	}

	return out.Relabel("Noisiness", ""), nil
}

// OER reduces each frame of harmonic magnitudes to the odd-to-even energy
// ratio among the harmonics. Frames with no even-harmonic energy yield 0.
func OER(magnitudes *timeseries.Series) (*timeseries.Series, error) {
	out, err := aggregation.Features(magnitudes, func(frame []float64) float64 {
		var odd, even float64
		for h, a := range frame {
			if h%2 == 0 {
				odd += a * a
			} else {
				even += a * a
			}
		}
		if even == 0 {
			return 0
		}

		return odd / even
	})
	if err != nil {
		return nil, err
	}

	return out.Relabel("OER", ""), nil
}
