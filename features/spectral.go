// SPDX-License-Identifier: MIT

package features

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/staccato-dev/staccato/aggregation"
	"github.com/staccato-dev/staccato/spectral"
	"github.com/staccato-dev/staccato/timeseries"
)

// HFCMethod selects the magnitude exponent of the high-frequency-content
// weighting.
type HFCMethod int

const (
	// HFCEnergy weighs squared magnitudes. The default.
	HFCEnergy HFCMethod = iota
	// HFCAmplitude weighs plain magnitudes.
	HFCAmplitude
)

// FluxMethod selects the frame-to-frame change measure of SpectralFlux.
type FluxMethod int

const (
	// FluxHWRDiff sums the half-wave-rectified bin differences. The
	// default.
	FluxHWRDiff FluxMethod = iota
	// FluxCorrelation uses the Pearson correlation between successive
	// magnitude frames.
	FluxCorrelation
)

// SpectralFlatness reduces each magnitude frame to 10·log10(geometric
// mean / arithmetic mean). Frames containing a zero magnitude yield 0.
func SpectralFlatness(spec *spectral.Spectrogram) (*timeseries.Series, error) {
	out, err := aggregation.Features(spec.Series, func(frame []float64) float64 {
		var logSum, sum float64
		for _, v := range frame {
			if v <= 0 {
				return 0
			}
			logSum += math.Log(v)
			sum += v
		}
		n := float64(len(frame))
		gmean := math.Exp(logSum / n)

		return 10 * math.Log10(gmean/(sum/n))
	})
	if err != nil {
		return nil, err
	}

	return out.Relabel("SpectralFlatness", ""), nil
}

// HFC reduces each magnitude frame to its bin-weighted high frequency
// content: Σ k·|X(k)|^p / N with k starting at 1.
func HFC(spec *spectral.Spectrogram, method HFCMethod) (*timeseries.Series, error) {
	if method != HFCEnergy && method != HFCAmplitude {
		return nil, fmt.Errorf("%w: hfc method %d", ErrBadMethod, int(method))
	}

	out, err := aggregation.Features(spec.Series, func(frame []float64) float64 {
		var acc float64
		for k, v := range frame {
			if method == HFCEnergy {
				v *= v
			}
			acc += float64(k+1) * v
		}

		return acc / float64(len(frame))
	})
	if err != nil {
		return nil, err
	}

	return out.Relabel("HFC", ""), nil
}

// frameCentroid is the magnitude-weighted mean of f, or 0 when the frame
// is silent.
func frameCentroid(frame, f []float64) float64 {
	var num, den float64
	for k, v := range frame {
		num += f[k] * v
		den += v
	}
	if den == 0 {
		return 0
	}

	return num / den
}

// SpectralCentroid reduces each magnitude frame to its center of gravity
// in Hz.
func SpectralCentroid(spec *spectral.Spectrogram) (*timeseries.Series, error) {
	out, err := aggregation.Features(spec.Series, func(frame []float64) float64 {
		return frameCentroid(frame, spec.Frequencies)
	})
	if err != nil {
		return nil, err
	}

	return out.Relabel("SpectralCentroid", "Hz"), nil
}

// SpectralSpread reduces each magnitude frame to the magnitude-weighted
// standard deviation around the spectral centroid, in Hz.
func SpectralSpread(spec *spectral.Spectrogram) (*timeseries.Series, error) {
	devSq := make([]float64, len(spec.Frequencies))
	out, err := aggregation.Features(spec.Series, func(frame []float64) float64 {
		sc := frameCentroid(frame, spec.Frequencies)
		for k, f := range spec.Frequencies {
			d := f - sc
			devSq[k] = d * d
		}

		return math.Sqrt(frameCentroid(frame, devSq))
	})
	if err != nil {
		return nil, err
	}

	return out.Relabel("SpectralSpread", "Hz"), nil
}

// frameMoment returns the standardized p-th central moment of the frame
// magnitudes, or 0 for a frame with zero variance.
func frameMoment(frame []float64, p float64) float64 {
	n := float64(len(frame))
	var mean float64
	for _, v := range frame {
		mean += v
	}
	mean /= n

	var variance, moment float64
	for _, v := range frame {
		d := v - mean
		variance += d * d
		moment += math.Pow(d, p)
	}
	variance /= n
	if variance == 0 {
		return 0
	}

	return moment / n / math.Pow(math.Sqrt(variance), p)
}

// SpectralSkewness reduces each magnitude frame to the skewness of its
// magnitude distribution: negative when the energy sits below the mean,
// positive above.
func SpectralSkewness(spec *spectral.Spectrogram) (*timeseries.Series, error) {
	out, err := aggregation.Features(spec.Series, func(frame []float64) float64 {
		return frameMoment(frame, 3)
	})
	if err != nil {
		return nil, err
	}

	return out.Relabel("SpectralSkewness", ""), nil
}

// SpectralKurtosis reduces each magnitude frame to the kurtosis of its
// magnitude distribution: 3 for Gaussian, smaller for flatter, larger for
// peakier.
func SpectralKurtosis(spec *spectral.Spectrogram) (*timeseries.Series, error) {
	out, err := aggregation.Features(spec.Series, func(frame []float64) float64 {
		return frameMoment(frame, 4)
	})
	if err != nil {
		return nil, err
	}

	return out.Relabel("SpectralKurtosis", ""), nil
}

// SpectralEntropy reduces each magnitude frame to its normalized Shannon
// entropy over the energy distribution, in [0, 1]. Silent frames yield 0.
func SpectralEntropy(spec *spectral.Spectrogram) (*timeseries.Series, error) {
	norm := math.Log2(float64(spec.NFeatures()))
	out, err := aggregation.Features(spec.Series, func(frame []float64) float64 {
		var total float64
		for _, v := range frame {
			total += v * v
		}
		if total == 0 {
			return 0
		}

		var h float64
		for _, v := range frame {
			p := v * v / total
			if p > 0 {
				h -= p * math.Log2(p)
			}
		}

		return h / norm
	})
	if err != nil {
		return nil, err
	}

	return out.Relabel("SpectralEntropy", ""), nil
}

// SpectralEnergy reduces each magnitude frame to Σ|X(k)|².
func SpectralEnergy(spec *spectral.Spectrogram) (*timeseries.Series, error) {
	out, err := aggregation.Features(spec.Series, func(frame []float64) float64 {
		var acc float64
		for _, v := range frame {
			acc += v * v
		}

		return acc
	})
	if err != nil {
		return nil, err
	}

	return out.Relabel("SpectralEnergy", ""), nil
}

// SpectralFlux reduces successive magnitude frames to a change measure:
// the half-wave-rectified bin-difference sum, or the Pearson correlation
// between the frames.
func SpectralFlux(spec *spectral.Spectrogram, method FluxMethod) (*timeseries.Series, error) {
	var fn aggregation.PairFunc
	switch method {
	case FluxHWRDiff:
		fn = func(prev, cur []float64) float64 {
			var acc float64
			for k, v := range cur {
				if d := v - prev[k]; d > 0 {
					acc += d
				}
			}

			return acc
		}
	case FluxCorrelation:
		fn = func(prev, cur []float64) float64 {
			r := stat.Correlation(prev, cur, nil)
			if math.IsNaN(r) {
				return 0
			}

			return r
		}
	default:
		return nil, fmt.Errorf("%w: flux method %d", ErrBadMethod, int(method))
	}

	out, err := aggregation.Successive(spec.Series, fn, aggregation.PadZeros)
	if err != nil {
		return nil, err
	}

	return out.Relabel("SpectralFlux", ""), nil
}
