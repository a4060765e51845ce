// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"math"

	"github.com/staccato-dev/staccato/timeseries"
)

// DefaultMelBands is the filter-bank size used when no option overrides it.
const DefaultMelBands = 128

// HzToMel converts a frequency in Hz to the HTK mel scale.
func HzToMel(hz float64) float64 { return 2595 * math.Log10(1+hz/700) }

// MelToHz converts an HTK mel value back to Hz.
func MelToHz(mel float64) float64 { return 700 * (math.Pow(10, mel/2595) - 1) }

// MelBank is a triangular mel filter bank laid out over a linear-frequency
// bin grid.
type MelBank struct {
	weights [][]float64 // nbands × nbins
	centers []float64   // band center frequencies in Hz
}

// NewMelBank builds nbands triangular filters spanning [fmin, fmax] over a
// grid of nbins linear bins covering [0, fmax of the grid].
func NewMelBank(binFreqs []float64, nbands int, fmin, fmax float64) (*MelBank, error) {
	if nbands < 1 {
		return nil, fmt.Errorf("%w: %d bands", ErrBinCount, nbands)
	}
	if fmin < 0 || fmax <= fmin {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrBandLimits, fmin, fmax)
	}

	// nbands+2 equally-spaced mel edges: each band spans edge[k]..edge[k+2]
	// and peaks at edge[k+1].
	edges := make([]float64, nbands+2)
	lo, hi := HzToMel(fmin), HzToMel(fmax)
	for i := range edges {
		edges[i] = MelToHz(lo + (hi-lo)*float64(i)/float64(nbands+1))
	}

	weights := make([][]float64, nbands)
	centers := make([]float64, nbands)
	for k := 0; k < nbands; k++ {
		left, center, right := edges[k], edges[k+1], edges[k+2]
		centers[k] = center
		row := make([]float64, len(binFreqs))
		for b, f := range binFreqs {
			switch {
			case f <= left || f >= right:
				// outside the triangle
			case f <= center:
				row[b] = (f - left) / (center - left)
			default:
				row[b] = (right - f) / (right - center)
			}
		}
		weights[k] = row
	}

	return &MelBank{weights: weights, centers: centers}, nil
}

// NBands returns the number of filters.
func (m *MelBank) NBands() int { return len(m.weights) }

// Centers returns the band center frequencies in Hz.
func (m *MelBank) Centers() []float64 { return m.centers }

// Apply reduces one linear-frequency frame to nbands mel values.
func (m *MelBank) Apply(frame, out []float64) []float64 {
	if out == nil {
		out = make([]float64, len(m.weights))
	}
	for k, row := range m.weights {
		var acc float64
		for b, w := range row {
			if w != 0 {
				acc += w * frame[b]
			}
		}
		out[k] = acc
	}

	return out
}

// MelOption configures a mel spectrogram computation.
type MelOption func(*melConfig)

type melConfig struct {
	nbands     int
	fmin, fmax float64
	spec       []SpectrogramOption
}

// WithMelBands sets the number of filters. Default DefaultMelBands.
func WithMelBands(n int) MelOption { return func(c *melConfig) { c.nbands = n } }

// WithMelRange sets the frequency span of the bank. Default 0..Nyquist
// (fmin clamped to a small positive value on the mel scale).
func WithMelRange(fmin, fmax float64) MelOption {
	return func(c *melConfig) { c.fmin, c.fmax = fmin, fmax }
}

// WithSpectrogramOptions forwards options to the underlying spectrogram.
func WithSpectrogramOptions(opts ...SpectrogramOption) MelOption {
	return func(c *melConfig) { c.spec = append(c.spec, opts...) }
}

// ComputeMelSpectrogram computes an energy spectrogram and folds it through
// a triangular mel filter bank.
func ComputeMelSpectrogram(ts *timeseries.Series, windowSize, hopSize int, opts ...MelOption) (*Spectrogram, error) {
	nyq := ts.Nyquist().Float64()
	cfg := melConfig{nbands: DefaultMelBands, fmin: 0, fmax: nyq}
	for _, opt := range opts {
		opt(&cfg)
	}

	specOpts := append([]SpectrogramOption{WithPower(Energy)}, cfg.spec...)
	spec, err := ComputeSpectrogram(ts, windowSize, hopSize, specOpts...)
	if err != nil {
		return nil, err
	}

	bank, err := NewMelBank(spec.Frequencies, cfg.nbands, cfg.fmin, cfg.fmax)
	if err != nil {
		return nil, err
	}

	nframes := spec.NSamples()
	data := make([]float64, cfg.nbands*nframes)
	frame := make([]float64, len(spec.Frequencies))
	mel := make([]float64, cfg.nbands)
	for i := 0; i < nframes; i++ {
		for b := range frame {
			frame[b] = spec.At(b, i)
		}
		bank.Apply(frame, mel)
		for k, v := range mel {
			data[k*nframes+i] = v
		}
	}

	out, err := timeseries.NewMulti(spec.SampleRate(), data, cfg.nbands,
		timeseries.WithStartTime(spec.StartTime()),
		timeseries.WithUnit(spec.Unit()),
		timeseries.WithLabel("mel-spectrogram"),
		timeseries.WithCaption(spec.Caption()))
	if err != nil {
		return nil, err
	}

	return &Spectrogram{Series: out, Frequencies: bank.Centers()}, nil
}
