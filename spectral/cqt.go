// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/staccato-dev/staccato/aggregation"
	"github.com/staccato-dev/staccato/timeseries"
	"github.com/staccato-dev/staccato/timing"
)

// DefaultBinsPerOctave is the CQT resolution used when no option overrides
// it: quarter-tone spacing.
const DefaultBinsPerOctave = 24

// CQTOption configures a constant-Q transform.
type CQTOption func(*cqtConfig)

type cqtConfig struct {
	binsPerOctave int
	fmin, fmax    float64
	decibels      bool
}

// WithBinsPerOctave sets the log-frequency resolution.
func WithBinsPerOctave(n int) CQTOption { return func(c *cqtConfig) { c.binsPerOctave = n } }

// WithCQTRange sets the frequency span. Default 32.7 Hz (C1) to Nyquist.
func WithCQTRange(fmin, fmax float64) CQTOption {
	return func(c *cqtConfig) { c.fmin, c.fmax = fmin, fmax }
}

// WithCQTDecibels converts the output to dB.
func WithCQTDecibels() CQTOption { return func(c *cqtConfig) { c.decibels = true } }

// ComputeCQT computes a constant-Q magnitude transform of a single-feature
// series. Bin k sits at fmin·2^(k/binsPerOctave); each bin is correlated
// against a Hann-windowed complex exponential whose length keeps
// Q = 1/(2^(1/binsPerOctave)−1) constant across bins. Frames are centered
// at multiples of hopSize, so the output shares the centered-alignment
// convention of the other transforms.
func ComputeCQT(ts *timeseries.Series, hopSize int, opts ...CQTOption) (*Spectrogram, error) {
	if ts.NFeatures() != 1 {
		return nil, fmt.Errorf("%w: got %d features", aggregation.ErrMultiFeature, ts.NFeatures())
	}

	nyq := ts.Nyquist().Float64()
	cfg := cqtConfig{binsPerOctave: DefaultBinsPerOctave, fmin: 32.7, fmax: nyq}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.binsPerOctave < 1 {
		return nil, fmt.Errorf("%w: %d bins per octave", ErrBinCount, cfg.binsPerOctave)
	}
	if cfg.fmin <= 0 || cfg.fmax <= cfg.fmin || cfg.fmax > nyq {
		return nil, fmt.Errorf("%w: [%g, %g] with nyquist %g", ErrBandLimits, cfg.fmin, cfg.fmax, nyq)
	}

	nbins := int(math.Log2(cfg.fmax/cfg.fmin) * float64(cfg.binsPerOctave))
	if nbins < 1 {
		return nil, fmt.Errorf("%w: range [%g, %g] narrower than one bin", ErrBinCount, cfg.fmin, cfg.fmax)
	}

	fsf := ts.SampleRate().Float64()
	q := 1 / (math.Pow(2, 1/float64(cfg.binsPerOctave)) - 1)

	freqs := make([]float64, nbins)
	kernels := make([][]complex128, nbins)
	for k := range freqs {
		f := cfg.fmin * math.Pow(2, float64(k)/float64(cfg.binsPerOctave))
		freqs[k] = f
		kernels[k] = cqtKernel(f, q, fsf, ts.NSamples())
	}

	signal := ts.Row(0)
	nframes := (ts.NSamples()-1)/hopSize + 1
	data := make([]float64, nbins*nframes)
	for i := 0; i < nframes; i++ {
		center := i * hopSize
		for k, kernel := range kernels {
			data[k*nframes+i] = correlateAt(signal, kernel, center)
		}
	}
	if cfg.decibels {
		for i, v := range data {
			data[i] = 10 * math.Log10(math.Max(v, dbFloor))
		}
	}

	unit := "magnitude"
	if cfg.decibels {
		unit = "dB"
	}
	out, err := timeseries.NewMulti(ts.SampleRate().Div(timing.FromInt(int64(hopSize))), data, nbins,
		timeseries.WithStartTime(ts.StartTime()),
		timeseries.WithUnit(unit),
		timeseries.WithLabel("cqt"),
		timeseries.WithCaption(ts.Caption()))
	if err != nil {
		return nil, err
	}

	return &Spectrogram{Series: out, Frequencies: freqs}, nil
}

// cqtKernel builds the normalized Hann-windowed complex exponential for one
// bin. The length is odd so the kernel is symmetric about its center.
func cqtKernel(freq, q, fs float64, maxLen int) []complex128 {
	n := int(math.Ceil(q * fs / freq))
	if n > maxLen {
		n = maxLen
	}
	if n < 3 {
		n = 3
	}
	if n%2 == 0 {
		n++
	}

	kernel := make([]complex128, n)
	center := n / 2
	norm := 1 / float64(n)
	for i := range kernel {
		t := float64(i - center)
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		phase := 2 * math.Pi * freq * t / fs
		kernel[i] = complex(w*norm, 0) * cmplx.Exp(complex(0, phase))
	}

	return kernel
}

// correlateAt returns |Σ signal·conj(kernel)| with the kernel centered at
// index center; samples outside the signal contribute zero.
func correlateAt(signal []float64, kernel []complex128, center int) float64 {
	half := len(kernel) / 2
	var acc complex128
	for i, k := range kernel {
		j := center - half + i
		if j < 0 || j >= len(signal) {
			continue
		}
		acc += complex(signal[j], 0) * cmplx.Conj(k)
	}

	return cmplx.Abs(acc)
}
