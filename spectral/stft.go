// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/staccato-dev/staccato/aggregation"
	"github.com/staccato-dev/staccato/timeseries"
	"github.com/staccato-dev/staccato/timing"
)

// DefaultFFTLength is the FFT length used when no option overrides it.
// Frames shorter than the FFT length are zero-padded on the right.
const DefaultFFTLength = 4096

// dbFloor guards the log in decibel conversion.
const dbFloor = 1e-10

// STFT holds the complex short-time Fourier frames of a signal together
// with the exact temporal metadata of the frame axis. It implements
// timing.Sampled, so Points and Segments map into frame indexes the same
// way they map into any Series.
type STFT struct {
	fs    timing.Rational
	start timing.Rational

	frames [][]complex128 // one slice of nbins coefficients per hop
	freqs  []float64

	caption string
}

// STFTOption configures the transform.
type STFTOption func(*stftConfig)

type stftConfig struct {
	fftLen int
	taper  aggregation.Taper
}

// WithFFTLength overrides the FFT length. It must be at least the window
// size; the excess is zero-padded.
func WithFFTLength(n int) STFTOption { return func(c *stftConfig) { c.fftLen = n } }

// WithTaper overrides the Hann taper applied to each frame.
func WithTaper(t aggregation.Taper) STFTOption { return func(c *stftConfig) { c.taper = t } }

// ComputeSTFT runs a Hann-tapered short-time Fourier transform over a
// single-feature series. Frames are centered per the sliding-window
// alignment, the frame axis is sampled at the exact rational fs/hop, and
// the start time of the input is preserved.
func ComputeSTFT(ts *timeseries.Series, windowSize, hopSize int, opts ...STFTOption) (*STFT, error) {
	if ts.NFeatures() != 1 {
		return nil, fmt.Errorf("%w: got %d features", aggregation.ErrMultiFeature, ts.NFeatures())
	}

	cfg := stftConfig{fftLen: DefaultFFTLength, taper: aggregation.Hann}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.fftLen < windowSize {
		return nil, fmt.Errorf("%w: fft length %d < window %d", ErrFFTLength, cfg.fftLen, windowSize)
	}

	plan, err := aggregation.NewPlan(windowSize, hopSize, ts.NSamples())
	if err != nil {
		return nil, err
	}
	taper, err := cfg.taper.Values(windowSize)
	if err != nil {
		return nil, err
	}

	padded := plan.Pad(ts.Row(0))
	fft := fourier.NewFFT(cfg.fftLen)
	nbins := cfg.fftLen/2 + 1

	frames := make([][]complex128, plan.NumHops)
	buf := make([]float64, cfg.fftLen)
	for i := 0; i < plan.NumHops; i++ {
		frame := plan.Frame(padded, i)
		for j, v := range frame {
			if taper != nil {
				v *= taper[j]
			}
			buf[j] = v
		}
		for j := windowSize; j < cfg.fftLen; j++ {
			buf[j] = 0
		}
		frames[i] = fft.Coefficients(make([]complex128, nbins), buf)
	}

	fsf := ts.SampleRate().Float64()
	freqs := make([]float64, nbins)
	for i := range freqs {
		freqs[i] = float64(i) * fsf / float64(cfg.fftLen)
	}

	return &STFT{
		fs:      ts.SampleRate().Div(timing.FromInt(int64(hopSize))),
		start:   ts.StartTime(),
		frames:  frames,
		freqs:   freqs,
		caption: ts.Caption(),
	}, nil
}

// SampleRate returns the frame rate in Hz. Implements timing.Sampled.
func (s *STFT) SampleRate() timing.Rational { return s.fs }

// StartTime returns the absolute time of frame 0. Implements timing.Sampled.
func (s *STFT) StartTime() timing.Rational { return s.start }

// NFrames returns the number of hops.
func (s *STFT) NFrames() int { return len(s.frames) }

// NBins returns the number of frequency bins per frame.
func (s *STFT) NBins() int { return len(s.freqs) }

// Frame returns frame i as a shared, read-only slice of coefficients.
func (s *STFT) Frame(i int) []complex128 { return s.frames[i] }

// Frequencies returns the bin center frequencies in Hz, shared and
// read-only.
func (s *STFT) Frequencies() []float64 { return s.freqs }

// MaxFrequency returns the highest bin center frequency.
func (s *STFT) MaxFrequency() float64 { return s.freqs[len(s.freqs)-1] }

// Magnitude reduces the complex frames to |X|^power, packed feature-major
// (one feature per bin). With decibels set each value becomes
// 10·log10(max(x, 1e-10)).
func (s *STFT) Magnitude(power float64, decibels bool) *timeseries.Series {
	nbins, nframes := s.NBins(), s.NFrames()
	data := make([]float64, nbins*nframes)
	for i, frame := range s.frames {
		for b, c := range frame {
			v := cmplx.Abs(c)
			if power != 1 {
				v = math.Pow(v, power)
			}
			if decibels {
				v = 10 * math.Log10(math.Max(v, dbFloor))
			}
			data[b*nframes+i] = v
		}
	}

	unit := "magnitude"
	if decibels {
		unit = "dB"
	}
	out, _ := timeseries.NewMulti(s.fs, data, nbins,
		timeseries.WithStartTime(s.start),
		timeseries.WithUnit(unit),
		timeseries.WithLabel("stft-magnitude"),
		timeseries.WithCaption(s.caption))

	return out
}

// Phase reduces the complex frames to their argument in radians, packed
// feature-major.
func (s *STFT) Phase() *timeseries.Series {
	nbins, nframes := s.NBins(), s.NFrames()
	data := make([]float64, nbins*nframes)
	for i, frame := range s.frames {
		for b, c := range frame {
			data[b*nframes+i] = cmplx.Phase(c)
		}
	}

	out, _ := timeseries.NewMulti(s.fs, data, nbins,
		timeseries.WithStartTime(s.start),
		timeseries.WithUnit("rad"),
		timeseries.WithLabel("stft-phase"),
		timeseries.WithCaption(s.caption))

	return out
}
