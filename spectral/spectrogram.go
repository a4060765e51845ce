// SPDX-License-Identifier: MIT

package spectral

import (
	"github.com/staccato-dev/staccato/timeseries"
)

// Power selects the exponent applied to the STFT magnitude.
type Power float64

const (
	// Amplitude keeps |X| as is.
	Amplitude Power = 1
	// Energy squares the magnitude.
	Energy Power = 2
)

// Spectrogram is a real-valued magnitude spectrogram: a multi-feature
// Series (one feature row per frequency bin) plus the bin frequencies.
type Spectrogram struct {
	*timeseries.Series
	Frequencies []float64
}

// SpectrogramOption configures a spectrogram computation.
type SpectrogramOption func(*specConfig)

type specConfig struct {
	power    Power
	decibels bool
	stft     []STFTOption
}

// WithPower selects the magnitude exponent. Default Amplitude.
func WithPower(p Power) SpectrogramOption { return func(c *specConfig) { c.power = p } }

// WithDecibels converts the output to dB.
func WithDecibels() SpectrogramOption { return func(c *specConfig) { c.decibels = true } }

// WithSTFTOptions forwards options to the underlying transform.
func WithSTFTOptions(opts ...STFTOption) SpectrogramOption {
	return func(c *specConfig) { c.stft = append(c.stft, opts...) }
}

// ComputeSpectrogram computes |STFT|^p for a single-feature series.
func ComputeSpectrogram(ts *timeseries.Series, windowSize, hopSize int, opts ...SpectrogramOption) (*Spectrogram, error) {
	cfg := specConfig{power: Amplitude}
	for _, opt := range opts {
		opt(&cfg)
	}

	stft, err := ComputeSTFT(ts, windowSize, hopSize, cfg.stft...)
	if err != nil {
		return nil, err
	}

	return FromSTFT(stft, cfg.power, cfg.decibels), nil
}

// FromSTFT reduces an existing transform to a spectrogram without
// recomputing the frames.
func FromSTFT(stft *STFT, power Power, decibels bool) *Spectrogram {
	mag := stft.Magnitude(float64(power), decibels)
	label := "spectrogram"
	if power == Energy {
		label = "energy-spectrogram"
	}

	return &Spectrogram{
		Series:      mag.Relabel(label, mag.Unit()),
		Frequencies: stft.Frequencies(),
	}
}

// Bin returns the time series of one frequency bin as a shared row.
func (s *Spectrogram) Bin(i int) []float64 { return s.Row(i) }
