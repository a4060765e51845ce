// SPDX-License-Identifier: MIT

package timeseries

import (
	"fmt"
	"math"
)

// FilterType selects the Butterworth response shape.
type FilterType int

const (
	// LowPass passes frequencies below the critical frequency.
	LowPass FilterType = iota

	// HighPass passes frequencies above the critical frequency.
	HighPass

	// BandPass passes the band between the critical frequency and the upper
	// band edge (WithBand).
	BandPass

	// BandStop rejects the band between the critical frequency and the upper
	// band edge (WithBand).
	BandStop
)

// DefaultFilterOrder is the order used when WithOrder is not supplied.
const DefaultFilterOrder = 4

type filterConfig struct {
	order     int
	high      float64
	zeroPhase bool
}

// FilterOption configures Filter via functional arguments.
type FilterOption func(*filterConfig)

// WithOrder sets the filter order (>= 1).
func WithOrder(n int) FilterOption { return func(c *filterConfig) { c.order = n } }

// WithBand sets the upper band edge for BandPass/BandStop.
func WithBand(high float64) FilterOption { return func(c *filterConfig) { c.high = high } }

// WithZeroPhase applies the filter forward and backward, squaring the
// magnitude response and cancelling the phase delay.
func WithZeroPhase() FilterOption { return func(c *filterConfig) { c.zeroPhase = true } }

// biquad is one second-order section in direct form II transposed.
type biquad struct {
	b0, b1, b2 float64
	a1, a2     float64
}

func (q biquad) apply(dst, src []float64) {
	var z1, z2 float64
	for i, x := range src {
		y := q.b0*x + z1
		z1 = q.b1*x - q.a1*y + z2
		z2 = q.b2*x - q.a2*y
		dst[i] = y
	}
}

// butterworthSections designs a cascade realizing an order-n Butterworth
// low- or high-pass at normalized frequency freq/fs. Pole-pair Q values come
// from the analog prototype pole angles; an odd order adds one first-order
// section (realized as a biquad with zeroed second-order terms).
func butterworthSections(freq, fs float64, typ FilterType, order int) []biquad {
	w := 2 * math.Pi * freq / fs
	cosw, sinw := math.Cos(w), math.Sin(w)

	secs := make([]biquad, 0, (order+1)/2)
	for k := 0; k < order/2; k++ {
		phi := math.Pi * float64(2*k+order+1) / float64(2*order)
		q := 1 / (2 * math.Abs(math.Cos(phi)))
		alpha := sinw / (2 * q)

		var b0, b1, b2 float64
		if typ == LowPass {
			b0, b1, b2 = (1-cosw)/2, 1-cosw, (1-cosw)/2
		} else {
			b0, b1, b2 = (1+cosw)/2, -(1 + cosw), (1+cosw)/2
		}
		a0 := 1 + alpha
		secs = append(secs, biquad{
			b0: b0 / a0, b1: b1 / a0, b2: b2 / a0,
			a1: -2 * cosw / a0, a2: (1 - alpha) / a0,
		})
	}

	if order%2 == 1 {
		k := math.Tan(w / 2)
		den := k + 1
		if typ == LowPass {
			secs = append(secs, biquad{b0: k / den, b1: k / den, a1: (k - 1) / den})
		} else {
			secs = append(secs, biquad{b0: 1 / den, b1: -1 / den, a1: (k - 1) / den})
		}
	}

	return secs
}

func reverse(x []float64) {
	for l, r := 0, len(x)-1; l < r; l, r = l+1, r-1 {
		x[l], x[r] = x[r], x[l]
	}
}

func runCascade(row []float64, secs []biquad, zeroPhase bool) []float64 {
	out := append([]float64(nil), row...)
	for _, sec := range secs {
		sec.apply(out, out)
	}
	if zeroPhase {
		reverse(out)
		for _, sec := range secs {
			sec.apply(out, out)
		}
		reverse(out)
	}

	return out
}

// Filter applies a Butterworth digital filter to every feature row and
// returns the filtered series. freq is the critical frequency in Hz; for
// BandPass/BandStop it is the lower band edge and WithBand supplies the
// upper one. The filter is causal unless WithZeroPhase is given.
func (s *Series) Filter(freq float64, typ FilterType, opts ...FilterOption) (*Series, error) {
	cfg := filterConfig{order: DefaultFilterOrder}
	for _, opt := range opts {
		opt(&cfg)
	}

	nyq := s.Nyquist().Float64()
	switch {
	case cfg.order < 1:
		return nil, fmt.Errorf("%w: order %d", ErrFilterSpec, cfg.order)
	case freq <= 0 || freq >= nyq:
		return nil, fmt.Errorf("%w: frequency %g outside (0, %g)", ErrFilterSpec, freq, nyq)
	case typ == BandPass || typ == BandStop:
		if cfg.high <= freq || cfg.high >= nyq {
			return nil, fmt.Errorf("%w: band edge %g outside (%g, %g)", ErrFilterSpec, cfg.high, freq, nyq)
		}
	case typ != LowPass && typ != HighPass:
		return nil, fmt.Errorf("%w: unknown type %d", ErrFilterSpec, typ)
	}

	fs := s.fs.Float64()
	out := make([]float64, 0, len(s.data))
	for f := 0; f < s.nfeat; f++ {
		row := s.Row(f)
		var filtered []float64
		switch typ {
		case LowPass, HighPass:
			filtered = runCascade(row, butterworthSections(freq, fs, typ, cfg.order), cfg.zeroPhase)
		case BandPass:
			filtered = runCascade(row, butterworthSections(freq, fs, HighPass, cfg.order), cfg.zeroPhase)
			filtered = runCascade(filtered, butterworthSections(cfg.high, fs, LowPass, cfg.order), cfg.zeroPhase)
		case BandStop:
			// Reject the band as the crossover sum of a low-pass below it
			// and a high-pass above it.
			low := runCascade(row, butterworthSections(freq, fs, LowPass, cfg.order), cfg.zeroPhase)
			high := runCascade(row, butterworthSections(cfg.high, fs, HighPass, cfg.order), cfg.zeroPhase)
			filtered = low
			for i := range filtered {
				filtered[i] += high[i]
			}
		}
		out = append(out, filtered...)
	}

	return s.derive(out, s.nfeat), nil
}
