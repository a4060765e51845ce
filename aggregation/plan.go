// SPDX-License-Identifier: MIT

package aggregation

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/window"
)

// Plan holds the padding and hop geometry of one sliding-window pass. It is
// computed once per pass and shared with packages (spectral) that need the
// raw frames rather than a reduced series.
type Plan struct {
	WindowSize int
	HopSize    int
	PrePad     int
	PostPad    int
	NumHops    int
}

// NewPlan validates the window geometry and computes the centered-alignment
// padding for an input of nsamples samples.
func NewPlan(windowSize, hopSize, nsamples int) (Plan, error) {
	if windowSize < 2 {
		return Plan{}, fmt.Errorf("%w: got %d", ErrWindowTooSmall, windowSize)
	}
	if hopSize > windowSize {
		return Plan{}, fmt.Errorf("%w: hop %d > window %d", ErrHopTooLarge, hopSize, windowSize)
	}

	pre := windowSize / 2
	numHops := (pre+nsamples-1)/hopSize + 1
	remainder := (pre + nsamples - 1) % hopSize
	post := windowSize - remainder - 1

	return Plan{
		WindowSize: windowSize,
		HopSize:    hopSize,
		PrePad:     pre,
		PostPad:    post,
		NumHops:    numHops,
	}, nil
}

// Pad returns data zero-extended per the plan; the result holds every frame.
func (p Plan) Pad(data []float64) []float64 {
	padded := make([]float64, p.PrePad+len(data)+p.PostPad)
	copy(padded[p.PrePad:], data)

	return padded
}

// Frame returns the i-th window of the padded buffer as a shared view.
func (p Plan) Frame(padded []float64, i int) []float64 {
	lo := i * p.HopSize

	return padded[lo : lo+p.WindowSize]
}

// Taper selects the apodization (tapering) function applied to each window
// before reduction.
type Taper int

const (
	// NoTaper applies no apodization.
	NoTaper Taper = iota
	// Rectangular is the boxcar window (all ones).
	Rectangular
	// Triangular is the triangular (Bartlett-like) window.
	Triangular
	// Hann is the raised-cosine window. The default for spectral work.
	Hann
	// Hamming is the Hamming window.
	Hamming
	// Blackman is the Blackman window.
	Blackman
	// BlackmanHarris is the 4-term Blackman-Harris window.
	BlackmanHarris
	// Nuttall is the Nuttall window.
	Nuttall
	// BartlettHann is the Bartlett-Hann window.
	BartlettHann
	// FlatTop is the flat-top window.
	FlatTop
)

// Values materializes the taper coefficients for an n-sample window, or nil
// for NoTaper.
func (t Taper) Values(n int) ([]float64, error) {
	var fn func([]float64) []float64
	switch t {
	case NoTaper:
		return nil, nil
	case Rectangular:
		fn = window.Rectangular
	case Triangular:
		fn = window.Triangular
	case Hann:
		fn = window.Hann
	case Hamming:
		fn = window.Hamming
	case Blackman:
		fn = window.Blackman
	case BlackmanHarris:
		fn = window.BlackmanHarris
	case Nuttall:
		fn = window.Nuttall
	case BartlettHann:
		fn = window.BartlettHann
	case FlatTop:
		fn = window.FlatTop
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadTaper, int(t))
	}

	return []float64(window.NewValues(fn, n)), nil
}
