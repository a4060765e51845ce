// SPDX-License-Identifier: MIT

package timeseries

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/staccato-dev/staccato/timing"
)

// Resample converts the series to a new sampling rate using Fourier-domain
// rate conversion: the spectrum of each feature row is truncated or
// zero-extended to the new length and inverted. The output length is the
// exact rational nsamples·newFs/fs rounded to nearest.
//
// Only series anchored at start time zero can be resampled; resampling a
// shifted series would silently re-anchor its samples (ErrUnsupportedStart).
func (s *Series) Resample(newFs timing.Rational) (*Series, error) {
	if !s.start.IsZero() {
		return nil, ErrUnsupportedStart
	}
	if newFs.Sign() <= 0 {
		return nil, ErrInvalidRate
	}
	if s.nsamp == 0 {
		return nil, ErrEmptyData
	}

	ratio := newFs.Div(s.fs)
	newN := timing.FromInt(int64(s.nsamp)).Mul(ratio).RoundNearest()
	if newN < 1 {
		return nil, fmt.Errorf("%w: %d samples at ratio %s", ErrBadResample, s.nsamp, ratio)
	}

	fwd := fourier.NewFFT(s.nsamp)
	inv := fourier.NewFFT(newN)
	scale := 1 / float64(s.nsamp)

	out := make([]float64, 0, s.nfeat*newN)
	for f := 0; f < s.nfeat; f++ {
		coeffs := fwd.Coefficients(nil, s.Row(f))

		resized := make([]complex128, newN/2+1)
		n := len(coeffs)
		if len(resized) < n {
			n = len(resized)
		}
		copy(resized, coeffs[:n])

		row := inv.Sequence(nil, resized)
		for i := range row {
			row[i] *= scale
		}
		out = append(out, row...)
	}

	res := s.derive(out, s.nfeat)
	res.fs = newFs

	return res, nil
}

// ResampleAndPadLike resamples to ref's rate, then zero-pads the tail to
// ref's length. The usual way to bring a lower-rate curve onto another
// curve's grid before element-wise algebra.
func (s *Series) ResampleAndPadLike(ref *Series) (*Series, error) {
	resampled, err := s.Resample(ref.fs)
	if err != nil {
		return nil, err
	}

	return resampled.PadLike(ref)
}
