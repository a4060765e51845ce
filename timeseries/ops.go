// SPDX-License-Identifier: MIT

package timeseries

import (
	"fmt"
	"math"
)

// Binary algebra. Every operation requires identical data shapes and
// returns a fresh series carrying the receiver's temporal metadata.
// Comparisons yield 0/1-valued series.

func (s *Series) sameShape(other *Series) error {
	if s.nfeat != other.nfeat || s.nsamp != other.nsamp {
		return fmt.Errorf("%w: (%d, %d) vs (%d, %d)",
			ErrDimensionMismatch, s.nfeat, s.nsamp, other.nfeat, other.nsamp)
	}

	return nil
}

func (s *Series) zip(other *Series, f func(a, b float64) float64) (*Series, error) {
	if err := s.sameShape(other); err != nil {
		return nil, err
	}
	out := make([]float64, len(s.data))
	for i := range out {
		out[i] = f(s.data[i], other.data[i])
	}

	return s.derive(out, s.nfeat), nil
}

// Add returns the element-wise sum.
func (s *Series) Add(other *Series) (*Series, error) {
	return s.zip(other, func(a, b float64) float64 { return a + b })
}

// Sub returns the element-wise difference.
func (s *Series) Sub(other *Series) (*Series, error) {
	return s.zip(other, func(a, b float64) float64 { return a - b })
}

// Mul returns the element-wise product.
func (s *Series) Mul(other *Series) (*Series, error) {
	return s.zip(other, func(a, b float64) float64 { return a * b })
}

// Div returns the element-wise quotient.
func (s *Series) Div(other *Series) (*Series, error) {
	return s.zip(other, func(a, b float64) float64 { return a / b })
}

// Mod returns the element-wise floating-point remainder.
func (s *Series) Mod(other *Series) (*Series, error) {
	return s.zip(other, math.Mod)
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}

	return 0
}

// Lt returns 1 where the receiver is less than other, 0 elsewhere.
func (s *Series) Lt(other *Series) (*Series, error) {
	return s.zip(other, func(a, b float64) float64 { return boolToFloat(a < b) })
}

// Le returns 1 where the receiver is less than or equal to other.
func (s *Series) Le(other *Series) (*Series, error) {
	return s.zip(other, func(a, b float64) float64 { return boolToFloat(a <= b) })
}

// Gt returns 1 where the receiver is greater than other.
func (s *Series) Gt(other *Series) (*Series, error) {
	return s.zip(other, func(a, b float64) float64 { return boolToFloat(a > b) })
}

// Ge returns 1 where the receiver is greater than or equal to other.
func (s *Series) Ge(other *Series) (*Series, error) {
	return s.zip(other, func(a, b float64) float64 { return boolToFloat(a >= b) })
}

// EqData returns 1 where both series hold equal samples.
func (s *Series) EqData(other *Series) (*Series, error) {
	return s.zip(other, func(a, b float64) float64 { return boolToFloat(a == b) })
}

// NeData returns 1 where the samples differ.
func (s *Series) NeData(other *Series) (*Series, error) {
	return s.zip(other, func(a, b float64) float64 { return boolToFloat(a != b) })
}
