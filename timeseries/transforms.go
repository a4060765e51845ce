// SPDX-License-Identifier: MIT

package timeseries

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/staccato-dev/staccato/timing"
)

// PadMode selects how Pad extends the sample axis.
type PadMode int

const (
	// PadConstant extends with a fixed value.
	PadConstant PadMode = iota

	// PadEdge repeats the first/last sample.
	PadEdge
)

// Diff returns the n-th discrete difference along the sample axis. The
// series is zero-padded with n samples at the front first, so the output
// length equals the input length and the first n samples reflect the
// forward difference from zero.
func (s *Series) Diff(n int) *Series {
	if n < 1 {
		n = 1
	}

	out := make([]float64, 0, len(s.data))
	for f := 0; f < s.nfeat; f++ {
		row := make([]float64, n+s.nsamp)
		copy(row[n:], s.Row(f))
		for k := 0; k < n; k++ {
			for i := 0; i < len(row)-1; i++ {
				row[i] = row[i+1] - row[i]
			}
			row = row[:len(row)-1]
		}
		out = append(out, row...)
	}

	return s.derive(out, s.nfeat)
}

// HWR half-wave rectifies the series: negative values are clipped to zero.
func (s *Series) HWR() *Series {
	out := make([]float64, len(s.data))
	for i, v := range s.data {
		if v > 0 {
			out[i] = v
		}
	}

	return s.derive(out, s.nfeat)
}

// Abs returns the element-wise absolute value.
func (s *Series) Abs() *Series {
	out := make([]float64, len(s.data))
	for i, v := range s.data {
		out[i] = math.Abs(v)
	}

	return s.derive(out, s.nfeat)
}

// Normalize divides the data by its maximum value. An all-non-positive
// series is returned unchanged rather than producing Inf.
func (s *Series) Normalize() *Series {
	if len(s.data) == 0 {
		return s.derive(nil, s.nfeat)
	}
	maxv := floats.Max(s.data)
	out := append([]float64(nil), s.data...)
	if maxv > 0 {
		floats.Scale(1/maxv, out)
	}

	return s.derive(out, s.nfeat)
}

// Scale multiplies every sample by k.
func (s *Series) Scale(k float64) *Series {
	out := append([]float64(nil), s.data...)
	floats.Scale(k, out)

	return s.derive(out, s.nfeat)
}

// Shift adds k to every sample.
func (s *Series) Shift(k float64) *Series {
	out := append([]float64(nil), s.data...)
	floats.AddConst(k, out)

	return s.derive(out, s.nfeat)
}

// Smooth convolves every feature row with a normalized Hann taper of the
// given length ("same" alignment, zero-padded edges). Used to smooth noisy
// detection and pitch curves before peak searches.
func (s *Series) Smooth(length int) *Series {
	if length < 3 {
		length = 3
	}
	kernel := make([]float64, length)
	var sum float64
	for i := range kernel {
		kernel[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(length-1)))
		sum += kernel[i]
	}
	floats.Scale(1/sum, kernel)

	half := length / 2
	out := make([]float64, len(s.data))
	for f := 0; f < s.nfeat; f++ {
		row := s.Row(f)
		dst := out[f*s.nsamp : (f+1)*s.nsamp]
		for i := range row {
			var acc float64
			for k, w := range kernel {
				j := i + k - half
				if j >= 0 && j < len(row) {
					acc += w * row[j]
				}
			}
			dst[i] = acc
		}
	}

	return s.derive(out, s.nfeat)
}

// Pad extends the sample axis with pre samples at the front and post at the
// back, filled per mode (value is used by PadConstant). The start time
// shifts backward by pre sample periods so every original sample keeps its
// absolute time.
func (s *Series) Pad(pre, post int, mode PadMode, value float64) (*Series, error) {
	if pre < 0 || post < 0 {
		return nil, fmt.Errorf("%w: pre=%d post=%d", ErrInvalidPad, pre, post)
	}

	newLen := pre + s.nsamp + post
	out := make([]float64, 0, s.nfeat*newLen)
	for f := 0; f < s.nfeat; f++ {
		row := s.Row(f)
		first, last := value, value
		if mode == PadEdge && len(row) > 0 {
			first, last = row[0], row[len(row)-1]
		}
		padded := make([]float64, newLen)
		for i := 0; i < pre; i++ {
			padded[i] = first
		}
		copy(padded[pre:], row)
		for i := pre + len(row); i < newLen; i++ {
			padded[i] = last
		}
		out = append(out, padded...)
	}

	res := s.derive(out, s.nfeat)
	res.start = s.start.Sub(timing.FromInt(int64(pre)).Mul(s.SamplePeriod()))

	return res, nil
}

// PadLike zero-pads the end of the series to match the length of ref. Both
// series must share the sampling rate and ref must not be shorter.
func (s *Series) PadLike(ref *Series) (*Series, error) {
	if !s.fs.Equal(ref.fs) {
		return nil, fmt.Errorf("%w: rates %s and %s", ErrDimensionMismatch, s.fs, ref.fs)
	}
	if s.nsamp > ref.nsamp {
		return nil, fmt.Errorf("%w: %d samples > %d", ErrDimensionMismatch, s.nsamp, ref.nsamp)
	}

	out, err := s.Pad(0, ref.nsamp-s.nsamp, PadConstant, 0)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// SliceIndex returns the sub-series of samples [lo, hi). The start time of
// the result is shifted to the absolute time of sample lo.
func (s *Series) SliceIndex(lo, hi int) (*Series, error) {
	if lo < 0 || hi < lo || hi > s.nsamp {
		return nil, fmt.Errorf("%w: [%d, %d) of %d", ErrBadSlice, lo, hi, s.nsamp)
	}

	n := hi - lo
	out := make([]float64, 0, s.nfeat*n)
	for f := 0; f < s.nfeat; f++ {
		out = append(out, s.Row(f)[lo:hi]...)
	}

	res := s.derive(out, s.nfeat)
	res.start = s.start.Add(timing.FromInt(int64(lo)).Div(s.fs))

	return res, nil
}

// SliceSegment returns the sub-series covered by seg, mapping the segment
// limits into this series' own rate. Limits are clamped to the sample axis.
func (s *Series) SliceSegment(seg timing.Segment) (*Series, error) {
	lo, hi := seg.Slice(s)
	if lo < 0 {
		lo = 0
	}
	if lo > s.nsamp {
		lo = s.nsamp
	}
	if hi > s.nsamp {
		hi = s.nsamp
	}
	if hi < lo {
		hi = lo
	}

	return s.SliceIndex(lo, hi)
}

// Merge stacks the feature rows of other below the receiver's. Both series
// must share sampling rate and sample count.
func (s *Series) Merge(other *Series) (*Series, error) {
	if !s.fs.Equal(other.fs) || s.nsamp != other.nsamp {
		return nil, fmt.Errorf("%w: (%d samples @ %s) vs (%d samples @ %s)",
			ErrDimensionMismatch, s.nsamp, s.fs, other.nsamp, other.fs)
	}

	out := make([]float64, 0, len(s.data)+len(other.data))
	out = append(out, s.data...)
	out = append(out, other.data...)

	return s.derive(out, s.nfeat+other.nfeat), nil
}
