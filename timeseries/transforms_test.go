// SPDX-License-Identifier: MIT

package timeseries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staccato-dev/staccato/timeseries"
	"github.com/staccato-dev/staccato/timing"
)

func mustSeries(t *testing.T, fs int64, data []float64, opts ...timeseries.Option) *timeseries.Series {
	t.Helper()
	s, err := timeseries.New(timing.FromInt(fs), data, opts...)
	require.NoError(t, err)
	return s
}

// TestDiff_PreservesLength verifies that Diff keeps nsamples and that the
// first n samples reflect the zero pre-padding.
func TestDiff_PreservesLength(t *testing.T) {
	s := mustSeries(t, 10, []float64{2, 5, 4, 9})

	d := s.Diff(1)
	assert.Equal(t, s.NSamples(), d.NSamples(), "diff must preserve length")
	assert.Equal(t, []float64{2, 3, -1, 5}, d.Data(), "first sample is the forward difference from zero")

	d2 := s.Diff(2)
	assert.Equal(t, s.NSamples(), d2.NSamples())
	assert.Equal(t, []float64{2, 1, -4, 6}, d2.Data())
}

// TestHWR verifies half-wave rectification.
func TestHWR(t *testing.T) {
	s := mustSeries(t, 10, []float64{-2, 0, 3, -0.5})
	assert.Equal(t, []float64{0, 0, 3, 0}, s.HWR().Data())
}

// TestNormalize verifies division by the maximum and the all-non-positive
// guard.
func TestNormalize(t *testing.T) {
	s := mustSeries(t, 10, []float64{1, 2, 4})
	assert.Equal(t, []float64{0.25, 0.5, 1}, s.Normalize().Data())

	z := mustSeries(t, 10, []float64{0, -1, 0})
	assert.Equal(t, []float64{0, -1, 0}, z.Normalize().Data(), "no positive max leaves data unchanged")
}

// TestScaleShift verifies the scalar transforms.
func TestScaleShift(t *testing.T) {
	s := mustSeries(t, 10, []float64{1, -2, 3})
	assert.Equal(t, []float64{2, -4, 6}, s.Scale(2).Data())
	assert.Equal(t, []float64{1.5, -1.5, 3.5}, s.Shift(0.5).Data())
	assert.Equal(t, []float64{1, -2, 3}, s.Data(), "transforms never mutate the source")
}

// TestPad_ShiftsStartBackward verifies values and the exact start shift.
func TestPad_ShiftsStartBackward(t *testing.T) {
	s := mustSeries(t, 100, []float64{1, 2}, timeseries.WithStartTime(timing.NewRational(1, 10)))

	p, err := s.Pad(2, 1, timeseries.PadConstant, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1, 2, 0}, p.Data())
	// 1/10 - 2/100 = 8/100
	assert.True(t, p.StartTime().Equal(timing.NewRational(8, 100)), "start must shift back by pre*ts")

	e, err := s.Pad(1, 1, timeseries.PadEdge, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 2, 2}, e.Data())

	_, err = s.Pad(-1, 0, timeseries.PadConstant, 0)
	assert.ErrorIs(t, err, timeseries.ErrInvalidPad)
}

// TestSliceIndex_ShiftsStart verifies data and the absolute start of the
// slice.
func TestSliceIndex_ShiftsStart(t *testing.T) {
	s := mustSeries(t, 100, []float64{0, 1, 2, 3, 4})

	sub, err := s.SliceIndex(2, 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, sub.Data())
	assert.True(t, sub.StartTime().Equal(timing.NewRational(2, 100)))

	_, err = s.SliceIndex(3, 2)
	assert.ErrorIs(t, err, timeseries.ErrBadSlice)
}

// TestSliceSegment verifies slicing through an exact time segment.
func TestSliceSegment(t *testing.T) {
	s := mustSeries(t, 100, make([]float64, 200))

	seg, err := timing.NewSegmentSeconds(0.5, 1.0)
	require.NoError(t, err)
	sub, err := s.SliceSegment(seg)
	require.NoError(t, err)
	assert.Equal(t, 50, sub.NSamples())
	assert.True(t, sub.StartTime().Equal(timing.NewRational(1, 2)))
}

// TestSliceSegment_ClampsOutOfRange verifies that segments reaching or
// lying past the series end clamp to the sample axis instead of erroring.
func TestSliceSegment_ClampsOutOfRange(t *testing.T) {
	s := mustSeries(t, 100, make([]float64, 200)) // 2 s of samples

	overhang, err := timing.NewSegmentSeconds(1.5, 3.0)
	require.NoError(t, err)
	sub, err := s.SliceSegment(overhang)
	require.NoError(t, err)
	assert.Equal(t, 50, sub.NSamples(), "the tail past the end is dropped")

	beyond, err := timing.NewSegmentSeconds(3.0, 4.0)
	require.NoError(t, err)
	empty, err := s.SliceSegment(beyond)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.NSamples(), "a fully out-of-range segment is empty")
}

// TestArithmetic_ShapeMismatch verifies the dimensionality guard for the
// documented (1,100) + (1,150) case.
func TestArithmetic_ShapeMismatch(t *testing.T) {
	a := mustSeries(t, 100, make([]float64, 100))
	b := mustSeries(t, 100, make([]float64, 150))

	_, err := a.Add(b)
	assert.ErrorIs(t, err, timeseries.ErrDimensionMismatch)
}

// TestArithmetic_Elementwise verifies the binary operators.
func TestArithmetic_Elementwise(t *testing.T) {
	a := mustSeries(t, 10, []float64{1, 4, 9})
	b := mustSeries(t, 10, []float64{1, 2, 3})

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 6, 12}, sum.Data())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 6}, diff.Data())

	quot, err := a.Div(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, quot.Data())

	gt, err := a.Gt(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 1}, gt.Data())
}

// TestPadLike verifies tail padding to a reference length.
func TestPadLike(t *testing.T) {
	short := mustSeries(t, 10, []float64{1, 2})
	long := mustSeries(t, 10, []float64{0, 0, 0, 0})

	p, err := short.PadLike(long)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 0, 0}, p.Data())
	assert.True(t, p.StartTime().Equal(short.StartTime()), "tail padding must not move the start")

	_, err = long.PadLike(short)
	assert.ErrorIs(t, err, timeseries.ErrDimensionMismatch)
}
