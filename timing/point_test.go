// SPDX-License-Identifier: MIT

package timing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staccato-dev/staccato/timing"
)

// fakeSeries implements timing.Sampled for mapping tests without pulling
// in the timeseries package.
type fakeSeries struct {
	fs    timing.Rational
	start timing.Rational
}

func (f fakeSeries) SampleRate() timing.Rational { return f.fs }
func (f fakeSeries) StartTime() timing.Rational  { return f.start }

// TestPoint_MapIndex verifies index = round((time - start) * fs).
func TestPoint_MapIndex(t *testing.T) {
	ref := fakeSeries{fs: timing.FromInt(44100), start: timing.FromInt(0)}

	assert.Equal(t, 0, timing.PointAt(timing.FromInt(0)).MapIndex(ref))
	assert.Equal(t, 22050, timing.PointAt(timing.NewRational(1, 2)).MapIndex(ref))
	assert.Equal(t, 44100, timing.PointAt(timing.FromInt(1)).MapIndex(ref))

	// non-zero start shifts the mapping
	shifted := fakeSeries{fs: timing.FromInt(100), start: timing.NewRational(1, 2)}
	assert.Equal(t, 0, timing.PointAt(timing.NewRational(1, 2)).MapIndex(shifted))
	assert.Equal(t, 50, timing.PointAt(timing.FromInt(1)).MapIndex(shifted))
}

// TestPoint_MapIndexIdempotent verifies the re-mapping contract: a point
// reconstructed from its mapped index maps back to the same index.
func TestPoint_MapIndexIdempotent(t *testing.T) {
	ref := fakeSeries{fs: timing.NewRational(44100, 512), start: timing.NewRational(3, 7)}

	p := timing.PointAt(timing.NewRational(123456, 99991))
	ix := p.MapIndex(ref)
	again := timing.PointFromSampleIndex(ix, ref)
	assert.Equal(t, ix, again.MapIndex(ref), "re-mapping must be idempotent")
}

// TestPoint_CrossRateMapping verifies that mapping an instant through one
// series and back lands within one sample of the direct mapping into a
// second series at a different rate and start.
func TestPoint_CrossRateMapping(t *testing.T) {
	a := fakeSeries{fs: timing.FromInt(44100), start: timing.FromInt(0)}
	b := fakeSeries{fs: timing.NewRational(44100, 512), start: timing.NewRational(1, 4)}

	p := timing.PointAt(timing.NewRational(987, 1000))
	viaA := timing.PointFromSampleIndex(p.MapIndex(a), a)

	direct := p.MapIndex(b)
	indirect := viaA.MapIndex(b)
	diff := direct - indirect
	if diff < 0 {
		diff = -diff
	}
	assert.LessOrEqual(t, diff, 1, "cross-rate mapping must stay within one sample")
}

// TestPoint_Ordering verifies comparison and subtraction.
func TestPoint_Ordering(t *testing.T) {
	p := timing.PointFromSeconds(0.5)
	q := timing.PointFromSeconds(1.25)

	assert.True(t, p.Before(q))
	assert.True(t, q.After(p))
	assert.False(t, p.Equal(q))
	assert.True(t, q.Sub(p).Equal(timing.NewRational(3, 4)), "duration must be exact")
}

// TestSegment_Invariant verifies that start > end is rejected.
func TestSegment_Invariant(t *testing.T) {
	_, err := timing.NewSegmentSeconds(2.0, 1.0)
	assert.ErrorIs(t, err, timing.ErrInvalidInterval)

	seg, err := timing.NewSegmentSeconds(1.0, 2.5)
	require.NoError(t, err)
	assert.True(t, seg.Duration().Equal(timing.NewRational(3, 2)))
	assert.True(t, seg.Contains(timing.PointFromSeconds(1.5)))
	assert.False(t, seg.Contains(timing.PointFromSeconds(3.0)))
}

// TestSegment_Slice verifies the mapped index range and the hi >= lo
// clamp.
func TestSegment_Slice(t *testing.T) {
	ref := fakeSeries{fs: timing.FromInt(100), start: timing.FromInt(0)}

	seg, err := timing.NewSegmentSeconds(0.5, 1.0)
	require.NoError(t, err)
	lo, hi := seg.Slice(ref)
	assert.Equal(t, 50, lo)
	assert.Equal(t, 100, hi)
	assert.GreaterOrEqual(t, hi, lo)
}

// TestPointList_ToSegments verifies disjoint pairing and the odd-count
// error.
func TestPointList_ToSegments(t *testing.T) {
	pl := timing.PointsFromSeconds([]float64{0.1, 0.5, 0.9, 1.4})
	segs, err := pl.ToSegments()
	require.NoError(t, err)
	require.Len(t, segs, 2)
	assert.True(t, segs[0].Start().Equal(pl[0]))
	assert.True(t, segs[1].End().Equal(pl[3]))

	_, err = timing.PointsFromSeconds([]float64{0.1, 0.5, 0.9}).ToSegments()
	assert.ErrorIs(t, err, timing.ErrOddPointCount)
}

// TestPointList_Insert verifies chronological insertion and plain append.
func TestPointList_Insert(t *testing.T) {
	pl := timing.PointsFromSeconds([]float64{0.1, 0.5, 0.9})

	pl = pl.Insert(timing.PointFromSeconds(0.3))
	assert.Equal(t, []float64{0.1, 0.3, 0.5, 0.9}, pl.Seconds())

	pl = pl.Append(timing.PointFromSeconds(1.2))
	assert.Equal(t, 1.2, pl[len(pl)-1].Seconds())
}
