// SPDX-License-Identifier: MIT

package onset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staccato-dev/staccato/timeseries"
	"github.com/staccato-dev/staccato/timing"
)

func series(t *testing.T, data []float64) *timeseries.Series {
	t.Helper()
	s, err := timeseries.New(timing.FromInt(100), data)
	require.NoError(t, err)
	return s
}

// TestAccumulateRuns_TwoBumps verifies that every positive run collapses
// into exactly one sample, placed at the run's arg-max and holding the
// run's sum.
func TestAccumulateRuns_TwoBumps(t *testing.T) {
	in := series(t, []float64{0, 1, 3, 2, 0, 0, 2, 5, 1, 0})
	out := accumulateRuns(in).Row(0)

	want := []float64{0, 0, 6, 0, 0, 0, 0, 8, 0, 0}
	assert.Equal(t, want, out)
}

// TestAccumulateRuns_TrailingRunIsFlushed verifies that a run still open
// at the end of the curve is emitted, not dropped.
func TestAccumulateRuns_TrailingRunIsFlushed(t *testing.T) {
	in := series(t, []float64{0, 1, 2})
	out := accumulateRuns(in).Row(0)

	assert.Equal(t, []float64{0, 0, 3}, out)
}

// TestLocalMaxima covers strict maxima, plateaus (counted once, at the
// middle) and the exclusion of curve endpoints.
func TestLocalMaxima(t *testing.T) {
	assert.Equal(t, []int{1, 3}, localMaxima([]float64{0, 2, 0, 5, 0}))
	assert.Equal(t, []int{3}, localMaxima([]float64{0, 1, 3, 3, 3, 1, 0}),
		"a plateau counts once, at its middle sample")
	assert.Empty(t, localMaxima([]float64{0, 1, 2, 3}),
		"a rising edge ending at the boundary is not a peak")
	assert.Empty(t, localMaxima([]float64{5, 4, 3}))
}

// TestThinByDistance verifies that the higher of two close peaks
// survives, regardless of order.
func TestThinByDistance(t *testing.T) {
	data := []float64{0, 0.8, 0, 1.0, 0, 0, 0, 0, 0, 0, 0.5, 0}
	peaks := []int{1, 3, 10}

	kept := thinByDistance(peaks, data, 5)
	assert.Equal(t, []int{3, 10}, kept,
		"the 0.8 peak sits within minDist of the higher 1.0 peak")
}
