// SPDX-License-Identifier: MIT

package onset

import (
	"fmt"
	"sort"

	"github.com/staccato-dev/staccato/timeseries"
	"github.com/staccato-dev/staccato/timing"
)

// Criteria selects how Params.Threshold is interpreted.
type Criteria int

const (
	// Absolute uses the threshold value directly.
	Absolute Criteria = iota
	// RelativeToMax scales the threshold by the curve's global maximum.
	RelativeToMax
)

// Params controls the peak picker.
type Params struct {
	// MinTime is the minimum separation between onsets, in seconds.
	// Zero disables the distance constraint.
	MinTime float64
	// Threshold is the minimum peak height, interpreted per Criteria.
	Threshold float64
	// Criteria selects absolute or relative-to-max thresholding.
	Criteria Criteria
}

// PickPeaks finds the onsets of a detection curve: plateau-aware local
// maxima at least Threshold high, thinned so that no two survivors sit
// closer than MinTime (the higher peak wins). Each surviving index is
// mapped back to an exact instant through the curve's own rate and start
// time.
func PickPeaks(curve *timeseries.Series, p Params) (timing.PointList, error) {
	if p.Criteria != Absolute && p.Criteria != RelativeToMax {
		return nil, fmt.Errorf("%w: %d", ErrBadCriteria, int(p.Criteria))
	}

	data := curve.Row(0)
	threshold := p.Threshold
	if p.Criteria == RelativeToMax {
		var max float64
		for _, v := range data {
			if v > max {
				max = v
			}
		}
		threshold *= max
	}

	peaks := localMaxima(data)
	kept := peaks[:0]
	for _, ix := range peaks {
		if data[ix] >= threshold {
			kept = append(kept, ix)
		}
	}

	if p.MinTime > 0 {
		fs := curve.SampleRate().Float64()
		if minDist := int(p.MinTime * fs); minDist > 0 {
			kept = thinByDistance(kept, data, minDist)
		}
	}

	onsets := make(timing.PointList, len(kept))
	for i, ix := range kept {
		onsets[i] = timing.PointFromSampleIndex(ix, curve)
	}

	return onsets, nil
}

// localMaxima returns the indexes of all strict local maxima in a single
// left-to-right pass; a flat plateau flanked by lower values counts once,
// at its middle sample.
func localMaxima(data []float64) []int {
	var peaks []int
	i := 1
	for i < len(data)-1 {
		if data[i-1] >= data[i] {
			i++
			continue
		}
		// climb the plateau starting at i
		j := i
		for j < len(data)-1 && data[j+1] == data[i] {
			j++
		}
		if j < len(data)-1 && data[j+1] < data[i] {
			peaks = append(peaks, (i+j)/2)
		}
		i = j + 1
	}

	return peaks
}

// thinByDistance enforces the minimum peak separation: peaks are visited
// from highest to lowest, and each survivor suppresses every unvisited
// peak within minDist samples.
func thinByDistance(peaks []int, data []float64, minDist int) []int {
	order := make([]int, len(peaks))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return data[peaks[order[a]]] > data[peaks[order[b]]]
	})

	suppressed := make([]bool, len(peaks))
	for _, k := range order {
		if suppressed[k] {
			continue
		}
		for j := k - 1; j >= 0 && peaks[k]-peaks[j] < minDist; j-- {
			suppressed[j] = true
		}
		for j := k + 1; j < len(peaks) && peaks[j]-peaks[k] < minDist; j++ {
			suppressed[j] = true
		}
	}

	kept := peaks[:0]
	for i, ix := range peaks {
		if !suppressed[i] {
			kept = append(kept, ix)
		}
	}

	return kept
}
