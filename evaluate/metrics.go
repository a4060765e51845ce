// SPDX-License-Identifier: MIT

package evaluate

import (
	"sort"

	"github.com/staccato-dev/staccato/timing"
)

// Metrics holds the outcome of an onset evaluation.
type Metrics struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int

	Precision float64
	Recall    float64
	FMeasure  float64
}

// Onsets scores predicted onsets against annotated targets. Pairs are
// formed greedily, nearest first: each target matches at most one
// prediction within the tolerance (in seconds), and every unmatched
// prediction counts as a false positive. Distances are compared to the
// tolerance exactly, on the points' own rationals, so a prediction
// sitting right on the boundary never drops out to float rounding.
func Onsets(targets, predictions timing.PointList, tolerance float64) Metrics {
	type pair struct {
		dist float64
		t, p int
	}

	tol := timing.FromFloat(tolerance)
	pairs := make([]pair, 0, len(targets)*len(predictions))
	for i, tp := range targets {
		for j, pp := range predictions {
			d := tp.Sub(pp)
			if d.Sign() < 0 {
				d = d.Neg()
			}
			if d.LessEq(tol) {
				pairs = append(pairs, pair{dist: d.Float64(), t: i, p: j})
			}
		}
	}
	sort.Slice(pairs, func(a, b int) bool { return pairs[a].dist < pairs[b].dist })

	targetUsed := make([]bool, len(targets))
	predUsed := make([]bool, len(predictions))
	matched := 0
	for _, pr := range pairs {
		if targetUsed[pr.t] || predUsed[pr.p] {
			continue
		}
		targetUsed[pr.t] = true
		predUsed[pr.p] = true
		matched++
	}

	m := Metrics{
		TruePositives:  matched,
		FalsePositives: len(predictions) - matched,
		FalseNegatives: len(targets) - matched,
	}
	if len(predictions) > 0 {
		m.Precision = float64(matched) / float64(len(predictions))
	}
	if len(targets) > 0 {
		m.Recall = float64(matched) / float64(len(targets))
	}
	if m.Precision+m.Recall > 0 {
		m.FMeasure = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}

	return m
}
