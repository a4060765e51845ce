// SPDX-License-Identifier: MIT

package evaluate_test

import (
	"fmt"

	"github.com/staccato-dev/staccato/evaluate"
	"github.com/staccato-dev/staccato/timing"
)

// ExampleOnsets scores a slightly imperfect detection run against the
// annotated ground truth with a 50 ms tolerance.
func ExampleOnsets() {
	targets := timing.PointsFromSeconds([]float64{0.5, 1.0, 1.5})
	detected := timing.PointsFromSeconds([]float64{0.52, 1.45})

	m := evaluate.Onsets(targets, detected, 0.05)
	fmt.Printf("precision %.2f recall %.2f f-measure %.2f\n",
		m.Precision, m.Recall, m.FMeasure)
	// Output:
	// precision 1.00 recall 0.67 f-measure 0.80
}

// ExampleAlign warps a detected onset sequence onto the reference and
// reports the cumulative timing deviation plus the pairing.
func ExampleAlign() {
	ref := timing.PointsFromSeconds([]float64{0.5, 1.0, 1.5})
	detected := timing.PointsFromSeconds([]float64{0.55, 1.0, 1.6})

	dist, path, _ := evaluate.Align(ref, detected, &evaluate.AlignOptions{ReturnPath: true})
	fmt.Printf("distance %.2f\n", dist)
	fmt.Println(path)
	// Output:
	// distance 0.15
	// [[0 0] [1 1] [2 2]]
}
