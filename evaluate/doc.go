// SPDX-License-Identifier: MIT

// Package evaluate scores onset detection output against reference
// annotations.
//
// 🚀 What it does
//
//   - Onsets — precision, recall and F-measure with a configurable time
//     tolerance: each annotated onset is greedily paired with its closest
//     unmatched prediction, nearest pairs first.
//   - Align — dynamic-time-warping alignment between two onset sequences,
//     for inspecting how a detector's timing drifts along a performance.
//
// ✨ Key features:
//   - full-matrix mode: exact O(N·M) time & memory, optional warp path
//   - rolling mode: O(min(N,M)) memory when only the distance is needed
//   - optional Sakoe–Chiba band (|i−j| ≤ w) to bound the warp
//   - slope penalty to discourage excessive stretching
//
// ⚙️ Usage:
//
//	m := evaluate.Onsets(annotated, detected, 0.05)
//	fmt.Printf("F-measure: %.3f\n", m.FMeasure)
//
//	opts := &evaluate.AlignOptions{ReturnPath: true}
//	dist, path, err := evaluate.Align(annotated, detected, opts)
package evaluate
