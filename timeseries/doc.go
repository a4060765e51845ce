// SPDX-License-Identifier: MIT

// Package timeseries implements the sampled-signal container every other
// staccato package builds on: a value-like Series with a sampling rate, an
// exact start-time offset and an (nfeatures × nsamples) float64 buffer.
//
// 🚀 Design:
//
//	A Series is immutable in effect. Every transform — Diff, HWR, Normalize,
//	Pad, Resample, Filter, slicing, arithmetic — returns a fresh, independent
//	Series; the receiver is never mutated. The temporal-reference scalars
//	(fs, start time) are exact rationals from package timing, so chains of
//	derived series (audio → STFT → pitch → ODF, each at its own rate) never
//	accumulate rounding drift. Floating point lives only in the bulk data
//	buffer.
//
// ✨ Surface:
//   - construction: New / NewMulti with functional options
//   - algebra: Add, Sub, Mul, Div, Mod and comparisons (0/1-valued output),
//     all requiring identical shape (ErrDimensionMismatch otherwise)
//   - reshaping: Diff, HWR, Abs, Normalize, Scale, Smooth, Pad, PadLike,
//     Merge, SliceIndex, SliceSegment
//   - rate conversion: Resample (FFT-based; start time must be zero)
//   - filtering: Butterworth biquad cascade, causal or zero-phase
//
// ⚙️ Usage:
//
//	ts, err := timeseries.New(timing.FromInt(44100), samples)
//	odf := ts.Diff(1).HWR()
//	slice := ts.SliceSegment(seg) // start time shifts to the slice start
//
// Performance: transforms are O(nfeatures·nsamples); Resample is
// O(n log n). Nothing is shared between input and output buffers.
package timeseries
