// SPDX-License-Identifier: MIT

// Package timing provides the exact temporal-reference model shared by every
// sampled signal in staccato: rational time scalars, instant markers (Point)
// and intervals (Segment).
//
// 🚀 Why exact time?
//
//	A pitch curve computed at one hop size must be correlated with an RMS
//	curve computed at another, and both with the audio they derive from.
//	Chaining floating-point rate conversions drifts; a Point therefore holds
//	its instant as an exact rational number of seconds and is converted to a
//	sample index only at the moment it is mapped into a concrete series.
//
// ✨ Key types:
//   - Rational — immutable exact scalar (seconds, rates, ratios)
//   - Sampled  — anything with a sample rate and a start time
//   - Point / PointList — instants, mappable into any Sampled
//   - Segment / SegmentList — ordered Point pairs, sliceable in any Sampled
//
// ⚙️ Usage:
//
//	p := timing.PointFromSeconds(0.5)
//	i := p.MapIndex(rmsCurve)             // index valid for rmsCurve
//	j := p.MapIndex(audioClip)            // same instant, other rate
//
// Index mapping uses round-to-nearest (ties away from zero), so
// PointFromSampleIndex(p.MapIndex(s), s).MapIndex(s) == p.MapIndex(s) for
// every series s.
//
// Point and Segment lists round-trip through newline-delimited text files
// with no loss: the exact decimal (or fractional) string is persisted, never
// a float.
package timing
