// SPDX-License-Identifier: MIT

// Package pitch implements fundamental-frequency estimation and pitch-curve
// conditioning.
//
//   - HPS — harmonic product spectrum over STFT frames, with a +1 magnitude
//     offset for numeric stability and a configurable decimation scheme.
//   - YIN — time-domain difference function with cumulative mean
//     normalization, absolute thresholding and parabolic interpolation.
//   - Filter — interpolates unstable samples of a pitch curve and zeroes
//     isolated points between unvoiced frames.
//   - Mode — windowed-mode smoothing on a semitone grid.
//
// Unvoiced frames carry the value 0 Hz throughout.
package pitch
