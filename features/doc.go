// SPDX-License-Identifier: MIT

// Package features implements the frame-level descriptors of staccato:
// time-domain envelopes (peak envelope, RMS, zero-crossing rate),
// spectral-shape descriptors over a magnitude spectrogram (flatness, HFC,
// centroid, spread, skewness, kurtosis, entropy, energy, flux), harmonic
// descriptors over extracted partial tracks (harmonic centroid, harmonic
// energy, noisiness, odd-to-even ratio) and expressive descriptors over
// note-level structures (local tempo, legato index).
//
// Every extractor is a pure function producing a fresh Series at the
// input's frame rate; degenerate frames (all-zero denominators at silence
// boundaries) yield the neutral value 0 instead of NaN.
package features
