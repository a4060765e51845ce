// SPDX-License-Identifier: MIT

// Package harmonics extracts the harmonic partial tracks of a monophonic
// signal from its STFT and a pitch curve: for every frame, each integer
// multiple of the fundamental is refined to the highest spectral peak
// within a relative tolerance margin, falling back to the exact bin when
// no peak stands out. The result is a triple of multi-feature series
// (frequency, magnitude, phase), one feature row per harmonic.
package harmonics
