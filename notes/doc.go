// SPDX-License-Identifier: MIT

// Package notes segments a monophonic performance into note envelopes.
// Given the onset instants, each inter-onset interval is split by three
// bounded searches: the release start at the interval's spectral-flux
// maximum, the attack end at the RMS maximum between onset and release
// start, and the offset at the first semitone-scale jump of the pitch
// curve after the release start (falling back to the next onset). Every
// search is confined to a sub-segment of the interval, so the cost stays
// linear in the interval length and degenerate intervals stay well
// defined.
package notes
