// SPDX-License-Identifier: MIT

// Package audio provides the Clip type — a mono waveform in [−1, 1] backed
// by a timeseries.Series — together with file decoding, a playback
// collaborator contract and a small synthesizer for tests and examples.
//
// Decoding is pluggable through the Decoder interface; the built-in
// implementation reads WAV files (any bit depth go-audio supports) and
// down-mixes multi-channel material to mono by averaging. Playback is a
// fire-and-forget external collaborator: only the Player interface lives
// here.
//
//	clip, err := audio.Load("clarinet.wav")
//	rms, _ := features.RMS(clip.Series, 2048, 512)
package audio
