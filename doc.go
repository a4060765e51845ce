// Package staccato extracts expressive musical information from
// monophonic audio — from exact rational timekeeping to onsets, note
// envelopes and harmonic tracks.
//
// 🚀 What is staccato?
//
//	A library for content-based analysis of musical performances:
//		• Exact timing: rational sample rates, points & segments that
//		  survive resampling without drift
//		• Time series: copy-on-write feature curves with slicing,
//		  padding, differencing and rational resampling
//		• Sliding windows: centered aggregation with exact rate math
//		• Spectral transforms: STFT, spectrogram, mel bands, CQT
//		• Feature extraction: envelopes, spectral shape, harmonic ratios
//		  and expressive descriptors
//		• Pitch: HPS and YIN f0 tracking with semitone-grid smoothing
//		• Segmentation: onset detection, note envelopes, evaluation
//
// ✨ Why choose staccato?
//
//   - Exact by construction – frame instants are rationals, never
//     accumulated floats
//   - Composable – every analysis step consumes and produces the same
//     Series type
//   - Pure Go pipelines – gonum under the hood, no cgo
//
// Under the hood, everything is organized per concern:
//
//	timing/      — rational numbers, points, segments, CSV lists
//	timeseries/  — the Series container, transforms & resampling
//	aggregation/ — centered sliding-window machinery & tapers
//	audio/       — WAV decoding, clips, synthesis
//	spectral/    — STFT, spectrogram, mel & constant-Q transforms
//	features/    — envelope, spectral-shape & expressive descriptors
//	pitch/       — HPS & YIN f0 estimation, pitch-curve conditioning
//	harmonics/   — per-harmonic frequency/magnitude/phase tracking
//	onset/       — detection functions & peak picking
//	notes/       — note-envelope segmentation
//	evaluate/    — onset metrics & DTW alignment
//	cmd/         — the staccato command-line front end
//
// Quick sketch of a pipeline:
//
//	clip ─▶ STFT ─▶ flux ─┐
//	clip ─▶ RMS ──────────┼─▶ onsets ─▶ notes
//	clip ─▶ YIN ──────────┘
//
//	go get github.com/staccato-dev/staccato
package staccato
