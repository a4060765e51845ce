// SPDX-License-Identifier: MIT

// Package spectral implements the frequency-domain transforms of staccato:
// the short-time Fourier transform and the spectrogram family derived from
// it (linear, mel and constant-Q).
//
// All transforms are built on the sliding-window engine of package
// aggregation, inherit its centered-alignment convention, and produce
// series whose sampling rate is the exact rational input-fs/hop — so a
// Point mapped into an STFT frame index stays consistent with the source
// audio.
//
//   - STFT — Hann-tapered complex frames, FFT length ≥ window size
//     (zero-padded); Magnitude and Phase are derived, non-mutating views.
//   - Spectrogram — |STFT|^p with p = 1 (amplitude) or 2 (energy),
//     optionally in dB.
//   - MelSpectrogram — triangular mel filter bank over the spectrogram.
//   - CQT — constant-Q log-frequency transform with per-bin kernels.
//
// Each carries its own Frequencies metadata (bin center frequencies in Hz).
package spectral
