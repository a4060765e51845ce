// SPDX-License-Identifier: MIT

// Package onset implements note-onset detection: a family of onset
// detection functions (ODFs) producing a detection curve from audio, a
// canonical peak picker turning a curve into exact onset instants, and
// convenience extractors combining both.
//
// 🚀 Detectors
//
//   - RMSDerivative — half-wave-rectified derivative of the RMS envelope;
//     spikes at sudden energy rises.
//   - AdaptiveRMS — attenuated long-window RMS against a short-window RMS,
//     with run-length peak accumulation to keep broad transients from
//     fragmenting into spurious peaks.
//   - PitchChange — normalized relative change of a smoothed pitch curve;
//     spikes at note changes regardless of energy.
//   - Activation — adapts an externally computed activation curve (e.g. a
//     neural model's output) to the Detector interface.
//
// ⚙️ Peak picking
//
// PickPeaks scans the curve in a single left-to-right pass for
// plateau-aware local maxima, filters them by an absolute or
// relative-to-max height threshold, and enforces a minimum mutual distance
// keeping the higher peak. The result is a PointList of exact instants,
// valid against the source audio or any derived series.
package onset
