// SPDX-License-Identifier: MIT

// Package aggregation implements windowed reduction over time series: the
// sliding-window engine that RMS, STFT and every other frame-based
// descriptor in staccato is built on.
//
// 🚀 Alignment convention:
//
//	Windows are centered: the series is zero-padded by windowSize/2 samples
//	at the front (and by however much the last window needs at the back), so
//	output sample 0 corresponds to a window centered near input sample 0.
//	For windowSize w, hopSize h and n input samples:
//
//	    prePad  = w/2
//	    numHops = (prePad + n − 1)/h + 1
//	    postPad = w − ((prePad + n − 1) mod h) − 1
//
//	The output series is sampled at fs/h and keeps the input start time.
//
// ✨ Operators:
//   - SlidingWindow — window → scalar/vector reduction, optional apodization
//     taper (gonum dsp/window)
//   - Successive — previous/current sample-pair reduction with a
//     configurable first-sample padding policy
//   - Features — cross-feature reduction, one output per sample
//
// ⚙️ Usage:
//
//	rms, err := aggregation.SlidingWindow(audio.Series, 2048, 512,
//	    func(frame []float64) []float64 {
//	        var e float64
//	        for _, v := range frame { e += v * v }
//	        return []float64{math.Sqrt(e / float64(len(frame)))}
//	    })
//
// Errors: hopSize > windowSize → ErrHopTooLarge; windowSize < 2 →
// ErrWindowTooSmall.
package aggregation
