// SPDX-License-Identifier: MIT

package onset

import (
	"fmt"
	"math"

	"github.com/staccato-dev/staccato/aggregation"
	"github.com/staccato-dev/staccato/audio"
	"github.com/staccato-dev/staccato/features"
	"github.com/staccato-dev/staccato/pitch"
	"github.com/staccato-dev/staccato/spectral"
	"github.com/staccato-dev/staccato/timeseries"
)

// Detector computes an onset detection curve from audio. Implementations
// are pure: the clip is never mutated and repeated calls yield the same
// curve.
type Detector interface {
	Detect(clip *audio.Clip) (*timeseries.Series, error)
}

// RMSDerivative detects energy rises: the half-wave-rectified forward
// difference of the RMS envelope. Zero fields fall back to window 1024
// and hop 512.
type RMSDerivative struct {
	Window int
	Hop    int
}

// Detect implements Detector.
func (d RMSDerivative) Detect(clip *audio.Clip) (*timeseries.Series, error) {
	window, hop := d.Window, d.Hop
	if window == 0 {
		window = 1024
	}
	if hop == 0 {
		hop = 512
	}

	env, err := features.RMS(clip.Series, window, hop)
	if err != nil {
		return nil, err
	}

	return env.Diff(1).HWR().Relabel("ODF (RMS derivative)", ""), nil
}

// AdaptiveRMS compares an attenuated long-window RMS against a
// short-window RMS and accumulates each positive run of the rectified
// difference into a single peak, emitted at the run's arg-max. Zero
// fields fall back to long window 4096, short window 512, hop 512 and
// alpha 0.1.
type AdaptiveRMS struct {
	LongWindow  int
	ShortWindow int
	Hop         int
	Alpha       float64
}

// Detect implements Detector.
func (d AdaptiveRMS) Detect(clip *audio.Clip) (*timeseries.Series, error) {
	long, short, hop, alpha := d.LongWindow, d.ShortWindow, d.Hop, d.Alpha
	if long == 0 {
		long = 4096
	}
	if short == 0 {
		short = 512
	}
	if hop == 0 {
		hop = 512
	}
	if alpha == 0 {
		alpha = 0.1
	}
	if alpha < 0 || alpha >= 1 {
		return nil, fmt.Errorf("%w: %g", ErrBadAlpha, alpha)
	}

	rmsLong, err := features.RMS(clip.Series, long, hop)
	if err != nil {
		return nil, err
	}
	rmsShort, err := features.RMS(clip.Series, short, hop)
	if err != nil {
		return nil, err
	}
	rmsShort, err = rmsShort.PadLike(rmsLong)
	if err != nil {
		return nil, err
	}

	diff, err := rmsLong.Scale(1 - alpha).Sub(rmsShort)
	if err != nil {
		return nil, err
	}

	return accumulateRuns(diff.HWR()).Relabel("ODF (adaptive RMS)", ""), nil
}

// accumulateRuns collapses each positive run of the curve into one sample
// holding the run's sum, placed at the run's arg-max. A run still open at
// the end of the curve is flushed the same way.
func accumulateRuns(curve *timeseries.Series) *timeseries.Series {
	in := curve.Row(0)
	out := make([]float64, len(in))

	var sum, peak float64
	peakIdx := -1
	last := 0.0
	for i, x := range in {
		if x > 0 {
			sum += x
			if x > peak {
				peak = x
				peakIdx = i
			}
		} else {
			if last > 0 {
				out[peakIdx] = sum
			}
			sum, peak = 0, 0
		}
		last = x
	}
	if last > 0 {
		out[peakIdx] = sum
	}

	res, _ := timeseries.New(curve.SampleRate(), out,
		timeseries.WithStartTime(curve.StartTime()),
		timeseries.WithCaption(curve.Caption()))

	return res
}

// PitchChange detects note changes: the normalized relative change of a
// smoothed pitch curve, |current/(last+ε) − 1| with ε = 0.1. Zero fields
// fall back to window 1024, hop 512 and the f0 range [120, 4000] Hz;
// Smooth enables the pitch-curve conditioning.
type PitchChange struct {
	Window int
	Hop    int
	MinF0  float64
	MaxF0  float64
	Smooth bool
}

// minDenominator keeps the relative-change ratio finite over unvoiced
// (zero-pitch) frames.
const minDenominator = 0.1

// modeWindow is the semitone-mode smoothing span applied when Smooth is
// set.
const modeWindow = 9

// Detect implements Detector.
func (d PitchChange) Detect(clip *audio.Clip) (*timeseries.Series, error) {
	window, hop := d.Window, d.Hop
	if window == 0 {
		window = 1024
	}
	if hop == 0 {
		hop = 512
	}
	minF0, maxF0 := d.MinF0, d.MaxF0
	if minF0 == 0 {
		minF0 = 120
	}
	if maxF0 == 0 {
		maxF0 = 4000
	}

	stft, err := spectral.ComputeSTFT(clip.Series, window, hop)
	if err != nil {
		return nil, err
	}
	curve, err := pitch.HPS(stft, minF0, maxF0)
	if err != nil {
		return nil, err
	}
	if d.Smooth {
		curve = pitch.Filter(curve, pitch.DefaultDeltaMax)
		curve, err = pitch.Mode(curve, modeWindow)
		if err != nil {
			return nil, err
		}
	}

	odf, err := aggregation.Successive(curve, func(prev, cur []float64) float64 {
		ratio := cur[0] / (prev[0] + minDenominator)

		return math.Abs(ratio - 1)
	}, aggregation.PadZeros)
	if err != nil {
		return nil, err
	}

	return odf.Relabel("ODF (pitch change)", ""), nil
}

// Activation adapts an externally computed activation curve (a neural
// onset model's output sampled at its own frame rate) to the Detector
// interface; the clip is ignored.
type Activation struct {
	Curve *timeseries.Series
}

// Detect implements Detector.
func (d Activation) Detect(*audio.Clip) (*timeseries.Series, error) {
	if d.Curve == nil {
		return nil, ErrNoCurve
	}

	return d.Curve.Relabel("ODF (activation)", ""), nil
}
