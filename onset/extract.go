// SPDX-License-Identifier: MIT

package onset

import (
	"github.com/staccato-dev/staccato/audio"
	"github.com/staccato-dev/staccato/timeseries"
	"github.com/staccato-dev/staccato/timing"
)

// Extract runs the detector over the clip and picks the onsets from the
// resulting curve. Both the onsets and the curve are returned, so callers
// can inspect or plot the detection function.
func Extract(clip *audio.Clip, det Detector, p Params) (timing.PointList, *timeseries.Series, error) {
	curve, err := det.Detect(clip)
	if err != nil {
		return nil, nil, err
	}

	onsets, err := PickPeaks(curve, p)
	if err != nil {
		return nil, nil, err
	}

	return onsets, curve, nil
}

// FromRMS extracts onsets with the RMS-derivative detector and an
// absolute threshold.
func FromRMS(clip *audio.Clip, window, hop int, minTime, threshold float64) (timing.PointList, error) {
	onsets, _, err := Extract(clip, RMSDerivative{Window: window, Hop: hop}, Params{
		MinTime:   minTime,
		Threshold: threshold,
	})

	return onsets, err
}

// FromAdaptiveRMS extracts onsets with the adaptive-RMS detector and a
// relative-to-max threshold, the recommended configuration for sustained
// instruments.
func FromAdaptiveRMS(clip *audio.Clip, d AdaptiveRMS, minTime, threshold float64) (timing.PointList, error) {
	onsets, _, err := Extract(clip, d, Params{
		MinTime:   minTime,
		Threshold: threshold,
		Criteria:  RelativeToMax,
	})

	return onsets, err
}

// FromPitch extracts onsets with the pitch-change detector and an
// absolute threshold.
func FromPitch(clip *audio.Clip, d PitchChange, minTime, threshold float64) (timing.PointList, error) {
	onsets, _, err := Extract(clip, d, Params{
		MinTime:   minTime,
		Threshold: threshold,
	})

	return onsets, err
}
