// SPDX-License-Identifier: MIT

package notes

import (
	"errors"
	"fmt"
	"math"

	"github.com/staccato-dev/staccato/audio"
	"github.com/staccato-dev/staccato/features"
	"github.com/staccato-dev/staccato/pitch"
	"github.com/staccato-dev/staccato/spectral"
	"github.com/staccato-dev/staccato/timeseries"
	"github.com/staccato-dev/staccato/timing"
)

// ErrTooFewOnsets signals an onset list with fewer than two points: note
// segmentation needs at least one inter-onset interval.
var ErrTooFewOnsets = errors.New("notes: at least two onsets required")

// semitoneThreshold is the MIDI-scale pitch jump that marks a note
// offset.
const semitoneThreshold = 0.5

// Note holds the envelope instants of one note. Onset <= AttackEnd <=
// ReleaseStart <= Offset.
type Note struct {
	Onset        timing.Point
	AttackEnd    timing.Point
	ReleaseStart timing.Point
	Offset       timing.Point
}

// Segment returns the note as a [Onset, Offset] segment.
func (n Note) Segment() (timing.Segment, error) {
	return timing.NewSegment(n.Onset, n.Offset)
}

// NoteList is an ordered sequence of segmented notes.
type NoteList []Note

// List converts the notes to a SegmentList of [Onset, Offset] spans.
func (nl NoteList) List() (timing.SegmentList, error) {
	out := make(timing.SegmentList, len(nl))
	for i, n := range nl {
		seg, err := n.Segment()
		if err != nil {
			return nil, err
		}
		out[i] = seg
	}

	return out, nil
}

// Segment derives the note envelopes of the clip from its onsets: for
// each pair of consecutive onsets, the release start, attack end and
// offset are located by bounded searches over the spectral flux, RMS and
// pitch-difference curves computed at the given window and hop.
func Segment(clip *audio.Clip, onsets timing.PointList, windowSize, hopSize int) (NoteList, error) {
	if len(onsets) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewOnsets, len(onsets))
	}

	stft, err := spectral.ComputeSTFT(clip.Series, windowSize, hopSize)
	if err != nil {
		return nil, err
	}
	flux, err := features.SpectralFlux(spectral.FromSTFT(stft, spectral.Amplitude, false), features.FluxHWRDiff)
	if err != nil {
		return nil, err
	}
	env, err := features.RMS(clip.Series, windowSize, hopSize)
	if err != nil {
		return nil, err
	}
	pitchCurve, err := pitch.YIN(clip.Series, windowSize, hopSize)
	if err != nil {
		return nil, err
	}
	pitchDiff := pitch.ToMIDI(pitch.Filter(pitchCurve, pitch.DefaultDeltaMax)).Diff(1).Abs()

	out := make(NoteList, 0, len(onsets)-1)
	for i := 0; i+1 < len(onsets); i++ {
		note, err := segmentInterval(onsets[i], onsets[i+1], flux, env, pitchDiff)
		if err != nil {
			return nil, err
		}
		out = append(out, note)
	}

	return out, nil
}

// segmentInterval runs the three bounded searches of one inter-onset
// interval.
func segmentInterval(onset, next timing.Point, flux, env, pitchDiff *timeseries.Series) (Note, error) {
	ioi, err := timing.NewSegment(onset, next)
	if err != nil {
		return Note{}, err
	}

	releaseStart, err := argmaxPoint(flux, ioi, onset)
	if err != nil {
		return Note{}, err
	}

	// attack: RMS maximum between the onset and the release start;
	// degenerate sub-segments collapse onto the release start
	attackSeg, err := timing.NewSegment(onset, releaseStart)
	if err != nil {
		return Note{}, err
	}
	attackEnd := releaseStart
	if lo, hi := attackSeg.Slice(env); hi-lo > 1 {
		attackEnd, err = argmaxPoint(env, attackSeg, onset)
		if err != nil {
			return Note{}, err
		}
	}

	offset, err := findOffset(pitchDiff, releaseStart, next)
	if err != nil {
		return Note{}, err
	}

	return Note{Onset: onset, AttackEnd: attackEnd, ReleaseStart: releaseStart, Offset: offset}, nil
}

// argmaxPoint maps the arg-max of the curve over seg back to an exact
// instant; an empty slice falls back to the segment's reference point.
func argmaxPoint(curve *timeseries.Series, seg timing.Segment, fallback timing.Point) (timing.Point, error) {
	sub, err := curve.SliceSegment(seg)
	if err != nil {
		return timing.Point{}, err
	}
	if sub.NSamples() == 0 {
		return fallback, nil
	}

	best, bestVal := 0, math.Inf(-1)
	for i, v := range sub.Row(0) {
		if v > bestVal {
			best, bestVal = i, v
		}
	}

	return timing.PointFromSampleIndex(best, sub), nil
}

// findOffset returns the instant of the first semitone-scale pitch jump
// after the release start, or the next onset when the pitch holds steady
// to the end of the interval.
func findOffset(pitchDiff *timeseries.Series, releaseStart, next timing.Point) (timing.Point, error) {
	seg, err := timing.NewSegment(releaseStart, next)
	if err != nil {
		return timing.Point{}, err
	}
	sub, err := pitchDiff.SliceSegment(seg)
	if err != nil {
		return timing.Point{}, err
	}

	for i, v := range sub.Row(0) {
		if v > semitoneThreshold {
			return timing.PointFromSampleIndex(i, sub), nil
		}
	}

	return next, nil
}
