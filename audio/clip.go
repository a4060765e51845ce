// SPDX-License-Identifier: MIT

package audio

import (
	"errors"

	"github.com/staccato-dev/staccato/timeseries"
	"github.com/staccato-dev/staccato/timing"
)

// ErrNoSamples indicates an empty sample buffer.
var ErrNoSamples = errors.New("audio: clip needs at least one sample")

// Clip is a mono audio waveform: amplitude samples in [−1, 1] at an integer
// sampling rate, start time zero. It embeds the Series it wraps, so every
// timeseries transform and the timing.Sampled interface are available
// directly.
type Clip struct {
	*timeseries.Series

	// Filename is the base name of the source file, empty for synthetic
	// clips.
	Filename string
}

// NewClip wraps a sample buffer as a Clip. The buffer is copied.
func NewClip(samples []float64, fs int, caption string) (*Clip, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}

	s, err := timeseries.New(timing.FromInt(int64(fs)), samples,
		timeseries.WithUnit("amplitude"),
		timeseries.WithLabel("waveform"),
		timeseries.WithCaption(caption))
	if err != nil {
		return nil, err
	}

	return &Clip{Series: s}, nil
}

// Excerpt returns the part of the clip covered by seg as a new Clip.
func (c *Clip) Excerpt(seg timing.Segment) (*Clip, error) {
	s, err := c.SliceSegment(seg)
	if err != nil {
		return nil, err
	}

	return &Clip{Series: s, Filename: c.Filename}, nil
}

// Player is the playback collaborator contract. Implementations live
// outside the core; calls are fire-and-forget and the core never consumes
// their results.
type Player interface {
	// Play starts playback of the clip from the beginning.
	Play(c *Clip) error

	// PlaySegment starts playback of the given excerpt.
	PlaySegment(c *Clip, seg timing.Segment) error

	// Stop stops any running playback.
	Stop()
}
