// SPDX-License-Identifier: MIT

package aggregation

import "errors"

var (
	// ErrHopTooLarge indicates hopSize > windowSize (windows would skip samples).
	ErrHopTooLarge = errors.New("aggregation: hop size must not exceed window size")

	// ErrWindowTooSmall indicates windowSize < 2.
	ErrWindowTooSmall = errors.New("aggregation: window size must be at least 2")

	// ErrMultiFeature indicates a sliding window over a multi-feature series;
	// the sample axis must be one-dimensional.
	ErrMultiFeature = errors.New("aggregation: sliding window requires a single-feature series")

	// ErrBadTaper indicates an unknown apodization taper.
	ErrBadTaper = errors.New("aggregation: unknown apodization taper")

	// ErrFrameShape indicates the reduction returned vectors of differing
	// lengths across frames.
	ErrFrameShape = errors.New("aggregation: reduction output length changed between frames")

	// ErrBadPadding indicates an unknown successive-aggregation padding policy.
	ErrBadPadding = errors.New("aggregation: unknown padding policy")
)
