// SPDX-License-Identifier: MIT

// Package timeseries: sentinel error set. All exported operations return
// these sentinels (possibly wrapped with context via fmt.Errorf and %w);
// callers match them with errors.Is. User input never panics.

package timeseries

import "errors"

var (
	// ErrInvalidRate is returned when a sampling rate is not strictly positive.
	ErrInvalidRate = errors.New("timeseries: sampling rate must be greater than zero")

	// ErrBadShape is returned when a data buffer cannot form the requested
	// (nfeatures × nsamples) shape.
	ErrBadShape = errors.New("timeseries: data length incompatible with feature count")

	// ErrDimensionMismatch is returned by binary operations and Merge when the
	// operand shapes (or rates, where required) are incompatible. Callers are
	// expected to resample or pad first.
	ErrDimensionMismatch = errors.New("timeseries: series dimensions do not match")

	// ErrUnsupportedStart is returned by Resample on a series whose start time
	// is not zero; resampling such a series would silently re-anchor it.
	ErrUnsupportedStart = errors.New("timeseries: resample requires start time zero")

	// ErrBadResample is returned when the requested rate conversion degenerates
	// (empty output).
	ErrBadResample = errors.New("timeseries: unrealizable resampling ratio")

	// ErrBadSlice is returned for an index range outside the sample axis.
	ErrBadSlice = errors.New("timeseries: slice limits out of range")

	// ErrInvalidPad is returned for negative padding lengths.
	ErrInvalidPad = errors.New("timeseries: padding lengths must be non-negative")

	// ErrFilterSpec is returned for an invalid filter parameterization
	// (unknown type, order < 1, frequency outside (0, nyquist), missing band
	// edge for band filters).
	ErrFilterSpec = errors.New("timeseries: invalid filter specification")

	// ErrEmptyData is returned when an operation needs at least one sample.
	ErrEmptyData = errors.New("timeseries: series has no samples")
)
