// SPDX-License-Identifier: MIT

package spectral

import "errors"

var (
	// ErrFFTLength signals an FFT length smaller than the window size or
	// not a positive value.
	ErrFFTLength = errors.New("spectral: invalid FFT length")

	// ErrBandLimits signals a frequency band whose limits are out of order
	// or fall outside (0, Nyquist].
	ErrBandLimits = errors.New("spectral: invalid frequency band")

	// ErrBinCount signals a non-positive number of output bins.
	ErrBinCount = errors.New("spectral: invalid bin count")

	// ErrEmptyFrames signals a transform over a signal too short to
	// produce a single frame.
	ErrEmptyFrames = errors.New("spectral: no frames produced")
)
