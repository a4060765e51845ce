// SPDX-License-Identifier: MIT

package pitch

import "errors"

var (
	// ErrBadRange signals an f0 search range with minF0 >= maxF0 or
	// non-positive limits.
	ErrBadRange = errors.New("pitch: invalid f0 range")

	// ErrBadDecimation signals an out-of-enum decimation selector.
	ErrBadDecimation = errors.New("pitch: invalid decimation")

	// ErrBadWindow signals a non-positive smoothing window.
	ErrBadWindow = errors.New("pitch: invalid window length")
)
