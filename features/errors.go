// SPDX-License-Identifier: MIT

package features

import "errors"

var (
	// ErrBadMethod signals an out-of-enum method selector.
	ErrBadMethod = errors.New("features: invalid method")

	// ErrLengthMismatch signals paired inputs of different lengths.
	ErrLengthMismatch = errors.New("features: input length mismatch")

	// ErrTooFewItems signals an onset or note list too short for an
	// interval-based descriptor.
	ErrTooFewItems = errors.New("features: not enough items")
)
