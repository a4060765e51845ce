// SPDX-License-Identifier: MIT

package onset

import "errors"

var (
	// ErrBadCriteria signals an out-of-enum threshold criteria.
	ErrBadCriteria = errors.New("onset: invalid threshold criteria")

	// ErrBadAlpha signals an adaptive-RMS attenuation outside [0, 1).
	ErrBadAlpha = errors.New("onset: invalid alpha")

	// ErrNoCurve signals an Activation detector without a curve.
	ErrNoCurve = errors.New("onset: missing activation curve")
)
