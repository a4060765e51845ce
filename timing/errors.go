// SPDX-License-Identifier: MIT

package timing

import "errors"

var (
	// ErrParse indicates a string could not be parsed as an exact scalar.
	ErrParse = errors.New("timing: cannot parse rational value")

	// ErrInvalidInterval indicates a segment whose end precedes its start.
	ErrInvalidInterval = errors.New("timing: segment end must not precede start")

	// ErrOddPointCount indicates a point list that cannot be paired into segments.
	ErrOddPointCount = errors.New("timing: point list cannot be paired into segments")

	// ErrBadRow indicates a malformed row in a point or segment file.
	ErrBadRow = errors.New("timing: malformed row")
)
