// SPDX-License-Identifier: MIT

package timing

import "fmt"

// Segment is an immutable ordered pair of Points delimiting an interval.
// The constructor enforces start <= end.
type Segment struct {
	start, end Point
}

// NewSegment builds the interval [start, end]. ErrInvalidInterval is
// returned when end precedes start.
func NewSegment(start, end Point) (Segment, error) {
	if end.Before(start) {
		return Segment{}, fmt.Errorf("%w: start=%s end=%s", ErrInvalidInterval, start, end)
	}

	return Segment{start: start, end: end}, nil
}

// NewSegmentSeconds builds the interval [start, end] given in seconds.
func NewSegmentSeconds(start, end float64) (Segment, error) {
	return NewSegment(PointFromSeconds(start), PointFromSeconds(end))
}

// Start returns the opening instant.
func (s Segment) Start() Point { return s.start }

// End returns the closing instant.
func (s Segment) End() Point { return s.end }

// Duration returns end − start in exact seconds. Never negative.
func (s Segment) Duration() Rational { return s.end.Sub(s.start) }

// Contains reports whether p falls inside [start, end).
func (s Segment) Contains(p Point) bool {
	return !p.Before(s.start) && p.Before(s.end)
}

// Slice maps the segment into ref, returning the half-open sample-index
// range [lo, hi). Both limits are mapped independently through the exact
// time representation. At extreme rate ratios rounding can order the mapped
// limits against the segment order; the range is then clamped to hi == lo
// (an empty slice) so that hi >= lo always holds.
func (s Segment) Slice(ref Sampled) (lo, hi int) {
	lo = s.start.MapIndex(ref)
	hi = s.end.MapIndex(ref)
	if hi < lo {
		hi = lo
	}

	return lo, hi
}

// String renders the interval limits in seconds.
func (s Segment) String() string {
	return fmt.Sprintf("[%s, %s]", s.start, s.end)
}
