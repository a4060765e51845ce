// SPDX-License-Identifier: MIT

package timing

// Sampled describes any uniformly sampled sequence a Point can be mapped
// into: it only needs a sample rate and an absolute start time. Audio clips,
// feature curves and spectral frames all satisfy it.
type Sampled interface {
	// SampleRate returns the sampling frequency in Hz. Always positive.
	SampleRate() Rational

	// StartTime returns the absolute time of sample 0, in seconds.
	StartTime() Rational
}

// Point is an immutable time instant. It is not tied to any particular
// series: the same Point maps to a valid sample index in the original audio,
// in an RMS curve at one hop size and in a pitch curve at another.
type Point struct {
	t Rational
}

// PointAt returns the Point at the exact instant t.
func PointAt(t Rational) Point { return Point{t: t} }

// PointFromSeconds returns the Point at t seconds. The float is converted
// exactly; prefer PointAt with a parsed Rational where full precision of a
// textual source matters.
func PointFromSeconds(t float64) Point { return Point{t: FromFloat(t)} }

// PointFromSampleIndex returns the Point at sample i of ref, i.e. the exact
// instant i/fs + start.
func PointFromSampleIndex(i int, ref Sampled) Point {
	t := FromInt(int64(i)).Div(ref.SampleRate()).Add(ref.StartTime())

	return Point{t: t}
}

// Time returns the instant of the point in exact seconds.
func (p Point) Time() Rational { return p.t }

// Seconds returns the instant as a float64, for bulk buffers and display.
func (p Point) Seconds() float64 { return p.t.Float64() }

// MapIndex converts the point to the sample index of ref that is nearest to
// its instant: round((t − start) · fs). The computation is exact up to the
// single final rounding, so re-mapping the resulting index back into ref is
// idempotent.
func (p Point) MapIndex(ref Sampled) int {
	return p.t.Sub(ref.StartTime()).Mul(ref.SampleRate()).RoundNearest()
}

// Before reports whether p precedes q.
func (p Point) Before(q Point) bool { return p.t.Less(q.t) }

// After reports whether p follows q.
func (p Point) After(q Point) bool { return q.t.Less(p.t) }

// Equal reports whether both points mark the same instant.
func (p Point) Equal(q Point) bool { return p.t.Equal(q.t) }

// Sub returns the signed duration p − q in exact seconds.
func (p Point) Sub(q Point) Rational { return p.t.Sub(q.t) }

// Shift returns a new Point displaced by d seconds.
func (p Point) Shift(d Rational) Point { return Point{t: p.t.Add(d)} }

// String renders the instant in seconds, exactly.
func (p Point) String() string { return p.t.String() }
