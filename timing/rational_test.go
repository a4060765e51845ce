// SPDX-License-Identifier: MIT

package timing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staccato-dev/staccato/timing"
)

// TestRational_Arithmetic verifies exactness of the basic operations.
func TestRational_Arithmetic(t *testing.T) {
	third := timing.NewRational(1, 3)
	sixth := timing.NewRational(1, 6)

	assert.True(t, third.Add(sixth).Equal(timing.NewRational(1, 2)), "1/3 + 1/6 = 1/2")
	assert.True(t, third.Sub(sixth).Equal(sixth), "1/3 - 1/6 = 1/6")
	assert.True(t, third.Mul(timing.FromInt(3)).Equal(timing.FromInt(1)), "1/3 * 3 = 1")
	assert.True(t, third.Div(sixth).Equal(timing.FromInt(2)), "(1/3) / (1/6) = 2")
	assert.Equal(t, -1, sixth.Sub(third).Sign())
}

// TestRational_RoundNearest verifies round-to-nearest with ties away from
// zero.
func TestRational_RoundNearest(t *testing.T) {
	cases := []struct {
		num, den int64
		want     int
	}{
		{7, 2, 4},    // 3.5 rounds up
		{-7, 2, -4},  // -3.5 rounds away from zero
		{10, 4, 3},   // 2.5 rounds up
		{9, 4, 2},    // 2.25 rounds down
		{11, 4, 3},   // 2.75 rounds up
		{0, 5, 0},
		{-9, 4, -2},
	}
	for _, c := range cases {
		got := timing.NewRational(c.num, c.den).RoundNearest()
		assert.Equal(t, c.want, got, "round(%d/%d)", c.num, c.den)
	}
}

// TestRational_StringRoundTrip verifies that String output parses back to
// the identical value, for both terminating decimals and fractions.
func TestRational_StringRoundTrip(t *testing.T) {
	values := []timing.Rational{
		timing.NewRational(1, 2),     // 0.5
		timing.NewRational(3, 8),     // 0.375
		timing.NewRational(1, 3),     // non-terminating, stays a fraction
		timing.NewRational(22050, 44100),
		timing.NewRational(-7, 20),
		timing.FromInt(0),
		timing.FromInt(42),
	}
	for _, v := range values {
		s := v.String()
		parsed, err := timing.Parse(s)
		require.NoError(t, err, "parse %q", s)
		assert.True(t, parsed.Equal(v), "%q must parse back exactly", s)
	}
}

// TestRational_StringRendering pins the exact rendered forms: decimal
// expansion when the denominator reduces to 2^a·5^b, fraction otherwise.
func TestRational_StringRendering(t *testing.T) {
	cases := []struct {
		num, den int64
		want     string
	}{
		{1, 2, "0.5"},
		{1, 64, "0.015625"},
		{1, 40, "0.025"},
		{11025, 128, "86.1328125"},
		{-7, 20, "-0.35"},
		{3, 7, "3/7"},
		{128, 11025, "128/11025"},
		{5, 1, "5"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, timing.NewRational(c.num, c.den).String(),
			"String(%d/%d)", c.num, c.den)
	}
}

// TestRational_ParseRejectsGarbage verifies the parse error path.
func TestRational_ParseRejectsGarbage(t *testing.T) {
	_, err := timing.Parse("not-a-number")
	assert.ErrorIs(t, err, timing.ErrParse)
}
