// SPDX-License-Identifier: MIT

package timing

import (
	"fmt"
	"math/big"
)

// Rational is an immutable exact scalar. It represents seconds since the
// global epoch when used as a time, but is equally used for sample rates and
// rate ratios. The zero value is 0.
//
// All arithmetic allocates a fresh result; operands are never mutated, so
// Rational values may be freely shared and embedded in value types.
type Rational struct {
	r *big.Rat
}

// NewRational returns the exact value num/den. den must be non-zero.
func NewRational(num, den int64) Rational {
	return Rational{r: big.NewRat(num, den)}
}

// FromInt returns the exact integer value n.
func FromInt(n int64) Rational {
	return Rational{r: new(big.Rat).SetInt64(n)}
}

// FromFloat returns the exact value of f. NaN and ±Inf are not representable
// and collapse to 0; callers validate floats before converting.
func FromFloat(f float64) Rational {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		return Rational{}
	}

	return Rational{r: r}
}

// Parse converts a decimal ("1.25"), integer ("42") or fractional ("3/7")
// string to an exact scalar. Every string produced by String parses back to
// an equal value.
func Parse(s string) (Rational, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rational{}, fmt.Errorf("%w: %q", ErrParse, s)
	}

	return Rational{r: r}, nil
}

// rat returns the backing value, treating the zero Rational as 0.
func (a Rational) rat() *big.Rat {
	if a.r == nil {
		return new(big.Rat)
	}

	return a.r
}

// Add returns a + b.
func (a Rational) Add(b Rational) Rational {
	return Rational{r: new(big.Rat).Add(a.rat(), b.rat())}
}

// Sub returns a − b.
func (a Rational) Sub(b Rational) Rational {
	return Rational{r: new(big.Rat).Sub(a.rat(), b.rat())}
}

// Mul returns a · b.
func (a Rational) Mul(b Rational) Rational {
	return Rational{r: new(big.Rat).Mul(a.rat(), b.rat())}
}

// Div returns a / b. b must be non-zero.
func (a Rational) Div(b Rational) Rational {
	return Rational{r: new(big.Rat).Quo(a.rat(), b.rat())}
}

// Neg returns −a.
func (a Rational) Neg() Rational {
	return Rational{r: new(big.Rat).Neg(a.rat())}
}

// Cmp returns -1, 0 or +1 depending on whether a < b, a == b or a > b.
func (a Rational) Cmp(b Rational) int { return a.rat().Cmp(b.rat()) }

// Less reports a < b.
func (a Rational) Less(b Rational) bool { return a.Cmp(b) < 0 }

// LessEq reports a <= b.
func (a Rational) LessEq(b Rational) bool { return a.Cmp(b) <= 0 }

// Equal reports a == b.
func (a Rational) Equal(b Rational) bool { return a.Cmp(b) == 0 }

// Sign returns -1, 0 or +1 for negative, zero and positive values.
func (a Rational) Sign() int { return a.rat().Sign() }

// IsZero reports whether a == 0.
func (a Rational) IsZero() bool { return a.Sign() == 0 }

// Float64 returns the nearest float64. Exactness is lost here; the result is
// only meant for bulk numeric buffers and display.
func (a Rational) Float64() float64 {
	f, _ := a.rat().Float64()

	return f
}

// RoundNearest converts a to the nearest integer, ties rounded away from
// zero. This is the single rounding rule used for every time→index mapping
// in the repository.
func (a Rational) RoundNearest() int {
	r := a.rat()
	q, rem := new(big.Int).QuoRem(r.Num(), r.Denom(), new(big.Int))
	rem.Abs(rem).Lsh(rem, 1)
	if rem.Cmp(r.Denom()) >= 0 {
		if r.Sign() < 0 {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}

	return int(q.Int64())
}

// String renders the exact value. When the denominator divides a power of
// ten the exact decimal expansion is produced ("0.125"); otherwise the
// fractional form is used ("3/7"). Both forms Parse back exactly, which is
// what makes point/segment files lossless.
func (a Rational) String() string {
	r := a.rat()
	den := new(big.Int).Set(r.Denom())

	var digits int
	for _, p := range []int64{2, 5} {
		pb, rem := big.NewInt(p), new(big.Int)
		n := 0
		for {
			q, _ := new(big.Int).QuoRem(den, pb, rem)
			if rem.Sign() != 0 {
				break
			}
			den.Set(q)
			n++
		}
		if n > digits {
			digits = n
		}
	}

	if den.Cmp(big.NewInt(1)) != 0 {
		return r.RatString()
	}

	return r.FloatString(digits)
}
