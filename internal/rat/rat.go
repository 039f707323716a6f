// Package rat provides an exact arbitrary-precision fraction type.
//
// Fraction is the numeric foundation for the polynomial plugin: interpolation
// combines large intermediate coefficients with large coordinate values, and
// every intermediate step must stay exact until the final answer is read out.
// Floating point is permitted only at the display boundary (Float64).
//
// Invariants maintained by every constructor and operation:
//   - stored in lowest terms (gcd-reduced)
//   - denominator > 0 (sign carried by the numerator)
//   - denominator never zero (construction fails with ErrDivisionByZero)
//
// Fraction is an immutable value type. Arithmetic returns new instances and
// never mutates receivers or operands.
package rat

import (
	"errors"
	"math/big"
)

// ErrDivisionByZero is returned when constructing a fraction with a zero
// denominator or dividing by a zero fraction.
var ErrDivisionByZero = errors.New("rat: division by zero")

// Fraction is an exact rational number backed by big.Int components.
// The zero value is 0/1 and is ready to use.
type Fraction struct {
	num *big.Int // sign lives here
	den *big.Int // always > 0
}

// FromInt constructs the fraction n/1.
func FromInt(n int64) Fraction {
	return Fraction{num: big.NewInt(n), den: big.NewInt(1)}
}

// FromBig constructs the fraction n/1 from an arbitrary-precision integer.
// The input is copied; later mutation of n does not affect the fraction.
func FromBig(n *big.Int) Fraction {
	return Fraction{num: new(big.Int).Set(n), den: big.NewInt(1)}
}

// New constructs the fraction num/den in lowest terms.
// Returns ErrDivisionByZero if den is zero.
func New(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	return normalize(big.NewInt(num), big.NewInt(den)), nil
}

// normalize reduces num/den to canonical form: lowest terms, positive
// denominator. Takes ownership of both arguments.
func normalize(num, den *big.Int) Fraction {
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	if num.Sign() == 0 {
		return Fraction{num: big.NewInt(0), den: big.NewInt(1)}
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if g.Cmp(big.NewInt(1)) != 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}
	return Fraction{num: num, den: den}
}

// components returns the receiver's parts, substituting 0/1 for the zero
// value so the zero Fraction behaves as the number zero.
func (f Fraction) components() (*big.Int, *big.Int) {
	if f.num == nil || f.den == nil {
		return big.NewInt(0), big.NewInt(1)
	}
	return f.num, f.den
}

// Add returns f + g.
// Cross-multiplies denominators; no common denominator is assumed.
func (f Fraction) Add(g Fraction) Fraction {
	fn, fd := f.components()
	gn, gd := g.components()
	num := new(big.Int).Mul(fn, gd)
	num.Add(num, new(big.Int).Mul(gn, fd))
	den := new(big.Int).Mul(fd, gd)
	return normalize(num, den)
}

// Sub returns f - g.
func (f Fraction) Sub(g Fraction) Fraction {
	fn, fd := f.components()
	gn, gd := g.components()
	num := new(big.Int).Mul(fn, gd)
	num.Sub(num, new(big.Int).Mul(gn, fd))
	den := new(big.Int).Mul(fd, gd)
	return normalize(num, den)
}

// Mul returns f * g.
func (f Fraction) Mul(g Fraction) Fraction {
	fn, fd := f.components()
	gn, gd := g.components()
	return normalize(new(big.Int).Mul(fn, gn), new(big.Int).Mul(fd, gd))
}

// Div returns f / g, or ErrDivisionByZero if g is zero.
func (f Fraction) Div(g Fraction) (Fraction, error) {
	gn, gd := g.components()
	if gn.Sign() == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	fn, fd := f.components()
	return normalize(new(big.Int).Mul(fn, gd), new(big.Int).Mul(fd, gn)), nil
}

// Neg returns -f.
func (f Fraction) Neg() Fraction {
	fn, fd := f.components()
	return Fraction{num: new(big.Int).Neg(fn), den: new(big.Int).Set(fd)}
}

// IsZero reports whether f equals 0.
func (f Fraction) IsZero() bool {
	fn, _ := f.components()
	return fn.Sign() == 0
}

// IsInt reports whether f is an exact integer (denominator 1).
func (f Fraction) IsInt() bool {
	_, fd := f.components()
	return fd.Cmp(big.NewInt(1)) == 0
}

// Int returns the numerator as a big.Int copy. Only meaningful when IsInt
// reports true; otherwise it is the numerator of the reduced form.
func (f Fraction) Int() *big.Int {
	fn, _ := f.components()
	return new(big.Int).Set(fn)
}

// Equal reports whether f and g represent the same rational number.
// Both are stored in canonical form, so component comparison suffices.
func (f Fraction) Equal(g Fraction) bool {
	fn, fd := f.components()
	gn, gd := g.components()
	return fn.Cmp(gn) == 0 && fd.Cmp(gd) == 0
}

// Float64 performs a lossy widening division for final display.
// Never use the result in further exact computation.
func (f Fraction) Float64() float64 {
	fn, fd := f.components()
	v, _ := new(big.Rat).SetFrac(fn, fd).Float64()
	return v
}

// String returns the canonical form: "n" when the denominator is 1,
// otherwise "n/d".
func (f Fraction) String() string {
	fn, fd := f.components()
	if fd.Cmp(big.NewInt(1)) == 0 {
		return fn.String()
	}
	return fn.String() + "/" + fd.String()
}
