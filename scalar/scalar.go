// Copyright ©2024 The isingpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scalar provides the arbitrary-precision real scalar used
// throughout isingpf: matrix entries, Pfaffian products, partition
// functions and free energies all inhabit this type. The precision is
// configured once, in bits, and held fixed for the lifetime of a run;
// increasing it only improves the fidelity of the final value, never
// the algorithm's behavior.
package scalar

import "math/big"

// Scalar is an opaque arbitrary-precision signed real. The zero value
// reads as zero; construct other values with FromInt64, FromFloat64 or
// Parse.
type Scalar struct {
	v *big.Float
}

// defaultPrec is the working precision, in bits, shared by all Scalars created
// through this package during a single run. SetPrec must be called before
// any Scalar is constructed for the precision to take effect.
var defaultPrec uint = 256

// SetPrec sets the bit precision used by Zero, FromInt64 and Parse.
func SetPrec(bits uint) { defaultPrec = bits }

// Prec reports the precision, in bits, currently configured.
func Prec() uint { return defaultPrec }

// Zero returns the additive identity at the configured precision.
func Zero() Scalar {
	return Scalar{v: new(big.Float).SetPrec(defaultPrec)}
}

// FromInt64 returns n as a Scalar at the configured precision.
func FromInt64(n int64) Scalar {
	return Scalar{v: new(big.Float).SetPrec(defaultPrec).SetInt64(n)}
}

// FromFloat64 returns f as a Scalar at the configured precision.
func FromFloat64(f float64) Scalar {
	return Scalar{v: new(big.Float).SetPrec(defaultPrec).SetFloat64(f)}
}

// Parse reads a Scalar from its decimal or scientific-notation text
// representation, at the configured precision.
func Parse(s string) (Scalar, error) {
	v, _, err := big.ParseFloat(s, 10, defaultPrec, big.ToNearestEven)
	if err != nil {
		return Scalar{}, err
	}
	return Scalar{v: v}, nil
}

// IsZero reports whether s is exactly zero.
func (s Scalar) IsZero() bool {
	return s.v == nil || s.v.Sign() == 0
}

// Sign returns -1, 0 or +1 depending on the sign of s.
func (s Scalar) Sign() int {
	if s.v == nil {
		return 0
	}
	return s.v.Sign()
}

// Add returns a+b.
func Add(a, b Scalar) Scalar {
	return Scalar{v: new(big.Float).SetPrec(defaultPrec).Add(float(a), float(b))}
}

// Sub returns a-b.
func Sub(a, b Scalar) Scalar {
	return Scalar{v: new(big.Float).SetPrec(defaultPrec).Sub(float(a), float(b))}
}

// Mul returns a*b.
func Mul(a, b Scalar) Scalar {
	return Scalar{v: new(big.Float).SetPrec(defaultPrec).Mul(float(a), float(b))}
}

// Quo returns a/b. It panics if b is exactly zero, mirroring big.Float's
// behavior for division by zero.
func Quo(a, b Scalar) Scalar {
	return Scalar{v: new(big.Float).SetPrec(defaultPrec).Quo(float(a), float(b))}
}

// Neg returns -a.
func Neg(a Scalar) Scalar {
	return Scalar{v: new(big.Float).SetPrec(defaultPrec).Neg(float(a))}
}

// Abs returns |a|.
func Abs(a Scalar) Scalar {
	return Scalar{v: new(big.Float).SetPrec(defaultPrec).Abs(float(a))}
}

// Cmp returns -1, 0 or +1 depending on whether a<b, a==b or a>b.
func Cmp(a, b Scalar) int {
	return float(a).Cmp(float(b))
}

// CmpAbs compares |a| and |b|, used by the Pfaffian eliminator's
// semi-pivot selection (largest magnitude wins, ties keep the smaller
// index).
func CmpAbs(a, b Scalar) int {
	return Cmp(Abs(a), Abs(b))
}

// Text renders s in scientific notation with the given number of
// decimal digits after the point, matching the output format of §6.
func (s Scalar) Text(digits int) string {
	return float(s).Text('e', digits)
}

// String implements fmt.Stringer.
func (s Scalar) String() string {
	return s.Text(int(float64(defaultPrec) * 0.301))
}

// Float64 returns the nearest float64 approximation of s.
func (s Scalar) Float64() float64 {
	f, _ := float(s).Float64()
	return f
}

// Big exposes the underlying *big.Float for the explog package, which
// needs direct access to run ALTree/bigfloat's Exp and Log. No other
// package should reach into a Scalar's representation.
func (s Scalar) Big() *big.Float { return float(s) }

// FromBig wraps an existing *big.Float as a Scalar, reprecisioned to the
// configured precision. Used by explog to return bigfloat results.
func FromBig(v *big.Float) Scalar {
	return Scalar{v: new(big.Float).SetPrec(defaultPrec).Set(v)}
}

func float(s Scalar) *big.Float {
	if s.v == nil {
		return new(big.Float).SetPrec(defaultPrec)
	}
	return s.v
}
