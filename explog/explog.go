// Copyright ©2024 The isingpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package explog provides the exponential and logarithm used to turn
// couplings into bond weights and partition functions into free
// energies. Neither the Pfaffian eliminator nor the lattice assembler
// ever calls into this package: both operate purely on the weights a
// Provider already hands them. explog exists only for setup (package
// sample, converting J_ij to exp(-2J/T)) and for reporting (turning a
// computed Z back into a free energy).
package explog

import (
	"github.com/ALTree/bigfloat"

	"github.com/latticepf/isingpf/scalar"
)

// Exp returns e^x, computed at x's precision and returned at the
// configured scalar precision.
func Exp(x scalar.Scalar) scalar.Scalar {
	return scalar.FromBig(bigfloat.Exp(x.Big()))
}

// Log returns the natural logarithm of x. It panics if x is not
// strictly positive, mirroring bigfloat.Log's domain.
func Log(x scalar.Scalar) scalar.Scalar {
	return scalar.FromBig(bigfloat.Log(x.Big()))
}

// FreeEnergy returns -T*log(z), the free energy corresponding to
// partition function z at temperature T.
func FreeEnergy(z, t scalar.Scalar) scalar.Scalar {
	return scalar.Neg(scalar.Mul(t, Log(z)))
}
