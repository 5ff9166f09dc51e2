// Copyright ©2024 The isingpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package boundary closes a fully assembled Sublattice's two free axes
// with periodic or antiperiodic wrap bonds and combines the four
// resulting evaluations into the four boundary-condition partition
// functions ZPP, ZPA, ZAP, ZAA (§4.5-§4.7).
package boundary

import (
	"github.com/latticepf/isingpf/bond"
	"github.com/latticepf/isingpf/lattice"
	"github.com/latticepf/isingpf/pfaffian"
	"github.com/latticepf/isingpf/scalar"
)

// WrapHorz closes the horizontal axis of a fully assembled descriptor
// with sign σ ∈ {+1,-1}, adding the wrap bond for each of the Lx bottom
// half-edges, reordering rows so the Lx wrap pairs are eliminated
// first, and folding the accumulated exchange sign into s.Prefactor.
func WrapHorz(s *lattice.Sublattice, sigma int) {
	p := s.Provider()
	sign := scalar.FromInt64(int64(sigma))
	for i := 0; i < s.Lx; i++ {
		col := 2*s.Lx + s.Ly - i - 1
		s.Mat.Add(i, col, scalar.Mul(sign, p.Bond(s.Offx+i, s.Offy, bond.N)))
	}

	xchg := 1
	for i := 0; i < s.Ly/2; i++ {
		pfaffian.FullSwap(s.Mat, s.Lx+i, s.Lx+s.Ly-1-i)
		xchg = -xchg
	}
	for i := 0; i < s.Lx/2; i++ {
		pfaffian.FullSwap(s.Mat, s.Lx+s.Ly+i, s.Lx+s.Ly+s.Lx-1-i)
		xchg = -xchg
	}
	for i := 0; i < (s.Lx+s.Ly)/2; i++ {
		pfaffian.FullSwap(s.Mat, s.Lx+i, s.Lx+s.Ly+s.Lx-1-i)
		xchg = -xchg
	}

	eliminated := pfaffian.Eliminate(s.Mat, s.Lx)
	factor := eliminated
	if xchg < 0 {
		factor = scalar.Neg(factor)
	}
	s.Prefactor = scalar.Mul(s.Prefactor, factor)
}

// Zvert closes the vertical axis with sign σ, assuming WrapHorz has
// already run on s, and returns s.Prefactor times the signed product
// from eliminating the remaining 2*Ly wrap rows: the scalar partition
// function for this pair of wrap signs.
func Zvert(s *lattice.Sublattice, sigma int) scalar.Scalar {
	p := s.Provider()
	sign := scalar.FromInt64(int64(sigma))
	for i := 0; i < s.Ly; i++ {
		col := 2*s.Ly - i - 1
		s.Mat.Add(i, col, scalar.Neg(scalar.Mul(sign, p.Bond(s.Offx, s.Offy+i, bond.W))))
	}
	return scalar.Mul(s.Prefactor, pfaffian.Eliminate(s.Mat, s.Ly))
}
