// Copyright ©2024 The isingpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lattice implements the recursive divide-and-conquer assembler
// that builds the boundary matrix of a rectangular sublattice: it
// splits along the longer axis, recursively assembles two children,
// interleaves their boundary rows along the shared cut, and eliminates
// the interior variables, keeping every intermediate matrix bounded by
// O(perimeter) rather than O(area).
package lattice

import (
	"github.com/latticepf/isingpf/bond"
	"github.com/latticepf/isingpf/internal/permute"
	"github.com/latticepf/isingpf/kasteleyn"
	"github.com/latticepf/isingpf/pfaffian"
	"github.com/latticepf/isingpf/scalar"
	"github.com/latticepf/isingpf/skew"
)

// Sublattice is the assembled boundary descriptor for an Lx×Ly
// rectangle of plaquettes at offset (offx, offy) within a Provider's
// full domain. Once Assemble returns, Mat has side 2*(Lx+Ly): its rows
// are, in order, the oriented boundary half-edges traversed
// counterclockwise from the rectangle's top-left corner — bottom (Lx),
// right (Ly), top (Lx), left (Ly).
type Sublattice struct {
	Lx, Ly     int
	Offx, Offy int

	Mat       *skew.Store
	Prefactor scalar.Scalar

	provider bond.Provider
}

// Assemble builds the boundary matrix for an Lx×Ly rectangle of
// plaquettes at offset (offx, offy), recursing until it reaches 1×1
// base cells.
func Assemble(p bond.Provider, lx, ly, offx, offy int) *Sublattice {
	s := &Sublattice{Lx: lx, Ly: ly, Offx: offx, Offy: offy, provider: p}
	if lx == 1 && ly == 1 {
		s.Mat = kasteleyn.BaseCell()
		s.Prefactor = scalar.FromInt64(1)
		return s
	}
	if splitsVertically(lx, ly) {
		a := Assemble(p, lx/2, ly, offx, offy)
		b := Assemble(p, lx-lx/2, ly, offx+lx/2, offy)
		s.Prefactor = s.interleaveVertical(a, b)
		return s
	}
	a := Assemble(p, lx, ly/2, offx, offy)
	b := Assemble(p, lx, ly-ly/2, offx, offy+ly/2)
	s.Prefactor = s.interleaveHorizontal(a, b)
	return s
}

// Clone returns a deep, independent copy of s: its matrix store and
// prefactor, but (as with the original's copy constructor) no
// descendant children, since a fully assembled Sublattice never keeps
// any. Used by package boundary to reuse an assembled or wrapped
// descriptor across the four boundary-condition evaluations of §4.7.
func (s *Sublattice) Clone() *Sublattice {
	return &Sublattice{
		Lx: s.Lx, Ly: s.Ly, Offx: s.Offx, Offy: s.Offy,
		Mat:       s.Mat.Clone(),
		Prefactor: s.Prefactor,
		provider:  s.provider,
	}
}

// Provider returns the bond-weight provider this descriptor was built
// from, for use by package boundary's wrap operators.
func (s *Sublattice) Provider() bond.Provider { return s.provider }

// splitsVertically reports whether an Lx×Ly rectangle splits along a
// vertical separator (strict Lx>Ly) or a horizontal one. Ties (Lx==Ly)
// break toward the horizontal split, matching the `else` branch of the
// original's `if (Lx > Ly)` test (§4.3).
func splitsVertically(lx, ly int) bool {
	return lx > ly
}

// interleaveVertical handles the Lx>Ly split: A is the left sublattice,
// B the right one, sharing a vertical cut of Ly bonds along direction
// W. It is the Go analogue of the original's combine_vertical.
func (s *Sublattice) interleaveVertical(a, b *Sublattice) scalar.Scalar {
	mtxL := a.Mat.Side() + b.Mat.Side()
	s.Mat = skew.New(mtxL)

	aOrder := make([]int, a.Mat.Side())
	bOrder := make([]int, b.Mat.Side())
	counter := 0
	for i := 0; i < s.Ly; i++ {
		bIdx := counter
		counter++
		aIdx := counter
		counter++
		bOrder[2*b.Lx+2*s.Ly-1-i] = bIdx
		aOrder[a.Lx+i] = aIdx
		s.Mat.SetLogical(bIdx, aIdx, scalar.Neg(s.provider.Bond(b.Offx, s.Offy+i, bond.W)))
	}
	counter = fillIdentityRange(aOrder, 0, counter, a.Lx)
	counter = fillIdentityRange(bOrder, 0, counter, 2*b.Lx+s.Ly)
	fillIdentityRange(aOrder, a.Lx+s.Ly, counter, a.Lx+s.Ly)

	return s.fillAndEliminate(a, b, aOrder, bOrder, s.Ly)
}

// interleaveHorizontal handles the Lx≤Ly split (the tie-break favors
// this path, §4.3): A is the top sublattice, B the bottom one, sharing
// a horizontal cut of Lx bonds along direction N. Go analogue of the
// original's combine_horizontal.
func (s *Sublattice) interleaveHorizontal(a, b *Sublattice) scalar.Scalar {
	mtxL := a.Mat.Side() + b.Mat.Side()
	s.Mat = skew.New(mtxL)

	aOrder := make([]int, a.Mat.Side())
	bOrder := make([]int, b.Mat.Side())
	counter := 0
	for i := 0; i < s.Lx; i++ {
		aIdx := counter
		counter++
		bIdx := counter
		counter++
		aOrder[s.Lx+a.Ly+i] = aIdx
		bOrder[s.Lx-1-i] = bIdx
		s.Mat.SetLogical(aIdx, bIdx, s.provider.Bond(s.Offx+s.Lx-1-i, b.Offy, bond.N))
	}
	counter = fillIdentityRange(aOrder, 0, counter, s.Lx+a.Ly)
	counter = fillIdentityRange(bOrder, s.Lx, counter, s.Lx+2*b.Ly)
	fillIdentityRange(aOrder, 2*s.Lx+a.Ly, counter, a.Ly)

	return s.fillAndEliminate(a, b, aOrder, bOrder, s.Lx)
}

func (s *Sublattice) fillAndEliminate(a, b *Sublattice, aOrder, bOrder []int, numEvenRows int) scalar.Scalar {
	fillInto(s.Mat, a.Mat, aOrder)
	fillInto(s.Mat, b.Mat, bOrder)
	eliminated := pfaffian.Eliminate(s.Mat, numEvenRows)
	return scalar.Mul(scalar.Mul(a.Prefactor, b.Prefactor), eliminated)
}

// fillIdentityRange writes the contiguous run of n absolute indices
// starting at base into order[dst:dst+n] and returns base+n, the next
// unused absolute index. The run itself is an identity permutation
// (children never reorder rows among their own untouched prefix), so
// it is built with permute.Identity rather than a hand-rolled loop.
func fillIdentityRange(order []int, dst, base, n int) int {
	copy(order[dst:dst+n], permute.Identity(base, n))
	return base + n
}

// fillInto copies child's triangular entries into parent at the
// positions named by ordering, negating when the permutation inverts
// the pair's relative order, so the result stays skew-symmetric.
func fillInto(parent, child *skew.Store, ordering []int) {
	n := child.Side()
	for i := 0; i < n; i++ {
		newi := ordering[i]
		for j := 0; j < n-1-i; j++ {
			newj := ordering[j+1+i]
			v := child.Get(i, i+1+j)
			if newi > newj {
				parent.Set(newj, newi, scalar.Neg(v))
			} else {
				parent.Set(newi, newj, v)
			}
		}
	}
}

