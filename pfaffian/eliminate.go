// Copyright ©2024 The isingpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pfaffian implements the numerically controlled, semi-pivoted
// row-pair elimination that reduces a skew-symmetric matrix's Pfaffian
// while preserving skew-symmetry in the triangular store (§4.4). The
// same three primitives — full-matrix swap, pivot-context swap, and the
// rank-1 cross operation — are reused by package lattice's interior
// elimination and package boundary's wrap closes.
package pfaffian

import (
	"github.com/latticepf/isingpf/scalar"
	"github.com/latticepf/isingpf/skew"
)

const zeroSuperdiagonal = "pfaffian: zero superdiagonal"

// Eliminate reduces the first 2*numEvenRows rows/columns of m to
// block-zero using semi-pivoted cross operations, then drops that
// prefix from m (§4.1's drop_prefix) unless the prefix is the whole of
// m, in which case m keeps its side. It returns the signed product of
// the super-diagonals encountered, such that
//
//	Pfaffian(before) = Eliminate(m, numEvenRows) * Pfaffian(m after)
//
// with Pfaffian(m after) taken as 1 when the whole matrix was eliminated.
//
// Pivot selection is restricted to the 2*numEvenRows prefix being
// eliminated — the "semi" in semi-pivot — so a call with numEvenRows
// less than m.Side()/2 never disturbs rows outside that prefix by
// choosing one of them as a pivot, even though the rank-1 update from
// each cross operation still propagates across the full remaining
// width of m, which it must to preserve the invariant above.
//
// Eliminate panics with a "zero superdiagonal" error if, after
// pivoting, the would-be pivot is exactly zero: in a well-formed
// Kasteleyn city with nonzero bond weights this cannot happen, so its
// occurrence signals a degenerate input or a logic error (§7).
func Eliminate(m *skew.Store, numEvenRows int) scalar.Scalar {
	mtxL := m.Side()
	sign := 1
	for i := 0; i < 2*numEvenRows; i += 2 {
		windowEnd := 2*numEvenRows - i - 1
		maxMag := scalar.Zero()
		pivotOffset := 0
		// Scans every trailing entry of row i within the elimination
		// window, not just even offsets: after a cross operation the
		// row is no longer block-structured, so a stride of 2 would
		// miss the true maximum.
		for j := 0; j < windowEnd; j++ {
			v := m.Get(i, i+1+j)
			if scalar.CmpAbs(v, maxMag) > 0 {
				maxMag = scalar.Abs(v)
				pivotOffset = j
			}
		}
		if pivotOffset != 0 {
			sign = -sign
			PivotSwap(m, i, pivotOffset)
		}
		if m.Get(i, i+1).IsZero() {
			panic(zeroSuperdiagonal)
		}
		for j := 1; j < mtxL-i-1; j++ {
			if !m.Get(i, i+1+j).IsZero() {
				CrossOp(m, i, j)
			}
		}
	}

	product := scalar.FromInt64(1)
	for i := 0; i < 2*numEvenRows; i += 2 {
		product = scalar.Mul(product, m.Get(i, i+1))
	}
	if sign < 0 {
		product = scalar.Neg(product)
	}

	if 2*numEvenRows < mtxL {
		m.DropPrefix(2 * numEvenRows)
	}
	return product
}

// PivotSwap exchanges rows (and, by symmetry, columns) i+1 and i+1+j,
// assuming every row before i has already been eliminated and plays no
// further part (standard semi-pivot context), so those rows' entries in
// columns i+1 and i+1+j are left as they are: it rewrites the
// four disjoint index ranges of the triangular store that change, with
// the sign flips needed to keep the stored half exactly the upper
// triangle of the swapped matrix. It must not be used as a general row
// swap — see FullSwap for that (§9's open question).
func PivotSwap(m *skew.Store, i, j int) {
	a := m.Get(i, i+1)
	b := m.Get(i, i+1+j)
	m.Set(i, i+1, b)
	m.Set(i, i+1+j, a)

	for k := 0; k < j-1; k++ {
		colA := i + 2 + k
		rowB, colB := i+2+k, i+1+j
		va := m.Get(i+1, colA)
		vb := m.Get(rowB, colB)
		m.Set(i+1, colA, scalar.Neg(vb))
		m.Set(rowB, colB, scalar.Neg(va))
	}

	m.Set(i+1, i+1+j, scalar.Neg(m.Get(i+1, i+1+j)))

	mtxL := m.Side()
	for k := 0; j+k < mtxL-i-2; k++ {
		col := i + 2 + j + k
		va := m.Get(i+1, col)
		vb := m.Get(i+j+1, col)
		m.Set(i+1, col, vb)
		m.Set(i+j+1, col, va)
	}
}

// FullSwap exchanges rows (and columns) i and j of m's full conceptual
// matrix, without assuming any earlier row has already been cleared.
// It is used by the wrap operator (package boundary), which reorders
// rows that have not been through any elimination yet.
//
// Unlike the original's hand-rolled version, which tracked a sign flag
// across three cases (k above, between, or below the swapped rows) to
// compensate for reading raw, unsigned triangular storage, this swaps
// the two rows' logical entries directly: Store.Get already returns
// the correctly signed value on either side of the diagonal, so no
// manual sign bookkeeping is needed here. The result is the same
// permutation congruence P·M·Pᵀ for the transposition P=(i j).
func FullSwap(m *skew.Store, i, j int) {
	if j < i {
		i, j = j, i
	}
	m.Set(i, j, scalar.Neg(m.Get(i, j)))
	n := m.Side()
	for k := 0; k < n; k++ {
		if k == i || k == j {
			continue
		}
		vi, vj := m.Get(i, k), m.Get(j, k)
		m.SetLogical(i, k, vj)
		m.SetLogical(j, k, vi)
	}
}

// CrossOp zeros M[i][i+1+j] (j≥1) using the pivot M[i][i+1], applying
// the equivalent rank-1 skew-congruence correction across rows (and
// columns) i+1 and i+1+j in the trailing matrix — the Pfaffian-
// preserving analogue of a Gaussian elimination step. It assumes both
// the pivot and the target entry are already known to be nonzero.
func CrossOp(m *skew.Store, i, j int) {
	pivot := m.Get(i, i+1)
	target := m.Get(i, i+1+j)
	s := scalar.Neg(scalar.Quo(target, pivot))
	m.Set(i, i+1+j, scalar.Zero())

	for k := 0; k < j-1; k++ {
		row, col := i+2+k, i+1+j
		carried := m.Get(i+1, row)
		if carried.IsZero() {
			continue
		}
		m.Set(row, col, scalar.Sub(m.Get(row, col), scalar.Mul(s, carried)))
	}

	mtxL := m.Side()
	for k := 0; j+k < mtxL-i-2; k++ {
		row, col := i+j+1, i+j+2+k
		carried := m.Get(i+1, col)
		if carried.IsZero() {
			continue
		}
		m.Set(row, col, scalar.Add(m.Get(row, col), scalar.Mul(s, carried)))
	}
}

