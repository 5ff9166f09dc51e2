// Copyright ©2024 The isingpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kasteleyn builds the base skew matrix for a single plaquette:
// the 4×4 oriented "Kasteleyn city" that the recursive assembler in
// package lattice glues together, pairwise, into larger sublattices.
package kasteleyn

import (
	"github.com/latticepf/isingpf/scalar"
	"github.com/latticepf/isingpf/skew"
)

// Row ordering within a base cell: the four oriented half-edges of a
// plaquette, traversed N, E, S, W.
const (
	N = 0
	E = 1
	S = 2
	W = 3
)

// Side is the fixed size of a base cell.
const Side = 4

// BaseCell returns the 4×4 skew matrix of a single 1×1 plaquette. Its
// strict upper triangle is all ones; the physical bond weights of the
// Ising model never appear here, only at the shared edges introduced
// when the recursive assembler glues cells together, and at the wrap
// edges introduced when the boundary driver closes the lattice. This
// uniform orientation realizes a Kasteleyn orientation for a single
// plaquette: every clockwise traversal of an even cycle picks up an odd
// number of reversed edges.
func BaseCell() *skew.Store {
	m := skew.New(Side)
	one := scalar.FromInt64(1)
	for i := 0; i < Side; i++ {
		for j := i + 1; j < Side; j++ {
			m.Set(i, j, one)
		}
	}
	return m
}
