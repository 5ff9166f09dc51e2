// Copyright ©2024 The isingpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bond declares the bond-weight provider contract shared by
// package lattice's assembler and package boundary's wrap operators.
// Concrete providers (package sample) live outside the core engine.
package bond

import "github.com/latticepf/isingpf/scalar"

// Dir is one of the four oriented half-edges of a plaquette.
type Dir int

// The four plaquette directions, in the order the base cell's rows are
// laid out (N, E, S, W).
const (
	N Dir = iota
	E
	S
	W
)

// String implements fmt.Stringer.
func (d Dir) String() string {
	switch d {
	case N:
		return "N"
	case E:
		return "E"
	case S:
		return "S"
	case W:
		return "W"
	default:
		return "?"
	}
}

// Provider is the bond-weight contract (§6): given a plaquette (px, py)
// and a direction, it returns a signed bond weight, with periodic
// wraparound of px+1 and py+1 modulo the provider's own Lx, Ly.
//
//	N: -xbond(px, py)
//	E: +ybond(px+1, py)
//	S: +xbond(px, py+1)
//	W: -ybond(px, py)
//
// x-bond and y-bond weights are each exp(-2J/T) for their respective
// coupling J. The signs realize the Kasteleyn orientation consistent
// with the base cell built by package kasteleyn.
type Provider interface {
	Bond(px, py int, dir Dir) scalar.Scalar

	// Prefactor returns the overall scalar prefactor p = Π exp(J_ij/T)
	// accumulated over all bonds, applied once by the boundary driver
	// after combining the four evaluations.
	Prefactor() scalar.Scalar

	// Extent returns the provider's own Lx, Ly, used for periodic
	// wraparound and for sizing the assembled lattice.
	Extent() (lx, ly int)
}
