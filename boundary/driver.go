// Copyright ©2024 The isingpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package boundary

import (
	"sync"

	"github.com/latticepf/isingpf/bond"
	"github.com/latticepf/isingpf/lattice"
	"github.com/latticepf/isingpf/scalar"
)

// Result holds the four boundary-condition partition functions
// recovered from one Sample, in the order §6's output line lists them.
type Result struct {
	ZPP, ZPA, ZAP, ZAA scalar.Scalar
}

// Compute assembles the full Lx×Ly lattice of p, closes it under all
// four combinations of periodic/antiperiodic boundary conditions, and
// returns the corresponding partition functions (§4.7). The four
// Zvert evaluations depend only on independently wrapped clones of the
// assembled descriptor, so — per §5's "may be parallelized across
// descriptors" — they run concurrently; each descriptor remains
// exclusively owned by the goroutine evaluating it.
func Compute(p bond.Provider) Result {
	lx, ly := p.Extent()
	x := lattice.Assemble(p, lx, ly, 0, 0)

	yPlus := x.Clone()
	yMinus := x.Clone()
	WrapHorz(yPlus, +1)
	WrapHorz(yMinus, -1)

	yPlus2 := yPlus.Clone()
	yMinus2 := yMinus.Clone()

	var y1, y2, y3, y4 scalar.Scalar
	var wg sync.WaitGroup
	wg.Add(4)
	go func() { defer wg.Done(); y1 = Zvert(yPlus, +1) }()
	go func() { defer wg.Done(); y2 = Zvert(yMinus, +1) }()
	go func() { defer wg.Done(); y3 = Zvert(yPlus2, -1) }()
	go func() { defer wg.Done(); y4 = Zvert(yMinus2, -1) }()
	wg.Wait()

	prefactor := p.Prefactor()
	half := scalar.Quo(scalar.FromInt64(1), scalar.FromInt64(2))

	combine := func(s1, s2, s3, s4 int) scalar.Scalar {
		sum := scalar.Zero()
		for _, term := range []struct {
			sign int
			v    scalar.Scalar
		}{{s1, y1}, {s2, y2}, {s3, y3}, {s4, y4}} {
			signed := term.v
			if term.sign < 0 {
				signed = scalar.Neg(signed)
			}
			sum = scalar.Add(sum, signed)
		}
		return scalar.Abs(scalar.Mul(scalar.Mul(prefactor, half), sum))
	}

	return Result{
		ZPP: combine(+1, +1, +1, +1),
		ZPA: combine(-1, -1, +1, +1),
		ZAP: combine(-1, +1, -1, +1),
		ZAA: combine(-1, +1, +1, -1),
	}
}
