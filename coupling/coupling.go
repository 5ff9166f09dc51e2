// Copyright ©2024 The isingpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coupling generates random coupling lattices in the same "x y
// dir J" text format package sample reads, supplementing the core
// engine with the random-bond disorder generator the distilled
// specification leaves external.
package coupling

import (
	"fmt"
	"io"
	"math"
	"math/rand/v2"
)

// Params configures a random-bond generation run.
type Params struct {
	Lx, Ly int
	Seed   uint64

	// Probability is the bond-flip probability for the ±J model, or
	// the center of the Gaussian-perturbed flip probability when
	// Gaussian is set.
	Probability float64

	// Gaussian selects Gaussian-perturbed couplings (valueE/valueS are
	// continuous J values) rather than the discrete ±1 model.
	Gaussian bool
	StdDev   float64
}

// Generate writes Lx*Ly*2 bond records to w: one E and one S bond per
// plaquette, matching the header-then-records format of package
// sample. Records are generated in row-major (y outer, x inner) order.
func Generate(w io.Writer, p Params) error {
	if p.Lx <= 0 || p.Ly <= 0 {
		return fmt.Errorf("coupling: invalid extent %d x %d", p.Lx, p.Ly)
	}
	if p.Gaussian && p.StdDev <= 0 {
		return fmt.Errorf("coupling: std dev must be positive, got %v", p.StdDev)
	}

	rng := rand.New(rand.NewPCG(p.Seed, p.Seed^0x9e3779b97f4a7c15))

	if _, err := fmt.Fprintf(w, "%d %d\n", p.Lx, p.Ly); err != nil {
		return err
	}
	for j := 0; j < p.Ly; j++ {
		for i := 0; i < p.Lx; i++ {
			valueE := p.nextCoupling(rng)
			valueS := p.nextCoupling(rng)
			if _, err := fmt.Fprintf(w, "%d\t%d\tE\t%v\n", i, j, valueE); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%d\t%d\tS\t%v\n", i, j, valueS); err != nil {
				return err
			}
		}
	}
	return nil
}

// nextCoupling draws one coupling value, matching the discrete ±J or
// Gaussian-perturbed-probability model of the original generator.
func (p Params) nextCoupling(rng *rand.Rand) float64 {
	if !p.Gaussian {
		if rng.Float64() < p.Probability {
			return -1
		}
		return 1
	}

	prob := rng.NormFloat64()*p.StdDev + p.Probability
	prob = math.Min(math.Max(prob, 1e-4), 0.5-1e-10)

	flip := 1.0
	if rng.Float64() < prob {
		flip = -1
	}
	return flip * 0.5 * math.Log((1-prob)/prob)
}
