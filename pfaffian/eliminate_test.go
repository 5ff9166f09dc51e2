// Copyright ©2024 The isingpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pfaffian

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/latticepf/isingpf/scalar"
	"github.com/latticepf/isingpf/skew"
)

func denseFromStore(m *skew.Store) [][]float64 {
	n := m.Side()
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			d[i][j] = m.Get(i, j).Float64()
		}
	}
	return d
}

// determinant computes det(a) via naive Laplace expansion; only used in
// tests, on matrices small enough (side ≤ 8) for this to be fine.
func determinant(a [][]float64) float64 {
	n := len(a)
	if n == 0 {
		return 1
	}
	if n == 1 {
		return a[0][0]
	}
	var det float64
	sign := 1.0
	for col := 0; col < n; col++ {
		minor := make([][]float64, n-1)
		for i := 1; i < n; i++ {
			row := make([]float64, 0, n-1)
			for j := 0; j < n; j++ {
				if j == col {
					continue
				}
				row = append(row, a[i][j])
			}
			minor[i-1] = row
		}
		det += sign * a[0][col] * determinant(minor)
		sign = -sign
	}
	return det
}

func randomSkewStore(rnd *rand.Rand, n int) *skew.Store {
	m := skew.New(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.Set(i, j, scalar.FromInt64(int64(rnd.IntN(9)-4)))
		}
	}
	return m
}

func TestPfaffianSquaredEqualsDeterminant(t *testing.T) {
	scalar.SetPrec(128)
	rnd := rand.New(rand.NewPCG(7, 7))
	for _, n := range []int{4, 6, 8} {
		for trial := 0; trial < 5; trial++ {
			m := randomSkewStore(rnd, n)
			dense := denseFromStore(m)
			pf := Eliminate(m, n/2)
			want := determinant(dense)
			got := pf.Float64() * pf.Float64()
			if diff := got - want; diff > 1e-6 || diff < -1e-6 {
				t.Fatalf("n=%d trial=%d: Pf^2 = %v, det = %v", n, trial, got, want)
			}
		}
	}
}

func TestBaseCellPfaffianIsOne(t *testing.T) {
	scalar.SetPrec(64)
	m := skew.New(4)
	one := scalar.FromInt64(1)
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			m.Set(i, j, one)
		}
	}
	pf := Eliminate(m, 2)
	if pf.Float64() != 1 {
		t.Errorf("Pfaffian(base cell) = %v, want 1", pf.Float64())
	}
}

func TestFullSwapReconstructsPermutedMatrix(t *testing.T) {
	scalar.SetPrec(64)
	rnd := rand.New(rand.NewPCG(3, 3))
	n := 6
	m := randomSkewStore(rnd, n)
	before := denseFromStore(m)

	i, j := 1, 4
	FullSwap(m, i, j)
	after := denseFromStore(m)

	want := make([][]float64, n)
	for r := range want {
		want[r] = append([]float64(nil), before[r]...)
	}
	// permute rows i,j then columns i,j
	want[i], want[j] = want[j], want[i]
	for r := 0; r < n; r++ {
		want[r][i], want[r][j] = want[r][j], want[r][i]
	}

	if diff := cmp.Diff(want, after, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("after FullSwap(%d,%d), dense matrix differs (-want +got):\n%s", i, j, diff)
	}
}

func TestZeroSuperdiagonalPanics(t *testing.T) {
	scalar.SetPrec(64)
	m := skew.New(2) // entry (0,1) left at zero
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on zero superdiagonal")
		}
	}()
	Eliminate(m, 1)
}
