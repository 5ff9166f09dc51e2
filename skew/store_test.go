// Copyright ©2024 The isingpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skew

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/latticepf/isingpf/scalar"
)

// dense renders s as a full float64 grid (zero diagonal, both triangles),
// for comparison with cmp.Diff.
func dense(s *Store) [][]float64 {
	out := make([][]float64, s.Side())
	for i := range out {
		out[i] = make([]float64, s.Side())
		for j := range out[i] {
			if i == j {
				continue
			}
			out[i][j] = s.Get(i, j).Float64()
		}
	}
	return out
}

func randSkew(rnd *rand.Rand, l int) *Store {
	s := New(l)
	for i := 0; i < l; i++ {
		for j := i + 1; j < l; j++ {
			s.Set(i, j, scalar.FromInt64(int64(rnd.IntN(21)-10)))
		}
	}
	return s
}

func TestRoundTrip(t *testing.T) {
	scalar.SetPrec(128)
	rnd := rand.New(rand.NewPCG(1, 1))
	for _, l := range []int{2, 4, 6, 8} {
		s := randSkew(rnd, l)
		for i := 0; i < l; i++ {
			for j := 0; j < l; j++ {
				if i == j {
					continue
				}
				if scalar.Cmp(s.Get(i, j), scalar.Neg(s.Get(j, i))) != 0 {
					t.Fatalf("L=%d: Get(%d,%d) != -Get(%d,%d)", l, i, j, j, i)
				}
			}
		}
	}
}

func TestDropPrefix(t *testing.T) {
	scalar.SetPrec(64)
	s := New(6)
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 6; j++ {
			s.Set(i, j, scalar.FromInt64(int64(10*i+j)))
		}
	}
	s.DropPrefix(2)
	if s.Side() != 4 {
		t.Fatalf("Side() = %d, want 4", s.Side())
	}
	// old (2,3) should now be (0,1)
	if got, want := s.Get(0, 1).Float64(), scalar.FromInt64(23).Float64(); got != want {
		t.Errorf("Get(0,1) after drop = %v, want %v", got, want)
	}
	// old (2,5) should now be (0,3)
	if got, want := s.Get(0, 3).Float64(), scalar.FromInt64(25).Float64(); got != want {
		t.Errorf("Get(0,3) after drop = %v, want %v", got, want)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	scalar.SetPrec(64)
	s := New(4)
	s.Set(0, 1, scalar.FromInt64(5))
	c := s.Clone()
	c.Set(0, 1, scalar.FromInt64(9))
	require.Equal(t, 5.0, s.Get(0, 1).Float64(), "mutating clone affected original")
}

func TestCloneMatchesOriginalBeforeMutation(t *testing.T) {
	scalar.SetPrec(64)
	rnd := rand.New(rand.NewPCG(2, 2))
	s := randSkew(rnd, 6)
	c := s.Clone()
	if diff := cmp.Diff(dense(s), dense(c)); diff != "" {
		t.Errorf("clone differs from original (-want +got):\n%s", diff)
	}
}

func TestFromDenseRejectsAsymmetric(t *testing.T) {
	scalar.SetPrec(64)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for non-skew-symmetric input")
		}
	}()
	m := [][]scalar.Scalar{
		{scalar.Zero(), scalar.FromInt64(1)},
		{scalar.FromInt64(1), scalar.Zero()}, // should be -1
	}
	FromDense(2, m)
}
