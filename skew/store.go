// Copyright ©2024 The isingpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package skew implements the triangular storage for a skew-symmetric
// matrix: only the strict upper triangle is held in memory, and every
// read or write that crosses the diagonal is negated automatically. No
// other package may assume anything about the layout beyond the
// operations exported here.
package skew

import "github.com/latticepf/isingpf/scalar"

const (
	badIndex     = "skew: index out of range"
	badDiagonal  = "skew: diagonal index has no off-diagonal entry"
	badInput     = "skew: non-skew-symmetric matrix provided"
	badDropCount = "skew: drop count exceeds matrix side"
)

// Store is the strict upper triangle of an L×L skew-symmetric matrix.
// Row i (0 ≤ i < L-1) holds L-1-i entries, M[i][i+1] .. M[i][L-1], at
// row[j-i-1]. Diagonal entries are implicitly zero; entries below the
// diagonal are implicitly the negation of their mirror above it.
type Store struct {
	l   int
	row [][]scalar.Scalar
}

// New allocates the strict upper triangle of an L×L matrix of zeros. L
// may be zero or any positive integer; a transient odd L is permitted,
// since only a fully assembled sublattice is guaranteed even (§3).
func New(l int) *Store {
	if l < 0 {
		panic(badIndex)
	}
	row := make([][]scalar.Scalar, maxInt(l-1, 0))
	for i := range row {
		r := make([]scalar.Scalar, l-1-i)
		for j := range r {
			r[j] = scalar.Zero()
		}
		row[i] = r
	}
	return &Store{l: l, row: row}
}

// Side returns the current side L of the matrix.
func (s *Store) Side() int { return s.l }

// Get returns M[i][j]. It panics if i==j (the caller never needs the
// implicit zero diagonal directly) or if either index is out of range.
func (s *Store) Get(i, j int) scalar.Scalar {
	s.checkIndex(i)
	s.checkIndex(j)
	switch {
	case i == j:
		panic(badDiagonal)
	case i < j:
		return s.row[i][j-i-1]
	default:
		return scalar.Neg(s.row[j][i-j-1])
	}
}

// Set writes M[i][j] = v, requiring i<j; the mirror entry M[j][i] is
// implicit. It panics if i≥j or an index is out of range.
func (s *Store) Set(i, j int, v scalar.Scalar) {
	s.checkIndex(i)
	s.checkIndex(j)
	if i >= j {
		panic(badDiagonal)
	}
	s.row[i][j-i-1] = v
}

// SetLogical writes M[i][j] = v for any i≠j, choosing the stored half
// and negating as needed so that the implicit mirror stays consistent.
// Most callers know which side of the diagonal they are on and should
// prefer Set; SetLogical exists for code, such as the recursive
// assembler's interleave step, that computes a logical (row, col) pair
// after a permutation and does not know its order in advance.
func (s *Store) SetLogical(i, j int, v scalar.Scalar) {
	if i < j {
		s.Set(i, j, v)
		return
	}
	s.Set(j, i, scalar.Neg(v))
}

// Add accumulates v into the existing entry M[i][j] (i<j), used by the
// wrap operator to add a bond weight onto an already-populated entry.
func (s *Store) Add(i, j int, v scalar.Scalar) {
	s.Set(i, j, scalar.Add(s.Get(i, j), v))
}

// DropPrefix removes the first n rows and columns, keeping only the
// entries among indices ≥ n, and renumbers them starting at 0. It is
// used after the eliminator has reduced a prefix to block-zero, per
// §4.1's drop_prefix(2k).
func (s *Store) DropPrefix(n int) {
	if n < 0 || n > s.l {
		panic(badDropCount)
	}
	if n == 0 {
		return
	}
	if n == s.l {
		s.row = nil
		s.l = 0
		return
	}
	s.row = append([][]scalar.Scalar(nil), s.row[n:]...)
	s.l -= n
}

// Clone returns a deep copy of s, independent of future mutation.
func (s *Store) Clone() *Store {
	out := &Store{l: s.l, row: make([][]scalar.Scalar, len(s.row))}
	for i, r := range s.row {
		out.row[i] = append([]scalar.Scalar(nil), r...)
	}
	return out
}

// FromDense builds a Store from a fully materialized L×L dense matrix,
// validating that it is genuinely skew-symmetric: a zero diagonal and
// M[i][j] == -M[j][i] for all i<j. A violation is the "malformed skew
// input" fatal condition of §7.
func FromDense(l int, m [][]scalar.Scalar) *Store {
	s := New(l)
	for i := 0; i < l; i++ {
		if !m[i][i].IsZero() {
			panic(badInput)
		}
		for j := i + 1; j < l; j++ {
			if scalar.Cmp(m[i][j], scalar.Neg(m[j][i])) != 0 {
				panic(badInput)
			}
			s.Set(i, j, m[i][j])
		}
	}
	return s
}

func (s *Store) checkIndex(i int) {
	if i < 0 || i >= s.l {
		panic(badIndex)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
