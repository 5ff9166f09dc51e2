// Copyright ©2024 The isingpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package permute holds the small index-array helper used by package
// lattice to build the contiguous identity ranges that make up an
// interleaved sublattice ordering, per the row-permutation bookkeeping
// design note: the permutation is tracked as an index array rather than
// renumbered in place, with signs accumulated separately by the caller.
package permute

import "github.com/samber/lo"

// Identity returns [base, base+1, ..., base+n-1].
func Identity(base, n int) []int {
	return lo.RangeFrom(base, n)
}
