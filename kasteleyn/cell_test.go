// Copyright ©2024 The isingpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kasteleyn

import (
	"testing"

	"github.com/latticepf/isingpf/scalar"
)

func TestBaseCellAllOnesUpperTriangle(t *testing.T) {
	scalar.SetPrec(64)
	m := BaseCell()
	if m.Side() != Side {
		t.Fatalf("Side() = %d, want %d", m.Side(), Side)
	}
	for i := 0; i < Side; i++ {
		for j := i + 1; j < Side; j++ {
			if m.Get(i, j).Float64() != 1 {
				t.Errorf("Get(%d,%d) = %v, want 1", i, j, m.Get(i, j).Float64())
			}
		}
	}
}
