// Copyright ©2024 The isingpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import "testing"

func TestArithmetic(t *testing.T) {
	SetPrec(128)
	a := FromInt64(7)
	b := FromInt64(3)

	if got := Add(a, b).Float64(); got != 10 {
		t.Errorf("Add(7,3) = %v, want 10", got)
	}
	if got := Sub(a, b).Float64(); got != 4 {
		t.Errorf("Sub(7,3) = %v, want 4", got)
	}
	if got := Mul(a, b).Float64(); got != 21 {
		t.Errorf("Mul(7,3) = %v, want 21", got)
	}
	if got := Quo(a, b).Float64(); got < 2.3333332 || got > 2.3333334 {
		t.Errorf("Quo(7,3) = %v, want ~2.33333", got)
	}
	if got := Neg(a).Float64(); got != -7 {
		t.Errorf("Neg(7) = %v, want -7", got)
	}
	if got := Abs(Neg(a)).Float64(); got != 7 {
		t.Errorf("Abs(-7) = %v, want 7", got)
	}
}

func TestCmpAbs(t *testing.T) {
	SetPrec(64)
	small := FromInt64(-2)
	big := FromInt64(3)
	if CmpAbs(small, big) >= 0 {
		t.Errorf("CmpAbs(-2,3) should be negative (|-2|<|3|)")
	}
	if CmpAbs(big, small) <= 0 {
		t.Errorf("CmpAbs(3,-2) should be positive")
	}
	if CmpAbs(FromInt64(5), FromInt64(-5)) != 0 {
		t.Errorf("CmpAbs(5,-5) should be zero")
	}
}

func TestIsZeroAndSign(t *testing.T) {
	SetPrec(64)
	z := Zero()
	if !z.IsZero() {
		t.Errorf("Zero() should be IsZero")
	}
	if z.Sign() != 0 {
		t.Errorf("Zero() sign should be 0")
	}
	if FromInt64(-4).Sign() != -1 {
		t.Errorf("FromInt64(-4) sign should be -1")
	}
	if FromInt64(4).Sign() != 1 {
		t.Errorf("FromInt64(4) sign should be 1")
	}
}

func TestParseRoundTrip(t *testing.T) {
	SetPrec(256)
	s, err := Parse("1.5e+02")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Float64() != 150 {
		t.Errorf("Parse(1.5e+02) = %v, want 150", s.Float64())
	}
}
