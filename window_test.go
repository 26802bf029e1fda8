// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compint

import "testing"

func TestSuffixElisionGet(t *testing.T) {
	// length=3, offset=0, but backing array only holds 1 limb: positions
	// 1 and 2 are elided trailing zeros.
	x := &Int{limbs: []uint32{7}, offset: 0, length: 3}
	if !x.elided() {
		t.Fatal("expected elision to be active")
	}
	if got := x.get(0); got != 7 {
		t.Errorf("get(0) = %d, want 7", got)
	}
	if got := x.get(1); got != 0 {
		t.Errorf("get(1) = %d, want 0 (elided)", got)
	}
	if got := x.get(2); got != 0 {
		t.Errorf("get(2) = %d, want 0 (elided)", got)
	}
}

func TestMaterialiseFullWindow(t *testing.T) {
	x := &Int{limbs: []uint32{7}, offset: 0, length: 3}
	x.materialiseFullWindow()
	if x.elided() {
		t.Fatal("expected elision cleared after materialise")
	}
	if len(x.limbs) != 3 || x.limbs[0] != 7 || x.limbs[1] != 0 || x.limbs[2] != 0 {
		t.Errorf("materialised limbs = %v, want [7 0 0]", x.limbs)
	}
}

func TestEnsurePrefixHeadroom(t *testing.T) {
	x := &Int{limbs: []uint32{1, 2, 3}, offset: 0, length: 3}
	x.ensurePrefixHeadroom(2)
	if x.offset != 2 {
		t.Errorf("offset = %d, want 2", x.offset)
	}
	if x.get(0) != 1 || x.get(1) != 2 || x.get(2) != 3 {
		t.Errorf("window contents changed after growth: %v", x.limbs)
	}
}

func TestCanonicalise(t *testing.T) {
	x := &Int{limbs: []uint32{0, 0, 5}, offset: 0, length: 3, negative: true}
	x.canonicalise()
	if x.length != 1 || x.get(0) != 5 {
		t.Errorf("canonicalise left length=%d get(0)=%d, want 1,5", x.length, x.get(0))
	}

	zero := &Int{limbs: []uint32{0, 0}, offset: 0, length: 2, negative: true}
	zero.canonicalise()
	if zero.negative {
		t.Error("canonicalise should clear negative on zero magnitude")
	}
	if zero.length != 1 {
		t.Errorf("canonicalise(0) length = %d, want 1", zero.length)
	}
}

func TestClear(t *testing.T) {
	x := &Int{limbs: []uint32{1, 2, 3}, offset: 0, length: 3, negative: true}
	x.clear()
	if !x.IsZero() || x.negative {
		t.Error("Clear should reset to non-negative 0")
	}
	if x.offset != len(x.limbs)-1 {
		t.Errorf("clear offset = %d, want rightmost slot %d", x.offset, len(x.limbs)-1)
	}
}

func TestCopyPreservesElision(t *testing.T) {
	x := &Int{limbs: []uint32{7}, offset: 0, length: 3}
	y := x.Copy()
	if !y.elided() {
		t.Error("Copy should preserve suffix elision")
	}
	y.materialiseFullWindow()
	if !x.elided() {
		t.Error("materialising the copy's window should not affect the original")
	}
}

func TestAllocateForDigits(t *testing.T) {
	x := AllocateForDigits(20)
	if !x.IsZero() {
		t.Error("AllocateForDigits should return a zero value")
	}
	x.DoubleInPlace() // exercise the reserved headroom without panicking
}
