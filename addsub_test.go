// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compint

import "testing"

func TestAddInPlaceSignTable(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{5, 3, 8},
		{-5, -3, -8},
		{5, -3, 2},
		{-5, 3, -2},
		{3, -5, -2},
		{-3, 5, 2},
		{5, -5, 0},
	}
	for _, c := range cases {
		x := FromInt64(c.a)
		x.AddInPlace(FromInt64(c.b))
		if got := x.ToI64(); got != c.want {
			t.Errorf("%d + %d = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestSubInPlaceSignTable(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{5, 3, 2},
		{3, 5, -2},
		{-5, -3, -2},
		{-3, -5, 2},
		{5, -3, 8},
		{-5, 3, -8},
	}
	for _, c := range cases {
		x := FromInt64(c.a)
		x.SubInPlace(FromInt64(c.b))
		if got := x.ToI64(); got != c.want {
			t.Errorf("%d - %d = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestCarryCascade(t *testing.T) {
	x, _ := FromDecimalString("999999999999999999")
	x.AddInPlace(FromInt64(1))
	if got := x.String(); got != "1000000000000000000" {
		t.Errorf("carry cascade: got %q, want 1000000000000000000", got)
	}
}

func TestZeroCrossingIncrementDecrement(t *testing.T) {
	x := FromInt64(0)
	x.DecrementInPlace()
	if got := x.ToI64(); got != -1 {
		t.Errorf("0.decrement() = %d, want -1", got)
	}
	x.IncrementInPlace()
	if got := x.ToI64(); got != 0 {
		t.Errorf("(-1).increment() = %d, want 0", got)
	}
}

func TestIncrementAtLimbBoundary(t *testing.T) {
	x, _ := FromDecimalString("999999999")
	x.IncrementInPlace()
	if got := x.String(); got != "1000000000" {
		t.Errorf("got %q, want 1000000000", got)
	}
}

func TestDecrementCrossesToNegative(t *testing.T) {
	x := FromInt64(1)
	x.DecrementInPlace()
	if got := x.ToI64(); got != 0 {
		t.Errorf("1.decrement() = %d, want 0", got)
	}
	x.DecrementInPlace()
	if got := x.ToI64(); got != -1 {
		t.Errorf("0.decrement() = %d, want -1", got)
	}
}

func TestAddSubInverse(t *testing.T) {
	a := FromInt64(123456789)
	b := FromInt64(987654321)
	sum := a.Add(b)
	diff := sum.Sub(b)
	if diff.Compare(a) != 0 {
		t.Errorf("(a+b)-b = %s, want %s", diff, a)
	}
}
