// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compint

import (
	"math"
	"testing"
)

func TestFromInt64RoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 999_999_999, 1_000_000_000, math.MaxInt64, math.MinInt64, -999_999_999_999}
	for _, v := range cases {
		x := FromInt64(v)
		if got := x.ToI64(); got != v {
			t.Errorf("FromInt64(%d).ToI64() = %d", v, got)
		}
	}
}

func TestMinInt64RoundTrip(t *testing.T) {
	x := FromInt64(math.MinInt64)
	if !x.IsLong() {
		t.Fatal("MinInt64 should report IsLong() true")
	}
	if got := x.ToI64(); got != math.MinInt64 {
		t.Errorf("ToI64() = %d, want MinInt64", got)
	}
}

func TestIsIntBoundary(t *testing.T) {
	maxI32 := FromInt64(math.MaxInt32)
	if !maxI32.IsInt() {
		t.Error("MaxInt32 should fit in int32")
	}
	overMaxI32 := FromInt64(math.MaxInt32 + 1)
	if overMaxI32.IsInt() {
		t.Error("MaxInt32+1 should not fit in int32")
	}
	minI32 := FromInt64(math.MinInt32)
	if !minI32.IsInt() {
		t.Error("MinInt32 should fit in int32")
	}
	if got := minI32.ToI32(); got != math.MinInt32 {
		t.Errorf("ToI32() of the real MinInt32 = %d, want MinInt32 (not mistaken for the sentinel)", got)
	}
	tooBig := FromInt64(math.MinInt32 - 1)
	if tooBig.IsInt() {
		t.Error("MinInt32-1 should not fit in int32")
	}
	if got := tooBig.ToI32(); got != math.MinInt32 {
		t.Errorf("ToI32() out-of-range sentinel = %d, want MinInt32", got)
	}
}

func TestIsLongUnmappable(t *testing.T) {
	huge, err := FromDecimalString("99999999999999999999999999999999")
	if err != nil {
		t.Fatal(err)
	}
	if huge.IsLong() {
		t.Error("a 32-digit number should not fit in int64")
	}
	if got := huge.ToI64(); got != math.MinInt64 {
		t.Errorf("ToI64() sentinel = %d, want MinInt64", got)
	}
}

func TestCompareSignQuadrants(t *testing.T) {
	neg := FromInt64(-5)
	pos := FromInt64(5)
	zero := Zero()
	if neg.Compare(pos) != -1 {
		t.Error("-5 should compare less than 5")
	}
	if pos.Compare(neg) != 1 {
		t.Error("5 should compare greater than -5")
	}
	if zero.Compare(Zero()) != 0 {
		t.Error("0 should compare equal to 0")
	}
	if neg.Compare(zero) != -1 {
		t.Error("-5 should compare less than 0")
	}
}

func TestNegateZeroIsNoop(t *testing.T) {
	z := Zero()
	z.Negate()
	if z.IsNegative() {
		t.Error("negating zero must not produce a negative zero")
	}
}

func TestIsEven(t *testing.T) {
	if !FromInt64(4).IsEven() {
		t.Error("4 should be even")
	}
	if FromInt64(5).IsEven() {
		t.Error("5 should be odd")
	}
	if !Zero().IsEven() {
		t.Error("0 should be even")
	}
}
