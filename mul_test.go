// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compint

import (
	"math"
	"testing"
)

func TestMultiplySimpleSmall(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{6, 7, 42},
		{-6, 7, -42},
		{-6, -7, 42},
		{0, 12345, 0},
	}
	for _, c := range cases {
		x, y := FromInt64(c.a), FromInt64(c.b)
		got := x.MultiplySimple(y)
		if got.ToI64() != c.want {
			t.Errorf("%d * %d = %s, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestMultiplySimpleRepeatedFive(t *testing.T) {
	// "5" repeated 1000 times, times 33 -- exercises a multi-limb operand
	// against a small one.
	digits := make([]byte, 1000)
	for i := range digits {
		digits[i] = '5'
	}
	a, err := FromDecimalString(string(digits))
	if err != nil {
		t.Fatal(err)
	}
	b := FromInt64(33)
	got := a.MultiplySimple(b)

	want, err := FromDecimalString(string(digits))
	if err != nil {
		t.Fatal(err)
	}
	want.MulInPlace(33)
	if got.Compare(want) != 0 {
		t.Errorf("schoolbook result disagrees with MulInPlace(33)")
	}
}

func TestMultiplySimpleCrossLimbCarry(t *testing.T) {
	a, _ := FromDecimalString("999999999999999999")
	b, _ := FromDecimalString("999999999999999999")
	got := a.MultiplySimple(b)
	want := "999999999999999998000000000000000001"
	if got.String() != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestScalarMulDivRoundTrip(t *testing.T) {
	x, _ := FromDecimalString("123456789012345678")
	x.MulInPlace(7)
	rem, err := x.DivInPlace(7)
	if err != nil {
		t.Fatal(err)
	}
	if rem != 0 {
		t.Errorf("remainder = %d, want 0", rem)
	}
	if got := x.String(); got != "123456789012345678" {
		t.Errorf("round trip got %q", got)
	}
}

func TestDivInPlaceRemainderSign(t *testing.T) {
	x := FromInt64(-7)
	rem, err := x.DivInPlace(2)
	if err != nil {
		t.Fatal(err)
	}
	if rem != -1 {
		t.Errorf("remainder = %d, want -1 (truncation toward zero, dividend's sign)", rem)
	}
	if got := x.ToI64(); got != -3 {
		t.Errorf("quotient = %d, want -3", got)
	}
}

func TestDivInPlaceByZero(t *testing.T) {
	x := FromInt64(5)
	_, err := x.DivInPlace(0)
	if err == nil || err.(*Error).Kind != DivisionByZero {
		t.Fatalf("expected DivisionByZero, got %v", err)
	}
}

func TestDivInPlaceMinInt32Divisor(t *testing.T) {
	// d == math.MinInt32 cannot be negated in-place (spec §8's "MIN_I32
	// absolute value edge"); exercise both a negative and a positive
	// dividend against it to pin down the magnitude, not garbage from a
	// sign-extended overflowed negation.
	x := FromInt64(int64(math.MinInt32))
	rem, err := x.DivInPlace(math.MinInt32)
	if err != nil {
		t.Fatal(err)
	}
	if x.ToI64() != 1 || rem != 0 {
		t.Errorf("MinInt32/MinInt32 = %s rem %d, want 1 rem 0", x, rem)
	}

	y := FromInt64(int64(math.MaxInt32) + 1) // -MinInt32, as a positive magnitude
	rem, err = y.DivInPlace(math.MinInt32)
	if err != nil {
		t.Fatal(err)
	}
	if y.ToI64() != -1 || rem != 0 {
		t.Errorf("-MinInt32/MinInt32 = %s rem %d, want -1 rem 0", y, rem)
	}
}

func TestHalveDoubleDuality(t *testing.T) {
	x, _ := FromDecimalString("123456789012345678")
	orig := x.Copy()
	wasOdd := x.HalveInPlace()
	if wasOdd {
		t.Error("even number should not report odd")
	}
	x.DoubleInPlace()
	if x.Compare(orig) != 0 {
		t.Errorf("halve then double: got %s, want %s", x, orig)
	}
}

func TestHalveOdd(t *testing.T) {
	x := FromInt64(7)
	wasOdd := x.HalveInPlace()
	if !wasOdd {
		t.Error("7 should report odd")
	}
	if got := x.ToI64(); got != 3 {
		t.Errorf("7 halved = %d, want 3", got)
	}
}
