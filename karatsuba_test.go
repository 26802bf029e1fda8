// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compint

import "testing"

func repeatedDigits(d byte, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = d
	}
	return string(b)
}

func TestKaratsubaAgreesWithSchoolbook(t *testing.T) {
	a, err := FromDecimalString(repeatedDigits('7', 200))
	if err != nil {
		t.Fatal(err)
	}
	b, err := FromDecimalString(repeatedDigits('3', 150))
	if err != nil {
		t.Fatal(err)
	}
	simple := a.MultiplySimple(b)
	kara := a.MultiplyKaratsuba(b)
	if simple.Compare(kara) != 0 {
		t.Error("MultiplyKaratsuba disagrees with MultiplySimple")
	}
}

func TestKaratsubaThresholdOne(t *testing.T) {
	a, _ := FromDecimalString(repeatedDigits('9', 50))
	b, _ := FromDecimalString(repeatedDigits('1', 37))
	simple := a.MultiplySimple(b)
	kara := a.MultiplyKaratsubaThreshold(b, 1)
	if simple.Compare(kara) != 0 {
		t.Error("threshold=1 Karatsuba disagrees with schoolbook")
	}
}

func TestKaratsubaSmallOperandsFallBack(t *testing.T) {
	a, b := FromInt64(6), FromInt64(7)
	if got := a.MultiplyKaratsuba(b).ToI64(); got != 42 {
		t.Errorf("got %d, want 42", got)
	}
}

func TestKaratsubaZeroOperand(t *testing.T) {
	a, _ := FromDecimalString(repeatedDigits('9', 80))
	zero := Zero()
	if got := a.MultiplyKaratsuba(zero); !got.IsZero() {
		t.Errorf("x*0 = %s, want 0", got)
	}
}

func TestKaratsubaLargeCrossCheck(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large cross-check in short mode")
	}
	a, err := FromDecimalString(repeatedDigits('3', 1000))
	if err != nil {
		t.Fatal(err)
	}
	b, err := FromDecimalString(repeatedDigits('7', 500))
	if err != nil {
		t.Fatal(err)
	}
	simple := a.MultiplySimple(b)
	kara := a.MultiplyKaratsuba(b)
	fft := a.MultiplyFFT(b)
	if simple.Compare(kara) != 0 {
		t.Error("Karatsuba disagrees with schoolbook on large operands")
	}
	if simple.Compare(fft) != 0 {
		t.Error("MultiplyFFT disagrees with schoolbook on large operands")
	}
}

func TestSplitAt(t *testing.T) {
	a := []uint32{1, 2, 3, 4, 5}
	hi, lo := splitAt(a, 2)
	if len(hi) != 3 || len(lo) != 2 {
		t.Fatalf("splitAt sizes = %d,%d want 3,2", len(hi), len(lo))
	}
	if hi[0] != 1 || lo[0] != 4 {
		t.Errorf("splitAt contents = hi:%v lo:%v", hi, lo)
	}
}
