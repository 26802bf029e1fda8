// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compint

import "testing"

func TestPowSmall(t *testing.T) {
	cases := []struct {
		base int64
		exp  uint
		want int64
	}{
		{2, 0, 1},
		{2, 10, 1024},
		{3, 5, 243},
		{-2, 3, -8},
		{-2, 4, 16},
		{5, 1, 5},
	}
	for _, c := range cases {
		got := FromInt64(c.base).Pow(c.exp)
		if got.ToI64() != c.want {
			t.Errorf("%d^%d = %s, want %d", c.base, c.exp, got, c.want)
		}
	}
}

func TestPowLargeExponent(t *testing.T) {
	got := FromInt64(2).Pow(100)
	want, err := FromDecimalString("1267650600228229401496703205376")
	if err != nil {
		t.Fatal(err)
	}
	if got.Compare(want) != 0 {
		t.Errorf("2^100 = %s, want %s", got, want)
	}
}

func TestParallelPowAgreesWithPow(t *testing.T) {
	seq := FromInt64(3).Pow(40)
	par, err := FromInt64(3).ParallelPow(40, DefaultKaratsubaThreshold, DefaultMaxDepth(4), NewPool(4))
	if err != nil {
		t.Fatal(err)
	}
	if seq.Compare(par) != 0 {
		t.Error("ParallelPow disagrees with Pow")
	}
}
