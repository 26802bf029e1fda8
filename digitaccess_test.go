// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compint

import "testing"

func TestDigitCountAndLength(t *testing.T) {
	cases := []struct {
		src         string
		digitCount  int
		length      int
	}{
		{"5", 1, 1},
		{"-5", 1, 2},
		{"123456789012", 12, 12},
		{"-123456789012", 12, 13},
		{"0", 1, 1},
	}
	for _, c := range cases {
		x, err := FromDecimalString(c.src)
		if err != nil {
			t.Fatal(err)
		}
		if got := x.DigitCount(); got != c.digitCount {
			t.Errorf("%q.DigitCount() = %d, want %d", c.src, got, c.digitCount)
		}
		if got := x.Length(); got != c.length {
			t.Errorf("%q.Length() = %d, want %d", c.src, got, c.length)
		}
	}
}

func TestDigitAt(t *testing.T) {
	x, err := FromDecimalString("-123456789012")
	if err != nil {
		t.Fatal(err)
	}
	want := "-123456789012"
	for i := 0; i < x.Length(); i++ {
		if got := x.DigitAt(i); got != want[i] {
			t.Errorf("DigitAt(%d) = %q, want %q", i, got, want[i])
		}
	}
}

func TestDigitAtOutOfRangePanics(t *testing.T) {
	x := FromInt64(5)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range DigitAt")
		}
	}()
	x.DigitAt(x.Length())
}

func TestDigitAtAcrossLimbBoundary(t *testing.T) {
	x, err := FromScientific("1E100")
	if err != nil {
		t.Fatal(err)
	}
	if got := x.DigitCount(); got != 101 {
		t.Fatalf("DigitCount() = %d, want 101", got)
	}
	if got := x.DigitAt(0); got != '1' {
		t.Errorf("DigitAt(0) = %q, want '1'", got)
	}
	for i := 1; i < 101; i++ {
		if got := x.DigitAt(i); got != '0' {
			t.Fatalf("DigitAt(%d) = %q, want '0'", i, got)
		}
	}
}
