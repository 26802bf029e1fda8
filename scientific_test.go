// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compint

import "testing"

func TestFromScientificBasic(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"5E3", "5000"},
		{"5.25E3", "5250"},
		{"-5E2", "-500"},
		{"1E0", "1"},
		{"123E0", "123"},
		{"1.5E1", "15"},
	}
	for _, c := range cases {
		x, err := FromScientific(c.src)
		if err != nil {
			t.Fatalf("FromScientific(%q) error: %v", c.src, err)
		}
		if got := x.String(); got != c.want {
			t.Errorf("FromScientific(%q) = %q, want %q", c.src, got, c.want)
		}
	}
}

func TestFromScientificHundredDigits(t *testing.T) {
	x, err := FromScientific("1E100")
	if err != nil {
		t.Fatal(err)
	}
	if got := x.DigitCount(); got != 101 {
		t.Errorf("DigitCount() = %d, want 101", got)
	}
}

func TestFromScientificPeriodClause(t *testing.T) {
	x, err := FromScientific("1E50P5")
	if err != nil {
		t.Fatal(err)
	}
	if got := x.DigitCount(); got != 51 {
		t.Fatalf("DigitCount() = %d, want 51", got)
	}
	if got := x.DigitAt(0); got != '1' {
		t.Errorf("DigitAt(0) = %q, want '1'", got)
	}
	for i := 1; i < 51; i++ {
		if got := x.DigitAt(i); got != '5' {
			t.Fatalf("DigitAt(%d) = %q, want '5' (periodic tail)", i, got)
		}
	}
}

func TestFromScientificMultiDigitPeriod(t *testing.T) {
	x, err := FromScientific("1E10P12")
	if err != nil {
		t.Fatal(err)
	}
	want := "1" + "1212121212"
	if got := x.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFromScientificPrecisionLoss(t *testing.T) {
	_, err := FromScientific("5.25E1")
	if err == nil {
		t.Fatal("5.25E1 is not an integer, expected PrecisionLoss")
	}
	if err.(*Error).Kind != PrecisionLoss {
		t.Errorf("Kind = %v, want PrecisionLoss", err.(*Error).Kind)
	}
}

func TestFromScientificErrorKinds(t *testing.T) {
	cases := []struct {
		src      string
		wantKind Kind
	}{
		{"", EmptyInput},
		{"E5", EmptyInput},
		{"5..3E1", RepeatedDot},
		{"5.3.1E1", RepeatedDot},
		{"5P3", PeriodWithoutExponent},
		{"5.E1", ExponentAfterNonDigit},
		{"5EE1", InvalidCharacter},
		{"5E1.5", DotAfterExponent},
		{"5E1E2", RepeatedExponent},
		{"5E1P2P3", RepeatedPeriod},
		{"5E1P", EmptyPeriod},
		{"5E", EndsWithNonDigit},
		{"5.", EndsWithNonDigit},
		{"5E+P3", PeriodAfterNonDigit},
		{"5X1E2", InvalidCharacter},
	}
	for _, c := range cases {
		_, err := FromScientific(c.src)
		if err == nil {
			t.Fatalf("FromScientific(%q) should fail", c.src)
		}
		cerr, ok := err.(*Error)
		if !ok {
			t.Fatalf("FromScientific(%q) error type = %T", c.src, err)
		}
		if cerr.Kind != c.wantKind {
			t.Errorf("FromScientific(%q) Kind = %v, want %v", c.src, cerr.Kind, c.wantKind)
		}
	}
}

func TestFromScientificExponentOverflow(t *testing.T) {
	_, err := FromScientific("1E9999999999")
	if err == nil || err.(*Error).Kind != ExponentOverflow {
		t.Fatalf("expected ExponentOverflow, got %v", err)
	}
}

func TestToScientificExactAndTrimmed(t *testing.T) {
	x, err := FromDecimalString("52500")
	if err != nil {
		t.Fatal(err)
	}
	if got := x.ToScientific(2); got != "5.25E4" {
		t.Errorf("ToScientific(2) = %q, want 5.25E4", got)
	}
	if got := x.ToScientific(4); got != "5.2500E4" {
		t.Errorf("ToScientific(4) = %q, want 5.2500E4", got)
	}
	if got := x.ToScientific(-4); got != "5.25E4" {
		t.Errorf("ToScientific(-4) = %q, want 5.25E4 (trailing zeros trimmed)", got)
	}
	if got := x.ToScientific(0); got != "5E4" {
		t.Errorf("ToScientific(0) = %q, want 5E4", got)
	}
}

func TestToScientificUnbounded(t *testing.T) {
	x, err := FromDecimalString("100")
	if err != nil {
		t.Fatal(err)
	}
	if got := x.ToScientific(-2147483648); got != "1E2" {
		t.Errorf("ToScientific(MinInt32) = %q, want 1E2", got)
	}
}

func TestScientificRoundTrip(t *testing.T) {
	x, err := FromDecimalString("1234500")
	if err != nil {
		t.Fatal(err)
	}
	s := x.ToScientific(-2147483648)
	y, err := FromScientific(s)
	if err != nil {
		t.Fatalf("re-parsing %q: %v", s, err)
	}
	if y.Compare(x) != 0 {
		t.Errorf("round trip: %s -> %q -> %s", x, s, y)
	}
}
