// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Property-based tests for the universally-quantified invariants spec
// §8 lists (round trip, negation involution, add commutativity/
// associativity, multiplication distributivity and backend agreement,
// div/mul relationship, halve/double duality, digit-indexing
// coherence, scientific round trip). Grounded on math/big's own
// testing/quick-based test suite.

package compint

import (
	"testing"
	"testing/quick"
)

func TestPropertyRoundTrip(t *testing.T) {
	f := func(v int64) bool {
		x := FromInt64(v)
		y, err := FromDecimalString(x.String())
		if err != nil {
			return false
		}
		return y.Compare(x) == 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestPropertyNegationInvolution(t *testing.T) {
	f := func(v int64) bool {
		x := FromInt64(v)
		y := x.Copy().Negate().Negate()
		return y.Compare(x) == 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestPropertyAddCommutative(t *testing.T) {
	f := func(a, b int64) bool {
		x, y := FromInt64(a), FromInt64(b)
		return x.Add(y).Compare(y.Add(x)) == 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestPropertyAddAssociative(t *testing.T) {
	f := func(a, b, c int64) bool {
		x, y, z := FromInt64(a), FromInt64(b), FromInt64(c)
		left := x.Add(y).Add(z)
		right := x.Add(y.Add(z))
		return left.Compare(right) == 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestPropertyMultiplyDistributesOverAdd(t *testing.T) {
	f := func(a, b, c int64) bool {
		x, y, z := FromInt64(a), FromInt64(b), FromInt64(c)
		left := x.MultiplySimple(y.Add(z))
		right := x.MultiplySimple(y).Add(x.MultiplySimple(z))
		return left.Compare(right) == 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestPropertyMultiplyBackendsAgree(t *testing.T) {
	f := func(a, b int64) bool {
		x, y := FromInt64(a), FromInt64(b)
		simple := x.MultiplySimple(y)
		karatsuba := x.MultiplyKaratsuba(y)
		fft := x.MultiplyFFT(y)
		return simple.Compare(karatsuba) == 0 && simple.Compare(fft) == 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestPropertyDivInPlaceReconstructsDividend(t *testing.T) {
	f := func(a int64, d int32) bool {
		if d == 0 {
			return true
		}
		x := FromInt64(a)
		quotient := x.Copy()
		rem, err := quotient.DivInPlace(d)
		if err != nil {
			return false
		}
		reconstructed := quotient.MulInPlace(int64(d)).AddInPlace(FromInt64(int64(rem)))
		return reconstructed.Compare(x) == 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestPropertyHalveDoubleDuality(t *testing.T) {
	f := func(a int64) bool {
		x := FromInt64(a)
		doubled := x.Copy().DoubleInPlace()
		doubled.HalveInPlace()
		return doubled.Compare(x) == 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestPropertyDigitIndexingCoherence(t *testing.T) {
	f := func(a int64) bool {
		x := FromInt64(a)
		s := x.String()
		if len(s) != x.Length() {
			return false
		}
		for i := 0; i < len(s); i++ {
			if x.DigitAt(i) != s[i] {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestPropertyScientificRoundTrip(t *testing.T) {
	f := func(a int64) bool {
		x := FromInt64(a)
		s := x.ToScientific(-2147483648)
		y, err := FromScientific(s)
		if err != nil {
			return false
		}
		return y.Compare(x) == 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
