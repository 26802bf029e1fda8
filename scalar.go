// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements scalar multiply/divide/halve/double (spec §4.4,
// C4), grounded on _teacher_copy/int.go's Mul/Quo fast-path comments and
// nat.go's divWVW.

package compint

import "math"

// MulInPlace multiplies x in place by the machine scalar s (spec §6
// mul_in_place).
func (x *Int) MulInPlace(s int64) *Int {
	if s == math.MinInt64 {
		// Cannot negate MIN_I64; route through the general BigNum path.
		return x.MulInPlace2(FromInt64(s))
	}
	if s == 0 {
		x.clear()
		return x
	}
	neg := s < 0
	mag := uint64(s)
	if neg {
		mag = uint64(-s)
	}
	if mag < base1e9 {
		x.mulInPlaceSmall(uint32(mag))
	} else {
		// mag fits in an int64 here: the only magnitude that wouldn't
		// (1<<63) belongs to MinInt64, already routed away above.
		x.MulInPlace2(FromInt64(int64(mag)))
	}
	x.negative = x.negative != neg
	x.canonicalise()
	return x
}

// mulInPlaceSmall implements the |s| < base1e9 fast loop of spec §4.4.1:
// a single pass from the least significant limb, carrying a 64-bit
// running product.
func (x *Int) mulInPlaceSmall(s uint32) {
	x.materialiseFullWindow()
	x.ensurePrefixHeadroom(1)
	var carry uint64
	for i := x.length - 1; i >= 0; i-- {
		p := carry + uint64(x.get(i))*uint64(s)
		x.set(i, uint32(p%base1e9))
		carry = p / base1e9
	}
	if carry != 0 {
		x.offset--
		x.length++
		x.set(0, uint32(carry))
	}
}

// MulInPlace2 multiplies x in place by another Int (general fallback
// used when |s| >= base1e9, spec §4.4.1).
func (x *Int) MulInPlace2(y *Int) *Int {
	product := multiplySimple(x, y)
	*x = *product
	return x
}

// DivInPlace divides x in place by the 32-bit divisor d, returning the
// truncated-toward-zero remainder (spec §6 div_in_place).
func (x *Int) DivInPlace(d int32) (int32, error) {
	if d == 0 {
		return 0, newErrorAt(DivisionByZero, "")
	}
	if d == 1 {
		return 0, nil
	}
	if x.isZeroMagnitude() {
		return 0, nil
	}
	negDiv := d < 0
	var mag uint64
	if d == math.MinInt32 {
		// -d overflows in int32 (stays MinInt32); take the magnitude
		// directly instead of negating.
		mag = uint64(math.MaxInt32) + 1
	} else if negDiv {
		mag = uint64(-d)
	} else {
		mag = uint64(d)
	}
	origNeg := x.negative
	x.materialiseFullWindow()
	var r uint64
	for i := 0; i < x.length; i++ {
		v := r*base1e9 + uint64(x.get(i))
		q := v / mag
		r = v % mag
		x.set(i, uint32(q))
	}
	x.negative = origNeg != negDiv
	x.canonicalise()
	// Remainder sign matches the dividend's original sign (truncation
	// toward zero), independent of the quotient's canonicalised sign.
	rem := int32(r)
	if origNeg && rem != 0 {
		rem = -rem
	}
	return rem, nil
}

// HalveInPlace halves x in place (floor division by 2 toward zero on
// the magnitude) and reports whether the original magnitude was odd
// (spec §4.4.3 halve_in_place).
func (x *Int) HalveInPlace() bool {
	x.materialiseFullWindow()
	var carry uint32 // 0 or base1e9/2
	for i := 0; i < x.length; i++ {
		v := x.get(i)
		odd := v % 2
		x.set(i, v/2+carry)
		carry = odd * (base1e9 / 2)
	}
	wasOdd := carry != 0
	x.canonicalise()
	return wasOdd
}

// DoubleInPlace doubles x in place (spec §4.4.3 double_in_place).
func (x *Int) DoubleInPlace() *Int {
	x.materialiseFullWindow()
	x.ensurePrefixHeadroom(1)
	var carry uint32
	for i := x.length - 1; i >= 0; i-- {
		v := x.get(i)*2 + carry
		if v >= base1e9 {
			v -= base1e9
			carry = 1
		} else {
			carry = 0
		}
		x.set(i, v)
	}
	if carry != 0 {
		x.offset--
		x.length++
		x.set(0, carry)
	}
	x.canonicalise()
	return x
}
