// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the signed addition/subtraction engine (spec
// §4.5, C5), dispatching on the four-quadrant sign table and delegating
// to three magnitude walks: add, subtract-greater-minus-smaller, and
// subtract-smaller-minus-greater (tens complement). Grounded on nat.go's
// add/sub (magnitude dispatch) and _teacher_copy/int.go's Add/Sub sign
// table.

package compint

// growForMagnitudeOp expands x's window leftward by extra logical
// limbs of zero, reserving physical headroom first (spec §4.3/§4.5
// step 1: "ensure prefix headroom").
func (x *Int) growForMagnitudeOp(extra int) {
	if extra <= 0 {
		return
	}
	x.ensurePrefixHeadroom(extra)
	x.offset -= extra
	x.length += extra
	for i := 0; i < extra; i++ {
		x.set(i, 0)
	}
}

// magAddInPlace sets x's magnitude to |x|+|y|, ignoring both signs.
func (x *Int) magAddInPlace(y *Int) {
	maxLen := x.length
	if y.length > maxLen {
		maxLen = y.length
	}
	x.growForMagnitudeOp(maxLen + 1 - x.length)
	x.materialiseFullWindow()

	var carry uint64
	for k := 0; k < x.length; k++ {
		selfIdx := x.length - 1 - k
		a := uint64(x.get(selfIdx))
		var b uint64
		if otherIdx := y.length - 1 - k; otherIdx >= 0 {
			b = uint64(y.get(otherIdx))
		} else if carry == 0 {
			break
		}
		c, v := addWW(a, b, carry)
		x.set(selfIdx, uint32(v))
		carry = c
	}
	x.canonicalise()
}

// magSubGreaterMinusSmaller sets x's magnitude to |x|-|y|, requiring
// |x| >= |y| (precondition: no final borrow can remain).
func (x *Int) magSubGreaterMinusSmaller(y *Int) {
	x.materialiseFullWindow()
	var borrow uint64
	for k := 0; k < x.length; k++ {
		selfIdx := x.length - 1 - k
		a := uint64(x.get(selfIdx))
		var b uint64
		if otherIdx := y.length - 1 - k; otherIdx >= 0 {
			b = uint64(y.get(otherIdx))
		} else if borrow == 0 {
			break
		}
		bOut, v := subWW(a, b, borrow)
		x.set(selfIdx, uint32(v))
		borrow = bOut
	}
	x.canonicalise()
}

// magSubSmallerMinusGreater sets x's magnitude to |y|-|x| by running
// subWW with the operands swapped, for use when the sign of the result
// must flip relative to x's current sign (spec §4.5).
func (x *Int) magSubSmallerMinusGreater(y *Int) {
	maxLen := x.length
	if y.length > maxLen {
		maxLen = y.length
	}
	x.growForMagnitudeOp(maxLen - x.length)
	x.materialiseFullWindow()

	var borrow uint64
	for k := 0; k < x.length; k++ {
		idx := x.length - 1 - k
		a := uint64(x.get(idx))
		var b uint64
		if otherIdx := y.length - 1 - k; otherIdx >= 0 {
			b = uint64(y.get(otherIdx))
		}
		// z := |y|-|x|, computed in place over x's window via the same
		// borrow/value helper as the greater-minus-smaller path with
		// operands swapped (spec §4.1 subComplement helpers realize the
		// identical tens-complement arithmetic for this case).
		bOut, v := subWW(b, a, borrow)
		x.set(idx, uint32(v))
		borrow = bOut
	}
	x.canonicalise()
}

// magCompareThenSubInPlace computes x := |x|-|y| or x := -(|y|-|x|)
// depending on which magnitude is larger, without touching x.negative
// (callers apply the resulting sign).
func (x *Int) magCompareThenSubInPlace(y *Int) (resultNegatedRelativeToX bool) {
	switch compareMagnitude(x, y) {
	case 0:
		x.clear()
		return false
	case 1:
		x.magSubGreaterMinusSmaller(y)
		return false
	default:
		x.magSubSmallerMinusGreater(y)
		return true
	}
}

// AddInPlace sets x to x+other, applying the four-quadrant sign table
// from spec §4.5, and returns x.
func (x *Int) AddInPlace(other *Int) *Int {
	if x.negative == other.negative {
		x.magAddInPlace(other)
		return x
	}
	flipped := x.magCompareThenSubInPlace(other)
	if flipped {
		x.negative = other.negative
	}
	return x
}

// SubInPlace sets x to x-other and returns x.
func (x *Int) SubInPlace(other *Int) *Int {
	if x.negative != other.negative {
		x.magAddInPlace(other)
		return x
	}
	flipped := x.magCompareThenSubInPlace(other)
	if flipped {
		x.negative = !other.negative
	}
	return x
}

// Add returns a freshly-owned x+other.
func (x *Int) Add(other *Int) *Int {
	return x.Copy().AddInPlace(other)
}

// Sub returns a freshly-owned x-other.
func (x *Int) Sub(other *Int) *Int {
	return x.Copy().SubInPlace(other)
}

// AddInt64InPlace sets x to x+v and returns x.
func (x *Int) AddInt64InPlace(v int64) *Int {
	return x.AddInPlace(FromInt64(v))
}

// SubInt64InPlace sets x to x-v and returns x.
func (x *Int) SubInt64InPlace(v int64) *Int {
	return x.SubInPlace(FromInt64(v))
}

// IncrementInPlace adds 1 to x in place. It is a fast path that avoids
// a full AddInPlace call unless a carry or borrow would cross a limb
// boundary. The crossing -1 -> 0 takes the negative branch: the last
// limb drops to 0 and canonicalise clears the sign (spec §4.5).
func (x *Int) IncrementInPlace() *Int {
	last := x.length - 1
	if !x.negative {
		if x.get(last) < base1e9-1 {
			x.materialiseFullWindow()
			x.set(last, x.get(last)+1)
			x.firstDigitLen = 0
			return x
		}
		return x.AddInPlace(FromInt32(1))
	}
	// x < 0: x+1 moves magnitude toward zero.
	if x.isZeroMagnitude() {
		x.negative = false
		x.materialiseFullWindow()
		x.set(last, 1)
		return x
	}
	if x.get(last) > 0 {
		x.materialiseFullWindow()
		x.set(last, x.get(last)-1)
		x.canonicalise()
		return x
	}
	return x.AddInPlace(FromInt32(1))
}

// DecrementInPlace subtracts 1 from x in place, with the explicit
// zero-crossing case (0 -> -1) called out in spec §4.5.
func (x *Int) DecrementInPlace() *Int {
	last := x.length - 1
	if x.negative {
		if x.get(last) < base1e9-1 {
			x.materialiseFullWindow()
			x.set(last, x.get(last)+1)
			x.firstDigitLen = 0
			return x
		}
		return x.SubInPlace(FromInt32(1))
	}
	if x.isZeroMagnitude() {
		x.negative = true
		x.materialiseFullWindow()
		x.set(last, 1)
		return x
	}
	if x.get(last) > 0 {
		x.materialiseFullWindow()
		x.set(last, x.get(last)-1)
		x.canonicalise()
		return x
	}
	return x.SubInPlace(FromInt32(1))
}
