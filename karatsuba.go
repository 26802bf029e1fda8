// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the sequential Karatsuba engine (spec §4.7, C7),
// grounded on nat.go's karatsuba/karatsubaAdd/karatsubaSub/karatsubaLen
// (other_examples' b1e7c18b_bford-go__src-math-big-nat.go.go), restated
// over the plain-slice helpers in sliceops.go since the recursion
// operates on immutable read-only sub-slices of the operands (spec §5).

package compint

// DefaultKaratsubaThreshold is the limb count at or below which
// MultiplyKaratsuba falls back to the schoolbook algorithm (spec §6:
// "multiply_karatsuba(threshold=40)").
const DefaultKaratsubaThreshold = 40

// splitAt splits x (MSB-first) at h limbs from the end: lo is the
// low min(h,len(x)) limbs, hi is whatever remains above it (spec §4.7
// step 3: left_part/right_part).
func splitAt(x []uint32, h int) (hi, lo []uint32) {
	if len(x) <= h {
		return nil, x
	}
	return x[:len(x)-h], x[len(x)-h:]
}

// karatsubaSlices multiplies normalized-or-not MSB-first magnitudes a, b,
// falling back to schoolbook multiplication at or below threshold limbs
// (spec §4.7 steps 1-6).
func karatsubaSlices(a, b []uint32, threshold int) []uint32 {
	a, b = trimLeading(a), trimLeading(b)
	if len(a) == 0 || len(b) == 0 {
		return []uint32{0}
	}
	m, n := len(a), len(b)
	minLen, maxLen := m, n
	if n < minLen {
		minLen, maxLen = n, m
	}
	if minLen <= threshold || minLen < 2 {
		return trimLeadingOrZero(multiplySlices(a, b))
	}

	h := maxLen / 2
	aHi, aLo := splitAt(a, h)
	bHi, bLo := splitAt(b, h)

	ac := karatsubaSlices(aHi, bHi, threshold)
	bd := karatsubaSlices(aLo, bLo, threshold)
	sumA := sliceAdd(aHi, aLo)
	sumB := sliceAdd(bHi, bLo)
	mid := karatsubaSlices(sumA, sumB, threshold)
	mid = sliceSub(mid, ac)
	mid = sliceSub(mid, bd)

	result := make([]uint32, m+n)
	// Reassembly is ordered: ac<<2h, then mid<<h, then bd (spec §5).
	addSliceAtOffset(result, ac, 2*h)
	addSliceAtOffset(result, mid, h)
	addSliceAtOffset(result, bd, 0)
	return trimLeadingOrZero(result)
}

func multiplyKaratsuba(x, y *Int, threshold int) *Int {
	prod := karatsubaSlices(toLimbSlice(x), toLimbSlice(y), threshold)
	z := &Int{limbs: prod, offset: 0, length: len(prod), negative: x.negative != y.negative}
	z.canonicalise()
	return z
}

// MultiplyKaratsuba returns x*y using the default Karatsuba threshold
// (spec §6 multiply_karatsuba).
func (x *Int) MultiplyKaratsuba(y *Int) *Int {
	return x.MultiplyKaratsubaThreshold(y, DefaultKaratsubaThreshold)
}

// MultiplyKaratsubaThreshold returns x*y, falling back to schoolbook
// multiplication at or below threshold limbs.
func (x *Int) MultiplyKaratsubaThreshold(y *Int, threshold int) *Int {
	return multiplyKaratsuba(x, y, threshold)
}
