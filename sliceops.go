// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements plain, sign-free magnitude arithmetic over
// MSB-first []uint32 slices, shared by the Karatsuba engine (karatsuba.go)
// for its internal add/subtract/compare steps (spec §4.7 step 4: "all
// three subtractions use the in-place greater-equal path"). Grounded on
// nat.go's add/sub/cmp, restated over plain slices rather than the
// window-backed Int type since Karatsuba's recursion operates on
// immutable read-only sub-slices of the operands (spec §5).

package compint

// trimLeading drops leading zero limbs, returning the normalized
// MSB-first slice (possibly empty, denoting 0).
func trimLeading(x []uint32) []uint32 {
	i := 0
	for i < len(x) && x[i] == 0 {
		i++
	}
	return x[i:]
}

// compareSlices compares normalized magnitudes a, b (MSB-first, no
// leading zeros): -1, 0, +1.
func compareSlices(a, b []uint32) int {
	a, b = trimLeading(a), trimLeading(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// sliceAdd returns a+b as a normalized MSB-first slice.
func sliceAdd(a, b []uint32) []uint32 {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint32, len(a)+1)
	var carry uint64
	for i := 0; i < len(a); i++ {
		ai := uint64(a[len(a)-1-i])
		var bi uint64
		if i < len(b) {
			bi = uint64(b[len(b)-1-i])
		}
		c, v := addWW(ai, bi, carry)
		out[len(out)-1-i] = uint32(v)
		carry = c
	}
	out[0] = uint32(carry)
	return trimLeadingOrZero(out)
}

// sliceSub returns a-b as a normalized MSB-first slice, requiring a>=b.
func sliceSub(a, b []uint32) []uint32 {
	out := make([]uint32, len(a))
	var borrow uint64
	for i := 0; i < len(a); i++ {
		ai := uint64(a[len(a)-1-i])
		var bi uint64
		if i < len(b) {
			bi = uint64(b[len(b)-1-i])
		}
		bOut, v := subWW(ai, bi, borrow)
		out[len(out)-1-i] = uint32(v)
		borrow = bOut
	}
	return trimLeadingOrZero(out)
}

// trimLeadingOrZero normalizes, collapsing an all-zero result to a
// single zero limb rather than an empty slice, matching Int's
// length>=1 invariant when the result feeds back into a window.
func trimLeadingOrZero(x []uint32) []uint32 {
	t := trimLeading(x)
	if len(t) == 0 {
		return []uint32{0}
	}
	return t
}

// addSliceAtOffset adds src (MSB-first) into dst (MSB-first) such that
// src's least-significant limb lands at dst's logical position
// len(dst)-1-shiftFromEnd, propagating carry toward dst's most
// significant end. dst must be large enough that no carry escapes past
// dst[0] (guaranteed by the caller sizing dst to len(a)+len(b)).
func addSliceAtOffset(dst, src []uint32, shiftFromEnd int) {
	var carry uint64
	end := len(dst) - 1 - shiftFromEnd
	for i := 0; i < len(src); i++ {
		di := end - i
		if di < 0 {
			break
		}
		si := len(src) - 1 - i
		c, v := addWW(uint64(dst[di]), uint64(src[si]), carry)
		dst[di] = uint32(v)
		carry = c
	}
	for i := end - len(src); carry != 0 && i >= 0; i-- {
		s := uint64(dst[i]) + carry
		if s >= base1e9 {
			dst[i] = uint32(s - base1e9)
			carry = 1
		} else {
			dst[i] = uint32(s)
			carry = 0
		}
	}
}
