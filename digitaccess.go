// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements random-access decimal digit indexing over R9
// without materialising a string (spec §4.8, C9), grounded on
// other_examples' db47h-decimal dec.digit/dec.digits, generalised with
// the sign slot and suffix-elision awareness the window model (window.go)
// adds.

package compint

// topDigitsCount returns (and caches) the number of decimal digits of
// the most significant limb.
func (x *Int) topDigitsCount() uint8 {
	if x.firstDigitLen == 0 {
		x.firstDigitLen = limbDigitCount(x.get(0))
	}
	return x.firstDigitLen
}

// DigitCount returns the number of decimal digits in x's magnitude,
// excluding any sign character (spec §6 digit_count).
func (x *Int) DigitCount() int {
	return int(x.topDigitsCount()) + limbDigits*(x.length-1)
}

// Length returns the number of characters in x's canonical decimal
// rendering, including a leading '-' when negative (spec §4.8 length()).
func (x *Int) Length() int {
	n := x.DigitCount()
	if x.negative {
		n++
	}
	return n
}

// DigitAt returns the ASCII byte for the i-th character (0-based, most
// significant first) of x's canonical decimal rendering, including the
// sign character at i==0 when negative, without materialising the full
// string (spec §4.8). It panics if i is outside [0, x.Length()).
func (x *Int) DigitAt(i int) byte {
	if i < 0 || i >= x.Length() {
		panic("compint: digit index out of range")
	}
	if x.negative {
		if i == 0 {
			return '-'
		}
		i--
	}
	top := x.topDigitsCount()
	i += limbDigits - int(top)
	q := i / limbDigits
	r := i % limbDigits
	if x.offset+q >= len(x.limbs) {
		return '0'
	}
	v := x.limbs[x.offset+q]
	divisor := uint32(pow10(uint(limbDigits - 1 - r)))
	return byte('0' + (v/divisor)%10)
}
