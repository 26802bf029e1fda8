// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements carry/borrow primitives and reciprocal division
// helpers on single R9 limbs (radix base1e9). Adapted from the binary-
// radix carry helpers in arith.go (addWW_g/subWW_g) to decimal radix.

package compint

import "math/bits"

// base1e9 is the radix of an R9 limb: each limb holds nine decimal
// digits, 0 <= limb < base1e9.
const base1e9 = 1_000_000_000

// limbDigits is the number of decimal digits per R9 limb.
const limbDigits = 9

// addWW realizes a+b+c = carry*base1e9 + value for limb
// values a, b in [0, base1e9) and an incoming carry c in {0,1}.
func addWW(a, b, c uint64) (carry, value uint64) {
	s := a + b + c
	if s >= base1e9 {
		return 1, s - base1e9
	}
	return 0, s
}

// subWW realizes a-b-c = -borrow*base1e9 + value, borrow in {0,1}.
func subWW(a, b, c uint64) (borrow, value uint64) {
	s := int64(a) - int64(b) - int64(c)
	if s < 0 {
		return 1, uint64(s + base1e9)
	}
	return 0, uint64(s)
}

// mulAddWW computes x*y+c, returning the result split across two limbs
// (hi holds any carry beyond a single R9 limb, lo is in [0,base1e9)).
// x, y < base1e9 and c is a running carry accumulated from a multi-limb
// loop, so 64-bit arithmetic suffices: the maximum product
// (base1e9-1)^2 plus two limb-sized carries comfortably fits uint64.
func mulAddWW(x, y, c uint64) (hi, lo uint64) {
	hi, lo = bits.Mul64(x, y)
	var carryOut uint64
	lo, carryOut = bits.Add64(lo, c, 0)
	hi += carryOut
	q, r := bits.Div64(hi, lo, base1e9)
	return q, r
}

// No reciprocal (magic, shift) constants are defined for the fixed
// small divisors the scalar and digit-indexing paths need: the code
// uses n/d directly (see digit.go, digitaccess.go), and Go's compiler
// strength-reduces constant-divisor division to the multiply-shift form.
//
// pow10 returns 10^k.
func pow10(k uint) uint64 {
	p := uint64(1)
	for i := uint(0); i < k; i++ {
		p *= 10
	}
	return p
}

// limbDigitCount returns the number of decimal digits of x, 0 <= x <
// base1e9 (0 counts as one digit), branch-ladder style (spec §4.2, C2).
func limbDigitCount(x uint32) uint8 {
	switch {
	case x < 10:
		return 1
	case x < 100:
		return 2
	case x < 1_000:
		return 3
	case x < 10_000:
		return 4
	case x < 100_000:
		return 5
	case x < 1_000_000:
		return 6
	case x < 10_000_000:
		return 7
	case x < 100_000_000:
		return 8
	default:
		return 9
	}
}
