// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements construction, assignment, comparison and
// fixed-width conversion of Int (spec §3 data model, §6 construction/
// views). Grounded on _teacher_copy/int.go's Sign/SetInt64/NewInt/Cmp
// shape, rebuilt over the R9 window storage model in window.go instead
// of the teacher's plain nat slice.

package compint

import "math"

// Zero returns a freshly owned Int with value 0. There is no shared
// constant: every call allocates (spec §9 design note).
func Zero() *Int {
	x := &Int{limbs: make([]uint32, 1)}
	x.length = 1
	return x
}

// FromInt32 returns a freshly owned Int with value x.
func FromInt32(x int32) *Int {
	return FromInt64(int64(x))
}

// FromInt64 returns a freshly owned Int with value x.
func FromInt64(x int64) *Int {
	z := Zero()
	z.SetInt64(x)
	return z
}

// SetInt64 sets x to v and returns x.
func (x *Int) SetInt64(v int64) *Int {
	neg := v < 0
	var mag uint64
	if v == math.MinInt64 {
		mag = uint64(math.MaxInt64) + 1
	} else if neg {
		mag = uint64(-v)
	} else {
		mag = uint64(v)
	}
	limbs := splitToLimbs(mag)
	x.limbs = limbs
	x.offset = 0
	x.length = len(limbs)
	x.negative = neg
	x.firstDigitLen = 0
	x.canonicalise()
	return x
}

// splitToLimbs decomposes a uint64 magnitude into base1e9 limbs, most
// significant first.
func splitToLimbs(mag uint64) []uint32 {
	if mag == 0 {
		return []uint32{0}
	}
	var tmp []uint32
	for mag > 0 {
		tmp = append(tmp, uint32(mag%base1e9))
		mag /= base1e9
	}
	// tmp is least-significant first; reverse into MSB-first order.
	out := make([]uint32, len(tmp))
	for i, v := range tmp {
		out[len(tmp)-1-i] = v
	}
	return out
}

// SetValue sets x to a copy of other's value and returns x.
func (x *Int) SetValue(other *Int) *Int {
	c := other.copyWindow()
	*x = *c
	return x
}

// Negate flips the sign of x in place, enforcing the non-goal of
// negative zero (spec §4.3 canonicalise, §8 negation involution).
func (x *Int) Negate() *Int {
	if !x.isZeroMagnitude() {
		x.negative = !x.negative
	}
	return x
}

// IsNegative reports whether x < 0.
func (x *Int) IsNegative() bool { return x.negative }

// Sign returns -1, 0, or +1.
func (x *Int) Sign() int {
	switch {
	case x.isZeroMagnitude():
		return 0
	case x.negative:
		return -1
	default:
		return 1
	}
}

// compareMagnitude compares |x| to |y|: -1, 0, +1.
func compareMagnitude(x, y *Int) int {
	if x.length != y.length {
		if x.length < y.length {
			return -1
		}
		return 1
	}
	for i := 0; i < x.length; i++ {
		a, b := x.get(i), y.get(i)
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	return 0
}

// CompareAbs compares |x| to |other|.
func (x *Int) CompareAbs(other *Int) int {
	return compareMagnitude(x, other)
}

// Compare compares x to other: -1, 0, or +1.
func (x *Int) Compare(other *Int) int {
	if x.negative != other.negative {
		if x.isZeroMagnitude() && other.isZeroMagnitude() {
			return 0
		}
		if x.negative {
			return -1
		}
		return 1
	}
	c := compareMagnitude(x, other)
	if x.negative {
		return -c
	}
	return c
}

// CompareI64 compares x to a machine integer.
func (x *Int) CompareI64(v int64) int {
	return x.Compare(FromInt64(v))
}

// CompareAbsI64 compares |x| to |v|.
func (x *Int) CompareAbsI64(v int64) int {
	return x.CompareAbs(FromInt64(v))
}

// IsEven reports whether x is even.
func (x *Int) IsEven() bool {
	return x.get(x.length-1)%2 == 0
}

// toMagnitude accumulates x's limbs into a uint64 magnitude, reporting
// fits=false on overflow.
func (x *Int) toMagnitude() (mag uint64, fits bool) {
	for i := 0; i < x.length; i++ {
		if mag > math.MaxUint64/base1e9 {
			return 0, false
		}
		mag *= base1e9
		limb := uint64(x.get(i))
		if mag > math.MaxUint64-limb {
			return 0, false
		}
		mag += limb
	}
	return mag, true
}

// IsInt reports whether x fits in an int32.
func (x *Int) IsInt() bool {
	mag, fits := x.toMagnitude()
	if !fits {
		return false
	}
	if x.negative {
		return mag <= uint64(math.MaxInt32)+1
	}
	return mag <= uint64(math.MaxInt32)
}

// IsLong reports whether x fits in an int64.
func (x *Int) IsLong() bool {
	mag, fits := x.toMagnitude()
	if !fits {
		return false
	}
	if x.negative {
		return mag <= uint64(math.MaxInt64)+1
	}
	return mag <= uint64(math.MaxInt64)
}

// ToI32 returns x as an int32, or math.MinInt32 as a sentinel if x does
// not fit (spec §6/§7: "the sole exception" to error-returning).
func (x *Int) ToI32() int32 {
	if !x.IsInt() {
		return math.MinInt32
	}
	return int32(x.ToI64())
}

// ToI64 returns x as an int64, or math.MinInt64 as a sentinel if x does
// not fit.
func (x *Int) ToI64() int64 {
	mag, fits := x.toMagnitude()
	if !fits {
		return math.MinInt64
	}
	if x.negative {
		if mag > uint64(math.MaxInt64)+1 {
			return math.MinInt64
		}
		return -int64(mag)
	}
	if mag > uint64(math.MaxInt64) {
		return math.MinInt64
	}
	return int64(mag)
}
