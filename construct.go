// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements decimal-string construction (spec §6
// from_decimal_string), chunking the input into 9-digit limbs via
// parseLimb (digit.go, C2) the same way _teacher_copy/intconv.go's scan
// chunks a string into words. Chunks are aligned to the right end of the
// digits, so only the leftmost chunk may be shorter than nine digits;
// they are parsed left to right.

package compint

// FromDecimalString parses the entire string src as a signed decimal
// integer.
func FromDecimalString(src string) (*Int, error) {
	return FromDecimalStringRange(src, 0, len(src))
}

// FromDecimalStringRange parses src[from:to] as a signed decimal
// integer, matching the optional from/to range in spec §6.
func FromDecimalStringRange(src string, from, to int) (*Int, error) {
	if from < 0 || to > len(src) || from > to {
		return nil, newError(OffsetOutOfRange, src, from)
	}
	s := src[from:to]
	if len(s) == 0 {
		return nil, newError(EmptyInput, src, from)
	}
	neg := false
	start := 0
	switch s[0] {
	case '-':
		neg = true
		start = 1
	case '+':
		start = 1
	}
	digits := s[start:]
	if len(digits) == 0 {
		return nil, newError(EmptyInput, src, from)
	}
	n := (len(digits) + limbDigits - 1) / limbDigits
	limbs := make([]uint32, n)
	// The leftmost chunk may be shorter than 9 digits.
	firstLen := len(digits) - (n-1)*limbDigits
	pos := 0
	v, err := parseLimb([]byte(digits[pos:pos+firstLen]), from+start+pos)
	if err != nil {
		return nil, err
	}
	limbs[0] = v
	pos += firstLen
	for i := 1; i < n; i++ {
		v, err := parseLimb([]byte(digits[pos:pos+limbDigits]), from+start+pos)
		if err != nil {
			return nil, err
		}
		limbs[i] = v
		pos += limbDigits
	}
	x := &Int{limbs: limbs, offset: 0, length: n, negative: neg}
	x.canonicalise()
	return x, nil
}
