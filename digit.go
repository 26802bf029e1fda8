// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the decimal digit codec for a single R9 limb
// (spec §4.2, C2). Parsing is hand-written rather than delegated to
// strconv.ParseUint because it needs a fixed-width byte range and an
// error index into the caller's original input, which strconv does not
// report.

package compint

// formatLimb writes x right-aligned into dest, left-padded with '0',
// filling exactly len(dest) bytes (1..9).
func formatLimb(dest []byte, x uint32) {
	for i := len(dest) - 1; i >= 0; i-- {
		dest[i] = byte('0' + x%10)
		x /= 10
	}
}

// parseLimb parses src (1..9 ASCII digit bytes) as a decimal limb.
// index is the offset of src[0] within the caller's original input, used
// to report a precise error location.
func parseLimb(src []byte, index int) (uint32, error) {
	if len(src) == 0 || len(src) > limbDigits {
		return 0, newError(MalformedDigit, string(src), index)
	}
	var v uint32
	for i, b := range src {
		if b < '0' || b > '9' {
			return 0, newError(MalformedDigit, string(src), index+i)
		}
		v = v*10 + uint32(b-'0')
	}
	return v, nil
}
