// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements decimal rendering: String/ToByteArray (whole
// buffer) and Stream (incremental, spec §6 streaming), grounded on
// _teacher_copy/intconv.go's Append-style incremental writer, adapted to
// call a user sink repeatedly instead of building one []byte.

package compint

// String returns x's canonical decimal rendering, including a leading
// '-' when negative.
func (x *Int) String() string {
	return string(x.ToByteArray(true))
}

// ToByteArray renders x's canonical decimal digits into a freshly
// allocated []byte, including the sign when includeSign is true (spec
// §6 to_byte_array).
func (x *Int) ToByteArray(includeSign bool) []byte {
	out := make([]byte, 0, x.Length()+1)
	if includeSign && x.negative {
		out = append(out, '-')
	}
	top := int(x.topDigitsCount())
	buf := make([]byte, top)
	formatLimb(buf, x.get(0))
	out = append(out, buf...)
	full := make([]byte, limbDigits)
	for i := 1; i < x.length; i++ {
		formatLimb(full, x.get(i))
		out = append(out, full...)
	}
	return out
}

// Stream renders x's canonical decimal digits without materialising the
// whole string at once, calling sink with successive chunks until sink
// returns false or the number is fully rendered (spec §6 stream(sink)).
// Chunks passed to sink are only valid for the duration of the call;
// sink must copy anything it needs to retain.
func (x *Int) Stream(sink func([]byte) bool) {
	if x.negative {
		if !sink([]byte{'-'}) {
			return
		}
	}
	top := int(x.topDigitsCount())
	buf := make([]byte, top)
	formatLimb(buf, x.get(0))
	if !sink(buf) {
		return
	}
	full := make([]byte, limbDigits)
	for i := 1; i < x.length; i++ {
		formatLimb(full, x.get(i))
		if !sink(full) {
			return
		}
	}
}
