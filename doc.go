// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compint implements arbitrary-precision decimal-radix integer
// arithmetic.
//
// Two representations share one algorithmic skeleton. Int (R9) stores
// limbs as uint32 values in [0, 1e9), nine decimal digits per limb, and
// is the fast-arithmetic form. IntAscii (RA) stores one base-B digit
// value per byte limb, B in [2,256], not the printable byte itself; it
// maps digits to and from printable bytes through a BaseTable on input
// and output, and is the fast-I/O form.
//
// Every value is a mutable, exclusively-owned number: operations that
// return a new *Int or *IntAscii always return a freshly allocated
// instance, never a shared constant, because callers are free to mutate
// results in place.
package compint
