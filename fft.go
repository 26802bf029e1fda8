// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file wires an FFT-based multiplication backend for very large
// operands (SPEC_FULL.md §11 Domain Stack), bridging through math/big
// (the teacher's own domain package) to github.com/remyoudompheng/bigfft,
// which implements the Schönhage-Strassen-style FFT multiply that the
// corpus's bignum code never needed at schoolbook/Karatsuba sizes.

package compint

import "github.com/remyoudompheng/bigfft"

// MultiplyFFT returns x*y computed via an FFT-based big.Int
// multiplication, intended for operand sizes well beyond where
// Karatsuba's quadratic/subquadratic crossover pays off. Results are
// identical to MultiplySimple and MultiplyKaratsuba; only the
// algorithm's asymptotic behaviour differs.
func (x *Int) MultiplyFFT(y *Int) *Int {
	xa, ya := x.toBigIntAbs(), y.toBigIntAbs()
	prod := bigfft.Mul(xa, ya)
	z := fromBigIntAbs(prod)
	z.negative = x.negative != y.negative && !z.isZeroMagnitude()
	return z
}
