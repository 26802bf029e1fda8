// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements right-to-left (least significant exponent bit
// first) square-and-multiply exponentiation
// (spec §4.7 C8), riding on the Karatsuba engine in karatsuba.go/pool.go.

package compint

import "context"

// Pow returns x raised to the non-negative integer power exp, using the
// default Karatsuba threshold for its internal multiplications (spec §6
// pow).
func (x *Int) Pow(exp uint) *Int {
	result := FromInt32(1)
	base := x.Copy()
	for e := exp; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = result.MultiplyKaratsuba(base)
		}
		if e > 1 {
			base = base.MultiplyKaratsuba(base)
		}
	}
	return result
}

// ParallelPow is Pow, dispatching each squaring/multiply step through
// ParallelMultiplyKaratsuba on pool (spec §6 parallel_pow).
func (x *Int) ParallelPow(exp uint, threshold, maxDepth int, pool *Pool) (*Int, error) {
	return x.ParallelPowContext(context.Background(), exp, threshold, maxDepth, pool)
}

// ParallelPowContext is ParallelPow with an explicit context.
func (x *Int) ParallelPowContext(ctx context.Context, exp uint, threshold, maxDepth int, pool *Pool) (*Int, error) {
	result := FromInt32(1)
	base := x.Copy()
	for e := exp; e > 0; e >>= 1 {
		if e&1 == 1 {
			r, err := result.ParallelMultiplyKaratsubaContext(ctx, base, threshold, maxDepth, pool)
			if err != nil {
				return nil, err
			}
			result = r
		}
		if e > 1 {
			b, err := base.ParallelMultiplyKaratsubaContext(ctx, base, threshold, maxDepth, pool)
			if err != nil {
				return nil, err
			}
			base = b
		}
	}
	return result, nil
}
