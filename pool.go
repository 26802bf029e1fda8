// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the fork/join worker pool and parallel Karatsuba
// variant (spec §4.7 parallel_karatsuba, §5 concurrency model). The
// three recursive sub-products are forked onto a shared worker pool and
// awaited before reassembly; cancellation is cooperative via
// context.Context. Grounded on golang.org/x/sync's errgroup/semaphore
// (listed in sentra-language-sentra's go.mod; see SPEC_FULL.md §11),
// which gives the fork/join + cooperative-cancellation shape directly
// rather than hand-rolling a channel fan-out.

package compint

import (
	"context"
	"math/bits"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Pool is a process-wide-shareable worker pool bounding how many
// Karatsuba sub-products run concurrently (spec §5 "shared resource
// policy").
type Pool struct {
	sem *semaphore.Weighted
}

// NewPool returns a Pool that runs at most parallelism sub-products
// concurrently.
func NewPool(parallelism int) *Pool {
	if parallelism < 1 {
		parallelism = 1
	}
	return &Pool{sem: semaphore.NewWeighted(int64(parallelism))}
}

var (
	globalPoolMu sync.Mutex
	globalPool   *Pool
)

// SetPool installs p as the process-wide default pool, returned by
// GetPool. The parallel multiply and pow entry points do not read it:
// they take their pool as an argument.
func SetPool(p *Pool) {
	globalPoolMu.Lock()
	defer globalPoolMu.Unlock()
	globalPool = p
}

// ClearPool removes the process-wide default pool; a nil pool selects
// the sequential path (spec §5).
func ClearPool() {
	globalPoolMu.Lock()
	defer globalPoolMu.Unlock()
	globalPool = nil
}

// GetPool returns the current process-wide default pool, or nil.
func GetPool() *Pool {
	globalPoolMu.Lock()
	defer globalPoolMu.Unlock()
	return globalPool
}

// DefaultMaxDepth returns 2*(ceil(log2(parallelism))+1), a depth for
// roughly balanced per-worker load (e.g. 4 threads -> 6, 8 threads -> 8,
// 16 -> 10).
func DefaultMaxDepth(parallelism int) int {
	if parallelism < 1 {
		parallelism = 1
	}
	return 2 * (bits.Len(uint(parallelism-1)) + 1)
}

// parallelKaratsubaSlices is the parallel twin of karatsubaSlices: once
// depth reaches maxDepth, or at/under threshold, or with no pool
// configured, it delegates to the sequential recursion (spec §5: "a null
// pool selects the sequential path").
func parallelKaratsubaSlices(ctx context.Context, a, b []uint32, threshold, maxDepth, depth int, pool *Pool) ([]uint32, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	a, b = trimLeading(a), trimLeading(b)
	if len(a) == 0 || len(b) == 0 {
		return []uint32{0}, nil
	}
	m, n := len(a), len(b)
	minLen, maxLen := m, n
	if n < minLen {
		minLen, maxLen = n, m
	}
	if pool == nil || depth >= maxDepth || minLen <= threshold || minLen < 2 {
		return karatsubaSlices(a, b, threshold), nil
	}

	h := maxLen / 2
	aHi, aLo := splitAt(a, h)
	bHi, bLo := splitAt(b, h)
	sumA := sliceAdd(aHi, aLo)
	sumB := sliceAdd(bHi, bLo)

	var ac, bd, mid []uint32
	g, gctx := errgroup.WithContext(ctx)
	fork := func(x, y []uint32, dst *[]uint32) func() error {
		return func() error {
			if err := pool.sem.Acquire(gctx, 1); err != nil {
				return err
			}
			defer pool.sem.Release(1)
			r, err := parallelKaratsubaSlices(gctx, x, y, threshold, maxDepth, depth+1, pool)
			if err != nil {
				return err
			}
			*dst = r
			return nil
		}
	}
	g.Go(fork(aHi, bHi, &ac))
	g.Go(fork(aLo, bLo, &bd))
	g.Go(fork(sumA, sumB, &mid))
	if err := g.Wait(); err != nil {
		return nil, err
	}

	mid = sliceSub(mid, ac)
	mid = sliceSub(mid, bd)
	result := make([]uint32, m+n)
	addSliceAtOffset(result, ac, 2*h)
	addSliceAtOffset(result, mid, h)
	addSliceAtOffset(result, bd, 0)
	return trimLeadingOrZero(result), nil
}

// ParallelMultiplyKaratsuba returns x*y, forking the three Karatsuba
// sub-products onto pool up to maxDepth recursion levels (spec §6
// parallel_multiply_karatsuba). A nil pool runs the sequential
// algorithm.
func (x *Int) ParallelMultiplyKaratsuba(y *Int, threshold, maxDepth int, pool *Pool) (*Int, error) {
	return x.ParallelMultiplyKaratsubaContext(context.Background(), y, threshold, maxDepth, pool)
}

// ParallelMultiplyKaratsubaContext is ParallelMultiplyKaratsuba with an
// explicit context; cancelling ctx cooperatively cancels any
// outstanding sub-tasks (spec §5).
func (x *Int) ParallelMultiplyKaratsubaContext(ctx context.Context, y *Int, threshold, maxDepth int, pool *Pool) (*Int, error) {
	prod, err := parallelKaratsubaSlices(ctx, toLimbSlice(x), toLimbSlice(y), threshold, maxDepth, 0, pool)
	if err != nil {
		return nil, err
	}
	z := &Int{limbs: prod, offset: 0, length: len(prod), negative: x.negative != y.negative}
	z.canonicalise()
	return z, nil
}
