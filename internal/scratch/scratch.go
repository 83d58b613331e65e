// Copyright ©2024 The adrt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scratch provides size-stratified, pooled []T allocation for
// the ADRT kernels' ping-pong buffers, modeled on
// gonum.org/v1/gonum/mat's pool.go: a sync.Pool per power-of-two
// capacity bucket, so repeated calls on same-sized images reuse
// buffers instead of allocating on every call.
package scratch

import (
	"math/bits"
	"sync"
)

// Float is the scalar type constraint for pooled buffers.
type Float interface {
	~float32 | ~float64
}

const numStrata = 64

var poolsF32 [numStrata]sync.Pool
var poolsF64 [numStrata]sync.Pool

// stratum returns the index of the size class holding slices of
// capacity >= n: the ceiling of log2(n), matching mat.poolFor.
func stratum(n int) int {
	if n <= 0 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

func poolFor[T Float](n int) *sync.Pool {
	idx := stratum(n)
	var zero T
	switch any(zero).(type) {
	case float32:
		return &poolsF32[idx]
	default:
		return &poolsF64[idx]
	}
}

// Get returns a []T of length n. The backing array may be reused from
// an earlier Put; its contents are not guaranteed to be zeroed.
func Get[T Float](n int) []T {
	p := poolFor[T](n)
	if raw := p.Get(); raw != nil {
		if s, ok := raw.([]T); ok && cap(s) >= n {
			return s[:n]
		}
	}
	return make([]T, n, 1<<uint(stratum(n)))
}

// GetZeroed is like Get but guarantees the returned slice is
// zero-filled, for buffers the caller will read from before every
// address is written (the ADRT passes zero curr at the top of each
// pass; see forward.go and backproject.go).
func GetZeroed[T Float](n int) []T {
	s := Get[T](n)
	var zero T
	for i := range s {
		s[i] = zero
	}
	return s
}

// Put returns s to the pool for its capacity class. Callers must not
// retain references to s after calling Put.
func Put[T Float](s []T) {
	if cap(s) == 0 {
		return
	}
	p := poolFor[T](cap(s))
	p.Put(s)
}

// Pair is an owned ping-pong pair of scratch buffers, per spec.md §9's
// design note: "model as an owned pair with a swap() operation; never
// expose raw pointers beyond the inner loop."
type Pair[T Float] struct {
	Prev, Curr []T
}

// NewPair allocates a zeroed ping-pong pair, each of length n.
func NewPair[T Float](n int) *Pair[T] {
	return &Pair[T]{Prev: GetZeroed[T](n), Curr: GetZeroed[T](n)}
}

// Swap exchanges Prev and Curr.
func (p *Pair[T]) Swap() { p.Prev, p.Curr = p.Curr, p.Prev }

// ZeroCurr clears Curr in place, ahead of a pass that only writes a
// subset of its addresses (the rest must read back as zero).
func (p *Pair[T]) ZeroCurr() {
	var zero T
	for i := range p.Curr {
		p.Curr[i] = zero
	}
}

// Release returns both buffers to their pools. The Pair must not be
// used after calling Release.
func (p *Pair[T]) Release() {
	Put(p.Prev)
	Put(p.Curr)
	p.Prev, p.Curr = nil, nil
}
