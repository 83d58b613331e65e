// Copyright ©2024 The adrt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parallel provides a work-sharing parallel-for used by the
// ADRT butterfly passes, modeled on the goroutine/sync.WaitGroup
// fan-out in gonum.org/v1/gonum/diff/fd's Derivative (the Concurrent
// code path there splits independent stencil evaluations across
// goroutines with no shared mutable state; the ADRT passes have the
// same shape, splitting independent cells of a pass instead).
package parallel

import (
	"runtime"
	"sync"
)

// For runs fn(i) for every i in [0,n). When n is small or the runtime
// reports a single usable processor, it runs serially in the calling
// goroutine; otherwise it splits [0,n) into contiguous chunks, one per
// GOMAXPROCS, and runs them concurrently. fn must not share mutable
// state across calls with different i (every pass write target is
// disjoint, per spec.md §5), so no synchronization beyond the
// completion barrier is required.
func For(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	procs := runtime.GOMAXPROCS(0)
	if procs <= 1 || n < 2*procs {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	chunk := (n + procs - 1) / procs
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}(lo, hi)
	}
	wg.Wait()
}
