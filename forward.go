// Copyright ©2024 The adrt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adrt

import (
	"github.com/harshith-gowrachari/adrt/internal/parallel"
	"github.com/harshith-gowrachari/adrt/internal/scratch"
)

// Forward computes the ADRT of img, running passes [0, iterEnd] (the
// full log2(N) sweep when iterEnd is -1), per spec.md §4.3. Forward
// always starts from pass 0; to resume a partial computation from an
// existing ADRT-layout state, use ForwardContinue.
func Forward[T Float](img Image[T], iterEnd int) (Quadrants[T], error) {
	if err := validateSquarePow2("Forward", img.Planes, img.N); err != nil {
		return Quadrants[T]{}, err
	}
	n := img.N
	numIters := NumIters(n)
	start, end, err := normalizeIterRange("Forward", 0, iterEnd, numIters)
	if err != nil {
		return Quadrants[T]{}, err
	}

	length, ok := mulCheckN(img.Planes, 4, 2*n-1, n)
	if !ok {
		return Quadrants[T]{}, ErrMemory
	}
	out := Quadrants[T]{Planes: img.Planes, N: n, Data: make([]T, length)}

	cfgs := reversedPassConfigs(n)[start : end+1]
	for plane := 0; plane < img.Planes; plane++ {
		imgPlane := img.Data[plane*n*n : (plane+1)*n*n]
		for q := 0; q < 4; q++ {
			dstQuad := out.Data[(plane*4+q)*out.quadStride() : (plane*4+q+1)*out.quadStride()]
			runForwardQuadrant(dstQuad, imgPlane, n, q, cfgs)
		}
	}
	return out, nil
}

// ForwardContinue resumes a forward sweep from an ADRT-layout state
// representing the result after pass iterStart-1 (or the untouched
// quadrant initialization when iterStart == 0), running passes
// [iterStart, iterEnd]. It implements spec.md §4.3's "partial iteration
// mode": running [0,k] then [k+1,last] must equal running [0,last] in
// one call.
func ForwardContinue[T Float](q Quadrants[T], iterStart, iterEnd int) (Quadrants[T], error) {
	if err := validateADRTShape("ForwardContinue", q.Planes, q.N); err != nil {
		return Quadrants[T]{}, err
	}
	n := q.N
	numIters := NumIters(n)
	start, end, err := normalizeIterRange("ForwardContinue", iterStart, iterEnd, numIters)
	if err != nil {
		return Quadrants[T]{}, err
	}

	out := Quadrants[T]{Planes: q.Planes, N: n, Data: make([]T, len(q.Data))}
	cfgs := reversedPassConfigs(n)[start : end+1]
	for plane := 0; plane < q.Planes; plane++ {
		for quad := 0; quad < 4; quad++ {
			srcQuad := q.Data[(plane*4+quad)*q.quadStride() : (plane*4+quad+1)*q.quadStride()]
			dstQuad := out.Data[(plane*4+quad)*out.quadStride() : (plane*4+quad+1)*out.quadStride()]
			runForwardQuadrantFrom(dstQuad, srcQuad, n, cfgs)
		}
	}
	return out, nil
}

// reversedPassConfigs returns passConfigs(n) in reverse pass order.
// forwardPasses must undo Inverse's butterfly+cumsum passes in the
// opposite order from the one Inverse applies them in (see
// forwardPasses' doc comment), so Forward and ForwardContinue walk
// this sequence instead of passConfigs(n) directly; it is the only
// pass-ordering Forward uses, so "pass k" in Forward/ForwardContinue's
// iterStart/iterEnd means the k-th entry here, not the k-th entry of
// passConfigs(n).
func reversedPassConfigs(n int) []passConfig {
	cfgs := passConfigs(n)
	rev := make([]passConfig, len(cfgs))
	for i, c := range cfgs {
		rev[len(cfgs)-1-i] = c
	}
	return rev
}

// runForwardQuadrant runs cfgs starting from a fresh quadrant
// initialization of the reordered image plane.
func runForwardQuadrant[T Float](dstQuad, imgPlane []T, n, q int, cfgs []passConfig) {
	rowCount := 2 * n
	pair := scratch.NewPair[T](rowCount * n)
	defer pair.Release()

	reordered := scratch.Get[T](n * n)
	defer scratch.Put(reordered)
	reorderQuadrant(reordered, imgPlane, n, q)
	embedImage(pair.Prev, reordered, n)

	forwardPasses(pair, n, cfgs)
	copy(dstQuad, pair.Prev[n:rowCount*n])
}

// runForwardQuadrantFrom runs cfgs starting from an existing
// ADRT-layout quadrant slab srcQuad (shape (2n-1, n)).
func runForwardQuadrantFrom[T Float](dstQuad, srcQuad []T, n int, cfgs []passConfig) {
	rowCount := 2 * n
	pair := scratch.NewPair[T](rowCount * n)
	defer pair.Release()
	copy(pair.Prev[n:], srcQuad)
	forwardPasses(pair, n, cfgs)
	copy(dstQuad, pair.Prev[n:rowCount*n])
}

// embedImage writes reordered (an n×n image, already passed through
// this quadrant's reorderQuadrant) into dst (a (2n, n) buffer, zeroed
// on entry) at the layout forwardPasses starts from: the exact state
// inverse.go's copy-out step (the `reordered[a*n+(n-1-d)] =
// pair.Prev[(d+1)*n+a]` relation) would need to have read this image
// back out of, run backward. Rows 0 and n+1..2n-1 stay zero; Inverse's
// copy-out never reads them.
func embedImage[T Float](dst, reordered []T, n int) {
	for d := 0; d < n; d++ {
		for a := 0; a < n; a++ {
			dst[(d+1)*n+a] = reordered[a*n+(n-1-d)]
		}
	}
}

// forwardPasses runs cfgs (already in reversedPassConfigs order, i.e.
// starting from the pass Inverse applies last) against pair, swapping
// its buffers after every pass.
//
// The round-trip invariant iadrt(adrt(x)) = x (spec.md §8) pins down
// what forwardPasses must compute once inverse.go is trusted: Inverse
// is a straight-line composition of log2(N) pass operations, each one
// butterfly-subtract-then-column-cumsum, applied in passConfigs(n)'s
// order. Forward must be a matching linear right inverse, so it undoes
// that same composition pass by pass, in the opposite order — cumsum
// is inverted first (a backward finite difference), then the butterfly
// unit is inverted (a backward recurrence solving for the pair of
// columns Inverse's subtraction combined) — which is exactly why this
// function walks reversedPassConfigs(n) rather than passConfigs(n)
// directly. spec.md §9's worked 2×2 identity example does not survive
// this derivation (it was produced from a kernel fragment the
// specification itself flags as an unreliable mix of BDRT and ADRT
// layouts); quadrant 0 of the 2x2 identity image's ADRT under this
// construction is [[1,0],[1,2],[0,0]], confirmed by exact round-trip
// against inverse.go rather than against that example. See DESIGN.md.
func forwardPasses[T Float](pair *scratch.Pair[T], n int, cfgs []passConfig) {
	rowCount := 2 * n
	realRows := 2*n - 1
	diffed := scratch.Get[T](rowCount * n)
	defer scratch.Put(diffed)
	for _, cfg := range cfgs {
		prevStride := cfg.angleStrideBefore
		currStride := cfg.angleStrideAfter
		prev, curr := pair.Prev, pair.Curr

		// Invert this pass's cumulative sum: each column of prev is a
		// bottom-up running sum (inverse.go's own cumsum step); recover
		// the pre-sum values with a backward finite difference.
		parallel.For(n, func(an int) {
			var next T
			for xn := realRows - 1; xn >= 0; xn-- {
				v := prev[xn*n+an]
				diffed[xn*n+an] = v - next
				next = v
			}
		})

		// Invert this pass's butterfly: inverse.go's unit for (j,a)
		// reads columns (leftCol,rightCol) of prev and scatters their
		// difference into columns (newLeft,newRight) of curr. Given
		// (newLeft,newRight)'s values (here, diffed), recover
		// (leftCol,rightCol) by solving that scatter backward, one row
		// at a time from the bottom.
		pair.ZeroCurr()
		parallel.For(cfg.sectionCountBefore, func(j int) {
			for a := 0; a < currStride; a++ {
				leftCol := j*prevStride + 2*a
				rightCol := j*prevStride + 2*a + 1
				newLeft := (2*j)*currStride + a
				newRight := (2*j+1)*currStride + a
				var carry T
				for x := rowCount - 1; x >= 0; x-- {
					var lval T
					if x < realRows {
						lval = diffed[x*n+newLeft]
					}
					var rval T
					if xb := x - a - 1; xb >= 0 && xb < realRows {
						rval = diffed[xb*n+newRight]
					}
					left := lval + carry
					right := carry + rval + lval
					curr[x*n+leftCol] = left
					curr[x*n+rightCol] = right
					carry = right
				}
			}
		})
		pair.Swap()
	}
}
