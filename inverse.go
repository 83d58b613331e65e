// Copyright ©2024 The adrt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adrt

import (
	"github.com/harshith-gowrachari/adrt/internal/parallel"
	"github.com/harshith-gowrachari/adrt/internal/scratch"
)

// Inverse computes the IADRT of q, running passes [0, iterEnd] (the
// full sweep when iterEnd is -1), per spec.md §4.4. Each of the four
// quadrants reconstructs the original image independently; Inverse
// applies each quadrant's inverse reordering during copy-out so that
// every one of the four Image4 slices equals the original image, per
// the round-trip invariant of spec.md §8.
//
// Ported index-for-index from
// original_source/adrt/adrt_cdefs_iadrt.hpp: the subtraction butterfly
// and the bottom-up cumulative sum, which runs over all n angle columns
// on every pass.
func Inverse[T Float](q Quadrants[T], iterEnd int) (Image4[T], error) {
	if err := validateADRTShape("Inverse", q.Planes, q.N); err != nil {
		return Image4[T]{}, err
	}
	n := q.N
	numIters := NumIters(n)
	_, end, err := normalizeIterRange("Inverse", 0, iterEnd, numIters)
	if err != nil {
		return Image4[T]{}, err
	}

	length, ok := mulCheckN(q.Planes, 4, n, n)
	if !ok {
		return Image4[T]{}, ErrMemory
	}
	out := Image4[T]{Planes: q.Planes, N: n, Data: make([]T, length)}

	cfgs := passConfigs(n)[:end+1]
	for plane := 0; plane < q.Planes; plane++ {
		for quad := 0; quad < 4; quad++ {
			srcQuad := q.Data[(plane*4+quad)*q.quadStride() : (plane*4+quad+1)*q.quadStride()]
			dstQuad := out.Data[(plane*4+quad)*out.quadStride() : (plane*4+quad+1)*out.quadStride()]
			runInverseQuadrant(dstQuad, srcQuad, n, quad, cfgs)
		}
	}
	return out, nil
}

func runInverseQuadrant[T Float](dstQuad, srcQuad []T, n, quad int, cfgs []passConfig) {
	rowCount := 2 * n
	realRows := 2*n - 1
	pair := scratch.NewPair[T](rowCount * n)
	defer pair.Release()

	// Prepend the padding row (always zero) and copy the rest directly,
	// per the original kernel's own copy-in loop.
	for row := 0; row < realRows; row++ {
		copy(pair.Prev[(row+1)*n:(row+2)*n], srcQuad[row*n:(row+1)*n])
	}

	for _, cfg := range cfgs {
		pair.ZeroCurr()
		prevStride := cfg.angleStrideBefore
		currStride := cfg.angleStrideAfter
		prev, curr := pair.Prev, pair.Curr
		parallel.For(cfg.sectionCountBefore, func(j int) {
			leftColOld := func(a int) int { return j*prevStride + 2*a }
			rightColOld := func(a int) int { return j*prevStride + 2*a + 1 }
			for a := 0; a < currStride; a++ {
				lOld, rOld := leftColOld(a), rightColOld(a)
				newLeft := (2*j)*currStride + a
				newRight := (2*j+1)*currStride + a
				for x := 0; x < rowCount; x++ {
					raval := prev[x*n+lOld]
					rbval := prev[x*n+rOld]
					if xb := x - a - 1; xb >= 0 && xb < realRows {
						curr[xb*n+newRight] = rbval - raval
					}
					var laval T
					if xb1 := x + 1; xb1 >= 0 && xb1 < rowCount {
						laval = prev[xb1*n+rOld]
					}
					curr[x*n+newLeft] = raval - laval
				}
				for y := realRows - a; y < rowCount; y++ {
					curr[y*n+newRight] = 0
				}
				curr[0*n+newLeft] = 0
			}
		})

		// Bottom-up cumulative sum over all n angle columns, not only
		// the pass's currStride-wide section, independent across columns
		// (spec.md §4.4's ordering constraint: serial along rows,
		// parallel across columns).
		parallel.For(n, func(an int) {
			var sum T
			for xn := realRows - 1; xn >= 0; xn-- {
				sum += curr[xn*n+an]
				curr[xn*n+an] = sum
			}
		})

		pair.Swap()
	}

	// Copy-out: prev's rows [1,n] (skipping the padding row) hold the
	// reconstruction in this quadrant's own reordered coordinate frame;
	// transpose (d,a) -> (a, n-1-d) per spec.md §4.4, then undo the
	// quadrant's geometric reordering.
	reordered := make([]T, n*n)
	for d := 0; d < n; d++ {
		for a := 0; a < n; a++ {
			reordered[a*n+(n-1-d)] = pair.Prev[(d+1)*n+a]
		}
	}
	invReorderQuadrant(dstQuad, reordered, n, quad)
}
