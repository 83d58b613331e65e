// Copyright ©2024 The adrt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adrt

import (
	"github.com/harshith-gowrachari/adrt/internal/parallel"
	"github.com/harshith-gowrachari/adrt/internal/scratch"
)

// BackProject computes the BDRT of q: the linear adjoint of Forward,
// per spec.md §4.5. Unlike Inverse, BackProject does not reconstruct
// the original image; it scatters each quadrant's digital-line sums
// back onto the pixel grid that produced them, keeping the four
// quadrants separate in the returned Image4 rather than summing them,
// so that the adjoint inner-product test of spec.md §8 holds per
// quadrant.
//
// No forward/back-projection source file was available in
// original_source (see spec.md §9's Open Question); BackProject is
// instead derived mathematically, pass by pass, as the transpose of
// forwardPasses (see backwardUnit's doc comment for the derivation,
// and the comment above the pass loop below for why BackProject walks
// passConfigs(n) directly while Forward walks reversedPassConfigs(n) —
// each is exactly the other's transpose).
func BackProject[T Float](q Quadrants[T], iterEnd int) (Image4[T], error) {
	if err := validateADRTShape("BackProject", q.Planes, q.N); err != nil {
		return Image4[T]{}, err
	}
	n := q.N
	numIters := NumIters(n)
	_, end, err := normalizeIterRange("BackProject", 0, iterEnd, numIters)
	if err != nil {
		return Image4[T]{}, err
	}

	length, ok := mulCheckN(q.Planes, 4, n, n)
	if !ok {
		return Image4[T]{}, ErrMemory
	}
	out := Image4[T]{Planes: q.Planes, N: n, Data: make([]T, length)}

	// Forward(img, end) applies reversedPassConfigs(n)[0:end+1], i.e.
	// passConfigs(n)'s last end+1 entries in reverse order; the adjoint
	// of that sweep applies the same entries in the opposite order,
	// which is exactly passConfigs(n)'s own order restricted to that
	// tail slice.
	all := passConfigs(n)
	cfgs := all[len(all)-1-end:]
	for plane := 0; plane < q.Planes; plane++ {
		for quad := 0; quad < 4; quad++ {
			srcQuad := q.Data[(plane*4+quad)*q.quadStride() : (plane*4+quad+1)*q.quadStride()]
			dstQuad := out.Data[(plane*4+quad)*out.quadStride() : (plane*4+quad+1)*out.quadStride()]
			runBackProjectQuadrant(dstQuad, srcQuad, n, quad, cfgs)
		}
	}
	return out, nil
}

func runBackProjectQuadrant[T Float](dstQuad, srcQuad []T, n, quad int, cfgs []passConfig) {
	rowCount := 2 * n
	realRows := 2*n - 1

	gradState := scratch.GetZeroed[T](rowCount * n)
	for row := 0; row < realRows; row++ {
		copy(gradState[(row+1)*n:(row+2)*n], srcQuad[row*n:(row+1)*n])
	}

	for _, cfg := range cfgs {
		gradDiffed := scratch.GetZeroed[T](rowCount * n)
		backwardUnit(gradDiffed, gradState, n, cfg)
		scratch.Put(gradState)

		gradPrev := scratch.GetZeroed[T](rowCount * n)
		backwardCumsum(gradPrev, gradDiffed, n)
		scratch.Put(gradDiffed)

		gradState = gradPrev
	}

	// gradState is now the gradient w.r.t. embedImage's input; read it
	// back out at embedImage's own index relation, transposed.
	gradImage := scratch.GetZeroed[T](n * n)
	for d := 0; d < n; d++ {
		for a := 0; a < n; a++ {
			gradImage[a*n+(n-1-d)] = gradState[(d+1)*n+a]
		}
	}
	scratch.Put(gradState)

	invReorderQuadrant(dstQuad, gradImage, n, quad)
	scratch.Put(gradImage)
}

// backwardCumsum is the adjoint of forwardPasses' cumsum-inversion
// step. That step is a backward (suffix) finite difference; its
// adjoint is the mirror-image forward difference.
func backwardCumsum[T Float](gradPrev, gradDiffed []T, n int) {
	realRows := 2*n - 1
	parallel.For(n, func(an int) {
		var prev T
		for xn := 0; xn < realRows; xn++ {
			v := gradDiffed[xn*n+an]
			gradPrev[xn*n+an] = v - prev
			prev = v
		}
	})
}

// backwardUnit is the adjoint of forwardPasses' per-(j,a) butterfly
// unit inversion. That inversion computes, for x from rowCount-1 down
// to 0 with carry starting at 0 and becoming "right" each step:
//
//	left  = L[x] + carry
//	right = carry + R[x-a-1] + L[x]      (R term dropped when x-a-1 is out of range)
//	carry = right
//
// Unrolled, this is a pair of suffix/prefix sums in x:
//
//	A[x] = Σ_{k>=x} L[k] + Σ_{k>=x+1} Rterm(k)
//	B[x] = Σ_{k>=x} L[k] + Σ_{k>=x}   Rterm(k)
//
// where Rterm(k) = R[k-a-1] when in range. Differentiating termwise
// gives the adjoint as the mirror-image prefix sums in x:
//
//	gL[k] = Σ_{x<=k}     (gA[x]+gB[x])
//	gR[m] = Σ_{x<=m+a}   gA[x] + Σ_{x<=m+a+1} gB[x]
//
// gA, gB are gradCurr's (leftCol, rightCol) columns — the gradient
// w.r.t. this pass's butterfly-inversion output; gL, gR land in gradDiffed's
// (newLeft, newRight) columns — the gradient w.r.t. its input.
func backwardUnit[T Float](gradDiffed, gradCurr []T, n int, cfg passConfig) {
	rowCount := 2 * n
	realRows := 2*n - 1
	prevStride := cfg.angleStrideBefore
	currStride := cfg.angleStrideAfter
	parallel.For(cfg.sectionCountBefore, func(j int) {
		prefA := make([]T, rowCount+1)
		prefB := make([]T, rowCount+1)
		for a := 0; a < currStride; a++ {
			leftCol := j*prevStride + 2*a
			rightCol := j*prevStride + 2*a + 1
			newLeft := (2*j)*currStride + a
			newRight := (2*j+1)*currStride + a

			for x := 0; x < rowCount; x++ {
				prefA[x+1] = prefA[x] + gradCurr[x*n+leftCol]
				prefB[x+1] = prefB[x] + gradCurr[x*n+rightCol]
			}
			for x := 0; x < rowCount; x++ {
				gradDiffed[x*n+newLeft] = prefA[x+1] + prefB[x+1]
			}
			for m := 0; m < realRows; m++ {
				idx1 := m + a
				if idx1 > rowCount-1 {
					idx1 = rowCount - 1
				}
				idx2 := m + a + 1
				if idx2 > rowCount-1 {
					idx2 = rowCount - 1
				}
				gradDiffed[m*n+newRight] = prefA[idx1+1] + prefB[idx2+1]
			}
		}
	})
}
