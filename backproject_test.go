// Copyright ©2024 The adrt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adrt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestBackProjectShapeErrors(t *testing.T) {
	_, err := BackProject(Quadrants[float64]{Planes: 1, N: 6, Data: make([]float64, 4*11*6)}, -1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShape))
}

// TestBackProjectAdjoint checks that BackProject is the linear adjoint
// of Forward: <Forward(x), g> == <x, BackProject(g)>, summed over every
// index of both tensors (spec.md §4.5, §8; DESIGN.md's derivation of
// backwardCumsum/backwardUnit as forwardPasses' transpose). Quadrants are kept
// separate on both sides of the inner product, matching DESIGN.md's
// "kept separate, not summed" decision for BackProject's output shape.
func TestBackProjectAdjoint(t *testing.T) {
	n := 8
	imgLen := n * n
	x := make([]float64, imgLen)
	for i := range x {
		x[i] = float64(i%13) - 6
	}
	img := Image[float64]{Planes: 1, N: n, Data: x}

	qx, err := Forward(img, -1)
	require.NoError(t, err)

	g := make([]float64, len(qx.Data))
	for i := range g {
		g[i] = float64((i*7)%17) - 8
	}
	grad := Quadrants[float64]{Planes: 1, N: n, Data: g}

	bp, err := BackProject(grad, -1)
	require.NoError(t, err)

	var lhs float64
	for i := range qx.Data {
		lhs += qx.Data[i] * g[i]
	}

	var rhs float64
	for plane := 0; plane < 1; plane++ {
		for quad := 0; quad < 4; quad++ {
			slab := bp.Data[(plane*4+quad)*bp.quadStride() : (plane*4+quad+1)*bp.quadStride()]
			for i, v := range slab {
				rhs += x[i] * v
			}
		}
	}

	assert.True(t, scalar.EqualWithinAbsOrRel(lhs, rhs, 1e-8, 1e-8),
		"adjoint inner products disagree: lhs=%v rhs=%v", lhs, rhs)
}

// TestBackProjectAdjointSmallN repeats the adjoint check at N=4 (two
// passes instead of three), and TestBackProjectAdjointPartialIterEnd
// repeats it restricted to a partial pass range, matching spec.md
// §4.5's "partial-iteration semantics mirror §4.3".
func TestBackProjectAdjointSmallN(t *testing.T) {
	n := 4
	x := []float64{3, -1, 2, 0, 5, -4, 1, 2, 0, 1, -2, 3, 4, 0, -1, 2}
	img := Image[float64]{Planes: 1, N: n, Data: x}

	qx, err := Forward(img, -1)
	require.NoError(t, err)

	g := make([]float64, len(qx.Data))
	for i := range g {
		g[i] = float64((i*5)%9) - 4
	}
	grad := Quadrants[float64]{Planes: 1, N: n, Data: g}

	bp, err := BackProject(grad, -1)
	require.NoError(t, err)

	var lhs float64
	for i := range qx.Data {
		lhs += qx.Data[i] * g[i]
	}
	var rhs float64
	for quad := 0; quad < 4; quad++ {
		slab := bp.Data[quad*bp.quadStride() : (quad+1)*bp.quadStride()]
		for i, v := range slab {
			rhs += x[i] * v
		}
	}
	assert.True(t, scalar.EqualWithinAbsOrRel(lhs, rhs, 1e-8, 1e-8),
		"adjoint inner products disagree: lhs=%v rhs=%v", lhs, rhs)
}

func TestBackProjectAdjointPartialIterEnd(t *testing.T) {
	n := 8
	x := make([]float64, n*n)
	for i := range x {
		x[i] = float64(i%13) - 6
	}
	img := Image[float64]{Planes: 1, N: n, Data: x}

	for end := 0; end < NumIters(n); end++ {
		qx, err := Forward(img, end)
		require.NoError(t, err)

		g := make([]float64, len(qx.Data))
		for i := range g {
			g[i] = float64((i*7)%17) - 8
		}
		grad := Quadrants[float64]{Planes: 1, N: n, Data: g}

		bp, err := BackProject(grad, end)
		require.NoError(t, err)

		var lhs float64
		for i := range qx.Data {
			lhs += qx.Data[i] * g[i]
		}
		var rhs float64
		for quad := 0; quad < 4; quad++ {
			slab := bp.Data[quad*bp.quadStride() : (quad+1)*bp.quadStride()]
			for i, v := range slab {
				rhs += x[i] * v
			}
		}
		assert.True(t, scalar.EqualWithinAbsOrRel(lhs, rhs, 1e-8, 1e-8),
			"iterEnd=%d: adjoint inner products disagree: lhs=%v rhs=%v", end, lhs, rhs)
	}
}

func TestBackProjectZeroInput(t *testing.T) {
	n := 4
	q := Quadrants[float64]{Planes: 1, N: n, Data: make([]float64, 4*(2*n-1)*n)}
	out, err := BackProject(q, -1)
	require.NoError(t, err)
	for i, v := range out.Data {
		assert.Zero(t, v, "index %d", i)
	}
}
