// Copyright ©2024 The adrt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adrt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpCartShapeErrors(t *testing.T) {
	_, err := InterpCart(Quadrants[float64]{Planes: 1, N: 5, Data: make([]float64, 4*9*5)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShape))
}

func TestInterpCartZeroInput(t *testing.T) {
	n := 8
	q := Quadrants[float64]{Planes: 1, N: n, Data: make([]float64, 4*(2*n-1)*n)}
	out, err := InterpCart(q)
	require.NoError(t, err)
	require.Equal(t, 1, out.Planes)
	require.Equal(t, n, out.N)
	require.Len(t, out.Data, n*4*n)
	for i, v := range out.Data {
		assert.Zero(t, v, "index %d", i)
	}
}

// TestInterpCartMaxValue checks that a constant-valued quadrant tensor
// never produces an interpolated magnitude larger than the source
// value scaled by the sampling factor's known bound: factor is a unit
// vector norm (sqrt of two squared terms each <= 1), so it never
// exceeds sqrt(2), and every sampled cell divides by nf before
// reapplying it.
func TestInterpCartMaxValue(t *testing.T) {
	n := 8
	data := make([]float64, 4*(2*n-1)*n)
	for i := range data {
		data[i] = 3
	}
	q := Quadrants[float64]{Planes: 1, N: n, Data: data}
	out, err := InterpCart(q)
	require.NoError(t, err)
	bound := 3.0 / float64(n) * 1.4142135623730951
	for i, v := range out.Data {
		assert.LessOrEqual(t, v, bound+1e-9, "index %d", i)
		assert.GreaterOrEqual(t, v, 0.0, "index %d", i)
	}
}
