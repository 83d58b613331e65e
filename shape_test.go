// Copyright ©2024 The adrt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adrt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumIters(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{8, 3},
		{16, 4},
		{17, 5},
		{1024, 10},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NumIters(c.n), "NumIters(%d)", c.n)
	}
}

func TestIsPow2(t *testing.T) {
	assert.True(t, isPow2(1))
	assert.True(t, isPow2(2))
	assert.True(t, isPow2(64))
	assert.False(t, isPow2(0))
	assert.False(t, isPow2(-4))
	assert.False(t, isPow2(6))
}

func TestMulCheck(t *testing.T) {
	v, ok := mulCheck(3, 4)
	assert.True(t, ok)
	assert.Equal(t, 12, v)

	_, ok = mulCheck(1<<62, 1<<62)
	assert.False(t, ok)

	v, ok = mulCheckN(2, 4, 8, 0)
	assert.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestCheckedRow(t *testing.T) {
	buf := []float64{1, 2, 3, 4, 5, 6}
	assert.Equal(t, 4.0, checkedRow(buf, 1, 2, 3, 0))
	assert.Equal(t, 0.0, checkedRow(buf, -1, 2, 3, 0))
	assert.Equal(t, 0.0, checkedRow(buf, 2, 2, 3, 0))
}
