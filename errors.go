// Copyright ©2024 The adrt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adrt

import (
	"errors"
	"fmt"
)

// ErrShape signifies that an input tensor's dimensionality or extents
// violate an operator's shape invariants: non-square, non-power-of-two
// side length, a mismatched (2N-1, N) pair, or a zero-size axis.
var ErrShape = errors.New("adrt: invalid tensor shape")

// ErrIterRange signifies that iterStart or iterEnd falls outside the
// valid range for the operator's shape.
var ErrIterRange = errors.New("adrt: iteration range out of bounds")

// ErrMemory signifies that the scratch buffer length required for a
// call overflows the platform's integer size before any allocation is
// attempted.
var ErrMemory = errors.New("adrt: scratch buffer size overflow")

// ShapeError reports a specific shape violation, wrapping ErrShape.
type ShapeError struct {
	Op     string
	Planes int
	N      int
	Dims   []int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("adrt: %s: invalid shape %v (planes=%d, n=%d)", e.Op, e.Dims, e.Planes, e.N)
}

func (e *ShapeError) Unwrap() error { return ErrShape }

// IterRangeError reports a specific out-of-range iteration bound,
// wrapping ErrIterRange.
type IterRangeError struct {
	Op        string
	IterStart int
	IterEnd   int
	NumIters  int
}

func (e *IterRangeError) Error() string {
	return fmt.Sprintf("adrt: %s: iteration range [%d,%d] invalid for NumIters=%d", e.Op, e.IterStart, e.IterEnd, e.NumIters)
}

func (e *IterRangeError) Unwrap() error { return ErrIterRange }
