// Copyright ©2024 The adrt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adrt

// Image is a batch of square images, row-major with shape
// (Planes, N, N).
type Image[T Float] struct {
	Planes int
	N      int
	Data   []T
}

// Quadrants is an ADRT-layout tensor, row-major with shape
// (Planes, 4, 2N-1, N): the quadrant axis indexes one of the four
// digital-line families, the next axis is displacement, the last is
// angle.
type Quadrants[T Float] struct {
	Planes int
	N      int
	Data   []T
}

// Image4 is a batch of four per-quadrant N×N images, row-major with
// shape (Planes, 4, N, N): the output layout of Inverse and
// BackProject (spec.md §4.4, §4.5).
type Image4[T Float] struct {
	Planes int
	N      int
	Data   []T
}

// Cart is the Cartesian-grid interpolation of an ADRT-layout tensor
// produced by InterpCart, row-major with shape (Planes, N, 4N).
type Cart[T Float] struct {
	Planes int
	N      int
	Data   []T
}

func (im Image[T]) quadStride() int     { return im.N * im.N }
func (q Quadrants[T]) rowCount() int     { return 2*q.N - 1 }
func (q Quadrants[T]) quadStride() int   { return q.rowCount() * q.N }
func (q Quadrants[T]) planeStride() int  { return 4 * q.quadStride() }
func (im Image4[T]) quadStride() int     { return im.N * im.N }
func (im Image4[T]) planeStride() int    { return 4 * im.quadStride() }
