// Copyright ©2024 The adrt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adrt

// The four quadrant reorderings are the index permutations of an N×N
// grid that the GLOSSARY's four angular quadrants are built from:
// identity, horizontal flip, transpose, and transpose-then-flip. Each
// quadrant's forward initialization (spec.md §4.3.1) writes the image
// through one of these before the butterfly passes begin; BackProject's
// final adjoint step undoes it with the matching inverse below.

// reorderQuadrant writes src (an n×n image) into dst (an n×n buffer)
// under the reordering for quadrant q.
func reorderQuadrant[T Float](dst, src []T, n, q int) {
	at := func(buf []T, r, c int) T { return buf[r*n+c] }
	set := func(buf []T, r, c int, v T) { buf[r*n+c] = v }
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			var v T
			switch q {
			case 0: // identity
				v = at(src, r, c)
			case 1: // horizontal flip
				v = at(src, r, n-1-c)
			case 2: // transpose
				v = at(src, c, r)
			case 3: // transpose then flip
				v = at(src, n-1-c, r)
			}
			set(dst, r, c, v)
		}
	}
}

// invReorderQuadrant is the functional inverse of reorderQuadrant: given
// a buffer produced by applying quadrant q's reordering, it recovers
// the original n×n grid.
func invReorderQuadrant[T Float](dst, src []T, n, q int) {
	at := func(buf []T, r, c int) T { return buf[r*n+c] }
	set := func(buf []T, r, c int, v T) { buf[r*n+c] = v }
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var v T
			switch q {
			case 0:
				v = at(src, i, j)
			case 1:
				v = at(src, i, n-1-j)
			case 2:
				v = at(src, j, i)
			case 3:
				v = at(src, j, n-1-i)
			}
			set(dst, i, j, v)
		}
	}
}
