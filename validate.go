// Copyright ©2024 The adrt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adrt

// validateSquarePow2 checks that (planes, n) describes a valid image:
// n a positive power of two, planes strictly positive. Used to validate
// Forward's input when iterStart == 0 (spec.md §4.2).
func validateSquarePow2(op string, planes, n int) error {
	if planes <= 0 || n <= 0 || !isPow2(n) {
		return &ShapeError{Op: op, Planes: planes, N: n, Dims: []int{planes, n, n}}
	}
	return nil
}

// validateADRTShape checks that (planes, n) describes a valid
// ADRT-layout quadrant slab: shape (planes, 4, 2n-1, n) with n a
// positive power of two. Used by Inverse, BackProject, InterpCart, and
// by ForwardContinue (partial restart), per spec.md §4.2.
func validateADRTShape(op string, planes, n int) error {
	if planes <= 0 || n <= 0 || !isPow2(n) {
		return &ShapeError{Op: op, Planes: planes, N: n, Dims: []int{planes, 4, 2*n - 1, n}}
	}
	return nil
}

// normalizeIterRange resolves possibly-negative iterStart/iterEnd
// against numIters, per spec.md §6: negative values count from the end,
// default [0, numIters-1] is requested with iterEnd == -1 and
// iterStart == 0.
func normalizeIterRange(op string, iterStart, iterEnd, numIters int) (int, int, error) {
	lo, hi := -numIters-1, numIters
	if iterStart < lo || iterStart >= hi || iterEnd < lo || iterEnd >= hi {
		return 0, 0, &IterRangeError{Op: op, IterStart: iterStart, IterEnd: iterEnd, NumIters: numIters}
	}
	start, end := iterStart, iterEnd
	if start < 0 {
		start += numIters
	}
	if end < 0 {
		end += numIters
	}
	if start > end || start < 0 || end >= numIters {
		return 0, 0, &IterRangeError{Op: op, IterStart: iterStart, IterEnd: iterEnd, NumIters: numIters}
	}
	return start, end, nil
}
