// Copyright ©2024 The adrt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package adrt computes the Approximate Discrete Radon Transform (ADRT)
// of square, power-of-two images, its exact inverse, and its adjoint
// back-projection.
//
// The ADRT maps an N×N image into four quadrant images of shape
// (2N-1)×N, each holding integrals of the image along a family of
// discrete digital lines. Forward, Inverse and BackProject each run as
// log2(N) butterfly passes over a pair of ping-ponged scratch buffers;
// see the package-level design notes in SPEC_FULL.md for the exact
// index arithmetic.
package adrt // import "github.com/harshith-gowrachari/adrt"
