// Copyright ©2024 The adrt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package consts provides the transcendental constants the ADRT kernels
// need, parameterized by the element scalar type so float32 callers do
// not pay for float64 rounding on every use.
package consts

// Float is satisfied by the two scalar types the ADRT core supports.
type Float interface {
	~float32 | ~float64
}

// Pi returns π at the precision of T.
func Pi[T Float]() T { return T(3.14159265358979323846264338327950288419716939937510582097494459) }

// Pi2 returns π/2 at the precision of T.
func Pi2[T Float]() T { return Pi[T]() / 2 }

// Pi4 returns π/4 at the precision of T.
func Pi4[T Float]() T { return Pi[T]() / 4 }

// Sqrt2 returns √2 at the precision of T.
func Sqrt2[T Float]() T { return T(1.41421356237309504880168872420969807856967187537694807317667974) }

// Sqrt2Half returns √2/2 at the precision of T.
func Sqrt2Half[T Float]() T { return Sqrt2[T]() / 2 }
