// Copyright ©2024 The adrt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adrt

import (
	"math"

	"github.com/harshith-gowrachari/adrt/internal/consts"
	"github.com/harshith-gowrachari/adrt/internal/parallel"
)

// InterpCart resamples an ADRT-layout tensor onto a Cartesian grid of
// (N polar offsets) x (4N polar angles), per spec.md §6. Ported from
// original_source/src/adrt/adrt_cdefs_interp_adrtcart.hpp: each output
// cell picks a canonical angle th0 in [0, pi/4], folds it back into one
// of the four quadrants via sgn/quad, and locates the source digital
// line (hi, ti) that passes closest to the requested (s, th). Cells
// whose implied line falls outside the quadrant's displacement range
// are zero.
func InterpCart[T Float](q Quadrants[T]) (Cart[T], error) {
	if err := validateADRTShape("InterpCart", q.Planes, q.N); err != nil {
		return Cart[T]{}, err
	}
	n := q.N
	length, ok := mulCheckN(q.Planes, n, 4*n)
	if !ok {
		return Cart[T]{}, ErrMemory
	}
	out := Cart[T]{Planes: q.Planes, N: n, Data: make([]T, length)}

	nf := T(n)
	half := T(0.5)
	one := T(1)
	two := T(2)
	pi2 := consts.Pi2[T]()
	pi4 := consts.Pi4[T]()

	dth := consts.Pi[T]() / (4 * nf)
	thLeft := -pi2 + half*dth
	ds := consts.Sqrt2[T]() / nf
	sLeft := -consts.Sqrt2Half[T]() + half*ds

	rowCount := q.rowCount()
	quadStride := q.quadStride()
	planeStride := q.planeStride()
	outRowStride := 4 * n

	parallel.For(q.Planes*n, func(k int) {
		batch := k / n
		offset := k % n
		planeData := q.Data[batch*planeStride : (batch+1)*planeStride]
		outRow := out.Data[batch*n*outRowStride+offset*outRowStride : batch*n*outRowStride+(offset+1)*outRowStride]

		j := T(n - 1 - offset)
		s := sLeft + j*ds

		for angle := 0; angle < 4*n; angle++ {
			i := T(4*n - 1 - angle)
			th := thLeft + i*dth

			sgn := two*boolT[T](th > 0) - two*boolT[T](th > pi4) - two*boolT[T](th > -pi4) + one
			th0 := tAbs(th) - tAbs(th-pi4) - tAbs(th+pi4) + pi2
			s0 := sgn * s

			quad := int(boolT[T](th > 0)) + int(boolT[T](th > -pi4)) + int(boolT[T](th > pi4))
			tanTh0 := T(math.Tan(float64(th0)))
			tiF := tFloor(tanTh0 * (nf - 1))
			factor := T(math.Sqrt(math.Pow(float64(tiF/nf), 2) + math.Pow(float64(one-one/nf), 2)))

			h0 := half + s0/T(math.Cos(float64(th0))) - half*tanTh0
			hiF := tFloor((one-h0)*nf - half*(sgn+one))

			if hiF > -1 && hiF < T(2*n-1) {
				ti := int(tiF)
				hi := int(hiF)
				if hi < 0 || hi >= rowCount || ti < 0 || ti >= n {
					outRow[angle] = 0
					continue
				}
				v := planeData[quad*quadStride+hi*n+ti]
				outRow[angle] = factor * (v / nf)
			} else {
				outRow[angle] = 0
			}
		}
	})
	return out, nil
}

func boolT[T Float](b bool) T {
	if b {
		return 1
	}
	return 0
}

func tAbs[T Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func tFloor[T Float](v T) T {
	return T(math.Floor(float64(v)))
}
