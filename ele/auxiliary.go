// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Nu is the number of unknowns of 2-node frame elements
const Nu = 12

// LocalAxes computes the length and unit vectors of the local system of a 2-node element
//
//  e0 := (x1 - x0) / L
//  e2 := unit(e0 cross ref)
//  e1 := e2 cross e0
//
//  ref lies on the y0-y1 plane. If ref is nil, z is used; or x if the element is vertical
func LocalAxes(x0, x1 r3.Vec, ref []float64) (e0, e1, e2 r3.Vec, L float64, err error) {

	// axis
	d := r3.Sub(x1, x0)
	L = r3.Norm(d)
	if !(L > 0) || math.IsInf(L, 0) {
		err = chk.Err("length of element must be positive and finite. L = %g is invalid", L)
		return
	}
	e0 = r3.Scale(1.0/L, d)

	// reference vector
	var v r3.Vec
	if ref == nil {
		v = r3.Vec{X: 0, Y: 0, Z: 1}
		if math.Hypot(d.X, d.Y) < 1e-6*L {
			v = r3.Vec{X: 1, Y: 0, Z: 0}
		}
	} else {
		if len(ref) != 3 {
			err = chk.Err("reference vector must have 3 components. %v is invalid", ref)
			return
		}
		v = r3.Vec{X: ref[0], Y: ref[1], Z: ref[2]}
	}
	nv := r3.Norm(v)
	if !(nv > 0) || math.IsInf(nv, 0) {
		err = chk.Err("reference vector %v is invalid", ref)
		return
	}

	// unit vectors
	e2 = r3.Cross(e0, r3.Scale(1.0/nv, v))
	n2 := r3.Norm(e2)
	if n2 < 1e-9 {
		err = chk.Err("reference vector %v is parallel to the axis of the element", ref)
		return
	}
	e2 = r3.Scale(1.0/n2, e2)
	e1 = r3.Cross(e2, e0)
	return
}

// Rotation returns the global-to-local transformation matrix T [12][12]. T holds four copies of
// the 3x3 matrix with rows e0, e1 and e2
func Rotation(e0, e1, e2 r3.Vec) *mat.Dense {
	T := mat.NewDense(Nu, Nu, nil)
	for k := 0; k < 4; k++ {
		for j, e := range []r3.Vec{e0, e1, e2} {
			T.Set(3*k+j, 3*k+0, e.X)
			T.Set(3*k+j, 3*k+1, e.Y)
			T.Set(3*k+j, 3*k+2, e.Z)
		}
	}
	return T
}

// Transform computes K := trans(T) * Kl * T
func Transform(T, Kl *mat.Dense) *mat.Dense {
	var tmp, K mat.Dense
	tmp.Mul(T.T(), Kl)
	K.Mul(&tmp, T)
	return &K
}

// LocalForces computes fl := Kl * T * ue
func LocalForces(T, Kl *mat.Dense, ue []float64) []float64 {
	if len(ue) != Nu {
		chk.Panic("element displacements vector must have %d components. %d is invalid", Nu, len(ue))
	}
	var ul, fl mat.VecDense
	ul.MulVec(T, mat.NewVecDense(Nu, ue))
	fl.MulVec(Kl, &ul)
	return fl.RawVector().Data
}
