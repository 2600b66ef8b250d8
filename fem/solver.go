// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Reduce selects the rows and columns of free dofs
//  Output:
//   Kr   -- reduced stiffness matrix [nfree][nfree]; nil if nfree == 0
//   Fr   -- loads at free dofs [nfree]
//   free -- original indices of free dofs in ascending order [nfree]
func Reduce(K *mat.Dense, dofs []Dof) (Kr *mat.Dense, Fr []float64, free []int) {

	// surviving indices
	free = make([]int, 0, len(dofs))
	for i, d := range dofs {
		if !d.Fixed {
			free = append(free, i)
		}
	}
	Fr = make([]float64, len(free))
	for i, I := range free {
		Fr[i] = dofs[I].Load
	}
	if len(free) == 0 {
		return
	}

	// selection
	Kr = mat.NewDense(len(free), len(free), nil)
	for i, I := range free {
		for j, J := range free {
			Kr.Set(i, j, K.At(I, J))
		}
	}
	return
}

// Solve solves Kr * dr = Fr using the LU decomposition. An empty system has an empty solution.
// Singular or ill-conditioned matrices (condition number > condMax) are reported as errors
func Solve(Kr *mat.Dense, Fr []float64, condMax float64) (dr []float64, err error) {

	// empty system
	n := len(Fr)
	if n == 0 {
		return []float64{}, nil
	}
	if Kr == nil {
		return nil, chk.Err("reduced matrix is nil but %d loads are given", n)
	}
	r, c := Kr.Dims()
	if r != n || c != n {
		return nil, chk.Err("reduced matrix must be %d×%d. %d×%d is invalid", n, n, r, c)
	}
	if condMax <= 0 {
		condMax = CondMaxDefault
	}

	// factorisation
	var lu mat.LU
	lu.Factorize(Kr)
	cond := lu.Cond()
	if math.IsNaN(cond) || math.IsInf(cond, 0) {
		return nil, chk.Err("stiffness matrix is singular: the structure is unstable or under-restrained")
	}
	if cond > condMax {
		return nil, chk.Err("stiffness matrix is nearly singular: condition number %g > %g", cond, condMax)
	}

	// solution
	x := mat.NewVecDense(n, nil)
	err = lu.SolveVecTo(x, false, mat.NewVecDense(n, Fr))
	if err != nil {
		return nil, chk.Err("linear solver failed: %v", err)
	}
	dr = x.RawVector().Data
	for i, v := range dr {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, chk.Err("solution is not finite: d[%d] = %g", i, v)
		}
	}
	return
}

// Scatter expands the reduced solution to all n dofs; fixed dofs are zero
func Scatter(dr []float64, free []int, n int) (d []float64) {
	if len(dr) != len(free) {
		chk.Panic("reduced solution must have %d components. %d is invalid", len(free), len(dr))
	}
	d = make([]float64, n)
	for i, I := range free {
		d[I] = dr[i]
	}
	return
}

// zeroPivot returns the first free equation without stiffness or -1
func zeroPivot(Kr *mat.Dense, free []int) int {
	if Kr == nil {
		return -1
	}
	for i, I := range free {
		if Kr.At(i, i) == 0 {
			return I
		}
	}
	return -1
}
