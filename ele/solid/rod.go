// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/goframe/inp"
	"github.com/cpmech/goframe/mdl/sld"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Rod represents a structural rod element (for axial loads only) with 2 nodes and a constant
// stiffness matrix. Rotations are not coupled to the rod; thus they must be restrained by other
// elements or supports
type Rod struct {

	// basic data
	Edat *inp.ElemData // element data
	X    [2]r3.Vec     // nodal coordinates

	// parameters and properties
	E float64 // Young's modulus
	A float64 // cross-sectional area
	L float64 // length of rod

	// unit vectors aligned with rod
	e0, e1, e2 r3.Vec

	// matrices
	T  *mat.Dense // global-to-local transformation matrix [nu][nu]
	Kl *mat.Dense // local K matrix
	K  *mat.Dense // global K matrix
}

// register element
func init() {

	// information allocator
	ele.SetInfoFunc("rod", func(edat *inp.ElemData) *ele.Info {
		return ele.NewFrameInfo()
	})

	// element allocator
	ele.SetAllocator("rod", func(p *ele.Props) (ele.Element, error) {

		// basic data
		var o Rod
		o.Edat = p.Edat
		o.X = p.X
		if p.Sec == nil || p.Mdl == nil {
			return nil, chk.Err("rod requires a cross-section and a material model")
		}

		// parameters
		var err error
		o.E, _, err = sld.Moduli(p.Mdl)
		if err != nil {
			return nil, chk.Err("material %d: %v", p.Edat.Mat, err)
		}
		o.A = p.Sec.A
		if !positive(o.E, o.A) {
			return nil, chk.Err("E and A must be all positive. E=%g, A=%g", o.E, o.A)
		}

		// compute K
		err = o.Recompute()
		if err != nil {
			return nil, err
		}
		return &o, nil
	})
}

// Id returns the element Id
func (o *Rod) Id() int { return o.Edat.Id }

// Verts returns the ids of the nodes
func (o *Rod) Verts() []int { return []int{o.Edat.Start, o.Edat.End} }

// GlobalStiffness returns a new copy of the stiffness matrix in global axes
func (o *Rod) GlobalStiffness() *mat.Dense { return mat.DenseCopyOf(o.K) }

// EndForces computes the forces at the ends in local axes. Only axial components are non-zero
func (o *Rod) EndForces(ue []float64) []float64 {
	return ele.LocalForces(o.T, o.Kl, ue)
}

// Length returns the length of rod
func (o *Rod) Length() float64 { return o.L }

// Axes returns the unit vectors of the local system
func (o *Rod) Axes() (e0, e1, e2 r3.Vec) { return o.e0, o.e1, o.e2 }

// specific methods /////////////////////////////////////////////////////////////////////////////////

// CalcSig computes the axial stress for given nodal displacements in global axes
func (o *Rod) CalcSig(ue []float64) float64 {
	n := []float64{o.e0.X, o.e0.Y, o.e0.Z}
	ua0 := floats.Dot(n, ue[0:3])
	ua1 := floats.Dot(n, ue[6:9])
	εa := (ua1 - ua0) / o.L // axial strain
	return o.E * εa         // axial stress
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// Recompute re-compute matrices after dimensions or parameters are externally changed
func (o *Rod) Recompute() (err error) {

	// geometry
	o.e0, o.e1, o.e2, o.L, err = ele.LocalAxes(o.X[0], o.X[1], o.Edat.LocalY)
	if err != nil {
		return
	}
	o.T = ele.Rotation(o.e0, o.e1, o.e2)

	// K matrix
	α := o.E * o.A / o.L
	o.Kl = mat.NewDense(ele.Nu, ele.Nu, nil)
	o.Kl.Set(0, 0, +α)
	o.Kl.Set(0, 6, -α)
	o.Kl.Set(6, 0, -α)
	o.Kl.Set(6, 6, +α)
	o.K = ele.Transform(o.T, o.Kl)
	return
}
