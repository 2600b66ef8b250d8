// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/goframe/ana"
	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/goframe/inp"
	"github.com/cpmech/goframe/mdl/sld"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Beam represents a structural beam element (Euler-Bernoulli, linear elastic) for 3D frames
//
//                        ,o--------o    ,y0
//                      ,' |     ,' |  ,'
//        y1          ,'       ,'   |,'
//         ^        ,'       ,'    ,|
//         |      ,'       ,'    ,  |        Props:          Nodes:
//         |    ,'       ,'    ,    |         E, G, A         0 and 1
//         |  ,'       ,'  | ,      |         I22 ~ Imax
//         |,'       ,'   (1) - - - o         I11 ~ Imin      the reference vector lies on
//         o--------o    ,        ,'          Jtt             plane y0-y1 and is not parallel
//         |        |  ,        ,'                            to y0
//         |        |,        ,'
//         |       ,|       ,'
//         |     ,  |     ,'
//         |   ,    |   ,'
//         | ,      | ,'
//        (0)-------o' --------> y2
//
type Beam struct {

	// basic data
	Edat *inp.ElemData // element data
	X    [2]r3.Vec     // nodal coordinates

	// parameters and properties
	Sec *ana.CrossSection // cross-section with: A, I22, I11 and Jtt
	E   float64           // Young's modulus
	G   float64           // shear modulus
	L   float64           // (derived) length of beam

	// unit vectors aligned with beam element
	e0 r3.Vec // unit vector aligned with y0-axis
	e1 r3.Vec // unit vector aligned with y1-axis
	e2 r3.Vec // unit vector aligned with y2-axis

	// matrices
	T  *mat.Dense // global-to-local transformation matrix [nu][nu]
	Kl *mat.Dense // local K matrix
	K  *mat.Dense // global K matrix
}

// register element
func init() {

	// information allocator
	ele.SetInfoFunc("beam", func(edat *inp.ElemData) *ele.Info {
		return ele.NewFrameInfo()
	})

	// element allocator
	ele.SetAllocator("beam", func(p *ele.Props) (ele.Element, error) {

		// basic data
		var o Beam
		o.Edat = p.Edat
		o.X = p.X
		o.Sec = p.Sec
		if o.Sec == nil || p.Mdl == nil {
			return nil, chk.Err("beam requires a cross-section and a material model")
		}

		// moduli
		var err error
		o.E, o.G, err = sld.Moduli(p.Mdl)
		if err != nil {
			return nil, chk.Err("material %d: %v", p.Edat.Mat, err)
		}

		// check
		if !positive(o.E, o.G, o.Sec.A, o.Sec.I22, o.Sec.I11, o.Sec.Jtt) {
			return nil, chk.Err("E, G, A, I22, I11 and Jtt must be all positive. E=%g, G=%g, A=%g, I22=%g, I11=%g, Jtt=%g",
				o.E, o.G, o.Sec.A, o.Sec.I22, o.Sec.I11, o.Sec.Jtt)
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
func (o *Beam) Id() int { return o.Edat.Id }

// Verts returns the ids of the nodes
func (o *Beam) Verts() []int { return []int{o.Edat.Start, o.Edat.End} }

// GlobalStiffness returns a new copy of the stiffness matrix in global axes
func (o *Beam) GlobalStiffness() *mat.Dense { return mat.DenseCopyOf(o.K) }

// EndForces computes the forces at the ends in local axes
//  fl = [N0, V1_0, V2_0, T0, M1_0, M2_0, N1, V1_1, V2_1, T1, M1_1, M2_1]
func (o *Beam) EndForces(ue []float64) []float64 {
	return ele.LocalForces(o.T, o.Kl, ue)
}

// Length returns the length of beam
func (o *Beam) Length() float64 { return o.L }

// Axes returns the unit vectors of the local system
func (o *Beam) Axes() (e0, e1, e2 r3.Vec) { return o.e0, o.e1, o.e2 }

// Recompute re-compute matrices after dimensions or parameters are externally changed
func (o *Beam) Recompute() (err error) {

	// unit vectors aligned with beam element
	o.e0, o.e1, o.e2, o.L, err = ele.LocalAxes(o.X[0], o.X[1], o.Edat.LocalY)
	if err != nil {
		return
	}

	// global to local transformation matrix
	o.T = ele.Rotation(o.e0, o.e1, o.e2)

	// constants
	EIr := o.E * o.Sec.I22
	EIs := o.E * o.Sec.I11
	GJ := o.G * o.Sec.Jtt
	EA := o.E * o.Sec.A
	l := o.L
	ll := l * l
	lll := l * ll

	// stiffness matrix in local system
	Kl := mat.NewDense(ele.Nu, ele.Nu, nil)
	set := func(i, j int, v float64) { Kl.Set(i, j, v) }

	// axial
	set(0, 0, EA/l)
	set(0, 6, -EA/l)
	set(6, 0, -EA/l)
	set(6, 6, EA/l)

	// torsion
	set(3, 3, GJ/l)
	set(3, 9, -GJ/l)
	set(9, 3, -GJ/l)
	set(9, 9, GJ/l)

	// bending on plane y0-y1: translation along y1 and rotation about y2
	set(1, 1, 12.0*EIr/lll)
	set(1, 5, 6.0*EIr/ll)
	set(1, 7, -12.0*EIr/lll)
	set(1, 11, 6.0*EIr/ll)
	set(5, 1, 6.0*EIr/ll)
	set(5, 5, 4.0*EIr/l)
	set(5, 7, -6.0*EIr/ll)
	set(5, 11, 2.0*EIr/l)
	set(7, 1, -12.0*EIr/lll)
	set(7, 5, -6.0*EIr/ll)
	set(7, 7, 12.0*EIr/lll)
	set(7, 11, -6.0*EIr/ll)
	set(11, 1, 6.0*EIr/ll)
	set(11, 5, 2.0*EIr/l)
	set(11, 7, -6.0*EIr/ll)
	set(11, 11, 4.0*EIr/l)

	// bending on plane y0-y2: translation along y2 and rotation about y1
	set(2, 2, 12.0*EIs/lll)
	set(2, 4, -6.0*EIs/ll)
	set(2, 8, -12.0*EIs/lll)
	set(2, 10, -6.0*EIs/ll)
	set(4, 2, -6.0*EIs/ll)
	set(4, 4, 4.0*EIs/l)
	set(4, 8, 6.0*EIs/ll)
	set(4, 10, 2.0*EIs/l)
	set(8, 2, -12.0*EIs/lll)
	set(8, 4, 6.0*EIs/ll)
	set(8, 8, 12.0*EIs/lll)
	set(8, 10, 6.0*EIs/ll)
	set(10, 2, -6.0*EIs/ll)
	set(10, 4, 2.0*EIs/l)
	set(10, 8, 6.0*EIs/ll)
	set(10, 10, 4.0*EIs/l)
	o.Kl = Kl

	// stiffness matrix in global system
	o.K = ele.Transform(o.T, o.Kl) // K := trans(T) * Kl * T
	return
}
