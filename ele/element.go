// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements frame elements
package ele

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Element defines what all elements must implement
type Element interface {
	Id() int                     // returns the element Id
	Verts() []int                // returns the ids of the nodes of this element
	GlobalStiffness() *mat.Dense // returns a new copy of the stiffness matrix in global axes [nu][nu]
}

// WithEndForces defines elements that compute forces at their ends
type WithEndForces interface {
	EndForces(ue []float64) []float64 // forces in local axes for given global displacements ue [nu]
}

// WithAxes defines elements with local axes
type WithAxes interface {
	Length() float64           // length of element
	Axes() (e0, e1, e2 r3.Vec) // unit vectors of the local system
}
