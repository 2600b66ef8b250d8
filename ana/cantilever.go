// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions and cross-section properties for frames
package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Cantilever computes the tip displacements of a linear elastic cantilever along x, clamped at
// x = 0 and loaded at the free end x = L
//
//   z
//   ^          Fz
//   |          ^
//   ▷|=========o --> Fx      I22 : bending in the x-z plane
//   ▷|    L                  I11 : bending in the x-y plane
//   ▷|                       Jtt : torsion about x
//   +-----> x
type Cantilever struct {

	// properties
	E, G, A, I22, I11, Jtt, L float64

	// loads at the tip
	Fx, Fy, Fz float64 // forces
	Mx, My, Mz float64 // moments
}

// Init initialises this structure
func (o *Cantilever) Init(prms dbf.Params) {

	// default values
	o.E = 1000.0
	o.G = 400.0
	o.A = 1.0
	o.I22 = 1.0
	o.I11 = 1.0
	o.Jtt = 1.0
	o.L = 1.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "G":
			o.G = p.V
		case "A":
			o.A = p.V
		case "I22":
			o.I22 = p.V
		case "I11":
			o.I11 = p.V
		case "Jtt":
			o.Jtt = p.V
		case "L":
			o.L = p.V
		case "fx":
			o.Fx = p.V
		case "fy":
			o.Fy = p.V
		case "fz":
			o.Fz = p.V
		case "mx":
			o.Mx = p.V
		case "my":
			o.My = p.V
		case "mz":
			o.Mz = p.V
		}
	}
}

// TipDispl computes the displacements and rotations at the tip: [ux, uy, uz, rx, ry, rz]
func (o Cantilever) TipDispl() (u []float64) {
	l := o.L
	ll := l * l
	lll := l * ll
	EIr := o.E * o.I22
	EIs := o.E * o.I11
	u = make([]float64, 6)
	u[0] = o.Fx * l / (o.E * o.A)
	u[1] = o.Fy*lll/(3.0*EIs) + o.Mz*ll/(2.0*EIs)
	u[2] = o.Fz*lll/(3.0*EIr) - o.My*ll/(2.0*EIr)
	u[3] = o.Mx * l / (o.G * o.Jtt)
	u[4] = -o.Fz*ll/(2.0*EIr) + o.My*l/EIr
	u[5] = o.Fy*ll/(2.0*EIs) + o.Mz*l/EIs
	return
}

// Reactions computes the reactions at the clamped end: [fx, fy, fz, mx, my, mz]
func (o Cantilever) Reactions() []float64 {
	return []float64{-o.Fx, -o.Fy, -o.Fz, -o.Mx, -o.My + o.Fz*o.L, -o.Mz - o.Fy*o.L}
}

// CheckTip checks tip displacements
func (o Cantilever) CheckTip(tst *testing.T, u []float64, tol float64) {
	chk.Array(tst, "tip: u", tol, u, o.TipDispl())
}
