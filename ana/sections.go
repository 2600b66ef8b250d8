// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CrossSection computes area, moments of inertia and torsional constant of frame cross-sections.
// y0 is the axis of the element; y1 and y2 are the local axes of the cross-section
//
//                    ,o--------o    ,y0
//                  ,' :     ,' |  ,'
//    y1          ,'       ,'   |,'
//     ^        ,'     : ,'    ,|
//     |      ,'       ,'    ,  |
//     |    ,'       ,'    ,    |           I22 : about y2 (bending in y0-y1 plane)
//     |  ,'       ,'  : ,      |           I11 : about y1 (bending in y0-y2 plane)
//     |,'       ,'    +  - - - o           Jtt : torsion about y0
//     o--------o    ,        ,'
//     |        |  ,        ,'
//     |        |,        ,'
//     o--------o' --------> y2
//
//   shapes: rectangle, I-beam and circle
//                                           tw
//                                       -->| |<--
//                                   ___    | |     ___
//   ^ y1     +-------+            tf |   ########   |
//   |        |       |              ---  ########   |
//   |        |       |                      ##      |
//   +--> y2  |       | h = hei              ##      | h = hei
//            |       |                      ##      |
//            |       |              ---  ########   |
//            +-------+            tf_|_  ########  ---
//             b = wid                    b = wid
//
type CrossSection struct {

	// input
	Type string  // "rectangle", "I-beam" or "circle"
	Wid  float64 // width (b) along y2 if not circular
	Hei  float64 // height (h) along y1 if not circular
	Tf   float64 // flange thickness if I-beam
	Tw   float64 // web thickness if I-beam
	R    float64 // radius if circular

	// derived
	A   float64 // cross-sectional area
	I22 float64 // moment of inertia about y2
	I11 float64 // moment of inertia about y1
	Jtt float64 // torsional constant
}

// Init initialises structure and computes the properties of the cross-section
func (o *CrossSection) Init(typ string, wid, hei, tf, tw, rad float64) (err error) {

	// input data
	o.Type, o.Wid, o.Hei, o.Tf, o.Tw, o.R = typ, wid, hei, tf, tw, rad

	// derived
	switch typ {
	case "rectangle":
		if !positive(wid, hei) {
			return chk.Err("rectangle requires positive width and height. b=%g, h=%g is invalid", wid, hei)
		}
		b, h := wid, hei
		b3 := b * b * b
		h3 := h * h * h
		o.A = b * h
		o.I22 = b * h3 / 12.0
		o.I11 = b3 * h / 12.0
		if b == h {
			o.Jtt = 9.0 * b3 * b / 64.0
		} else {
			if b > h {
				b, h = h, b
			}
			o.Jtt = h * b3 * (1.0/3.0 - 0.21*(b/h)*(1.0-b*b3/(12.0*h*h3))) // approximate
		}

	case "I-beam":
		if !positive(wid, hei, tf, tw) || 2.0*tf >= hei || tw >= wid {
			return chk.Err("I-beam dimensions b=%g, h=%g, tf=%g, tw=%g are invalid", wid, hei, tf, tw)
		}
		b, h := wid, hei
		b3 := b * b * b
		h3 := h * h * h
		tf3 := tf * tf * tf
		tw3 := tw * tw * tw
		l := h - 2.0*tf
		l3 := l * l * l
		o.A = b*h - l*(b-tw)
		o.I22 = b*h3/12.0 - (b-tw)*l3/12.0
		o.I11 = l*tw3/12.0 + tf*b3/6.0
		o.Jtt = (2.0*b*tf3 + l*tw3) / 3.0

	case "circle":
		if !positive(rad) {
			return chk.Err("circle requires a positive radius. r=%g is invalid", rad)
		}
		r2 := rad * rad
		o.A = math.Pi * r2
		o.I22 = math.Pi * r2 * r2 / 4.0
		o.I11 = o.I22
		o.Jtt = o.I22 + o.I11

	default:
		return chk.Err("cross-section shape %q is unavailable", typ)
	}
	return
}

// String returns a one-line summary of the cross-section
func (o CrossSection) String() string {
	return io.Sf("%s: A=%g I22=%g I11=%g Jtt=%g", o.Type, o.A, o.I22, o.I11, o.Jtt)
}

// Material holds parameters of some reference materials
type Material struct {

	// input
	Type     string // type of material; e.g. "steel"
	UnitPres string // unit of pressure

	// derived
	Desc string  // description
	E    float64 // Young's modulus
	Nu   float64 // Poisson's coefficient
	G    float64 // shear modulus
}

// Init initialises material parameters
//  Input:
//   unitPres:  "Pa", "kPa", "MPa" or "GPa"
func (o *Material) Init(typ, unitPres string) (err error) {

	// material data
	o.Type = typ
	switch typ {
	case "steel":
		o.Desc = "Steel: structural A36"
		o.E = 200000.0 // [MPa]
		o.Nu = 0.32    // [-]
	case "aluminum":
		o.Desc = "Aluminum: 2014-T6"
		o.E = 73100.0 // [MPa]
		o.Nu = 0.35   // [-]
	case "concrete-low":
		o.Desc = "Concrete: low strength"
		o.E = 22100.0 // [MPa]
		o.Nu = 0.15   // [-]
	case "concrete-high":
		o.Desc = "Concrete: high strength"
		o.E = 30000.0 // [MPa]
		o.Nu = 0.15   // [-]
	case "wood-douglas-fir":
		o.Desc = "Wood: Douglas-fir"
		o.E = 13100.0 // [MPa]
		o.Nu = 0.29   // [-]
	default:
		return chk.Err("material type %q is unavailable", typ)
	}

	// convert from MPa
	o.UnitPres = unitPres
	switch unitPres {
	case "Pa":
		o.E *= 1e6
	case "kPa":
		o.E *= 1e3
	case "MPa":
	case "GPa":
		o.E *= 1e-3
	default:
		return chk.Err("unit of pressure %q is invalid", unitPres)
	}

	// derived quantity
	o.G = o.E / (2.0 * (1.0 + o.Nu))
	return
}

// positive tells whether all values are positive and finite
func positive(vals ...float64) bool {
	for _, v := range vals {
		if !(v > 0) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
