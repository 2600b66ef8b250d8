// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/floats"
)

// Diagram holds internal forces at stations along an element in local axes. The values at a
// station are the forces acting on the segment from the start node to the station; thus the last
// station holds the end forces at the end node
type Diagram struct {
	Eid int       // element id
	L   float64   // length of element
	S   []float64 // [nstations] distance from start node
	N   []float64 // [nstations] axial force
	V1  []float64 // [nstations] shear force along y1
	V2  []float64 // [nstations] shear force along y2
	T   []float64 // [nstations] torque
	M1  []float64 // [nstations] bending moment about y1
	M2  []float64 // [nstations] bending moment about y2
}

// Diagram computes the internal forces diagram of element with id eid
func (o *Post) Diagram(eid, nstations int) (d *Diagram, err error) {

	// element
	if nstations < 2 {
		return nil, chk.Err("number of stations must be at least 2. %d is invalid", nstations)
	}
	e, ok := o.Str.Cid2elem[eid]
	if !ok {
		return nil, chk.Err("cannot find element with id = %d", eid)
	}
	ax, ok := e.(ele.WithAxes)
	if !ok {
		return nil, chk.Err("element %d has no local axes", eid)
	}

	// end forces
	fl, err := o.Str.ElementEndForces(eid)
	if err != nil {
		return
	}

	// stations
	d = &Diagram{Eid: eid, L: ax.Length()}
	d.S = utl.LinSpace(0, d.L, nstations)
	d.N = make([]float64, nstations)
	d.V1 = make([]float64, nstations)
	d.V2 = make([]float64, nstations)
	d.T = make([]float64, nstations)
	d.M1 = make([]float64, nstations)
	d.M2 = make([]float64, nstations)
	for i, s := range d.S {
		d.N[i] = -fl[0]
		d.V1[i] = -fl[1]
		d.V2[i] = -fl[2]
		d.T[i] = -fl[3]
		d.M1[i] = -fl[4] - s*fl[2]
		d.M2[i] = -fl[5] + s*fl[1]
	}
	return
}

// Diagrams computes the internal forces diagrams of all beams
func (o *Post) Diagrams(nstations int) (ds []*Diagram, err error) {
	ds = make([]*Diagram, len(o.Beams))
	for i, e := range o.Beams {
		ds[i], err = o.Diagram(e.Id(), nstations)
		if err != nil {
			return nil, err
		}
	}
	return
}

// MaxAbsM returns the largest absolute bending moment
func (o *Diagram) MaxAbsM() float64 {
	return math.Max(floats.Norm(o.M1, math.Inf(1)), floats.Norm(o.M2, math.Inf(1)))
}

// Print prints a table with the internal forces
func (o *Diagram) Print() {
	io.Pf("element %d: L = %g\n", o.Eid, o.L)
	io.Pf("%12s%14s%14s%14s%14s%14s%14s\n", "s", "N", "V1", "V2", "T", "M1", "M2")
	for i, s := range o.S {
		io.Pf("%12.4f%14.6e%14.6e%14.6e%14.6e%14.6e%14.6e\n", s, o.N[i], o.V1[i], o.V2[i], o.T[i], o.M1[i], o.M2[i])
	}
}
