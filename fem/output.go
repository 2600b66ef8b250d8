// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"encoding/json"
	goio "io"

	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// NodeResult holds the displacements and rotations of a node
type NodeResult struct {
	Id  int     `json:"id"`
	Dx  float64 `json:"dx"`
	Dy  float64 `json:"dy"`
	Dz  float64 `json:"dz"`
	Dmx float64 `json:"dmx"`
	Dmy float64 `json:"dmy"`
	Dmz float64 `json:"dmz"`
}

// ElemResult holds the forces at the ends of an element in local axes
type ElemResult struct {
	Id     int       `json:"id"`
	Forces []float64 `json:"end_forces"`
}

// ResultsData holds all results written to file
type ResultsData struct {
	Nodes     []NodeResult `json:"nodes"`
	Elems     []ElemResult `json:"elements"`
	Reactions []float64    `json:"reactions"`
}

// Results returns the displacements and rotations of all nodes
func (o *Structure) Results() (res []NodeResult) {
	res = make([]NodeResult, len(o.Nodes))
	for i, nod := range o.Nodes {
		u := nod.U
		res[i] = NodeResult{nod.Id, u[0], u[1], u[2], u[3], u[4], u[5]}
	}
	return
}

// ElemResults returns the end forces of all elements that compute them
func (o *Structure) ElemResults() (res []ElemResult, err error) {
	for _, e := range o.Elems {
		if _, ok := e.(ele.WithEndForces); !ok {
			continue
		}
		fl, err := o.ElementEndForces(e.Id())
		if err != nil {
			return nil, err
		}
		res = append(res, ElemResult{e.Id(), fl})
	}
	return
}

// Reactions computes R = K * U - F at all dofs: support reactions at fixed dofs and residuals at
// free dofs
func (o *Structure) Reactions() (R []float64, err error) {
	if o.U == nil || o.K == nil {
		return nil, chk.Err("reactions are only available after a successful analysis")
	}
	var ku mat.VecDense
	ku.MulVec(o.K, mat.NewVecDense(len(o.U), o.U))
	R = ku.RawVector().Data
	for i := range R {
		R[i] -= o.F[i]
	}
	return
}

// ElementEndForces computes the forces at the ends of element with given id in local axes
func (o *Structure) ElementEndForces(id int) (fl []float64, err error) {
	if o.U == nil {
		return nil, chk.Err("end forces are only available after a successful analysis")
	}
	e, ok := o.Cid2elem[id]
	if !ok {
		return nil, chk.Err("cannot find element with id = %d", id)
	}
	ef, ok := e.(ele.WithEndForces)
	if !ok {
		return nil, chk.Err("element %d does not compute end forces", id)
	}
	eqs, err := o.elemEqs(e)
	if err != nil {
		return
	}
	ue := make([]float64, len(eqs))
	for i, I := range eqs {
		ue[i] = o.U[I]
	}
	return ef.EndForces(ue), nil
}

// WriteResults writes nodal results, end forces and reactions as JSON
func (o *Structure) WriteResults(w goio.Writer) (err error) {
	var dat ResultsData
	dat.Nodes = o.Results()
	dat.Elems, err = o.ElemResults()
	if err != nil {
		return
	}
	dat.Reactions, err = o.Reactions()
	if err != nil {
		return
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&dat)
}

// PrintResults prints a table with nodal results
func (o *Structure) PrintResults() {
	io.Pf("%6s%14s%14s%14s%14s%14s%14s\n", "node", "dx", "dy", "dz", "dmx", "dmy", "dmz")
	for _, r := range o.Results() {
		io.Pf("%6d%14.6e%14.6e%14.6e%14.6e%14.6e%14.6e\n", r.Id, r.Dx, r.Dy, r.Dz, r.Dmx, r.Dmy, r.Dmz)
	}
}

// KString returns the assembled stiffness matrix formatted for printing
func (o *Structure) KString() string {
	if o.K == nil {
		return ""
	}
	return io.Sf("%v\n", mat.Formatted(o.K, mat.Squeeze()))
}
