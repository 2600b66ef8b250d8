// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/goframe/ana"
	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/goframe/inp"
	"github.com/cpmech/goframe/mdl/sld"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	// register elements
	_ "github.com/cpmech/goframe/ele/solid"
)

// CondMaxDefault is the largest condition number of the reduced stiffness matrix accepted by Solve
const CondMaxDefault = 1e14

// Structure holds all nodes and elements of a frame in addition to the results of the last
// successful analysis. Node ids are dense: Nodes[i].Id == i
type Structure struct {

	// input
	Model    *inp.Model                // [optional] model data
	Sections map[int]*ana.CrossSection // cross-sections
	Catalog  *sld.Catalog              // material models

	// nodes and elements
	Nodes    []*Node             // all nodes
	Elems    []ele.Element       // all elements
	Cid2elem map[int]ele.Element // element id => element

	// options
	CondMax float64 // largest accepted condition number
	ShowMsg bool    // show messages

	// results
	K    *mat.Dense // assembled global stiffness matrix (before reduction) [6n][6n]
	Dofs []Dof      // state of all dofs [6n]
	F    []float64  // applied loads at all dofs [6n]
	U    []float64  // displacements and rotations at all dofs [6n]; nil until Analyze succeeds
}

// NewStructure allocates nodes and elements from model data
func NewStructure(mdl *inp.Model, verbose bool) (o *Structure, err error) {

	// new structure
	if mdl == nil {
		return nil, chk.Err("model must not be nil")
	}
	o = new(Structure)
	o.Model = mdl
	o.CondMax = CondMaxDefault
	o.ShowMsg = verbose

	// nodes
	o.Nodes = make([]*Node, len(mdl.Nodes))
	for i, nd := range mdl.Nodes {
		if nd == nil || nd.Id < 0 || nd.Id >= len(o.Nodes) {
			return nil, chk.Err("malformed model: node entry %d has an invalid id", i)
		}
		o.Nodes[nd.Id] = NewNode(nd.Id, r3.Vec{X: nd.X, Y: nd.Y, Z: nd.Z})
	}
	for i, nod := range o.Nodes {
		if nod == nil {
			return nil, chk.Err("malformed model: node %d is missing", i)
		}
	}

	// loads
	for i, l := range mdl.Loads {
		if l == nil || l.Node < 0 || l.Node >= len(o.Nodes) {
			return nil, chk.Err("malformed model: load entry %d refers to an unknown node", i)
		}
		force := r3.Vec{X: l.Force.X, Y: l.Force.Y, Z: l.Force.Z}
		torque := r3.Vec{X: l.Torque.X, Y: l.Torque.Y, Z: l.Torque.Z}
		o.Nodes[l.Node].AddLoad(force, torque)
	}

	// supports
	for i, f := range mdl.Fixed {
		if f == nil || f.Node < 0 || f.Node >= len(o.Nodes) {
			return nil, chk.Err("malformed model: fixed point entry %d refers to an unknown node", i)
		}
		t, r := f.Translation, f.Rotation
		o.Nodes[f.Node].SetSupport(
			[3]bool{bool(t.X), bool(t.Y), bool(t.Z)},
			[3]bool{bool(r.X), bool(r.Y), bool(r.Z)},
		)
	}
	if o.ShowMsg {
		io.Pf("> %d nodes allocated\n", len(o.Nodes))
	}

	// cross-sections and materials
	o.Sections, err = mdl.CrossSections()
	if err != nil {
		return nil, err
	}
	o.Catalog, err = mdl.Materials()
	if err != nil {
		return nil, err
	}

	// elements
	o.Elems = make([]ele.Element, 0, len(mdl.Elems))
	for _, edat := range mdl.Elems {
		e, err := o.newElement(edat)
		if err != nil {
			return nil, err
		}
		o.Elems = append(o.Elems, e)
	}
	if o.ShowMsg {
		io.Pf("> %d elements allocated\n", len(o.Elems))
	}
	o.Cid2elem = elemMap(o.Elems)
	return
}

// Compose returns a structure made of given nodes and elements. Node ids must be dense
func Compose(nodes []*Node, elems []ele.Element) (o *Structure, err error) {
	for i, nod := range nodes {
		if nod == nil || nod.Id != i {
			return nil, chk.Err("node at position %d must have id = %d", i, i)
		}
	}
	for _, e := range elems {
		for _, v := range e.Verts() {
			if v < 0 || v >= len(nodes) {
				return nil, chk.Err("element %d refers to node %d but node ids are in [0, %d)", e.Id(), v, len(nodes))
			}
		}
	}
	return &Structure{
		Nodes:    nodes,
		Elems:    elems,
		Cid2elem: elemMap(elems),
		CondMax:  CondMaxDefault,
	}, nil
}

// Assemble computes the global stiffness matrix and the state of all dofs. Stiffness is
// accumulated over elements while loads are collected once per node
func (o *Structure) Assemble() (K *mat.Dense, dofs []Dof, err error) {

	// global matrix
	n := Ndpn * len(o.Nodes)
	if n == 0 {
		return nil, nil, chk.Err("structure has no nodes")
	}
	K = mat.NewDense(n, n, nil)

	// stiffness
	for _, e := range o.Elems {
		eqs, err := o.elemEqs(e)
		if err != nil {
			return nil, nil, err
		}
		Ke := e.GlobalStiffness()
		r, c := Ke.Dims()
		if r != len(eqs) || c != len(eqs) {
			return nil, nil, chk.Err("element %d: stiffness matrix must be %d×%d. %d×%d is invalid", e.Id(), len(eqs), len(eqs), r, c)
		}
		for i, I := range eqs {
			for j, J := range eqs {
				kij := Ke.At(i, j)
				if math.IsNaN(kij) || math.IsInf(kij, 0) {
					return nil, nil, chk.Err("element %d: stiffness matrix has non-finite K[%d][%d] = %g", e.Id(), i, j, kij)
				}
				K.Set(I, J, K.At(I, J)+kij)
			}
		}
	}

	// dofs
	dofs = make([]Dof, n)
	for _, nod := range o.Nodes {
		for k := 0; k < Ndpn; k++ {
			dofs[nod.Eq(k)] = nod.GetDof(k)
		}
	}
	return
}

// Analyze assembles, reduces and solves the system. Nodes and U are updated only on success
func (o *Structure) Analyze() (err error) {

	// assemble
	K, dofs, err := o.Assemble()
	if err != nil {
		return chk.Err("analysis failed:\n%v", err)
	}
	o.K, o.Dofs = K, dofs
	if o.ShowMsg {
		io.Pf("> Global system assembled: %d equations\n", len(dofs))
	}

	// reduce
	Kr, Fr, free := Reduce(K, dofs)
	if o.ShowMsg {
		io.Pf("> Boundary conditions applied: %d free equations\n", len(free))
	}

	// solve
	dr, err := Solve(Kr, Fr, o.CondMax)
	if err != nil {
		if eq := zeroPivot(Kr, free); eq >= 0 {
			return chk.Err("analysis failed: %v\nequation of %s has no stiffness", err, EqKey(eq))
		}
		return chk.Err("analysis failed: %v", err)
	}

	// scatter
	U := Scatter(dr, free, len(dofs))
	for _, nod := range o.Nodes {
		for k := 0; k < Ndpn; k++ {
			nod.U[k] = U[nod.Eq(k)]
		}
	}
	o.U = U
	o.F = o.loads()
	if o.ShowMsg {
		io.Pf("> Displacements computed\n")
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// newElement allocates an element using the factory
func (o *Structure) newElement(edat *inp.ElemData) (e ele.Element, err error) {

	// nodes
	if edat.Start < 0 || edat.Start >= len(o.Nodes) || edat.End < 0 || edat.End >= len(o.Nodes) {
		return nil, chk.Err("malformed model: element %d refers to nodes (%d, %d) but node ids are in [0, %d)", edat.Id, edat.Start, edat.End, len(o.Nodes))
	}

	// dofs per node
	info, err := ele.GetInfo(edat)
	if err != nil {
		return
	}
	for m, keys := range info.Dofs {
		if len(keys) != Ndpn {
			return nil, chk.Err("element %d: node %d has %d dofs but frames require %d", edat.Id, m, len(keys), Ndpn)
		}
	}

	// properties
	sec, ok := o.Sections[edat.Section]
	if !ok {
		return nil, chk.Err("malformed model: element %d refers to unknown cross-section %d", edat.Id, edat.Section)
	}
	mdl, err := o.Catalog.Get(edat.Mat)
	if err != nil {
		return nil, chk.Err("malformed model: element %d: %v", edat.Id, err)
	}
	return ele.New(&ele.Props{
		Edat: edat,
		X:    [2]r3.Vec{o.Nodes[edat.Start].X, o.Nodes[edat.End].X},
		Sec:  sec,
		Mdl:  mdl,
	})
}

// elemEqs returns the global equation numbers of an element
func (o *Structure) elemEqs(e ele.Element) (eqs []int, err error) {
	verts := e.Verts()
	eqs = make([]int, 0, Ndpn*len(verts))
	for _, v := range verts {
		if v < 0 || v >= len(o.Nodes) {
			return nil, chk.Err("element %d refers to node %d but node ids are in [0, %d)", e.Id(), v, len(o.Nodes))
		}
		for k := 0; k < Ndpn; k++ {
			eqs = append(eqs, o.Nodes[v].Eq(k))
		}
	}
	return
}

// loads returns the loads applied to all dofs, including fixed ones
func (o *Structure) loads() (F []float64) {
	F = make([]float64, Ndpn*len(o.Nodes))
	for _, nod := range o.Nodes {
		for k := 0; k < Ndpn; k++ {
			F[nod.Eq(k)] = nod.F[k]
		}
	}
	return
}

// elemMap maps element ids to elements
func elemMap(elems []ele.Element) map[int]ele.Element {
	m := make(map[int]ele.Element, len(elems))
	for _, e := range elems {
		m[e.Id()] = e
	}
	return m
}
