// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a frame model JSON file
package inp

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/goframe/mdl/sld"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// NodeData holds the coordinates of a node
type NodeData struct {
	Id int     `json:"id"` // identifier; must be in [0, no_of_nodes)
	X  float64 `json:"x"`  // x-coordinate
	Y  float64 `json:"y"`  // y-coordinate
	Z  float64 `json:"z"`  // z-coordinate
}

// DimsData holds the dimensions of cross-sections
type DimsData struct {
	Y      float64 `json:"y"`      // width along the local y2-axis (rectangle and I-beam)
	Z      float64 `json:"z"`      // height along the local y1-axis (rectangle and I-beam)
	Radius float64 `json:"radius"` // radius (circle)
	Tf     float64 `json:"tf"`     // flange thickness (I-beam)
	Tw     float64 `json:"tw"`     // web thickness (I-beam)
}

// SectionData holds cross-section data
type SectionData struct {
	Id    int      `json:"id"`         // identifier
	Shape string   `json:"shape"`      // "rectangle", "circle" or "I-beam"
	Dims  DimsData `json:"dimensions"` // dimensions
}

// ElemData holds element data
type ElemData struct {
	Id      int       `json:"id"`            // identifier
	Start   int       `json:"start_node_id"` // id of first node
	End     int       `json:"end_node_id"`   // id of second node
	Section int       `json:"element_type"`  // cross-section id
	Mat     int       `json:"material_id"`   // material model id
	Type    string    `json:"type"`          // type of element. default is "beam"
	LocalY  []float64 `json:"local_y"`       // [optional] reference vector on the y0-y1 plane
}

// Vec3Data holds the components of a vector
type Vec3Data struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// LoadData holds the force and torque applied to a node
type LoadData struct {
	Node   int      `json:"point_id"` // node id
	Force  Vec3Data `json:"force"`    // force components
	Torque Vec3Data `json:"torque"`   // torque components
}

// Flag holds a constraint flag written as a JSON boolean or number. Non-zero numbers mean true
type Flag bool

// UnmarshalJSON decodes a boolean or a number
func (o *Flag) UnmarshalJSON(b []byte) (err error) {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*o = false
		return
	}
	var v bool
	if err = json.Unmarshal(b, &v); err == nil {
		*o = Flag(v)
		return
	}
	var x float64
	if err = json.Unmarshal(b, &x); err != nil {
		return chk.Err("constraint flag must be a boolean or a number. %s is invalid", string(b))
	}
	*o = x != 0
	return
}

// FlagsData holds the constraint flags along or about x, y and z
type FlagsData struct {
	X Flag `json:"x"`
	Y Flag `json:"y"`
	Z Flag `json:"z"`
}

// FixedData holds the supports of a node
type FixedData struct {
	Node        int       `json:"point_id"`    // node id
	Translation FlagsData `json:"translation"` // fixed translations
	Rotation    FlagsData `json:"rotation"`    // fixed rotations
}

// Model holds all data read from a frame model file
type Model struct {

	// input
	Desc      string         `json:"desc"`                     // description of model
	Functions FuncsData      `json:"functions"`                // functions database
	Nnodes    int            `json:"no_of_nodes"`              // number of nodes
	Nodes     []*NodeData    `json:"nodes"`                    // nodes
	Nsections int            `json:"no_of_crosssection_types"` // number of cross-sections
	Sections  []*SectionData `json:"cross_sections"`           // cross-sections
	Nmats     int            `json:"no_of_material_models"`    // number of material models
	Mats      []*sld.Data    `json:"material_models"`          // material models
	Nelems    int            `json:"no_of_elements"`           // number of elements
	Elems     []*ElemData    `json:"elements"`                 // elements
	Nloads    int            `json:"no_of_loads"`              // number of loads
	Loads     []*LoadData    `json:"loads"`                    // loads
	Nfixed    int            `json:"no_of_fixed_points"`       // number of fixed points
	Fixed     []*FixedData   `json:"fixed_points"`             // supports

	// derived
	Key string // filename key; e.g. "frame01" for "frame01.json"
	Dir string // directory of model file
}

// ReadModel reads and validates a model file
func ReadModel(path string) (o *Model, err error) {

	// read file
	b, err := os.ReadFile(os.ExpandEnv(path))
	if err != nil {
		return nil, chk.Err("cannot read model file %q:\n%v", path, err)
	}

	// decode
	o, err = DecodeModel(b)
	if err != nil {
		return nil, chk.Err("model file %q:\n%v", path, err)
	}

	// input directory and filename key
	o.Dir = filepath.Dir(path)
	o.Key = io.FnKey(filepath.Base(path))
	return
}

// DecodeModel decodes and validates a model given as JSON
func DecodeModel(b []byte) (o *Model, err error) {
	o = new(Model)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal model:\n%v", err)
	}
	err = o.Validate()
	if err != nil {
		return nil, err
	}
	return
}

// Validate checks counts and references between entities
func (o *Model) Validate() (err error) {

	// counts
	counts := []struct {
		key      string
		n, given int
	}{
		{"no_of_nodes", o.Nnodes, len(o.Nodes)},
		{"no_of_crosssection_types", o.Nsections, len(o.Sections)},
		{"no_of_material_models", o.Nmats, len(o.Mats)},
		{"no_of_elements", o.Nelems, len(o.Elems)},
		{"no_of_loads", o.Nloads, len(o.Loads)},
		{"no_of_fixed_points", o.Nfixed, len(o.Fixed)},
	}
	for _, c := range counts {
		if c.n != c.given {
			return chk.Err("malformed model: %s = %d but %d entries are given", c.key, c.n, c.given)
		}
	}

	// nodes: ids must be dense
	seen := make([]bool, len(o.Nodes))
	for i, n := range o.Nodes {
		if n == nil {
			return chk.Err("malformed model: node entry %d is null", i)
		}
		if n.Id < 0 || n.Id >= len(o.Nodes) {
			return chk.Err("malformed model: node id = %d is outside [0, %d)", n.Id, len(o.Nodes))
		}
		if seen[n.Id] {
			return chk.Err("malformed model: node id = %d is duplicated", n.Id)
		}
		if !finite(n.X, n.Y, n.Z) {
			return chk.Err("malformed model: node %d has non-finite coordinates", n.Id)
		}
		seen[n.Id] = true
	}

	// cross-sections
	sections := make(map[int]bool)
	for i, s := range o.Sections {
		if s == nil {
			return chk.Err("malformed model: cross-section entry %d is null", i)
		}
		if sections[s.Id] {
			return chk.Err("malformed model: cross-section id = %d is duplicated", s.Id)
		}
		sections[s.Id] = true
	}

	// materials
	mats := make(map[int]bool)
	for i, m := range o.Mats {
		if m == nil {
			return chk.Err("malformed model: material model entry %d is null", i)
		}
		if mats[m.Id] {
			return chk.Err("malformed model: material model id = %d is duplicated", m.Id)
		}
		mats[m.Id] = true
	}

	// elements
	elems := make(map[int]bool)
	for i, e := range o.Elems {
		if e == nil {
			return chk.Err("malformed model: element entry %d is null", i)
		}
		if elems[e.Id] {
			return chk.Err("malformed model: element id = %d is duplicated", e.Id)
		}
		elems[e.Id] = true
		if !o.hasNode(e.Start) || !o.hasNode(e.End) {
			return chk.Err("malformed model: element %d refers to nodes (%d, %d) but node ids are in [0, %d)", e.Id, e.Start, e.End, len(o.Nodes))
		}
		if e.Start == e.End {
			return chk.Err("malformed model: element %d connects node %d to itself", e.Id, e.Start)
		}
		if !sections[e.Section] {
			return chk.Err("malformed model: element %d refers to unknown cross-section %d", e.Id, e.Section)
		}
		if !mats[e.Mat] {
			return chk.Err("malformed model: element %d refers to unknown material model %d", e.Id, e.Mat)
		}
		if e.LocalY != nil && len(e.LocalY) != 3 {
			return chk.Err("malformed model: local_y of element %d must have 3 components", e.Id)
		}
	}

	// loads and supports
	for i, l := range o.Loads {
		if l == nil || !o.hasNode(l.Node) {
			return chk.Err("malformed model: load entry %d refers to an unknown node", i)
		}
		if !finite(l.Force.X, l.Force.Y, l.Force.Z, l.Torque.X, l.Torque.Y, l.Torque.Z) {
			return chk.Err("malformed model: load entry %d on node %d has non-finite values", i, l.Node)
		}
	}
	for i, f := range o.Fixed {
		if f == nil || !o.hasNode(f.Node) {
			return chk.Err("malformed model: fixed point entry %d refers to an unknown node", i)
		}
	}
	return
}

// hasNode tells whether id is a valid node id
func (o *Model) hasNode(id int) bool {
	return id >= 0 && id < len(o.Nodes)
}

// finite tells whether all values are finite
func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
