// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output handling for frame analyses: search of nodes and diagrams of
// internal forces along elements
package out

import (
	"sort"

	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/goframe/fem"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"
)

// constants
var (
	TolC = 1e-8 // tolerance to compare x-y-z coordinates
	Ndiv = 20   // bins n-division
)

// Post holds a solved structure and auxiliary data for post-processing
type Post struct {
	Str     *fem.Structure // structure after a successful analysis
	NodBins gm.Bins        // bins for nodes
	Beams   []ele.Element  // elements with local axes and end forces
	Xmin    []float64      // [3] {x,y,z}_min among all nodes
	Xmax    []float64      // [3] {x,y,z}_max among all nodes
}

// Start starts post-processing of a solved structure
func Start(str *fem.Structure) (o *Post, err error) {

	// check
	if str == nil || str.U == nil {
		return nil, chk.Err("post-processing requires a successful analysis")
	}
	if len(str.Nodes) == 0 {
		return nil, chk.Err("structure has no nodes")
	}
	o = &Post{Str: str}

	// limits
	o.Xmin = coords(str.Nodes[0])
	o.Xmax = coords(str.Nodes[0])
	for _, nod := range str.Nodes {
		x := coords(nod)
		for j := 0; j < 3; j++ {
			if x[j] < o.Xmin[j] {
				o.Xmin[j] = x[j]
			}
			if x[j] > o.Xmax[j] {
				o.Xmax[j] = x[j]
			}
		}
	}

	// bins
	δ := TolC * 2
	xi := []float64{o.Xmin[0] - δ, o.Xmin[1] - δ, o.Xmin[2] - δ}
	xf := []float64{o.Xmax[0] + δ, o.Xmax[1] + δ, o.Xmax[2] + δ}
	err = o.NodBins.Init(xi, xf, Ndiv)
	if err != nil {
		return nil, chk.Err("cannot initialise bins for nodes: %v", err)
	}
	for _, nod := range str.Nodes {
		err = o.NodBins.Append(coords(nod), nod.Id)
		if err != nil {
			return nil, chk.Err("cannot append node %d to bins: %v", nod.Id, err)
		}
	}

	// find beams
	for _, e := range str.Elems {
		_, withAxes := e.(ele.WithAxes)
		_, withForces := e.(ele.WithEndForces)
		if withAxes && withForces {
			o.Beams = append(o.Beams, e)
		}
	}
	return
}

// NodeAt returns the node at given coordinates
func (o *Post) NodeAt(x, y, z float64) (nod *fem.Node, err error) {
	id := o.NodBins.Find([]float64{x, y, z})
	if id < 0 {
		return nil, chk.Err("cannot find node at (%g, %g, %g)", x, y, z)
	}
	return o.Str.Nodes[id], nil
}

// NodesAlong returns the nodes along the line from a to b sorted by id
func (o *Post) NodesAlong(a, b []float64) (nodes []*fem.Node) {
	ids := o.NodBins.FindAlongLine(a, b, TolC)
	sort.Ints(ids)
	for _, id := range ids {
		nodes = append(nodes, o.Str.Nodes[id])
	}
	return
}

// coords returns the coordinates of a node as a slice
func coords(nod *fem.Node) []float64 {
	return []float64{nod.X.X, nod.X.Y, nod.X.Z}
}
