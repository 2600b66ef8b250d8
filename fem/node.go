// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/spatial/r3"
)

// Ndpn is the number of degrees of freedom per node: ux, uy, uz, rx, ry and rz
const Ndpn = 6

// Dof holds the state of one degree of freedom: either free with an applied load or fixed
type Dof struct {
	Fixed bool    // displacement is prescribed as zero
	Load  float64 // applied force or moment if free
}

// FreeDof returns a free degree of freedom with an applied load
func FreeDof(load float64) Dof { return Dof{Load: load} }

// FixedDof returns a fixed degree of freedom
func FixedDof() Dof { return Dof{Fixed: true} }

// Value returns the load if free or NaN if fixed
func (o Dof) Value() float64 {
	if o.Fixed {
		return math.NaN()
	}
	return o.Load
}

// String returns "fixed" or the load
func (o Dof) String() string {
	if o.Fixed {
		return "fixed"
	}
	return io.Sf("free(%g)", o.Load)
}

// DofVector returns the view of dofs where fixed entries are NaN and free entries hold loads
func DofVector(dofs []Dof) (v []float64) {
	v = make([]float64, len(dofs))
	for i, d := range dofs {
		v[i] = d.Value()
	}
	return
}

// Node holds a frame node with its loads, supports and solution
type Node struct {
	Id  int           // identifier == position in the global system / Ndpn
	X   r3.Vec        // coordinates
	F   [Ndpn]float64 // applied loads: fx, fy, fz, mx, my, mz
	Fix [Ndpn]bool    // fixed dofs: ux, uy, uz, rx, ry, rz
	U   [Ndpn]float64 // displacements and rotations; set by a successful analysis
}

// NewNode returns a new free and unloaded node
func NewNode(id int, x r3.Vec) *Node {
	return &Node{Id: id, X: x}
}

// AddLoad adds force and torque to the loads applied to this node
func (o *Node) AddLoad(force, torque r3.Vec) {
	o.F[0] += force.X
	o.F[1] += force.Y
	o.F[2] += force.Z
	o.F[3] += torque.X
	o.F[4] += torque.Y
	o.F[5] += torque.Z
}

// SetSupport fixes translations and rotations. Flags already set are kept
func (o *Node) SetSupport(translation, rotation [3]bool) {
	for k := 0; k < 3; k++ {
		o.Fix[k] = o.Fix[k] || translation[k]
		o.Fix[3+k] = o.Fix[3+k] || rotation[k]
	}
}

// GetDof returns the state of local dof k
func (o *Node) GetDof(k int) Dof {
	if o.Fix[k] {
		return FixedDof()
	}
	return FreeDof(o.F[k])
}

// Eq returns the global equation number of local dof k
func (o *Node) Eq(k int) int {
	return Ndpn*o.Id + k
}

// DofKey returns the key of local dof k; e.g. "uz"
func DofKey(k int) string {
	return ele.FrameDofs[k]
}

// EqKey returns a description of global equation eq; e.g. "node 3 (uz)"
func EqKey(eq int) string {
	return io.Sf("node %d (%s)", eq/Ndpn, DofKey(eq%Ndpn))
}
