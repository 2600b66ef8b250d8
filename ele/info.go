// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Info holds information about the degrees of freedom of an element
type Info struct {
	Dofs [][]string        // solution variables PER NODE. ex for 2 nodes: [["ux", ..., "rz"], ["ux", ..., "rz"]]
	Y2F  map[string]string // maps "y" keys to "f" keys. ex: "ux" => "fx", "rz" => "mz"
}

// FrameDofs holds the keys of the degrees of freedom of one frame node
var FrameDofs = []string{"ux", "uy", "uz", "rx", "ry", "rz"}

// FrameY2F maps displacements and rotations to forces and moments
var FrameY2F = map[string]string{"ux": "fx", "uy": "fy", "uz": "fz", "rx": "mx", "ry": "my", "rz": "mz"}

// NewFrameInfo returns the information of 2-node frame elements
func NewFrameInfo() *Info {
	return &Info{
		Dofs: [][]string{FrameDofs, FrameDofs},
		Y2F:  FrameY2F,
	}
}
