// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import (
	"github.com/cpmech/goframe/ana"
	"github.com/cpmech/gosl/chk"
)

// OnedLinElast implements a linear elastic model for frame elements: ε = σ / E
type OnedLinElast struct {
	E  float64 // Young's modulus
	Nu float64 // Poisson's coefficient
}

// add model to factory
func init() {
	allocators["oned-elast"] = func() Model { return new(OnedLinElast) }
}

// Init initialises model. A preset gives E and ν unless they are also given
func (o *OnedLinElast) Init(dat *Data, res Resolver) (err error) {

	// preset
	o.E = dat.E
	var mat ana.Material
	if dat.Preset != "" {
		unit := dat.Unit
		if unit == "" {
			unit = "Pa"
		}
		err = mat.Init(dat.Preset, unit)
		if err != nil {
			return chk.Err("material %d (%q): %v", dat.Id, dat.Name, err)
		}
		if o.E == 0 {
			o.E = mat.E
		}
	}

	// parameters
	if o.E <= 0 {
		return chk.Err("material %d (%q): oned-elast model requires E > 0. E = %g is invalid", dat.Id, dat.Name, o.E)
	}
	if dat.Preset != "" && dat.Nu == nil {
		o.Nu = mat.Nu
		return
	}
	o.Nu, err = nuOrDefault(dat)
	return
}

// GetStrain computes ε(σ)
func (o *OnedLinElast) GetStrain(σ float64) (float64, error) {
	return σ / o.E, nil
}

// GetE computes dε/dσ
func (o *OnedLinElast) GetE(σ float64) (float64, error) {
	return 1.0 / o.E, nil
}

// GetNu returns Poisson's coefficient
func (o *OnedLinElast) GetNu() float64 {
	return o.Nu
}
