// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import (
	"bytes"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Point holds the response of a model at one stress level
type Point struct {
	Sig float64 // stress σ
	Eps float64 // strain ε
	D   float64 // compliance dε/dσ
}

// Driver evaluates models along a path of stresses
type Driver struct {

	// input
	Mdl Model // model

	// settings
	TolD float64 // tolerance to check dε/dσ
	H    float64 // step for finite differences
	VerD bool    // verbose check of dε/dσ

	// check dε/dσ
	TstD *testing.T // if != nil, do check compliance against finite differences

	// results
	Res []Point // results
}

// Init initialises driver
func (o *Driver) Init(mdl Model) {
	o.Mdl = mdl
	o.TolD = 1e-7
	o.H = 1e-3
	o.VerD = chk.Verbose
}

// Run evaluates strains and compliances at all stresses in Sig
func (o *Driver) Run(Sig []float64) (err error) {
	if o.Mdl == nil {
		return chk.Err("driver requires a model")
	}
	o.Res = make([]Point, len(Sig))
	for i, σ := range Sig {
		o.Res[i].Sig = σ
		o.Res[i].Eps, err = o.Mdl.GetStrain(σ)
		if err != nil {
			return
		}
		o.Res[i].D, err = o.Mdl.GetE(σ)
		if err != nil {
			return
		}
		if o.TstD != nil {
			chk.DerivScaSca(o.TstD, io.Sf("dε/dσ @ %g", σ), o.TolD, o.Res[i].D, σ, o.H, o.VerD, func(x float64) float64 {
				ε, e := o.Mdl.GetStrain(x)
				if e != nil {
					return math.NaN()
				}
				return ε
			})
		}
	}
	return
}

// Table returns the results formatted as columns: σ, ε and dε/dσ
func (o *Driver) Table() *bytes.Buffer {
	var buf bytes.Buffer
	io.Ff(&buf, "%23s %23s %23s\n", "sig", "eps", "deps_dsig")
	for _, p := range o.Res {
		io.Ff(&buf, "%23.15e %23.15e %23.15e\n", p.Sig, p.Eps, p.D)
	}
	return &buf
}
