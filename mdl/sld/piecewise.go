// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import (
	"math"
	"strings"

	"github.com/cpmech/goframe/sym"
	"github.com/cpmech/gosl/chk"
)

// Piecewise implements a stress-strain response defined by one function per stress range
//  Range i (i < n-1) holds stresses σ < Limits[i] not held by a previous range;
//  the last range holds everything else, so its limit is not used.
type Piecewise struct {
	Id       int       // identifier
	Name     string    // name
	Limits   []float64 // upper limit of each range
	Formulas []string  // source formulas; may be empty if responses were given directly
	Nu       float64   // Poisson's coefficient

	// compiled responses
	rs []Response
}

// add model to factory
func init() {
	allocators["piecewise"] = func() Model { return new(Piecewise) }
}

// NewPiecewise returns a new piecewise model with given responses
func NewPiecewise(id int, name string, limits []float64, responses []Response, ν float64) (o *Piecewise, err error) {
	o = &Piecewise{Id: id, Name: name, Nu: ν}
	err = o.set(limits, responses)
	if err != nil {
		return nil, err
	}
	return
}

// CompilePiecewise returns a new piecewise model with responses compiled from formulas
func CompilePiecewise(id int, name string, limits []float64, formulas []string, ν float64) (o *Piecewise, err error) {
	rs, err := CompileResponses(formulas, nil)
	if err != nil {
		return nil, chk.Err("material %d (%q): %v", id, name, err)
	}
	o, err = NewPiecewise(id, name, limits, rs, ν)
	if err != nil {
		return
	}
	o.Formulas = formulas
	return
}

// CompileResponses compiles formulas of the variable x. Formulas like "@name" are taken from res
func CompileResponses(formulas []string, res Resolver) (rs []Response, err error) {
	rs = make([]Response, len(formulas))
	for i, src := range formulas {
		src = strings.TrimSpace(src)
		if strings.HasPrefix(src, "@") {
			if res == nil {
				return nil, chk.Err("range %d: function %q requires a function database", i, src)
			}
			rs[i], err = res(src[1:])
			if err != nil {
				return nil, chk.Err("range %d: %v", i, err)
			}
			continue
		}
		e, err := sym.Parse(src, "x")
		if err != nil {
			return nil, chk.Err("range %d: %v", i, err)
		}
		rs[i] = Response{F: sym.Compile(e), G: sym.Compile(e.Diff())}
	}
	return
}

// Init initialises model
func (o *Piecewise) Init(dat *Data, res Resolver) (err error) {
	o.Id, o.Name = dat.Id, dat.Name
	o.Nu, err = nuOrDefault(dat)
	if err != nil {
		return
	}
	if dat.Nranges != len(dat.Formulas) {
		return chk.Err("material %d (%q): no_of_ranges = %d does not match the number of formulas = %d", o.Id, o.Name, dat.Nranges, len(dat.Formulas))
	}
	rs, err := CompileResponses(dat.Formulas, res)
	if err != nil {
		return chk.Err("material %d (%q): %v", o.Id, o.Name, err)
	}
	o.Formulas = dat.Formulas
	return o.set(dat.Limits, rs)
}

// GetStrain computes ε(σ)
func (o *Piecewise) GetStrain(σ float64) (float64, error) {
	i := o.find(σ)
	return o.check("strain", i, σ, o.rs[i].F(σ))
}

// GetE computes dε/dσ at σ
func (o *Piecewise) GetE(σ float64) (float64, error) {
	i := o.find(σ)
	return o.check("derivative", i, σ, o.rs[i].G(σ))
}

// GetNu returns Poisson's coefficient
func (o *Piecewise) GetNu() float64 {
	return o.Nu
}

// Nranges returns the number of ranges
func (o *Piecewise) Nranges() int {
	return len(o.rs)
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////

// set sets limits and responses
func (o *Piecewise) set(limits []float64, rs []Response) error {
	n := len(rs)
	if n == 0 {
		return chk.Err("material %d (%q): at least one range is required", o.Id, o.Name)
	}
	if len(limits) != n {
		return chk.Err("material %d (%q): %d range limits given for %d ranges", o.Id, o.Name, len(limits), n)
	}
	for i, r := range rs {
		if r.F == nil || r.G == nil {
			return chk.Err("material %d (%q): range %d has no response", o.Id, o.Name, i)
		}
	}
	for i, l := range limits {
		if math.IsNaN(l) {
			return chk.Err("material %d (%q): limit of range %d is NaN", o.Id, o.Name, i)
		}
		if i > 0 && l < limits[i-1] {
			return chk.Err("material %d (%q): range limits must be ascending. %g < %g at range %d", o.Id, o.Name, l, limits[i-1], i)
		}
	}
	o.Limits = limits
	o.rs = rs
	return nil
}

// find returns the range holding σ
func (o *Piecewise) find(σ float64) int {
	n := len(o.rs)
	for i := 0; i < n-1; i++ {
		if σ < o.Limits[i] {
			return i
		}
	}
	return n - 1
}

// check returns an error if v is not finite
func (o *Piecewise) check(what string, i int, σ, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, chk.Err("material %d (%q): range %d: %s at σ = %g is not finite (%v)", o.Id, o.Name, i, what, σ, v)
	}
	return v, nil
}
