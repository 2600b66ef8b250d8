// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strings"

	"github.com/cpmech/goframe/mdl/sld"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// FuncData holds function definition
type FuncData struct {
	Name string     `json:"name"` // name of function. ex: zero, soft, myfunction1, etc.
	Type string     `json:"type"` // type of function. ex: cte, lin, exc1
	Prms dbf.Params `json:"prms"` // parameters
}

// Funcs holds functions
type FuncsData []*FuncData

// Get returns function by name
func (o FuncsData) Get(name string) (fcn dbf.T, err error) {
	if name == "zero" || name == "none" {
		return newFunc("cte", dbf.Params{&dbf.P{N: "c", V: 0}})
	}
	for _, f := range o {
		if f.Name == name {
			fcn, err = newFunc(f.Type, f.Prms)
			if err != nil {
				err = chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	err = chk.Err("cannot find function named %q", name)
	return
}

// Response returns the strain response given by a function of the database.
// Stress is passed as the "t" argument; thus F gives ε(σ) and G gives dε/dσ
func (o FuncsData) Response(name string) (r sld.Response, err error) {
	fcn, err := o.Get(name)
	if err != nil {
		return
	}
	r.F = func(σ float64) float64 { return fcn.F(σ, nil) }
	r.G = func(σ float64) float64 { return fcn.G(σ, nil) }
	return
}

// newFunc allocates a function of the database. dbf panics on unknown types or parameters
func newFunc(typ string, prms dbf.Params) (fcn dbf.T, err error) {
	defer func() {
		if r := recover(); r != nil {
			fcn, err = nil, chk.Err("%v", r)
		}
	}()
	fcn = dbf.New(typ, prms)
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////

// String prints one function
func (o FuncData) String() string {
	prms := make([]string, len(o.Prms))
	for i, p := range o.Prms {
		prms[i] = io.Sf("{\"n\":%q, \"v\":%g}", p.N, p.V)
	}
	return io.Sf("    {\"name\":%q, \"type\":%q, \"prms\":[%s]}", o.Name, o.Type, strings.Join(prms, ", "))
}

// String prints functions
func (o FuncsData) String() string {
	if len(o) == 0 {
		return "  \"functions\" : []"
	}
	l := "  \"functions\" : [\n"
	for i, f := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", f)
	}
	l += "\n  ]"
	return l
}
