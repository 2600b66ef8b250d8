// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sld implements material models for frame elements. The responses of these models map
// stress (σ) to strain (ε); thus the derivative dε/dσ is a compliance and the elastic modulus
// consumed by elements is its reciprocal at zero stress
package sld

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Model defines a uniaxial stress-strain response of materials for frame elements
type Model interface {
	Init(dat *Data, res Resolver) error   // initialises model
	GetStrain(σ float64) (float64, error) // computes ε(σ)
	GetE(σ float64) (float64, error)      // computes dε/dσ at σ
	GetNu() float64                       // returns Poisson's coefficient
}

// Data holds the input data of one material model
type Data struct {
	Id       int       `json:"id"`                 // identifier
	Name     string    `json:"name"`               // name. ex: "steel"
	Model    string    `json:"model"`              // model type. default is "piecewise"
	Nranges  int       `json:"no_of_ranges"`       // number of stress ranges
	Limits   []float64 `json:"range_upper_limits"` // upper stress limit of each range
	Formulas []string  `json:"formulas"`           // ε(σ) per range written with variable x or "@fcnname"
	Nu       *float64  `json:"nu"`                 // Poisson's coefficient
	E        float64   `json:"E"`                  // Young's modulus of "oned-elast" models
	Preset   string    `json:"preset"`             // reference material of "oned-elast" models. ex: "steel"
	Unit     string    `json:"unit"`               // unit of pressure of preset. default is "Pa"
}

// Response holds the compiled strain function of one range and its derivative
type Response struct {
	F func(σ float64) float64 // ε(σ)
	G func(σ float64) float64 // dε/dσ
}

// Resolver returns the response of a named function from a function database
type Resolver func(name string) (Response, error)

// NuDefault is the Poisson's coefficient used when none is given
const NuDefault = 0.3

// New allocates and initialises a new model. dat.Model selects the type
func New(dat *Data, res Resolver) (model Model, err error) {
	name := dat.Model
	if name == "" {
		name = "piecewise"
	}
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("material %d: model %q is not available in 'sld' database", dat.Id, name)
	}
	model = allocator()
	err = model.Init(dat, res)
	if err != nil {
		return nil, err
	}
	return
}

// Moduli computes the Young's and shear moduli at zero stress
//  E = 1 / (dε/dσ)(0)
//  G = E / (2 (1 + ν))
func Moduli(model Model) (E, G float64, err error) {
	d, err := model.GetE(0)
	if err != nil {
		return
	}
	if d == 0 || math.IsInf(d, 0) || math.IsNaN(d) {
		return 0, 0, chk.Err("initial compliance dε/dσ(0) = %v does not give a valid Young's modulus", d)
	}
	E = 1.0 / d
	G = E / (2.0 * (1.0 + model.GetNu()))
	return
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// nuOrDefault returns the given Poisson's coefficient or the default one
func nuOrDefault(dat *Data) (ν float64, err error) {
	if dat.Nu == nil {
		return NuDefault, nil
	}
	ν = *dat.Nu
	if ν <= -1 || ν >= 0.5 || math.IsNaN(ν) {
		return 0, chk.Err("material %d: Poisson's coefficient must be in (-1, 0.5). %v is invalid", dat.Id, ν)
	}
	return
}
