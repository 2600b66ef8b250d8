// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_piecewise01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("piecewise01. two ranges")

	mdl, err := CompilePiecewise(0, "bilinear", []float64{10, 1e30}, []string{"x/2", "x/2 + 5"}, NuDefault)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.IntAssert(mdl.Nranges(), 2)

	for _, c := range []struct{ σ, ε float64 }{{5, 2.5}, {-3, -1.5}, {10, 10}, {20, 15}} {
		ε, err := mdl.GetStrain(c.σ)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		chk.Float64(tst, io.Sf("ε(%g)", c.σ), 1e-15, ε, c.ε)
		d, err := mdl.GetE(c.σ)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		chk.Float64(tst, io.Sf("dε/dσ(%g)", c.σ), 1e-15, d, 0.5)
	}

	E, G, err := Moduli(mdl)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "E", 1e-15, E, 2)
	chk.Float64(tst, "G", 1e-15, G, 2/2.6)
}

func Test_piecewise02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("piecewise02. last range and boundaries")

	// three ranges: the last limit is never used
	mdl, err := CompilePiecewise(1, "three", []float64{-1, 1, -100}, []string{"1", "2", "3"}, 0.25)
	if err == nil {
		tst.Errorf("descending limits should have failed\n")
		return
	}
	io.Pforan("%v\n", err)

	mdl, err = CompilePiecewise(1, "three", []float64{-1, 1, 1}, []string{"1", "2", "3"}, 0.25)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	for _, c := range []struct{ σ, ε float64 }{{-2, 1}, {-1, 2}, {0.999, 2}, {1, 3}, {1e9, 3}} {
		ε, err := mdl.GetStrain(c.σ)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		chk.Float64(tst, io.Sf("ε(%g)", c.σ), 1e-15, ε, c.ε)
	}

	// single range: limit is ignored
	mdl, err = CompilePiecewise(2, "single", []float64{0}, []string{"x/200e9"}, NuDefault)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	ε, err := mdl.GetStrain(1e6)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "ε(1e6)", 1e-20, ε, 5e-6)
}

func Test_piecewise03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("piecewise03. derivatives versus finite differences")

	mdl, err := CompilePiecewise(3, "nonlinear", []float64{0, 1e30}, []string{"x/100 - (x/50)**2", "tanh(x/10)/10 + x**3/1e4"}, NuDefault)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	h := 1e-5
	for _, σ := range []float64{-40, -5, 3, 12, 35} {
		εp, _ := mdl.GetStrain(σ + h)
		εm, _ := mdl.GetStrain(σ - h)
		d, err := mdl.GetE(σ)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		chk.AnaNum(tst, io.Sf("dε/dσ(%g)", σ), 1e-8, d, (εp-εm)/(2*h), chk.Verbose)
	}
}

func Test_piecewise04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("piecewise04. errors")

	// non-finite evaluation
	mdl, err := CompilePiecewise(4, "logarithmic", []float64{1}, []string{"log(x)"}, NuDefault)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	_, err = mdl.GetStrain(-1)
	if err == nil {
		tst.Errorf("log(-1) should have failed\n")
		return
	}
	io.Pforan("%v\n", err)
	_, _, err = Moduli(mdl)
	if err == nil {
		tst.Errorf("modulus at σ = 0 should have failed\n")
		return
	}
	io.Pforan("%v\n", err)

	// zero compliance
	mdl, err = CompilePiecewise(5, "rigid", []float64{1}, []string{"3"}, NuDefault)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if _, _, err = Moduli(mdl); err == nil {
		tst.Errorf("zero compliance should have failed\n")
		return
	}

	// bad inputs
	bad := []struct {
		limits   []float64
		formulas []string
	}{
		{[]float64{}, []string{}},
		{[]float64{1, 2}, []string{"x"}},
		{[]float64{1}, []string{"x +"}},
		{[]float64{1}, []string{"y"}},
		{[]float64{math.NaN()}, []string{"x"}},
		{[]float64{1}, []string{"@soft"}},
	}
	for i, b := range bad {
		_, err = CompilePiecewise(6, "bad", b.limits, b.formulas, NuDefault)
		if err == nil {
			tst.Errorf("case %d should have failed\n", i)
			return
		}
		io.Pforan("%v\n", err)
	}
}

func Test_piecewise05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("piecewise05. factory and resolver")

	soft := Response{
		F: func(σ float64) float64 { return σ * σ },
		G: func(σ float64) float64 { return 2 * σ },
	}
	res := func(name string) (Response, error) {
		if name == "soft" {
			return soft, nil
		}
		return Response{}, chk.Err("cannot find function named %q", name)
	}

	ν := 0.2
	mdl, err := New(&Data{Id: 7, Name: "mixed", Nranges: 2, Limits: []float64{1, 1}, Formulas: []string{"@soft", "2*x - 1"}, Nu: &ν}, res)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "ν", 1e-15, mdl.GetNu(), 0.2)
	ε, _ := mdl.GetStrain(0.5)
	chk.Float64(tst, "ε(0.5)", 1e-15, ε, 0.25)
	d, _ := mdl.GetE(0.5)
	chk.Float64(tst, "dε/dσ(0.5)", 1e-15, d, 1)
	ε, _ = mdl.GetStrain(3)
	chk.Float64(tst, "ε(3)", 1e-15, ε, 5)

	// unknown function
	_, err = New(&Data{Id: 8, Nranges: 1, Limits: []float64{0}, Formulas: []string{"@hard"}}, res)
	if err == nil {
		tst.Errorf("unknown function should have failed\n")
		return
	}
	io.Pforan("%v\n", err)

	// mismatched number of ranges
	_, err = New(&Data{Id: 9, Nranges: 2, Limits: []float64{0}, Formulas: []string{"x"}}, nil)
	if err == nil {
		tst.Errorf("wrong no_of_ranges should have failed\n")
		return
	}
	io.Pforan("%v\n", err)

	// unknown model and invalid ν
	if _, err = New(&Data{Id: 10, Model: "plastic"}, nil); err == nil {
		tst.Errorf("unknown model should have failed\n")
		return
	}
	ν = 0.5
	if _, err = New(&Data{Id: 11, Model: "oned-elast", E: 1, Nu: &ν}, nil); err == nil {
		tst.Errorf("ν = 0.5 should have failed\n")
		return
	}

	// linear elastic
	mdl, err = New(&Data{Id: 12, Model: "oned-elast", E: 200}, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	ε, _ = mdl.GetStrain(50)
	chk.Float64(tst, "ε(50)", 1e-15, ε, 0.25)
	E, G, err := Moduli(mdl)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "E", 1e-13, E, 200)
	chk.Float64(tst, "G", 1e-13, G, 200/2.6)
	if _, err = New(&Data{Id: 13, Model: "oned-elast"}, nil); err == nil {
		tst.Errorf("E = 0 should have failed\n")
		return
	}

	// presets
	mdl, err = New(&Data{Id: 14, Model: "oned-elast", Preset: "steel", Unit: "MPa"}, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "ν(steel)", 1e-17, mdl.GetNu(), 0.32)
	E, _, err = Moduli(mdl)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "E(steel)", 1e-10, E, 200000)
	ν = 0.25
	mdl, err = New(&Data{Id: 15, Model: "oned-elast", Preset: "aluminum", Nu: &ν}, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "ν(aluminum)", 1e-17, mdl.GetNu(), 0.25)
	if _, err = New(&Data{Id: 16, Model: "oned-elast", Preset: "granite"}, nil); err == nil {
		tst.Errorf("unknown preset should have failed\n")
		return
	}
}

func Test_catalog01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("catalog01")

	cat := NewCatalog()
	a, _ := CompilePiecewise(3, "a", []float64{0}, []string{"x"}, NuDefault)
	b, _ := CompilePiecewise(1, "b", []float64{0}, []string{"2*x"}, NuDefault)
	if err := cat.Add(3, a); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err := cat.Add(1, b); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err := cat.Add(1, a); err == nil {
		tst.Errorf("duplicated id should have failed\n")
		return
	}
	chk.IntAssert(cat.Len(), 2)
	chk.Ints(tst, "ids", cat.Ids(), []int{1, 3})

	m, err := cat.Get(1)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	d, _ := m.GetE(0)
	chk.Float64(tst, "dε/dσ", 1e-15, d, 2)

	if _, err = cat.Get(2); err == nil {
		tst.Errorf("unknown id should have failed\n")
		return
	}
}
