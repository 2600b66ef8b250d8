// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_driver01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("driver01. compliance along a path")

	mdl, err := CompilePiecewise(0, "softening", []float64{0, 1e30}, []string{"x/100", "x/100 + x^2/1000"}, NuDefault)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	var drv Driver
	drv.Init(mdl)
	drv.TstD = tst
	err = drv.Run(utl.LinSpace(-5, 5.5, 8))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.IntAssert(len(drv.Res), 8)
	chk.Float64(tst, "ε(-5)", 1e-15, drv.Res[0].Eps, -0.05)
	chk.Float64(tst, "ε(5.5)", 1e-15, drv.Res[7].Eps, 0.055+0.03025)
	chk.Float64(tst, "dε/dσ(5.5)", 1e-15, drv.Res[7].D, 0.01+0.011)

	tab := drv.Table().String()
	io.Pf("%s", tab)
	chk.IntAssert(strings.Count(tab, "\n"), 9)

	// model errors
	mdl, err = CompilePiecewise(1, "log", []float64{1e30}, []string{"log(x)"}, NuDefault)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	drv.Init(mdl)
	err = drv.Run([]float64{1, -1})
	if err == nil {
		tst.Errorf("log(-1) should have failed\n")
		return
	}
	io.Pforan("%v\n", err)
}
