// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"github.com/cpmech/goframe/inp"
	"github.com/cpmech/goframe/mdl/sld"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	fnamepath, fnkey := io.ArgToFilename(0, "", ".json", true)
	mid := io.ArgToInt(1, 0)
	σ0 := io.ArgToFloat(2, -1e8)
	σf := io.ArgToFloat(3, 1e8)
	npts := io.ArgToInt(4, 21)
	dirout := io.ArgToString(5, "/tmp/goframe")
	io.Pf("\n%s\n", io.ArgsTable("INPUT ARGUMENTS",
		"model filename path", "fnamepath", fnamepath,
		"material model id", "mid", mid,
		"initial stress", "σ0", σ0,
		"final stress", "σf", σf,
		"number of points", "npts", npts,
		"directory for results", "dirout", dirout,
	))

	// material model
	mdl, err := inp.ReadModel(fnamepath)
	if err != nil {
		chk.Panic("%v", err)
	}
	cat, err := mdl.Materials()
	if err != nil {
		chk.Panic("%v", err)
	}
	m, err := cat.Get(mid)
	if err != nil {
		chk.Panic("%v", err)
	}

	// driver
	var drv sld.Driver
	drv.Init(m)
	err = drv.Run(utl.LinSpace(σ0, σf, npts))
	if err != nil {
		chk.Panic("driver: Run failed: %v", err)
	}
	io.WriteFileVD(dirout, io.Sf("%s-mat%d.res", fnkey, mid), drv.Table())
}
