// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/goframe/fem"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".json", true)
	verbose := io.ArgToBool(1, true)
	dirout := io.ArgToString(2, "/tmp/goframe")
	writeK := io.ArgToBool(3, false)

	// message
	if verbose {
		io.PfWhite("\nGoframe -- linear static analysis of 3D frames\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"model filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"directory for results", "dirout", dirout,
			"save stiffness matrix", "writeK", writeK,
		))
	}

	// analysis data
	analysis, err := fem.NewMain(fnamepath, verbose)
	if err != nil {
		chk.Panic("%v", err)
	}
	analysis.DirOut = dirout
	analysis.WriteK = writeK

	// run analysis
	err = analysis.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
}
