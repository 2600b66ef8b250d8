// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements structures and functions to test frame analyses
package tests

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/cpmech/goframe/fem"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Results holds reference results
type Results struct {
	Disp      [][]float64 `json:"disp"`       // [nnod][6] displacements and rotations at nodes
	Reactions [][]float64 `json:"reactions"`  // [nnod][6] reactions at fixed dofs; zero at free dofs
	EndForces [][]float64 `json:"end_forces"` // [nele][12] end forces in local axes
}

// CompareResults runs the analysis of a model file and compares with reference (.cmp) results
func CompareResults(tst *testing.T, modelpath, cmpfname string, tolu, tolf float64, verbose bool) (str *fem.Structure) {

	// FEM structure
	main, err := fem.NewMain(modelpath, verbose)
	if err != nil {
		tst.Errorf("CompareResults: NewMain failed:\n%v\n", err)
		return
	}
	err = main.Run()
	if err != nil {
		tst.Errorf("CompareResults: Run failed:\n%v\n", err)
		return
	}
	str = main.Str

	// read file with comparison results
	buf, err := os.ReadFile(cmpfname)
	if err != nil {
		tst.Errorf("CompareResults: ReadFile failed:%v\n", err)
		return
	}

	// unmarshal json
	var cmp Results
	err = json.Unmarshal(buf, &cmp)
	if err != nil {
		tst.Errorf("CompareResults: Unmarshal failed:\n%v\n", err)
		return
	}
	if len(cmp.Disp) != len(str.Nodes) || len(cmp.Reactions) != len(str.Nodes) || len(cmp.EndForces) != len(str.Elems) {
		tst.Errorf("CompareResults: reference results do not match the number of nodes or elements\n")
		return
	}

	// displacements
	if verbose {
		io.Pfgreen(". . . checking displacements . . .\n")
	}
	for _, nod := range str.Nodes {
		chk.Array(tst, io.Sf("u @ node %d", nod.Id), tolu, nod.U[:], cmp.Disp[nod.Id])
	}

	// reactions
	if verbose {
		io.Pfgreen(". . . checking reactions . . .\n")
	}
	R, err := str.Reactions()
	if err != nil {
		tst.Errorf("CompareResults: Reactions failed:\n%v\n", err)
		return
	}
	for _, nod := range str.Nodes {
		i := nod.Eq(0)
		chk.Array(tst, io.Sf("R @ node %d", nod.Id), tolf, R[i:i+fem.Ndpn], cmp.Reactions[nod.Id])
	}

	// end forces
	if verbose {
		io.Pfgreen(". . . checking end forces . . .\n")
	}
	for eid, fl := range cmp.EndForces {
		res, err := str.ElementEndForces(str.Elems[eid].Id())
		if err != nil {
			tst.Errorf("CompareResults: ElementEndForces failed:\n%v\n", err)
			return
		}
		chk.Array(tst, io.Sf("fl @ element %d", eid), tolf, res, fl)
	}
	return
}
