// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"testing"

	"github.com/cpmech/goframe/fem"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// solve reads a model file and runs the analysis
func solve(tst *testing.T, fn string) *Post {
	main, err := fem.NewMain(fn, chk.Verbose)
	if err != nil {
		tst.Fatalf("NewMain failed: %v\n", err)
	}
	err = main.Run()
	if err != nil {
		tst.Fatalf("Run failed: %v\n", err)
	}
	post, err := Start(main.Str)
	if err != nil {
		tst.Fatalf("Start failed: %v\n", err)
	}
	return post
}

func Test_diagrams01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diagrams01. cantilever")

	post := solve(tst, "data/cantilever.json")

	// nodes
	nod, err := post.NodeAt(2, 0, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.IntAssert(nod.Id, 1)
	_, err = post.NodeAt(1, 0, 0)
	if err == nil {
		tst.Errorf("NodeAt should have failed\n")
		return
	}

	// diagram
	d, err := post.Diagram(0, 3)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if chk.Verbose {
		d.Print()
	}
	chk.Array(tst, "s", 1e-15, d.S, []float64{0, 1, 2})
	chk.Array(tst, "N", 1e-6, d.N, []float64{0, 0, 0})
	chk.Array(tst, "V1", 1e-6, d.V1, []float64{-1000, -1000, -1000})
	chk.Array(tst, "M2", 1e-6, d.M2, []float64{-2000, -1000, 0})
	chk.Array(tst, "M1", 1e-6, d.M1, []float64{0, 0, 0})
	chk.Float64(tst, "max|M|", 1e-6, d.MaxAbsM(), 2000)

	// errors
	_, err = post.Diagram(0, 1)
	if err == nil {
		tst.Errorf("one station should have failed\n")
		return
	}
	_, err = post.Diagram(3, 5)
	if err == nil {
		tst.Errorf("unknown element should have failed\n")
		return
	}
}

func Test_diagrams02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diagrams02. portal frame")

	post := solve(tst, "data/portal.json")

	// nodes along the top beam
	nodes := post.NodesAlong([]float64{0, 0, 3}, []float64{4, 0, 3})
	ids := make([]int, len(nodes))
	for i, nod := range nodes {
		ids[i] = nod.Id
	}
	chk.Ints(tst, "top nodes", ids, []int{1, 2})

	// last station holds the forces at the end node
	ds, err := post.Diagrams(11)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.IntAssert(len(ds), 3)
	for _, d := range ds {
		fl, err := post.Str.ElementEndForces(d.Eid)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		n := len(d.S) - 1
		res := []float64{d.N[n], d.V1[n], d.V2[n], d.T[n], d.M1[n], d.M2[n]}
		chk.Array(tst, io.Sf("f(L) @ element %d", d.Eid), 1e-5, res, fl[6:])
	}

	// unsolved structure
	_, err = Start(&fem.Structure{})
	if err == nil {
		tst.Errorf("Start should have failed\n")
		return
	}
}
