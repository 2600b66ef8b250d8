// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the direct stiffness solver for 3D frames
package fem

import (
	"bytes"
	"time"

	"github.com/cpmech/goframe/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Main holds all data for the analysis of a frame read from a model file
type Main struct {
	Model   *inp.Model // model data
	Str     *Structure // structure
	DirOut  string     // directory for results; results are not saved if empty
	WriteK  bool       // also save the assembled stiffness matrix
	ShowMsg bool       // show messages
}

// NewMain returns a new Main structure
//  Input:
//   modelpath -- model (.json) filename including full path
//   verbose   -- show messages
func NewMain(modelpath string, verbose bool) (o *Main, err error) {

	// new Main object
	o = new(Main)
	o.ShowMsg = verbose

	// read input data
	o.Model, err = inp.ReadModel(modelpath)
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> Model file %q read\n", modelpath)
	}

	// allocate structure
	o.Str, err = NewStructure(o.Model, verbose)
	if err != nil {
		return nil, chk.Err("cannot allocate structure:\n%v", err)
	}
	return
}

// Run runs the analysis and saves results if DirOut is given
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// message
	if o.ShowMsg {
		io.Pf("> Running direct stiffness solver\n")
	}

	// analysis
	err = o.Str.Analyze()
	if err != nil {
		return
	}

	// results
	if o.ShowMsg {
		o.Str.PrintResults()
	}
	if o.DirOut != "" {
		err = o.SaveResults()
	}
	return
}

// SaveResults writes <DirOut>/<key>-results.json and, if WriteK, <DirOut>/<key>-K.txt
func (o *Main) SaveResults() (err error) {
	var buf bytes.Buffer
	err = o.Str.WriteResults(&buf)
	if err != nil {
		return
	}
	io.WriteFileVD(o.DirOut, o.Model.Key+"-results.json", &buf)
	if o.WriteK {
		io.WriteFileVD(o.DirOut, o.Model.Key+"-K.txt", bytes.NewBufferString(o.Str.KString()))
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// onexit prints final message with cpu time
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}
	return prevErr
}
