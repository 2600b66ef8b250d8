// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

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

func Test_sections01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sections01. typical cross-sections")

	var rect CrossSection
	if err := rect.Init("rectangle", 4, 6, 0, 0, 0); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("4 x 6 %v\n", rect)
	chk.Float64(tst, "rect: A  ", 1e-17, rect.A, 24.0)
	chk.Float64(tst, "rect: I22", 1e-17, rect.I22, 72.0)
	chk.Float64(tst, "rect: I11", 1e-17, rect.I11, 32.0)
	chk.Float64(tst, "rect: Jtt", 1e-10, rect.Jtt, 75.1249382716)

	if err := rect.Init("rectangle", 4, 4, 0, 0, 0); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("4 x 4 %v\n", rect)
	chk.Float64(tst, "rect: A  ", 1e-17, rect.A, 16.0)
	chk.Float64(tst, "rect: I22", 1e-13, rect.I22, 21.3333333333333)
	chk.Float64(tst, "rect: I11", 1e-13, rect.I11, 21.3333333333333)
	chk.Float64(tst, "rect: Jtt", 1e-17, rect.Jtt, 36.0)

	var ibeam CrossSection
	if err := ibeam.Init("I-beam", 4, 6, 0.5, 0.3, 0); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("4 x 6 %v\n", ibeam)
	chk.Float64(tst, "I-beam: A  ", 1e-15, ibeam.A, 5.5)
	chk.Float64(tst, "I-beam: I22", 1e-10, ibeam.I22, 33.4583333333)
	chk.Float64(tst, "I-beam: I11", 1e-10, ibeam.I11, 5.3445833333)
	chk.Float64(tst, "I-beam: Jtt", 1e-10, ibeam.Jtt, 0.3783333333)

	var circle CrossSection
	if err := circle.Init("circle", 0, 0, 0, 0, 1); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("r=1 %v\n", circle)
	chk.Float64(tst, "circle: A  ", 1e-17, circle.A, math.Pi)
	chk.Float64(tst, "circle: I22", 1e-10, circle.I22, 0.7853981634)
	chk.Float64(tst, "circle: I11", 1e-10, circle.I11, 0.7853981634)
	chk.Float64(tst, "circle: Jtt", 1e-10, circle.Jtt, 1.5707963268)
}

func Test_sections02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sections02. invalid cross-sections")

	var cs CrossSection
	for i, c := range []struct {
		typ                   string
		wid, hei, tf, tw, rad float64
	}{
		{"rectangle", 0, 1, 0, 0, 0},
		{"rectangle", 1, -1, 0, 0, 0},
		{"rectangle", math.NaN(), 1, 0, 0, 0},
		{"I-beam", 4, 6, 3, 0.3, 0},
		{"I-beam", 4, 6, 0.5, 4, 0},
		{"circle", 0, 0, 0, 0, 0},
		{"hexagon", 1, 1, 0, 0, 1},
	} {
		err := cs.Init(c.typ, c.wid, c.hei, c.tf, c.tw, c.rad)
		if err == nil {
			tst.Errorf("case %d should have failed\n", i)
			return
		}
		io.Pforan("%v\n", err)
	}
}

func Test_materials01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("materials01. reference materials parameters")

	var mat Material
	if err := mat.Init("steel", "Pa"); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("%s: E=%g ν=%g G=%g\n", mat.Desc, mat.E, mat.Nu, mat.G)
	chk.Float64(tst, "E", 1e-3, mat.E, 2e11)
	chk.Float64(tst, "G", 1e-3, mat.G, 2e11/2.64)

	if err := mat.Init("steel", "psi"); err == nil {
		tst.Errorf("unknown unit should have failed\n")
		return
	}
	if err := mat.Init("unobtainium", "MPa"); err == nil {
		tst.Errorf("unknown material should have failed\n")
		return
	}
}
