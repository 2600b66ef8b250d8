// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_cantilever01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cantilever01")

	var sol Cantilever
	sol.Init(dbf.Params{
		&dbf.P{N: "E", V: 1000},
		&dbf.P{N: "G", V: 500},
		&dbf.P{N: "L", V: 2},
		&dbf.P{N: "I11", V: 0.5},
		&dbf.P{N: "fx", V: 10},
		&dbf.P{N: "fy", V: 3},
		&dbf.P{N: "fz", V: -1},
		&dbf.P{N: "mx", V: 4},
	})

	u := sol.TipDispl()
	io.Pforan("u = %v\n", u)
	chk.Array(tst, "u", 1e-15, u, []float64{
		10.0 * 2.0 / 1000.0,
		3.0 * 8.0 / (3.0 * 500.0),
		-8.0 / 3000.0,
		4.0 * 2.0 / 500.0,
		4.0 / 2000.0,
		3.0 * 4.0 / (2.0 * 500.0),
	})
	sol.CheckTip(tst, u, 1e-15)
	chk.Array(tst, "reactions", 1e-15, sol.Reactions(), []float64{-10, -3, 1, -4, -2, -6})
}
