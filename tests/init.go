// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"github.com/cpmech/goframe/fem"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func Verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func GetNidsEqs(str *fem.Structure) (nids, eqs []int) {
	for _, nod := range str.Nodes {
		nids = append(nids, nod.Id)
		for k := 0; k < fem.Ndpn; k++ {
			eqs = append(eqs, nod.Eq(k))
		}
	}
	return
}
