// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/goframe/ana"
	"github.com/cpmech/goframe/inp"
	"github.com/cpmech/goframe/mdl/sld"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/spatial/r3"
)

// Props holds everything an allocator requires to build an element
type Props struct {
	Edat *inp.ElemData     // element data
	X    [2]r3.Vec         // coordinates of nodes
	Sec  *ana.CrossSection // cross-section
	Mdl  sld.Model         // material model
}

// InfoFuncType defines a function that returns information about a certain element type
type InfoFuncType func(edat *inp.ElemData) *Info

// AllocatorType defines a function that allocates an element
type AllocatorType func(p *Props) (Element, error)

// DefaultType is the element type used when none is given
const DefaultType = "beam"

// GetInfo returns information about elements from factory
func GetInfo(edat *inp.ElemData) (info *Info, err error) {
	typ := elemType(edat)
	fcn, ok := infofactory[typ]
	if !ok {
		err = chk.Err("cannot get info for element {type=%q, id=%d}", typ, edat.Id)
		return
	}
	info = fcn(edat)
	if info == nil {
		err = chk.Err("info for element {type=%q, id=%d} is not available", typ, edat.Id)
	}
	return
}

// New returns a new element from factory
func New(p *Props) (ele Element, err error) {
	typ := elemType(p.Edat)
	fcn, ok := allocators[typ]
	if !ok {
		err = chk.Err("cannot get allocator for element {type=%q, id=%d}", typ, p.Edat.Id)
		return
	}
	ele, err = fcn(p)
	if err != nil {
		return nil, chk.Err("element {type=%q, id=%d}: %v", typ, p.Edat.Id, err)
	}
	if ele == nil {
		err = chk.Err("element {type=%q, id=%d} is not available", typ, p.Edat.Id)
	}
	return
}

// SetInfoFunc sets a new callback function to return information about an element
func SetInfoFunc(elementName string, fcn InfoFuncType) {
	if _, ok := infofactory[elementName]; ok {
		chk.Panic("cannot set information function for %q because element name exists already", elementName)
	}
	infofactory[elementName] = fcn
}

// SetAllocator sets a new callback function to allocate an element
func SetAllocator(elementName string, fcn AllocatorType) {
	if _, ok := allocators[elementName]; ok {
		chk.Panic("cannot set allocator function for %q because element name exists already", elementName)
	}
	allocators[elementName] = fcn
}

// elemType returns the type of element or the default one
func elemType(edat *inp.ElemData) string {
	if edat.Type == "" {
		return DefaultType
	}
	return edat.Type
}

// infofactory holds all functions that return information about an element
var infofactory = make(map[string]InfoFuncType)

// allocators holds all element allocators
var allocators = make(map[string]AllocatorType)
