// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Catalog holds material models addressed by id
type Catalog struct {
	models map[int]Model
}

// NewCatalog returns an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{models: make(map[int]Model)}
}

// Add adds model with given id
func (o *Catalog) Add(id int, model Model) error {
	if model == nil {
		return chk.Err("cannot add nil material model with id = %d", id)
	}
	if _, ok := o.models[id]; ok {
		return chk.Err("material model with id = %d is duplicated", id)
	}
	o.models[id] = model
	return nil
}

// Get returns model by id
func (o *Catalog) Get(id int) (Model, error) {
	model, ok := o.models[id]
	if !ok {
		return nil, chk.Err("cannot find material model with id = %d", id)
	}
	return model, nil
}

// Len returns the number of models
func (o *Catalog) Len() int {
	return len(o.models)
}

// Ids returns the sorted ids of all models
func (o *Catalog) Ids() (ids []int) {
	for id := range o.models {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return
}
