// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/goframe/ana"
	"github.com/cpmech/goframe/mdl/sld"
	"github.com/cpmech/gosl/chk"
)

// CrossSections computes the properties of all cross-sections. Results are mapped by id
func (o *Model) CrossSections() (secs map[int]*ana.CrossSection, err error) {
	secs = make(map[int]*ana.CrossSection)
	for _, s := range o.Sections {
		var cs ana.CrossSection
		d := s.Dims
		switch s.Shape {
		case "rectangle":
			err = cs.Init(s.Shape, d.Y, d.Z, 0, 0, 0)
		case "I-beam":
			err = cs.Init(s.Shape, d.Y, d.Z, d.Tf, d.Tw, 0)
		case "circle":
			err = cs.Init(s.Shape, 0, 0, 0, 0, d.Radius)
		default:
			err = chk.Err("shape %q is unavailable", s.Shape)
		}
		if err != nil {
			return nil, chk.Err("malformed model: cross-section %d: %v", s.Id, err)
		}
		secs[s.Id] = &cs
	}
	return
}

// Materials allocates all material models. Formulas like "@name" use the functions database
func (o *Model) Materials() (cat *sld.Catalog, err error) {
	cat = sld.NewCatalog()
	for _, dat := range o.Mats {
		mdl, err := sld.New(dat, o.Functions.Response)
		if err != nil {
			return nil, chk.Err("malformed model: %v", err)
		}
		err = cat.Add(dat.Id, mdl)
		if err != nil {
			return nil, chk.Err("malformed model: %v", err)
		}
	}
	return
}
