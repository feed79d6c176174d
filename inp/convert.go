// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gogrillage/ana"
	"github.com/cpmech/gogrillage/geo"
	"github.com/cpmech/gogrillage/load"
	"github.com/cpmech/gogrillage/member"
)

// GetMaterial returns the material data with the given name; nil if not found
func (o *Deck) GetMaterial(name string) *MaterialData {
	for _, m := range o.Materials {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// GetSection returns the section data with the given name; nil if not found
func (o *Deck) GetSection(name string) *SectionData {
	for _, s := range o.Sections {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// MemberSet returns the members assigned to each category
func (o *Deck) MemberSet() (set member.Set, err error) {
	set = make(member.Set)
	for _, d := range o.Members {
		m := o.GetMaterial(d.Material)
		if m == nil {
			return nil, chk.Err("member %q: cannot find material %q", d.Name, d.Material)
		}
		s := o.GetSection(d.Section)
		if s == nil {
			return nil, chk.Err("member %q: cannot find section %q", d.Name, d.Section)
		}
		mat, err := member.NewMaterial(member.MaterialKind(m.Kind), m.E, m.Nu, m.Rho)
		if err != nil {
			return nil, chk.Err("member %q:\n%v", d.Name, err)
		}
		mat.Code = m.Code
		sec, err := s.Section()
		if err != nil {
			return nil, chk.Err("member %q:\n%v", d.Name, err)
		}
		mem, err := member.NewMember(d.Name, mat, sec)
		if err != nil {
			return nil, err
		}
		mem.Offset = d.Offset
		if err = set.Assign(member.Category(d.Category), mem); err != nil {
			return nil, chk.Err("member %q:\n%v", d.Name, err)
		}
	}
	return
}

// Section returns the section; shapes are converted by the cross-section calculator
func (o *SectionData) Section() (*member.Section, error) {
	if o.Shape == "" {
		return member.NewSection(o.A, o.J, o.Iy, o.Iz, o.UnitWidth)
	}
	var cs ana.CrossSection
	if err := cs.Init(o.Shape, o.Wid, o.Hei, o.Tf, o.Tw, o.Rad); err != nil {
		return nil, chk.Err("section %q:\n%v", o.Name, err)
	}
	return member.SectionFromCross(&cs, o.UnitWidth), nil
}

// Load returns the load object
func (o *LoadData) Load() (l load.Load, err error) {
	vs := make([]load.Vertex, len(o.Verts))
	for k, v := range o.Verts {
		vs[k] = load.Vertex{X: v[0], Z: v[1], P: v[2]}
	}
	switch o.Kind {
	case "point":
		if len(vs) != 1 {
			return nil, chk.Err("point load %q requires one vertex. %d is invalid", o.Name, len(vs))
		}
		return load.NewPoint(o.Name, vs[0]), nil
	case "line":
		var ln *load.Line
		if ln, err = load.NewLine(o.Name, vs...); err != nil {
			return nil, err
		}
		return ln, nil
	case "patch":
		var pt *load.Patch
		if pt, err = load.NewPatch(o.Name, vs...); err != nil {
			return nil, err
		}
		return pt, nil
	case "nodal":
		if o.Node < 1 {
			return nil, chk.Err("nodal load %q requires a node tag", o.Name)
		}
		return load.NewNodal(o.Name, o.Node, o.F), nil
	case "compound":
		c := load.NewCompound(o.Name)
		for _, d := range o.Loads {
			var sub load.Load
			if sub, err = d.Load(); err != nil {
				return nil, chk.Err("compound load %q:\n%v", o.Name, err)
			}
			c.Loads = append(c.Loads, sub)
		}
		if len(c.Loads) == 0 {
			return nil, chk.Err("compound load %q has no loads", o.Name)
		}
		c.SetGlobal(geo.Point{X: o.Shift[0], Z: o.Shift[1]})
		return c, nil
	}
	return nil, chk.Err("load kind %q is invalid", o.Kind)
}

// LoadCases returns the static load cases
func (o *Deck) LoadCases() (cases []*load.Case, err error) {
	for _, d := range o.Cases {
		c := load.NewCase(d.Name)
		c.Factor = d.Factor
		for _, ld := range d.Loads {
			var l load.Load
			if l, err = ld.Load(); err != nil {
				return nil, chk.Err("load case %q:\n%v", d.Name, err)
			}
			c.Add(l)
		}
		cases = append(cases, c)
	}
	return
}

// MovingLoads returns the moving loads
func (o *Deck) MovingLoads() (res []*load.Moving, err error) {
	for _, d := range o.Moving {
		mv := &load.Moving{Name: d.Name, N: d.N}
		if mv.Load, err = d.Load.Load(); err != nil {
			return nil, chk.Err("moving load %q:\n%v", d.Name, err)
		}
		pts := points(d.Path)
		if d.Arc {
			if len(pts) != 3 {
				return nil, chk.Err("moving load %q: arc path requires 3 points. %d is invalid", d.Name, len(pts))
			}
			mv.Path, err = load.NewArcPath(pts[0], pts[1], pts[2])
		} else {
			mv.Path, err = load.NewPath(pts...)
		}
		if err != nil {
			return nil, chk.Err("moving load %q:\n%v", d.Name, err)
		}
		res = append(res, mv)
	}
	return
}
