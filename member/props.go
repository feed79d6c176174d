// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package member

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gogrillage/ana"
)

// MaterialKind defines the kind of material
type MaterialKind string

// kinds of material
const (
	Concrete MaterialKind = "concrete"
	Steel    MaterialKind = "steel"
	Custom   MaterialKind = "custom"
)

// Material holds elastic material parameters
type Material struct {
	Kind MaterialKind // kind of material
	Code string       // design code or grade; informative
	E    float64      // Young's modulus
	G    float64      // shear modulus
	Nu   float64      // Poisson's coefficient
	Rho  float64      // density
}

// NewMaterial returns a new material. G is computed from E and ν.
func NewMaterial(kind MaterialKind, E, nu, rho float64) (o *Material, err error) {
	switch kind {
	case Concrete, Steel, Custom:
	default:
		return nil, chk.Err("material kind %q is invalid", kind)
	}
	if E <= 0 {
		return nil, chk.Err("Young's modulus must be positive. E=%g is invalid", E)
	}
	if nu < 0 || nu >= 0.5 {
		return nil, chk.Err("Poisson's coefficient must be in [0, 0.5). ν=%g is invalid", nu)
	}
	if rho < 0 {
		return nil, chk.Err("density must not be negative. ρ=%g is invalid", rho)
	}
	return &Material{Kind: kind, E: E, Nu: nu, G: E / (2.0 * (1.0 + nu)), Rho: rho}, nil
}

// Section holds cross-section properties
type Section struct {
	A         float64 // area
	J         float64 // torsional constant
	Iy        float64 // moment of inertia for horizontal bending
	Iz        float64 // moment of inertia for vertical bending
	Ay        float64 // shear area along y (optional)
	Az        float64 // shear area along z (optional)
	UnitWidth bool    // properties are given per unit width and must be scaled by the tributary width
}

// NewSection returns a new section
func NewSection(A, J, Iy, Iz float64, unitWidth bool) (o *Section, err error) {
	if A <= 0 || J <= 0 || Iy <= 0 || Iz <= 0 {
		return nil, chk.Err("section properties must be positive. A=%g, J=%g, Iy=%g, Iz=%g", A, J, Iy, Iz)
	}
	return &Section{A: A, J: J, Iy: Iy, Iz: Iz, UnitWidth: unitWidth}, nil
}

// SectionFromCross returns a section with the properties of a cross-section
func SectionFromCross(cs *ana.CrossSection, unitWidth bool) *Section {
	return &Section{A: cs.A, J: cs.J, Iy: cs.Iy, Iz: cs.Iz, Ay: cs.Ay, Az: cs.Az, UnitWidth: unitWidth}
}

// Props holds the properties of an elastic beam-column element
type Props struct {
	E, G   float64 // elastic moduli
	A, J   float64 // area and torsional constant
	Iy, Iz float64 // moments of inertia
	Ay, Az float64 // shear areas
	Offset float64 // vertical offset of the member axis from the deck plane
}

// Member holds a material and section assigned to a category of elements
type Member struct {
	Name     string    // name
	Material *Material // material
	Section  *Section  // section
	Offset   float64   // vertical offset of the member axis from the deck plane (rigid link)
}

// NewMember returns a new member
func NewMember(name string, mat *Material, sec *Section) (o *Member, err error) {
	if mat == nil || sec == nil {
		return nil, chk.Err("member %q requires both material and section", name)
	}
	return &Member{Name: name, Material: mat, Section: sec}, nil
}

// Props returns the element properties for a tributary width. Unit-width sections are scaled
// by width; others ignore it.
func (o *Member) Props(width float64) (p Props) {
	s := o.Section
	p = Props{E: o.Material.E, G: o.Material.G, A: s.A, J: s.J, Iy: s.Iy, Iz: s.Iz, Ay: s.Ay, Az: s.Az, Offset: o.Offset}
	if s.UnitWidth {
		p.A *= width
		p.J *= width
		p.Iy *= width
		p.Iz *= width
		p.Ay *= width
		p.Az *= width
	}
	return
}

// Set holds the members assigned to each category
type Set map[Category]*Member

// Assign assigns a member to a category
func (o Set) Assign(c Category, mem *Member) error {
	if !c.Valid() {
		return chk.Err("category %q is invalid", c)
	}
	if mem == nil {
		return chk.Err("cannot assign nil member to category %q", c)
	}
	if old, ok := o[c]; ok {
		return chk.Err("category %q already has member %q", c, old.Name)
	}
	o[c] = mem
	return nil
}
