// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package member

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gogrillage/ana"
	"github.com/cpmech/gogrillage/grid"
	"github.com/cpmech/gogrillage/mesh"
)

func Test_categories01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("categories01. standard categories of a skew orthogonal deck")

	m, err := mesh.Generate(mesh.Options{Options: grid.Options{LongDim: 10, Width: 7, SkewA: -42, SkewB: -42,
		NumLongGrid: 7, NumTransGrid: 9, EdgeDistA: 1, EdgeDistB: 1, Type: grid.Ortho}})
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	cats := Categorize(m)
	for _, c := range Categories {
		io.Pforan("%-22s : %d elements\n", c, len(cats[c]))
		if len(cats[c]) == 0 {
			tst.Errorf("category %q must not be empty\n", c)
		}
	}
	chk.Int(tst, "edge beams", len(cats[EdgeBeam]), 16)
	chk.Int(tst, "exterior 1", len(cats[ExteriorMainBeam1]), 8)
	chk.Int(tst, "interior", len(cats[InteriorMainBeam]), 24)
	chk.Int(tst, "exterior 2", len(cats[ExteriorMainBeam2]), 8)
	chk.Int(tst, "start edge", len(cats[StartEdge]), 6)
	chk.Int(tst, "end edge", len(cats[EndEdge]), 6)
	chk.Int(tst, "slab", len(cats[TransverseSlab]), 48)

	// every element belongs to exactly one category
	total := 0
	for _, tags := range cats {
		total += len(tags)
	}
	chk.Int(tst, "total", total, len(m.Elems))

	// tributary width of an interior beam
	e := m.Elem(cats[InteriorMainBeam][0])
	chk.Float64(tst, "width", 1e-15, Width(m, e), 1.25)
	if Of(m, e) != InteriorMainBeam {
		tst.Errorf("category of element %d is incorrect\n", e.Tag)
	}
}

func Test_categories02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("categories02. uniform spacing")

	m, err := mesh.Generate(mesh.Options{Options: grid.Options{LongDim: 10, Width: 6, SkewA: 0, SkewB: 0,
		NumLongGrid: 4, NumTransGrid: 5, Type: grid.Oblique}})
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	long := LongCategories(m)
	chk.Strings(tst, "categories", []string{string(long[0]), string(long[1]), string(long[2]), string(long[3])},
		[]string{"edge_beam", "interior_main_beam", "interior_main_beam", "edge_beam"})
	cats := Categorize(m)
	chk.Int(tst, "start edge", len(cats[StartEdge]), 3)
	chk.Int(tst, "end edge", len(cats[EndEdge]), 3)
	chk.Int(tst, "slab", len(cats[TransverseSlab]), 9)
}

func Test_members01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("members01. materials, sections and members")

	conc, err := NewMaterial(Concrete, 30e6, 0.2, 2.4)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Float64(tst, "G", 1e-9, conc.G, 12.5e6)

	if _, err = NewMaterial("timber", 1, 0.2, 0); err == nil {
		tst.Errorf("unknown material kind must fail\n")
	}
	if _, err = NewMaterial(Steel, 200e6, 0.5, 7.85); err == nil {
		tst.Errorf("ν = 0.5 must fail\n")
	}

	slab, err := NewSection(0.2, 1e-3, 1e-3, 6.67e-4, true)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	if _, err = NewSection(0, 1, 1, 1, false); err == nil {
		tst.Errorf("zero area must fail\n")
	}

	mem, err := NewMember("slab", conc, slab)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	p := mem.Props(2.5)
	chk.Float64(tst, "A", 1e-15, p.A, 0.5)
	chk.Float64(tst, "Iz", 1e-15, p.Iz, 6.67e-4*2.5)
	chk.Float64(tst, "E", 1e-15, p.E, 30e6)

	var cs ana.CrossSection
	if err = cs.Init("rectangle", 0.5, 1.0, 0, 0, 0); err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	beam, _ := NewMember("beam", conc, SectionFromCross(&cs, false))
	p = beam.Props(2.5)
	chk.Float64(tst, "A", 1e-15, p.A, 0.5)
	chk.Float64(tst, "Iz", 1e-15, p.Iz, 0.5/12)

	set := make(Set)
	if err = set.Assign(TransverseSlab, mem); err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	if err = set.Assign(TransverseSlab, beam); err == nil {
		tst.Errorf("duplicate category must fail\n")
	}
	if err = set.Assign("parapet", beam); err == nil {
		tst.Errorf("unknown category must fail\n")
	}
	if _, err = NewMember("none", nil, slab); err == nil {
		tst.Errorf("member without material must fail\n")
	}
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}
