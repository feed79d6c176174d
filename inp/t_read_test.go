// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gogrillage/dist"
	"github.com/cpmech/gogrillage/fem"
	"github.com/cpmech/gogrillage/grid"
	"github.com/cpmech/gogrillage/member"
	"github.com/cpmech/gogrillage/mesh"
	"github.com/cpmech/gogrillage/out"
)

func Test_deck01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("deck01. json deck")

	deck, err := ReadDeck("data/deck01.json")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.String(tst, deck.Key, "deck01")
	chk.String(tst, deck.Backend, "frame")
	if deck.Mode() != dist.Hermite {
		tst.Errorf("distribution mode must be hermite\n")
	}

	// mesh
	opts, err := deck.MeshOptions()
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	if opts.Type != grid.Oblique {
		tst.Errorf("mesh type %q is incorrect\n", opts.Type)
	}
	chk.Int(tst, "decimals", opts.Decimals, 3)
	msh, err := mesh.Generate(opts)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	io.Pforan("%v", msh)
	chk.Int(tst, "nnodes", len(msh.Nodes), 25)

	// members
	set, err := deck.MemberSet()
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Int(tst, "nmembers", len(set), 5)
	edge := set[member.EdgeBeam]
	chk.Float64(tst, "offset", 1e-15, edge.Offset, 0.5)
	chk.Float64(tst, "A", 1e-15, edge.Section.A, 0.5)
	chk.Float64(tst, "Iz", 1e-15, edge.Section.Iz, 0.5/12.0)
	chk.String(tst, edge.Material.Code, "AS5100")
	if !set[member.TransverseSlab].Section.UnitWidth {
		tst.Errorf("slab section must be given per unit width\n")
	}

	// loads
	cases, err := deck.LoadCases()
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Int(tst, "ncases", len(cases), 2)
	chk.Float64(tst, "point factor", 1e-15, cases[0].Factor, 1)
	chk.Float64(tst, "lane total", 1e-12, cases[1].Total(), -105)
	mvs, err := deck.MovingLoads()
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Int(tst, "nmoving", len(mvs), 1)
	mcases, err := mvs[0].Cases()
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	names := make([]string, len(mcases))
	for k, c := range mcases {
		names[k] = c.Name
		chk.Float64(tst, "truck total", 1e-15, c.Total(), -100)
	}
	chk.Strings(tst, "names", names, []string{"truck_0", "truck_1", "truck_2", "truck_3", "truck_4"})
	chk.Int(tst, "ncombs", len(deck.Combs), 1)
	chk.Float64(tst, "uls lane", 1e-15, deck.Combs[0].Factors["lane"], 1.5)
}

func Test_deck02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("deck02. yaml deck analysed with the script backend")

	deck, err := ReadDeck("data/deck02.yaml")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.String(tst, deck.Backend, "script")
	if deck.Mode() != dist.Linear {
		tst.Errorf("distribution mode must be linear\n")
	}
	opts, err := deck.MeshOptions()
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Float64(tst, "skew", 1e-15, opts.SkewA, 42)
	chk.Int(tst, "nfix", len(opts.Fix), 2)
	fix := opts.Fix[1]
	chk.Ints(tst, "fix(1)", fix[:], []int{1, 1, 1, 0, 0, 0})
	msh, err := mesh.Generate(opts)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Int(tst, "nnodes", len(msh.Nodes), 9*7)

	set, err := deck.MemberSet()
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Int(tst, "nmembers", len(set), len(member.Categories))
	beam := set[member.InteriorMainBeam]
	chk.Float64(tst, "G", 1e-8, beam.Material.G, 200e6/2.6)
	if beam.Section.J <= 0 {
		tst.Errorf("torsional constant must be positive\n")
	}

	// model and analysis
	model := fem.NewModel(msh, deck.Mode())
	model.Members = set
	var buf bytes.Buffer
	backend, err := fem.NewBackend(deck.Backend, &buf)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	analysis, err := fem.NewAnalysis(model, backend)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}

	cases, err := deck.LoadCases()
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Float64(tst, "nodal total", 1e-15, cases[0].Total(), -10)
	if err = analysis.Run(cases...); err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	mvs, err := deck.MovingLoads()
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	if !mvs[0].Path.IsArc {
		tst.Errorf("path must be an arc\n")
	}
	names, err := analysis.RunMoving(mvs[0])
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Strings(tst, "moving cases", names, []string{"bend_0", "bend_1", "bend_2"})
	chk.Int(tst, "skipped", len(analysis.Skipped), 0)

	// script
	txt := buf.String()
	io.Pforan("%s\n", txt)
	chk.Int(tst, "nodes", strings.Count(txt, "ops.node("), len(msh.Nodes))
	chk.Int(tst, "elements", strings.Count(txt, "ops.element("), len(msh.Elems))
	chk.Int(tst, "analyses", strings.Count(txt, "ops.analyze(1)"), 4)
	if !strings.Contains(txt, "ops.load(3, *[0, -10, 0, 0, 0, 0])") {
		tst.Errorf("nodal load is missing\n")
	}

	// listing
	var lst bytes.Buffer
	out.Dump(&lst, msh, model.Cats)
	for _, c := range member.Categories {
		if !strings.Contains(lst.String(), io.Sf("# %s (", c)) {
			tst.Errorf("listing must contain category %q\n", c)
		}
	}
}

func Test_deck03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("deck03. invalid decks")

	_, err := ReadDeck("data/bad01.json")
	if err == nil {
		tst.Errorf("invalid deck must fail\n")
		return
	}
	io.Pforan("%v\n", err)
	for _, field := range []string{"Deck.Dist", "Deck.Mesh.LongDim", "Deck.Mesh.NumLongGrid"} {
		if !strings.Contains(err.Error(), field) {
			tst.Errorf("error message must mention %q\n", field)
		}
	}

	deck, err := ReadDeck("data/bad02.json")
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	if _, err = deck.MemberSet(); err == nil {
		tst.Errorf("member with missing material must fail\n")
	}

	if _, err = ReadDeck("data/missing.json"); err == nil {
		tst.Errorf("missing file must fail\n")
	}

	// repeated case
	deck, _ = ReadDeck("data/deck01.json")
	deck.Cases = append(deck.Cases, deck.Cases[0])
	if err = deck.Validate(); err == nil {
		tst.Errorf("repeated load case must fail\n")
	}

	// invalid loads
	ld := &LoadData{Name: "p", Kind: "patch", Verts: [][3]float64{{0, 0, 1}, {0, 1, 1}, {1, 1, 1}, {1, 0, 1}}}
	if _, err = ld.Load(); err == nil {
		tst.Errorf("clockwise patch must fail\n")
	}
	ld = &LoadData{Name: "p", Kind: "point"}
	if _, err = ld.Load(); err == nil {
		tst.Errorf("point load without vertex must fail\n")
	}
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}
