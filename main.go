// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gogrillage/fem"
	"github.com/cpmech/gogrillage/inp"
	"github.com/cpmech/gogrillage/mesh"
	"github.com/cpmech/gogrillage/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.Pfred("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".json", true)
	verbose := io.ArgToBool(1, true)
	dump := io.ArgToBool(2, false)

	// message
	if verbose {
		io.Pf("\nGogrillage -- grillage models of bridge decks\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"deck filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"dump listing", "dump", dump,
		))
	}

	// input data
	deck, err := inp.ReadDeck(fnamepath)
	if err != nil {
		chk.Panic("%v", err)
	}
	opts, err := deck.MeshOptions()
	if err != nil {
		chk.Panic("%v", err)
	}
	set, err := deck.MemberSet()
	if err != nil {
		chk.Panic("%v", err)
	}

	// mesh and model
	msh, err := mesh.Generate(opts)
	if err != nil {
		chk.Panic("%v", err)
	}
	if verbose {
		io.Pf("%v\n", msh)
	}
	model := fem.NewModel(msh, deck.Mode())
	model.Members = set
	model.Verbose = verbose

	// analysis
	var buf bytes.Buffer
	backend, err := fem.NewBackend(deck.Backend, &buf)
	if err != nil {
		chk.Panic("%v", err)
	}
	analysis, err := fem.NewAnalysis(model, backend)
	if err != nil {
		chk.Panic("cannot build model:\n%v", err)
	}
	analysis.Verbose = verbose
	run(analysis, deck)

	// output
	if buf.Len() > 0 {
		io.Pf("%s\n", buf.String())
	}
	if dump {
		var lst bytes.Buffer
		out.Dump(&lst, msh, model.Cats)
		io.Pf("%s\n", lst.String())
	}
	if verbose {
		summary(analysis)
	}
}

// run runs static cases, moving loads and combinations
func run(analysis *fem.Analysis, deck *inp.Deck) {
	cases, err := deck.LoadCases()
	if err != nil {
		chk.Panic("%v", err)
	}
	if err = analysis.Run(cases...); err != nil {
		chk.Panic("%v", err)
	}
	mvs, err := deck.MovingLoads()
	if err != nil {
		chk.Panic("%v", err)
	}
	for _, mv := range mvs {
		if _, err = analysis.RunMoving(mv); err != nil {
			chk.Panic("%v", err)
		}
	}
	for _, c := range deck.Combs {
		if err = analysis.Results.Combine(c.Name, c.Factors); err != nil {
			chk.Panic("%v", err)
		}
	}
}

// summary prints the largest downward deflection of each case
func summary(analysis *fem.Analysis) {
	res := analysis.Results
	nodes := analysis.Model.Mesh.Nodes
	io.Pf("%-16s%14s%8s\n", "case", "min(dy)", "node")
	for _, name := range res.Cases {
		dymin, node := 0.0, 0
		for _, n := range nodes {
			dy, err := res.Get(name, n.Tag, "dy")
			if err != nil {
				break
			}
			if dy < dymin {
				dymin, node = dy, n.Tag
			}
		}
		io.Pf("%-16s%14.6e%8d\n", name, dymin, node)
	}
	for name, skipped := range analysis.Skipped {
		io.Pfyel("%s: skipped loads %v\n", name, skipped)
	}
}
