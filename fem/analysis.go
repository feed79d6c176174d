// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gogrillage/load"
)

// Analysis runs load cases on a model built on a backend
type Analysis struct {
	Model   *Model              // model
	Backend Backend             // structural engine
	Results *Results            // results of all solved cases
	Skipped map[string][]string // case name => names of loads that fell outside the deck
	Verbose bool                // show messages
}

// NewAnalysis builds the model on the backend and returns a new analysis
func NewAnalysis(m *Model, b Backend) (o *Analysis, err error) {
	if err = m.Build(b); err != nil {
		return nil, chk.Err("cannot build model:\n%v", err)
	}
	return &Analysis{Model: m, Backend: b, Results: NewResults(), Skipped: make(map[string][]string), Verbose: m.Verbose}, nil
}

// Run distributes the loads of each case onto the nodes, solves and stores the results. Loads
// outside the deck are skipped with a message; cases without any load on the deck are not solved.
func (o *Analysis) Run(cases ...*load.Case) (err error) {
	for _, c := range cases {
		if o.Results.Has(c.Name) {
			return chk.Err("load case %q has already been analysed", c.Name)
		}
		forces, skipped := o.Model.Dist.Case(c)
		if len(skipped) > 0 {
			o.Skipped[c.Name] = skipped
			io.Pfred("load case %q: loads %v are outside the deck and were skipped\n", c.Name, skipped)
		}
		if len(forces) == 0 {
			continue
		}
		o.Backend.ClearLoads()
		for _, f := range forces {
			if err = o.Backend.Load(f.Node, f.F); err != nil {
				return chk.Err("load case %q:\n%v", c.Name, err)
			}
		}
		var res *Response
		res, err = o.Backend.Solve()
		if err != nil {
			return chk.Err("load case %q:\n%v", c.Name, err)
		}
		o.Results.Store(c.Name, res)
		if o.Verbose {
			io.Pf("> load case %q solved\n", c.Name)
		}
	}
	return
}

// RunMoving runs one case per position of a moving load and returns the case names
func (o *Analysis) RunMoving(mv *load.Moving) (names []string, err error) {
	cases, err := mv.Cases()
	if err != nil {
		return
	}
	if err = o.Run(cases...); err != nil {
		return
	}
	for _, c := range cases {
		names = append(names, c.Name)
	}
	return
}
