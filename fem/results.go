// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// DispComps holds the names of node (displacement) components
var DispComps = []string{"dx", "dy", "dz", "theta_x", "theta_y", "theta_z"}

// ForceComps holds the names of element end force components; e.g. "Vy_i", "Mz_j"
var ForceComps []string

// compIndex maps component names to indices in Response arrays
var compIndex = make(map[string]int)

func init() {
	for k, c := range DispComps {
		compIndex[c] = k
	}
	for e, end := range []string{"_i", "_j"} {
		for k, c := range []string{"Vx", "Vy", "Vz", "Mx", "My", "Mz"} {
			ForceComps = append(ForceComps, c+end)
			compIndex[c+end] = 6*e + k
		}
	}
}

// IsDisp tells whether comp is a node (displacement) component
func IsDisp(comp string) bool {
	for _, c := range DispComps {
		if c == comp {
			return true
		}
	}
	return false
}

// Results holds the results of all load cases, keyed by (case, tag, component)
type Results struct {
	Cases []string // names of cases in solution order

	disp  map[string]map[int][6]float64  // case => node => displacements
	force map[string]map[int][12]float64 // case => element => end forces
}

// NewResults returns a new results structure
func NewResults() *Results {
	return &Results{disp: make(map[string]map[int][6]float64), force: make(map[string]map[int][12]float64)}
}

// Has tells whether results of a case are available
func (o *Results) Has(name string) bool {
	_, ok := o.disp[name]
	return ok
}

// Store stores the response of a case
func (o *Results) Store(name string, r *Response) {
	if !o.Has(name) {
		o.Cases = append(o.Cases, name)
	}
	o.disp[name] = r.Disp
	o.force[name] = r.Force
}

// Get returns a result component of a node (displacements) or element (forces)
func (o *Results) Get(name string, tag int, comp string) (float64, error) {
	k, ok := compIndex[comp]
	if !ok {
		return 0, chk.Err("result component %q is invalid", comp)
	}
	if !o.Has(name) {
		return 0, chk.Err("cannot find results of load case %q", name)
	}
	if IsDisp(comp) {
		d, ok := o.disp[name][tag]
		if !ok {
			return 0, chk.Err("load case %q: cannot find node %d", name, tag)
		}
		return d[k], nil
	}
	f, ok := o.force[name][tag]
	if !ok {
		return 0, chk.Err("load case %q: cannot find element %d", name, tag)
	}
	return f[k], nil
}

// Envelope returns the minimum and maximum of a component over all cases, and the cases where
// they occur
func (o *Results) Envelope(tag int, comp string) (min, max float64, cmin, cmax string, err error) {
	if len(o.Cases) == 0 {
		return 0, 0, "", "", chk.Err("there are no results")
	}
	min, max = math.Inf(1), math.Inf(-1)
	for _, name := range o.Cases {
		var v float64
		v, err = o.Get(name, tag, comp)
		if err != nil {
			return
		}
		if v < min {
			min, cmin = v, name
		}
		if v > max {
			max, cmax = v, name
		}
	}
	return
}

// Combine creates a new case as the linear combination of existing ones: Σ factor · case
func (o *Results) Combine(name string, factors map[string]float64) error {
	if o.Has(name) {
		return chk.Err("load case %q already exists", name)
	}
	if len(factors) == 0 {
		return chk.Err("combination %q requires at least one load case", name)
	}
	var names []string
	for c := range factors {
		if !o.Has(c) {
			return chk.Err("combination %q: cannot find results of load case %q", name, c)
		}
		names = append(names, c)
	}
	sort.Strings(names)
	res := &Response{Disp: make(map[int][6]float64), Force: make(map[int][12]float64)}
	for _, c := range names {
		α := factors[c]
		for tag, d := range o.disp[c] {
			cur := res.Disp[tag]
			for k := range cur {
				cur[k] += α * d[k]
			}
			res.Disp[tag] = cur
		}
		for tag, f := range o.force[c] {
			cur := res.Force[tag]
			for k := range cur {
				cur[k] += α * f[k]
			}
			res.Force[tag] = cur
		}
	}
	o.Store(name, res)
	return nil
}
