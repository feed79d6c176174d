// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package load

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gogrillage/geo"
)

// Compound holds a group of loads defined in local coordinates and placed on the deck by a shift
type Compound struct {
	Label string    // name
	Loads []Load    // loads in local coordinates
	Shift geo.Point // position of the local origin in the deck
}

// NewCompound returns a new compound load
func NewCompound(name string, loads ...Load) *Compound {
	return &Compound{Label: name, Loads: loads}
}

// SetGlobal sets the position of the local origin in the deck
func (o *Compound) SetGlobal(origin geo.Point) { o.Shift = origin }

func (o *Compound) Kind() Kind   { return CompoundKind }
func (o *Compound) Name() string { return o.Label }

// Translate returns a copy with the origin shifted
func (o *Compound) Translate(dx, dz float64) Load {
	return &Compound{o.Label, o.Loads, o.Shift.Add(geo.Point{X: dx, Z: dz})}
}

// Scale returns a copy with all magnitudes multiplied by f
func (o *Compound) Scale(f float64) Load {
	res := &Compound{Label: o.Label, Shift: o.Shift}
	for _, l := range o.Loads {
		res.Loads = append(res.Loads, l.Scale(f))
	}
	return res
}

// Total returns the resultant force
func (o *Compound) Total() (res float64) {
	for _, l := range o.Loads {
		res += l.Total()
	}
	return
}

// Global returns the loads in deck coordinates. Nested compounds are flattened.
func (o *Compound) Global() (res []Load) {
	for _, l := range o.Loads {
		g := l.Translate(o.Shift.X, o.Shift.Z)
		if c, ok := g.(*Compound); ok {
			res = append(res, c.Global()...)
			continue
		}
		res = append(res, g)
	}
	return
}

// Case holds loads applied together and multiplied by a factor
type Case struct {
	Name   string  // name of load case
	Loads  []Load  // loads
	Factor float64 // multiplier
}

// NewCase returns a new load case with unit factor
func NewCase(name string, loads ...Load) *Case {
	return &Case{Name: name, Loads: loads, Factor: 1}
}

// Add appends loads to the case
func (o *Case) Add(loads ...Load) { o.Loads = append(o.Loads, loads...) }

// Global returns the factored loads in deck coordinates with compounds flattened
func (o *Case) Global() (res []Load) {
	for _, l := range o.Loads {
		s := l.Scale(o.Factor)
		if c, ok := s.(*Compound); ok {
			res = append(res, c.Global()...)
			continue
		}
		res = append(res, s)
	}
	return
}

// Total returns the factored resultant force
func (o *Case) Total() (res float64) {
	for _, l := range o.Loads {
		res += l.Total()
	}
	return res * o.Factor
}

// Path holds the trajectory of a moving load: a polyline through 2 or more points, or a circular
// arc through 3 points
type Path struct {
	Pts   []geo.Point // defining points
	IsArc bool        // arc through Pts[0], Pts[1] and Pts[2]
	arc   geo.Arc     // arc when IsArc
	cum   []float64   // cumulated length at each polyline point
}

// NewPath returns a polyline path
func NewPath(pts ...geo.Point) (o *Path, err error) {
	if len(pts) < 2 {
		return nil, chk.Err("path requires at least 2 points. %d is invalid", len(pts))
	}
	o = &Path{Pts: pts, cum: make([]float64, len(pts))}
	for i := 1; i < len(pts); i++ {
		o.cum[i] = o.cum[i-1] + pts[i].Dist(pts[i-1])
	}
	if o.Length() == 0 {
		return nil, chk.Err("path has zero length")
	}
	return
}

// NewArcPath returns a circular path from a to c through b
func NewArcPath(a, b, c geo.Point) (o *Path, err error) {
	arc, err := geo.ArcThrough(a, b, c)
	if err != nil {
		return nil, chk.Err("cannot create arc path:\n%v", err)
	}
	return &Path{Pts: []geo.Point{a, b, c}, IsArc: true, arc: arc}, nil
}

// Length returns the length of the path
func (o *Path) Length() float64 {
	if o.IsArc {
		return o.arc.Length()
	}
	return o.cum[len(o.cum)-1]
}

// At returns the point at fraction t ∈ [0,1] of the path length
func (o *Path) At(t float64) geo.Point {
	if o.IsArc {
		return o.arc.At(t)
	}
	s := t * o.Length()
	for i := 1; i < len(o.Pts); i++ {
		if s <= o.cum[i] || i == len(o.Pts)-1 {
			l := o.cum[i] - o.cum[i-1]
			if l == 0 {
				return o.Pts[i]
			}
			return geo.Lerp(o.Pts[i-1], o.Pts[i], (s-o.cum[i-1])/l)
		}
	}
	return o.Pts[len(o.Pts)-1]
}

// Points returns n equally spaced points along the path including both ends. n = 1 gives the start.
func (o *Path) Points(n int) (res []geo.Point) {
	if n < 1 {
		return
	}
	res = make([]geo.Point, n)
	res[0] = o.Pts[0]
	for k := 1; k < n; k++ {
		res[k] = o.At(float64(k) / float64(n-1))
	}
	return
}

// Moving holds a load (or compound load) moving along a path in N increments
type Moving struct {
	Name string // name
	Load Load   // load at the start of the path
	Path *Path  // trajectory
	N    int    // number of positions
}

// Cases returns one load case per position; the load is rigidly translated from the path start
func (o *Moving) Cases() (cases []*Case, err error) {
	if o.Load == nil || o.Path == nil {
		return nil, chk.Err("moving load %q requires load and path", o.Name)
	}
	if o.N < 1 {
		return nil, chk.Err("moving load %q requires at least one increment. N=%d is invalid", o.Name, o.N)
	}
	start := o.Path.Pts[0]
	for k, p := range o.Path.Points(o.N) {
		d := p.Sub(start)
		cases = append(cases, NewCase(io.Sf("%s_%d", o.Name, k), o.Load.Translate(d.X, d.Z)))
	}
	return
}
