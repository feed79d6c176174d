// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gogrillage/geo"
)

// constants
const (
	SEARCH_TOL  = 1.0e-9 // step below which SearchX stops
	SEARCH_NIT  = 1000   // maximum number of iterations of SearchX
	SEARCH_STEP = 0.1    // default initial step of SearchX
)

// SweepPath defines the path along which the deck is swept: a straight line through two points
// or an arc through three points. Stations are measured along the path from its first point.
type SweepPath struct {
	Pts  []geo.Point // control points
	Step float64     // initial step of SearchX

	arc   geo.Arc   // curved path
	isArc bool      // curved?
	u     geo.Point // unit direction of straight path
	len   float64   // length between the first and last control points
}

// NewSweepPath returns a new sweep path
func NewSweepPath(pts ...geo.Point) (o *SweepPath, err error) {
	o = &SweepPath{Pts: pts, Step: SEARCH_STEP}
	switch len(pts) {
	case 2:
		d := pts[1].Sub(pts[0])
		o.len = d.Norm()
		if o.len == 0 {
			return nil, chk.Err("sweep path points must not coincide")
		}
		o.u = d.Scale(1.0 / o.len)
	case 3:
		o.arc, err = geo.ArcThrough(pts[0], pts[1], pts[2])
		if err != nil {
			return nil, chk.Err("cannot define curved sweep path:\n%v", err)
		}
		o.isArc = true
		o.len = o.arc.Length()
	default:
		return nil, chk.Err("sweep path requires 2 (straight) or 3 (arc) points. %d is invalid", len(pts))
	}
	return
}

// Length returns the length of the path
func (o *SweepPath) Length() float64 { return o.len }

// Point returns the point on the path at station s
func (o *SweepPath) Point(s float64) geo.Point {
	if o.isArc {
		return o.arc.At(s / o.len)
	}
	return o.Pts[0].Add(o.u.Scale(s))
}

// Tangent returns the unit tangent at station s
func (o *SweepPath) Tangent(s float64) geo.Point {
	if o.isArc {
		return o.arc.Tangent(s / o.len)
	}
	return o.u
}

// Offset returns the point at station s shifted by z along the left normal of the path
func (o *SweepPath) Offset(s, z float64) geo.Point {
	t := o.Tangent(s)
	return o.Point(s).Add(geo.Point{X: -t.Z, Z: t.X}.Scale(z))
}

// SearchX finds the station of the point on the path closest to target by hill-climbing from s0:
// the station is perturbed by ±h while the distance decreases and h is halved otherwise.
// After SEARCH_NIT iterations the last station is returned with converged = false.
func (o *SweepPath) SearchX(target geo.Point, s0 float64) (s float64, converged bool) {
	s, h := s0, o.Step
	d := target.Dist(o.Point(s))
	for it := 0; it < SEARCH_NIT; it++ {
		if h < SEARCH_TOL {
			return s, true
		}
		if dp := target.Dist(o.Point(s + h)); dp < d {
			s, d = s+h, dp
			continue
		}
		if dm := target.Dist(o.Point(s - h)); dm < d {
			s, d = s-h, dm
			continue
		}
		h /= 2.0
	}
	return s, false
}

// Place returns the position of the node at station x and offset z of a skewed column with skew
// tangent t. The column is rotated with the path tangent at x; the node is then moved onto the
// curve at offset z via SearchX.
func (o *SweepPath) Place(x, z, t float64) (p geo.Point, converged bool) {
	u := o.Tangent(x)
	n := geo.Point{X: -u.Z, Z: u.X}
	target := o.Point(x).Add(u.Scale(-z * t)).Add(n.Scale(z))
	s, converged := o.SearchX(target, x-z*t)
	return o.Offset(s, z), converged
}
