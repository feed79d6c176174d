// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape structures/routines used to map points of the deck onto grid cells
package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// constants
const (
	MINDET     = 1.0e-14 // minimum determinant allowed for dxdR
	INVMAP_TOL = 1.0e-10 // tolerance for inverse mapping function
	INVMAP_NIT = 25      // maximum number of iterations for inverse mapping
)

// ShpFunc is the shape functions callback function
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool)

// Shape holds geometry data
type Shape struct {

	// geometry
	Type      string      // name; e.g. "qua4"
	Func      ShpFunc     // shape/derivs function callback function
	Gndim     int         // geometry of shape; always 2 here
	Nverts    int         // number of vertices in cell; e.g. "qua8" => 8
	NatCoords [][]float64 // natural coordinates [gndim][nverts]

	// scratchpad
	S    []float64   // [nverts] shape functions
	J    float64     // Jacobian: determinant of dxdr
	DSdR [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
	DxdR [][]float64 // [gndim][gndim] derivatives of real coordinates w.r.t natural coordinates
	DRdx [][]float64 // [gndim][gndim] dRdx == inverse(dxdR)
}

// factory of geometries
var factory = map[string]*Shape{}

// register adds a new shape to the factory
func register(typ string, fcn ShpFunc, natCoords [][]float64) {
	if _, ok := factory[typ]; ok {
		chk.Panic("cannot register shape %q twice", typ)
	}
	nverts := len(natCoords[0])
	factory[typ] = &Shape{
		Type:      typ,
		Func:      fcn,
		Gndim:     2,
		Nverts:    nverts,
		NatCoords: natCoords,
	}
}

// Get returns a new shape structure with its own scratchpad. Returns nil if geoType is not available.
func Get(geoType string) *Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	return s.GetCopy()
}

// GetCopy returns a new copy of this shape structure
func (o Shape) GetCopy() *Shape {
	p := &Shape{
		Type:      o.Type,
		Func:      o.Func,
		Gndim:     o.Gndim,
		Nverts:    o.Nverts,
		NatCoords: o.NatCoords,
	}
	p.S = make([]float64, o.Nverts)
	p.DSdR = utl.Alloc(o.Nverts, o.Gndim)
	p.DxdR = utl.Alloc(o.Gndim, o.Gndim)
	p.DRdx = utl.Alloc(o.Gndim, o.Gndim)
	return p
}

// RealCoords returns the real coordinates (y) of a point with natural coordinates r
//  x -- [2][nverts] coordinates matrix of cell
func (o *Shape) RealCoords(x [][]float64, r []float64) (y []float64) {
	o.Func(o.S, o.DSdR, r, false)
	y = make([]float64, len(x))
	for i := 0; i < len(x); i++ {
		for m := 0; m < o.Nverts; m++ {
			y[i] += o.S[m] * x[i][m]
		}
	}
	return
}

// Interp interpolates nodal values v at natural coordinates r
func (o *Shape) Interp(v []float64, r []float64) (res float64) {
	o.Func(o.S, o.DSdR, r, false)
	for m := 0; m < o.Nverts; m++ {
		res += o.S[m] * v[m]
	}
	return
}

// InvMap computes the natural coordinates r, given the real coordinate y
//  Input:
//   y[2]         -- are the 2D point coordinates
//   x[2][nverts] -- coordinates matrix of cell
//  Output:
//   r[2] -- are the natural coordinates of given point
func (o *Shape) InvMap(r, y []float64, x [][]float64) (err error) {

	var δRnorm float64
	e := make([]float64, 2)  // residual
	δr := make([]float64, 2) // corrector
	r[0], r[1] = 0, 0        // first trial
	if o.Type == "tri3" {
		r[0], r[1] = 1.0/3.0, 1.0/3.0
	}
	it := 0
	for it = 0; it < INVMAP_NIT; it++ {

		// shape functions and derivatives
		o.Func(o.S, o.DSdR, r, true)

		// residual: e = y - x * S
		for i := 0; i < 2; i++ {
			e[i] = y[i]
			for j := 0; j < o.Nverts; j++ {
				e[i] -= x[i][j] * o.S[j]
			}
		}

		// Jmat == dxdR = x * dSdR;
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				o.DxdR[i][j] = 0.0
				for k := 0; k < o.Nverts; k++ {
					o.DxdR[i][j] += x[i][k] * o.DSdR[k][j]
				}
			}
		}

		// Jimat == dRdx = Jmat.inverse();
		o.J, err = inv2(o.DRdx, o.DxdR)
		if err != nil {
			return
		}

		// corrector: dR = Jimat * e
		δRnorm = 0.0
		for i := 0; i < 2; i++ {
			δr[i] = o.DRdx[i][0]*e[0] + o.DRdx[i][1]*e[1]
			r[i] += δr[i]
			δRnorm += δr[i] * δr[i]
		}
		if math.Sqrt(δRnorm) < INVMAP_TOL {
			break
		}
	}

	// check
	if it == INVMAP_NIT {
		return chk.Err("InvMap did not converge after %d iterations. |δr| = %g", it, math.Sqrt(δRnorm))
	}
	return
}

// inv2 computes the inverse of a 2×2 matrix
func inv2(ai, a [][]float64) (det float64, err error) {
	det = a[0][0]*a[1][1] - a[0][1]*a[1][0]
	if math.Abs(det) < MINDET {
		return 0, chk.Err("cannot invert 2x2 matrix with determinant = %g", det)
	}
	ai[0][0] = a[1][1] / det
	ai[0][1] = -a[0][1] / det
	ai[1][0] = -a[1][0] / det
	ai[1][1] = a[0][0] / det
	return
}

// AreaCoords returns the area (barycentric) coordinates of point p with respect to the triangle
// defined by x[2][3]. The coordinates sum to one and are all within [0,1] if p is inside.
func AreaCoords(p []float64, x [][]float64) (L [3]float64) {
	x0, z0 := x[0][0], x[1][0]
	x1, z1 := x[0][1], x[1][1]
	x2, z2 := x[0][2], x[1][2]
	A2 := (x1-x0)*(z2-z0) - (x2-x0)*(z1-z0)
	if A2 == 0 {
		L[0], L[1], L[2] = 1.0/3.0, 1.0/3.0, 1.0/3.0
		return
	}
	L[1] = ((p[0]-x0)*(z2-z0) - (x2-x0)*(p[1]-z0)) / A2
	L[2] = ((x1-x0)*(p[1]-z0) - (p[0]-x0)*(z1-z0)) / A2
	L[0] = 1.0 - L[1] - L[2]
	return
}
