// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geo implements plan geometry routines (points, lines, arcs, polygons) used by the
// mesh generator and by the load distribution engine
//
//  Conventions:
//   X -- longitudinal direction (along the span)
//   Z -- transverse direction (across the width)
//   counter-clockwise (CCW) means positive signed area in the X-Z plane
package geo

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// TOL is the default absolute tolerance used to compare coordinates
var TOL = 1e-9

// Point holds plan coordinates
type Point struct {
	X float64 // longitudinal coordinate
	Z float64 // transverse coordinate
}

// Add returns p + q
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Z + q.Z} }

// Sub returns p - q
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Z - q.Z} }

// Scale returns s * p
func (p Point) Scale(s float64) Point { return Point{s * p.X, s * p.Z} }

// Dot returns the dot product p・q
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Z*q.Z }

// Cross returns the z-component of the cross product p × q
func (p Point) Cross(q Point) float64 { return p.X*q.Z - p.Z*q.X }

// Norm returns the Euclidean norm of p
func (p Point) Norm() float64 { return math.Hypot(p.X, p.Z) }

// Dist returns the distance between p and q
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Z-q.Z) }

// Near tells whether p and q coincide within tol
func (p Point) Near(q Point, tol float64) bool { return p.Dist(q) <= tol }

// Lerp returns a + t * (b - a)
func Lerp(a, b Point, t float64) Point {
	return Point{a.X + t*(b.X-a.X), a.Z + t*(b.Z-a.Z)}
}

// Round rounds v to the given number of decimal places. Negative zero is returned as zero.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	r := math.Round(v*p) / p
	if r == 0 {
		return 0
	}
	return r
}

// Param returns the parameter t of the projection of p onto the line a→b, such that the
// projected point is Lerp(a, b, t)
func Param(p, a, b Point) float64 {
	d := b.Sub(a)
	dd := d.Dot(d)
	if dd == 0 {
		return 0
	}
	return p.Sub(a).Dot(d) / dd
}

// DistSegment returns the distance from p to the segment a-b
func DistSegment(p, a, b Point) float64 {
	t := math.Max(0, math.Min(1, Param(p, a, b)))
	return p.Dist(Lerp(a, b, t))
}

// polygons ////////////////////////////////////////////////////////////////////////////////////////

// ring converts a polygon into a closed orb ring
func ring(poly []Point) orb.Ring {
	r := make(orb.Ring, len(poly), len(poly)+1)
	for i, p := range poly {
		r[i] = orb.Point{p.X, p.Z}
	}
	if len(r) > 0 && r[0] != r[len(r)-1] {
		r = append(r, r[0])
	}
	return r
}

// SignedArea returns the signed area of a polygon (positive if CCW)
func SignedArea(poly []Point) float64 {
	if len(poly) < 3 {
		return 0
	}
	r := ring(poly)
	return float64(r.Orientation()) * planar.Area(r)
}

// Area returns the (unsigned) area of a polygon
func Area(poly []Point) float64 {
	if len(poly) < 3 {
		return 0
	}
	return planar.Area(ring(poly))
}

// Bounds returns the bounding box of a set of points
func Bounds(pts []Point) (min, max Point) {
	b := orb.MultiPoint(ring(pts)).Bound()
	return Point{b.Min[0], b.Min[1]}, Point{b.Max[0], b.Max[1]}
}

// Mean returns the average of the given points
func Mean(pts []Point) (c Point) {
	if len(pts) == 0 {
		return
	}
	for _, p := range pts {
		c.X += p.X
		c.Z += p.Z
	}
	n := float64(len(pts))
	return Point{c.X / n, c.Z / n}
}

// Centroid returns the area centroid of a polygon. Degenerate polygons return the vertex average.
func Centroid(poly []Point) Point {
	if len(poly) < 3 {
		return Mean(poly)
	}
	c, a := planar.CentroidArea(ring(poly))
	if math.Abs(a) < TOL*TOL {
		return Mean(poly)
	}
	return Point{c[0], c[1]}
}

// SortCCW sorts points counter-clockwise about their vertex average. The first point is the
// bottom-left one: lowest Z and then lowest X (within tol).
func SortCCW(pts []Point, tol float64) []Point {
	res := make([]Point, len(pts))
	copy(res, pts)
	c := Mean(res)
	sort.SliceStable(res, func(i, j int) bool {
		return math.Atan2(res[i].Z-c.Z, res[i].X-c.X) < math.Atan2(res[j].Z-c.Z, res[j].X-c.X)
	})
	k := BottomLeft(res, tol)
	return append(res[k:], res[:k]...)
}

// BottomLeft returns the index of the bottom-left point: lowest Z and then lowest X (within tol)
func BottomLeft(pts []Point, tol float64) (k int) {
	for i, p := range pts {
		q := pts[k]
		if p.Z < q.Z-tol || (math.Abs(p.Z-q.Z) <= tol && p.X < q.X-tol) {
			k = i
		}
	}
	return
}

// Dedup removes repeated points (within tol) keeping the first occurrence
func Dedup(pts []Point, tol float64) (res []Point) {
	for _, p := range pts {
		found := false
		for _, q := range res {
			if p.Near(q, tol) {
				found = true
				break
			}
		}
		if !found {
			res = append(res, p)
		}
	}
	return
}

// InConvex tells whether p is inside (or on the boundary of) a convex polygon whose vertices are
// sorted counter-clockwise. The test checks that p is never on the right of any edge.
func InConvex(p Point, poly []Point, tol float64) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		e := b.Sub(a)
		l := e.Norm()
		if l == 0 {
			continue
		}
		if e.Cross(p.Sub(a))/l < -tol {
			return false
		}
	}
	return true
}

// OnBoundary tells whether p lies on any edge of the polygon (within tol)
func OnBoundary(p Point, poly []Point, tol float64) bool {
	n := len(poly)
	for i := 0; i < n; i++ {
		if DistSegment(p, poly[i], poly[(i+1)%n]) <= tol {
			return true
		}
	}
	return false
}

// InPolygon tells whether p is inside (or on the boundary of) a simple polygon
func InPolygon(p Point, poly []Point, tol float64) bool {
	if len(poly) < 3 {
		return false
	}
	if OnBoundary(p, poly, tol) {
		return true
	}
	return planar.RingContains(ring(poly), orb.Point{p.X, p.Z})
}
