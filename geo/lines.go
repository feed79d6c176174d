// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// HitKind defines the kind of intersection between two segments
type HitKind int

const (
	None      HitKind = iota // no intersection
	Proper                   // segments cross at an interior point of both
	Touch                    // intersection at an endpoint of (at least) one segment
	Collinear                // segments overlap along a sub-segment
)

// Hit holds the result of a segment-segment intersection
type Hit struct {
	Kind HitKind
	P    Point // intersection point; start of the overlap if Collinear
	Q    Point // end of the overlap if Collinear; equal to P otherwise
}

// Orientation returns +1 if p→q→r turns counter-clockwise, -1 if clockwise and 0 if the three
// points are collinear. The cross product is scaled by the lengths of the two arms so that tol
// measures a distance.
func Orientation(p, q, r Point, tol float64) int {
	a, b := q.Sub(p), r.Sub(p)
	la, lb := a.Norm(), b.Norm()
	if la <= tol || lb <= tol {
		return 0
	}
	v := a.Cross(b) / math.Max(la, lb)
	if v > tol {
		return 1
	}
	if v < -tol {
		return -1
	}
	return 0
}

// OnSegment tells whether p lies on segment a-b (within tol)
func OnSegment(p, a, b Point, tol float64) bool {
	return DistSegment(p, a, b) <= tol
}

// SegmentIntersect computes the intersection between segments p1-p2 and q1-q2
func SegmentIntersect(p1, p2, q1, q2 Point, tol float64) (res Hit) {
	o1 := Orientation(p1, p2, q1, tol)
	o2 := Orientation(p1, p2, q2, tol)
	o3 := Orientation(q1, q2, p1, tol)
	o4 := Orientation(q1, q2, p2, tol)

	// collinear: find overlap by projecting q onto p1→p2
	if (o1 == 0 && o2 == 0) || (o3 == 0 && o4 == 0) {
		d := p2.Sub(p1)
		l := d.Norm()
		if l <= tol {
			if OnSegment(p1, q1, q2, tol) {
				return Hit{Touch, p1, p1}
			}
			return
		}
		if DistLine(q1, p1, p2) > tol || DistLine(q2, p1, p2) > tol {
			return
		}
		t1, t2 := Param(q1, p1, p2), Param(q2, p1, p2)
		lo := math.Max(0, math.Min(t1, t2))
		hi := math.Min(1, math.Max(t1, t2))
		if (hi-lo)*l > tol {
			return Hit{Collinear, Lerp(p1, p2, lo), Lerp(p1, p2, hi)}
		}
		if (hi-lo)*l >= -tol {
			x := Lerp(p1, p2, lo)
			return Hit{Touch, x, x}
		}
		return
	}

	// general case
	if o1 != o2 && o3 != o4 {
		d, e := p2.Sub(p1), q2.Sub(q1)
		den := d.Cross(e)
		if den == 0 {
			return
		}
		t := q1.Sub(p1).Cross(e) / den
		x := Lerp(p1, p2, t)
		if o1 == 0 || o2 == 0 || o3 == 0 || o4 == 0 {
			return Hit{Touch, x, x}
		}
		return Hit{Proper, x, x}
	}
	return
}

// DistLine returns the distance from p to the infinite line through a and b
func DistLine(p, a, b Point) float64 {
	d := b.Sub(a)
	l := d.Norm()
	if l == 0 {
		return p.Dist(a)
	}
	return math.Abs(d.Cross(p.Sub(a))) / l
}

// Line holds the coefficients of A x + B z = C
type Line struct {
	A, B, C float64
}

// LineThrough returns the line through p and q
func LineThrough(p, q Point) Line {
	a := q.Z - p.Z
	b := p.X - q.X
	return Line{a, b, a*p.X + b*p.Z}
}

// Intersect returns the intersection with another line; false if parallel
func (o Line) Intersect(m Line) (Point, bool) {
	det := o.A*m.B - m.A*o.B
	if math.Abs(det) < 1e-14 {
		return Point{}, false
	}
	return Point{(m.B*o.C - o.B*m.C) / det, (o.A*m.C - m.A*o.C) / det}, true
}

// Z returns z at the given x; NaN for vertical lines
func (o Line) Z(x float64) float64 {
	if o.B == 0 {
		return math.NaN()
	}
	return (o.C - o.A*x) / o.B
}

// Bisector returns the perpendicular bisector of segment p-q
func Bisector(p, q Point) Line {
	m := Lerp(p, q, 0.5)
	d := q.Sub(p)
	return Line{d.X, d.Z, d.X*m.X + d.Z*m.Z}
}

// Circle holds a circle in the plan
type Circle struct {
	C Point   // centre
	R float64 // radius
}

// CircleThrough returns the circle through three non-collinear points
func CircleThrough(a, b, c Point) (o Circle, err error) {
	ctr, ok := Bisector(a, b).Intersect(Bisector(b, c))
	if !ok {
		return o, chk.Err("cannot fit circle through collinear points %v, %v, %v", a, b, c)
	}
	return Circle{ctr, ctr.Dist(a)}, nil
}

// Angle returns the polar angle of p about the centre
func (o Circle) Angle(p Point) float64 {
	return math.Atan2(p.Z-o.C.Z, p.X-o.C.X)
}

// At returns the point at polar angle θ
func (o Circle) At(θ float64) Point {
	return Point{o.C.X + o.R*math.Cos(θ), o.C.Z + o.R*math.Sin(θ)}
}

// Arc holds a circular arc starting at angle T0 and sweeping Sweep radians (positive if CCW)
type Arc struct {
	Circle
	T0    float64
	Sweep float64
}

// ArcThrough returns the arc from a to c passing through b
func ArcThrough(a, b, c Point) (o Arc, err error) {
	o.Circle, err = CircleThrough(a, b, c)
	if err != nil {
		return
	}
	o.T0 = o.Angle(a)
	s := positiveAngle(o.Angle(c) - o.T0)
	sb := positiveAngle(o.Angle(b) - o.T0)
	if sb < s {
		o.Sweep = s
	} else {
		o.Sweep = s - 2*math.Pi
	}
	return
}

// At returns the point at fraction t ∈ [0,1] of the arc
func (o Arc) At(t float64) Point {
	return o.Circle.At(o.T0 + t*o.Sweep)
}

// Tangent returns the unit tangent at fraction t, pointing along the sweep
func (o Arc) Tangent(t float64) Point {
	θ := o.T0 + t*o.Sweep
	s := 1.0
	if o.Sweep < 0 {
		s = -1.0
	}
	return Point{-s * math.Sin(θ), s * math.Cos(θ)}
}

// Length returns the arc length
func (o Arc) Length() float64 {
	return o.R * math.Abs(o.Sweep)
}

// Points returns n+1 points splitting the arc into n chords
func (o Arc) Points(n int) (res []Point) {
	if n < 1 {
		n = 1
	}
	res = make([]Point, n+1)
	for i := 0; i <= n; i++ {
		res[i] = o.At(float64(i) / float64(n))
	}
	return
}

func positiveAngle(θ float64) float64 {
	for θ < 0 {
		θ += 2 * math.Pi
	}
	for θ >= 2*math.Pi {
		θ -= 2 * math.Pi
	}
	return θ
}
