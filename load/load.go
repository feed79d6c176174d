// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package load implements the loads applied on grillage decks
package load

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gogrillage/geo"
	"github.com/cpmech/gogrillage/shp"
)

// constants
const (
	ARC_CHORDS = 20 // number of chords used to discretise curved line loads
)

// Vertex holds the position and magnitude (ordinate) of a load point
type Vertex struct {
	X, Y, Z float64 // coordinates
	P       float64 // magnitude: force (point), force per length (line) or force per area (patch)
}

// Point returns the plan coordinates of the vertex
func (o Vertex) Point() geo.Point { return geo.Point{X: o.X, Z: o.Z} }

// Kind defines the kind of load
type Kind int

// kinds of load
const (
	PointKind Kind = iota
	LineKind
	PatchKind
	NodalKind
	CompoundKind
)

// Load defines the interface of all loads
type Load interface {
	Kind() Kind                    // kind of load
	Name() string                  // name of load
	Translate(dx, dz float64) Load // copy shifted in the plan
	Scale(f float64) Load          // copy with magnitudes multiplied by f
	Total() float64                // resultant vertical force
}

// Point /////////////////////////////////////////////////////////////////////////////////////////////

// Point holds a concentrated load
type Point struct {
	Label string
	V     Vertex
}

// NewPoint returns a new point load
func NewPoint(name string, v Vertex) *Point { return &Point{name, v} }

func (o *Point) Kind() Kind     { return PointKind }
func (o *Point) Name() string   { return o.Label }
func (o *Point) Total() float64 { return o.V.P }
func (o *Point) Scale(f float64) Load {
	v := o.V
	v.P *= f
	return &Point{o.Label, v}
}
func (o *Point) Translate(dx, dz float64) Load {
	v := o.V
	v.X, v.Z = v.X+dx, v.Z+dz
	return &Point{o.Label, v}
}

// Line //////////////////////////////////////////////////////////////////////////////////////////////

// Line holds a line load with linearly varying ordinate: straight between 2 vertices or curved
// through 3 vertices
type Line struct {
	Label string
	V     []Vertex
}

// Segment holds a straight piece of a line load
type Segment struct {
	A, B   geo.Point // end points
	Wa, Wb float64   // ordinates at end points
}

// Length returns the length of the segment
func (o Segment) Length() float64 { return o.A.Dist(o.B) }

// At returns the ordinate at the point of parameter t ∈ [0,1]
func (o Segment) At(t float64) float64 { return o.Wa + t*(o.Wb-o.Wa) }

// NewLine returns a new line load
func NewLine(name string, vs ...Vertex) (o *Line, err error) {
	if len(vs) != 2 && len(vs) != 3 {
		return nil, chk.Err("line load %q requires 2 (straight) or 3 (arc) vertices. %d is invalid", name, len(vs))
	}
	o = &Line{name, vs}
	if _, err = o.chords(); err != nil {
		return nil, chk.Err("line load %q is invalid:\n%v", name, err)
	}
	return
}

func (o *Line) Kind() Kind   { return LineKind }
func (o *Line) Name() string { return o.Label }

// Scale returns a copy with magnitudes multiplied by f
func (o *Line) Scale(f float64) Load {
	vs := append([]Vertex{}, o.V...)
	for i := range vs {
		vs[i].P *= f
	}
	return &Line{o.Label, vs}
}

// Translate returns a copy shifted in the plan
func (o *Line) Translate(dx, dz float64) Load {
	vs := append([]Vertex{}, o.V...)
	for i := range vs {
		vs[i].X += dx
		vs[i].Z += dz
	}
	return &Line{o.Label, vs}
}

// Segments returns the straight segments of the load. Curved loads are split into ARC_CHORDS chords
// with the ordinate varying linearly with the arc length.
func (o *Line) Segments() []Segment {
	segs, _ := o.chords()
	return segs
}

// Total returns the resultant force
func (o *Line) Total() (res float64) {
	for _, s := range o.Segments() {
		res += (s.Wa + s.Wb) / 2.0 * s.Length()
	}
	return
}

func (o *Line) chords() (segs []Segment, err error) {
	a, b := o.V[0], o.V[len(o.V)-1]
	if len(o.V) == 2 {
		if a.Point().Dist(b.Point()) == 0 {
			return nil, chk.Err("line load vertices must not coincide")
		}
		return []Segment{{a.Point(), b.Point(), a.P, b.P}}, nil
	}
	arc, err := geo.ArcThrough(a.Point(), o.V[1].Point(), b.Point())
	if err != nil {
		return
	}
	pts := arc.Points(ARC_CHORDS)
	for i := 0; i < ARC_CHORDS; i++ {
		t0, t1 := float64(i)/ARC_CHORDS, float64(i+1)/ARC_CHORDS
		segs = append(segs, Segment{pts[i], pts[i+1], a.P + t0*(b.P-a.P), a.P + t1*(b.P-a.P)})
	}
	return
}

// Patch /////////////////////////////////////////////////////////////////////////////////////////////

// Patch holds a distributed load over a quadrilateral area defined by 4 corner vertices or 8
// vertices (corners and mid-sides). Vertices are counter-clockwise starting from the bottom-left.
type Patch struct {
	Label string
	V     []Vertex
	shape *shp.Shape
	order []int // vertex index of each shape node
}

// NewPatch returns a new patch load
func NewPatch(name string, vs ...Vertex) (o *Patch, err error) {
	if len(vs) < 4 {
		return nil, chk.Err("patch load %q requires at least 4 vertices. %d is invalid", name, len(vs))
	}
	if len(vs) != 4 && len(vs) != 8 {
		return nil, chk.Err("patch load %q requires 4 or 8 vertices. %d is invalid", name, len(vs))
	}
	o = &Patch{Label: name, V: vs}
	pts := o.Outline()
	if geo.SignedArea(pts) <= 0 {
		return nil, chk.Err("patch load %q vertices must be counter-clockwise", name)
	}
	n := len(pts)
	for i := 0; i < n; i++ {
		a, b, c := pts[i], pts[(i+1)%n], pts[(i+2)%n]
		if a.Near(b, geo.TOL) {
			return nil, chk.Err("patch load %q has repeated vertices", name)
		}
		if n == 4 && geo.Orientation(a, b, c, geo.TOL) < 0 {
			return nil, chk.Err("patch load %q must be convex", name)
		}
	}
	if geo.BottomLeft(pts, geo.TOL) != 0 {
		return nil, chk.Err("patch load %q must start from the bottom-left vertex", name)
	}
	o.init()
	return
}

func (o *Patch) init() {
	if len(o.V) == 4 {
		o.shape = shp.Get("qua4")
		o.order = []int{0, 1, 2, 3}
		return
	}
	o.shape = shp.Get("qua8")
	o.order = []int{0, 2, 4, 6, 1, 3, 5, 7}
}

func (o *Patch) Kind() Kind   { return PatchKind }
func (o *Patch) Name() string { return o.Label }

// Scale returns a copy with magnitudes multiplied by f
func (o *Patch) Scale(f float64) Load {
	vs := append([]Vertex{}, o.V...)
	for i := range vs {
		vs[i].P *= f
	}
	p := &Patch{Label: o.Label, V: vs}
	p.init()
	return p
}

// Translate returns a copy shifted in the plan
func (o *Patch) Translate(dx, dz float64) Load {
	vs := append([]Vertex{}, o.V...)
	for i := range vs {
		vs[i].X += dx
		vs[i].Z += dz
	}
	p := &Patch{Label: o.Label, V: vs}
	p.init()
	return p
}

// Outline returns the polygon of the patch
func (o *Patch) Outline() (pts []geo.Point) {
	pts = make([]geo.Point, len(o.V))
	for i, v := range o.V {
		pts[i] = v.Point()
	}
	return
}

// matrix returns the coordinates [2][nverts] and ordinates in shape order
func (o *Patch) matrix() (x [][]float64, w []float64) {
	n := len(o.order)
	x = [][]float64{make([]float64, n), make([]float64, n)}
	w = make([]float64, n)
	for m, k := range o.order {
		x[0][m], x[1][m], w[m] = o.V[k].X, o.V[k].Z, o.V[k].P
	}
	return
}

// Ordinate returns the load intensity at p, interpolated with the shape functions of the patch
func (o *Patch) Ordinate(p geo.Point) float64 {
	x, w := o.matrix()
	r := make([]float64, 2)
	if err := o.shape.InvMap(r, []float64{p.X, p.Z}, x); err != nil {
		sum := 0.0
		for _, v := range w {
			sum += v
		}
		return sum / float64(len(w))
	}
	return o.shape.Interp(w, r)
}

// Total returns the resultant force computed with Gauss quadrature over the patch
func (o *Patch) Total() (res float64) {
	x, w := o.matrix()
	gp := []float64{-math.Sqrt(0.6), 0, math.Sqrt(0.6)}
	gw := []float64{5.0 / 9.0, 8.0 / 9.0, 5.0 / 9.0}
	r := make([]float64, 2)
	for i := range gp {
		for j := range gp {
			r[0], r[1] = gp[i], gp[j]
			o.shape.Func(o.shape.S, o.shape.DSdR, r, true)
			var q, j00, j01, j10, j11 float64
			for m := 0; m < o.shape.Nverts; m++ {
				q += o.shape.S[m] * w[m]
				j00 += x[0][m] * o.shape.DSdR[m][0]
				j01 += x[0][m] * o.shape.DSdR[m][1]
				j10 += x[1][m] * o.shape.DSdR[m][0]
				j11 += x[1][m] * o.shape.DSdR[m][1]
			}
			res += gw[i] * gw[j] * q * (j00*j11 - j01*j10)
		}
	}
	return
}

// Nodal /////////////////////////////////////////////////////////////////////////////////////////////

// Nodal holds forces and moments applied directly on a node
type Nodal struct {
	Label string
	Node  int        // node tag
	F     [6]float64 // Fx, Fy, Fz, Mx, My, Mz
}

// NewNodal returns a new nodal load
func NewNodal(name string, node int, f [6]float64) *Nodal { return &Nodal{name, node, f} }

func (o *Nodal) Kind() Kind                    { return NodalKind }
func (o *Nodal) Name() string                  { return o.Label }
func (o *Nodal) Total() float64                { return o.F[1] }
func (o *Nodal) Translate(dx, dz float64) Load { return &Nodal{o.Label, o.Node, o.F} }
func (o *Nodal) Scale(f float64) Load {
	res := &Nodal{o.Label, o.Node, o.F}
	for i := range res.F {
		res.F[i] *= f
	}
	return res
}
