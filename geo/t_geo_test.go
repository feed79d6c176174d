// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func Test_poly01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("poly01. area, centroid and bounds")

	rect := []Point{{0, 0}, {4, 0}, {4, 2}, {0, 2}}
	chk.Float64(tst, "area", 1e-14, Area(rect), 8)
	chk.Float64(tst, "signed", 1e-14, SignedArea(rect), 8)
	c := Centroid(rect)
	chk.Float64(tst, "xc", 1e-14, c.X, 2)
	chk.Float64(tst, "zc", 1e-14, c.Z, 1)

	// clockwise
	cw := []Point{{0, 0}, {0, 2}, {4, 2}, {4, 0}}
	chk.Float64(tst, "signed cw", 1e-14, SignedArea(cw), -8)
	c = Centroid(cw)
	chk.Float64(tst, "xc cw", 1e-14, c.X, 2)
	chk.Float64(tst, "zc cw", 1e-14, c.Z, 1)

	// bounds
	min, max := Bounds([]Point{{1, 3}, {-2, 0.5}, {4, 2}})
	chk.Array(tst, "min", 1e-15, []float64{min.X, min.Z}, []float64{-2, 0.5})
	chk.Array(tst, "max", 1e-15, []float64{max.X, max.Z}, []float64{4, 3})

	// triangle
	tri := []Point{{0, 0}, {3, 0}, {0, 3}}
	c = Centroid(tri)
	chk.Float64(tst, "tri area", 1e-14, Area(tri), 4.5)
	chk.Float64(tst, "tri xc", 1e-14, c.X, 1)
	chk.Float64(tst, "tri zc", 1e-14, c.Z, 1)

	// degenerate
	c = Centroid([]Point{{0, 0}, {1, 0}, {2, 0}})
	chk.Float64(tst, "deg xc", 1e-15, c.X, 1)
}

func Test_poly02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("poly02. sorting and point-in-polygon")

	pts := []Point{{4, 2}, {0, 0}, {0, 2}, {4, 0}}
	res := SortCCW(pts, 1e-9)
	io.Pforan("res = %v\n", res)
	chk.Float64(tst, "x0", 1e-15, res[0].X, 0)
	chk.Float64(tst, "z0", 1e-15, res[0].Z, 0)
	chk.Float64(tst, "x1", 1e-15, res[1].X, 4)
	chk.Float64(tst, "z2", 1e-15, res[2].Z, 2)
	chk.Float64(tst, "x3", 1e-15, res[3].X, 0)
	if SignedArea(res) <= 0 {
		tst.Errorf("sorted polygon must be CCW\n")
	}

	if !InConvex(Point{1, 1}, res, 1e-9) {
		tst.Errorf("(1,1) must be inside\n")
	}
	if !InConvex(Point{4, 1}, res, 1e-9) {
		tst.Errorf("(4,1) on boundary must be inside\n")
	}
	if InConvex(Point{5, 1}, res, 1e-9) {
		tst.Errorf("(5,1) must be outside\n")
	}

	// non-convex L-shape
	ell := []Point{{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2}}
	if !InPolygon(Point{0.5, 1.5}, ell, 1e-9) {
		tst.Errorf("(0.5,1.5) must be inside L\n")
	}
	if InPolygon(Point{1.5, 1.5}, ell, 1e-9) {
		tst.Errorf("(1.5,1.5) must be outside L\n")
	}
	if !InPolygon(Point{1.5, 1}, ell, 1e-9) {
		tst.Errorf("(1.5,1) on boundary must be inside L\n")
	}

	d := Dedup([]Point{{0, 0}, {1, 1}, {1e-12, 0}, {1, 1}}, 1e-9)
	chk.Int(tst, "len(dedup)", len(d), 2)
}

func Test_inter01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inter01. segment intersections")

	tol := 1e-9

	h := SegmentIntersect(Point{0, 0}, Point{2, 2}, Point{0, 2}, Point{2, 0}, tol)
	if h.Kind != Proper {
		tst.Errorf("kind must be Proper. %v is incorrect\n", h.Kind)
	}
	chk.Float64(tst, "x", 1e-15, h.P.X, 1)
	chk.Float64(tst, "z", 1e-15, h.P.Z, 1)

	h = SegmentIntersect(Point{0, 0}, Point{2, 0}, Point{1, 0}, Point{1, 3}, tol)
	if h.Kind != Touch {
		tst.Errorf("kind must be Touch. %v is incorrect\n", h.Kind)
	}
	chk.Float64(tst, "touch x", 1e-15, h.P.X, 1)

	h = SegmentIntersect(Point{0, 0}, Point{4, 0}, Point{1, 0}, Point{6, 0}, tol)
	if h.Kind != Collinear {
		tst.Errorf("kind must be Collinear. %v is incorrect\n", h.Kind)
	}
	chk.Float64(tst, "overlap x0", 1e-15, h.P.X, 1)
	chk.Float64(tst, "overlap x1", 1e-15, h.Q.X, 4)

	h = SegmentIntersect(Point{0, 0}, Point{1, 0}, Point{2, 0}, Point{3, 0}, tol)
	if h.Kind != None {
		tst.Errorf("disjoint collinear segments must not intersect\n")
	}

	h = SegmentIntersect(Point{0, 0}, Point{1, 0}, Point{0, 1}, Point{1, 1}, tol)
	if h.Kind != None {
		tst.Errorf("parallel segments must not intersect\n")
	}

	h = SegmentIntersect(Point{2, -1}, Point{2, 0}, Point{0, 0}, Point{1, 0}, tol)
	if h.Kind != None {
		tst.Errorf("segment ending on extension must not intersect\n")
	}
}

func Test_lines01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lines01. lines, circles and arcs")

	l := LineThrough(Point{0, 1}, Point{2, 3})
	chk.Float64(tst, "z(1)", 1e-15, l.Z(1), 2)
	p, ok := l.Intersect(LineThrough(Point{0, 3}, Point{3, 0}))
	if !ok {
		tst.Errorf("lines must intersect\n")
		return
	}
	chk.Float64(tst, "px", 1e-14, p.X, 1)
	chk.Float64(tst, "pz", 1e-14, p.Z, 2)

	c, err := CircleThrough(Point{1, 0}, Point{0, 1}, Point{-1, 0})
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Float64(tst, "cx", 1e-14, c.C.X, 0)
	chk.Float64(tst, "cz", 1e-14, c.C.Z, 0)
	chk.Float64(tst, "R", 1e-14, c.R, 1)

	_, err = CircleThrough(Point{0, 0}, Point{1, 1}, Point{2, 2})
	if err == nil {
		tst.Errorf("collinear points must fail\n")
	}

	// CCW half circle
	a, _ := ArcThrough(Point{1, 0}, Point{0, 1}, Point{-1, 0})
	chk.Float64(tst, "sweep", 1e-14, a.Sweep, math.Pi)
	chk.Float64(tst, "len", 1e-14, a.Length(), math.Pi)
	m := a.At(0.5)
	chk.Float64(tst, "mid x", 1e-14, m.X, 0)
	chk.Float64(tst, "mid z", 1e-14, m.Z, 1)

	// CW half circle
	a, _ = ArcThrough(Point{1, 0}, Point{0, -1}, Point{-1, 0})
	chk.Float64(tst, "sweep cw", 1e-14, a.Sweep, -math.Pi)
	t := a.Tangent(0)
	chk.Float64(tst, "tx", 1e-14, t.X, 0)
	chk.Float64(tst, "tz", 1e-14, t.Z, -1)
	chk.Int(tst, "npts", len(a.Points(4)), 5)
}

func Test_prop01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prop01. properties of sorted quadrilaterals")

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("sorted rectangle is CCW and starts bottom-left", prop.ForAll(
		func(x0, z0, w, h float64) bool {
			pts := []Point{{x0 + w, z0 + h}, {x0, z0 + h}, {x0 + w, z0}, {x0, z0}}
			res := SortCCW(pts, 1e-9)
			return SignedArea(res) > 0 && res[0].Near(Point{x0, z0}, 1e-12) &&
				math.Abs(Area(res)-w*h) < 1e-9*(1+w*h)
		},
		gen.Float64Range(-100, 100),
		gen.Float64Range(-100, 100),
		gen.Float64Range(0.1, 50),
		gen.Float64Range(0.1, 50),
	))

	properties.Property("centroid of rectangle is inside", prop.ForAll(
		func(w, h float64) bool {
			rect := []Point{{0, 0}, {w, 0}, {w, h}, {0, h}}
			return InConvex(Centroid(rect), rect, 1e-9) && InPolygon(Centroid(rect), rect, 1e-9)
		},
		gen.Float64Range(0.1, 50),
		gen.Float64Range(0.1, 50),
	))

	properties.TestingRun(tst)
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}
