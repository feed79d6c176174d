// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"sort"

	"github.com/cpmech/gogrillage/geo"
	"github.com/cpmech/gogrillage/load"
	"github.com/cpmech/gogrillage/mesh"
)

// Overlap holds a piece of a line load running along an element
type Overlap struct {
	Elem int       // element tag
	P, Q geo.Point // ends of the overlap
}

// Intersections returns the points where segment a-b crosses the boundary of each cell (keyed by
// cell id), including the segment ends inside the cell, and the pieces of a-b running exactly
// along elements. Cells with fewer than 2 points are omitted.
func (o *Distributor) Intersections(a, b geo.Point) (cells map[int][]geo.Point, overlaps []Overlap) {
	cells = make(map[int][]geo.Point)
	seen := make(map[int]bool)
	for _, c := range o.Mesh.Cells {
		var pts []geo.Point
		n := len(c.X)
		for k := 0; k < n; k++ {
			hit := geo.SegmentIntersect(a, b, c.X[k], c.X[(k+1)%n], geo.TOL)
			switch hit.Kind {
			case geo.Proper, geo.Touch:
				pts = append(pts, hit.P)
			case geo.Collinear:
				pts = append(pts, hit.P, hit.Q)
				tag, ok := o.pairs[[2]int{c.Nodes[k], c.Nodes[(k+1)%n]}]
				if ok && !seen[tag] {
					seen[tag] = true
					overlaps = append(overlaps, Overlap{tag, hit.P, hit.Q})
				}
			}
		}
		for _, p := range []geo.Point{a, b} {
			if geo.InConvex(p, c.X, geo.TOL) {
				pts = append(pts, p)
			}
		}
		pts = geo.Dedup(pts, geo.TOL)
		if len(pts) < 2 {
			continue
		}
		sort.Slice(pts, func(i, j int) bool { return geo.Param(pts[i], a, b) < geo.Param(pts[j], a, b) })
		cells[c.Id] = pts
	}
	return
}

// LineLoad distributes a line load. Each piece inside a cell becomes its resultant applied at the
// centroid of the trapezoidal load. Pieces along elements go to the element nodes by the lever rule
// and are ignored by the cells on both sides.
func (o *Distributor) LineLoad(l *load.Line) (forces []NodeForce) {
	for _, seg := range l.Segments() {
		cells, overlaps := o.Intersections(seg.A, seg.B)
		for _, c := range o.Mesh.Cells {
			pts, ok := cells[c.Id]
			if !ok {
				continue
			}
			p, q := pts[0], pts[len(pts)-1]
			if p.Near(q, geo.TOL) || geo.OnBoundary(geo.Lerp(p, q, 0.5), c.X, geo.TOL) {
				continue
			}
			R, x := resultant(seg, p, q)
			if R == 0 {
				continue
			}
			forces = append(forces, o.inCell(c, x, R)...)
		}
		for _, ov := range overlaps {
			R, x := resultant(seg, ov.P, ov.Q)
			if R == 0 {
				continue
			}
			forces = append(forces, o.lever(o.Mesh.Elem(ov.Elem), x, R)...)
		}
	}
	return
}

// PatchLoad distributes a patch load. The patch is clipped by each cell; each piece becomes the
// ordinate at its centroid times its area applied at the centroid.
func (o *Distributor) PatchLoad(pl *load.Patch) (forces []NodeForce) {
	poly := pl.Outline()
	np := len(poly)
	for _, c := range o.Mesh.Cells {
		var pts []geo.Point
		nc := len(c.X)
		for i := 0; i < np; i++ {
			for k := 0; k < nc; k++ {
				hit := geo.SegmentIntersect(poly[i], poly[(i+1)%np], c.X[k], c.X[(k+1)%nc], geo.TOL)
				switch hit.Kind {
				case geo.Proper, geo.Touch:
					pts = append(pts, hit.P)
				case geo.Collinear:
					pts = append(pts, hit.P, hit.Q)
				}
			}
		}
		for _, p := range c.X {
			if geo.InPolygon(p, poly, geo.TOL) {
				pts = append(pts, p)
			}
		}
		for _, p := range poly {
			if geo.InConvex(p, c.X, geo.TOL) {
				pts = append(pts, p)
			}
		}
		pts = geo.Dedup(pts, geo.TOL)
		if len(pts) < 3 {
			continue
		}
		pts = geo.SortCCW(pts, geo.TOL)
		area := geo.Area(pts)
		if area <= geo.TOL*geo.TOL {
			continue
		}
		x := geo.Centroid(pts)
		R := pl.Ordinate(x) * area
		if R == 0 {
			continue
		}
		forces = append(forces, o.inCell(c, x, R)...)
	}
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// resultant returns the resultant of the piece p-q of a segment and its point of application
func resultant(seg load.Segment, p, q geo.Point) (R float64, x geo.Point) {
	l := seg.Length()
	w0 := seg.At(p.Dist(seg.A) / l)
	w1 := seg.At(q.Dist(seg.A) / l)
	L := p.Dist(q)
	R = (w0 + w1) / 2.0 * L
	if w0+w1 == 0 {
		return R, geo.Lerp(p, q, 0.5)
	}
	xbar := (2.0*w0 + w1) / (w0 + w1) * L / 3.0 // measured from q
	return R, geo.Lerp(q, p, xbar/L)
}

// lever distributes P applied at x (on element e) to the element nodes
func (o *Distributor) lever(e *mesh.Elem, x geo.Point, P float64) []NodeForce {
	a, b := o.Mesh.Node(e.I).Point(), o.Mesh.Node(e.J).Point()
	s := geo.Param(x, a, b)
	var fi, fj NodeForce
	fi.Node, fj.Node = e.I, e.J
	fi.F[1] = P * (1.0 - s)
	fj.F[1] = P * s
	return []NodeForce{fi, fj}
}
