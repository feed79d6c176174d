// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dist converts loads applied anywhere on the deck into equivalent nodal forces
package dist

import (
	"sort"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gogrillage/geo"
	"github.com/cpmech/gogrillage/load"
	"github.com/cpmech/gogrillage/mesh"
	"github.com/cpmech/gogrillage/shp"
)

// Mode defines how a point force is shared among the nodes of a cell
type Mode int

const (
	Linear  Mode = iota // bilinear (quads) or area (triangles) weights; forces only
	Hermite             // cubic Hermite weights on quads; forces and moments
)

// NodeForce holds the forces and moments applied on a node
type NodeForce struct {
	Node int        // node tag
	F    [6]float64 // Fx, Fy, Fz, Mx, My, Mz
}

// Distributor distributes loads over the nodes of a mesh
type Distributor struct {
	Mesh *mesh.Mesh // mesh
	Mode Mode       // distribution mode

	shape *shp.Shape     // qua4 shape for natural coordinates
	pairs map[[2]int]int // (node I, node J) => element tag
}

// New returns a new distributor
func New(m *mesh.Mesh, mode Mode) (o *Distributor) {
	o = &Distributor{Mesh: m, Mode: mode, shape: shp.Get("qua4"), pairs: make(map[[2]int]int)}
	for _, e := range m.Elems {
		o.pairs[[2]int{e.I, e.J}] = e.Tag
		o.pairs[[2]int{e.J, e.I}] = e.Tag
	}
	return
}

// FindCell returns the cell containing p; nil if p is outside the deck
func (o *Distributor) FindCell(p geo.Point) *mesh.Cell {
	for _, c := range o.Mesh.Cells {
		min, max := c.Bounds()
		if p.X < min.X-geo.TOL || p.X > max.X+geo.TOL || p.Z < min.Z-geo.TOL || p.Z > max.Z+geo.TOL {
			continue
		}
		if geo.InConvex(p, c.X, geo.TOL) {
			return c
		}
	}
	return nil
}

// PointLoad distributes a vertical force P applied at p. Returns false if p is outside the deck.
func (o *Distributor) PointLoad(p geo.Point, P float64) (forces []NodeForce, ok bool) {
	c := o.FindCell(p)
	if c == nil {
		return nil, false
	}
	return o.inCell(c, p, P), true
}

// inCell distributes P applied at p over the nodes of cell c
func (o *Distributor) inCell(c *mesh.Cell, p geo.Point, P float64) (forces []NodeForce) {
	forces = make([]NodeForce, len(c.Nodes))
	for k, tag := range c.Nodes {
		forces[k].Node = tag
	}
	x := c.Matrix()
	if !c.Quad() {
		L := shp.AreaCoords([]float64{p.X, p.Z}, x)
		for k := 0; k < 3; k++ {
			forces[k].F[1] = P * L[k]
		}
		return
	}
	r := make([]float64, 2)
	if err := o.shape.InvMap(r, []float64{p.X, p.Z}, x); err != nil {
		io.Pfred("cannot map point (%g, %g) onto cell %d. using equal weights\n", p.X, p.Z, c.Id)
		for k := range forces {
			forces[k].F[1] = P / 4.0
		}
		return
	}
	if o.Mode == Hermite {
		a := (c.X[0].Dist(c.X[1]) + c.X[3].Dist(c.X[2])) / 2.0
		b := (c.X[0].Dist(c.X[3]) + c.X[1].Dist(c.X[2])) / 2.0
		w := shp.HermiteQua4(r[0], r[1], a, b)
		for k := 0; k < 4; k++ {
			forces[k].F[1] = P * w.F[k]
			forces[k].F[3] = P * w.Mx[k]
			forces[k].F[5] = P * w.Mz[k]
		}
		return
	}
	o.shape.Func(o.shape.S, o.shape.DSdR, r, false)
	for k := 0; k < 4; k++ {
		forces[k].F[1] = P * o.shape.S[k]
	}
	return
}

// Case distributes all loads of a load case. Loads that fall entirely outside the deck (or refer
// to missing nodes) are skipped and their names returned.
func (o *Distributor) Case(c *load.Case) (forces []NodeForce, skipped []string) {
	for _, l := range c.Global() {
		var res []NodeForce
		switch v := l.(type) {
		case *load.Point:
			res, _ = o.PointLoad(v.V.Point(), v.V.P)
		case *load.Line:
			res = o.LineLoad(v)
		case *load.Patch:
			res = o.PatchLoad(v)
		case *load.Nodal:
			if o.Mesh.Node(v.Node) != nil {
				res = []NodeForce{{v.Node, v.F}}
			}
		}
		if len(res) == 0 {
			skipped = append(skipped, l.Name())
			continue
		}
		forces = append(forces, res...)
	}
	return Sum(forces), skipped
}

// Sum merges forces acting on the same node. The result is sorted by node tag.
func Sum(forces []NodeForce) (res []NodeForce) {
	idx := make(map[int]int)
	for _, f := range forces {
		k, ok := idx[f.Node]
		if !ok {
			idx[f.Node] = len(res)
			res = append(res, NodeForce{Node: f.Node})
			k = len(res) - 1
		}
		for i := 0; i < 6; i++ {
			res[k].F[i] += f.F[i]
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Node < res[j].Node })
	return
}

// Total returns the resultant vertical force
func Total(forces []NodeForce) (res float64) {
	for _, f := range forces {
		res += f.F[1]
	}
	return
}
