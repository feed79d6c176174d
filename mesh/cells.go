// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"github.com/cpmech/gogrillage/geo"
)

// Cell holds a grid cell: the smallest region bounded by grid elements
type Cell struct {
	Id    int         // id (from 1)
	Nodes []int       // 3 or 4 node tags sorted counter-clockwise from the bottom-left node
	X     []geo.Point // coordinates of nodes
}

// Quad tells whether the cell is a quadrilateral
func (o *Cell) Quad() bool { return len(o.Nodes) == 4 }

// Matrix returns the coordinates matrix [2][nverts] of the cell
func (o *Cell) Matrix() (x [][]float64) {
	n := len(o.X)
	x = [][]float64{make([]float64, n), make([]float64, n)}
	for k, p := range o.X {
		x[0][k], x[1][k] = p.X, p.Z
	}
	return
}

// Bounds returns the bounding box of the cell
func (o *Cell) Bounds() (min, max geo.Point) {
	return geo.Bounds(o.X)
}

// buildCells finds the cells from the structured (x-line, z-line) indices. Each pair of
// consecutive x-lines and z-lines bounds a quad if its 4 corners exist or a triangle (skew
// edge) if 3 corners exist and are linked by elements.
func (o *Mesh) buildCells() (cells []*Cell) {
	linked := make(map[[2]int]bool)
	for _, e := range o.Elems {
		linked[[2]int{e.I, e.J}] = true
		linked[[2]int{e.J, e.I}] = true
	}
	for i := 0; i+1 < len(o.Lines.Nox); i++ {
		for j := 0; j+1 < len(o.Lines.Noz); j++ {
			var tags []int
			for _, c := range [][2]int{{i, j}, {i + 1, j}, {i + 1, j + 1}, {i, j + 1}} {
				if tag, ok := o.ij[c]; ok {
					tags = append(tags, tag)
				}
			}
			if len(tags) < 3 {
				continue
			}
			ok := true
			for k := range tags {
				if !linked[[2]int{tags[k], tags[(k+1)%len(tags)]}] {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			cells = append(cells, o.newCell(len(cells)+1, tags))
		}
	}
	return
}

// newCell allocates a cell with nodes sorted counter-clockwise
func (o *Mesh) newCell(id int, tags []int) *Cell {
	pts := make([]geo.Point, len(tags))
	for k, tag := range tags {
		pts[k] = o.Nodes[tag-1].Point()
	}
	sorted := geo.SortCCW(pts, geo.TOL)
	c := &Cell{Id: id, X: sorted, Nodes: make([]int, len(tags))}
	for k, p := range sorted {
		for m, q := range pts {
			if p == q {
				c.Nodes[k] = tags[m]
				break
			}
		}
	}
	return c
}
