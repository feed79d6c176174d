// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gogrillage/geo"
)

// strategy defines how nodes are placed and how skew edges are meshed
type strategy struct {
	place     func(o *Mesh, i, j int) geo.Point     // coordinates of node on x-line i and z-line j
	transKind func(o *Mesh, i int) (ElemKind, int) // kind and edge group of elements along x-line i
	edges     func(o *Mesh) error                  // adds edge elements and supports
}

// allocators holds all available strategies; mesh type => strategy
var allocators = map[string]*strategy{}

// register adds a new strategy
func register(name string, s *strategy) {
	if _, ok := allocators[name]; ok {
		chk.Panic("cannot register mesh strategy %q twice", name)
	}
	allocators[name] = s
}

func init() {

	// orthogonal mesh: transverse lines perpendicular to z-lines; skew edges meshed as chains of
	// edge elements linking the first (last) node of each z-line
	register("ortho", &strategy{
		place: func(o *Mesh, i, j int) geo.Point {
			return geo.Point{X: o.Lines.Nox[i], Z: o.Lines.Noz[j]}
		},
		transKind: func(o *Mesh, i int) (ElemKind, int) {
			return Transverse, -1
		},
		edges: func(o *Mesh) error {
			nz := len(o.Lines.Noz)
			first := make([]int, nz)
			last := make([]int, nz)
			for i := range o.Lines.Nox {
				jlo, jhi := o.Lines.Extent(i)
				for j := jlo; j <= jhi; j++ {
					tag := o.ij[[2]int{i, j}]
					if first[j] == 0 {
						first[j] = tag
					}
					last[j] = tag
				}
			}
			for edge, ends := range [][]int{first, last} {
				for j := 0; j < nz; j++ {
					if ends[j] == 0 {
						return chk.Err("z-line %d has no nodes", j)
					}
					o.addSupport(ends[j], edge)
					if j == 0 {
						continue
					}
					a, b := o.Nodes[ends[j-1]-1], o.Nodes[ends[j]-1]
					if a.Xgroup == b.Xgroup {
						continue // already linked by a transverse element
					}
					o.addElem(EdgeSpan, a.Tag, b.Tag, o.Groups.Trans[a.Xgroup], edge)
				}
			}
			return nil
		},
	})

	// oblique mesh: transverse lines parallel to the skew edges; the first and last x-lines are the
	// skew edges and intermediate support lines split the spans
	register("oblique", &strategy{
		place: func(o *Mesh, i, j int) geo.Point {
			x, z := o.Lines.Nox[i], o.Lines.Noz[j]
			t := o.Lines.TanAt(x)
			if o.Opts.Sweep != nil {
				p, ok := o.Opts.Sweep.Place(x, z, t)
				if !ok {
					o.Unconverged++
				}
				return p
			}
			return geo.Point{X: x - z*t, Z: z}
		},
		transKind: func(o *Mesh, i int) (ElemKind, int) {
			sup := o.Lines.Support
			if i == sup[0] {
				return EdgeSpan, 0
			}
			if i == sup[len(sup)-1] {
				return EdgeSpan, len(sup) - 1
			}
			return Transverse, -1
		},
		edges: func(o *Mesh) error {
			for edge, i := range o.Lines.Support {
				jlo, jhi := o.Lines.Extent(i)
				for j := jlo; j <= jhi; j++ {
					o.addSupport(o.ij[[2]int{i, j}], edge)
				}
			}
			return nil
		},
	})
}
