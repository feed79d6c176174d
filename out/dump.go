// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gogrillage/fem"
	"github.com/cpmech/gogrillage/member"
	"github.com/cpmech/gogrillage/mesh"
)

// Dump writes a listing of nodes, supports and elements grouped by category
func Dump(buf *bytes.Buffer, m *mesh.Mesh, cats map[member.Category][]int) {
	io.Ff(buf, "# nodes\n")
	io.Ff(buf, "%6s%12s%12s%12s%6s%6s\n", "tag", "x", "y", "z", "ix", "jz")
	for _, n := range m.Nodes {
		io.Ff(buf, "%6d%12.4f%12.4f%12.4f%6d%6d\n", n.Tag, n.X, n.Y, n.Z, n.Xgroup, n.Zgroup)
	}
	io.Ff(buf, "\n# supports\n")
	for _, tag := range m.SupportTags() {
		s := m.Supports[tag]
		io.Ff(buf, "%6d edge=%d fix=%v\n", tag, s.Edge, s.Fix)
	}
	io.Ff(buf, "\n# transformations\n")
	for _, t := range m.Transforms {
		io.Ff(buf, "%6d vec=%v offI=%v offJ=%v\n", t.Tag, t.Vec, t.OffI, t.OffJ)
	}
	for _, c := range member.Categories {
		tags := cats[c]
		if len(tags) == 0 {
			continue
		}
		io.Ff(buf, "\n# %s (%d elements)\n", c, len(tags))
		io.Ff(buf, "%6s%6s%6s%8s%8s%12s%12s\n", "tag", "i", "j", "group", "transf", "length", "width")
		for _, tag := range tags {
			e := m.Elem(tag)
			io.Ff(buf, "%6d%6d%6d%8d%8d%12.4f%12.4f\n", e.Tag, e.I, e.J, e.Group, e.Transform, m.Length(e), member.Width(m, e))
		}
	}
}

// Station holds a result at a point along a grid line
type Station struct {
	X     float64 // longitudinal coordinate
	Value float64 // result
}

// Diagram returns the values of an element end force (without the _i/_j suffix; e.g. "Mz") at
// the stations along the longitudinal grid line j. Element i-end values are negated so that the
// diagram follows one sign convention along the line.
func Diagram(res *fem.Results, m *mesh.Mesh, name string, j int, comp string) (stations []Station, err error) {
	if j < 0 || j >= len(m.Lines.Noz) {
		return nil, chk.Err("grid line index %d is out of range", j)
	}
	for _, tag := range m.Long {
		e := m.Elem(tag)
		a, b := m.Node(e.I), m.Node(e.J)
		if a.Zgroup != j {
			continue
		}
		var vi, vj float64
		if vi, err = res.Get(name, tag, comp+"_i"); err != nil {
			return
		}
		if vj, err = res.Get(name, tag, comp+"_j"); err != nil {
			return
		}
		stations = append(stations, Station{a.X, -vi}, Station{b.X, vj})
	}
	if len(stations) == 0 {
		return nil, chk.Err("grid line %d has no longitudinal elements", j)
	}
	return
}

// Table writes a table of result components for the given tags and all cases
func Table(buf *bytes.Buffer, res *fem.Results, tags []int, comp string) (err error) {
	io.Ff(buf, "%-16s", "case")
	for _, tag := range tags {
		io.Ff(buf, "%14s", io.Sf("%s(%d)", comp, tag))
	}
	io.Ff(buf, "\n")
	for _, name := range res.Cases {
		io.Ff(buf, "%-16s", name)
		for _, tag := range tags {
			var v float64
			if v, err = res.Get(name, tag, comp); err != nil {
				return
			}
			io.Ff(buf, "%14.6e", v)
		}
		io.Ff(buf, "\n")
	}
	return
}
