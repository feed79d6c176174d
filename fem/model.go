// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gogrillage/dist"
	"github.com/cpmech/gogrillage/member"
	"github.com/cpmech/gogrillage/mesh"
)

// Model holds a grillage mesh with members assigned to its element categories
type Model struct {
	Mesh    *mesh.Mesh                // mesh
	Members member.Set                // category => member
	Cats    map[member.Category][]int // category => element tags
	Dist    *dist.Distributor         // load distributor
	Verbose bool                      // show messages

	transf map[int]int // element tag => transformation tag (including offsets)
}

// NewModel returns a new model
func NewModel(m *mesh.Mesh, mode dist.Mode) *Model {
	return &Model{
		Mesh:    m,
		Members: make(member.Set),
		Cats:    member.Categorize(m),
		Dist:    dist.New(m, mode),
	}
}

// Assign assigns a member to a category
func (o *Model) Assign(c member.Category, mem *member.Member) error {
	return o.Members.Assign(c, mem)
}

// Transform returns the transformation tag of an element; available after Build
func (o *Model) Transform(elem int) int {
	return o.transf[elem]
}

// Build sends the model to the backend: nodes, transformations, elements and then fixities
func (o *Model) Build(b Backend) (err error) {

	// check members
	var missing []member.Category
	for _, c := range member.Categories {
		if len(o.Cats[c]) > 0 && o.Members[c] == nil {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return chk.Err("categories %v have elements but no member assigned", missing)
	}

	// transformations with member offsets
	m := o.Mesh
	o.transf = make(map[int]int)
	cat := make(map[int]member.Category)
	for _, c := range member.Categories {
		mem := o.Members[c]
		for _, tag := range o.Cats[c] {
			e := m.Elem(tag)
			cat[tag] = c
			o.transf[tag] = e.Transform
			if mem.Offset != 0 {
				off := [3]float64{0, mem.Offset, 0}
				vec := mesh.LocalVec(m.Node(e.I), m.Node(e.J))
				o.transf[tag] = m.TransformTag(vec, off, off)
			}
		}
	}

	// nodes
	for _, n := range m.Nodes {
		if err = b.Node(n.Tag, n.X, n.Y, n.Z); err != nil {
			return
		}
	}

	// transformations
	for _, t := range m.Transforms {
		if err = b.Transform(t.Tag, t.Vec, t.OffI, t.OffJ); err != nil {
			return
		}
	}

	// elements
	for _, e := range m.Elems {
		p := o.Members[cat[e.Tag]].Props(member.Width(m, e))
		if err = b.Element(e.Tag, e.I, e.J, o.transf[e.Tag], p); err != nil {
			return
		}
	}

	// fixities
	for _, tag := range m.SupportTags() {
		if err = b.Fix(tag, m.Supports[tag].Fix); err != nil {
			return
		}
	}
	if o.Verbose {
		io.Pf("> model built: %d nodes, %d transformations, %d elements, %d supports\n",
			len(m.Nodes), len(m.Transforms), len(m.Elems), len(m.Supports))
	}
	return
}
