// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package member classifies grillage elements into semantic categories and holds the member
// (material and section) assigned to each category
package member

import (
	"github.com/cpmech/gogrillage/mesh"
)

// Category defines the semantic role of a group of elements
type Category string

// categories
const (
	EdgeBeam          Category = "edge_beam"
	ExteriorMainBeam1 Category = "exterior_main_beam_1"
	InteriorMainBeam  Category = "interior_main_beam"
	ExteriorMainBeam2 Category = "exterior_main_beam_2"
	StartEdge         Category = "start_edge"
	EndEdge           Category = "end_edge"
	TransverseSlab    Category = "transverse_slab"
)

// Categories holds all categories in assembly order
var Categories = []Category{EdgeBeam, ExteriorMainBeam1, InteriorMainBeam, ExteriorMainBeam2, StartEdge, EndEdge, TransverseSlab}

// Valid tells whether c is a known category
func (c Category) Valid() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// LongCategories returns the category of each longitudinal grid line. The edge lines are edge
// beams; the second and second-last lines are exterior main beams when their spacing signature
// is unique to them; every other line is an interior main beam.
func LongCategories(m *mesh.Mesh) (cats []Category) {
	ids := m.Groups.Long
	n := len(ids)
	count := make(map[int]int)
	for _, id := range ids {
		count[id]++
	}
	cats = make([]Category, n)
	for j, id := range ids {
		switch {
		case id == ids[0]:
			cats[j] = EdgeBeam
		case j == 1 && count[id] == 1:
			cats[j] = ExteriorMainBeam1
		case j == n-2 && count[id] == 1:
			cats[j] = ExteriorMainBeam2
		default:
			cats[j] = InteriorMainBeam
		}
	}
	return
}

// Categorize returns the tags of elements in each category
func Categorize(m *mesh.Mesh) (res map[Category][]int) {
	res = make(map[Category][]int)
	long := LongCategories(m)
	for _, e := range m.Elems {
		c := of(m, e, long)
		res[c] = append(res[c], e.Tag)
	}
	return
}

// Of returns the category of element e
func Of(m *mesh.Mesh, e *mesh.Elem) Category {
	return of(m, e, LongCategories(m))
}

func of(m *mesh.Mesh, e *mesh.Elem, long []Category) Category {
	switch e.Kind {
	case mesh.Longitudinal:
		return long[m.Node(e.I).Zgroup]
	case mesh.Transverse:
		return TransverseSlab
	}
	if e.Edge == 0 {
		return StartEdge
	}
	return EndEdge
}

// Width returns the tributary width of element e: half the total spacing of its group
func Width(m *mesh.Mesh, e *mesh.Elem) float64 {
	return m.Groups.Spacing[e.Group] / 2.0
}
