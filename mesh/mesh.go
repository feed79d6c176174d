// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mesh generates the nodes, elements, supports and grid cells of a grillage
package mesh

import (
	"bytes"
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gogrillage/geo"
	"github.com/cpmech/gogrillage/grid"
)

// ElemKind defines the role of an element in the grillage
type ElemKind int

const (
	Longitudinal ElemKind = iota // along a z-line
	Transverse                   // along an x-line
	EdgeSpan                     // along a skew edge (support line)
)

// String returns the name of the kind
func (o ElemKind) String() string {
	switch o {
	case Longitudinal:
		return "longitudinal"
	case Transverse:
		return "transverse"
	}
	return "edge"
}

// Node holds node data
type Node struct {
	Tag    int     // tag (from 1)
	X      float64 // longitudinal coordinate
	Y      float64 // vertical coordinate
	Z      float64 // transverse coordinate
	Xgroup int     // index of x-line
	Zgroup int     // index of z-line
	Edge   int     // support line group; -1 if not on a support line
}

// Point returns the plan coordinates of the node
func (o *Node) Point() geo.Point { return geo.Point{X: o.X, Z: o.Z} }

// Elem holds element data
type Elem struct {
	Tag       int      // tag (from 1)
	I, J      int      // node tags
	Kind      ElemKind // longitudinal, transverse or edge
	Group     int      // spacing-signature id
	Transform int      // transformation tag
	Edge      int      // support line group of edge elements; -1 otherwise
}

// Support holds the restraints of a node
type Support struct {
	Edge int    // support line group
	Fix  [6]int // restraints of (dx, dy, dz, θx, θy, θz); 1 means fixed
}

// Transform holds a local axis definition
type Transform struct {
	Tag  int        // tag (from 1)
	Vec  [3]float64 // vector in the local x-z plane
	OffI [3]float64 // rigid offset at node I
	OffJ [3]float64 // rigid offset at node J
}

// Options holds mesh options
type Options struct {
	grid.Options
	Sweep *SweepPath     // optional sweep path (oblique meshes only)
	Fix   map[int][6]int // restraints by support line group; defaults: pin at 0 and rollers elsewhere
}

// default restraints
var (
	FixPin    = [6]int{1, 1, 1, 0, 0, 0}
	FixRoller = [6]int{0, 1, 1, 0, 0, 0}
)

// Mesh holds the grillage mesh
type Mesh struct {
	Opts        Options          // options
	Lines       *grid.Lines      // grid lines
	Groups      *grid.Groups     // spacing signatures
	Nodes       []*Node          // all nodes; Nodes[tag-1]
	Elems       []*Elem          // all elements; Elems[tag-1]
	Long        []int            // tags of longitudinal elements
	Trans       []int            // tags of transverse elements
	EdgeSpan    []int            // tags of edge elements
	Supports    map[int]*Support // node tag => support
	Transforms  []*Transform     // all transformations; Transforms[tag-1]
	Cells       []*Cell          // grid cells
	Unconverged int              // number of sweep searches that did not converge

	strategy *strategy     // layout strategy
	ij       map[[2]int]int // (xgroup, zgroup) => node tag
	keys     map[string]int // transform key => tag
}

// Generate generates a new mesh
func Generate(opts Options) (o *Mesh, err error) {

	// strategy
	opts.SetDefault()
	s, ok := allocators[string(opts.Type)]
	if !ok {
		return nil, chk.Err("cannot find mesh strategy named %q", opts.Type)
	}
	if opts.Sweep != nil && opts.Type != grid.Oblique {
		return nil, chk.Err("sweep path requires an oblique mesh")
	}

	// grid lines
	o = &Mesh{Opts: opts, strategy: s, Supports: make(map[int]*Support), ij: make(map[[2]int]int), keys: make(map[string]int)}
	o.Lines, err = grid.New(opts.Options)
	if err != nil {
		return nil, chk.Err("cannot generate mesh:\n%v", err)
	}
	o.Groups, err = grid.Classify(o.Lines.Noz, o.Lines.Nox, opts.Decimals)
	if err != nil {
		return nil, chk.Err("cannot generate mesh:\n%v", err)
	}

	// nodes
	for i := range o.Lines.Nox {
		jlo, jhi := o.Lines.Extent(i)
		for j := jlo; j <= jhi; j++ {
			p := s.place(o, i, j)
			o.addNode(p.X, 0, p.Z, i, j)
		}
	}

	// longitudinal and transverse elements
	last := make([]int, len(o.Lines.Noz))
	for i := range o.Lines.Nox {
		jlo, jhi := o.Lines.Extent(i)
		for j := jlo; j <= jhi; j++ {
			n := o.ij[[2]int{i, j}]
			if last[j] > 0 {
				o.addElem(Longitudinal, last[j], n, o.Groups.Long[j], -1)
			}
			last[j] = n
			if j < jhi {
				kind, edge := s.transKind(o, i)
				o.addElem(kind, n, o.ij[[2]int{i, j + 1}], o.Groups.Trans[i], edge)
			}
		}
	}

	// edges and supports
	err = s.edges(o)
	if err != nil {
		return nil, chk.Err("cannot generate mesh:\n%v", err)
	}

	// cells
	o.Cells = o.buildCells()
	return
}

// Node returns the node with the given tag; nil if not found
func (o *Mesh) Node(tag int) *Node {
	if tag < 1 || tag > len(o.Nodes) {
		return nil
	}
	return o.Nodes[tag-1]
}

// Elem returns the element with the given tag; nil if not found
func (o *Mesh) Elem(tag int) *Elem {
	if tag < 1 || tag > len(o.Elems) {
		return nil
	}
	return o.Elems[tag-1]
}

// NodeAt returns the tag of the node on x-line i and z-line j
func (o *Mesh) NodeAt(i, j int) (tag int, ok bool) {
	tag, ok = o.ij[[2]int{i, j}]
	return
}

// TransformTag returns the tag of the transformation with the given vector and offsets, creating
// a new one if necessary. Equal vectors (after rounding) share the same tag.
func (o *Mesh) TransformTag(vec, offI, offJ [3]float64) int {
	d := o.Opts.Decimals
	for k := 0; k < 3; k++ {
		vec[k] = geo.Round(vec[k], d)
		offI[k] = geo.Round(offI[k], d)
		offJ[k] = geo.Round(offJ[k], d)
	}
	key := io.Sf("%v", vec)
	if offI != [3]float64{} || offJ != [3]float64{} {
		key += io.Sf("%v%v", offI, offJ)
	}
	if tag, ok := o.keys[key]; ok {
		return tag
	}
	tag := len(o.Transforms) + 1
	o.Transforms = append(o.Transforms, &Transform{Tag: tag, Vec: vec, OffI: offI, OffJ: offJ})
	o.keys[key] = tag
	return tag
}

// LocalVec returns the vector in the local x-z plane of an element connecting a to b. The vector
// is perpendicular to the element axis and lies on the deck plane.
func LocalVec(a, b *Node) (vec [3]float64) {
	dx, dz := b.X-a.X, b.Z-a.Z
	l := math.Hypot(dx, dz)
	if l == 0 {
		return
	}
	return [3]float64{dz / l, 0, -dx / l}
}

// Length returns the length of an element
func (o *Mesh) Length(e *Elem) float64 {
	return o.Nodes[e.I-1].Point().Dist(o.Nodes[e.J-1].Point())
}

// NumSupportLines returns the number of support lines
func (o *Mesh) NumSupportLines() int {
	if len(o.Lines.Support) > 0 {
		return len(o.Lines.Support)
	}
	return 2
}

// String returns a summary of the mesh
func (o *Mesh) String() string {
	var b bytes.Buffer
	io.Ff(&b, "mesh type      = %v\n", o.Opts.Type)
	io.Ff(&b, "length × width = %g × %g\n", o.Lines.Length, o.Lines.Width)
	io.Ff(&b, "skew angles    = %g, %g\n", o.Opts.SkewA, o.Opts.SkewB)
	io.Ff(&b, "grid lines     = %d (z) × %d (x)\n", len(o.Lines.Noz), len(o.Lines.Nox))
	io.Ff(&b, "nodes          = %d\n", len(o.Nodes))
	io.Ff(&b, "elements       = %d (long: %d, trans: %d, edge: %d)\n", len(o.Elems), len(o.Long), len(o.Trans), len(o.EdgeSpan))
	io.Ff(&b, "supports       = %d\n", len(o.Supports))
	io.Ff(&b, "transforms     = %d\n", len(o.Transforms))
	io.Ff(&b, "cells          = %d\n", len(o.Cells))
	if o.Unconverged > 0 {
		io.Ff(&b, "unconverged    = %d sweep searches\n", o.Unconverged)
	}
	return b.String()
}

// SupportTags returns the tags of supported nodes in ascending order
func (o *Mesh) SupportTags() (tags []int) {
	for tag := range o.Supports {
		tags = append(tags, tag)
	}
	sort.Ints(tags)
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

func (o *Mesh) addNode(x, y, z float64, i, j int) int {
	tag := len(o.Nodes) + 1
	o.Nodes = append(o.Nodes, &Node{Tag: tag, X: x, Y: y, Z: z, Xgroup: i, Zgroup: j, Edge: -1})
	o.ij[[2]int{i, j}] = tag
	return tag
}

func (o *Mesh) addElem(kind ElemKind, a, b, group, edge int) int {
	tag := len(o.Elems) + 1
	vec := LocalVec(o.Nodes[a-1], o.Nodes[b-1])
	e := &Elem{Tag: tag, I: a, J: b, Kind: kind, Group: group, Edge: edge}
	e.Transform = o.TransformTag(vec, [3]float64{}, [3]float64{})
	o.Elems = append(o.Elems, e)
	switch kind {
	case Longitudinal:
		o.Long = append(o.Long, tag)
	case Transverse:
		o.Trans = append(o.Trans, tag)
	default:
		o.EdgeSpan = append(o.EdgeSpan, tag)
	}
	return tag
}

func (o *Mesh) addSupport(tag, edge int) {
	fix, ok := o.Opts.Fix[edge]
	if !ok {
		fix = FixRoller
		if edge == 0 {
			fix = FixPin
		}
	}
	o.Nodes[tag-1].Edge = edge
	o.Supports[tag] = &Support{Edge: edge, Fix: fix}
}
