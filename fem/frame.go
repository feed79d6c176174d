// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"bytes"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gogrillage/member"
)

// register backend
func init() {
	RegisterBackend("frame", func(buf *bytes.Buffer) Backend { return NewFrame() })
}

// Frame implements a linear elastic 3D frame solved with the direct stiffness method. Rigid
// offsets of transformations are ignored.
//
//            y (local)
//            ^
//            |      vec (local x-z plane)
//            |    ,'
//           (i)-----------------(j)------> x (local)
//          ,'
//        z (local) = x × y
//
type Frame struct {
	Verbose bool // show messages

	// model
	nodes      map[int][3]float64 // node tag => coordinates
	order      []int              // node tags in creation order
	transforms map[int][3]float64 // transform tag => vector in local x-z plane
	elems      []*frameElem       // elements
	fix        map[int][6]int     // node tag => restraints
	loads      map[int][6]float64 // node tag => forces

	// state
	hasElems bool // elements were created
}

// frameElem holds an elastic beam-column element
type frameElem struct {
	Tag, I, J int          // tag and node tags
	L         float64      // length
	T         *mat.Dense   // [12][12] global-to-local transformation matrix
	Kl        *mat.Dense   // [12][12] local stiffness matrix
	K         *mat.Dense   // [12][12] global stiffness matrix
	p         member.Props // properties
}

// NewFrame returns a new frame backend
func NewFrame() *Frame {
	return &Frame{
		nodes:      make(map[int][3]float64),
		transforms: make(map[int][3]float64),
		fix:        make(map[int][6]int),
		loads:      make(map[int][6]float64),
	}
}

// Node creates a node
func (o *Frame) Node(tag int, x, y, z float64) error {
	if o.hasElems {
		return chk.Err("node %d: nodes must be created before elements", tag)
	}
	if _, ok := o.nodes[tag]; ok {
		return chk.Err("node %d already exists", tag)
	}
	o.nodes[tag] = [3]float64{x, y, z}
	o.order = append(o.order, tag)
	return nil
}

// Transform creates a geometric transformation
func (o *Frame) Transform(tag int, vec, offI, offJ [3]float64) error {
	if o.hasElems {
		return chk.Err("transformation %d: transformations must be created before elements", tag)
	}
	if math.Sqrt(dot3(vec, vec)) == 0 {
		return chk.Err("transformation %d has a zero vector", tag)
	}
	o.transforms[tag] = vec
	return nil
}

// Element creates an elastic beam-column element
func (o *Frame) Element(tag, i, j, transf int, p member.Props) (err error) {
	xi, ok := o.nodes[i]
	if !ok {
		return chk.Err("element %d: cannot find node %d", tag, i)
	}
	xj, ok := o.nodes[j]
	if !ok {
		return chk.Err("element %d: cannot find node %d", tag, j)
	}
	vec, ok := o.transforms[transf]
	if !ok {
		return chk.Err("element %d: cannot find transformation %d", tag, transf)
	}
	if p.E <= 0 || p.G <= 0 || p.A <= 0 || p.J <= 0 || p.Iy <= 0 || p.Iz <= 0 {
		return chk.Err("element %d: E, G, A, J, Iy and Iz must be all positive", tag)
	}
	e := &frameElem{Tag: tag, I: i, J: j, p: p}
	if err = e.recompute(xi, xj, vec); err != nil {
		return chk.Err("element %d: %v", tag, err)
	}
	o.elems = append(o.elems, e)
	o.hasElems = true
	return
}

// Fix restrains the dofs of a node
func (o *Frame) Fix(node int, fix [6]int) error {
	if _, ok := o.nodes[node]; !ok {
		return chk.Err("cannot fix node %d: node does not exist", node)
	}
	o.fix[node] = fix
	return nil
}

// Load adds forces and moments to a node
func (o *Frame) Load(node int, f [6]float64) error {
	if _, ok := o.nodes[node]; !ok {
		return chk.Err("cannot load node %d: node does not exist", node)
	}
	cur := o.loads[node]
	for k := 0; k < 6; k++ {
		cur[k] += f[k]
	}
	o.loads[node] = cur
	return nil
}

// ClearLoads removes all loads
func (o *Frame) ClearLoads() {
	o.loads = make(map[int][6]float64)
}

// Solve assembles and solves K u = f for the free dofs
func (o *Frame) Solve() (res *Response, err error) {

	// equations
	eq := make(map[int]int) // node tag => first equation
	for k, tag := range o.order {
		eq[tag] = 6 * k
	}
	ny := 6 * len(o.order)
	if ny == 0 {
		return nil, chk.Err("cannot solve model without nodes")
	}

	// assemble
	K := mat.NewDense(ny, ny, nil)
	for _, e := range o.elems {
		umap := e.umap(eq)
		for a := 0; a < 12; a++ {
			for b := 0; b < 12; b++ {
				K.Set(umap[a], umap[b], K.At(umap[a], umap[b])+e.K.At(a, b))
			}
		}
	}

	// free equations
	var free []int
	for _, tag := range o.order {
		fix := o.fix[tag]
		for k := 0; k < 6; k++ {
			if fix[k] == 0 {
				free = append(free, eq[tag]+k)
			}
		}
	}
	nf := len(free)
	if nf == 0 {
		return nil, chk.Err("cannot solve model: all dofs are restrained")
	}
	Kff := mat.NewDense(nf, nf, nil)
	for a, A := range free {
		for b, B := range free {
			Kff.Set(a, b, K.At(A, B))
		}
	}
	F := mat.NewVecDense(nf, nil)
	for a, A := range free {
		tag := o.order[A/6]
		F.SetVec(a, o.loads[tag][A%6])
	}

	// solve
	if o.Verbose {
		io.Pf("> frame: solving %d equations (%d restrained)\n", nf, ny-nf)
	}
	var uf mat.VecDense
	err = uf.SolveVec(Kff, F)
	if err != nil {
		return nil, chk.Err("cannot solve frame (is the model restrained?): %v", err)
	}
	u := make([]float64, ny)
	for a, A := range free {
		u[A] = uf.AtVec(a)
	}

	// results
	res = &Response{Disp: make(map[int][6]float64), Force: make(map[int][12]float64)}
	for _, tag := range o.order {
		var d [6]float64
		copy(d[:], u[eq[tag]:eq[tag]+6])
		res.Disp[tag] = d
	}
	ue := mat.NewVecDense(12, nil)
	var ul, fl mat.VecDense
	for _, e := range o.elems {
		for a, A := range e.umap(eq) {
			ue.SetVec(a, u[A])
		}
		ul.MulVec(e.T, ue)
		fl.MulVec(e.Kl, &ul)
		var f [12]float64
		for a := 0; a < 12; a++ {
			f[a] = fl.AtVec(a)
		}
		res.Force[e.Tag] = f
	}
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// umap returns the location array of the element
func (o *frameElem) umap(eq map[int]int) (umap []int) {
	umap = make([]int, 12)
	for k := 0; k < 6; k++ {
		umap[k] = eq[o.I] + k
		umap[6+k] = eq[o.J] + k
	}
	return
}

// recompute computes the transformation and stiffness matrices
func (o *frameElem) recompute(xi, xj, vec [3]float64) error {

	// local axes: x along the element, y = vec × x, z = x × y
	var vx [3]float64
	for k := 0; k < 3; k++ {
		vx[k] = xj[k] - xi[k]
	}
	l := math.Sqrt(dot3(vx, vx))
	if l == 0 {
		return chk.Err("element has zero length")
	}
	o.L = l
	for k := 0; k < 3; k++ {
		vx[k] /= l
	}
	vy := cross3(vec, vx)
	ly := math.Sqrt(dot3(vy, vy))
	if ly < 1e-12 {
		return chk.Err("transformation vector %v is parallel to the element axis", vec)
	}
	for k := 0; k < 3; k++ {
		vy[k] /= ly
	}
	vz := cross3(vx, vy)

	// global to local transformation matrix
	o.T = mat.NewDense(12, 12, nil)
	for b := 0; b < 4; b++ {
		for k := 0; k < 3; k++ {
			o.T.Set(3*b+0, 3*b+k, vx[k])
			o.T.Set(3*b+1, 3*b+k, vy[k])
			o.T.Set(3*b+2, 3*b+k, vz[k])
		}
	}

	// constants
	EIz, EIy, GJ, EA := o.p.E*o.p.Iz, o.p.E*o.p.Iy, o.p.G*o.p.J, o.p.E*o.p.A
	ll := l * l
	lll := l * ll

	// stiffness matrix in local system
	kl := make([]float64, 144)
	set := func(i, j int, v float64) { kl[12*i+j] = v }

	set(0, 0, EA/l)
	set(0, 6, -EA/l)

	set(1, 1, 12.0*EIz/lll)
	set(1, 5, 6.0*EIz/ll)
	set(1, 7, -12.0*EIz/lll)
	set(1, 11, 6.0*EIz/ll)

	set(2, 2, 12.0*EIy/lll)
	set(2, 4, -6.0*EIy/ll)
	set(2, 8, -12.0*EIy/lll)
	set(2, 10, -6.0*EIy/ll)

	set(3, 3, GJ/l)
	set(3, 9, -GJ/l)

	set(4, 2, -6.0*EIy/ll)
	set(4, 4, 4.0*EIy/l)
	set(4, 8, 6.0*EIy/ll)
	set(4, 10, 2.0*EIy/l)

	set(5, 1, 6.0*EIz/ll)
	set(5, 5, 4.0*EIz/l)
	set(5, 7, -6.0*EIz/ll)
	set(5, 11, 2.0*EIz/l)

	set(6, 0, -EA/l)
	set(6, 6, EA/l)

	set(7, 1, -12.0*EIz/lll)
	set(7, 5, -6.0*EIz/ll)
	set(7, 7, 12.0*EIz/lll)
	set(7, 11, -6.0*EIz/ll)

	set(8, 2, -12.0*EIy/lll)
	set(8, 4, 6.0*EIy/ll)
	set(8, 8, 12.0*EIy/lll)
	set(8, 10, 6.0*EIy/ll)

	set(9, 3, -GJ/l)
	set(9, 9, GJ/l)

	set(10, 2, -6.0*EIy/ll)
	set(10, 4, 2.0*EIy/l)
	set(10, 8, 6.0*EIy/ll)
	set(10, 10, 4.0*EIy/l)

	set(11, 1, 6.0*EIz/ll)
	set(11, 5, 2.0*EIz/l)
	set(11, 7, -6.0*EIz/ll)
	set(11, 11, 4.0*EIz/l)

	o.Kl = mat.NewDense(12, 12, kl)

	// stiffness matrix in global system: K = Tᵀ Kl T
	var KlT mat.Dense
	KlT.Mul(o.Kl, o.T)
	o.K = mat.NewDense(12, 12, nil)
	o.K.Mul(o.T.T(), &KlT)
	return nil
}

func dot3(a, b [3]float64) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func cross3(a, b [3]float64) [3]float64 {
	return [3]float64{a[1]*b[2] - a[2]*b[1], a[2]*b[0] - a[0]*b[2], a[0]*b[1] - a[1]*b[0]}
}
