// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out writes grillage models as scripts for external engines and produces listings and
// diagrams of results
package out

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gogrillage/fem"
	"github.com/cpmech/gogrillage/member"
)

// register backend
func init() {
	fem.RegisterBackend("script", func(buf *bytes.Buffer) fem.Backend { return NewScript(buf) })
}

// Script implements a backend that writes each call as a line of an OpenSees (Python) script
type Script struct {
	Buf    *bytes.Buffer // output buffer
	NumFmt string        // number format; e.g. "%g"

	nodes    map[int]bool // existing nodes
	transfs  map[int]bool // existing transformations
	hasElems bool         // elements were written
	pattern  int          // current load pattern; 0 if none
	npattern int          // number of patterns written
}

// NewScript returns a new script backend. The header is written immediately.
func NewScript(buf *bytes.Buffer) (o *Script) {
	if buf == nil {
		buf = new(bytes.Buffer)
	}
	o = &Script{Buf: buf, NumFmt: "%g", nodes: make(map[int]bool), transfs: make(map[int]bool)}
	io.Ff(o.Buf, "import openseespy.opensees as ops\n\n")
	io.Ff(o.Buf, "ops.wipe()\n")
	io.Ff(o.Buf, "ops.model('basic', '-ndm', 3, '-ndf', 6)\n")
	return
}

// Node writes a node command
func (o *Script) Node(tag int, x, y, z float64) error {
	if o.hasElems {
		return chk.Err("node %d: nodes must be created before elements", tag)
	}
	if o.nodes[tag] {
		return chk.Err("node %d already exists", tag)
	}
	o.nodes[tag] = true
	io.Ff(o.Buf, "ops.node(%d, %s)\n", tag, o.nums(x, y, z))
	return nil
}

// Transform writes a geometric transformation command
func (o *Script) Transform(tag int, vec, offI, offJ [3]float64) error {
	if o.hasElems {
		return chk.Err("transformation %d: transformations must be created before elements", tag)
	}
	o.transfs[tag] = true
	if offI == [3]float64{} && offJ == [3]float64{} {
		io.Ff(o.Buf, "ops.geomTransf('Linear', %d, *[%s])\n", tag, o.nums(vec[:]...))
		return nil
	}
	io.Ff(o.Buf, "ops.geomTransf('Linear', %d, *[%s], '-jntOffset', %s, %s)\n", tag, o.nums(vec[:]...),
		o.nums(offI[:]...), o.nums(offJ[:]...))
	return nil
}

// Element writes an elastic beam-column element command
func (o *Script) Element(tag, i, j, transf int, p member.Props) error {
	if !o.nodes[i] || !o.nodes[j] {
		return chk.Err("element %d: cannot find nodes %d and %d", tag, i, j)
	}
	if !o.transfs[transf] {
		return chk.Err("element %d: cannot find transformation %d", tag, transf)
	}
	o.hasElems = true
	io.Ff(o.Buf, "ops.element('elasticBeamColumn', %d, *[%d, %d], %s, %d)\n", tag, i, j,
		o.nums(p.A, p.E, p.G, p.J, p.Iy, p.Iz), transf)
	return nil
}

// Fix writes a fixity command
func (o *Script) Fix(node int, fix [6]int) error {
	if !o.nodes[node] {
		return chk.Err("cannot fix node %d: node does not exist", node)
	}
	io.Ff(o.Buf, "ops.fix(%d, %d, %d, %d, %d, %d, %d)\n", node, fix[0], fix[1], fix[2], fix[3], fix[4], fix[5])
	return nil
}

// Load writes a nodal load command, opening a new load pattern if necessary
func (o *Script) Load(node int, f [6]float64) error {
	if !o.nodes[node] {
		return chk.Err("cannot load node %d: node does not exist", node)
	}
	if o.pattern == 0 {
		o.npattern++
		o.pattern = o.npattern
		io.Ff(o.Buf, "ops.timeSeries('Constant', %d)\n", o.pattern)
		io.Ff(o.Buf, "ops.pattern('Plain', %d, %d)\n", o.pattern, o.pattern)
	}
	io.Ff(o.Buf, "ops.load(%d, *[%s])\n", node, o.nums(f[:]...))
	return nil
}

// ClearLoads writes the removal of the current load pattern
func (o *Script) ClearLoads() {
	if o.pattern == 0 {
		return
	}
	io.Ff(o.Buf, "ops.remove('loadPattern', %d)\n", o.pattern)
	o.pattern = 0
}

// Solve writes the analysis commands. No results are available from a script.
func (o *Script) Solve() (*fem.Response, error) {
	io.Ff(o.Buf, "ops.constraints('Plain')\n")
	io.Ff(o.Buf, "ops.numberer('RCM')\n")
	io.Ff(o.Buf, "ops.system('BandGeneral')\n")
	io.Ff(o.Buf, "ops.algorithm('Linear')\n")
	io.Ff(o.Buf, "ops.integrator('LoadControl', 1)\n")
	io.Ff(o.Buf, "ops.analysis('Static')\n")
	io.Ff(o.Buf, "ops.analyze(1)\n")
	return &fem.Response{Disp: make(map[int][6]float64), Force: make(map[int][12]float64)}, nil
}

// nums formats numbers separated by commas
func (o *Script) nums(v ...float64) string {
	var b bytes.Buffer
	for k, x := range v {
		if k > 0 {
			io.Ff(&b, ", ")
		}
		io.Ff(&b, o.NumFmt, x)
	}
	return b.String()
}
