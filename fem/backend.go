// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem builds grillage models on a structural backend and runs static analyses
package fem

import (
	"bytes"
	"sort"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gogrillage/member"
)

// Backend defines the structural engine receiving the model. Calls must follow the order:
// nodes, transformations, elements, fixities; loads may be applied and solved repeatedly.
type Backend interface {
	Node(tag int, x, y, z float64) error                 // creates a node
	Transform(tag int, vec, offI, offJ [3]float64) error // creates a geometric transformation
	Element(tag, i, j, transf int, p member.Props) error // creates an elastic beam-column element
	Fix(node int, fix [6]int) error                      // restrains the dofs of a node
	Load(node int, f [6]float64) error                   // adds forces and moments to a node
	ClearLoads()                                         // removes all loads
	Solve() (*Response, error)                           // solves the linear static problem
}

// Response holds the solution of a static analysis
type Response struct {
	Disp  map[int][6]float64  // node tag => dx, dy, dz, θx, θy, θz
	Force map[int][12]float64 // element tag => local end forces: Vx, Vy, Vz, Mx, My, Mz at i then j
}

// allocators holds all available backends
var allocators = make(map[string]func(buf *bytes.Buffer) Backend)

// RegisterBackend makes a backend available by name. Script-like backends write to buf.
func RegisterBackend(name string, alloc func(buf *bytes.Buffer) Backend) {
	if _, ok := allocators[name]; ok {
		chk.Panic("cannot register backend %q twice", name)
	}
	allocators[name] = alloc
}

// NewBackend allocates a backend by name
func NewBackend(name string, buf *bytes.Buffer) (Backend, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, chk.Err("cannot find backend named %q. available: %v", name, Backends())
	}
	return alloc(buf), nil
}

// Backends returns the names of the available backends
func Backends() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
