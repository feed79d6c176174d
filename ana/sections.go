// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements cross-section properties and analytical beam solutions
package ana

import (
	"bytes"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CrossSection computes cross-sectional moments of inertia and other properties of a grillage
// member. The vertical axis of the section is y (deck normal); z is horizontal.
//
//   typ : rectangle
//         circle                             tw
//         I-beam                         -->| |<--
//                                    ___    | |     ___
//   ^ y       +-------+            tf |   ########   |
//   |         |       |              ---  ########   |
//   |         |       |                      ##      |
//   +----> z  |       | h = hei              ##      | h = hei
//             |       |                      ##      |
//             |       |              ---  ########   |
//             +-------+            tf_|_  ########  ---
//              b = wid                    b = wid
//
type CrossSection struct {

	// input
	Type string  // "rectangle", "I-beam" or "circle"
	Wid  float64 // width (b) if not circular
	Hei  float64 // height (h) if not circular
	Tf   float64 // flange thickness if I-beam
	Tw   float64 // web thickness if I-beam
	R    float64 // radius if circular

	// derived
	A  float64 // cross-sectional area
	Iz float64 // moment of inertia for vertical bending (about z)
	Iy float64 // moment of inertia for horizontal bending (about y)
	J  float64 // torsional constant
	Ay float64 // shear area along y
	Az float64 // shear area along z
}

// Init initialises structure and computes moment of inertia
func (o *CrossSection) Init(typ string, wid, hei, tf, tw, rad float64) (err error) {

	// input data
	o.Type, o.Wid, o.Hei, o.Tf, o.Tw, o.R = typ, wid, hei, tf, tw, rad

	// derived
	switch typ {
	case "rectangle":
		if wid <= 0 || hei <= 0 {
			return chk.Err("rectangle requires positive width and height. wid=%g, hei=%g", wid, hei)
		}
		b, h := wid, hei
		b3 := b * b * b
		h3 := h * h * h
		o.A = b * h
		o.Iz = b * h3 / 12.0
		o.Iy = b3 * h / 12.0
		if b == h {
			o.J = 9.0 * b3 * b / 64.0
		} else {
			if b > h {
				b, h = h, b
			}
			o.J = h * b3 * (1.0/3.0 - 0.21*(b/h)*(1.0-b*b3/(12.0*h*h3))) // approximate
		}
		o.Ay = 5.0 * o.A / 6.0
		o.Az = o.Ay

	case "I-beam":
		if wid <= 0 || hei <= 0 || tf <= 0 || tw <= 0 || 2.0*tf >= hei || tw >= wid {
			return chk.Err("I-beam dimensions are invalid. wid=%g, hei=%g, tf=%g, tw=%g", wid, hei, tf, tw)
		}
		b, h := wid, hei
		b3 := b * b * b
		h3 := h * h * h
		tf3 := tf * tf * tf
		tw3 := tw * tw * tw
		l := h - 2.0*tf
		l3 := l * l * l
		o.A = b*h - l*(b-tw)
		o.Iz = b*h3/12.0 - (b-tw)*l3/12.0
		o.Iy = l*tw3/12.0 + tf*b3/6.0
		o.J = (2.0*b*tf3 + (h-2.0*tf)*tw3) / 3.0
		o.Ay = h * tw
		o.Az = 2.0 * b * tf * 5.0 / 6.0

	case "circle":
		if rad <= 0 {
			return chk.Err("circle requires positive radius. rad=%g", rad)
		}
		r2 := rad * rad
		o.A = math.Pi * r2
		o.Iz = math.Pi * r2 * r2 / 4.0
		o.Iy = o.Iz
		o.J = o.Iz + o.Iy
		o.Ay = 0.9 * o.A
		o.Az = o.Ay

	default:
		return chk.Err("cross-section type %q is unavailable", typ)
	}
	return
}

// String returns a listing of the properties
func (o *CrossSection) String() string {
	var b bytes.Buffer
	io.Ff(&b, "%s: A=%g Iz=%g Iy=%g J=%g Ay=%g Az=%g", o.Type, o.A, o.Iz, o.Iy, o.J, o.Ay, o.Az)
	return b.String()
}
