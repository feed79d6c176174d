// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_sections01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sections01. typical cross-sections")

	var rect CrossSection
	b, h := 4.0, 6.0
	err := rect.Init("rectangle", b, h, 0, 0, 0)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	io.Pforan("4 x 6 rectangle: %v\n", rect.String())
	chk.Float64(tst, "rect: A ", 1e-17, rect.A, 24.0)
	chk.Float64(tst, "rect: Iz", 1e-17, rect.Iz, 72.0)
	chk.Float64(tst, "rect: Iy", 1e-17, rect.Iy, 32.0)
	chk.Float64(tst, "rect: J ", 1e-11, rect.J, 75.1249382716)
	chk.Float64(tst, "rect: Ay", 1e-15, rect.Ay, 20.0)

	b, h = 4.0, 4.0
	rect.Init("rectangle", b, h, 0, 0, 0)
	chk.Float64(tst, "rect: A ", 1e-17, rect.A, 16.0)
	chk.Float64(tst, "rect: Iz", 1e-13, rect.Iz, 21.3333333333333)
	chk.Float64(tst, "rect: Iy", 1e-13, rect.Iy, 21.3333333333333)
	chk.Float64(tst, "rect: J ", 1e-17, rect.J, 36.0)

	var ibeam CrossSection
	b, h = 4.0, 6.0
	tf, tw := 0.5, 0.3
	ibeam.Init("I-beam", b, h, tf, tw, 0)
	io.Pforan("4 x 6 I-beam: %v\n", ibeam.String())
	chk.Float64(tst, "I-beam: A ", 1e-17, ibeam.A, 5.5)
	chk.Float64(tst, "I-beam: Iz", 1e-10, ibeam.Iz, 33.4583333333)
	chk.Float64(tst, "I-beam: Iy", 1e-10, ibeam.Iy, 5.3445833333)
	chk.Float64(tst, "I-beam: J ", 1e-10, ibeam.J, 0.3783333333)

	var circle CrossSection
	r := 1.0
	circle.Init("circle", 0, 0, 0, 0, r)
	chk.Float64(tst, "circle: A ", 1e-17, circle.A, math.Pi)
	chk.Float64(tst, "circle: Iz", 1e-10, circle.Iz, 0.7853981634)
	chk.Float64(tst, "circle: Iy", 1e-10, circle.Iy, 0.7853981634)
	chk.Float64(tst, "circle: J ", 1e-11, circle.J, 1.5707963268)

	var bad CrossSection
	if err = bad.Init("T-beam", 1, 1, 0, 0, 0); err == nil {
		tst.Errorf("unknown cross-section must fail\n")
	}
	if err = bad.Init("I-beam", 1, 1, 0.6, 0.1, 0); err == nil {
		tst.Errorf("flanges thicker than section must fail\n")
	}
}

func Test_beams01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beams01. simply supported beam")

	sol := SimplySupported{L: 10, EI: 2e5}
	P := 12.0

	chk.Float64(tst, "δ(L/2)", 1e-15, sol.PointDeflection(P, 5, 5), P*1000/(48*2e5))
	chk.Float64(tst, "M(L/2)", 1e-15, sol.PointMoment(P, 5, 5), P*10/4)

	// symmetry
	chk.Float64(tst, "δ sym", 1e-15, sol.PointDeflection(P, 3, 7), sol.PointDeflection(P, 7, 3))
	chk.Float64(tst, "M(a)", 1e-15, sol.PointMoment(P, 3, 3), P*3*7/10)

	RA, RB := sol.PointReactions(P, 3)
	chk.Float64(tst, "RA", 1e-14, RA, P*0.7)
	chk.Float64(tst, "RB", 1e-14, RB, P*0.3)

	q := 2.0
	chk.Float64(tst, "δu(L/2)", 1e-15, sol.UniformDeflection(q, 5), 5*q*1e4/(384*2e5))
	chk.Float64(tst, "Mu(L/2)", 1e-15, sol.UniformMoment(q, 5), q*100/8)
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}
