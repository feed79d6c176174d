// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CheckNodal checks the Kronecker property of the shape functions at the vertices and the
// partition of unity (ΣS = 1, ΣdS/dR = 0) at the natural coordinates r
func CheckNodal(tst *testing.T, shape *Shape, r []float64, tol float64) {
	δ := make([]float64, shape.Nverts)
	rn := make([]float64, 2)
	for n := 0; n < shape.Nverts; n++ {
		for i := 0; i < shape.Gndim; i++ {
			rn[i] = shape.NatCoords[i][n]
		}
		shape.Func(shape.S, nil, rn, false)
		for m := range δ {
			δ[m] = 0
		}
		δ[n] = 1
		chk.Array(tst, io.Sf("%s: S @ vertex %d", shape.Type, n), tol, shape.S, δ)
	}
	shape.Func(shape.S, shape.DSdR, r, true)
	var sum float64
	dsum := make([]float64, shape.Gndim)
	for m := 0; m < shape.Nverts; m++ {
		sum += shape.S[m]
		for j := 0; j < shape.Gndim; j++ {
			dsum[j] += shape.DSdR[m][j]
		}
	}
	chk.Float64(tst, io.Sf("%s: ΣS", shape.Type), tol, sum, 1)
	chk.Array(tst, io.Sf("%s: ΣdS/dR", shape.Type), tol, dsum, make([]float64, shape.Gndim))
}

// CheckDSdR checks dSdR derivatives of shape structures against central differences
func CheckDSdR(tst *testing.T, shape *Shape, r []float64, tol float64, verbose bool) {

	// analytical
	shape.Func(shape.S, shape.DSdR, r, true)

	// numerical
	h := 1e-6
	sp := make([]float64, shape.Nverts)
	sm := make([]float64, shape.Nverts)
	rr := make([]float64, 2)
	for j := 0; j < shape.Gndim; j++ {
		copy(rr, r)
		rr[j] = r[j] + h
		shape.Func(sp, nil, rr, false)
		rr[j] = r[j] - h
		shape.Func(sm, nil, rr, false)
		for m := 0; m < shape.Nverts; m++ {
			num := (sp[m] - sm[m]) / (2.0 * h)
			if verbose {
				io.Pf("dS%d/dR%d: ana = %23.15e  num = %23.15e\n", m, j, shape.DSdR[m][j], num)
			}
			chk.Float64(tst, io.Sf("dS%d/dR%d", m, j), tol, shape.DSdR[m][j], num)
		}
	}
}

// CheckInvMap checks that InvMap recovers the natural coordinates of a point
//  x -- [2][nverts] coordinates matrix of cell
func CheckInvMap(tst *testing.T, shape *Shape, x [][]float64, r []float64, tol float64) {
	y := shape.RealCoords(x, r)
	res := make([]float64, 2)
	err := shape.InvMap(res, y, x)
	if err != nil {
		tst.Errorf("InvMap failed:\n%v", err)
		return
	}
	chk.Array(tst, io.Sf("%s: r(y=%v)", shape.Type, y), tol, res, r)
}
