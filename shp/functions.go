// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

func init() {
	register("tri3", FuncTri3, [][]float64{
		{0, 1, 0},
		{0, 0, 1},
	})
	register("qua4", FuncQua4, [][]float64{
		{-1, 1, 1, -1},
		{-1, -1, 1, 1},
	})
	register("qua8", FuncQua8, [][]float64{
		{-1, 1, 1, -1, 0, 1, 0, -1},
		{-1, -1, 1, 1, -1, 0, 1, 0},
	})
}

// FuncTri3 calculates the shape functions (S) and derivatives of shape functions (dSdR) of tri3
// elements at {r,s} natural coordinates
//
//    s
//    |
//    2
//    |`.
//    |  `.
//    |    `.
//    |      `.
//    0--------1  --> r
//
func FuncTri3(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r, s := R[0], R[1]
	S[0] = 1.0 - r - s
	S[1] = r
	S[2] = s
	if !derivs {
		return
	}
	dSdR[0][0], dSdR[0][1] = -1.0, -1.0
	dSdR[1][0], dSdR[1][1] = 1.0, 0.0
	dSdR[2][0], dSdR[2][1] = 0.0, 1.0
}

// FuncQua4 calculates the shape functions (S) and derivatives of shape functions (dSdR) of qua4
// elements at {r,s} natural coordinates
//
//   3-----------2
//   |     s     |
//   |     |     |
//   |     +--r  |
//   |           |
//   |           |
//   0-----------1
//
func FuncQua4(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r, s := R[0], R[1]
	S[0] = (1.0 - r - s + r*s) / 4.0
	S[1] = (1.0 + r - s - r*s) / 4.0
	S[2] = (1.0 + r + s + r*s) / 4.0
	S[3] = (1.0 - r + s - r*s) / 4.0
	if !derivs {
		return
	}
	dSdR[0][0] = (-1.0 + s) / 4.0
	dSdR[1][0] = (+1.0 - s) / 4.0
	dSdR[2][0] = (+1.0 + s) / 4.0
	dSdR[3][0] = (-1.0 - s) / 4.0
	dSdR[0][1] = (-1.0 + r) / 4.0
	dSdR[1][1] = (-1.0 - r) / 4.0
	dSdR[2][1] = (+1.0 + r) / 4.0
	dSdR[3][1] = (+1.0 - r) / 4.0
}

// FuncQua8 calculates the shape functions (S) and derivatives of shape functions (dSdR) of qua8
// elements at {r,s} natural coordinates
//
//   3-----6-----2
//   |     s     |
//   |     |     |
//   7     +--r  5
//   |           |
//   |           |
//   0-----4-----1
//
func FuncQua8(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r, s := R[0], R[1]
	S[0] = (1.0 - r) * (1.0 - s) * (-r - s - 1.0) / 4.0
	S[1] = (1.0 + r) * (1.0 - s) * (r - s - 1.0) / 4.0
	S[2] = (1.0 + r) * (1.0 + s) * (r + s - 1.0) / 4.0
	S[3] = (1.0 - r) * (1.0 + s) * (-r + s - 1.0) / 4.0
	S[4] = (1.0 - s) * (1.0 - r*r) / 2.0
	S[5] = (1.0 + r) * (1.0 - s*s) / 2.0
	S[6] = (1.0 + s) * (1.0 - r*r) / 2.0
	S[7] = (1.0 - r) * (1.0 - s*s) / 2.0
	if !derivs {
		return
	}
	dSdR[0][0] = -(1.0 - s) * (-r - r - s) / 4.0
	dSdR[1][0] = (1.0 - s) * (r + r - s) / 4.0
	dSdR[2][0] = (1.0 + s) * (r + r + s) / 4.0
	dSdR[3][0] = -(1.0 + s) * (-r - r + s) / 4.0
	dSdR[4][0] = -r * (1.0 - s)
	dSdR[5][0] = (1.0 - s*s) / 2.0
	dSdR[6][0] = -r * (1.0 + s)
	dSdR[7][0] = -(1.0 - s*s) / 2.0

	dSdR[0][1] = -(1.0 - r) * (-s - s - r) / 4.0
	dSdR[1][1] = -(1.0 + r) * (-s - s + r) / 4.0
	dSdR[2][1] = (1.0 + r) * (s + s + r) / 4.0
	dSdR[3][1] = (1.0 - r) * (s + s - r) / 4.0
	dSdR[4][1] = -(1.0 - r*r) / 2.0
	dSdR[5][1] = -s * (1.0 + r)
	dSdR[6][1] = (1.0 - r*r) / 2.0
	dSdR[7][1] = -s * (1.0 - r)
}
