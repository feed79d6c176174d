// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// Hermite computes the 1D cubic Hermite functions at natural coordinate ξ ∈ [-1,1] for a segment
// of length l. The interpolated function is w(ξ) = N[0] w0 + N[1] θ0 + N[2] w1 + N[3] θ1,
// where θ = dw/dx with x measured along the segment.
//
//   N[0] -- value at node 0
//   N[1] -- slope at node 0
//   N[2] -- value at node 1
//   N[3] -- slope at node 1
func Hermite(ξ, l float64) (N [4]float64) {
	N[0] = (2.0 - 3.0*ξ + ξ*ξ*ξ) / 4.0
	N[1] = l * (1.0 - ξ) * (1.0 - ξ) * (1.0 + ξ) / 8.0
	N[2] = (2.0 + 3.0*ξ - ξ*ξ*ξ) / 4.0
	N[3] = -l * (1.0 + ξ) * (1.0 + ξ) * (1.0 - ξ) / 8.0
	return
}

// HermiteWeights holds the weights that turn a vertical point force into nodal forces and moments
// at the four corners of a cell (qua4 ordering)
type HermiteWeights struct {
	F  [4]float64 // vertical forces
	Mx [4]float64 // moments about the x-axis (rotation = -dw/dz)
	Mz [4]float64 // moments about the z-axis (rotation = dw/dx)
}

// HermiteQua4 computes the tensor-product Hermite weights at natural coordinates {η,ζ} of a cell
// with length a along η and length b along ζ. The force weights sum to one.
func HermiteQua4(η, ζ, a, b float64) (w HermiteWeights) {
	hη := Hermite(η, a)
	hζ := Hermite(ζ, b)
	nat := factory["qua4"].NatCoords
	for k := 0; k < 4; k++ {
		vη, sη := hη[0], hη[1]
		if nat[0][k] > 0 {
			vη, sη = hη[2], hη[3]
		}
		vζ, sζ := hζ[0], hζ[1]
		if nat[1][k] > 0 {
			vζ, sζ = hζ[2], hζ[3]
		}
		w.F[k] = vη * vζ
		w.Mz[k] = sη * vζ
		w.Mx[k] = -vη * sζ
	}
	return
}
