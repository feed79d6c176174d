// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid computes the longitudinal (noz) and transverse (nox) grid lines of a deck
package grid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// MeshType defines how transverse grid lines are laid out
type MeshType string

const (
	Ortho   MeshType = "ortho"   // transverse lines perpendicular to the longitudinal lines
	Oblique MeshType = "oblique" // transverse lines parallel to the skew edges
)

// skew thresholds [degrees]
var (
	OrthoMinSkew   = 10.0 // ortho meshes require |skew| > OrthoMinSkew at both edges
	ObliqueMaxSkew = 30.0 // oblique meshes require |skew| < ObliqueMaxSkew at both edges
)

// Options holds the deck geometry and grid counts
type Options struct {
	LongDim      float64   // length of deck along x (the whole length if Spans is given)
	Width        float64   // width of deck along z
	SkewA        float64   // skew angle of the start edge [deg]
	SkewB        float64   // skew angle of the end edge [deg]
	NumLongGrid  int       // number of longitudinal grid lines (z-lines)
	NumTransGrid int       // number of transverse grid lines (x-lines) per span; nodes per z-line (ortho)
	EdgeDistA    float64   // distance from edge line at z=0 to the first interior longitudinal line
	EdgeDistB    float64   // distance from edge line at z=Width to the last interior longitudinal line
	Spacing      []float64 // custom bay widths between longitudinal lines [NumLongGrid-1]. overrides EdgeDist
	Spans        []float64 // span lengths (oblique only). sum must equal LongDim
	Type         MeshType  // "ortho" or "oblique"
	Decimals     int       // decimal places used to compare spacings and transform vectors
}

// SetDefault sets default values
func (o *Options) SetDefault() {
	if o.Type == "" {
		o.Type = Ortho
	}
	if o.Decimals == 0 {
		o.Decimals = 3
	}
}

// Lines holds the grid lines of a deck
//
//   Orthogonal mesh with positive skew (t = tan(skew)); the skew edges are shifted by -z·t:
//
//      z=W  +------+-------------------+
//            \  B1  |         A         |\
//              \    |                   |  \  B2
//      z=0       \  +-------------------+----+
//        x=-W·t1   0                 L-W·t2   L
//
type Lines struct {
	Noz      []float64 // z coordinates of longitudinal grid lines
	Nox      []float64 // x coordinates of transverse grid lines at z=0 (oblique) or absolute (ortho)
	RegionA  []float64 // x coordinates of full-width transverse lines (ortho)
	RegionB1 []float64 // x coordinates of transverse lines in the start skew triangle (ortho)
	RegionB2 []float64 // x coordinates of transverse lines in the end skew triangle (ortho)
	Support  []int     // indices of x-lines that are support lines (oblique)
	TanA     float64   // tangent of start skew
	TanB     float64   // tangent of end skew
	Type     MeshType  // mesh type
	Length   float64   // length along x
	Width    float64   // width along z
	lo, hi   []int     // extents of z-line indices on each x-line
}

// New computes the grid lines
func New(opts Options) (o *Lines, err error) {

	// check
	opts.SetDefault()
	if opts.LongDim <= 0 || opts.Width <= 0 {
		return nil, chk.Err("deck dimensions must be positive. LongDim=%g, Width=%g", opts.LongDim, opts.Width)
	}
	if opts.NumLongGrid < 2 {
		return nil, chk.Err("number of longitudinal grid lines must be at least 2. %d is invalid", opts.NumLongGrid)
	}
	if opts.NumTransGrid < 2 {
		return nil, chk.Err("number of transverse grid lines must be at least 2. %d is invalid", opts.NumTransGrid)
	}

	// lines
	o = &Lines{
		TanA:   math.Tan(opts.SkewA * math.Pi / 180.0),
		TanB:   math.Tan(opts.SkewB * math.Pi / 180.0),
		Type:   opts.Type,
		Length: opts.LongDim,
		Width:  opts.Width,
	}
	o.Noz, err = longLines(opts)
	if err != nil {
		return nil, err
	}
	switch opts.Type {
	case Ortho:
		err = o.ortho(opts)
	case Oblique:
		err = o.oblique(opts)
	default:
		err = chk.Err("mesh type %q is not available", opts.Type)
	}
	if err != nil {
		return nil, err
	}
	return
}

// Extent returns the first and last z-line indices present on x-line i
func (o *Lines) Extent(i int) (jlo, jhi int) {
	return o.lo[i], o.hi[i]
}

// Has tells whether x-line i holds a node on z-line j
func (o *Lines) Has(i, j int) bool {
	if i < 0 || i >= len(o.Nox) || j < 0 || j >= len(o.Noz) {
		return false
	}
	return j >= o.lo[i] && j <= o.hi[i]
}

// TanAt returns the tangent of the skew angle at x-line position x, interpolated linearly between
// the start and end edges
func (o *Lines) TanAt(x float64) float64 {
	t := x / o.Length
	return o.TanA + t*(o.TanB-o.TanA)
}

// NumNodes returns the number of grid nodes
func (o *Lines) NumNodes() (n int) {
	for i := range o.Nox {
		n += o.hi[i] - o.lo[i] + 1
	}
	return
}

// longLines computes the z coordinates of longitudinal lines
func longLines(opts Options) (noz []float64, err error) {
	n := opts.NumLongGrid
	W := opts.Width
	if len(opts.Spacing) > 0 {
		if len(opts.Spacing) != n-1 {
			return nil, chk.Err("custom spacing requires %d bay widths. %d is invalid", n-1, len(opts.Spacing))
		}
		noz = make([]float64, n)
		for j, s := range opts.Spacing {
			if s <= 0 {
				return nil, chk.Err("bay width must be positive. %g is invalid", s)
			}
			noz[j+1] = noz[j] + s
		}
		if math.Abs(noz[n-1]-W) > 1e-6*W {
			return nil, chk.Err("custom spacing adds up to %g but the width is %g", noz[n-1], W)
		}
		noz[n-1] = W
		return
	}
	if opts.EdgeDistA == 0 && opts.EdgeDistB == 0 {
		return utl.LinSpace(0, W, n), nil
	}
	if opts.EdgeDistA < 0 || opts.EdgeDistB < 0 || opts.EdgeDistA+opts.EdgeDistB >= W {
		return nil, chk.Err("edge distances (%g, %g) are incompatible with width %g", opts.EdgeDistA, opts.EdgeDistB, W)
	}
	switch n {
	case 2:
		return []float64{0, W}, nil
	case 3:
		return []float64{0, (opts.EdgeDistA + W - opts.EdgeDistB) / 2.0, W}, nil
	}
	noz = append([]float64{0}, utl.LinSpace(opts.EdgeDistA, W-opts.EdgeDistB, n-2)...)
	return append(noz, W), nil
}

// oblique computes transverse lines parallel to the skew edges
func (o *Lines) oblique(opts Options) (err error) {
	if math.Abs(opts.SkewA) >= ObliqueMaxSkew || math.Abs(opts.SkewB) >= ObliqueMaxSkew {
		return chk.Err("oblique mesh requires |skew| < %g. skew angles (%g, %g) are invalid; use an ortho mesh instead",
			ObliqueMaxSkew, opts.SkewA, opts.SkewB)
	}
	spans := opts.Spans
	if len(spans) == 0 {
		spans = []float64{opts.LongDim}
	}
	sum := 0.0
	for _, s := range spans {
		if s <= 0 {
			return chk.Err("span length must be positive. %g is invalid", s)
		}
		sum += s
	}
	if math.Abs(sum-opts.LongDim) > 1e-6*opts.LongDim {
		return chk.Err("spans add up to %g but the deck length is %g", sum, opts.LongDim)
	}
	x0 := 0.0
	o.Nox = []float64{0}
	o.Support = []int{0}
	for _, s := range spans {
		x1 := x0 + s
		o.Nox = append(o.Nox, utl.LinSpace(x0, x1, opts.NumTransGrid)[1:]...)
		o.Support = append(o.Support, len(o.Nox)-1)
		x0 = x1
	}
	o.Nox[len(o.Nox)-1] = opts.LongDim
	n := len(o.Noz)
	o.lo = make([]int, len(o.Nox))
	o.hi = make([]int, len(o.Nox))
	for i := range o.Nox {
		o.hi[i] = n - 1
	}
	return
}

// ortho computes transverse lines perpendicular to the longitudinal lines. Every z-line holds
// NumTransGrid nodes: the skew triangles take one x-line per skew-edge node and region A gets the
// remaining NumTransGrid-(NumLongGrid-1) lines.
func (o *Lines) ortho(opts Options) (err error) {
	if math.Abs(opts.SkewA) <= OrthoMinSkew || math.Abs(opts.SkewB) <= OrthoMinSkew {
		return chk.Err("ortho mesh requires |skew| > %g. skew angles (%g, %g) are invalid; use an oblique mesh instead",
			OrthoMinSkew, opts.SkewA, opts.SkewB)
	}
	if len(opts.Spans) > 1 {
		return chk.Err("multi-span decks require an oblique mesh")
	}
	L, W := opts.LongDim, opts.Width
	t1, t2 := o.TanA, o.TanB
	n := len(o.Noz)
	na := opts.NumTransGrid - (n - 1)
	if na < 2 {
		return chk.Err("ortho mesh with %d longitudinal grid lines requires more than %d transverse grid lines. %d is invalid",
			n, n, opts.NumTransGrid)
	}

	// region A: full-width lines between the obtuse corners
	xa0 := math.Max(0, -W*t1)
	xa1 := math.Min(L, L-W*t2)
	if xa1-xa0 <= 1e-9*L {
		return chk.Err("long_dim = %g is too short for skew angles (%g, %g): the skew triangles overlap (region A = [%g, %g])",
			L, opts.SkewA, opts.SkewB, xa0, xa1)
	}
	o.RegionA = utl.LinSpace(xa0, xa1, na)

	// region B1: lines through the start-edge nodes, x = -z·t1
	var lo, hi []int
	if t1 > 0 {
		for k := n - 1; k > 0; k-- {
			o.RegionB1 = append(o.RegionB1, -o.Noz[k]*t1)
			lo, hi = append(lo, k), append(hi, n-1)
		}
	} else {
		for k := 0; k < n-1; k++ {
			o.RegionB1 = append(o.RegionB1, -o.Noz[k]*t1)
			lo, hi = append(lo, 0), append(hi, k)
		}
	}

	// region A
	for range o.RegionA {
		lo, hi = append(lo, 0), append(hi, n-1)
	}

	// region B2: lines through the end-edge nodes, x = L - z·t2
	if t2 > 0 {
		for k := n - 2; k >= 0; k-- {
			o.RegionB2 = append(o.RegionB2, L-o.Noz[k]*t2)
			lo, hi = append(lo, 0), append(hi, k)
		}
	} else {
		for k := 1; k < n; k++ {
			o.RegionB2 = append(o.RegionB2, L-o.Noz[k]*t2)
			lo, hi = append(lo, k), append(hi, n-1)
		}
	}

	// all lines
	o.Nox = append(append(append([]float64{}, o.RegionB1...), o.RegionA...), o.RegionB2...)
	o.lo, o.hi = lo, hi
	return
}
