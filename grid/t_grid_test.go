// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func Test_lines01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lines01. longitudinal lines")

	noz, err := longLines(Options{Width: 7, NumLongGrid: 7, EdgeDistA: 1, EdgeDistB: 1})
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	io.Pforan("noz = %v\n", noz)
	chk.Array(tst, "noz", 1e-15, noz, []float64{0, 1, 2.25, 3.5, 4.75, 6, 7})

	noz, _ = longLines(Options{Width: 6, NumLongGrid: 4})
	chk.Array(tst, "noz", 1e-15, noz, []float64{0, 2, 4, 6})

	noz, _ = longLines(Options{Width: 6, NumLongGrid: 4, Spacing: []float64{1, 4, 1}})
	chk.Array(tst, "noz", 1e-15, noz, []float64{0, 1, 5, 6})

	_, err = longLines(Options{Width: 6, NumLongGrid: 4, Spacing: []float64{1, 4, 2}})
	if err == nil {
		tst.Errorf("spacing not adding up to width must fail\n")
	}

	_, err = longLines(Options{Width: 2, NumLongGrid: 5, EdgeDistA: 1, EdgeDistB: 1})
	if err == nil {
		tst.Errorf("edge distances wider than deck must fail\n")
	}
}

func Test_lines02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lines02. orthogonal mesh with negative and positive skew")

	n, ntg := 7, 9
	for _, skew := range []float64{-42, 42} {
		o, err := New(Options{LongDim: 10, Width: 7, SkewA: skew, SkewB: skew, NumLongGrid: n,
			NumTransGrid: ntg, EdgeDistA: 1, EdgeDistB: 1, Type: Ortho})
		if err != nil {
			tst.Errorf("%v\n", err)
			return
		}
		io.Pforan("skew = %v\nnox = %v\n", skew, o.Nox)
		chk.Int(tst, "len(RegionA)", len(o.RegionA), ntg-(n-1))
		chk.Int(tst, "len(RegionB1)", len(o.RegionB1), n-1)
		chk.Int(tst, "len(RegionB2)", len(o.RegionB2), n-1)
		chk.Int(tst, "number of nodes", o.NumNodes(), n*ntg)
		for i := 1; i < len(o.Nox); i++ {
			if o.Nox[i] <= o.Nox[i-1] {
				tst.Errorf("nox must be strictly increasing: %v\n", o.Nox)
				return
			}
		}

		// every z-line holds ntg nodes
		for j := range o.Noz {
			count := 0
			for i := range o.Nox {
				if o.Has(i, j) {
					count++
				}
			}
			chk.Int(tst, io.Sf("nodes on z-line %d", j), count, ntg)
		}

		// the first and last x-lines hold a single node on the acute corner
		jlo, jhi := o.Extent(0)
		chk.Int(tst, "size of first x-line", jhi-jlo, 0)
		jlo, jhi = o.Extent(len(o.Nox) - 1)
		chk.Int(tst, "size of last x-line", jhi-jlo, 0)

		// skew edges are shifted by -z·tan(skew)
		t := math.Tan(skew * math.Pi / 180)
		last := len(o.Nox) - 1
		if skew > 0 {
			chk.Float64(tst, "xa0", 1e-14, o.RegionA[0], 0)
			chk.Float64(tst, "xa1", 1e-14, o.RegionA[len(o.RegionA)-1], 10-7*t)
			chk.Float64(tst, "first x-line", 1e-14, o.Nox[0], -7*t)
			chk.Float64(tst, "last x-line", 1e-14, o.Nox[last], 10)
			if !o.Has(0, n-1) || o.Has(0, n-2) {
				tst.Errorf("first x-line must only hold z-line n-1\n")
			}
			if !o.Has(last, 0) || o.Has(last, 1) {
				tst.Errorf("last x-line must only hold z-line 0\n")
			}
		} else {
			chk.Float64(tst, "xa0", 1e-14, o.RegionA[0], -7*t)
			chk.Float64(tst, "xa1", 1e-14, o.RegionA[len(o.RegionA)-1], 10)
			chk.Float64(tst, "first x-line", 1e-14, o.Nox[0], 0)
			chk.Float64(tst, "last x-line", 1e-14, o.Nox[last], 10-7*t)
			if !o.Has(0, 0) || o.Has(0, 1) {
				tst.Errorf("first x-line must only hold z-line 0\n")
			}
			if !o.Has(last, n-1) || o.Has(last, n-2) {
				tst.Errorf("last x-line must only hold z-line n-1\n")
			}
		}
	}

	// too few transverse lines for the skew triangles
	_, err := New(Options{LongDim: 10, Width: 7, SkewA: 42, SkewB: 42, NumLongGrid: n, NumTransGrid: n, Type: Ortho})
	if err == nil {
		tst.Errorf("ortho mesh with ntrans = nlong must fail\n")
	}
	io.Pforan("err = %v\n", err)
}

func Test_lines03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lines03. skew thresholds and overlapping triangles")

	opts := Options{LongDim: 10, Width: 7, NumLongGrid: 5, NumTransGrid: 7}

	opts.Type, opts.SkewA, opts.SkewB = Ortho, 10, 20
	if _, err := New(opts); err == nil {
		tst.Errorf("ortho with skew = 10 must fail\n")
	}
	opts.SkewA = 10.5
	if _, err := New(opts); err != nil {
		tst.Errorf("ortho with skew = 10.5 must pass\n%v\n", err)
	}
	opts.Type, opts.SkewA, opts.SkewB = Oblique, 30, 0
	if _, err := New(opts); err == nil {
		tst.Errorf("oblique with skew = 30 must fail\n")
	}
	opts.SkewA = -29.9
	if _, err := New(opts); err != nil {
		tst.Errorf("oblique with skew = -29.9 must pass\n%v\n", err)
	}

	// skew triangles overlapping
	opts = Options{LongDim: 5, Width: 7, SkewA: 42, SkewB: 42, NumLongGrid: 5, NumTransGrid: 7, Type: Ortho}
	_, err := New(opts)
	if err == nil {
		tst.Errorf("overlapping skew regions must fail\n")
	}
	io.Pforan("err = %v\n", err)

	opts.Type = "radial"
	if _, err = New(opts); err == nil {
		tst.Errorf("unknown mesh type must fail\n")
	}
}

func Test_lines04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lines04. oblique mesh with spans")

	o, err := New(Options{LongDim: 25, Width: 7, SkewA: 20, SkewB: 10, NumLongGrid: 5, NumTransGrid: 5,
		Spans: []float64{10, 15}, Type: Oblique})
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	io.Pforan("nox = %v\n", o.Nox)
	chk.Int(tst, "len(nox)", len(o.Nox), 9)
	chk.Ints(tst, "support", o.Support, []int{0, 4, 8})
	chk.Float64(tst, "nox[4]", 1e-15, o.Nox[4], 10)
	chk.Float64(tst, "nox[8]", 1e-15, o.Nox[8], 25)
	chk.Int(tst, "number of nodes", o.NumNodes(), 9*5)
	chk.Float64(tst, "tan(0)", 1e-15, o.TanAt(0), math.Tan(20*math.Pi/180))
	chk.Float64(tst, "tan(L)", 1e-15, o.TanAt(25), math.Tan(10*math.Pi/180))

	_, err = New(Options{LongDim: 25, Width: 7, NumLongGrid: 5, NumTransGrid: 5, Spans: []float64{10, 10}, Type: Oblique})
	if err == nil {
		tst.Errorf("spans not adding up to length must fail\n")
	}
}

func Test_classify01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("classify01. spacing signatures")

	noz := []float64{0, 1, 2.25, 3.5, 4.75, 6, 7}
	nox := []float64{0, 2.5, 5, 7.5, 10}
	g, err := Classify(noz, nox, 3)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	io.Pforan("long  = %v\n", g.Long)
	io.Pforan("trans = %v\n", g.Trans)
	chk.Ints(tst, "long", g.Long, []int{1, 2, 3, 3, 3, 4, 1})
	chk.Int(tst, "max long", g.MaxLong, 4)
	chk.Ints(tst, "trans", g.Trans, []int{5, 6, 6, 6, 5})
	chk.Float64(tst, "spacing of 1", 1e-15, g.Spacing[1], 1)
	chk.Float64(tst, "spacing of 2", 1e-15, g.Spacing[2], 2.25)
	chk.Float64(tst, "spacing of 3", 1e-15, g.Spacing[3], 2.5)
	chk.Float64(tst, "spacing of 4", 1e-15, g.Spacing[4], 2.25)
	chk.Float64(tst, "spacing of 6", 1e-15, g.Spacing[6], 5)

	// small differences below the rounding precision are merged
	ids, _ := Signatures([]float64{0, 1, 2.0001, 3.0001, 4}, 3)
	chk.Ints(tst, "ids", ids, []int{1, 2, 2, 2, 1})

	if _, err = Classify([]float64{0}, nox, 3); err == nil {
		tst.Errorf("classify must fail with one line\n")
	}
}

func Test_prop01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prop01. node count does not depend on skew sign")

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("ortho node count", prop.ForAll(
		func(a, b float64, na, nb bool, ntg int) bool {
			if na {
				a = -a
			}
			if nb {
				b = -b
			}
			n := 6
			o, err := New(Options{LongDim: 50, Width: 7, SkewA: a, SkewB: b, NumLongGrid: n, NumTransGrid: ntg, Type: Ortho})
			if err != nil {
				return false
			}
			return o.NumNodes() == n*ntg && len(o.Nox) == ntg+n-1
		},
		gen.Float64Range(10.5, 45),
		gen.Float64Range(10.5, 45),
		gen.Bool(),
		gen.Bool(),
		gen.IntRange(7, 15),
	))

	properties.TestingRun(tst)
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}
