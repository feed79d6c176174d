// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gogrillage/geo"
)

// Groups holds the spacing-signature ids of grid lines
type Groups struct {
	Long    []int           // [len(noz)] id of each longitudinal line
	Trans   []int           // [len(nox)] id of each transverse line, offset by MaxLong
	Spacing map[int]float64 // id => tributary spacing (sum of the spacings on both sides)
	MaxLong int             // largest longitudinal id
}

// Classify assigns ids to grid lines such that lines with the same spacing to their neighbours
// share an id. The first and last lines always get id 1 (edges).
func Classify(noz, nox []float64, decimals int) (o *Groups, err error) {
	if len(noz) < 2 || len(nox) < 2 {
		return nil, chk.Err("cannot classify less than 2 grid lines. len(noz)=%d, len(nox)=%d", len(noz), len(nox))
	}
	o = &Groups{Spacing: make(map[int]float64)}
	var spacing map[int]float64
	o.Long, spacing = Signatures(noz, decimals)
	for id, s := range spacing {
		o.Spacing[id] = s
		if id > o.MaxLong {
			o.MaxLong = id
		}
	}
	o.Trans, spacing = Signatures(nox, decimals)
	for i := range o.Trans {
		o.Trans[i] += o.MaxLong
	}
	for id, s := range spacing {
		o.Spacing[id+o.MaxLong] = s
	}
	return
}

// Signatures computes the spacing-signature id of each coordinate in v (sorted ascending).
// The signature of an interior line is the pair (left spacing, right spacing) rounded to decimals.
func Signatures(v []float64, decimals int) (ids []int, spacing map[int]float64) {
	n := len(v)
	ids = make([]int, n)
	spacing = make(map[int]float64)
	if n == 0 {
		return
	}
	ids[0], ids[n-1] = 1, 1
	if n > 1 {
		spacing[1] = geo.Round(v[1]-v[0], decimals)
	}
	keys := make(map[string]int)
	next := 2
	for i := 1; i < n-1; i++ {
		l := geo.Round(v[i]-v[i-1], decimals)
		r := geo.Round(v[i+1]-v[i], decimals)
		key := io.Sf("[%g, %g]", l, r)
		id, ok := keys[key]
		if !ok {
			id = next
			keys[key] = id
			spacing[id] = l + r
			next++
		}
		ids[i] = id
	}
	return
}
