// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

// SimplySupported computes the response of a simply supported beam under a concentrated load P at
// distance a from the left support, or under a uniformly distributed load q
//
//             P
//       a     |
//   |<------->v
//   o---------+-----------o
//   ^                     ^
//   |<------- L --------->|
//
type SimplySupported struct {
	L  float64 // span
	EI float64 // bending stiffness
}

// PointDeflection returns the deflection at x due to P applied at a (positive along P)
func (o SimplySupported) PointDeflection(P, a, x float64) float64 {
	if x > a {
		return o.PointDeflection(P, o.L-a, o.L-x)
	}
	b := o.L - a
	return P * b * x * (o.L*o.L - b*b - x*x) / (6.0 * o.L * o.EI)
}

// PointMoment returns the bending moment at x due to P applied at a (sagging positive)
func (o SimplySupported) PointMoment(P, a, x float64) float64 {
	if x > a {
		return P * a * (o.L - x) / o.L
	}
	return P * (o.L - a) * x / o.L
}

// PointReactions returns the left and right support reactions due to P applied at a
func (o SimplySupported) PointReactions(P, a float64) (RA, RB float64) {
	RB = P * a / o.L
	return P - RB, RB
}

// UniformDeflection returns the deflection at x due to a uniformly distributed load q
func (o SimplySupported) UniformDeflection(q, x float64) float64 {
	L := o.L
	return q * x * (L*L*L - 2.0*L*x*x + x*x*x) / (24.0 * o.EI)
}

// UniformMoment returns the bending moment at x due to a uniformly distributed load q
func (o SimplySupported) UniformMoment(q, x float64) float64 {
	return q * x * (o.L - x) / 2.0
}
