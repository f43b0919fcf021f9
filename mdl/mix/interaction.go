// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mix

import (
	"math"

	"github.com/cpmech/gomix/mdl/frac"
)

// HerningZipperer computes the gas viscosity of a mixture
//   μ = Σ f[i]・√M[i]・μ[i] / Σ f[i]・√M[i]
//  Input:
//   table -- viscosities
//   x     -- mole fractions
//   M     -- molar masses
func HerningZipperer(table Table, x []float64, M Table) (Value, error) {
	return herningZipperer.apply(table, x, M)
}

// Wassiljewa computes the gas thermal conductivity of a mixture using the Wassiljewa equation
// with the Herning-Zipperer interaction coefficients φ[i][j] = √(M[j]/M[i])
//   k = Σi f[i]・k[i] / (Σj f[j]・φ[i][j])
//  Input:
//   table -- thermal conductivities
//   x     -- mole fractions
//   M     -- molar masses
//  Note: the sum runs over all ordered pairs (i,j), including i == j
func Wassiljewa(table Table, x []float64, M Table) (Value, error) {
	return wassiljewa.apply(table, x, M)
}

// WinterfeldScrivenDavis computes the surface tension of a liquid mixture
//   σ = Σi Σj √(σ[i]・σ[j])・(ρ・f[i]/ρ[i])・(ρ・f[j]/ρ[j])
//  where ρ = 1 / Σ (f[i]/ρ[i]) is the molar density of the mixture
//  Input:
//   table -- surface tensions
//   x     -- mole fractions
//   rho   -- molar densities
func WinterfeldScrivenDavis(table Table, x []float64, rho Table) (Value, error) {
	return winterfeldScrivenDavis.apply(table, x, rho)
}

// rules
var (
	herningZipperer        = rule{op: "herning-zipperer", k: herningZippererKernel, aux: "molar-mass", identity: true}
	wassiljewa             = rule{op: "wassiljewa", k: wassiljewaKernel, aux: "molar-mass", identity: true}
	winterfeldScrivenDavis = rule{op: "winterfeld-scriven-davis", k: winterfeldKernel, aux: "molar-density", identity: true}
)

func herningZippererKernel(op string, x, M, f []float64) (float64, error) {
	if err := positive(op, "molar mass", M); err != nil {
		return 0, err
	}
	var num, den float64
	for i, xi := range x {
		c := f[i] * math.Sqrt(M[i])
		num += c * xi
		den += c
	}
	if den == 0 {
		return 0, frac.Domainf(op, "all fractions are zero")
	}
	return num / den, nil
}

func wassiljewaKernel(op string, x, M, f []float64) (res float64, err error) {
	if err = positive(op, "molar mass", M); err != nil {
		return
	}
	for i, xi := range x {
		den := 0.0
		for j := range x {
			den += f[j] * math.Sqrt(M[j]/M[i])
		}
		if den == 0 {
			return 0, frac.Domainf(op, "all fractions are zero")
		}
		res += f[i] * xi / den
	}
	return
}

func winterfeldKernel(op string, σ, ρ, f []float64) (res float64, err error) {
	if err = positive(op, "molar density", ρ); err != nil {
		return
	}
	for i, s := range σ {
		if s < 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			return 0, frac.Domainf(op, "surface tension #%d must be non-negative and finite; got %g", i, s)
		}
	}
	rhomix, err := parallelKernel(op, ρ, nil, f)
	if err != nil {
		return
	}
	for i := range σ {
		φi := rhomix * f[i] / ρ[i]
		for j := range σ {
			φj := rhomix * f[j] / ρ[j]
			res += math.Sqrt(σ[i]*σ[j]) * φi * φj
		}
	}
	return
}
