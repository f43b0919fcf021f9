// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package frac implements the computation of mixture fractions (mass, molar, volume)
// from constituent quantities and the changes of basis between them
//  Notes:
//   * constituent i refers to the same substance in every vector describing a mixture
//   * all functions are pure and allocate their results
package frac

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// Fractions computes F[i] = Q[i] / sum(Q)
//  Q may hold masses, amounts, volumes or any density-like measure (sharing one dimension)
func Fractions(Q []float64) (F []float64, err error) {
	return normalise("fractions", Q)
}

// MassFromMolar converts molar fractions x into mass fractions using the molar masses M
//   w[i] = x[i]・M[i] / Σ x[j]・M[j]
func MassFromMolar(x, M []float64) (w []float64, err error) {
	return weigh("mass-from-molar", x, M, false)
}

// MolarFromMass converts mass fractions w into molar fractions using the molar masses M
//   x[i] = (w[i]/M[i]) / Σ (w[j]/M[j])
func MolarFromMass(w, M []float64) (x []float64, err error) {
	return weigh("molar-from-mass", w, M, true)
}

// VolumeFromMass converts mass fractions w into volume fractions using the mass densities rho
//   φ[i] = (w[i]/ρ[i]) / Σ (w[j]/ρ[j])
func VolumeFromMass(w, rho []float64) (phi []float64, err error) {
	return weigh("volume-from-mass", w, rho, true)
}

// MassFromVolume converts volume fractions phi into mass fractions using the mass densities rho
//   w[i] = φ[i]・ρ[i] / Σ φ[j]・ρ[j]
func MassFromVolume(phi, rho []float64) (w []float64, err error) {
	return weigh("mass-from-volume", phi, rho, false)
}

// VolumeFromMolar converts molar fractions x into volume fractions using the molar densities rhoMolar
//   φ[i] = (x[i]/ρm[i]) / Σ (x[j]/ρm[j])
func VolumeFromMolar(x, rhoMolar []float64) (phi []float64, err error) {
	return weigh("volume-from-molar", x, rhoMolar, true)
}

// MolarFromVolume converts volume fractions phi into molar fractions using the molar densities rhoMolar
//   x[i] = φ[i]・ρm[i] / Σ φ[j]・ρm[j]
func MolarFromVolume(phi, rhoMolar []float64) (x []float64, err error) {
	return weigh("molar-from-volume", phi, rhoMolar, false)
}

// weigh multiplies (or divides) F by the strictly positive weights c and normalises the result
func weigh(op string, F, c []float64, divide bool) ([]float64, error) {
	if err := SameLen(op, F, c); err != nil {
		return nil, err
	}
	Q := make([]float64, len(F))
	for i, ci := range c {
		if !(ci > 0) || math.IsInf(ci, 0) {
			return nil, Domainf(op, "coefficient #%d must be positive and finite; got %g", i, ci)
		}
		if divide {
			Q[i] = F[i] / ci
		} else {
			Q[i] = F[i] * ci
		}
	}
	return normalise(op, Q)
}

// normalise divides Q by its sum
//  Q is scaled by max(Q) first so that large finite quantities do not overflow the sum
func normalise(op string, Q []float64) ([]float64, error) {
	if len(Q) == 0 {
		return nil, Domainf(op, "at least one quantity is required")
	}
	qmax := 0.0
	for i, q := range Q {
		if q < 0 || math.IsNaN(q) || math.IsInf(q, 0) {
			return nil, Domainf(op, "quantity #%d must be non-negative and finite; got %g", i, q)
		}
		qmax = math.Max(qmax, q)
	}
	if !(qmax > 0) {
		return nil, Domainf(op, "sum of quantities must be positive; got %g", qmax)
	}
	F := make(la.Vector, len(Q))
	for i, q := range Q {
		F[i] = q / qmax
	}
	sum := F.Accum()
	for i := range F {
		F[i] /= sum
	}
	return F, nil
}
