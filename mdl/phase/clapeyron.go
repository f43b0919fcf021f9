// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import (
	"math"
	"strings"

	"github.com/cpmech/gomix/mdl/frac"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Ru is the universal gas constant [J/(mol・K)]
const Ru = 8.31446261815324

var inf = math.Inf(1)

// Clapeyron implements the vapour/condensed boundary obtained by integrating the
// Clausius-Clapeyron equation from the triple point with constant latent heat
//   1/T(p) = m・ln(p) + b   with   m = -R/L,  b = 1/T0 - m・ln(p0)   and   R = Ru/M
type Clapeyron struct {

	// parameters
	P0 float64 // pressure at triple point [Pa]
	T0 float64 // temperature at triple point [K]
	L  float64 // latent heat of vaporisation [J/kg]
	M  float64 // molar mass [kg/mol]

	// derived
	m, b float64
}

// Init initialises this structure
func (o *Clapeyron) Init(prms dbf.Params) error {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "p0":
			o.P0 = p.V
		case "t0":
			o.T0 = p.V
		case "l":
			o.L = p.V
		case "m":
			o.M = p.V
		default:
			return chk.Err("clapeyron: parameter named %q is incorrect\n", p.N)
		}
	}
	return o.Set(o.P0, o.T0, o.L, o.M)
}

// GetPrms gets (an example) of parameters
func (o Clapeyron) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{ // water
			&dbf.P{N: "p0", V: 611.657},
			&dbf.P{N: "T0", V: 273.16},
			&dbf.P{N: "L", V: 2.501e6},
			&dbf.P{N: "M", V: 18.015e-3},
		}
	}
	return dbf.Params{
		&dbf.P{N: "p0", V: o.P0},
		&dbf.P{N: "T0", V: o.T0},
		&dbf.P{N: "L", V: o.L},
		&dbf.P{N: "M", V: o.M},
	}
}

// Set sets the parameters and computes the slope and intercept
func (o *Clapeyron) Set(p0, T0, L, M float64) error {
	if !(Point{p0, T0}).valid() {
		return frac.Domainf("clapeyron", "triple point must be positive; got p0=%g, T0=%g", p0, T0)
	}
	if !(L > 0) || math.IsInf(L, 0) {
		return frac.Domainf("clapeyron", "latent heat must be positive; got L=%g", L)
	}
	if !(M > 0) || math.IsInf(M, 0) {
		return frac.Domainf("clapeyron", "molar mass must be positive; got M=%g", M)
	}
	o.P0, o.T0, o.L, o.M = p0, T0, L, M
	R := Ru / M
	o.m = -R / L
	o.b = 1.0/T0 - o.m*math.Log(p0)
	return nil
}

// T returns the temperature on the boundary at pressure p
//  Note: returns +Inf when m・ln(p)+b <= 0 (i.e. no vapour at very high pressures)
func (o Clapeyron) T(p float64) float64 {
	den := o.m*math.Log(p) + o.b
	if den <= 0 {
		return inf
	}
	return 1.0 / den
}
