// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import (
	"strings"

	"github.com/cpmech/gomix/mdl/frac"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// MeltLin implements a melting curve given by the straight line through (p0,T0) and (pf,Tf)
type MeltLin struct {
	P0, T0 float64 // first point; usually the triple point
	Pf, Tf float64 // second point
}

// add model to factory
func init() {
	allocators["lin"] = func() Melting { return new(MeltLin) }
}

// Init initialises model
func (o *MeltLin) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "p0":
			o.P0 = p.V
		case "t0":
			o.T0 = p.V
		case "pf":
			o.Pf = p.V
		case "tf":
			o.Tf = p.V
		default:
			return chk.Err("lin: parameter named %q is incorrect\n", p.N)
		}
	}
	if !(Point{o.P0, o.T0}).valid() || !(Point{o.Pf, o.Tf}).valid() {
		return frac.Domainf("lin", "points must be positive; got (%g,%g) and (%g,%g)", o.P0, o.T0, o.Pf, o.Tf)
	}
	if o.Pf == o.P0 {
		return frac.Domainf("lin", "pressures of both points must differ; got %g", o.P0)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o MeltLin) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{ // water: triple point and ice Ih/III/liquid point
			&dbf.P{N: "p0", V: 611.657},
			&dbf.P{N: "T0", V: 273.16},
			&dbf.P{N: "pf", V: 209.9e6},
			&dbf.P{N: "Tf", V: 251.165},
		}
	}
	return dbf.Params{
		&dbf.P{N: "p0", V: o.P0},
		&dbf.P{N: "T0", V: o.T0},
		&dbf.P{N: "pf", V: o.Pf},
		&dbf.P{N: "Tf", V: o.Tf},
	}
}

// Tmelt returns the melting temperature at pressure p
func (o MeltLin) Tmelt(p float64) float64 {
	return o.T0 + (o.Tf-o.T0)*(p-o.P0)/(o.Pf-o.P0)
}
