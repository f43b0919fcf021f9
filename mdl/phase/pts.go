// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import (
	"sort"

	"github.com/cpmech/gomix/mdl/frac"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// MeltPts implements a piecewise linear melting curve through points sorted by pressure
//  Parameters are named p0,T0, p1,T1, ...; the first and last segments are extrapolated
type MeltPts struct {
	Pts    []Point         // points sorted by pressure
	interp *fun.DataInterp // linear interpolator T(p)
}

// add model to factory
func init() {
	allocators["pts"] = func() Melting { return new(MeltPts) }
}

// Init initialises model
func (o *MeltPts) Init(prms dbf.Params) (err error) {
	o.Pts = make([]Point, 0, len(prms)/2)
	for i := 0; ; i++ {
		pp := prms.Find(io.Sf("p%d", i))
		tt := prms.Find(io.Sf("T%d", i))
		if pp == nil && tt == nil {
			break
		}
		if pp == nil || tt == nil {
			return chk.Err("pts: point #%d requires both \"p%d\" and \"T%d\"\n", i, i, i)
		}
		o.Pts = append(o.Pts, Point{pp.V, tt.V})
	}
	if 2*len(o.Pts) != len(prms) {
		return chk.Err("pts: parameters must be named p0,T0, p1,T1, ... without gaps\n")
	}
	if len(o.Pts) < 2 {
		return frac.Domainf("pts", "at least two points are required; got %d", len(o.Pts))
	}
	sort.Slice(o.Pts, func(i, j int) bool { return o.Pts[i].P < o.Pts[j].P })
	for i, pt := range o.Pts {
		if !pt.valid() {
			return frac.Domainf("pts", "point #%d must be positive; got (%g,%g)", i, pt.P, pt.T)
		}
		if i > 0 && pt.P == o.Pts[i-1].P {
			return frac.Domainf("pts", "pressures must be distinct; got %g twice", pt.P)
		}
	}
	P := make([]float64, len(o.Pts))
	T := make([]float64, len(o.Pts))
	for i, pt := range o.Pts {
		P[i], T[i] = pt.P, pt.T
	}
	o.interp = fun.NewDataInterp("lin", 1, P, T)
	return
}

// GetPrms gets (an example) of parameters
func (o MeltPts) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{ // water up to ice VII
			&dbf.P{N: "p0", V: 611.657}, &dbf.P{N: "T0", V: 273.16},
			&dbf.P{N: "p1", V: 209.9e6}, &dbf.P{N: "T1", V: 251.165},
			&dbf.P{N: "p2", V: 350.1e6}, &dbf.P{N: "T2", V: 256.164},
			&dbf.P{N: "p3", V: 632.4e6}, &dbf.P{N: "T3", V: 273.31},
			&dbf.P{N: "p4", V: 2.216e9}, &dbf.P{N: "T4", V: 355.0},
		}
	}
	prms := make(dbf.Params, 0, 2*len(o.Pts))
	for i, pt := range o.Pts {
		prms = append(prms, &dbf.P{N: io.Sf("p%d", i), V: pt.P}, &dbf.P{N: io.Sf("T%d", i), V: pt.T})
	}
	return prms
}

// Tmelt returns the melting temperature at pressure p
func (o MeltPts) Tmelt(p float64) float64 {
	return o.interp.P(p)
}
