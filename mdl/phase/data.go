// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import "github.com/cpmech/gosl/fun/dbf"

// PolymorphData holds the input data of a solid/solid boundary
type PolymorphData struct {
	Label int     `json:"label"` // solid label; e.g. 1 => solid-1
	P0    float64 `json:"p0"`    // pressure at first point
	T0    float64 `json:"T0"`    // temperature at first point
	P1    float64 `json:"p1"`    // pressure at second point
	T1    float64 `json:"T1"`    // temperature at second point
	Side  string  `json:"side"`  // "high-p" (default), "low-p", "high-T" or "low-T"
}

// Data holds the input data of a phase diagram
type Data struct {
	Prms       dbf.Params       `json:"prms"`       // p0, T0, pc, Tc, L and M
	Melting    string           `json:"melting"`    // name of melting model; e.g. "lin", "simon-glatzel", "pts"
	MeltPrms   dbf.Params       `json:"meltprms"`   // parameters of melting model
	Polymorphs []*PolymorphData `json:"polymorphs"` // solid/solid boundaries in order of priority
}

// New allocates the melting model and the polymorph lines and returns the phase model
func (o Data) New() (mdl *Model, err error) {
	melt, err := NewMelting(o.Melting)
	if err != nil {
		return
	}
	err = melt.Init(o.MeltPrms)
	if err != nil {
		return
	}
	polymorphs := make([]Polymorph, len(o.Polymorphs))
	for i, d := range o.Polymorphs {
		polymorphs[i].Label = Solid(d.Label)
		polymorphs[i].Side, err = ParseSide(d.Side)
		if err != nil {
			return
		}
		polymorphs[i].Line, err = NewLine(Point{d.P0, d.T0}, Point{d.P1, d.T1})
		if err != nil {
			return
		}
	}
	return New(o.Prms, melt, polymorphs...)
}
