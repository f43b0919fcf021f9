// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana holds reference constants of a few pure substances
package ana

import (
	"github.com/cpmech/gomix/mdl/phase"
	"github.com/cpmech/gosl/fun/dbf"
)

// Compound holds reference constants of a pure substance
type Compound struct {
	Name     string      // name of substance
	M        float64     // molar mass [kg/mol]
	Triple   phase.Point // triple point [Pa, K]
	Critical phase.Point // critical point [Pa, K]
	L        float64     // latent heat of vaporisation at the triple point [J/kg]

	// melting curve
	MeltModel string     // name of melting model; e.g. "lin", "simon-glatzel", "pts"
	MeltPrms  dbf.Params // parameters of melting model

	// solid/solid boundaries in order of priority
	Polymorphs []*phase.PolymorphData
}

// Water returns the constants of water; the solids are
//  0: ice Ih, 1: ice III, 2: ice V, 3: ice VI, 4: ice VII, 5: ice XI
func Water() *Compound {
	return &Compound{
		Name:      "water",
		M:         18.015e-3,
		Triple:    phase.Point{P: 611.657, T: 273.16},
		Critical:  phase.Point{P: 22.064e6, T: 647.096},
		L:         2.501e6,
		MeltModel: "pts",
		MeltPrms: dbf.Params{
			&dbf.P{N: "p0", V: 611.657}, &dbf.P{N: "T0", V: 273.16},  // triple point
			&dbf.P{N: "p1", V: 209.9e6}, &dbf.P{N: "T1", V: 251.165}, // Ih-III-liquid
			&dbf.P{N: "p2", V: 350.1e6}, &dbf.P{N: "T2", V: 256.164}, // III-V-liquid
			&dbf.P{N: "p3", V: 632.4e6}, &dbf.P{N: "T3", V: 273.31},  // V-VI-liquid
			&dbf.P{N: "p4", V: 2.216e9}, &dbf.P{N: "T4", V: 355.0},   // VI-VII-liquid
		},
		Polymorphs: []*phase.PolymorphData{
			{Label: 4, P0: 2.1e9, T0: 278, P1: 2.216e9, T1: 355},
			{Label: 3, P0: 620e6, T0: 218, P1: 632.4e6, T1: 273.31},
			{Label: 2, P0: 344.3e6, T0: 248.85, P1: 350.1e6, T1: 256.164},
			{Label: 1, P0: 212.9e6, T0: 238.5, P1: 209.9e6, T1: 251.165},
			{Label: 5, P0: 1, T0: 72, P1: 1e9, T1: 72, Side: "low-T"},
		},
	}
}

// Nitrogen returns the constants of nitrogen
func Nitrogen() *Compound {
	return &Compound{
		Name:      "nitrogen",
		M:         28.0134e-3,
		Triple:    phase.Point{P: 12.523e3, T: 63.151},
		Critical:  phase.Point{P: 3.3958e6, T: 126.192},
		L:         199.2e3,
		MeltModel: "simon-glatzel",
		MeltPrms: dbf.Params{
			&dbf.P{N: "p0", V: 12.523e3},
			&dbf.P{N: "T0", V: 63.151},
			&dbf.P{N: "a", V: 160.28e6},
			&dbf.P{N: "b", V: 0},
			&dbf.P{N: "c", V: 1.78963},
		},
	}
}

// Phase returns the phase model of this compound
func (o Compound) Phase() (*phase.Model, error) {
	return phase.Data{
		Prms: dbf.Params{
			&dbf.P{N: "p0", V: o.Triple.P},
			&dbf.P{N: "T0", V: o.Triple.T},
			&dbf.P{N: "pc", V: o.Critical.P},
			&dbf.P{N: "Tc", V: o.Critical.T},
			&dbf.P{N: "L", V: o.L},
			&dbf.P{N: "M", V: o.M},
		},
		Melting:    o.MeltModel,
		MeltPrms:   o.MeltPrms,
		Polymorphs: o.Polymorphs,
	}.New()
}
