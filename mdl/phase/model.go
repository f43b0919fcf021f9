// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package phase implements the classification of the phase of pure substances
// from pressure and temperature
//  The boundaries are:
//   vapour/condensed -- Clausius-Clapeyron from the triple point
//   solid/liquid     -- melting model: straight line, Simon-Glatzel or piecewise linear
//   solid/solid      -- polymorph lines evaluated in order of priority
package phase

import (
	"strings"

	"github.com/cpmech/gomix/mdl/frac"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Rule pairs a boundary test with the label returned when the test is satisfied
type Rule struct {
	Label Label                   // phase
	Test  func(p, T float64) bool // tells whether (p,T) belongs to this phase
}

// Model implements the phase diagram of a pure substance
type Model struct {

	// input
	Triple     Point       // triple point
	Critical   Point       // critical point
	L          float64     // latent heat of vaporisation [J/kg]
	M          float64     // molar mass [kg/mol]
	Melt       Melting     // solid/liquid boundary
	Polymorphs []Polymorph // solid/solid boundaries in order of priority; Solid(0) is the default

	// derived
	Vapor Clapeyron // vapour/condensed boundary
	rules []Rule    // ordered rules; first match wins
}

// New returns a new phase model
//  Input:
//   prms       -- p0, T0 (triple point), pc, Tc (critical point), L and M
//   melt       -- initialised melting model
//   polymorphs -- solid/solid boundaries in order of priority
func New(prms dbf.Params, melt Melting, polymorphs ...Polymorph) (o *Model, err error) {
	o = new(Model)
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "p0":
			o.Triple.P = p.V
		case "t0":
			o.Triple.T = p.V
		case "pc":
			o.Critical.P = p.V
		case "tc":
			o.Critical.T = p.V
		case "l":
			o.L = p.V
		case "m":
			o.M = p.V
		default:
			return nil, chk.Err("phase: parameter named %q is incorrect\n", p.N)
		}
	}
	o.Melt = melt
	o.Polymorphs = polymorphs
	err = o.Init()
	if err != nil {
		return nil, err
	}
	return
}

// Init validates the input data and builds the ordered rules
func (o *Model) Init() (err error) {

	// check
	if !o.Triple.valid() {
		return frac.Domainf("phase", "triple point must be positive; got (%g,%g)", o.Triple.P, o.Triple.T)
	}
	if !o.Critical.valid() || o.Critical.P <= o.Triple.P || o.Critical.T <= o.Triple.T {
		return frac.Domainf("phase", "critical point (%g,%g) must be above the triple point (%g,%g)",
			o.Critical.P, o.Critical.T, o.Triple.P, o.Triple.T)
	}
	if o.Melt == nil {
		return frac.Domainf("phase", "melting model is missing")
	}
	for _, pm := range o.Polymorphs {
		if err = pm.check(); err != nil {
			return
		}
	}
	err = o.Vapor.Set(o.Triple.P, o.Triple.T, o.L, o.M)
	if err != nil {
		return
	}

	// fluids
	o.rules = []Rule{
		{Supercritical, func(p, T float64) bool {
			return T > o.Vapor.T(p) && T > o.Critical.T && p > o.Critical.P
		}},
		{Vapor, func(p, T float64) bool { return T > o.Vapor.T(p) }},
		{Liquid, func(p, T float64) bool { return T > o.Melt.Tmelt(p) }},
	}

	// solids
	for _, pm := range o.Polymorphs {
		o.rules = append(o.rules, Rule{pm.Label, pm.Contains})
	}
	o.rules = append(o.rules, Rule{Solid(0), func(p, T float64) bool { return true }})
	return
}

// Rules returns a copy of the ordered rules
func (o *Model) Rules() []Rule {
	return append([]Rule{}, o.rules...)
}

// Classify returns the phase at pressure p [Pa] and temperature T [K]
func (o *Model) Classify(p, T float64) (Label, error) {
	if o.rules == nil {
		return 0, chk.Err("phase model must be initialised first")
	}
	if !(Point{p, T}).valid() {
		return 0, frac.Domainf("classify", "pressure and temperature must be positive; got p=%g, T=%g", p, T)
	}
	for _, r := range o.rules {
		if r.Test(p, T) {
			return r.Label, nil
		}
	}
	return Solid(0), nil
}

// Tvap returns the temperature on the vapour/condensed boundary at pressure p
func (o *Model) Tvap(p float64) float64 {
	return o.Vapor.T(p)
}

// Tmelt returns the temperature on the solid/liquid boundary at pressure p
func (o *Model) Tmelt(p float64) float64 {
	return o.Melt.Tmelt(p)
}
