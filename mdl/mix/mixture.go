// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mix

import (
	"sort"

	"github.com/cpmech/gomix/mdl/frac"
	"github.com/cpmech/gosl/chk"
)

// Prop tells how a property of a mixture is computed
type Prop struct {
	Rule  string     // name of mixing rule
	Basis frac.Basis // fractions given to the rule
	Aux   string     // auxiliary table required by the rule: "", "molar-mass" or "molar-density"
}

// Props maps property names to the way they are mixed
var Props = map[string]Prop{

	// linear
	"molar-mass":               {"linear", frac.Molar, ""},
	"molar-volume":             {"linear", frac.Molar, ""}, // Amagat
	"critical-temperature":     {"linear", frac.Molar, ""}, // Kay
	"critical-pressure":        {"linear", frac.Molar, ""}, // Kay
	"critical-volume":          {"linear", frac.Molar, ""},
	"critical-compressibility": {"linear", frac.Molar, ""},
	"acentric-factor":          {"linear", frac.Molar, ""},
	"molar-heat-capacity":      {"linear", frac.Molar, ""}, // Kopp
	"specific-heat-capacity":   {"linear", frac.Mass, ""},  // Kopp
	"vapor-pressure":           {"linear", frac.Molar, ""}, // Raoult

	// parallel
	"density":                    {"parallel", frac.Mass, ""},
	"molar-density":              {"parallel", frac.Molar, ""},
	"bulk-modulus":               {"parallel", frac.Volume, ""},
	"shear-modulus":              {"parallel", frac.Volume, ""},
	"tensile-modulus":            {"parallel", frac.Volume, ""},
	"tensile-strength":           {"parallel", frac.Volume, ""},
	"compressive-strength":       {"parallel", frac.Volume, ""},
	"shear-strength":             {"parallel", frac.Volume, ""},
	"solid-thermal-conductivity": {"parallel", frac.Volume, ""},

	// others
	"liquid-thermal-conductivity": {"square-parallel", frac.Mass, ""}, // DIPPR-9H
	"liquid-viscosity":            {"logarithmic", frac.Mass, ""},
	"solid-viscosity":             {"logarithmic", frac.Mass, ""},
	"gas-viscosity":               {"herning-zipperer", frac.Molar, "molar-mass"},
	"gas-thermal-conductivity":    {"wassiljewa", frac.Molar, "molar-mass"},
	"surface-tension":             {"winterfeld-scriven-davis", frac.Molar, "molar-density"},
}

// Mixture holds the composition of a mixture in all available bases
type Mixture struct {
	Fractions    map[frac.Basis][]float64 // fractions by basis
	MolarMass    Table                    // molar masses [kg/mol]
	MolarDensity Table                    // molar densities [mol/m³]; may be nil
}

// NewMixture returns a new mixture
//  Input:
//   moles        -- amounts of substance of each constituent
//   molarMass    -- molar masses
//   molarDensity -- molar densities to compute volume fractions; may be nil
func NewMixture(moles, molarMass, molarDensity []float64) (o *Mixture, err error) {
	o = new(Mixture)
	o.Fractions = make(map[frac.Basis][]float64)
	x, err := frac.Fractions(moles)
	if err != nil {
		return nil, err
	}
	w, err := frac.MassFromMolar(x, molarMass)
	if err != nil {
		return nil, err
	}
	o.Fractions[frac.Molar] = x
	o.Fractions[frac.Mass] = w
	o.MolarMass = Scalars(molarMass...)
	if molarDensity != nil {
		φ, err := frac.VolumeFromMolar(x, molarDensity)
		if err != nil {
			return nil, err
		}
		o.Fractions[frac.Volume] = φ
		o.MolarDensity = Scalars(molarDensity...)
	}
	return
}

// Compute computes a property of the mixture
//  Input:
//   name  -- property name; see Props
//   table -- property values of each constituent
func (o Mixture) Compute(name string, table Table) (Value, error) {
	p, ok := Props[name]
	if !ok {
		return Value{}, chk.Err("property %q is not available in 'mix' database", name)
	}
	f, ok := o.Fractions[p.Basis]
	if !ok {
		return Value{}, frac.Shapef(name, "%s fractions are not available", p.Basis)
	}
	var aux Table
	switch p.Aux {
	case "molar-mass":
		aux = o.MolarMass
	case "molar-density":
		aux = o.MolarDensity
	}
	r, err := Get(p.Rule)
	if err != nil {
		return Value{}, err
	}
	return r(table, f, aux)
}

// PropNames returns the names of all properties in Props in alphabetical order
func PropNames() (names []string) {
	for name := range Props {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
