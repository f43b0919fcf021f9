// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frac

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Basis defines the kind of fraction
type Basis int

const (
	Mass   Basis = iota // mass fraction
	Molar               // mole fraction
	Volume              // volume fraction
)

// String returns the name of the basis
func (o Basis) String() string {
	switch o {
	case Mass:
		return "mass"
	case Molar:
		return "molar"
	case Volume:
		return "volume"
	}
	return "unknown"
}

// ParseBasis returns the basis corresponding to name
func ParseBasis(name string) (Basis, error) {
	switch strings.ToLower(name) {
	case "mass":
		return Mass, nil
	case "molar", "mole":
		return Molar, nil
	case "volume":
		return Volume, nil
	}
	return 0, chk.Err("basis %q is invalid; options are \"mass\", \"molar\" and \"volume\"", name)
}

// Dimension defines the physical dimension of a vector of quantities
type Dimension int

const (
	DimMass          Dimension = iota // [kg]
	DimAmount                         // [mol]
	DimVolume                         // [m³]
	DimMassDensity                    // [kg/m³] partial densities
	DimAmountDensity                  // [mol/m³] partial concentrations
	DimNumberDensity                  // [1/m³] particle number densities
)

// Quantities holds one quantity per constituent, all sharing one dimension
type Quantities struct {
	Dim Dimension // dimension of all values
	V   []float64 // values
}

// Basis returns the fraction basis obtained when normalising these quantities
func (o Quantities) Basis() Basis {
	switch o.Dim {
	case DimMass, DimMassDensity:
		return Mass
	case DimVolume:
		return Volume
	}
	return Molar
}

// Fractions normalises the quantities; see Fractions
func (o Quantities) Fractions() (F []float64, basis Basis, err error) {
	F, err = Fractions(o.V)
	return F, o.Basis(), err
}
