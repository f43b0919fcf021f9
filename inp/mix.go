// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gomix/mdl/frac"
	"github.com/cpmech/gomix/mdl/mix"
	"github.com/cpmech/gomix/mdl/phase"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ConstituentData holds one constituent of a mixture
type ConstituentData struct {
	Name   string  `json:"name"`   // name of compound in the database
	Amount float64 `json:"amount"` // amount of substance [mol]; any consistent unit
}

// MixInput holds the data of a mixture calculation
type MixInput struct {
	Desc         string             `json:"desc"`         // description
	Cmpfile      string             `json:"cmpfile"`      // compounds file path, relative to the .mix file
	Constituents []*ConstituentData `json:"constituents"` // constituents
	T            float64            `json:"T"`            // temperature [K]
	P            float64            `json:"p"`            // pressure [Pa]
	Props        []string           `json:"props"`        // properties to compute; empty means all available

	// derived
	Dir string // directory of .mix file
}

// PropResult holds the value of one property of the mixture
type PropResult struct {
	Name  string  // property name
	Rule  string  // mixing rule
	Value float64 // value at T
}

// PhaseResult holds the phase of one constituent
type PhaseResult struct {
	Name  string      // compound name
	Label phase.Label // phase at (p,T)
}

// Report holds the results of a mixture calculation
type Report struct {
	Names     []string                 // constituents
	Fractions map[frac.Basis][]float64 // fractions by basis
	Props     []PropResult             // properties in the requested order
	Phases    []PhaseResult            // phases of constituents with a phase diagram
}

// ReadMix reads mixture input data from a .mix JSON file
func ReadMix(dir, fn string) (o *MixInput, err error) {
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read mixture file:\n%v", err)
	}
	o = new(MixInput)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot decode mixture file %q:\n%v", fn, err)
	}
	if len(o.Constituents) == 0 {
		return nil, chk.Err("mixture file %q has no constituents", fn)
	}
	o.Dir = dir
	return
}

// Db reads the compounds database named by Cmpfile
func (o MixInput) Db() (*CmpDb, error) {
	return ReadCmp(o.Dir, o.Cmpfile)
}

// Run computes the properties and phases of the mixture
func (o MixInput) Run(db *CmpDb) (r *Report, err error) {

	// composition
	r = new(Report)
	moles := make([]float64, len(o.Constituents))
	for i, c := range o.Constituents {
		r.Names = append(r.Names, c.Name)
		moles[i] = c.Amount
	}
	M, err := db.Scalars(r.Names, "molar-mass")
	if err != nil {
		return nil, err
	}
	rhom, err := db.Scalars(r.Names, "molar-density")
	if err != nil {
		rhom = nil
	}
	mixture, err := mix.NewMixture(moles, M, rhom)
	if err != nil {
		return nil, chk.Err("mixture:\n%v", err)
	}
	r.Fractions = mixture.Fractions

	// properties
	props := o.Props
	if len(props) == 0 {
		props = o.available(db, r.Names)
	}
	for _, prop := range props {
		table, err := db.Table(r.Names, prop)
		if err != nil {
			return nil, err
		}
		v, err := mixture.Compute(prop, table)
		if err != nil {
			return nil, chk.Err("property %q:\n%v", prop, err)
		}
		x, err := v.At(o.T)
		if err != nil {
			return nil, chk.Err("property %q at T=%g:\n%v", prop, o.T, err)
		}
		r.Props = append(r.Props, PropResult{prop, mix.Props[prop].Rule, x})
	}

	// phases
	for _, name := range r.Names {
		c, _ := db.Get(name)
		if c.Model == nil {
			continue
		}
		lbl, err := c.Model.Classify(o.P, o.T)
		if err != nil {
			return nil, chk.Err("compound %q:\n%v", name, err)
		}
		r.Phases = append(r.Phases, PhaseResult{name, lbl})
	}
	return
}

// available returns the properties known to all constituents
func (o MixInput) available(db *CmpDb, names []string) (props []string) {
	for _, prop := range mix.PropNames() {
		if _, err := db.Table(names, prop); err == nil {
			props = append(props, prop)
		}
	}
	return
}

// String prints the report
func (o Report) String() string {
	l := "constituents:\n"
	for i, name := range o.Names {
		l += io.Sf("  %-20s", name)
		for _, b := range []frac.Basis{frac.Molar, frac.Mass, frac.Volume} {
			if f, ok := o.Fractions[b]; ok {
				l += io.Sf("  %s = %.6f", b, f[i])
			}
		}
		l += "\n"
	}
	l += "properties:\n"
	for _, p := range o.Props {
		l += io.Sf("  %-28s %-25s %13.6e\n", p.Name, p.Rule, p.Value)
	}
	if len(o.Phases) > 0 {
		l += "phases:\n"
		for _, p := range o.Phases {
			l += io.Sf("  %-20s %v\n", p.Name, p.Label)
		}
	}
	return l
}
