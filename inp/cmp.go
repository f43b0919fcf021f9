// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.cmp) and (.mix) JSON files
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/cpmech/gomix/mdl/mix"
	"github.com/cpmech/gomix/mdl/phase"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Compound holds the properties of a pure substance
type Compound struct {

	// input
	Name  string            `json:"name"`  // name of compound
	Prms  dbf.Params        `json:"prms"`  // constant properties; e.g. "molar-mass", "density"
	Funcs map[string]string `json:"funcs"` // maps properties to the names of temperature functions
	Phase *phase.Data       `json:"phase"` // phase diagram; M is taken from "molar-mass" if absent

	// derived
	Model *phase.Model     // phase model; nil if Phase is nil
	fcns  map[string]dbf.T // temperature functions
}

// CompoundsData holds compounds
type CompoundsData []*Compound

// CmpDb implements a database of compounds
type CmpDb struct {

	// input
	Functions FuncsData     `json:"functions"` // all functions
	Compounds CompoundsData `json:"compounds"` // all compounds

	// derived
	byName map[string]*Compound
}

// ReadCmp reads all compounds data from a .cmp JSON file
func ReadCmp(dir, fn string) (cdb *CmpDb, err error) {

	// new database
	cdb = new(CmpDb)

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read compounds file:\n%v", err)
	}

	// decode
	err = json.Unmarshal(b, cdb)
	if err != nil {
		return nil, chk.Err("cannot decode compounds file %q:\n%v", fn, err)
	}

	// alloc/init: compounds
	cdb.byName = make(map[string]*Compound)
	for _, c := range cdb.Compounds {
		if _, ok := cdb.byName[c.Name]; ok {
			return nil, chk.Err("compound %q is defined more than once", c.Name)
		}
		cdb.byName[c.Name] = c
		c.fcns = make(map[string]dbf.T)
		for prop, fname := range c.Funcs {
			c.fcns[prop], err = cdb.Functions.Get(fname)
			if err != nil {
				return nil, chk.Err("compound %q: property %q:\n%v", c.Name, prop, err)
			}
		}
		if c.Phase != nil {
			c.Model, err = BuildPhase(c.Phase, c.Prms)
			if err != nil {
				return nil, chk.Err("compound %q: phase diagram:\n%v", c.Name, err)
			}
		}
	}
	return
}

// Get returns compound by name
func (o CmpDb) Get(name string) (*Compound, error) {
	if c, ok := o.byName[name]; ok {
		return c, nil
	}
	return nil, chk.Err("cannot find compound named %q", name)
}

// Names returns the names of all compounds in alphabetical order
func (o CmpDb) Names() (names []string) {
	for name := range o.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// Table returns the values of property prop of the compounds named names
func (o CmpDb) Table(names []string, prop string) (table mix.Table, err error) {
	table = make(mix.Table, len(names))
	for i, name := range names {
		c, err := o.Get(name)
		if err != nil {
			return nil, err
		}
		table[i], err = c.Value(prop)
		if err != nil {
			return nil, err
		}
	}
	return
}

// Scalars returns the constant values of property prop of the compounds named names
func (o CmpDb) Scalars(names []string, prop string) (x []float64, err error) {
	x = make([]float64, len(names))
	for i, name := range names {
		c, err := o.Get(name)
		if err != nil {
			return nil, err
		}
		p := c.Prms.Find(prop)
		if p == nil {
			return nil, chk.Err("compound %q has no constant property %q", name, prop)
		}
		x[i] = p.V
	}
	return
}

// Value returns the value of a property; functions take precedence over constants
func (o Compound) Value(prop string) (mix.Value, error) {
	if fcn, ok := o.fcns[prop]; ok {
		return mix.FromDbf(fcn), nil
	}
	if p := o.Prms.Find(prop); p != nil {
		return mix.Scalar(p.V), nil
	}
	return mix.Value{}, chk.Err("compound %q has no property %q", o.Name, prop)
}

// BuildPhase returns the phase model of a compound
//  cprms -- constant properties of the compound; "molar-mass" provides M when absent from d.Prms
func BuildPhase(d *phase.Data, cprms dbf.Params) (*phase.Model, error) {
	data := *d
	data.Prms = append(dbf.Params{}, d.Prms...)
	if data.Prms.Find("M") == nil {
		if p := cprms.Find("molar-mass"); p != nil {
			data.Prms = append(data.Prms, &dbf.P{N: "M", V: p.V})
		}
	}
	return data.New()
}

// String prints one compound
func (o Compound) String() string {
	l := io.Sf("    {\n      \"name\":%q, \"prms\" : [", o.Name)
	for i, p := range o.Prms {
		if i > 0 {
			l += ","
		}
		l += io.Sf("\n        {\"n\":%q, \"v\":%g}", p.N, p.V)
	}
	return l + "\n      ]\n    }"
}

// String prints the database
func (o CmpDb) String() string {
	l := "{\n" + o.Functions.String() + ",\n  \"compounds\" : [\n"
	for i, c := range o.Compounds {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", c)
	}
	return l + "\n  ]\n}"
}
