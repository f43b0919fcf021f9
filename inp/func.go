// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gomix/mdl/mix"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// FuncData holds function definition
type FuncData struct {
	Name string     `json:"name"` // name of function. ex: kl-water
	Type string     `json:"type"` // type of function. ex: cte, rmp, lin
	Prms dbf.Params `json:"prms"` // parameters
}

// FuncsData holds functions
type FuncsData []*FuncData

// Get returns function by name
func (o FuncsData) Get(name string) (fcn dbf.T, err error) {
	for _, f := range o {
		if f.Name == name {
			fcn, err = newFunc(f.Type, f.Prms)
			if err != nil {
				err = chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	err = chk.Err("cannot find function named %q\n", name)
	return
}

// newFunc allocates a gosl function; dbf panics on unknown types or parameters
func newFunc(typ string, prms dbf.Params) (fcn dbf.T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("%v", r)
		}
	}()
	fcn = dbf.New(typ, prms)
	if fcn == nil {
		return nil, chk.Err("cannot allocate function of type %q", typ)
	}
	return
}

// Value returns a temperature-dependent property value backed by the function named name
func (o FuncsData) Value(name string) (v mix.Value, err error) {
	fcn, err := o.Get(name)
	if err != nil {
		return
	}
	return mix.FromDbf(fcn), nil
}

// PlotAll plots all functions in [Ti, Tf] and saves one figure per function
func (o FuncsData) PlotAll(Ti, Tf float64, np int, skip []string, dirout, fnkey string) (err error) {
	T := utl.LinSpace(Ti, Tf, np)
	for _, f := range o {
		if utl.StrIndexSmall(skip, f.Name) >= 0 {
			continue
		}
		fcn, err := o.Get(f.Name)
		if err != nil {
			return err
		}
		Y := make([]float64, np)
		for i, t := range T {
			Y[i] = fcn.F(t, nil)
		}
		plt.Reset(false, nil)
		plt.Plot(T, Y, &plt.A{C: "b", Ls: "-", L: f.Name})
		plt.Gll("$T$", f.Name, nil)
		plt.Save(dirout, io.Sf("functions-%s-%s", fnkey, f.Name))
	}
	return
}

// String prints one function
func (o FuncData) String() string {
	l := io.Sf("    {\n      \"name\":%q, \"type\":%q, \"prms\" : [", o.Name, o.Type)
	for i, p := range o.Prms {
		if i > 0 {
			l += ","
		}
		l += io.Sf("\n        {\"n\":%q, \"v\":%g}", p.N, p.V)
	}
	return l + "\n      ]\n    }"
}

// String prints functions
func (o FuncsData) String() string {
	if len(o) == 0 {
		return "  \"functions\" : []"
	}
	l := "  \"functions\" : [\n"
	for i, f := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", f)
	}
	l += "\n  ]"
	return l
}
