// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mix

import "github.com/cpmech/gosl/fun/dbf"

// Func defines a property depending on one state variable; e.g. temperature
type Func func(t float64) (float64, error)

// Value holds a property value: either a scalar or a function of one state variable
type Value struct {
	S float64 // scalar value; used if F == nil
	F Func    // function; nil for scalars
}

// Scalar returns a scalar property value
func Scalar(s float64) Value {
	return Value{S: s}
}

// Function returns a property value depending on one state variable
func Function(f Func) Value {
	return Value{F: f}
}

// FromDbf returns a property value computed by a gosl function y(t) := F(t, nil)
func FromDbf(fcn dbf.T) Value {
	return Function(func(t float64) (float64, error) {
		return fcn.F(t, nil), nil
	})
}

// IsFunc tells whether this value is a function
func (o Value) IsFunc() bool {
	return o.F != nil
}

// At returns the value at state t (t is ignored for scalars)
func (o Value) At(t float64) (float64, error) {
	if o.F == nil {
		return o.S, nil
	}
	return o.F(t)
}

// Table holds one property value per constituent
type Table []Value

// Scalars returns a table of scalar values
func Scalars(xs ...float64) Table {
	o := make(Table, len(xs))
	for i, x := range xs {
		o[i] = Scalar(x)
	}
	return o
}

// HasFunc tells whether any entry is a function
func (o Table) HasFunc() bool {
	for _, v := range o {
		if v.F != nil {
			return true
		}
	}
	return false
}

// At evaluates all entries at state t
func (o Table) At(t float64) (x []float64, err error) {
	x = make([]float64, len(o))
	for i, v := range o {
		x[i], err = v.At(t)
		if err != nil {
			return nil, err
		}
	}
	return
}
