// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mix implements mixing rules to compute properties of mixtures from the properties
// of their constituents
//  Notes:
//   * every rule takes a table of property values and a fraction vector (same order)
//   * if any entry is a function of a state variable, the result is also a function of it
//   * with one constituent, every rule returns the sole property value unchanged
package mix

import (
	"math"

	"github.com/cpmech/gomix/mdl/frac"
	"github.com/cpmech/gosl/la"
)

// kernel computes a composite from scalar property values x, auxiliary values a and fractions f
type kernel func(op string, x, a, f []float64) (float64, error)

// rule gathers the data of one mixing rule
type rule struct {
	op       string // name used in error messages
	k        kernel // computes the composite
	aux      string // name of auxiliary table; "" if not needed
	identity bool   // single constituent returns the value unchanged
}

// apply validates the inputs and applies the rule either to scalars or pointwise to functions
func (o rule) apply(table Table, f []float64, aux Table) (Value, error) {
	if len(table) != len(f) {
		return Value{}, frac.Shapef(o.op, "table has %d entries but there are %d fractions", len(table), len(f))
	}
	if o.aux != "" {
		if len(aux) == 0 {
			return Value{}, frac.Shapef(o.op, "%s table is missing", o.aux)
		}
		if len(aux) != len(f) {
			return Value{}, frac.Shapef(o.op, "%s table has %d entries but there are %d fractions", o.aux, len(aux), len(f))
		}
	}
	if len(f) == 0 {
		return Value{}, frac.Domainf(o.op, "at least one constituent is required")
	}

	// scalars
	if !table.HasFunc() && !aux.HasFunc() {
		x, _ := table.At(0)
		a, _ := aux.At(0)
		res, err := o.k(o.op, x, a, f)
		if err != nil {
			return Value{}, err
		}
		if o.identity && len(f) == 1 {
			return table[0], nil
		}
		return Scalar(res), nil
	}

	// functions
	if o.identity && len(f) == 1 {
		return table[0], nil
	}
	tcopy := append(Table{}, table...)
	acopy := append(Table{}, aux...)
	fcopy := append([]float64{}, f...)
	return Function(func(t float64) (float64, error) {
		x, err := tcopy.At(t)
		if err != nil {
			return 0, err
		}
		a, err := acopy.At(t)
		if err != nil {
			return 0, err
		}
		return o.k(o.op, x, a, fcopy)
	}), nil
}

// Linear computes the weighted arithmetic mean
//   Σ f[i]・x[i]
//  Used for: molar mass, molar volume (Amagat), critical temperature (Kay), acentric factor,
//  heat capacities (Kopp), vapour pressure (Raoult)
func Linear(table Table, f []float64) (Value, error) {
	return linear.apply(table, f, nil)
}

// Parallel computes the weighted harmonic mean
//   1 / Σ (f[i]/x[i])
//  Used for: density (mass-weighted specific volume), molar density, elastic moduli and
//  strengths of solids, solid thermal conductivity
func Parallel(table Table, f []float64) (Value, error) {
	return parallel.apply(table, f, nil)
}

// SquareParallel computes the harmonic mean in the squared-inverse domain
//   1 / sqrt(Σ f[i]/x[i]²)
//  Used for: liquid thermal conductivity (DIPPR-9H)
func SquareParallel(table Table, f []float64) (Value, error) {
	return squareParallel.apply(table, f, nil)
}

// Logarithmic computes the weighted geometric mean
//   exp(Σ f[i]・ln(x[i]))
//  Used for: liquid and solid dynamic viscosity
//  Note: ln is applied to every entry, including the first one
func Logarithmic(table Table, f []float64) (Value, error) {
	return logarithmic.apply(table, f, nil)
}

// LogSum computes the log-domain composite Σ f[i]・ln(x[i]) without exponentiating it
func LogSum(table Table, f []float64) (Value, error) {
	return logSum.apply(table, f, nil)
}

// rules
var (
	linear         = rule{op: "linear", k: linearKernel, identity: true}
	parallel       = rule{op: "parallel", k: parallelKernel, identity: true}
	squareParallel = rule{op: "square-parallel", k: squareParallelKernel, identity: true}
	logarithmic    = rule{op: "logarithmic", k: logarithmicKernel, identity: true}
	logSum         = rule{op: "log-sum", k: logSumKernel}
)

func linearKernel(op string, x, a, f []float64) (float64, error) {
	return la.VecDot(f, x), nil
}

func parallelKernel(op string, x, a, f []float64) (float64, error) {
	if err := positive(op, "property", x); err != nil {
		return 0, err
	}
	den := 0.0
	for i, xi := range x {
		den += f[i] / xi
	}
	if den == 0 {
		return 0, frac.Domainf(op, "all fractions are zero")
	}
	return 1.0 / den, nil
}

func squareParallelKernel(op string, x, a, f []float64) (float64, error) {
	if err := positive(op, "property", x); err != nil {
		return 0, err
	}
	den := 0.0
	for i, xi := range x {
		den += f[i] / (xi * xi)
	}
	if !(den > 0) {
		return 0, frac.Domainf(op, "sum of f/x² must be positive; got %g", den)
	}
	return 1.0 / math.Sqrt(den), nil
}

func logarithmicKernel(op string, x, a, f []float64) (float64, error) {
	res, err := logSumKernel(op, x, a, f)
	if err != nil {
		return 0, err
	}
	return math.Exp(res), nil
}

func logSumKernel(op string, x, a, f []float64) (res float64, err error) {
	if err = positive(op, "property", x); err != nil {
		return
	}
	for i, xi := range x {
		res += f[i] * math.Log(xi)
	}
	return
}

// positive checks that all values are strictly positive and finite
func positive(op, name string, x []float64) error {
	for i, xi := range x {
		if !(xi > 0) || math.IsInf(xi, 0) {
			return frac.Domainf(op, "%s #%d must be positive and finite; got %g", name, i, xi)
		}
	}
	return nil
}
