// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import (
	"math"
	"strings"

	"github.com/cpmech/gomix/mdl/frac"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// SimonGlatzel implements the Simon-Glatzel melting curve
//   Tmelt(p) = T0・max((p - p0)/a + 1, 0)^(1/c)
//  Note: b is kept for reference only; it is not used by this form of the equation
type SimonGlatzel struct {
	P0, T0 float64 // reference point; usually the triple point
	A      float64 // slope [Pa]
	B      float64 // intercept (unused)
	C      float64 // exponent
}

// add model to factory
func init() {
	allocators["simon-glatzel"] = func() Melting { return new(SimonGlatzel) }
}

// Init initialises model
func (o *SimonGlatzel) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "p0":
			o.P0 = p.V
		case "t0":
			o.T0 = p.V
		case "a":
			o.A = p.V
		case "b":
			o.B = p.V
		case "c":
			o.C = p.V
		default:
			return chk.Err("simon-glatzel: parameter named %q is incorrect\n", p.N)
		}
	}
	if !(Point{o.P0, o.T0}).valid() {
		return frac.Domainf("simon-glatzel", "reference point must be positive; got (%g,%g)", o.P0, o.T0)
	}
	if o.A == 0 || math.IsNaN(o.A) || math.IsInf(o.A, 0) {
		return frac.Domainf("simon-glatzel", "slope a must be non-zero and finite; got %g", o.A)
	}
	if o.C == 0 || math.IsNaN(o.C) || math.IsInf(o.C, 0) {
		return frac.Domainf("simon-glatzel", "exponent c must be non-zero and finite; got %g", o.C)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o SimonGlatzel) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{ // nitrogen
			&dbf.P{N: "p0", V: 12.523e3},
			&dbf.P{N: "T0", V: 63.151},
			&dbf.P{N: "a", V: 160.28e6},
			&dbf.P{N: "b", V: 0},
			&dbf.P{N: "c", V: 1.78963},
		}
	}
	return dbf.Params{
		&dbf.P{N: "p0", V: o.P0},
		&dbf.P{N: "T0", V: o.T0},
		&dbf.P{N: "a", V: o.A},
		&dbf.P{N: "b", V: o.B},
		&dbf.P{N: "c", V: o.C},
	}
}

// Tmelt returns the melting temperature at pressure p
func (o SimonGlatzel) Tmelt(p float64) float64 {
	return o.T0 * math.Pow(math.Max((p-o.P0)/o.A+1.0, 0), 1.0/o.C)
}
