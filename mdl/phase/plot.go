// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots the boundaries of a phase model with pressure along x and temperature along y
//  Input:
//   pmin, pmax -- range of pressures for the vapour and melting curves
//   Tmin, Tmax -- range of temperatures for the polymorph lines
//   np         -- number of points
func Plot(o *Model, pmin, pmax, Tmin, Tmax float64, np int) {

	// vapour and melting curves
	P := utl.LinSpace(pmin, pmax, np)
	Tv := make([]float64, np)
	Tm := make([]float64, np)
	for i, p := range P {
		Tv[i] = math.Min(o.Tvap(p), Tmax)
		Tm[i] = o.Tmelt(p)
	}
	plt.Plot(P, Tv, &plt.A{C: "r", Ls: "-", L: "vapor"})
	plt.Plot(P, Tm, &plt.A{C: "b", Ls: "-", L: "melting"})

	// polymorph lines
	T := utl.LinSpace(Tmin, Tmax, np)
	for _, pm := range o.Polymorphs {
		Pl, Tl := make([]float64, np), make([]float64, np)
		for i := 0; i < np; i++ {
			if pm.Line.Isotherm() {
				Pl[i], Tl[i] = P[i], pm.Line.A.T
			} else {
				Pl[i], Tl[i] = pm.Line.P(T[i]), T[i]
			}
		}
		plt.Plot(Pl, Tl, &plt.A{C: "k", Ls: "--", L: io.Sf("%v", pm.Label)})
	}

	// reference points
	plt.Plot([]float64{o.Triple.P, o.Critical.P}, []float64{o.Triple.T, o.Critical.T}, &plt.A{C: "k", M: "o", Ls: "none"})
	plt.Gll("$p$", "$T$", nil)
}
