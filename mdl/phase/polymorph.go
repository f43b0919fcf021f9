// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import (
	"math"
	"strings"

	"github.com/cpmech/gomix/mdl/frac"
	"github.com/cpmech/gosl/chk"
)

// Line implements a straight solid/solid boundary through two points of the (p,T) plane
//  Isotherms (A.T == B.T) and isobars (A.P == B.P) are allowed
type Line struct {
	A, B Point
}

// NewLine returns the line through two distinct points
func NewLine(a, b Point) (Line, error) {
	if a == b {
		return Line{}, frac.Domainf("line", "points must be distinct; got (%g,%g) twice", a.P, a.T)
	}
	for _, v := range []float64{a.P, a.T, b.P, b.T} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Line{}, frac.Domainf("line", "points (%g,%g) and (%g,%g) must be finite", a.P, a.T, b.P, b.T)
		}
	}
	return Line{a, b}, nil
}

// NewSlopeLine returns the line through ref with slope dp/dT [Pa/K]
func NewSlopeLine(ref Point, dpdT float64) (Line, error) {
	return NewLine(ref, Point{ref.P + dpdT, ref.T + 1})
}

// Isotherm tells whether the line has constant temperature
func (o Line) Isotherm() bool { return o.A.T == o.B.T }

// Isobar tells whether the line has constant pressure
func (o Line) Isobar() bool { return o.A.P == o.B.P }

// P returns the pressure on the line at temperature T; NaN for isotherms
func (o Line) P(T float64) float64 {
	if o.Isotherm() {
		return math.NaN()
	}
	return o.A.P + (o.B.P-o.A.P)*(T-o.A.T)/(o.B.T-o.A.T)
}

// T returns the temperature on the line at pressure p; NaN for isobars
func (o Line) T(p float64) float64 {
	if o.Isobar() {
		return math.NaN()
	}
	return o.A.T + (o.B.T-o.A.T)*(p-o.A.P)/(o.B.P-o.A.P)
}

// Side tells which side of its boundary line a polymorph occupies
type Side int

const (
	HighPressure    Side = iota // p > line.P(T)
	LowPressure                 // p < line.P(T)
	HighTemperature             // T > line.T(p)
	LowTemperature              // T < line.T(p)
)

// String returns the name of the side
func (o Side) String() string {
	switch o {
	case HighPressure:
		return "high-p"
	case LowPressure:
		return "low-p"
	case HighTemperature:
		return "high-T"
	case LowTemperature:
		return "low-T"
	}
	return "unknown"
}

// ParseSide returns the side corresponding to name; "" means high-p
func ParseSide(name string) (Side, error) {
	switch strings.ToLower(name) {
	case "", "high-p":
		return HighPressure, nil
	case "low-p":
		return LowPressure, nil
	case "high-t":
		return HighTemperature, nil
	case "low-t":
		return LowTemperature, nil
	}
	return 0, chk.Err("side %q is invalid; options are \"high-p\", \"low-p\", \"high-T\" and \"low-T\"", name)
}

// Polymorph holds a solid phase occupying one side of a boundary line
type Polymorph struct {
	Label Label // solid label; must be >= 0
	Line  Line  // boundary with the other solids
	Side  Side  // side of Line owned by this solid
}

// check validates the label and whether the side can be measured on the line
func (o Polymorph) check() error {
	if !o.Label.IsSolid() {
		return frac.Domainf("polymorph", "label must be solid; got %v", o.Label)
	}
	if o.Line.A == o.Line.B {
		return frac.Domainf("polymorph", "%v: line is missing", o.Label)
	}
	switch o.Side {
	case HighPressure, LowPressure:
		if o.Line.Isotherm() {
			return frac.Domainf("polymorph", "%v: side %v requires a line that is not an isotherm", o.Label, o.Side)
		}
	case HighTemperature, LowTemperature:
		if o.Line.Isobar() {
			return frac.Domainf("polymorph", "%v: side %v requires a line that is not an isobar", o.Label, o.Side)
		}
	default:
		return frac.Domainf("polymorph", "%v: side %d is invalid", o.Label, int(o.Side))
	}
	return nil
}

// Contains tells whether (p,T) lies on the side of the boundary owned by this solid
func (o Polymorph) Contains(p, T float64) bool {
	switch o.Side {
	case LowPressure:
		return p < o.Line.P(T)
	case HighTemperature:
		return T > o.Line.T(p)
	case LowTemperature:
		return T < o.Line.T(p)
	}
	return p > o.Line.P(T)
}
