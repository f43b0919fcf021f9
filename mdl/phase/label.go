// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import "github.com/cpmech/gosl/io"

// Label identifies the phase of a pure substance
//  Negative values are fluid phases; k >= 0 is the k-th solid polymorph
type Label int

// fluid phases
const (
	Supercritical Label = -3
	Vapor         Label = -2
	Liquid        Label = -1
)

// Solid returns the label of the k-th solid polymorph
func Solid(k int) Label {
	return Label(k)
}

// IsSolid tells whether this label is a solid polymorph
func (o Label) IsSolid() bool {
	return o >= 0
}

// String returns the name of the phase
func (o Label) String() string {
	switch o {
	case Supercritical:
		return "supercritical"
	case Vapor:
		return "vapor"
	case Liquid:
		return "liquid"
	}
	if o.IsSolid() {
		return io.Sf("solid-%d", int(o))
	}
	return io.Sf("unknown(%d)", int(o))
}

// Point holds a (pressure, temperature) pair
type Point struct {
	P float64 // pressure [Pa]
	T float64 // temperature [K]
}

// valid tells whether p and T are positive and finite
func (o Point) valid() bool {
	return o.P > 0 && o.T > 0 && o.P < inf && o.T < inf
}
