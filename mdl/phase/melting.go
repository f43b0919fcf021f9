// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Melting defines the solid/liquid boundary T = Tmelt(p)
type Melting interface {
	Init(prms dbf.Params) error      // initialises model
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	Tmelt(p float64) float64         // melting temperature at pressure p
}

// NewMelting returns a new melting model
func NewMelting(name string) (model Melting, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'melting' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Melting{}
