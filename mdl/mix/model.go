// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mix

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Rule defines a mixing rule
//  Input:
//   table -- property values; one per constituent
//   f     -- fractions in the same order as table
//   aux   -- auxiliary table (molar masses or molar densities); ignored by single-table rules
type Rule func(table Table, f []float64, aux Table) (Value, error)

// Get returns a mixing rule by name
func Get(name string) (Rule, error) {
	r, ok := allrules[name]
	if !ok {
		return nil, chk.Err("rule %q is not available in 'mix' database", name)
	}
	return r, nil
}

// RuleNames returns the names of all available rules in alphabetical order
func RuleNames() (names []string) {
	for name := range allrules {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allrules holds all available rules
var allrules = map[string]Rule{
	"linear":                   func(t Table, f []float64, _ Table) (Value, error) { return Linear(t, f) },
	"parallel":                 func(t Table, f []float64, _ Table) (Value, error) { return Parallel(t, f) },
	"square-parallel":          func(t Table, f []float64, _ Table) (Value, error) { return SquareParallel(t, f) },
	"logarithmic":              func(t Table, f []float64, _ Table) (Value, error) { return Logarithmic(t, f) },
	"herning-zipperer":         HerningZipperer,
	"wassiljewa":               Wassiljewa,
	"winterfeld-scriven-davis": WinterfeldScrivenDavis,
}
