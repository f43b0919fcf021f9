// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frac

import "github.com/cpmech/gosl/io"

// DomainError reports physically invalid input; e.g. a zero-sum quantity
// vector or a non-positive value passed to a reciprocal rule
type DomainError struct {
	Op  string // operation that detected the error
	Msg string // message
}

// Error implements error
func (o *DomainError) Error() string {
	return io.Sf("%s: domain error: %s", o.Op, o.Msg)
}

// ShapeMismatchError reports vectors of differing lengths or a missing auxiliary table
type ShapeMismatchError struct {
	Op  string // operation that detected the error
	Msg string // message
}

// Error implements error
func (o *ShapeMismatchError) Error() string {
	return io.Sf("%s: shape mismatch: %s", o.Op, o.Msg)
}

// Domainf returns a new DomainError
func Domainf(op, msg string, prm ...interface{}) error {
	return &DomainError{Op: op, Msg: io.Sf(msg, prm...)}
}

// Shapef returns a new ShapeMismatchError
func Shapef(op, msg string, prm ...interface{}) error {
	return &ShapeMismatchError{Op: op, Msg: io.Sf(msg, prm...)}
}

// SameLen checks that all slices have the length of the first one
func SameLen(op string, a []float64, others ...[]float64) error {
	for k, b := range others {
		if len(b) != len(a) {
			return Shapef(op, "vector #%d has length %d but %d was expected", k+1, len(b), len(a))
		}
	}
	return nil
}
