// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements elastic parameters for solids
/*
 *   uniform:        E, ν (or λ, μ) and ρ are the same for all elements
 *   multimaterial:  E[eid], ν[eid] and ρ[eid] are given per element
 *
 *   λ = E ν / ((1 + ν)(1 - 2ν))      μ = E / (2 (1 + ν))
 *   plane-stress:   λ* = 2 λ μ / (λ + 2 μ)
 */
package solid

import (
	"errors"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// ErrMultimaterialSize is returned when per-element arrays do not match the number of elements
var ErrMultimaterialSize = errors.New("multimaterial arrays must have one value per element")

// Model defines the interface for elastic parameter models
type Model interface {
	Init(ndim int, pstress bool, prms dbf.Params) error      // initialises model
	SetMultimaterial(E, nu, rho []float64, nelems int) error // sets per-element parameters
	Rho(eid int) float64                                     // returns density of element
}

// New returns new solid model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'solid' database", name)
	}
	return allocator(), nil
}

// allocators holds all available solid models; modelname => allocator
var allocators = map[string]func() Model{}
