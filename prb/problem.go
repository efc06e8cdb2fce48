// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package prb implements boundary-value problems: source terms, boundary conditions and exact solutions
package prb

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/npulgh/polyfem/inp"
)

// BC holds essential boundary conditions on one boundary id
type BC struct {
	Id   int     // boundary id
	Fcns []dbf.T // prescribed values; one per component
	Mask []bool  // constrained components
}

// Problem defines a boundary-value problem
//  Note: for tensor problems, Rhs returns the body force per unit mass;
//        it is multiplied by the element density during assembly
type Problem interface {
	Name() string                            // name of problem
	IsScalar() bool                          // scalar unknown; otherwise, vector (displacement)
	Rhs(val, x []float64)                    // source term or body force at x; len(val) = ncomps
	Dirichlet(id int) (bc *BC, ok bool)      // essential conditions on boundary id
	Neumann(id int) (fcns []dbf.T, ok bool)  // flux or traction on boundary id; one function per component
	HasExact() bool                          // the exact solution is known
	Exact(val, x []float64)                  // exact solution at x
	ExactGrad(grad [][]float64, x []float64) // exact gradient at x; grad[comp][dim]
}

// AllocatorType defines the function that allocates problems
type AllocatorType func(sim *inp.Settings, ndim int) (Problem, error)

// allocators holds all available problems
var allocators = make(map[string]AllocatorType)

// SetAllocator sets a new allocator
func SetAllocator(name string, fcn AllocatorType) {
	if _, ok := allocators[name]; ok {
		chk.Panic("cannot set allocator for problem named %q because it exists already", name)
	}
	allocators[name] = fcn
}

// New allocates the problem named in the settings
func New(sim *inp.Settings, ndim int) (Problem, error) {
	name := sim.Problem.Name
	alloc, ok := allocators[name]
	if !ok {
		return nil, chk.Err("cannot find problem named %q", name)
	}
	p, err := alloc(sim, ndim)
	if err != nil {
		return nil, chk.Err("cannot allocate problem %q:\n%v", name, err)
	}
	return p, nil
}

// Ncomps returns the number of components of the unknown field
func Ncomps(p Problem, ndim int) int {
	if p.IsScalar() {
		return 1
	}
	return ndim
}
