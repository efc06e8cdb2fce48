// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prb

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/npulgh/polyfem/inp"
	"gonum.org/v1/gonum/diff/fd"
)

// Generic implements a problem defined by functions given in the settings file
type Generic struct {
	name      string
	scalar    bool
	ncomps    int
	rhs       []dbf.T
	exact     []dbf.T
	dirichlet map[int]*BC
	neumann   map[int][]dbf.T
}

// add problems to factory
func init() {
	SetAllocator("GenericScalar", func(sim *inp.Settings, ndim int) (Problem, error) {
		return NewGeneric("GenericScalar", true, ndim, &sim.Problem, sim.Functions)
	})
	SetAllocator("GenericTensor", func(sim *inp.Settings, ndim int) (Problem, error) {
		return NewGeneric("GenericTensor", false, ndim, &sim.Problem, sim.Functions)
	})
}

// NewGeneric returns a problem defined by named functions
func NewGeneric(name string, scalar bool, ndim int, data *inp.ProblemData, funcs inp.FuncsData) (o *Generic, err error) {

	// new problem
	o = &Generic{name: name, scalar: scalar, ncomps: ndim}
	if scalar {
		o.ncomps = 1
	}

	// source term
	o.rhs, err = o.getFcns("rhs", data.Rhs, funcs, true)
	if err != nil {
		return nil, err
	}

	// exact solution
	if len(data.Exact) > 0 {
		o.exact, err = o.getFcns("exact", data.Exact, funcs, false)
		if err != nil {
			return nil, err
		}
	}

	// essential boundary conditions
	o.dirichlet = make(map[int]*BC)
	for _, d := range data.Dirichlet {
		bc := &BC{Id: d.Id}
		bc.Fcns, err = o.getFcns(io.Sf("dirichlet(id=%d)", d.Id), d.Funcs, funcs, true)
		if err != nil {
			return nil, err
		}
		bc.Mask = make([]bool, o.ncomps)
		switch len(d.Mask) {
		case 0:
			for i := range bc.Mask {
				bc.Mask[i] = true
			}
		case o.ncomps:
			copy(bc.Mask, d.Mask)
		default:
			return nil, chk.Err("mask of dirichlet(id=%d) must have %d entries; %d were given", d.Id, o.ncomps, len(d.Mask))
		}
		o.dirichlet[d.Id] = bc
	}

	// natural boundary conditions
	o.neumann = make(map[int][]dbf.T)
	for _, d := range data.Neumann {
		o.neumann[d.Id], err = o.getFcns(io.Sf("neumann(id=%d)", d.Id), d.Funcs, funcs, true)
		if err != nil {
			return nil, err
		}
	}
	return
}

// Name returns the name of problem
func (o *Generic) Name() string { return o.name }

// IsScalar tells whether the unknown is scalar
func (o *Generic) IsScalar() bool { return o.scalar }

// Rhs computes the source term
func (o *Generic) Rhs(val, x []float64) {
	for i, f := range o.rhs {
		val[i] = f.F(0, x)
	}
}

// Dirichlet returns the essential conditions on boundary id
func (o *Generic) Dirichlet(id int) (bc *BC, ok bool) {
	bc, ok = o.dirichlet[id]
	return
}

// Neumann returns the natural conditions on boundary id
func (o *Generic) Neumann(id int) (fcns []dbf.T, ok bool) {
	fcns, ok = o.neumann[id]
	return
}

// HasExact tells whether the exact solution was given
func (o *Generic) HasExact() bool { return o.exact != nil }

// Exact computes the exact solution
func (o *Generic) Exact(val, x []float64) {
	for i, f := range o.exact {
		val[i] = f.F(0, x)
	}
}

// ExactGrad computes the gradient of the exact solution by finite differences
func (o *Generic) ExactGrad(grad [][]float64, x []float64) {
	for i, f := range o.exact {
		fcn := f
		fd.Gradient(grad[i], func(y []float64) float64 { return fcn.F(0, y) }, x, &fd.Settings{Formula: fd.Central})
	}
}

// getFcns gets one function per component; an empty list means zero functions
func (o *Generic) getFcns(what string, names []string, funcs inp.FuncsData, allowEmpty bool) (fcns []dbf.T, err error) {
	if len(names) == 0 && allowEmpty {
		names = make([]string, o.ncomps)
	}
	if len(names) != o.ncomps {
		return nil, chk.Err("%s must have %d functions (one per component); %d were given", what, o.ncomps, len(names))
	}
	fcns, err = funcs.GetAll(names)
	if err != nil {
		return nil, chk.Err("cannot get functions of %s:\n%v", what, err)
	}
	return
}
