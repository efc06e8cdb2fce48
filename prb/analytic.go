// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prb

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/npulgh/polyfem/ana"
	"github.com/npulgh/polyfem/inp"
)

// Analytic implements a problem with a known analytical solution
type Analytic struct {
	name      string
	scalar    bool
	ndim      int
	sol       ana.Solution
	rhs       func(val, x []float64)
	dirichlet func(id int) (*BC, bool)
	neumann   map[int][]dbf.T
	shift     []float64 // origin of the analytical solution
}

// add problems to factory
func init() {
	SetAllocator("ZeroBC", func(sim *inp.Settings, ndim int) (Problem, error) {
		return NewZeroBC(ndim), nil
	})
	SetAllocator("UniaxialBar", func(sim *inp.Settings, ndim int) (Problem, error) {
		return NewUniaxialBar(ndim, sim.Pstress, sim.Problem.Load, sim.Mesh.Xmin, sim.Params), nil
	})
	SetAllocator("SelfWeight", func(sim *inp.Settings, ndim int) (Problem, error) {
		return NewSelfWeight(ndim, sim.Mesh.Xmin, sim.Mesh.Xmax, sim.Params), nil
	})
}

// NewZeroBC returns the Poisson problem on the unit box with zero values on the whole boundary
func NewZeroBC(ndim int) (o *Analytic) {
	var sol ana.PoissonBox
	zero := &BC{Fcns: zeros(1), Mask: []bool{true}}
	return &Analytic{
		name:   "ZeroBC",
		scalar: true,
		ndim:   ndim,
		sol:    sol,
		rhs:    func(val, x []float64) { val[0] = sol.Source(x) },
		dirichlet: func(id int) (*BC, bool) {
			return &BC{Id: id, Fcns: zero.Fcns, Mask: zero.Mask}, true
		},
	}
}

// NewUniaxialBar returns the elastic bar with rollers at xmin and traction at xmax[0]
func NewUniaxialBar(ndim int, pstress bool, load float64, xmin []float64, prms dbf.Params) (o *Analytic) {
	sol := new(ana.UniaxialBar)
	sol.Init(ndim, pstress, load, xmin, prms)
	traction := zeros(ndim)
	traction[0] = &dbf.Cte{C: load}
	return &Analytic{
		name:      "UniaxialBar",
		ndim:      ndim,
		sol:       sol,
		rhs:       func(val, x []float64) {},
		dirichlet: rollers(ndim, false),
		neumann:   map[int][]dbf.T{2: traction},
	}
}

// NewSelfWeight returns the laterally confined elastic column under gravity
//  Note: the last coordinate is the elevation; rollers on the lateral sides and at the bottom
func NewSelfWeight(ndim int, xmin, xmax []float64, prms dbf.Params) (o *Analytic) {
	h := xmax[ndim-1] - xmin[ndim-1]
	all := dbf.Params{
		&dbf.P{N: "E", V: param(prms, "E", 1)},
		&dbf.P{N: "nu", V: param(prms, "nu", 0)},
		&dbf.P{N: "rho", V: param(prms, "rho", 1)},
		&dbf.P{N: "g", V: param(prms, "g", 10)},
		&dbf.P{N: "h", V: h},
	}
	sol := new(ana.ConfinedSelfWeight)
	sol.Init(all)
	g := sol.Gravity()
	return &Analytic{
		name:      "SelfWeight",
		ndim:      ndim,
		sol:       sol,
		rhs:       func(val, x []float64) { val[ndim-1] = -g },
		dirichlet: rollers(ndim, true),
		shift:     xmin,
	}
}

// Name returns the name of problem
func (o *Analytic) Name() string { return o.name }

// IsScalar tells whether the unknown is scalar
func (o *Analytic) IsScalar() bool { return o.scalar }

// Rhs computes the source term or body force
func (o *Analytic) Rhs(val, x []float64) {
	for i := range val {
		val[i] = 0
	}
	o.rhs(val, x)
}

// Dirichlet returns the essential conditions on boundary id
func (o *Analytic) Dirichlet(id int) (bc *BC, ok bool) { return o.dirichlet(id) }

// Neumann returns the natural conditions on boundary id
func (o *Analytic) Neumann(id int) (fcns []dbf.T, ok bool) {
	fcns, ok = o.neumann[id]
	return
}

// HasExact returns true
func (o *Analytic) HasExact() bool { return true }

// Exact computes the exact solution
func (o *Analytic) Exact(val, x []float64) {
	copy(val, o.sol.Displ(o.local(x)))
}

// ExactGrad computes the exact gradient
func (o *Analytic) ExactGrad(grad [][]float64, x []float64) {
	g := o.sol.DisplGrad(o.local(x))
	for i := range grad {
		copy(grad[i], g[i])
	}
}

// local returns coordinates relative to the origin of the analytical solution
func (o *Analytic) local(x []float64) []float64 {
	if o.shift == nil {
		return x
	}
	y := make([]float64, len(x))
	for i := range x {
		y[i] = x[i] - o.shift[i]
	}
	return y
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// zeros returns n zero functions
func zeros(n int) (fcns []dbf.T) {
	fcns = make([]dbf.T, n)
	for i := range fcns {
		fcns[i] = &dbf.Cte{C: 0}
	}
	return
}

// rollers returns zero normal displacements on the sides of a box
//  Note: boxes generated by msh have ids 2*i+1 at xmin[i] and 2*i+2 at xmax[i].
//        confined => rollers on both lateral sides of all directions but the last one
func rollers(ndim int, confined bool) func(id int) (*BC, bool) {
	fcns := zeros(ndim)
	return func(id int) (*BC, bool) {
		if id < 1 || id > 2*ndim {
			return nil, false
		}
		dir := (id - 1) / 2
		atMin := (id-1)%2 == 0
		if !atMin && !(confined && dir < ndim-1) {
			return nil, false
		}
		mask := make([]bool, ndim)
		mask[dir] = true
		return &BC{Id: id, Fcns: fcns, Mask: mask}, true
	}
}

// param returns the value of a parameter or its default
func param(prms dbf.Params, name string, dflt float64) float64 {
	for _, p := range prms {
		if p.N == name {
			return p.V
		}
	}
	return dflt
}
