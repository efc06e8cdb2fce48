// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/npulgh/polyfem/bas"
	"github.com/npulgh/polyfem/ele"
	"github.com/npulgh/polyfem/prb"
	"github.com/npulgh/polyfem/shp"
)

// AssembleRhs assembles the load vector
//
//   F = ∫ ρ b N dΩ + ∫ t N dΓ
//
//  where b is the source term (ρ = 1 for scalar formulations) and t is the flux or traction on Neumann boundaries
func (o *Assembler) AssembleRhs(f ele.Formulation, space *bas.Space, problem prb.Problem) (F []float64, err error) {

	// check
	if f.IsScalar() != problem.IsScalar() {
		return nil, chk.Err("formulation %v is incompatible with problem %q", f, problem.Name())
	}
	kernel, err := o.set.Get(f)
	if err != nil {
		return
	}
	ncomp := f.Ncomps(space.Ndim)
	ndofs := space.Nbases * ncomp

	// source term
	nw := o.workers(len(space.Elems))
	partial := utl.Alloc(nw, ndofs)
	err = o.loop(len(space.Elems), func(w, e int) error {
		eb := space.Elems[e]
		ρ := kernel.Density(e)
		b := make([]float64, ncomp)
		for idx := range eb.Ips {
			problem.Rhs(b, eb.Xip[idx])
			coef := ρ * eb.Coef(idx)
			for m, n := range eb.Nodes {
				for i := 0; i < ncomp; i++ {
					partial[w][n*ncomp+i] += coef * eb.S[idx][m] * b[i]
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	F = make([]float64, ndofs)
	for _, p := range partial {
		for i, v := range p {
			F[i] += v
		}
	}

	// natural boundary conditions
	if len(space.Facets) == 0 {
		return
	}
	face, err := shp.Get(space.Ndim-1, space.Order)
	if err != nil {
		return nil, chk.Err("cannot get shape of facets:\n%v", err)
	}
	ips, err := shp.GetIps(space.Ndim-1, space.QuadDeg)
	if err != nil {
		return nil, chk.Err("cannot get integration points of facets:\n%v", err)
	}
	for _, facet := range space.Facets {
		fcns, ok := problem.Neumann(facet.Id)
		if !ok {
			continue
		}
		if len(fcns) != ncomp {
			return nil, chk.Err("neumann condition on boundary %d must have %d functions; %d were given", facet.Id, ncomp, len(fcns))
		}
		X := space.FacetCoords(facet)
		for _, ip := range ips {
			err = face.CalcAtIp(X, ip, false)
			if err != nil {
				return nil, chk.Err("facet of element %d on boundary %d:\n%v", facet.Elem, facet.Id, err)
			}
			x := face.IpRealCoords(X, ip)
			coef := ip[3] * face.J
			for m, n := range facet.Nodes {
				for i := 0; i < ncomp; i++ {
					F[n*ncomp+i] += coef * face.S[m] * fcns[i].F(0, x)
				}
			}
		}
	}
	return
}

// DirichletValues returns the constrained dofs (sorted) and their prescribed values
//  Note: values are interpolated at nodes; a dof on facets with different ids takes the value of the first facet
func DirichletValues(space *bas.Space, problem prb.Problem) (dofs []int, vals []float64) {
	ncomp := prb.Ncomps(problem, space.Ndim)
	prescribed := make(map[int]float64)
	for _, facet := range space.Facets {
		bc, ok := problem.Dirichlet(facet.Id)
		if !ok {
			continue
		}
		for _, n := range facet.Nodes {
			for i := 0; i < ncomp; i++ {
				if !bc.Mask[i] {
					continue
				}
				d := n*ncomp + i
				if _, done := prescribed[d]; done {
					continue
				}
				prescribed[d] = bc.Fcns[i].F(0, space.NodePos[n])
			}
		}
	}
	dofs = make([]int, 0, len(prescribed))
	for d := range prescribed {
		dofs = append(dofs, d)
	}
	sort.Ints(dofs)
	vals = make([]float64, len(dofs))
	for k, d := range dofs {
		vals[k] = prescribed[d]
	}
	return
}
