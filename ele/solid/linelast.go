// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements kernels for solid mechanics
package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
	"github.com/npulgh/polyfem/bas"
	"github.com/npulgh/polyfem/ele"
	"github.com/npulgh/polyfem/mdl/solid"
	"gonum.org/v1/gonum/mat"
)

// LinearElasticity implements the kernel of isotropic linear elasticity
//
//   σ = λ tr(ε) I + 2 μ ε
//
//   K_(mi)(nj) = ∫ λ G_mi G_nj + μ (G_mj G_ni + δij G_m·G_n) dΩ
//
type LinearElasticity struct {
	Mdl *solid.Elastic // material model
}

// register kernel
func init() {
	ele.SetAllocator(ele.LinearElasticity, func() ele.Kernel {
		return &LinearElasticity{Mdl: defaultElastic()}
	})
}

// SetParameters sets material parameters
func (o *LinearElasticity) SetParameters(ndim int, pstress bool, prms dbf.Params) (err error) {
	mdl, err := allocModel("elastic", ndim, pstress, prms)
	if err != nil {
		return
	}
	o.Mdl = mdl.(*solid.Elastic)
	return
}

// SetMultimaterial sets per-element parameters
func (o *LinearElasticity) SetMultimaterial(E, nu, rho []float64, nelems int) error {
	return o.Mdl.SetMultimaterial(E, nu, rho, nelems)
}

// Density returns the density of element
func (o *LinearElasticity) Density(eid int) float64 { return o.Mdl.Rho(eid) }

// Stiffness computes the local stiffness matrix
func (o *LinearElasticity) Stiffness(K *mat.Dense, eb *bas.ElementBases) (err error) {
	ndim := eb.Ndim()
	λ, μ := o.Mdl.Lame(eb.Id)
	for idx := range eb.Ips {
		coef := eb.Coef(idx)
		G := eb.G[idx]
		for m := 0; m < eb.Nbases; m++ {
			for n := 0; n < eb.Nbases; n++ {
				gg := 0.0
				for k := 0; k < ndim; k++ {
					gg += G[m][k] * G[n][k]
				}
				for i := 0; i < ndim; i++ {
					for j := 0; j < ndim; j++ {
						v := λ*G[m][i]*G[n][j] + μ*G[m][j]*G[n][i]
						if i == j {
							v += μ * gg
						}
						r, c := m*ndim+i, n*ndim+j
						K.Set(r, c, K.At(r, c)+coef*v)
					}
				}
			}
		}
	}
	return
}

// VonMises computes the von Mises stress at local points
func (o *LinearElasticity) VonMises(eb *bas.ElementBases, pts [][]float64, u []float64) (vals []float64, err error) {
	_, G, _, err := eb.EvalAt(pts)
	if err != nil {
		return
	}
	ndim := eb.Ndim()
	λ, μ := o.Mdl.Lame(eb.Id)
	vals = make([]float64, len(pts))
	for p := range pts {
		ε := strain(ele.GradAt(G[p], u, ndim))
		trε := 0.0
		for i := 0; i < ndim; i++ {
			trε += ε[i][i]
		}
		σ := utl.Alloc(ndim, ndim)
		for i := 0; i < ndim; i++ {
			for j := 0; j < ndim; j++ {
				σ[i][j] = 2 * μ * ε[i][j]
			}
			σ[i][i] += λ * trε
		}
		vals[p] = VonMises(σ)
	}
	return
}

// allocModel allocates a model from the 'solid' database and initialises it
func allocModel(name string, ndim int, pstress bool, prms dbf.Params) (mdl solid.Model, err error) {
	mdl, err = solid.New(name)
	if err != nil {
		return
	}
	err = mdl.Init(ndim, pstress, prms)
	if err != nil {
		return nil, chk.Err("model %q:\n%v", name, err)
	}
	return
}

// defaultElastic returns a model with E=1, ν=0 and ρ=1
func defaultElastic() *solid.Elastic {
	return &solid.Elastic{E: 1, Nu: 0, Den: 1}
}
