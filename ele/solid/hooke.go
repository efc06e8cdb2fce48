// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
	"github.com/npulgh/polyfem/bas"
	"github.com/npulgh/polyfem/ele"
	"github.com/npulgh/polyfem/mdl/solid"
	"gonum.org/v1/gonum/mat"
)

// HookeLinearElasticity implements the kernel of linear elasticity with a general elasticity tensor
//
//   K = ∫ Bᵀ D B dΩ
//
type HookeLinearElasticity struct {
	Mdl *solid.Hooke // material model
}

// register kernel
func init() {
	ele.SetAllocator(ele.HookeLinearElasticity, func() ele.Kernel {
		return &HookeLinearElasticity{Mdl: &solid.Hooke{Elastic: *defaultElastic()}}
	})
}

// SetParameters sets material parameters
func (o *HookeLinearElasticity) SetParameters(ndim int, pstress bool, prms dbf.Params) (err error) {
	mdl, err := allocModel("hooke", ndim, pstress, prms)
	if err != nil {
		return
	}
	o.Mdl = mdl.(*solid.Hooke)
	return
}

// SetMultimaterial sets per-element parameters
func (o *HookeLinearElasticity) SetMultimaterial(E, nu, rho []float64, nelems int) error {
	return o.Mdl.SetMultimaterial(E, nu, rho, nelems)
}

// Density returns the density of element
func (o *HookeLinearElasticity) Density(eid int) float64 { return o.Mdl.Rho(eid) }

// Stiffness computes the local stiffness matrix
func (o *HookeLinearElasticity) Stiffness(K *mat.Dense, eb *bas.ElementBases) (err error) {
	ndim := eb.Ndim()
	D := o.tensor(ndim, eb.Id)
	var DB, BtDB mat.Dense
	for idx := range eb.Ips {
		B := bmatrix(eb.G[idx], ndim)
		DB.Mul(D, B)
		BtDB.Mul(B.T(), &DB)
		BtDB.Scale(eb.Coef(idx), &BtDB)
		K.Add(K, &BtDB)
	}
	return
}

// VonMises computes the von Mises stress at local points
func (o *HookeLinearElasticity) VonMises(eb *bas.ElementBases, pts [][]float64, u []float64) (vals []float64, err error) {
	_, G, _, err := eb.EvalAt(pts)
	if err != nil {
		return
	}
	ndim := eb.Ndim()
	D := o.tensor(ndim, eb.Id)
	uvec := mat.NewVecDense(len(u), u)
	vals = make([]float64, len(pts))
	var Bu, σv mat.VecDense
	for p := range pts {
		B := bmatrix(G[p], ndim)
		Bu.MulVec(B, uvec)
		σv.MulVec(D, &Bu)
		vals[p] = VonMises(voigt2tensor(σv.RawVector().Data, ndim))
	}
	return
}

// tensor returns the elasticity tensor of element
func (o *HookeLinearElasticity) tensor(ndim, eid int) *mat.Dense {
	n := solid.Nvoigt(ndim)
	D := utl.Alloc(n, n)
	o.Mdl.Calc(D, ndim, eid)
	M := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		M.SetRow(i, D[i])
	}
	return M
}

// bmatrix returns the strain-displacement matrix (engineering shear strains)
func bmatrix(G [][]float64, ndim int) *mat.Dense {
	nb := len(G)
	B := mat.NewDense(solid.Nvoigt(ndim), nb*ndim, nil)
	for m := 0; m < nb; m++ {
		c := m * ndim
		for i := 0; i < ndim; i++ {
			B.Set(i, c+i, G[m][i])
		}
		switch ndim {
		case 2:
			B.Set(2, c+0, G[m][1])
			B.Set(2, c+1, G[m][0])
		case 3:
			B.Set(3, c+1, G[m][2])
			B.Set(3, c+2, G[m][1])
			B.Set(4, c+0, G[m][2])
			B.Set(4, c+2, G[m][0])
			B.Set(5, c+0, G[m][1])
			B.Set(5, c+1, G[m][0])
		}
	}
	return B
}
