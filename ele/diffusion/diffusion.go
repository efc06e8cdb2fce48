// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package diffusion implements kernels for diffusion problems
package diffusion

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
	"github.com/npulgh/polyfem/bas"
	"github.com/npulgh/polyfem/ele"
	"github.com/npulgh/polyfem/mdl/diffusion"
	"gonum.org/v1/gonum/mat"
)

// Laplacian implements the kernel of the (steady) diffusion equation
//
//   - div(k ∇u) = s      =>      K_mn = ∫ ∇N_m · k · ∇N_n dΩ
//
type Laplacian struct {
	Mdl *diffusion.Conductivity // model; identity tensor when nil
}

// register kernel
func init() {
	ele.SetAllocator(ele.Laplacian, func() ele.Kernel { return new(Laplacian) })
}

// SetParameters sets the conductivity
func (o *Laplacian) SetParameters(ndim int, pstress bool, prms dbf.Params) (err error) {
	mdl, err := diffusion.New("cte")
	if err != nil {
		return
	}
	err = mdl.Init(ndim, prms)
	if err != nil {
		return
	}
	o.Mdl = mdl.(*diffusion.Conductivity)
	return
}

// SetMultimaterial does nothing: conductivity is uniform
func (o *Laplacian) SetMultimaterial(E, nu, rho []float64, nelems int) error { return nil }

// Density returns 1
func (o *Laplacian) Density(eid int) float64 { return 1 }

// Stiffness computes the local stiffness matrix
func (o *Laplacian) Stiffness(K *mat.Dense, eb *bas.ElementBases) (err error) {
	ndim := eb.Ndim()
	kten := o.kten(ndim, eb.Id)
	for idx := range eb.Ips {
		coef := eb.Coef(idx)
		G := eb.G[idx]
		for m := 0; m < eb.Nbases; m++ {
			for n := 0; n < eb.Nbases; n++ {
				v := 0.0
				for i := 0; i < ndim; i++ {
					for j := 0; j < ndim; j++ {
						v += G[m][i] * kten[i][j] * G[n][j]
					}
				}
				K.Set(m, n, K.At(m, n)+coef*v)
			}
		}
	}
	return
}

// kten returns the conductivity tensor of element
func (o *Laplacian) kten(ndim, eid int) (K [][]float64) {
	K = utl.Alloc(ndim, ndim)
	for i := 0; i < ndim; i++ {
		K[i][i] = 1
	}
	if o.Mdl != nil && len(o.Mdl.Kcte) == ndim {
		o.Mdl.Kten(K, eid)
	}
	return
}
