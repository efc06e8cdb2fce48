// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/npulgh/polyfem/bas"
	"github.com/npulgh/polyfem/ele"
	"github.com/npulgh/polyfem/mdl/solid"
	"gonum.org/v1/gonum/mat"
)

// SaintVenant implements the kernel of the Saint Venant-Kirchhoff hyperelastic material
//
//   F = I + ∇u      E = ½ (Fᵀ F - I)
//
//   W = λ/2 tr(E)² + μ E:E      S = λ tr(E) I + 2 μ E      P = F S
//
//   dP = dF S + F dS      with      dS = λ tr(dE) I + 2 μ dE   and   dE = ½ (dFᵀ F + Fᵀ dF)
//
type SaintVenant struct {
	Mdl *solid.Elastic // material model
}

// register kernel
func init() {
	ele.SetAllocator(ele.SaintVenant, func() ele.Kernel {
		return &SaintVenant{Mdl: defaultElastic()}
	})
}

// SetParameters sets material parameters
func (o *SaintVenant) SetParameters(ndim int, pstress bool, prms dbf.Params) (err error) {
	mdl, err := allocModel("elastic", ndim, pstress, prms)
	if err != nil {
		return
	}
	o.Mdl = mdl.(*solid.Elastic)
	return
}

// SetMultimaterial sets per-element parameters
func (o *SaintVenant) SetMultimaterial(E, nu, rho []float64, nelems int) error {
	return o.Mdl.SetMultimaterial(E, nu, rho, nelems)
}

// Density returns the density of element
func (o *SaintVenant) Density(eid int) float64 { return o.Mdl.Rho(eid) }

// Energy computes the stored energy of element
func (o *SaintVenant) Energy(eb *bas.ElementBases, u []float64) (energy float64, err error) {
	err = checkSize(eb, u)
	if err != nil {
		return
	}
	ndim := eb.Ndim()
	λ, μ := o.Mdl.Lame(eb.Id)
	for idx := range eb.Ips {
		F := defgrad(eb.G[idx], u, ndim)
		W, _, _ := pk2(F, λ, μ)
		energy += eb.Coef(idx) * W
	}
	return
}

// Gradient adds the internal forces to g
func (o *SaintVenant) Gradient(g []float64, eb *bas.ElementBases, u []float64) (err error) {
	err = checkSize(eb, u)
	if err != nil {
		return
	}
	ndim := eb.Ndim()
	λ, μ := o.Mdl.Lame(eb.Id)
	var P mat.Dense
	for idx := range eb.Ips {
		coef := eb.Coef(idx)
		G := eb.G[idx]
		F := defgrad(G, u, ndim)
		_, S, _ := pk2(F, λ, μ)
		P.Mul(F, S)
		for m := 0; m < eb.Nbases; m++ {
			for i := 0; i < ndim; i++ {
				v := 0.0
				for j := 0; j < ndim; j++ {
					v += P.At(i, j) * G[m][j]
				}
				g[m*ndim+i] += coef * v
			}
		}
	}
	return
}

// Hessian adds the tangent stiffness to H
func (o *SaintVenant) Hessian(H *mat.Dense, eb *bas.ElementBases, u []float64) (err error) {
	err = checkSize(eb, u)
	if err != nil {
		return
	}
	ndim := eb.Ndim()
	λ, μ := o.Mdl.Lame(eb.Id)
	dF := mat.NewDense(ndim, ndim, nil)
	var dE, dS, dP, tmp mat.Dense
	for idx := range eb.Ips {
		coef := eb.Coef(idx)
		G := eb.G[idx]
		F := defgrad(G, u, ndim)
		_, S, _ := pk2(F, λ, μ)
		for n := 0; n < eb.Nbases; n++ {
			for k := 0; k < ndim; k++ {

				// dF = e_k ⊗ G_n
				dF.Zero()
				for j := 0; j < ndim; j++ {
					dF.Set(k, j, G[n][j])
				}

				// dE and dS
				dE.Mul(dF.T(), F)
				tmp.Mul(F.T(), dF)
				dE.Add(&dE, &tmp)
				dE.Scale(0.5, &dE)
				dS.Scale(2*μ, &dE)
				trdE := mat.Trace(&dE)
				for i := 0; i < ndim; i++ {
					dS.Set(i, i, dS.At(i, i)+λ*trdE)
				}

				// dP
				dP.Mul(dF, S)
				tmp.Mul(F, &dS)
				dP.Add(&dP, &tmp)

				// column (n,k)
				c := n*ndim + k
				for m := 0; m < eb.Nbases; m++ {
					for i := 0; i < ndim; i++ {
						v := 0.0
						for j := 0; j < ndim; j++ {
							v += dP.At(i, j) * G[m][j]
						}
						r := m*ndim + i
						H.Set(r, c, H.At(r, c)+coef*v)
					}
				}
			}
		}
	}
	return
}

// VonMises computes the von Mises stress of the Cauchy stress σ = P Fᵀ / det(F) at local points
func (o *SaintVenant) VonMises(eb *bas.ElementBases, pts [][]float64, u []float64) (vals []float64, err error) {
	_, G, _, err := eb.EvalAt(pts)
	if err != nil {
		return
	}
	ndim := eb.Ndim()
	λ, μ := o.Mdl.Lame(eb.Id)
	vals = make([]float64, len(pts))
	var P, σ mat.Dense
	for p := range pts {
		F := defgrad(G[p], u, ndim)
		J := mat.Det(F)
		if J <= 0 {
			return nil, chk.Err("element %d: deformation gradient is not invertible at %v; det(F)=%g", eb.Id, pts[p], J)
		}
		_, S, _ := pk2(F, λ, μ)
		P.Mul(F, S)
		σ.Mul(&P, F.T())
		σ.Scale(1/J, &σ)
		vals[p] = VonMises(dense2slices(&σ))
	}
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// defgrad computes the deformation gradient F = I + ∇u
func defgrad(G [][]float64, u []float64, ndim int) *mat.Dense {
	gradu := ele.GradAt(G, u, ndim)
	F := mat.NewDense(ndim, ndim, nil)
	for i := 0; i < ndim; i++ {
		F.SetRow(i, gradu[i])
		F.Set(i, i, F.At(i, i)+1)
	}
	return F
}

// pk2 computes the energy density W, the second Piola-Kirchhoff stress S and the Green strain E
func pk2(F *mat.Dense, λ, μ float64) (W float64, S, E *mat.Dense) {
	ndim, _ := F.Dims()
	E = mat.NewDense(ndim, ndim, nil)
	E.Mul(F.T(), F)
	for i := 0; i < ndim; i++ {
		E.Set(i, i, E.At(i, i)-1)
	}
	E.Scale(0.5, E)
	trE := mat.Trace(E)
	EE := 0.0
	for i := 0; i < ndim; i++ {
		for j := 0; j < ndim; j++ {
			EE += E.At(i, j) * E.At(i, j)
		}
	}
	W = λ/2*trE*trE + μ*EE
	S = mat.NewDense(ndim, ndim, nil)
	S.Scale(2*μ, E)
	for i := 0; i < ndim; i++ {
		S.Set(i, i, S.At(i, i)+λ*trE)
	}
	return
}

// dense2slices converts a dense matrix to slices
func dense2slices(a *mat.Dense) (s [][]float64) {
	r, _ := a.Dims()
	s = make([][]float64, r)
	for i := 0; i < r; i++ {
		s[i] = mat.Row(nil, i, a)
	}
	return
}

// checkSize checks the size of the local vector
func checkSize(eb *bas.ElementBases, u []float64) error {
	if len(u) != eb.Nbases*eb.Ndim() {
		return chk.Err("element %d: local vector must have %d components; got %d", eb.Id, eb.Nbases*eb.Ndim(), len(u))
	}
	return nil
}
