// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/utl"
	"github.com/npulgh/polyfem/bas"
)

// Dofs returns the assembly map (location array) of an element with ncomp unknowns per node
//  Note: dof = node * ncomp + component
func Dofs(eb *bas.ElementBases, ncomp int) (dofs []int) {
	dofs = make([]int, len(eb.Nodes)*ncomp)
	for m, n := range eb.Nodes {
		for i := 0; i < ncomp; i++ {
			dofs[m*ncomp+i] = n*ncomp + i
		}
	}
	return
}

// Extract collects the local values of a global vector
func Extract(U []float64, dofs []int) (u []float64) {
	u = make([]float64, len(dofs))
	for i, d := range dofs {
		u[i] = U[d]
	}
	return
}

// GradU computes the displacement gradient du_i/dx_j at integration point idx
func GradU(eb *bas.ElementBases, idx int, u []float64) (gradu [][]float64) {
	return GradAt(eb.G[idx], u, eb.Ndim())
}

// GradAt computes du_i/dx_j from shape function gradients G[nbases][ndim]
func GradAt(G [][]float64, u []float64, ndim int) (gradu [][]float64) {
	gradu = utl.Alloc(ndim, ndim)
	for i := 0; i < ndim; i++ {
		for m := range G {
			for j := 0; j < ndim; j++ {
				gradu[i][j] += u[m*ndim+i] * G[m][j]
			}
		}
	}
	return
}
