// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// DispKeys returns the names of the displacement components
func DispKeys(ndim int) []string {
	return []string{"ux", "uy", "uz"}[:ndim]
}

// VonMises computes the von Mises stress from the stress tensor σ[ndim][ndim]
//  Note: in 2D, only in-plane components are considered
func VonMises(σ [][]float64) float64 {
	switch len(σ) {
	case 1:
		return math.Abs(σ[0][0])
	case 2:
		return math.Sqrt(σ[0][0]*σ[0][0] - σ[0][0]*σ[1][1] + σ[1][1]*σ[1][1] + 3*σ[0][1]*σ[0][1])
	}
	d01 := σ[0][0] - σ[1][1]
	d12 := σ[1][1] - σ[2][2]
	d20 := σ[2][2] - σ[0][0]
	shear := σ[0][1]*σ[0][1] + σ[1][2]*σ[1][2] + σ[2][0]*σ[2][0]
	return math.Sqrt(0.5*(d01*d01+d12*d12+d20*d20) + 3*shear)
}

// strain computes the small strain tensor ε = sym(∇u)
func strain(gradu [][]float64) (ε [][]float64) {
	ndim := len(gradu)
	ε = utl.Alloc(ndim, ndim)
	for i := 0; i < ndim; i++ {
		for j := 0; j < ndim; j++ {
			ε[i][j] = (gradu[i][j] + gradu[j][i]) / 2
		}
	}
	return
}

// voigt2tensor converts stresses in Voigt notation to a tensor
func voigt2tensor(σv []float64, ndim int) (σ [][]float64) {
	σ = utl.Alloc(ndim, ndim)
	for i := 0; i < ndim; i++ {
		σ[i][i] = σv[i]
	}
	switch ndim {
	case 2:
		σ[0][1], σ[1][0] = σv[2], σv[2]
	case 3:
		σ[1][2], σ[2][1] = σv[3], σv[3]
		σ[0][2], σ[2][0] = σv[4], σv[4]
		σ[0][1], σ[1][0] = σv[5], σv[5]
	}
	return
}
