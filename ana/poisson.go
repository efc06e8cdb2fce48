// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

// PoissonBox computes the solution of the Poisson equation on the unit box with zero boundary values
//
//   - Δu = s      u = Π x_i (1 - x_i)      s = Σ_i 2 Π_{j≠i} x_j (1 - x_j)
//
type PoissonBox struct{}

// Displ computes u
func (o PoissonBox) Displ(x []float64) (u []float64) {
	v := 1.0
	for _, xi := range x {
		v *= xi * (1 - xi)
	}
	return []float64{v}
}

// DisplGrad computes ∇u
func (o PoissonBox) DisplGrad(x []float64) (g [][]float64) {
	g = [][]float64{make([]float64, len(x))}
	for i := range x {
		v := 1 - 2*x[i]
		for j, xj := range x {
			if j != i {
				v *= xj * (1 - xj)
			}
		}
		g[0][i] = v
	}
	return
}

// Source computes s = -Δu
func (o PoissonBox) Source(x []float64) float64 {
	s := 0.0
	for i := range x {
		v := 2.0
		for j, xj := range x {
			if j != i {
				v *= xj * (1 - xj)
			}
		}
		s += v
	}
	return s
}
