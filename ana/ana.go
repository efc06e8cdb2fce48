// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

// Solution defines analytical solutions of static boundary value problems
type Solution interface {
	Displ(x []float64) (u []float64)       // solution (displacement or scalar) at x
	DisplGrad(x []float64) (g [][]float64) // gradient du_i/dx_j at x
}
