// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solver implements linear and nonlinear solvers of the discrete equations
package solver

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/npulgh/polyfem/inp"
	"gonum.org/v1/gonum/mat"
)

// Info holds diagnostics of a solution
type Info struct {
	Solver     string  `json:"solver"`     // name of solver
	Iterations int     `json:"iterations"` // number of iterations
	Residual   float64 `json:"residual"`   // final residual (linear) or gradient norm (nonlinear)
	Converged  bool    `json:"converged"`  // convergence flag
	Status     string  `json:"status"`     // status message
}

// String returns a one-line description
func (o Info) String() string {
	return io.Sf("%s: iterations=%d residual=%g converged=%v (%s)", o.Solver, o.Iterations, o.Residual, o.Converged, o.Status)
}

// Linear defines linear solvers of A x = b
//  Note: non-convergence of iterative solvers is reported in Info, not as an error
type Linear interface {
	Solve(A mat.Matrix, b []float64) (x []float64, info Info, err error)
}

// LinAllocator defines the function that allocates linear solvers
type LinAllocator func(prms *inp.SolverParams) Linear

// linAllocators holds all available linear solvers
var linAllocators = make(map[string]LinAllocator)

// SetLinear sets a new linear solver allocator
func SetLinear(name string, fcn LinAllocator) {
	if _, ok := linAllocators[name]; ok {
		chk.Panic("cannot set linear solver named %q because it exists already", name)
	}
	linAllocators[name] = fcn
}

// GetLinear returns a linear solver by name
func GetLinear(name string, prms *inp.SolverParams) (Linear, error) {
	alloc, ok := linAllocators[name]
	if !ok {
		return nil, chk.Err("cannot find linear solver named %q", name)
	}
	return alloc(prms), nil
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// checkSystem checks the dimensions of A x = b
func checkSystem(A mat.Matrix, b []float64) (n int, err error) {
	r, c := A.Dims()
	if r != c {
		return 0, chk.Err("matrix must be square; dims = (%d, %d)", r, c)
	}
	if len(b) != r {
		return 0, chk.Err("size of right-hand side (%d) must be equal to the size of the matrix (%d)", len(b), r)
	}
	return r, nil
}

// doNonZero calls fcn for each stored entry of A
func doNonZero(A mat.Matrix, fcn func(i, j int, v float64)) {
	if nz, ok := A.(mat.NonZeroDoer); ok {
		nz.DoNonZero(fcn)
		return
	}
	r, c := A.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := A.At(i, j); v != 0 {
				fcn(i, j, v)
			}
		}
	}
}
