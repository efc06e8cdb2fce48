// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/cpmech/gosl/chk"
	"github.com/npulgh/polyfem/inp"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Cholesky implements a direct solver for symmetric positive-definite systems
type Cholesky struct{}

// add solver to factory
func init() {
	SetLinear("cholesky", func(prms *inp.SolverParams) Linear { return new(Cholesky) })
}

// Solve solves A x = b
func (o *Cholesky) Solve(A mat.Matrix, b []float64) (x []float64, info Info, err error) {
	info.Solver = "cholesky"
	n, err := checkSystem(A, b)
	if err != nil {
		return
	}
	if n == 0 {
		info.Converged, info.Status = true, "empty system"
		return []float64{}, info, nil
	}

	// symmetric matrix; only the upper triangle is used
	S := mat.NewSymDense(n, nil)
	doNonZero(A, func(i, j int, v float64) {
		if i <= j {
			S.SetSym(i, j, S.At(i, j)+v)
		}
	})

	// factorise
	var chol mat.Cholesky
	if ok := chol.Factorize(S); !ok {
		return nil, info, chk.Err("cholesky: matrix is not positive definite")
	}
	xv := mat.NewVecDense(n, nil)
	err = chol.SolveVecTo(xv, mat.NewVecDense(n, append([]float64{}, b...)))
	if err != nil {
		return nil, info, chk.Err("cholesky: cannot solve system:\n%v", err)
	}
	x = xv.RawVector().Data

	// residual
	rv := mat.NewVecDense(n, nil)
	operator{A}.MulVecTo(rv, false, xv)
	r := rv.RawVector().Data
	floats.Sub(r, b)
	info.Iterations = 1
	info.Residual = floats.Norm(r, 2)
	info.Converged = true
	info.Status = "success"
	return
}
