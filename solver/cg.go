// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"errors"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/james-bowman/sparse"
	"github.com/npulgh/polyfem/inp"
	"gonum.org/v1/exp/linsolve"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// CG implements the Jacobi-preconditioned conjugate gradient method
type CG struct {
	Tol     float64 // tolerance on the relative residual
	MaxIt   int     // max number of iterations
	Verbose bool    // show iterations
}

// add solver to factory
func init() {
	SetLinear("cg", func(prms *inp.SolverParams) Linear {
		return &CG{Tol: prms.Tol, MaxIt: prms.MaxIt, Verbose: prms.Verbose}
	})
}

// Solve solves A x = b starting from x = 0
func (o *CG) Solve(A mat.Matrix, b []float64) (x []float64, info Info, err error) {
	info.Solver = "cg"
	n, err := checkSystem(A, b)
	if err != nil {
		return
	}
	bnorm := floats.Norm(b, 2)
	if bnorm == 0 {
		x = make([]float64, n)
		info.Converged, info.Status = true, "zero right-hand side"
		return
	}

	// preconditioner
	dinv := make([]float64, n)
	doNonZero(A, func(i, j int, v float64) {
		if i == j {
			dinv[i] += v
		}
	})
	for i, d := range dinv {
		if d == 0 {
			dinv[i] = 1
		} else {
			dinv[i] = 1 / d
		}
	}
	jacobi := func(dst *mat.VecDense, trans bool, rhs mat.Vector) error {
		for i := 0; i < n; i++ {
			dst.SetVec(i, dinv[i]*rhs.AtVec(i))
		}
		return nil
	}

	// settings
	tol := o.Tol
	if tol <= 0 || tol >= 1 {
		tol = 1e-10
	}
	maxit := o.MaxIt
	if maxit < 1 {
		maxit = 2 * n
	}
	settings := &linsolve.Settings{Tolerance: tol, MaxIterations: maxit, PreconSolve: jacobi}

	// solve
	res, e := linsolve.Iterative(operator{A}, mat.NewVecDense(n, append([]float64{}, b...)), &linsolve.CG{}, settings)
	if res != nil {
		x = make([]float64, n)
		copy(x, res.X.RawVector().Data)
		info.Iterations = res.Stats.Iterations
		info.Residual = res.ResidualNorm / bnorm
	}
	var breakdown *linsolve.BreakdownError
	switch {
	case e == nil:
		info.Converged, info.Status = true, "success"
	case errors.Is(e, linsolve.ErrIterationLimit):
		info.Status = io.Sf("max number of iterations (%d) reached", maxit)
	case errors.As(e, &breakdown):
		info.Status = io.Sf("breakdown: %v", e)
	default:
		return nil, info, chk.Err("cg failed:\n%v", e)
	}
	if o.Verbose {
		io.Pf("cg: it=%4d residual=%23.15e\n", info.Iterations, info.Residual)
	}
	return
}

// operator wraps a matrix for the iterative solvers
type operator struct {
	A mat.Matrix
}

// MulVecTo computes dst = A x or dst = Aᵀ x
func (o operator) MulVecTo(dst *mat.VecDense, trans bool, x mat.Vector) {
	if csr, ok := o.A.(*sparse.CSR); ok {
		n := dst.Len()
		xs := make([]float64, x.Len())
		for i := range xs {
			xs[i] = x.AtVec(i)
		}
		y := make([]float64, n)
		csr.MulVecTo(y, trans, xs)
		for i, v := range y {
			dst.SetVec(i, v)
		}
		return
	}
	if trans {
		dst.MulVec(o.A.T(), x)
		return
	}
	dst.MulVec(o.A, x)
}
