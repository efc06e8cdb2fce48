// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/james-bowman/sparse"
	"github.com/npulgh/polyfem/inp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// laplacian returns the n x n matrix tridiag(-1, 2, -1) in CSR format
func laplacian(n int) *sparse.CSR {
	var indptr, ind []int
	var data []float64
	indptr = append(indptr, 0)
	for i := 0; i < n; i++ {
		if i > 0 {
			ind, data = append(ind, i-1), append(data, -1)
		}
		ind, data = append(ind, i), append(data, 2)
		if i < n-1 {
			ind, data = append(ind, i+1), append(data, -1)
		}
		indptr = append(indptr, len(ind))
	}
	return sparse.NewCSR(n, n, indptr, ind, data)
}

func Test_linsol01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linsol01. cholesky and cg")

	// A x = b with x = [1, 2, 3, 4]
	A := laplacian(4)
	b := []float64{0, 0, 0, 5}
	xcor := []float64{1, 2, 3, 4}

	prms := &inp.SolverParams{Tol: 1e-12, MaxIt: 10}
	for _, name := range []string{"cholesky", "cg"} {
		sol, err := GetLinear(name, prms)
		require.NoError(tst, err)
		x, info, err := sol.Solve(A, b)
		require.NoError(tst, err)
		io.Pforan("%v\n", info)
		chk.Array(tst, name, 1e-12, x, xcor)
		assert.True(tst, info.Converged)
		assert.Equal(tst, name, info.Solver)
	}

	// dense matrix
	x, _, err := new(Cholesky).Solve(mat.DenseCopyOf(A), b)
	require.NoError(tst, err)
	chk.Array(tst, "dense", 1e-12, x, xcor)

	// errors
	_, err = GetLinear("umfpack", prms)
	assert.Error(tst, err)
	_, _, err = new(Cholesky).Solve(A, []float64{1})
	assert.Error(tst, err)
	_, _, err = new(Cholesky).Solve(mat.NewDense(2, 2, []float64{1, 2, 2, 1}), []float64{1, 1})
	assert.Error(tst, err)
	assert.Panics(tst, func() { SetLinear("cg", nil) })
}

func Test_linsol02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linsol02. cg non-convergence is not an error")

	A := laplacian(20)
	b := make([]float64, 20)
	b[19] = 1
	sol := &CG{Tol: 1e-14, MaxIt: 3}
	x, info, err := sol.Solve(A, b)
	require.NoError(tst, err)
	assert.False(tst, info.Converged)
	chk.Int(tst, "iterations", info.Iterations, 3)
	chk.Int(tst, "len(x)", len(x), 20)
	assert.Greater(tst, info.Residual, 1e-14)

	// zero right-hand side
	x, info, err = sol.Solve(A, make([]float64, 20))
	require.NoError(tst, err)
	assert.True(tst, info.Converged)
	chk.Array(tst, "x", 1e-15, x, make([]float64, 20))
}

func Test_newton01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("newton01")

	// f(x) = Σ cosh(x_i - c_i) has its minimum at c
	c := []float64{0.5, -1, 2}
	obj := Objective{
		Energy: func(x []float64) (f float64, err error) {
			for i := range x {
				f += math.Cosh(x[i] - c[i])
			}
			return
		},
		Gradient: func(g, x []float64) error {
			for i := range x {
				g[i] = math.Sinh(x[i] - c[i])
			}
			return nil
		},
		Hessian: func(H *mat.SymDense, x []float64) error {
			for i := range x {
				for j := i; j < len(x); j++ {
					H.SetSym(i, j, 0)
				}
				H.SetSym(i, i, math.Cosh(x[i]-c[i]))
			}
			return nil
		},
	}
	sol := &Newton{GradTol: 1e-10, MaxIt: 50}
	x, info, err := sol.Minimize(obj, []float64{0, 0, 0})
	require.NoError(tst, err)
	io.Pforan("%v\n", info)
	assert.True(tst, info.Converged)
	chk.Array(tst, "x", 1e-9, x, c)

	// callback errors are returned
	obj.Gradient = func(g, x []float64) error { return errors.New("bad element") }
	_, _, err = sol.Minimize(obj, []float64{0, 0, 0})
	assert.Error(tst, err)

	// no unknowns
	x, info, err = sol.Minimize(obj, nil)
	require.NoError(tst, err)
	assert.True(tst, info.Converged)
	chk.Int(tst, "len(x)", len(x), 0)
}

func Test_linsol03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linsol03. cg with dense matrix")

	A := laplacian(6)
	xcor := []float64{1, -1, 2, 0.5, 3, -2}
	b := make([]float64, 6)
	bv := mat.NewVecDense(6, b)
	operator{A}.MulVecTo(bv, false, mat.NewVecDense(6, xcor))

	sol := &CG{Tol: 1e-13, MaxIt: 20}
	x, info, err := sol.Solve(mat.DenseCopyOf(A), b)
	require.NoError(tst, err)
	io.Pforan("%v\n", info)
	assert.True(tst, info.Converged)
	assert.LessOrEqual(tst, info.Iterations, 8)
	chk.Array(tst, "x", 1e-10, x, xcor)

	// transposed product of a symmetric matrix
	y := mat.NewVecDense(6, nil)
	operator{A}.MulVecTo(y, true, mat.NewVecDense(6, xcor))
	chk.Array(tst, "Aᵀx", 1e-15, y.RawVector().Data, b)
}
