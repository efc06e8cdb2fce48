// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/diff/fd"
)

func Test_poisson01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("poisson01")

	var sol PoissonBox
	chk.Float64(tst, "u(0.5)", 1e-15, sol.Displ([]float64{0.5})[0], 0.25)
	chk.Float64(tst, "s(0.5)", 1e-15, sol.Source([]float64{0.5}), 2)
	chk.Float64(tst, "u(0,y)", 1e-15, sol.Displ([]float64{0, 0.3})[0], 0)

	// gradient and laplacian by finite differences
	x := []float64{0.3, 0.6, 0.2}
	f := func(x []float64) float64 { return sol.Displ(x)[0] }
	gnum := fd.Gradient(nil, f, x, &fd.Settings{Formula: fd.Central})
	g := sol.DisplGrad(x)
	for i := range x {
		chk.Float64(tst, io.Sf("du/dx%d", i), 1e-8, g[0][i], gnum[i])
	}
	lap := 0.0
	for i := range x {
		fi := func(x []float64) float64 { return sol.DisplGrad(x)[0][i] }
		lap += fd.Gradient(nil, fi, x, &fd.Settings{Formula: fd.Central})[i]
	}
	chk.Float64(tst, "-Δu", 1e-7, sol.Source(x), -lap)
}

func Test_selfweight01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("selfweight01")

	var sol ConfinedSelfWeight
	sol.Init(dbf.Params{
		&dbf.P{N: "E", V: 1e3},
		&dbf.P{N: "nu", V: 0.25},
		&dbf.P{N: "rho", V: 2.0},
		&dbf.P{N: "g", V: 10.0},
		&dbf.P{N: "h", V: 3.0},
	})

	x := []float64{0, 0, 0}
	σ := sol.Stress(x)
	io.Pforan("σ = %v\n", σ)
	chk.Float64(tst, "σz @ z=0", 1e-13, σ[2][2], -60.0)
	chk.Float64(tst, "σx @ z=0", 1e-13, σ[0][0], -20.0)

	x[2] = 1.5
	σ = sol.Stress(x)
	chk.Float64(tst, "σz @ z=1.5", 1e-13, σ[2][2], -30.0)

	// vertical strain times M equals vertical stress
	M := 1e3 * 0.75 / (1.25 * 0.5)
	g := sol.DisplGrad(x)
	chk.Float64(tst, "M εz", 1e-12, M*g[2][2], -30.0)

	x[2] = 3.0
	u := sol.Displ(x)
	io.Pforan("u = %v\n", u)
	chk.Float64(tst, "uz @ top", 1e-13, u[2], -2.0*10.0/M*(3.0-1.5)*3.0)
	sol.CheckDispl(tst, u, x, 1e-15)
}

func Test_uniaxial01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("uniaxial01")

	E, ν, q := 100.0, 0.25, 2.0
	prms := dbf.Params{&dbf.P{N: "E", V: E}, &dbf.P{N: "nu", V: ν}}
	λ := E * ν / ((1 + ν) * (1 - 2*ν))
	μ := E / (2 * (1 + ν))

	// check the stress components σ = λ tr(ε) I + 2 μ ε
	stress := func(sol *UniaxialBar, ndim int, lam float64) (σ []float64) {
		tr := 0.0
		for i := 0; i < ndim; i++ {
			tr += sol.Eps[i]
		}
		σ = make([]float64, ndim)
		for i := 0; i < ndim; i++ {
			σ[i] = lam*tr + 2*μ*sol.Eps[i]
		}
		return
	}

	for ndim := 1; ndim <= 3; ndim++ {
		var sol UniaxialBar
		sol.Init(ndim, false, q, make([]float64, ndim), prms)
		σ := stress(&sol, ndim, λ)
		chk.Float64(tst, io.Sf("σxx %dD", ndim), 1e-13, σ[0], q)
		for i := 1; i < ndim; i++ {
			chk.Float64(tst, io.Sf("σ%d %dD", i, ndim), 1e-13, σ[i], 0)
		}
	}

	// plane-stress
	var sol UniaxialBar
	sol.Init(2, true, q, []float64{1, 0}, prms)
	σ := stress(&sol, 2, 2*λ*μ/(λ+2*μ))
	chk.Float64(tst, "σxx pstress", 1e-13, σ[0], q)
	chk.Float64(tst, "σyy pstress", 1e-13, σ[1], 0)
	u := sol.Displ([]float64{3, 2})
	chk.Float64(tst, "ux", 1e-15, u[0], 2*q/E)
	chk.Float64(tst, "uy", 1e-15, u[1], -2*ν*q/E)
}
