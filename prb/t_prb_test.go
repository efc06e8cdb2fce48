// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prb

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/npulgh/polyfem/inp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_prb01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prb01. ZeroBC")

	sim := inp.NewSettings()
	p, err := New(sim, 2)
	require.NoError(tst, err)
	assert.Equal(tst, "ZeroBC", p.Name())
	assert.True(tst, p.IsScalar())
	assert.True(tst, p.HasExact())
	chk.Int(tst, "ncomps", Ncomps(p, 2), 1)

	val := []float64{0}
	p.Rhs(val, []float64{0.5, 0.5})
	chk.Float64(tst, "f(0.5,0.5)", 1e-15, val[0], 1)
	p.Exact(val, []float64{0.5, 0.5})
	chk.Float64(tst, "u(0.5,0.5)", 1e-15, val[0], 0.0625)

	for id := 0; id < 5; id++ {
		bc, ok := p.Dirichlet(id)
		require.True(tst, ok)
		chk.Float64(tst, "bc value", 1e-15, bc.Fcns[0].F(0, []float64{0, 0.3}), 0)
		assert.Equal(tst, []bool{true}, bc.Mask)
	}
	_, ok := p.Neumann(1)
	assert.False(tst, ok)

	sim.Problem.Name = "Unknown"
	_, err = New(sim, 2)
	assert.Error(tst, err)
}

func Test_prb02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prb02. GenericTensor")

	sim := inp.NewSettings()
	sim.Functions = inp.FuncsData{
		&inp.FuncData{Name: "grav", Type: "cte", Prms: dbf.Params{&dbf.P{N: "c", V: -10}}},
		&inp.FuncData{Name: "ux", Type: "cte", Prms: dbf.Params{&dbf.P{N: "c", V: 2}}},
		&inp.FuncData{Name: "qn", Type: "cte", Prms: dbf.Params{&dbf.P{N: "c", V: 3}}},
	}
	sim.Problem = inp.ProblemData{
		Name:      "GenericTensor",
		Rhs:       []string{"zero", "grav"},
		Exact:     []string{"ux", "zero"},
		Dirichlet: []*inp.BcData{{Id: 1, Funcs: []string{"zero", "zero"}, Mask: []bool{true, false}}},
		Neumann:   []*inp.BcData{{Id: 2, Funcs: []string{"qn", "zero"}}},
	}
	p, err := New(sim, 2)
	require.NoError(tst, err)
	assert.False(tst, p.IsScalar())
	assert.True(tst, p.HasExact())

	val := make([]float64, 2)
	p.Rhs(val, []float64{0.3, 0.2})
	chk.Float64(tst, "bx", 1e-15, val[0], 0)
	chk.Float64(tst, "by", 1e-15, val[1], -10)

	bc, ok := p.Dirichlet(1)
	require.True(tst, ok)
	assert.Equal(tst, []bool{true, false}, bc.Mask)
	_, ok = p.Dirichlet(2)
	assert.False(tst, ok)

	q, ok := p.Neumann(2)
	require.True(tst, ok)
	chk.Float64(tst, "qx", 1e-15, q[0].F(0, []float64{1, 0.5}), 3)

	p.Exact(val, []float64{0.3, 0.2})
	chk.Float64(tst, "ux", 1e-15, val[0], 2)
	grad := [][]float64{{1, 1}, {1, 1}}
	p.ExactGrad(grad, []float64{0.3, 0.2})
	chk.Float64(tst, "dux/dx", 1e-12, grad[0][0], 0)
	chk.Float64(tst, "duy/dy", 1e-12, grad[1][1], 0)

	// wrong number of functions
	sim.Problem.Rhs = []string{"grav"}
	_, err = New(sim, 2)
	assert.Error(tst, err)
	sim.Problem.Rhs = nil
	sim.Problem.Dirichlet[0].Mask = []bool{true}
	_, err = New(sim, 2)
	assert.Error(tst, err)
	sim.Problem.Dirichlet[0].Mask = nil
	sim.Problem.Neumann[0].Funcs = []string{"missing", "zero"}
	_, err = New(sim, 2)
	assert.Error(tst, err)
}

func Test_prb03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prb03. UniaxialBar and SelfWeight")

	sim := inp.NewSettings()
	sim.Mesh = inp.MeshData{Type: "box"}
	sim.Mesh.SetDefault()
	sim.Params = dbf.Params{&dbf.P{N: "E", V: 100}, &dbf.P{N: "nu", V: 0.25}, &dbf.P{N: "rho", V: 2}}
	sim.Problem.Name = "UniaxialBar"
	sim.Problem.Load = 5

	p, err := New(sim, 3)
	require.NoError(tst, err)
	for id, want := range map[int][]bool{1: {true, false, false}, 3: {false, true, false}, 5: {false, false, true}} {
		bc, ok := p.Dirichlet(id)
		require.True(tst, ok)
		assert.Equal(tst, want, bc.Mask)
	}
	for _, id := range []int{0, 2, 4, 6, 7} {
		_, ok := p.Dirichlet(id)
		assert.False(tst, ok)
	}
	q, ok := p.Neumann(2)
	require.True(tst, ok)
	chk.Float64(tst, "qx", 1e-15, q[0].F(0, []float64{1, 0, 0}), 5)
	u := make([]float64, 3)
	p.Exact(u, []float64{1, 1, 1})
	chk.Float64(tst, "ux", 1e-15, u[0], 0.05)
	chk.Float64(tst, "uy", 1e-15, u[1], -0.0125)

	sim.Problem.Name = "SelfWeight"
	p, err = New(sim, 3)
	require.NoError(tst, err)
	for _, id := range []int{1, 2, 3, 4, 5} {
		_, ok := p.Dirichlet(id)
		assert.True(tst, ok, "id=%d", id)
	}
	_, ok = p.Dirichlet(6)
	assert.False(tst, ok)
	b := make([]float64, 3)
	p.Rhs(b, []float64{0.5, 0.5, 0.5})
	chk.Float64(tst, "bz", 1e-15, b[2], -10)
	chk.Float64(tst, "bx", 1e-15, b[0], 0)
	p.Exact(u, []float64{0.5, 0.5, 0})
	chk.Float64(tst, "uz(z=0)", 1e-15, u[2], 0)
}
