// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/npulgh/polyfem/asm"
	"github.com/npulgh/polyfem/ele"
	"github.com/npulgh/polyfem/inp"
	"github.com/npulgh/polyfem/msh"
	"github.com/npulgh/polyfem/prb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newState allocates a state with a generated mesh and the problem named in the settings
func newState(tst *testing.T, sim *inp.Settings) *State {
	sim.SetDefault()
	mesh, err := LoadMesh(&sim.Mesh)
	require.NoError(tst, err)
	problem, err := prb.New(sim, mesh.Ndim())
	require.NoError(tst, err)
	st, err := NewState(sim, mesh, problem, nil)
	require.NoError(tst, err)
	return st
}

// lineSettings returns settings for the unit line with two elements
func lineSettings(order int) *inp.Settings {
	sim := inp.NewSettings()
	sim.DiscrOrder = order
	sim.Mesh = inp.MeshData{Type: "line", N: []int{2}}
	return sim
}

func Test_state01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state01. stages out of order")

	st := newState(tst, lineSettings(1))
	assert.ErrorIs(tst, st.BuildBasis(), ErrStageOrder)
	assert.ErrorIs(tst, st.AssembleStiffness(), ErrStageOrder)
	assert.ErrorIs(tst, st.AssembleRhs(), ErrStageOrder)
	assert.ErrorIs(tst, st.AssembleMass(), ErrStageOrder)
	assert.ErrorIs(tst, st.SolveProblem(), ErrStageOrder)
	assert.ErrorIs(tst, st.ComputeErrors(), ErrStageOrder)
	_, err := st.VertexValues()
	assert.ErrorIs(tst, err, ErrStageOrder)

	// the same happens every time
	assert.ErrorIs(tst, st.AssembleStiffness(), ErrStageOrder)

	// free functions
	_, err = BuildBasis(nil, st.Mesh, 1, true, 2)
	assert.ErrorIs(tst, err, ErrStageOrder)
	_, err = AssembleStiffness(nil, st.Assembler, ele.Laplacian)
	assert.ErrorIs(tst, err, ErrStageOrder)
	_, err = AssembleRhs(nil, st.Assembler, ele.Laplacian, st.Problem)
	assert.ErrorIs(tst, err, ErrStageOrder)
	_, _, err = SolveLinear(nil, nil, nil)
	assert.ErrorIs(tst, err, ErrStageOrder)

	// stiffness needs the rhs
	st.ComputeMeshStats()
	require.NoError(tst, st.BuildBasis())
	assert.ErrorIs(tst, st.AssembleStiffness(), ErrStageOrder)
	assert.Nil(tst, st.Stiffness)
	assert.ErrorIs(tst, st.SolveProblem(), ErrStageOrder)
	require.NoError(tst, st.AssembleRhs())
	assert.ErrorIs(tst, st.SolveProblem(), ErrStageOrder)
	require.NoError(tst, st.AssembleStiffness())
	require.NoError(tst, st.SolveProblem())
}

func Test_state07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state07. failed basis construction discards previous stages")

	st := newState(tst, lineSettings(1))
	require.NoError(tst, st.Solve())
	require.NotNil(tst, st.Sol)
	oldRhs := st.Rhs

	// unsupported order
	st.Sim.DiscrOrder = 7
	assert.Error(tst, st.BuildBasis())
	assert.Nil(tst, st.Bases)
	assert.Nil(tst, st.Rhs)
	assert.Nil(tst, st.Stiffness)
	assert.Nil(tst, st.Sol)
	assert.NotPanics(tst, func() {
		assert.ErrorIs(tst, st.SolveProblem(), ErrStageOrder)
		assert.ErrorIs(tst, st.AssembleStiffness(), ErrStageOrder)
		assert.ErrorIs(tst, st.ComputeErrors(), ErrStageOrder)
		_, err := st.VertexValues()
		assert.ErrorIs(tst, err, ErrStageOrder)
	})

	// stages from older bases are not accepted
	st.Sim.DiscrOrder = 1
	require.NoError(tst, st.BuildBasis())
	st.Rhs = oldRhs
	assert.ErrorIs(tst, st.AssembleStiffness(), ErrStageOrder)
	assert.ErrorIs(tst, st.SolveProblem(), ErrStageOrder)

	// recovers after running the stages again
	require.NoError(tst, st.AssembleRhs())
	require.NoError(tst, st.AssembleStiffness())
	require.NoError(tst, st.SolveProblem())
	chk.Array(tst, "u", 1e-14, st.Sol, []float64{0, 0.25, 0})
}

func Test_state02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state02. 1D Laplacian with two elements")

	st := newState(tst, lineSettings(1))
	require.NoError(tst, st.Solve())
	assert.True(tst, st.Info.Converged)
	assert.True(tst, st.Bases.Iso)
	chk.Array(tst, "u", 1e-14, st.Sol, []float64{0, 0.25, 0})
	assert.Nil(tst, st.Pressure)

	vals, err := st.InterpolateAtLocal(0, [][]float64{{0.5}, {1}})
	require.NoError(tst, err)
	chk.Float64(tst, "u(0.25)", 1e-15, vals[0][0], 0.125)
	chk.Float64(tst, "u(0.5)", 1e-15, vals[1][0], 0.25)
	verts, err := st.VertexValues()
	require.NoError(tst, err)
	chk.Float64(tst, "u @ vertex 1", 1e-15, verts[1][0], 0.25)

	scalars, err := st.ComputeScalarValues([][]float64{{0.5}})
	require.NoError(tst, err)
	chk.Float64(tst, "scalar field", 1e-15, scalars[1][0], 0)

	require.NoError(tst, st.ComputeErrors())
	io.Pforan("errors = %+v\n", *st.Errors)
	assert.Greater(tst, st.Errors.L2, 0.0)
	assert.Greater(tst, st.Errors.H1, st.Errors.L2)

	sum := st.Summary()
	chk.Int(tst, "num_dofs", sum.NumDofs, 3)
	chk.Int(tst, "nn_zero", sum.NnzZero, 7)
	assert.Equal(tst, "ZeroBC", sum.Problem)
	assert.Equal(tst, "Laplacian", sum.Formulation)
	chk.Float64(tst, "simplex_count", 1e-15, sum.Stats["simplex_count"], 2)
	chk.Float64(tst, "max edge", 1e-15, sum.Stats["max_edge_length"], 0.5)
	assert.Contains(tst, sum.Errors, "err_l2")

	// quadratic bases reproduce the exact solution
	st = newState(tst, lineSettings(2))
	require.NoError(tst, st.Solve())
	require.NoError(tst, st.ComputeErrors())
	chk.Float64(tst, "L2 error P2", 1e-13, st.Errors.L2, 0)
	chk.Float64(tst, "H1 error P2", 1e-12, st.Errors.H1, 0)
}

func Test_state03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state03. switching from LinearElasticity to SaintVenant")

	sim := inp.NewSettings()
	sim.Mesh = inp.MeshData{Type: "rect", N: []int{2, 2}}
	sim.Params = dbf.Params{&dbf.P{N: "E", V: 1}, &dbf.P{N: "nu", V: 0.3}}
	sim.Problem = inp.ProblemData{Name: "UniaxialBar", Load: 1e-3}
	st := newState(tst, sim)

	// linear elasticity reproduces the linear displacement field
	require.NoError(tst, st.Solve())
	require.NotNil(tst, st.Stiffness)
	require.NoError(tst, st.ComputeErrors())
	chk.Float64(tst, "L2 error", 1e-12, st.Errors.L2, 0)
	ulin := append([]float64{}, st.Sol...)

	// switching invalidates stiffness and solution
	require.NoError(tst, st.SetTensorFormulation("SaintVenant"))
	assert.Nil(tst, st.Stiffness)
	assert.Nil(tst, st.Sol)
	assert.Nil(tst, st.Rhs)
	assert.False(tst, st.Assembler.IsLinear(st.Formulation()))
	assert.ErrorIs(tst, st.AssembleStiffness(), ErrStageOrder)
	assert.ErrorIs(tst, st.SolveProblem(), ErrStageOrder)

	// gradient and Hessian path
	require.NoError(tst, st.AssembleRhs())
	_, err := AssembleStiffness(st.Rhs, st.Assembler, ele.SaintVenant)
	assert.ErrorIs(tst, err, asm.ErrNonlinear)
	require.NoError(tst, st.AssembleStiffness())
	assert.Nil(tst, st.Stiffness)
	require.NoError(tst, st.SolveProblem())
	io.Pforan("%v\n", st.Info)
	assert.True(tst, st.Info.Converged)
	assert.Equal(tst, "newton", st.Info.Solver)
	umax := 0.0
	for _, v := range ulin {
		umax = math.Max(umax, math.Abs(v))
	}
	for i := range ulin {
		assert.InDelta(tst, ulin[i], st.Sol[i], 1e-2*umax, "dof %d", i)
	}
	sum := st.Summary()
	chk.Int(tst, "nn_zero", sum.NnzZero, 0)

	// wrong names
	assert.ErrorIs(tst, st.SetTensorFormulation("Foo"), ele.ErrUnknownFormulation)
	assert.Error(tst, st.SetTensorFormulation("Laplacian"))
	assert.Equal(tst, ele.SaintVenant, st.Formulation())
}

func Test_state04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state04. isoparametric decision")

	sim := inp.NewSettings()
	sim.Mesh = inp.MeshData{Type: "rect", N: []int{1, 1}}
	st := newState(tst, sim)
	mesh := st.Mesh.(*msh.Simplicial)

	// no orders
	sim.DiscrOrder = 1
	assert.True(tst, st.IsoParametric())
	sim.DiscrOrder = 2
	assert.False(tst, st.IsoParametric())
	sim.IsoParametric = true
	assert.True(tst, st.IsoParametric())

	// flags that always lead to non-isoparametric bases
	sim.UsePRef = true
	assert.False(tst, st.IsoParametric())
	sim.UsePRef = false
	mesh.Rational = true
	assert.False(tst, st.IsoParametric())
	mesh.Rational = false
	sim.UseSpline = true
	assert.False(tst, st.IsoParametric())
	sim.UseSpline = false
	require.NoError(tst, mesh.SetElemTypes([]msh.ElementType{msh.Simplex, msh.InteriorPolytope}))
	assert.False(tst, st.IsoParametric())
	require.NoError(tst, mesh.SetElemTypes([]msh.ElementType{msh.Undefined, msh.Simplex}))
	assert.False(tst, st.IsoParametric())
	require.NoError(tst, mesh.SetElemTypes([]msh.ElementType{msh.Simplex, msh.Simplex}))
	assert.True(tst, st.IsoParametric())

	// per-element orders
	sim.IsoParametric = false
	mesh.GeomOrders = []int{1, 2}
	assert.False(tst, st.IsoParametric())
	mesh.GeomOrders = []int{2, 2}
	sim.DiscrOrder = 2
	assert.True(tst, st.IsoParametric())
	sim.DiscrOrder = 1
	assert.False(tst, st.IsoParametric())
	sim.ForceLinearGeometry = true
	assert.True(tst, st.IsoParametric())

	// non-isoparametric bases give the same solution
	sim.ForceLinearGeometry = false
	mesh.GeomOrders = nil
	sim.DiscrOrder = 2
	st.ComputeMeshStats()
	require.NoError(tst, st.BuildBasis())
	assert.False(tst, st.Bases.Iso)
	assert.NotNil(tst, st.Bases.Space.Geom)
}

func Test_state05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state05. confined column under gravity")

	for _, solverType := range []string{"cholesky", "cg"} {
		sim := inp.NewSettings()
		sim.DiscrOrder = 2
		sim.SolverType = solverType
		sim.SolverParams.Tol = 1e-13
		sim.Mesh = inp.MeshData{Type: "rect", N: []int{2, 3}, Xmin: []float64{0, 0}, Xmax: []float64{1, 3}}
		sim.Params = dbf.Params{&dbf.P{N: "E", V: 1000}, &dbf.P{N: "nu", V: 0.25}, &dbf.P{N: "rho", V: 2}}
		sim.Problem.Name = "SelfWeight"
		sim.Nthreads = 3
		st := newState(tst, sim)
		require.NoError(tst, st.Solve())
		assert.True(tst, st.Info.Converged, solverType)
		require.NoError(tst, st.ComputeErrors())
		io.Pforan("%s: errors = %+v\n", solverType, *st.Errors)
		chk.Float64(tst, "L2 error", 1e-9, st.Errors.L2, 0)

		// vertical displacement at the top
		verts, err := st.VertexValues()
		require.NoError(tst, err)
		M := 1000 * 0.75 / (1.25 * 0.5)
		top := len(verts) - 1
		chk.Float64(tst, "uy @ top", 1e-9, verts[top][1], -2*10/M*1.5*3)

		// von Mises stresses
		vm, err := st.ComputeScalarValues([][]float64{{1.0 / 3.0, 1.0 / 3.0}})
		require.NoError(tst, err)
		chk.Int(tst, "nelems", len(vm), st.Mesh.Nelems())
		assert.Greater(tst, vm[0][0], 0.0)
	}
}

func Test_state06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state06. essential conditions and mixed split")

	ebcs, err := NewEssentialBcs(4, []int{0, 3}, []float64{1, 2})
	require.NoError(tst, err)
	assert.Equal(tst, []int{1, 2}, ebcs.Free)
	assert.Equal(tst, []int{-1, 0, 1, -1}, ebcs.Fmap)
	chk.Array(tst, "expand", 1e-15, ebcs.Expand([]float64{5, 6}), []float64{1, 5, 6, 2})
	chk.Array(tst, "restrict", 1e-15, ebcs.Restrict([]float64{1, 5, 6, 2}), []float64{5, 6})
	_, err = NewEssentialBcs(4, []int{4}, []float64{0})
	assert.Error(tst, err)
	_, err = NewEssentialBcs(4, []int{1}, nil)
	assert.Error(tst, err)

	u, p := solToPressure([]float64{1, 2, 3, 4, 5}, 3)
	chk.Array(tst, "u", 1e-15, u, []float64{1, 2, 3})
	chk.Array(tst, "p", 1e-15, p, []float64{4, 5})
	u, p = solToPressure([]float64{1, 2, 3}, 3)
	chk.Int(tst, "len(u)", len(u), 3)
	assert.Nil(tst, p)

	// multimaterial with wrong sizes is rejected
	sim := lineSettings(1)
	sim.Multimaterial = &inp.Multimaterial{E: []float64{1}, Nu: []float64{0}}
	sim.SetDefault()
	mesh, err := LoadMesh(&sim.Mesh)
	require.NoError(tst, err)
	_, err = NewState(sim, mesh, prb.NewZeroBC(1), nil)
	assert.Error(tst, err)

	// unknown formulation
	sim = lineSettings(1)
	sim.ScalarFormulation = "Poisson"
	_, err = NewState(sim, mesh, prb.NewZeroBC(1), nil)
	assert.ErrorIs(tst, err, ele.ErrUnknownFormulation)
}
