// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the solve pipeline: mesh statistics, bases, rhs, stiffness, solution and post-processing
package fem

import (
	"fmt"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/james-bowman/sparse"
	"github.com/npulgh/polyfem/asm"
	"github.com/npulgh/polyfem/ele"
	"github.com/npulgh/polyfem/inp"
	"github.com/npulgh/polyfem/msh"
	"github.com/npulgh/polyfem/prb"
	"github.com/npulgh/polyfem/solver"
	"go.uber.org/zap"
)

// Timings holds the elapsed time of each stage
type Timings struct {
	BuildingBasis       time.Duration `json:"building_basis"`
	AssemblingStiffness time.Duration `json:"assembling_stiffness"`
	AssigningRhs        time.Duration `json:"assigning_rhs"`
	Solving             time.Duration `json:"solving"`
	ComputingErrors     time.Duration `json:"computing_errors"`
}

// State holds all data of one solve
//  Note: stages must run in order: ComputeMeshStats, BuildBasis, AssembleRhs, AssembleStiffness (linear only), SolveProblem
type State struct {

	// input
	Sim       *inp.Settings  // settings
	Mesh      msh.Mesh       // mesh
	Problem   prb.Problem    // boundary-value problem
	Assembler *asm.Assembler // assembler owned by this state
	Log       *zap.Logger    // logger

	// stage outputs
	Stats     *MeshStats      // mesh statistics
	Bases     *Bases          // bases
	Rhs       *RhsStage       // load vector and boundary conditions
	Stiffness *StiffnessStage // stiffness matrix; nil for nonlinear formulations
	Mass      *sparse.CSR     // mass matrix (time-dependent problems only)
	Sol       []float64       // solution
	Pressure  []float64       // pressure (mixed formulations only)
	Info      solver.Info     // solver diagnostics

	// post-processing
	Errors  *Errors // errors w.r.t the exact solution
	Timings Timings // elapsed times

	// formulations
	scalar ele.Formulation
	tensor ele.Formulation
}

// NewState returns a new state
//  Input:
//   sim     -- settings; read-only
//   mesh    -- mesh
//   problem -- boundary-value problem
//   logger  -- logger; nil means no logging
func NewState(sim *inp.Settings, mesh msh.Mesh, problem prb.Problem, logger *zap.Logger) (o *State, err error) {

	// check
	if mesh == nil {
		return nil, chk.Err("mesh must be given")
	}
	if problem == nil {
		return nil, chk.Err("problem must be given")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	// formulations
	o = &State{Sim: sim, Mesh: mesh, Problem: problem, Log: logger}
	o.scalar, err = ele.ParseFormulation(sim.ScalarFormulation)
	if err != nil {
		return nil, err
	}
	if !o.scalar.IsScalar() {
		return nil, chk.Err("scalar formulation %q is not scalar", sim.ScalarFormulation)
	}
	o.tensor, err = ele.ParseFormulation(sim.TensorFormulation)
	if err != nil {
		return nil, err
	}
	if o.tensor.IsScalar() {
		return nil, chk.Err("tensor formulation %q is not a tensor formulation", sim.TensorFormulation)
	}

	// assembler
	o.Assembler, err = asm.New(sim.Nthreads, logger)
	if err != nil {
		return nil, err
	}
	err = o.Assembler.SetParameters(mesh.Ndim(), sim.Pstress, sim.Params)
	if err != nil {
		return nil, err
	}
	if mm := sim.Multimaterial; mm != nil {
		err = o.Assembler.SetMultimaterial(mm.E, mm.Nu, mm.Rho, mesh.Nelems())
		if err != nil {
			return nil, err
		}
	}
	return
}

// Formulation returns the active formulation
func (o *State) Formulation() ele.Formulation {
	if o.Problem.IsScalar() {
		return o.scalar
	}
	return o.tensor
}

// SetTensorFormulation changes the tensor formulation
//  Note: previously assembled rhs, stiffness and mass matrices and the solution are discarded
func (o *State) SetTensorFormulation(name string) (err error) {
	f, err := ele.ParseFormulation(name)
	if err != nil {
		return
	}
	if f.IsScalar() {
		return chk.Err("tensor formulation %q is not a tensor formulation", name)
	}
	o.tensor = f
	o.invalidate()
	o.Log.Info("tensor formulation changed", zap.Stringer("formulation", f))
	return
}

// IsoParametric tells whether the geometry is described by the same bases as the solution
//  Note: the first rule that applies decides:
//   1. non-regular (polytope) or undefined elements => false
//   2. spline bases => false
//   3. rational geometry => false
//   4. p-refinement => false
//   5. no per-element orders => true if the discretisation order is 1; otherwise, the setting
//   6. mixed per-element orders => false
//   7. discretisation order equal to the geometric order => true
//   8. linear bases with forced linear geometry => true
//   9. otherwise, the setting
func (o *State) IsoParametric() bool {
	stats := o.Stats
	if stats == nil {
		stats = ComputeMeshStats(o.Mesh)
	}
	if stats.HasPolytopes() {
		return false
	}
	if o.Sim.UseSpline {
		return false
	}
	if o.Mesh.IsRational() {
		return false
	}
	if o.Sim.UsePRef {
		return false
	}
	orders := o.Mesh.Orders()
	if len(orders) == 0 {
		if o.Sim.DiscrOrder == 1 {
			return true
		}
		return o.Sim.IsoParametric
	}
	for _, p := range orders {
		if p != orders[0] {
			return false
		}
	}
	if o.Sim.DiscrOrder == orders[0] {
		return true
	}
	if o.Sim.DiscrOrder == 1 && o.Sim.ForceLinearGeometry {
		return true
	}
	return o.Sim.IsoParametric
}

// ComputeMeshStats computes the mesh statistics
func (o *State) ComputeMeshStats() {
	o.Stats = ComputeMeshStats(o.Mesh)
	o.Bases = nil
	o.invalidate()
	o.Log.Info("mesh statistics",
		zap.Int("nelems", o.Stats.Nelems),
		zap.Int("nverts", o.Stats.Nverts),
		zap.Int("simplices", o.Stats.SimplexCount),
		zap.Float64("min_edge", o.Stats.MinEdge),
		zap.Float64("max_edge", o.Stats.MaxEdge))
}

// BuildBasis builds the bases of all elements
func (o *State) BuildBasis() (err error) {
	if o.Stats == nil {
		return fmt.Errorf("%w: ComputeMeshStats must be called before BuildBasis", ErrStageOrder)
	}
	tic := time.Now()
	iso := o.IsoParametric()
	o.Bases = nil
	o.invalidate()
	o.Bases, err = BuildBasis(o.Stats, o.Mesh, o.Sim.DiscrOrder, iso, o.Sim.QuadDegree())
	if err != nil {
		return
	}
	o.Timings.BuildingBasis = time.Since(tic)
	o.Log.Info("bases built",
		zap.Int("order", o.Sim.DiscrOrder),
		zap.Bool("iso", iso),
		zap.Int("nbases", o.Bases.Space.Nbases),
		zap.Duration("elapsed", o.Timings.BuildingBasis))
	return
}

// AssembleRhs assembles the load vector and collects essential boundary conditions
func (o *State) AssembleRhs() (err error) {
	if o.Bases == nil {
		return fmt.Errorf("%w: BuildBasis must be called before AssembleRhs", ErrStageOrder)
	}
	tic := time.Now()
	o.Rhs, err = AssembleRhs(o.Bases, o.Assembler, o.Formulation(), o.Problem)
	if err != nil {
		return
	}
	o.Timings.AssigningRhs = time.Since(tic)
	o.Log.Info("rhs assembled",
		zap.Int("ndofs", len(o.Rhs.F)),
		zap.Int("nfixed", len(o.Rhs.Fixed)),
		zap.Duration("elapsed", o.Timings.AssigningRhs))
	return
}

// AssembleStiffness assembles the stiffness matrix; nothing is assembled for nonlinear formulations
func (o *State) AssembleStiffness() (err error) {
	if o.Bases == nil {
		return fmt.Errorf("%w: BuildBasis must be called before AssembleStiffness", ErrStageOrder)
	}
	if o.Rhs == nil || o.Rhs.Bases != o.Bases {
		return fmt.Errorf("%w: AssembleRhs must be called before AssembleStiffness", ErrStageOrder)
	}
	f := o.Formulation()
	o.Stiffness = nil
	if !o.Assembler.IsLinear(f) {
		o.Log.Info("stiffness skipped", zap.Stringer("formulation", f))
		return
	}
	tic := time.Now()
	o.Stiffness, err = AssembleStiffness(o.Rhs, o.Assembler, f)
	if err != nil {
		return
	}
	o.Timings.AssemblingStiffness = time.Since(tic)
	o.Log.Info("stiffness assembled",
		zap.Stringer("formulation", f),
		zap.Int("nnz", o.Stiffness.K.NNZ()),
		zap.Duration("elapsed", o.Timings.AssemblingStiffness))
	return
}

// AssembleMass assembles the mass matrix
func (o *State) AssembleMass() (err error) {
	if o.Bases == nil {
		return fmt.Errorf("%w: BuildBasis must be called before AssembleMass", ErrStageOrder)
	}
	o.Mass, err = o.Assembler.AssembleMass(o.Formulation(), o.Bases.Space)
	return
}

// SolveProblem solves the discrete equations
//  Note: non-convergence is not an error; see Info
func (o *State) SolveProblem() (err error) {
	if o.Bases == nil || o.Rhs == nil || o.Rhs.Bases != o.Bases {
		return fmt.Errorf("%w: BuildBasis and AssembleRhs must be called before SolveProblem", ErrStageOrder)
	}
	f := o.Formulation()
	if o.Rhs.Formulation != f {
		return fmt.Errorf("%w: rhs was assembled for %v but the formulation is %v", ErrStageOrder, o.Rhs.Formulation, f)
	}
	tic := time.Now()
	var sol []float64
	if o.Assembler.IsLinear(f) {
		if o.Stiffness == nil || o.Stiffness.Formulation != f || o.Stiffness.Bases != o.Bases {
			return fmt.Errorf("%w: AssembleStiffness must be called before SolveProblem", ErrStageOrder)
		}
		var lin solver.Linear
		lin, err = solver.GetLinear(o.Sim.SolverType, &o.Sim.SolverParams)
		if err != nil {
			return
		}
		sol, o.Info, err = SolveLinear(o.Rhs, o.Stiffness, lin)
	} else {
		newton := &solver.Newton{GradTol: o.Sim.NlSolverParams.GradTol, MaxIt: o.Sim.NlSolverParams.MaxIt}
		sol, o.Info, err = SolveNonlinear(o.Rhs, o.Assembler, newton)
	}
	if err != nil {
		return
	}
	o.Sol, o.Pressure = solToPressure(sol, o.Bases.Space.Nbases*o.Rhs.Ncomps)
	o.Errors = nil
	o.Timings.Solving = time.Since(tic)
	log := o.Log.Info
	if !o.Info.Converged {
		log = o.Log.Warn
	}
	log("solved",
		zap.String("solver", o.Info.Solver),
		zap.Int("iterations", o.Info.Iterations),
		zap.Float64("residual", o.Info.Residual),
		zap.Bool("converged", o.Info.Converged),
		zap.Duration("elapsed", o.Timings.Solving))
	return
}

// Solve runs all stages in order
func (o *State) Solve() (err error) {
	o.ComputeMeshStats()
	err = o.BuildBasis()
	if err != nil {
		return
	}
	err = o.AssembleRhs()
	if err != nil {
		return
	}
	err = o.AssembleStiffness()
	if err != nil {
		return
	}
	return o.SolveProblem()
}

// checkSolved returns an error if there is no solution computed with the current bases
func (o *State) checkSolved(caller string) error {
	if o.Sol == nil || o.Bases == nil || o.Rhs == nil || o.Rhs.Bases != o.Bases {
		return fmt.Errorf("%w: SolveProblem must be called before %s", ErrStageOrder, caller)
	}
	return nil
}

// invalidate discards the outputs that depend on bases or formulation
func (o *State) invalidate() {
	o.Rhs = nil
	o.Stiffness = nil
	o.Mass = nil
	o.Sol = nil
	o.Pressure = nil
	o.Errors = nil
	o.Info = solver.Info{}
}
