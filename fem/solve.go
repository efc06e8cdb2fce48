// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"fmt"

	"github.com/npulgh/polyfem/asm"
	"github.com/npulgh/polyfem/solver"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SolveLinear solves K u = F with essential boundary conditions
func SolveLinear(rhs *RhsStage, stiff *StiffnessStage, lin solver.Linear) (sol []float64, info solver.Info, err error) {
	if rhs == nil || stiff == nil {
		return nil, info, fmt.Errorf("%w: rhs and stiffness must be assembled before solving", ErrStageOrder)
	}
	if rhs.Bases != stiff.Bases {
		return nil, info, fmt.Errorf("%w: rhs and stiffness were assembled with different bases", ErrStageOrder)
	}
	ebcs, err := NewEssentialBcs(len(rhs.F), rhs.Fixed, rhs.Values)
	if err != nil {
		return
	}
	K, F := ebcs.Eliminate(stiff.K, rhs.F)
	return lin.Solve(K, F)
}

// SolveNonlinear minimises W(u) - F·u over the free equations with Newton's method
func SolveNonlinear(rhs *RhsStage, a *asm.Assembler, newton *solver.Newton) (sol []float64, info solver.Info, err error) {
	if rhs == nil {
		return nil, info, fmt.Errorf("%w: rhs must be assembled before solving", ErrStageOrder)
	}
	f, space := rhs.Formulation, rhs.Bases.Space
	ebcs, err := NewEssentialBcs(len(rhs.F), rhs.Fixed, rhs.Values)
	if err != nil {
		return
	}
	Ffree := ebcs.Restrict(rhs.F)
	obj := solver.Objective{
		Energy: func(x []float64) (float64, error) {
			U := ebcs.Expand(x)
			W, err := a.TensorEnergy(f, space, U)
			if err != nil {
				return 0, err
			}
			return W - floats.Dot(rhs.F, U), nil
		},
		Gradient: func(g, x []float64) error {
			G, err := a.TensorEnergyGradient(f, space, ebcs.Expand(x))
			if err != nil {
				return err
			}
			floats.SubTo(g, ebcs.Restrict(G), Ffree)
			return nil
		},
		Hessian: func(H *mat.SymDense, x []float64) error {
			A, err := a.TensorEnergyHessian(f, space, ebcs.Expand(x))
			if err != nil {
				return err
			}
			ebcs.RestrictMatrix(H, A)
			return nil
		},
	}
	xfree, info, err := newton.Minimize(obj, make([]float64, len(ebcs.Free)))
	if err != nil {
		return
	}
	return ebcs.Expand(xfree), info, nil
}

// solToPressure splits the solution of a mixed formulation into primary unknowns and pressure
//  Note: the pressure unknowns follow the first nprimary entries; no pressure if there are none
func solToPressure(sol []float64, nprimary int) (u, p []float64) {
	if len(sol) <= nprimary {
		return sol, nil
	}
	return sol[:nprimary], sol[nprimary:]
}
