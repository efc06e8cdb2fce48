// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"
	"fmt"

	"github.com/cpmech/gosl/chk"
	"github.com/james-bowman/sparse"
	"github.com/npulgh/polyfem/asm"
	"github.com/npulgh/polyfem/bas"
	"github.com/npulgh/polyfem/ele"
	"github.com/npulgh/polyfem/msh"
	"github.com/npulgh/polyfem/prb"
)

// ErrStageOrder is returned when a stage runs before the stages it depends on
var ErrStageOrder = errors.New("solve stages called out of order")

// Bases holds the output of the basis construction stage
type Bases struct {
	Stats *MeshStats // statistics of the mesh
	Space *bas.Space // bases of all elements
	Iso   bool       // isoparametric
}

// RhsStage holds the output of the rhs assembly stage
type RhsStage struct {
	Bases       *Bases          // bases used
	Formulation ele.Formulation // formulation used (density)
	Ncomps      int             // unknowns per node
	F           []float64       // load vector
	Fixed       []int           // constrained dofs (sorted)
	Values      []float64       // prescribed values of constrained dofs
}

// StiffnessStage holds the output of the stiffness assembly stage
type StiffnessStage struct {
	Bases       *Bases          // bases used
	Formulation ele.Formulation // formulation used
	K           *sparse.CSR     // stiffness matrix
}

// BuildBasis builds the bases of all elements
func BuildBasis(stats *MeshStats, mesh msh.Mesh, order int, iso bool, quadDegree int) (*Bases, error) {
	if stats == nil {
		return nil, fmt.Errorf("%w: mesh statistics must be computed before building bases", ErrStageOrder)
	}
	space, err := bas.Build(mesh, order, iso, quadDegree)
	if err != nil {
		return nil, chk.Err("cannot build bases:\n%v", err)
	}
	return &Bases{Stats: stats, Space: space, Iso: iso}, nil
}

// AssembleRhs assembles the load vector and collects essential boundary conditions
func AssembleRhs(b *Bases, a *asm.Assembler, f ele.Formulation, problem prb.Problem) (*RhsStage, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: bases must be built before assembling the rhs", ErrStageOrder)
	}
	F, err := a.AssembleRhs(f, b.Space, problem)
	if err != nil {
		return nil, err
	}
	fixed, vals := asm.DirichletValues(b.Space, problem)
	return &RhsStage{Bases: b, Formulation: f, Ncomps: f.Ncomps(b.Space.Ndim), F: F, Fixed: fixed, Values: vals}, nil
}

// AssembleStiffness assembles the stiffness matrix of a linear formulation
//  Note: the rhs stage must be available; its bases are used
func AssembleStiffness(r *RhsStage, a *asm.Assembler, f ele.Formulation) (*StiffnessStage, error) {
	if r == nil || r.Bases == nil {
		return nil, fmt.Errorf("%w: the rhs must be assembled before assembling the stiffness", ErrStageOrder)
	}
	b := r.Bases
	var K *sparse.CSR
	var err error
	if f.IsScalar() {
		K, err = a.AssembleScalar(f, b.Space)
	} else {
		K, err = a.AssembleTensor(f, b.Space)
	}
	if err != nil {
		return nil, err
	}
	return &StiffnessStage{Bases: b, Formulation: f, K: K}, nil
}
