// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package asm implements the global assembly of operators by dispatching to element kernels
package asm

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
	"github.com/james-bowman/sparse"
	"github.com/npulgh/polyfem/bas"
	"github.com/npulgh/polyfem/ele"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrKindMismatch is returned when an operation does not apply to the kind of formulation
	ErrKindMismatch = errors.New("operation does not apply to this kind of formulation")

	// ErrNonlinear is returned when a stiffness matrix is requested for a nonlinear formulation
	ErrNonlinear = errors.New("nonlinear formulation has no constant stiffness")
)

// Assembler assembles global operators of all formulations
//  Note: SetParameters and SetMultimaterial must not be called during assembly
type Assembler struct {
	nworkers int         // number of concurrent workers
	set      *ele.Set    // kernels
	log      *zap.Logger // logger
}

// New returns a new assembler
//  Input:
//   nworkers -- number of workers; 0 means GOMAXPROCS
//   logger   -- logger; nil means no logging
func New(nworkers int, logger *zap.Logger) (o *Assembler, err error) {
	if nworkers < 1 {
		nworkers = runtime.GOMAXPROCS(0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	set, err := ele.NewSet()
	if err != nil {
		return nil, chk.Err("cannot allocate kernels:\n%v", err)
	}
	return &Assembler{nworkers: nworkers, set: set, log: logger}, nil
}

// IsLinear tells whether the formulation has a constant stiffness; false for unknown formulations
func (o *Assembler) IsLinear(f ele.Formulation) bool { return f.IsLinear() }

// SetParameters broadcasts material parameters to all kernels
func (o *Assembler) SetParameters(ndim int, pstress bool, prms dbf.Params) error {
	return o.set.SetParameters(ndim, pstress, prms)
}

// SetMultimaterial broadcasts per-element parameters to all kernels
func (o *Assembler) SetMultimaterial(E, nu, rho []float64, nelems int) error {
	return o.set.SetMultimaterial(E, nu, rho, nelems)
}

// Density returns the density of element eid in formulation f
func (o *Assembler) Density(f ele.Formulation, eid int) (float64, error) {
	if err := known(f); err != nil {
		return 0, err
	}
	k, err := o.set.Get(f)
	if err != nil {
		return 0, err
	}
	return k.Density(eid), nil
}

// AssembleScalar assembles the stiffness matrix of a scalar formulation
func (o *Assembler) AssembleScalar(f ele.Formulation, space *bas.Space) (*sparse.CSR, error) {
	if err := known(f); err != nil {
		return nil, err
	}
	if !f.IsScalar() {
		return nil, fmt.Errorf("%w: AssembleScalar called with %v", ErrKindMismatch, f)
	}
	return o.assembleLinear(f, space, 1)
}

// AssembleTensor assembles the stiffness matrix of a linear tensor formulation
func (o *Assembler) AssembleTensor(f ele.Formulation, space *bas.Space) (*sparse.CSR, error) {
	if err := known(f); err != nil {
		return nil, err
	}
	if f.IsScalar() {
		return nil, fmt.Errorf("%w: AssembleTensor called with %v", ErrKindMismatch, f)
	}
	if !f.IsLinear() {
		return nil, fmt.Errorf("%w: %v", ErrNonlinear, f)
	}
	return o.assembleLinear(f, space, space.Ndim)
}

// AssembleMass assembles the consistent mass matrix ∫ ρ N N dΩ of a formulation
func (o *Assembler) AssembleMass(f ele.Formulation, space *bas.Space) (*sparse.CSR, error) {
	if err := known(f); err != nil {
		return nil, err
	}
	k, err := o.set.Get(f)
	if err != nil {
		return nil, err
	}
	ncomp := f.Ncomps(space.Ndim)
	return o.reduceMatrix(space, ncomp, "mass", func(M *mat.Dense, eb *bas.ElementBases) error {
		ρ := k.Density(eb.Id)
		for idx := range eb.Ips {
			coef := ρ * eb.Coef(idx)
			S := eb.S[idx]
			for m := range S {
				for n := range S {
					for i := 0; i < ncomp; i++ {
						M.Set(m*ncomp+i, n*ncomp+i, M.At(m*ncomp+i, n*ncomp+i)+coef*S[m]*S[n])
					}
				}
			}
		}
		return nil
	})
}

// TensorEnergy computes the stored energy; zero for linear formulations
func (o *Assembler) TensorEnergy(f ele.Formulation, space *bas.Space, U []float64) (energy float64, err error) {
	kernel, err := o.nonlinear(f, space, U)
	if kernel == nil || err != nil {
		return 0, err
	}
	ndim := space.Ndim
	partial := make([]float64, o.workers(len(space.Elems)))
	err = o.loop(len(space.Elems), func(w, e int) error {
		eb := space.Elems[e]
		val, err := kernel.Energy(eb, ele.Extract(U, ele.Dofs(eb, ndim)))
		if err != nil {
			return chk.Err("element %d: cannot compute energy:\n%v", e, err)
		}
		partial[w] += val
		return nil
	})
	if err != nil {
		return 0, err
	}
	for _, val := range partial {
		energy += val
	}
	return
}

// TensorEnergyGradient computes the gradient of the stored energy (internal forces); zero for linear formulations
func (o *Assembler) TensorEnergyGradient(f ele.Formulation, space *bas.Space, U []float64) (grad []float64, err error) {
	ndofs := space.Nbases * space.Ndim
	kernel, err := o.nonlinear(f, space, U)
	if err != nil {
		return nil, err
	}
	grad = make([]float64, ndofs)
	if kernel == nil {
		return
	}
	ndim := space.Ndim
	nw := o.workers(len(space.Elems))
	partial := utl.Alloc(nw, ndofs)
	err = o.loop(len(space.Elems), func(w, e int) error {
		eb := space.Elems[e]
		dofs := ele.Dofs(eb, ndim)
		g := make([]float64, len(dofs))
		err := kernel.Gradient(g, eb, ele.Extract(U, dofs))
		if err != nil {
			return chk.Err("element %d: cannot compute gradient:\n%v", e, err)
		}
		for i, d := range dofs {
			partial[w][d] += g[i]
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, p := range partial {
		for i, v := range p {
			grad[i] += v
		}
	}
	return
}

// TensorEnergyHessian computes the Hessian of the stored energy (tangent stiffness); empty for linear formulations
func (o *Assembler) TensorEnergyHessian(f ele.Formulation, space *bas.Space, U []float64) (*sparse.CSR, error) {
	ndofs := space.Nbases * space.Ndim
	kernel, err := o.nonlinear(f, space, U)
	if err != nil {
		return nil, err
	}
	if kernel == nil {
		return sparse.NewCSR(ndofs, ndofs, make([]int, ndofs+1), []int{}, []float64{}), nil
	}
	ndim := space.Ndim
	return o.reduceMatrix(space, ndim, "hessian", func(H *mat.Dense, eb *bas.ElementBases) error {
		return kernel.Hessian(H, eb, ele.Extract(U, ele.Dofs(eb, ndim)))
	})
}

// ComputeScalarField computes a scalar field at local points of one element
//  Note: zero for scalar formulations; von Mises stress for tensor formulations
func (o *Assembler) ComputeScalarField(f ele.Formulation, eb *bas.ElementBases, pts [][]float64, U []float64) (vals []float64, err error) {
	if err = known(f); err != nil {
		return
	}
	if f.IsScalar() {
		return make([]float64, len(pts)), nil
	}
	k, err := o.set.Get(f)
	if err != nil {
		return nil, err
	}
	s, ok := k.(ele.Stress)
	if !ok {
		return nil, fmt.Errorf("%w: %v cannot compute stresses", ErrKindMismatch, f)
	}
	return s.VonMises(eb, pts, ele.Extract(U, ele.Dofs(eb, eb.Ndim())))
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// assembleLinear assembles the stiffness matrix of a linear formulation
func (o *Assembler) assembleLinear(f ele.Formulation, space *bas.Space, ncomp int) (*sparse.CSR, error) {
	k, err := o.set.Get(f)
	if err != nil {
		return nil, err
	}
	kernel, ok := k.(ele.Linear)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNonlinear, f)
	}
	return o.reduceMatrix(space, ncomp, f.String(), func(K *mat.Dense, eb *bas.ElementBases) error {
		return kernel.Stiffness(K, eb)
	})
}

// nonlinear returns the nonlinear kernel of f or nil if f is linear
func (o *Assembler) nonlinear(f ele.Formulation, space *bas.Space, U []float64) (ele.Nonlinear, error) {
	if err := known(f); err != nil {
		return nil, err
	}
	if f.IsScalar() {
		return nil, fmt.Errorf("%w: energy requested for %v", ErrKindMismatch, f)
	}
	if len(U) != space.Nbases*space.Ndim {
		return nil, chk.Err("size of displacement vector (%d) must be equal to the number of dofs (%d)", len(U), space.Nbases*space.Ndim)
	}
	if f.IsLinear() {
		return nil, nil
	}
	k, err := o.set.Get(f)
	if err != nil {
		return nil, err
	}
	kernel, ok := k.(ele.Nonlinear)
	if !ok {
		return nil, fmt.Errorf("%w: %v has no energy", ErrKindMismatch, f)
	}
	return kernel, nil
}

// known returns an error if f is not one of the available formulations
func known(f ele.Formulation) error {
	if !f.Valid() {
		return fmt.Errorf("%w: %v", ele.ErrUnknownFormulation, f)
	}
	return nil
}

// reduceMatrix computes local matrices in parallel and merges them into a global sparse matrix
//  Note: each worker fills its own triplet over a contiguous range of elements;
//        triplets are merged in worker order
func (o *Assembler) reduceMatrix(space *bas.Space, ncomp int, what string, local func(K *mat.Dense, eb *bas.ElementBases) error) (*sparse.CSR, error) {
	tic := time.Now()
	ndofs := space.Nbases * ncomp
	nw := o.workers(len(space.Elems))
	trips := make([]*Triplet, nw)
	for w := range trips {
		trips[w] = NewTriplet(ndofs, 0)
	}
	err := o.loop(len(space.Elems), func(w, e int) error {
		eb := space.Elems[e]
		dofs := ele.Dofs(eb, ncomp)
		K := mat.NewDense(len(dofs), len(dofs), nil)
		err := local(K, eb)
		if err != nil {
			return chk.Err("element %d: cannot compute %s matrix:\n%v", e, what, err)
		}
		for i, I := range dofs {
			for j, J := range dofs {
				trips[w].Put(I, J, K.At(i, j))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	all := NewTriplet(ndofs, 0)
	for _, t := range trips {
		all.Append(t)
	}
	A := all.ToCSR()
	o.log.Debug("assembled", zap.String("matrix", what), zap.Int("ndofs", ndofs), zap.Int("nnz", A.NNZ()), zap.Int("workers", nw), zap.Duration("elapsed", time.Since(tic)))
	return A, nil
}

// workers returns the number of workers used for n elements
func (o *Assembler) workers(n int) int {
	return max(1, min(o.nworkers, n))
}

// loop runs fcn(worker, element) for all elements; worker w handles a contiguous chunk of elements
func (o *Assembler) loop(nelems int, fcn func(w, e int) error) error {
	nw := o.workers(nelems)
	var g errgroup.Group
	for w := 0; w < nw; w++ {
		start, end := w*nelems/nw, (w+1)*nelems/nw
		g.Go(func() error {
			for e := start; e < end; e++ {
				if err := fcn(w, e); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
