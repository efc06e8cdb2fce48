// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements the per-element kernels of each formulation
package ele

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/npulgh/polyfem/bas"
	"gonum.org/v1/gonum/mat"
)

// Kernel defines what all kernels must implement
//  Note: parameters must not be changed while kernels are in use by other goroutines
type Kernel interface {
	SetParameters(ndim int, pstress bool, prms dbf.Params) error // sets material parameters, overwriting previous ones
	SetMultimaterial(E, nu, rho []float64, nelems int) error     // sets per-element material parameters
	Density(eid int) float64                                     // density of element
}

// Linear defines kernels with a constant local stiffness matrix
type Linear interface {
	Stiffness(K *mat.Dense, eb *bas.ElementBases) error // computes the local stiffness; K is zeroed by the caller
}

// Nonlinear defines kernels with a stored energy
//  u is the local vector of unknowns ordered as node-major: [n0x, n0y, n1x, n1y, ...]
type Nonlinear interface {
	Energy(eb *bas.ElementBases, u []float64) (float64, error)     // computes the stored energy
	Gradient(g []float64, eb *bas.ElementBases, u []float64) error // adds dEnergy/du to g
	Hessian(H *mat.Dense, eb *bas.ElementBases, u []float64) error // adds d²Energy/du² to H
}

// Stress defines kernels that can compute a scalar stress measure at local points
type Stress interface {
	VonMises(eb *bas.ElementBases, pts [][]float64, u []float64) ([]float64, error) // von Mises stress at local points
}
