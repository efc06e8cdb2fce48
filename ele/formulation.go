// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"errors"
	"fmt"
)

// ErrUnknownFormulation is returned when a formulation name is not recognised
var ErrUnknownFormulation = errors.New("unknown formulation")

// Formulation identifies a physical formulation
type Formulation int

// formulations
const (
	Laplacian Formulation = iota
	LinearElasticity
	HookeLinearElasticity
	SaintVenant
	nformulations
)

// Kind tells which operations a formulation supports
type Kind int

// kinds
const (
	Scalar          Kind = iota // scalar unknown; linear
	LinearTensor                // vector unknown; constant stiffness
	NonlinearTensor             // vector unknown; energy, gradient and Hessian only
)

// formulation names and kinds
var (
	formulationNames = [...]string{"Laplacian", "LinearElasticity", "HookeLinearElasticity", "SaintVenant"}
	formulationKinds = [...]Kind{Scalar, LinearTensor, LinearTensor, NonlinearTensor}
)

// ParseFormulation returns the formulation with the given name
func ParseFormulation(name string) (f Formulation, err error) {
	for i, n := range formulationNames {
		if n == name {
			return Formulation(i), nil
		}
	}
	return -1, fmt.Errorf("%w %q; available: %v", ErrUnknownFormulation, name, formulationNames)
}

// Formulations returns all formulations
func Formulations() (list []Formulation) {
	for f := Formulation(0); f < nformulations; f++ {
		list = append(list, f)
	}
	return
}

// Valid tells whether f is a known formulation
func (f Formulation) Valid() bool { return f >= 0 && f < nformulations }

// String returns the name of the formulation
func (f Formulation) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Formulation(%d)", int(f))
	}
	return formulationNames[f]
}

// Kind returns the kind of the formulation
func (f Formulation) Kind() Kind {
	if !f.Valid() {
		return -1
	}
	return formulationKinds[f]
}

// IsScalar tells whether the formulation has a scalar unknown
func (f Formulation) IsScalar() bool { return f.Kind() == Scalar }

// IsLinear tells whether the formulation is linear; true for all but SaintVenant
//  Note: false for unknown formulations
func (f Formulation) IsLinear() bool { return f.Kind().IsLinear() }

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case Scalar:
		return "Scalar"
	case LinearTensor:
		return "LinearTensor"
	case NonlinearTensor:
		return "NonlinearTensor"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsScalar tells whether the kind is scalar
func (k Kind) IsScalar() bool { return k == Scalar }

// IsLinear tells whether the kind is linear
func (k Kind) IsLinear() bool { return k == Scalar || k == LinearTensor }

// Ncomps returns the number of unknowns per node
func (f Formulation) Ncomps(ndim int) int {
	if f.IsScalar() {
		return 1
	}
	return ndim
}
