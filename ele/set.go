// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Set holds one kernel per formulation, each with its own material parameters
type Set struct {
	kernels [nformulations]Kernel
}

// NewSet allocates one kernel of each registered formulation
func NewSet() (o *Set, err error) {
	o = new(Set)
	for _, f := range Formulations() {
		o.kernels[f], err = New(f)
		if err != nil {
			return nil, err
		}
	}
	return
}

// Get returns the kernel of a formulation
func (o *Set) Get(f Formulation) (k Kernel, err error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormulation, f)
	}
	return o.kernels[f], nil
}

// SetParameters broadcasts material parameters to all kernels
func (o *Set) SetParameters(ndim int, pstress bool, prms dbf.Params) (err error) {
	for f, k := range o.kernels {
		err = k.SetParameters(ndim, pstress, prms)
		if err != nil {
			return chk.Err("cannot set parameters of %v kernel:\n%v", Formulation(f), err)
		}
	}
	return
}

// SetMultimaterial broadcasts per-element material parameters to all kernels
func (o *Set) SetMultimaterial(E, nu, rho []float64, nelems int) (err error) {
	for f, k := range o.kernels {
		err = k.SetMultimaterial(E, nu, rho, nelems)
		if err != nil {
			return fmt.Errorf("cannot set multimaterial of %v kernel:\n%w", Formulation(f), err)
		}
	}
	return
}
