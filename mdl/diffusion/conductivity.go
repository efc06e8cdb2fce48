// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diffusion

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// Conductivity implements a constant conductivity tensor
//
//   kten = diag(kx, ky, kz)   or   kten = k I
//
type Conductivity struct {
	Kcte [][]float64 // [ndim][ndim] conductivity tensor
}

// add model to factory
func init() {
	allocators["cte"] = func() Model { return new(Conductivity) }
}

// Init initialises this structure
//  Note: k defaults to 1 when neither k nor [kx, ky, kz] are given
func (o *Conductivity) Init(ndim int, prms dbf.Params) (err error) {

	// parameters
	k := []float64{1, 1, 1}
	var found [3]bool
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "k":
			k = []float64{p.V, p.V, p.V}
		case "kx":
			k[0], found[0] = p.V, true
		case "ky":
			k[1], found[1] = p.V, true
		case "kz":
			k[2], found[2] = p.V, true
		}
	}
	if found[0] || found[1] || found[2] {
		for i := 0; i < ndim; i++ {
			if !found[i] {
				return chk.Err("conductivity: either 'k' (isotropic) or all of ['kx', 'ky', 'kz'][:ndim] must be given")
			}
		}
	}
	for i := 0; i < ndim; i++ {
		if k[i] <= 0 {
			return chk.Err("conductivity: k must be positive. k[%d]=%g is invalid", i, k[i])
		}
	}

	// ktensor
	o.Kcte = utl.Alloc(ndim, ndim)
	for i := 0; i < ndim; i++ {
		o.Kcte[i][i] = k[i]
	}
	return
}

// Kten computes the conductivity tensor of element
func (o *Conductivity) Kten(K [][]float64, eid int) {
	for i := range K {
		copy(K[i], o.Kcte[i])
	}
}
