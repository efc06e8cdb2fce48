// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Hooke implements a general (anisotropic) elasticity tensor in Voigt notation
//  Voigt ordering:  2D: xx, yy, xy          3D: xx, yy, zz, yz, xz, xy
//  Strain uses engineering shear components (γ = 2ε)
type Hooke struct {
	Elastic             // isotropic fallback and density
	C       [][]float64 // [nvoigt][nvoigt] tensor; nil => computed from (E, ν)
}

// add model to factory
func init() {
	allocators["hooke"] = func() Model { return new(Hooke) }
}

// Nvoigt returns the size of Voigt vectors
func Nvoigt(ndim int) int {
	if ndim == 3 {
		return 6
	}
	if ndim == 2 {
		return 3
	}
	return 1
}

// Init initialises model
//  Note: parameters c11, c12, ... (symmetric; cij == cji) define the tensor; otherwise E and nu are used
func (o *Hooke) Init(ndim int, pstress bool, prms dbf.Params) (err error) {
	var rest dbf.Params
	n := Nvoigt(ndim)
	var C [][]float64
	for _, p := range prms {
		name := strings.ToLower(p.N)
		var i, j int
		if len(name) == 3 && name[0] == 'c' {
			i, j = int(name[1]-'1'), int(name[2]-'1')
			if i < 0 || i >= n || j < 0 || j >= n {
				return chk.Err("hooke: parameter %q is out of range for ndim=%d", p.N, ndim)
			}
			if C == nil {
				C = utl.Alloc(n, n)
			}
			C[i][j], C[j][i] = p.V, p.V
			continue
		}
		rest = append(rest, p)
	}
	err = o.Elastic.Init(ndim, pstress, rest)
	if err != nil {
		return
	}
	o.C = C
	return
}

// Calc computes the elasticity tensor D of element in Voigt notation
//  Note: per-element (multimaterial) parameters take precedence over the explicit tensor
func (o *Hooke) Calc(D [][]float64, ndim, eid int) {
	if o.C != nil && o.Es == nil {
		for i := range D {
			copy(D[i], o.C[i])
		}
		return
	}
	λ, μ := o.Lame(eid)
	for i := range D {
		for j := range D[i] {
			D[i][j] = 0
		}
	}
	for i := 0; i < ndim; i++ {
		for j := 0; j < ndim; j++ {
			D[i][j] = λ
		}
		D[i][i] = λ + 2*μ
	}
	for i := ndim; i < len(D); i++ {
		D[i][i] = μ
	}
}

// String returns the tensor as a string
func (o *Hooke) String() string {
	return io.Sf("C=%v E=%g nu=%g", o.C, o.E, o.Nu)
}
