// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// UniaxialBar computes the solution of a linear elastic bar under uniform traction q at x = xmax
//
//   ▷o-----------------o
//   ▷|                 | ---> q
//   ▷o-----------------o
//    △  △  △  △  △  △
//   xmin
//
//  Note: rollers on the sides at xmin[i]; all other sides are free
type UniaxialBar struct {
	E       float64   // Young's modulus
	Nu      float64   // Poisson's coefficient
	Q       float64   // traction
	Pstress bool      // plane-stress
	Xmin    []float64 // position of rollers

	// derived
	Eps []float64 // normal strains
}

// Init initialises this structure
func (o *UniaxialBar) Init(ndim int, pstress bool, load float64, xmin []float64, prms dbf.Params) {

	// default values
	o.E, o.Nu, o.Q, o.Pstress = 1, 0, load, pstress
	o.Xmin = make([]float64, ndim)
	copy(o.Xmin, xmin)

	// parameters
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		}
	}

	// strains
	o.Eps = make([]float64, ndim)
	q := o.Q
	switch {
	case ndim == 1:
		o.Eps[0] = q * (1 + o.Nu) * (1 - 2*o.Nu) / (o.E * (1 - o.Nu)) // q / (λ + 2μ)
	case ndim == 2 && !o.Pstress:
		o.Eps[0] = q * (1 - o.Nu*o.Nu) / o.E
		o.Eps[1] = -q * o.Nu * (1 + o.Nu) / o.E
	default:
		o.Eps[0] = q / o.E
		for i := 1; i < ndim; i++ {
			o.Eps[i] = -o.Nu * q / o.E
		}
	}
}

// Displ computes displacements
func (o UniaxialBar) Displ(x []float64) (u []float64) {
	u = make([]float64, len(x))
	for i := range x {
		u[i] = o.Eps[i] * (x[i] - o.Xmin[i])
	}
	return
}

// DisplGrad computes the displacement gradient
func (o UniaxialBar) DisplGrad(x []float64) (g [][]float64) {
	g = utl.Alloc(len(x), len(x))
	for i := range x {
		g[i][i] = o.Eps[i]
	}
	return
}
