// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// ConfinedSelfWeight computes the solution to a simple confined linear elastic domain under gravity
//
//     ▷ o-----------o ◁
//     ▷ |           | ◁
//     ▷ |    E, ρ   | ◁       negative stress means compression
//  h  ▷ |    ν, g   | ◁       g = 10  =>  b = -10 (body force per unit mass)
//     ▷ |           | ◁
//     ▷ o-----------o ◁
//       △  △  △  △  △
//             w
//
//  Note: the last coordinate is the elevation; the bottom is at z = 0
type ConfinedSelfWeight struct {
	// input
	E float64 // Young's modulus
	ν float64 // Poisson's coefficient
	ρ float64 // density
	g float64 // gravity constant (positive value)
	h float64 // height

	// derived
	d float64 // auxiliary coefficient = ν/(1-ν)
	M float64 // P-wave modulus
}

// Init initialises this structure
func (o *ConfinedSelfWeight) Init(prms dbf.Params) {

	// default values
	o.E = 1000.0
	o.ν = 0.25
	o.ρ = 2.0
	o.g = 10.0
	o.h = 1.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.ν = p.V
		case "rho":
			o.ρ = p.V
		case "g":
			o.g = p.V
		case "h":
			o.h = p.V
		}
	}

	// derived
	o.d = o.ν / (1.0 - o.ν)
	o.M = o.E * (1.0 - o.ν) / ((1.0 + o.ν) * (1.0 - 2.0*o.ν))
}

// Gravity returns the gravity constant
func (o ConfinedSelfWeight) Gravity() float64 { return o.g }

// Stress computes the stress tensor
func (o ConfinedSelfWeight) Stress(x []float64) (σ [][]float64) {
	ndim := len(x)               // space dimension
	z := x[ndim-1]               // elevation
	σv := -o.ρ * o.g * (o.h - z) // vertical stress
	σh := o.d * σv               // horizontal stress
	σ = utl.Alloc(ndim, ndim)
	for i := 0; i < ndim; i++ {
		σ[i][i] = σh
	}
	σ[ndim-1][ndim-1] = σv
	return
}

// Displ computes displacement components
func (o ConfinedSelfWeight) Displ(x []float64) (u []float64) {
	ndim := len(x)               // space dimension
	z := x[ndim-1]               // elevation
	α := o.ρ * o.g / o.M         // auxiliary coefficient
	uv := -α * (o.h - z/2.0) * z // vertical displacement
	u = make([]float64, ndim)
	u[ndim-1] = uv
	return
}

// DisplGrad computes the displacement gradient
func (o ConfinedSelfWeight) DisplGrad(x []float64) (g [][]float64) {
	ndim := len(x)
	z := x[ndim-1]
	g = utl.Alloc(ndim, ndim)
	g[ndim-1][ndim-1] = -o.ρ * o.g / o.M * (o.h - z)
	return
}

// CheckDispl checks displacements
func (o ConfinedSelfWeight) CheckDispl(tst *testing.T, u, x []float64, tol float64) {
	uana := o.Displ(x)
	for i := range uana {
		chk.Float64(tst, "u", tol, u[i], uana[i])
	}
}
