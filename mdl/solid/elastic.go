// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"fmt"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Elastic implements isotropic linear elastic parameters, uniform or per element
type Elastic struct {

	// uniform parameters
	E   float64 // Young's modulus
	Nu  float64 // Poisson's coefficient
	Den float64 // density

	// flags
	Ndim    int  // space dimension
	Pstress bool // plane-stress

	// per element; nil when uniform
	Es   []float64 // [nelems] Young's moduli
	Nus  []float64 // [nelems] Poisson's coefficients
	Rhos []float64 // [nelems] densities; may be nil
}

// add model to factory
func init() {
	allocators["elastic"] = func() Model { return new(Elastic) }
}

// Init initialises model
//  Note: either {E, nu} or {l, G} (Lamé) must be given; rho defaults to 1
func (o *Elastic) Init(ndim int, pstress bool, prms dbf.Params) (err error) {
	o.Ndim, o.Pstress = ndim, pstress
	o.E, o.Nu, o.Den = 1, 0, 1
	var λ, μ float64
	var hasE, hasNu, hasL, hasG bool
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "e", "young", "youngs":
			o.E, hasE = p.V, true
		case "nu", "poisson", "poissons":
			o.Nu, hasNu = p.V, true
		case "l", "lambda":
			λ, hasL = p.V, true
		case "g", "mu":
			μ, hasG = p.V, true
		case "rho", "density":
			o.Den = p.V
		}
	}
	if hasL || hasG {
		if hasE || hasNu {
			return chk.Err("elastic: either {E, nu} or {l, G} must be given, not both")
		}
		if !hasL || !hasG {
			return chk.Err("elastic: both l and G must be given")
		}
		if λ+μ <= 0 {
			return chk.Err("elastic: invalid Lamé parameters l=%g, G=%g", λ, μ)
		}
		o.E = μ * (3*λ + 2*μ) / (λ + μ)
		o.Nu = λ / (2 * (λ + μ))
	}
	return o.check(o.E, o.Nu)
}

// SetMultimaterial sets per-element parameters
//  Note: rho may be empty; in this case the uniform density is used
func (o *Elastic) SetMultimaterial(E, nu, rho []float64, nelems int) (err error) {
	if len(E) != nelems || len(nu) != nelems || (len(rho) > 0 && len(rho) != nelems) {
		return fmt.Errorf("%w: len(E)=%d, len(nu)=%d, len(rho)=%d, nelems=%d", ErrMultimaterialSize, len(E), len(nu), len(rho), nelems)
	}
	for eid := 0; eid < nelems; eid++ {
		err = o.check(E[eid], nu[eid])
		if err != nil {
			return chk.Err("element %d:\n%v", eid, err)
		}
	}
	o.Es, o.Nus = E, nu
	o.Rhos = nil
	if len(rho) > 0 {
		o.Rhos = rho
	}
	return
}

// Young returns E and ν of element
func (o *Elastic) Young(eid int) (E, ν float64) {
	if o.Es != nil {
		return o.Es[eid], o.Nus[eid]
	}
	return o.E, o.Nu
}

// Lame returns the Lamé parameters λ and μ of element
func (o *Elastic) Lame(eid int) (λ, μ float64) {
	E, ν := o.Young(eid)
	λ = E * ν / ((1 + ν) * (1 - 2*ν))
	μ = E / (2 * (1 + ν))
	if o.Pstress && o.Ndim == 2 {
		λ = 2 * λ * μ / (λ + 2*μ)
	}
	return
}

// Rho returns the density of element
func (o *Elastic) Rho(eid int) float64 {
	if o.Rhos != nil {
		return o.Rhos[eid]
	}
	return o.Den
}

// check checks E and ν
func (o *Elastic) check(E, ν float64) (err error) {
	if E <= 0 {
		return chk.Err("elastic: Young's modulus must be positive. E=%g is invalid", E)
	}
	if ν <= -1 || ν >= 0.5 {
		return chk.Err("elastic: Poisson's coefficient must be in (-1, 0.5). nu=%g is invalid", ν)
	}
	return
}
