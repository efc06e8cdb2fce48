// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

// Objective holds the functions defining a minimisation problem
type Objective struct {
	Energy   func(x []float64) (float64, error)       // function to be minimised
	Gradient func(g, x []float64) error               // computes the gradient (g is overwritten)
	Hessian  func(H *mat.SymDense, x []float64) error // computes the Hessian (H is overwritten)
}

// Newton implements Newton's method with line search to minimise an energy
type Newton struct {
	GradTol float64 // tolerance on the infinity norm of the gradient
	MaxIt   int     // max number of iterations
}

// Minimize minimises the objective starting at x0
//  Note: non-convergence is reported in Info and the last iterate is returned
func (o *Newton) Minimize(obj Objective, x0 []float64) (x []float64, info Info, err error) {

	// trivial problem
	info.Solver = "newton"
	if len(x0) == 0 {
		info.Converged, info.Status = true, "no unknowns"
		return []float64{}, info, nil
	}

	// callbacks; the first error is kept and stops the iterations through NaN values
	var cbErr error
	keep := func(e error) {
		if e != nil && cbErr == nil {
			cbErr = e
		}
	}
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			f, e := obj.Energy(x)
			keep(e)
			if cbErr != nil {
				return math.NaN()
			}
			return f
		},
		Grad: func(g, x []float64) {
			keep(obj.Gradient(g, x))
			if cbErr != nil {
				g[0] = math.NaN()
			}
		},
		Hess: func(H *mat.SymDense, x []float64) {
			keep(obj.Hessian(H, x))
		},
	}

	// solve
	settings := &optimize.Settings{
		GradientThreshold: o.GradTol,
		MajorIterations:   o.MaxIt,
		FuncEvaluations:   100 * o.MaxIt,
		Converger:         optimize.NeverTerminate{},
	}
	res, e := optimize.Minimize(problem, x0, settings, &optimize.Newton{})
	if cbErr != nil {
		return nil, info, chk.Err("newton: cannot evaluate objective:\n%v", cbErr)
	}
	if res == nil {
		return nil, info, chk.Err("newton: minimisation failed:\n%v", e)
	}

	// results
	x = res.X
	info.Iterations = res.Stats.MajorIterations
	if res.Gradient != nil {
		info.Residual = floats.Norm(res.Gradient, math.Inf(1))
	}
	info.Converged = res.Status == optimize.GradientThreshold
	info.Status = res.Status.String()
	if e != nil {
		info.Status = io.Sf("%s: %v", info.Status, e)
	}
	return
}
