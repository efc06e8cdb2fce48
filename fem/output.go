// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"go.uber.org/zap"
)

// Errors holds norms of the difference between the exact and the numerical solutions
type Errors struct {
	L2      float64 `json:"err_l2"`       // ‖e‖ in L2
	Linf    float64 `json:"err_linf"`     // max |e| at integration points
	Lp      float64 `json:"err_lp"`       // ‖e‖ in L8
	H1      float64 `json:"err_h1"`       // ‖e‖ in H1
	H1Semi  float64 `json:"err_h1_semi"`  // ‖∇e‖ in L2
	GradMax float64 `json:"err_grad_max"` // max |∇e| at integration points
}

// ComputeErrors computes the errors w.r.t the exact solution of the problem
func (o *State) ComputeErrors() (err error) {
	if err = o.checkSolved("ComputeErrors"); err != nil {
		return
	}
	if !o.Problem.HasExact() {
		return chk.Err("problem %q has no exact solution", o.Problem.Name())
	}
	tic := time.Now()
	space := o.Bases.Space
	ndim, nc := space.Ndim, o.Rhs.Ncomps
	var res Errors
	var l8 float64
	ex := make([]float64, nc)
	exg := utl.Alloc(nc, ndim)
	for _, eb := range space.Elems {
		for idx := range eb.Ips {
			x := eb.Xip[idx]
			o.Problem.Exact(ex, x)
			o.Problem.ExactGrad(exg, x)
			coef := eb.Coef(idx)
			var e2, g2 float64
			for c := 0; c < nc; c++ {
				uh := 0.0
				gh := make([]float64, ndim)
				for m, n := range eb.Nodes {
					v := o.Sol[n*nc+c]
					uh += eb.S[idx][m] * v
					for j := 0; j < ndim; j++ {
						gh[j] += eb.G[idx][m][j] * v
					}
				}
				e := ex[c] - uh
				e2 += e * e
				for j := 0; j < ndim; j++ {
					g2 += (exg[c][j] - gh[j]) * (exg[c][j] - gh[j])
				}
			}
			res.L2 += coef * e2
			res.H1Semi += coef * g2
			l8 += coef * math.Pow(e2, 4)
			res.Linf = math.Max(res.Linf, math.Sqrt(e2))
			res.GradMax = math.Max(res.GradMax, math.Sqrt(g2))
		}
	}
	res.H1 = math.Sqrt(res.L2 + res.H1Semi)
	res.L2 = math.Sqrt(res.L2)
	res.H1Semi = math.Sqrt(res.H1Semi)
	res.Lp = math.Pow(l8, 1.0/8.0)
	o.Errors = &res
	o.Timings.ComputingErrors = time.Since(tic)
	o.Log.Info("errors computed",
		zap.Float64("l2", res.L2),
		zap.Float64("linf", res.Linf),
		zap.Float64("h1", res.H1),
		zap.Float64("h1_semi", res.H1Semi),
		zap.Duration("elapsed", o.Timings.ComputingErrors))
	return
}

// InterpolateAtLocal interpolates the solution at local (natural) coordinates of element el
//  Output: vals -- [npts][ncomps]
func (o *State) InterpolateAtLocal(el int, pts [][]float64) (vals [][]float64, err error) {
	if err = o.checkSolved("InterpolateAtLocal"); err != nil {
		return
	}
	space := o.Bases.Space
	if el < 0 || el >= len(space.Elems) {
		return nil, chk.Err("element %d does not exist", el)
	}
	eb := space.Elems[el]
	S, _, _, err := eb.EvalAt(pts)
	if err != nil {
		return
	}
	nc := o.Rhs.Ncomps
	vals = utl.Alloc(len(pts), nc)
	for p := range pts {
		for m, n := range eb.Nodes {
			for c := 0; c < nc; c++ {
				vals[p][c] += S[p][m] * o.Sol[n*nc+c]
			}
		}
	}
	return
}

// ComputeScalarValues computes the scalar field (von Mises stress for tensor formulations) of all elements
//  Output: vals -- [nelems][npts]
func (o *State) ComputeScalarValues(pts [][]float64) (vals [][]float64, err error) {
	if err = o.checkSolved("ComputeScalarValues"); err != nil {
		return
	}
	f := o.Formulation()
	space := o.Bases.Space
	vals = make([][]float64, len(space.Elems))
	for e, eb := range space.Elems {
		vals[e], err = o.Assembler.ComputeScalarField(f, eb, pts, o.Sol)
		if err != nil {
			return nil, chk.Err("element %d: cannot compute scalar values:\n%v", e, err)
		}
	}
	return
}

// VertexValues returns the solution at the mesh vertices
//  Output: vals -- [nverts][ncomps]
func (o *State) VertexValues() (vals [][]float64, err error) {
	if err = o.checkSolved("VertexValues"); err != nil {
		return
	}
	nc := o.Rhs.Ncomps
	vals = make([][]float64, o.Mesh.Nverts())
	for v := range vals {
		vals[v] = append([]float64{}, o.Sol[v*nc:(v+1)*nc]...)
	}
	return
}
