// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"time"

	"github.com/npulgh/polyfem/out"
)

// Summary collects the results of the solve
func (o *State) Summary() (sum *out.Summary) {
	sum = &out.Summary{
		Created:     time.Now().UTC(),
		Key:         o.Sim.Key,
		Problem:     o.Problem.Name(),
		Formulation: o.Formulation().String(),
		Ndim:        o.Mesh.Ndim(),
		Order:       o.Sim.DiscrOrder,
		Solver:      o.Info.Solver,
		Iterations:  o.Info.Iterations,
		Residual:    o.Info.Residual,
		Converged:   o.Info.Converged,
		Status:      o.Info.Status,
	}
	if o.Stats != nil {
		sum.Stats = o.Stats.Map()
	}
	if o.Bases != nil {
		sum.Iso = o.Bases.Iso
	}
	if o.Rhs != nil {
		sum.NumDofs = len(o.Rhs.F)
		sum.MatSize = len(o.Rhs.F)
	}
	if o.Stiffness != nil {
		sum.NnzZero = o.Stiffness.K.NNZ()
	}
	sum.Timings = map[string]float64{
		"building_basis":       o.Timings.BuildingBasis.Seconds(),
		"assembling_stiffness": o.Timings.AssemblingStiffness.Seconds(),
		"assigning_rhs":        o.Timings.AssigningRhs.Seconds(),
		"solving":              o.Timings.Solving.Seconds(),
		"computing_errors":     o.Timings.ComputingErrors.Seconds(),
	}
	if e := o.Errors; e != nil {
		sum.Errors = map[string]float64{
			"err_l2":       e.L2,
			"err_linf":     e.Linf,
			"err_lp":       e.Lp,
			"err_h1":       e.H1,
			"err_h1_semi":  e.H1Semi,
			"err_grad_max": e.GradMax,
		}
	}
	return
}

// Map returns the statistics as a flat map
func (o *MeshStats) Map() map[string]float64 {
	return map[string]float64{
		"nverts":                        float64(o.Nverts),
		"nelems":                        float64(o.Nelems),
		"simplex_count":                 float64(o.SimplexCount),
		"regular_count":                 float64(o.Regular),
		"regular_boundary_count":        float64(o.RegularBoundary),
		"simple_singular_count":         float64(o.SimpleSingular),
		"multi_singular_count":          float64(o.MultiSingular),
		"boundary_count":                float64(o.Boundary),
		"multi_singular_boundary_count": float64(o.MultiSingularBoundary),
		"non_regular_count":             float64(o.NonRegular),
		"non_regular_boundary_count":    float64(o.NonRegularBoundary),
		"undefined_count":               float64(o.Undefined),
		"min_edge_length":               o.MinEdge,
		"max_edge_length":               o.MaxEdge,
		"average_edge_length":           o.AvgEdge,
	}
}
