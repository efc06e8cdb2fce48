// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

// MeshData holds data to generate or read a mesh
type MeshData struct {
	Type string    `json:"type" yaml:"type"` // "line", "rect", "box" or "file"
	File string    `json:"file" yaml:"file"` // mesh file (JSON) when Type == "file"
	N    []int     `json:"n"    yaml:"n"`    // number of divisions along each direction
	Xmin []float64 `json:"xmin" yaml:"xmin"` // lower corner
	Xmax []float64 `json:"xmax" yaml:"xmax"` // upper corner
}

// SetDefault sets default values: unit square split into 4x4 cells
func (o *MeshData) SetDefault() {
	if o.Type == "" {
		o.Type = "rect"
	}
	ndim := 2
	switch o.Type {
	case "line":
		ndim = 1
	case "box":
		ndim = 3
	}
	if len(o.N) == 0 {
		o.N = make([]int, ndim)
		for i := range o.N {
			o.N[i] = 4
		}
	}
	if len(o.Xmin) == 0 {
		o.Xmin = make([]float64, ndim)
	}
	if len(o.Xmax) == 0 {
		o.Xmax = make([]float64, ndim)
		for i := range o.Xmax {
			o.Xmax[i] = 1
		}
	}
}

// BcData holds boundary condition data for one boundary (sideset) id
type BcData struct {
	Id    int      `json:"id"    yaml:"id"`    // boundary id
	Funcs []string `json:"funcs" yaml:"funcs"` // function names; one per component
	Mask  []bool   `json:"mask"  yaml:"mask"`  // [Dirichlet only] constrained components; empty => all
}

// ProblemData holds the definition of the boundary-value problem
type ProblemData struct {
	Name      string    `json:"name"      yaml:"name"`      // "ZeroBC", "GenericScalar", "GenericTensor", "UniaxialBar"
	Rhs       []string  `json:"rhs"       yaml:"rhs"`       // source term function names; one per component
	Exact     []string  `json:"exact"     yaml:"exact"`     // exact solution function names; optional
	Dirichlet []*BcData `json:"dirichlet" yaml:"dirichlet"` // essential boundary conditions
	Neumann   []*BcData `json:"neumann"   yaml:"neumann"`   // natural boundary conditions (flux or traction)
	Load      float64   `json:"load"      yaml:"load"`      // [UniaxialBar] traction at the loaded end
}
