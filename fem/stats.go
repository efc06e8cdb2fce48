// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/npulgh/polyfem/msh"

// MeshStats holds statistics of a mesh
type MeshStats struct {
	Nverts int `json:"nverts"` // number of vertices
	Nelems int `json:"nelems"` // number of elements

	// element classes
	SimplexCount          int `json:"simplex_count"`
	Regular               int `json:"regular_count"`
	RegularBoundary       int `json:"regular_boundary_count"`
	SimpleSingular        int `json:"simple_singular_count"`
	MultiSingular         int `json:"multi_singular_count"`
	Boundary              int `json:"boundary_count"`
	MultiSingularBoundary int `json:"multi_singular_boundary_count"`
	NonRegular            int `json:"non_regular_count"`
	NonRegularBoundary    int `json:"non_regular_boundary_count"`
	Undefined             int `json:"undefined_count"`

	// edge lengths
	MinEdge float64 `json:"min_edge_length"`
	MaxEdge float64 `json:"max_edge_length"`
	AvgEdge float64 `json:"average_edge_length"`
}

// ComputeMeshStats counts the classes of elements and computes edge lengths
func ComputeMeshStats(mesh msh.Mesh) (o *MeshStats) {
	o = &MeshStats{Nverts: mesh.Nverts(), Nelems: mesh.Nelems()}
	for e := 0; e < mesh.Nelems(); e++ {
		switch mesh.ElemType(e) {
		case msh.Simplex:
			o.SimplexCount++
		case msh.RegularInteriorCube:
			o.Regular++
		case msh.RegularBoundaryCube:
			o.RegularBoundary++
		case msh.SimpleSingularInteriorCube:
			o.SimpleSingular++
		case msh.MultiSingularInteriorCube:
			o.MultiSingular++
		case msh.SimpleSingularBoundaryCube:
			o.Boundary++
		case msh.InterfaceCube, msh.MultiSingularBoundaryCube:
			o.MultiSingularBoundary++
		case msh.BoundaryPolytope:
			o.NonRegularBoundary++
		case msh.InteriorPolytope:
			o.NonRegular++
		default:
			o.Undefined++
		}
	}
	o.MinEdge, o.MaxEdge, o.AvgEdge = msh.EdgeStats(mesh)
	return
}

// HasPolytopes tells whether there are non-regular or undefined elements
func (o *MeshStats) HasPolytopes() bool {
	return o.NonRegular > 0 || o.NonRegularBoundary > 0 || o.Undefined > 0
}
