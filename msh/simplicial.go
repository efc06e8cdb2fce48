// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Simplicial implements a mesh of straight-sided simplices: segments (1D), triangles (2D) or tetrahedra (3D)
type Simplicial struct {

	// input
	Dim    int         // space dimension
	X      [][]float64 // [nverts][ndim] vertex coordinates
	Cells  [][]int     // [nelems][ndim+1] vertices of each simplex
	Bodies []int       // [nelems] body ids

	// flags for geometric description
	Rational   bool  // rational geometry (e.g. imported from NURBS)
	GeomOrders []int // [nelems] geometric order of each element; empty => linear

	// derived
	facets []*Facet      // boundary facets
	edges  [][2]int      // unique edges
	types  []ElementType // [nelems] element types; nil => all Simplex
}

// NewSimplicial returns a new simplicial mesh
//  Input:
//   ndim  -- space dimension (1, 2 or 3)
//   X     -- vertex coordinates [nverts][ndim]
//   cells -- element connectivity [nelems][ndim+1]
func NewSimplicial(ndim int, X [][]float64, cells [][]int) (o *Simplicial, err error) {
	if ndim < 1 || ndim > 3 {
		return nil, chk.Err("space dimension must be 1, 2 or 3. ndim=%d is invalid", ndim)
	}
	if len(cells) == 0 {
		return nil, chk.Err("mesh must have at least one element")
	}
	for v, x := range X {
		if len(x) != ndim {
			return nil, chk.Err("vertex %d has %d coordinates but ndim=%d", v, len(x), ndim)
		}
	}
	for e, c := range cells {
		if len(c) != ndim+1 {
			return nil, chk.Err("element %d has %d vertices but a simplex in %dD has %d", e, len(c), ndim, ndim+1)
		}
		for _, v := range c {
			if v < 0 || v >= len(X) {
				return nil, chk.Err("element %d refers to vertex %d which does not exist (nverts=%d)", e, v, len(X))
			}
		}
	}
	o = &Simplicial{Dim: ndim, X: X, Cells: cells}
	o.Bodies = make([]int, len(cells))
	o.buildTopology()
	return
}

// Ndim returns the space dimension
func (o *Simplicial) Ndim() int { return o.Dim }

// Nverts returns the number of vertices
func (o *Simplicial) Nverts() int { return len(o.X) }

// Nelems returns the number of elements
func (o *Simplicial) Nelems() int { return len(o.Cells) }

// Vert returns the coordinates of vertex v
func (o *Simplicial) Vert(v int) []float64 { return o.X[v] }

// ElemVerts returns the vertices of element e
func (o *Simplicial) ElemVerts(e int) []int { return o.Cells[e] }

// ElemType returns the type of element e
func (o *Simplicial) ElemType(e int) ElementType {
	if o.types == nil {
		return Simplex
	}
	return o.types[e]
}

// SetElemTypes overrides the classification of elements; e.g. when imported from a hybrid mesh
func (o *Simplicial) SetElemTypes(types []ElementType) (err error) {
	if len(types) != len(o.Cells) {
		return chk.Err("number of element types (%d) must be equal to the number of elements (%d)", len(types), len(o.Cells))
	}
	o.types = types
	return
}

// IsVolume tells whether the mesh is 3D
func (o *Simplicial) IsVolume() bool { return o.Dim == 3 }

// IsRational tells whether the geometry is rational
func (o *Simplicial) IsRational() bool { return o.Rational }

// Orders returns the geometric orders of elements
func (o *Simplicial) Orders() []int { return o.GeomOrders }

// BodyID returns the body id of element e
func (o *Simplicial) BodyID(e int) int { return o.Bodies[e] }

// SetBodyIDs sets body ids
func (o *Simplicial) SetBodyIDs(ids []int) (err error) {
	if len(ids) != len(o.Cells) {
		return chk.Err("number of body ids (%d) must be equal to the number of elements (%d)", len(ids), len(o.Cells))
	}
	copy(o.Bodies, ids)
	return
}

// BoundaryFacets returns all boundary facets
func (o *Simplicial) BoundaryFacets() []*Facet { return o.facets }

// Edges returns the unique edges
func (o *Simplicial) Edges() [][2]int { return o.edges }

// ComputeBoundaryIDs sets the id of each boundary facet from its barycenter
func (o *Simplicial) ComputeBoundaryIDs(marker func(bary []float64) int) {
	bary := make([]float64, o.Dim)
	for _, f := range o.facets {
		for i := 0; i < o.Dim; i++ {
			bary[i] = 0
			for _, v := range f.Verts {
				bary[i] += o.X[v][i]
			}
			bary[i] /= float64(len(f.Verts))
		}
		f.Id = marker(bary)
	}
}

// ComputeBoundaryIDsByVerts sets the id of each boundary facet from its vertices
func (o *Simplicial) ComputeBoundaryIDsByVerts(marker func(verts []int, isBoundary bool) int) {
	for _, f := range o.facets {
		f.Id = marker(f.Verts, true)
	}
}

// SetBoxBoundaryIDs sets ids of facets lying on the sides of the bounding box [xmin,xmax]
//  Note: the side at xmin[i] gets id 2*i+1 and the side at xmax[i] gets id 2*i+2; other facets get 0
func (o *Simplicial) SetBoxBoundaryIDs(xmin, xmax []float64) {
	tol := 1e-10
	for i := 0; i < o.Dim; i++ {
		tol = max(tol, 1e-10*(xmax[i]-xmin[i]))
	}
	o.ComputeBoundaryIDs(func(bary []float64) int {
		for i := 0; i < o.Dim; i++ {
			if bary[i] < xmin[i]+tol {
				return 2*i + 1
			}
			if bary[i] > xmax[i]-tol {
				return 2*i + 2
			}
		}
		return 0
	})
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// buildTopology finds boundary facets and unique edges
func (o *Simplicial) buildTopology() {

	// count facets
	type facetRef struct {
		elem, local int
	}
	count := make(map[string]int)
	var refs []facetRef
	for e, cell := range o.Cells {
		for k := range cell {
			count[facetKey(cell, k)]++
			refs = append(refs, facetRef{e, k})
		}
	}

	// facets owned by a single element are on the boundary
	o.facets = make([]*Facet, 0)
	for _, r := range refs {
		cell := o.Cells[r.elem]
		if count[facetKey(cell, r.local)] != 1 {
			continue
		}
		verts := make([]int, 0, len(cell)-1)
		for j, v := range cell {
			if j != r.local {
				verts = append(verts, v)
			}
		}
		o.facets = append(o.facets, &Facet{Verts: verts, Elem: r.elem, Local: r.local, Id: 1})
	}

	// edges
	seen := make(map[[2]int]bool)
	o.edges = make([][2]int, 0)
	for _, cell := range o.Cells {
		for a := 0; a < len(cell); a++ {
			for b := a + 1; b < len(cell); b++ {
				edge := [2]int{min(cell[a], cell[b]), max(cell[a], cell[b])}
				if !seen[edge] {
					seen[edge] = true
					o.edges = append(o.edges, edge)
				}
			}
		}
	}
}

// facetKey returns a key identifying the facet opposite to local vertex k
func facetKey(cell []int, k int) string {
	verts := make([]int, 0, len(cell)-1)
	for j, v := range cell {
		if j != k {
			verts = append(verts, v)
		}
	}
	return sortedKey(verts)
}

// sortedKey returns a key identifying a set of vertices regardless of their order
func sortedKey(verts []int) string {
	sorted := make([]int, len(verts))
	copy(sorted, verts)
	sort.Ints(sorted)
	key := make([]byte, 0, 5*len(sorted))
	for _, v := range sorted {
		key = append(key, byte(v), byte(v>>8), byte(v>>16), byte(v>>24), ',')
	}
	return string(key)
}
