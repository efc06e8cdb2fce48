// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bas

import (
	"sort"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/npulgh/polyfem/msh"
	"github.com/npulgh/polyfem/shp"
)

// Facet holds a boundary facet of the discretisation
type Facet struct {
	Elem  int   // owner element
	Local int   // local index of facet in owner element
	Id    int   // boundary id
	Nodes []int // global node ids in facet-shape order
	Verts []int // global mesh vertices
}

// Space holds the bases of all elements
type Space struct {
	Ndim    int             // space dimension
	Order   int             // polynomial order
	Nbases  int             // total number of bases (nodes)
	Elems   []*ElementBases // [nelems] bases
	Geom    []*ElementBases // [nelems] geometric mapping bases; nil when isoparametric
	NodePos [][]float64     // [nbases][ndim] coordinates of nodes
	Facets  []*Facet        // boundary facets
	QuadDeg int             // degree of quadrature rules
}

// Build builds the bases of all elements
//  Input:
//   mesh       -- simplicial mesh
//   order      -- polynomial order of bases (1 or 2)
//   iso        -- isoparametric: geometry is described by the bases themselves
//   quadDegree -- degree of quadrature rules
func Build(mesh msh.Mesh, order int, iso bool, quadDegree int) (o *Space, err error) {

	// check
	ndim := mesh.Ndim()
	basis, err := shp.Get(ndim, order)
	if err != nil {
		return
	}
	ips, err := shp.GetIps(ndim, quadDegree)
	if err != nil {
		return
	}

	// node numbering: vertices first, then edges
	o = &Space{Ndim: ndim, Order: order, QuadDeg: quadDegree}
	edgeIds := make(map[[2]int]int)
	o.Nbases = mesh.Nverts()
	if order == 2 {
		for k, e := range mesh.Edges() {
			edgeIds[e] = o.Nbases + k
		}
		o.Nbases += len(mesh.Edges())
	}
	o.NodePos = make([][]float64, o.Nbases)
	for v := 0; v < mesh.Nverts(); v++ {
		o.NodePos[v] = append([]float64{}, mesh.Vert(v)...)
	}
	for e, id := range edgeIds {
		a, b := mesh.Vert(e[0]), mesh.Vert(e[1])
		o.NodePos[id] = make([]float64, ndim)
		for i := 0; i < ndim; i++ {
			o.NodePos[id][i] = (a[i] + b[i]) / 2
		}
	}

	// geometry
	geoOrder := 1
	if iso {
		geoOrder = order
	}
	geo, err := shp.Get(ndim, geoOrder)
	if err != nil {
		return
	}
	var lin *shp.Shape
	if !iso {
		lin, _ = shp.Get(ndim, 1)
		o.Geom = make([]*ElementBases, mesh.Nelems())
	}

	// elements
	o.Elems = make([]*ElementBases, mesh.Nelems())
	for e := 0; e < mesh.Nelems(); e++ {
		verts := mesh.ElemVerts(e)
		nodes := append([]int{}, verts...)
		for _, le := range basis.Edges {
			a, b := verts[le[0]], verts[le[1]]
			nodes = append(nodes, edgeIds[[2]int{min(a, b), max(a, b)}])
		}
		geoNodes := verts
		if iso {
			geoNodes = nodes
		}
		X := utl.Alloc(ndim, len(geoNodes))
		for i := 0; i < ndim; i++ {
			for n, id := range geoNodes {
				X[i][n] = o.NodePos[id][i]
			}
		}
		o.Elems[e], err = newElementBases(e, basis, geo, nodes, geoNodes, X, ips)
		if err != nil {
			return nil, err
		}
		if !iso {
			o.Geom[e], err = newElementBases(e, lin, geo, verts, verts, X, ips)
			if err != nil {
				return nil, err
			}
		}
	}

	// boundary facets
	for _, f := range mesh.BoundaryFacets() {
		nodes := make([]int, 0, len(basis.FaceLocalVerts[f.Local]))
		for _, n := range basis.FaceLocalVerts[f.Local] {
			nodes = append(nodes, o.Elems[f.Elem].Nodes[n])
		}
		o.Facets = append(o.Facets, &Facet{Elem: f.Elem, Local: f.Local, Id: f.Id, Nodes: nodes, Verts: f.Verts})
	}
	return
}

// Iso tells whether the space is isoparametric
func (o *Space) Iso() bool { return o.Geom == nil }

// GeomBases returns the bases describing the geometry of element e
func (o *Space) GeomBases(e int) *ElementBases {
	if o.Geom == nil {
		return o.Elems[e]
	}
	return o.Geom[e]
}

// BoundaryNodes returns the sorted nodes on facets with the given ids; all boundary nodes if no id is given
func (o *Space) BoundaryNodes(ids ...int) (nodes []int) {
	want := make(map[int]bool)
	for _, id := range ids {
		want[id] = true
	}
	seen := make(map[int]bool)
	for _, f := range o.Facets {
		if len(ids) > 0 && !want[f.Id] {
			continue
		}
		for _, n := range f.Nodes {
			if !seen[n] {
				seen[n] = true
				nodes = append(nodes, n)
			}
		}
	}
	sort.Ints(nodes)
	return
}

// FacetIds returns the sorted boundary ids in use
func (o *Space) FacetIds() (ids []int) {
	seen := make(map[int]bool)
	for _, f := range o.Facets {
		if !seen[f.Id] {
			seen[f.Id] = true
			ids = append(ids, f.Id)
		}
	}
	sort.Ints(ids)
	return
}

// FacetCoords returns the coordinates of the nodes of a facet as [ndim][nfnodes]
func (o *Space) FacetCoords(f *Facet) (X [][]float64) {
	X = utl.Alloc(o.Ndim, len(f.Nodes))
	for i := 0; i < o.Ndim; i++ {
		for n, id := range f.Nodes {
			X[i][n] = o.NodePos[id][i]
		}
	}
	return
}

// String returns a short description
func (o *Space) String() string {
	return io.Sf("P%d space: ndim=%d nelems=%d nbases=%d iso=%v", o.Order, o.Ndim, len(o.Elems), o.Nbases, o.Iso())
}
