// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh defines the mesh interface consumed by the solver and a simplicial mesh
package msh

// ElementType classifies elements for the mesh statistics
type ElementType int

// element types
const (
	Simplex ElementType = iota
	RegularInteriorCube
	RegularBoundaryCube
	SimpleSingularInteriorCube
	MultiSingularInteriorCube
	SimpleSingularBoundaryCube
	MultiSingularBoundaryCube
	InterfaceCube
	InteriorPolytope
	BoundaryPolytope
	Undefined
)

var elementTypeNames = []string{
	"Simplex",
	"RegularInteriorCube",
	"RegularBoundaryCube",
	"SimpleSingularInteriorCube",
	"MultiSingularInteriorCube",
	"SimpleSingularBoundaryCube",
	"MultiSingularBoundaryCube",
	"InterfaceCube",
	"InteriorPolytope",
	"BoundaryPolytope",
	"Undefined",
}

// String returns the name of the element type
func (t ElementType) String() string {
	if t < 0 || int(t) >= len(elementTypeNames) {
		return "Undefined"
	}
	return elementTypeNames[t]
}

// IsPolytope tells whether the element has no geometric mapping (polygon or polyhedron)
func (t ElementType) IsPolytope() bool {
	return t == InteriorPolytope || t == BoundaryPolytope
}

// Facet holds a boundary facet: a vertex (1D), an edge (2D) or a triangle (3D)
type Facet struct {
	Verts []int // global vertex ids, ordered as in the owner element
	Elem  int   // owner element
	Local int   // local index of facet in owner element; equal to the index of the opposite vertex
	Id    int   // boundary (sideset) id; 0 means no id
}

// Mesh defines what the solver needs from a mesh
type Mesh interface {
	Ndim() int                  // space dimension
	Nverts() int                // number of vertices
	Nelems() int                // number of elements
	Vert(v int) []float64       // coordinates of vertex v
	ElemVerts(e int) []int      // vertices of element e
	ElemType(e int) ElementType // classification of element e
	IsVolume() bool             // 3D mesh
	IsRational() bool           // rational (e.g. NURBS) geometry
	Orders() []int              // per-element geometric order; empty means all linear
	BodyID(e int) int           // body (material) id of element e
	SetBodyIDs(ids []int) error // sets body ids; one per element

	// boundary
	BoundaryFacets() []*Facet                                                // all boundary facets
	ComputeBoundaryIDs(marker func(bary []float64) int)                      // sets facet ids from the facet barycenter
	ComputeBoundaryIDsByVerts(marker func(verts []int, isBoundary bool) int) // sets facet ids from facet vertices
	Edges() [][2]int                                                         // unique edges (sorted vertex pairs)
}
