// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements Lagrange shape functions on reference simplices and quadrature rules
package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// Ipoint holds the natural coordinates and weight of an integration point: r, s, t, w
type Ipoint [4]float64

// Shape holds the reference shape functions of a simplex and scratchpad for one evaluation
//  Note: nodes are ordered as: vertices first, then one node per edge (order 2);
//        edges are the lexicographic pairs of vertices (i<j)
type Shape struct {

	// geometry
	Type           string      // name; e.g. "tri3", "tet10"
	Gndim          int         // geometry (reference) dimension
	Order          int         // polynomial order
	Nverts         int         // number of nodes
	NatCoords      [][]float64 // [gndim][nverts] natural coordinates of nodes
	Edges          [][2]int    // [nedges] local vertices of edges
	FaceLocalVerts [][]int     // [nfaces][nfnodes] local nodes on faces; face k is opposite to vertex k
	FaceType       string      // type of face shape

	// scratchpad: volume
	S    []float64   // [nverts] shape functions
	DSdR [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
	G    [][]float64 // [nverts][ndim] derivatives of S w.r.t real coordinates
	J    float64     // Jacobian determinant (or measure of the mapping for lower-dimensional cells)

	// auxiliary
	dxdr *mat.Dense // [ndim][gndim] Jacobian matrix
	drdx *mat.Dense // [gndim][ndim] inverse Jacobian matrix
}

// factory holds the shape names indexed by [gndim][order-1]
var factory = map[int][2]string{
	0: {"pt", "pt"},
	1: {"lin2", "lin3"},
	2: {"tri3", "tri6"},
	3: {"tet4", "tet10"},
}

// Name returns the name of the simplex shape with given dimension and order
func Name(gndim, order int) (name string, err error) {
	names, ok := factory[gndim]
	if !ok || order < 1 || order > 2 {
		return "", chk.Err("simplex shape with gndim=%d and order=%d is not available", gndim, order)
	}
	return names[order-1], nil
}

// Get returns a new shape structure
func Get(gndim, order int) (o *Shape, err error) {
	name, err := Name(gndim, order)
	if err != nil {
		return
	}
	o = &Shape{Type: name, Gndim: gndim, Order: order}

	// nodes
	nv := gndim + 1
	for i := 0; i < nv && order == 2; i++ {
		for j := i + 1; j < nv; j++ {
			o.Edges = append(o.Edges, [2]int{i, j})
		}
	}
	o.Nverts = nv + len(o.Edges)
	o.NatCoords = utl.Alloc(gndim, o.Nverts)
	for i := 0; i < gndim; i++ {
		for n := 1; n < nv; n++ {
			if n == i+1 {
				o.NatCoords[i][n] = 1
			}
		}
		for k, e := range o.Edges {
			o.NatCoords[i][nv+k] = (o.NatCoords[i][e[0]] + o.NatCoords[i][e[1]]) / 2
		}
	}

	// faces
	if gndim > 0 {
		o.FaceType, _ = Name(gndim-1, order)
		o.FaceLocalVerts = make([][]int, nv)
		for k := 0; k < nv; k++ {
			for n := 0; n < nv; n++ {
				if n != k {
					o.FaceLocalVerts[k] = append(o.FaceLocalVerts[k], n)
				}
			}
			for m, e := range o.Edges {
				if e[0] != k && e[1] != k {
					o.FaceLocalVerts[k] = append(o.FaceLocalVerts[k], nv+m)
				}
			}
		}
	}

	// scratchpad
	o.S = make([]float64, o.Nverts)
	o.DSdR = utl.Alloc(o.Nverts, gndim)
	return
}

// Func computes the shape functions S and, if derivs==true, their derivatives dSdR at natural coordinates r
func (o *Shape) Func(S []float64, dSdR [][]float64, r []float64, derivs bool) {

	// point
	nv := o.Gndim + 1
	if o.Gndim == 0 {
		S[0] = 1
		return
	}

	// barycentric coordinates
	var L [4]float64
	L[0] = 1
	for i := 0; i < o.Gndim; i++ {
		L[i+1] = r[i]
		L[0] -= r[i]
	}

	// dL[n]/dr[j]
	dL := func(n, j int) float64 {
		if n == 0 {
			return -1
		}
		if n == j+1 {
			return 1
		}
		return 0
	}

	// linear
	if o.Order == 1 {
		for n := 0; n < nv; n++ {
			S[n] = L[n]
			if derivs {
				for j := 0; j < o.Gndim; j++ {
					dSdR[n][j] = dL(n, j)
				}
			}
		}
		return
	}

	// quadratic
	for n := 0; n < nv; n++ {
		S[n] = L[n] * (2*L[n] - 1)
		if derivs {
			for j := 0; j < o.Gndim; j++ {
				dSdR[n][j] = (4*L[n] - 1) * dL(n, j)
			}
		}
	}
	for k, e := range o.Edges {
		a, b := e[0], e[1]
		S[nv+k] = 4 * L[a] * L[b]
		if derivs {
			for j := 0; j < o.Gndim; j++ {
				dSdR[nv+k][j] = 4 * (L[a]*dL(b, j) + L[b]*dL(a, j))
			}
		}
	}
}

// CalcAtIp calculates volume data such as S and G at natural coordinate r
//  Input:
//   X[ndim][nverts] -- coordinates of nodes
//   ip              -- integration point
//   derivs          -- also compute G = dS/dx (only if ndim == gndim)
//  Output:
//   S, DSdR, G and J
//  Note: when gndim < ndim (e.g. a face), J is the measure of the mapping
func (o *Shape) CalcAtIp(X [][]float64, ip Ipoint, derivs bool) (err error) {

	// S and dSdR
	o.Func(o.S, o.DSdR, ip[:], true)

	// point
	ndim := len(X)
	if o.Gndim == 0 {
		o.J = 1
		return
	}

	// dxdr := sum_n x * dSdR
	if o.dxdr == nil {
		o.dxdr = mat.NewDense(ndim, o.Gndim, nil)
	}
	for i := 0; i < ndim; i++ {
		for j := 0; j < o.Gndim; j++ {
			v := 0.0
			for n := 0; n < o.Nverts; n++ {
				v += X[i][n] * o.DSdR[n][j]
			}
			o.dxdr.Set(i, j, v)
		}
	}

	// lower-dimensional cell: measure = sqrt(det(dxdrᵀ dxdr))
	if o.Gndim < ndim {
		var jtj mat.Dense
		jtj.Mul(o.dxdr.T(), o.dxdr)
		det := mat.Det(&jtj)
		if det <= 0 {
			return chk.Err("%s: cell is degenerate; measure squared = %g", o.Type, det)
		}
		o.J = math.Sqrt(det)
		return
	}

	// Jacobian determinant
	o.J = mat.Det(o.dxdr)
	if o.J <= 0 {
		return chk.Err("%s: Jacobian determinant must be positive. det(dxdr) = %g", o.Type, o.J)
	}
	if !derivs {
		return
	}

	// G := dSdR * drdx
	if o.drdx == nil {
		o.drdx = mat.NewDense(o.Gndim, ndim, nil)
		o.G = utl.Alloc(o.Nverts, ndim)
	}
	err = o.drdx.Inverse(o.dxdr)
	if err != nil {
		return chk.Err("%s: cannot invert Jacobian matrix:\n%v", o.Type, err)
	}
	for n := 0; n < o.Nverts; n++ {
		for i := 0; i < ndim; i++ {
			o.G[n][i] = 0
			for j := 0; j < o.Gndim; j++ {
				o.G[n][i] += o.DSdR[n][j] * o.drdx.At(j, i)
			}
		}
	}
	return
}

// IpRealCoords returns the real coordinates (y) of an integration point
func (o *Shape) IpRealCoords(X [][]float64, ip Ipoint) (x []float64) {
	ndim := len(X)
	x = make([]float64, ndim)
	o.Func(o.S, o.DSdR, ip[:], false)
	for i := 0; i < ndim; i++ {
		for n := 0; n < o.Nverts; n++ {
			x[i] += o.S[n] * X[i][n]
		}
	}
	return
}
