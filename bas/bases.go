// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bas implements finite element bases: per-element shape functions with their global node mapping
package bas

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/npulgh/polyfem/shp"
	"gonum.org/v1/gonum/mat"
)

// ElementBases holds the bases of one element evaluated at integration points
//  Note: read-only after Build; safe for concurrent use
type ElementBases struct {

	// basis
	Id     int   // element id
	Order  int   // polynomial order of bases
	Nodes  []int // [nbases] global ids of basis functions (nodes)
	Nbases int   // number of local bases

	// geometric mapping
	GeoOrder int         // order of geometric mapping
	GeoNodes []int       // [ngeo] global ids of geometry nodes
	X        [][]float64 // [ndim][ngeo] coordinates of geometry nodes

	// integration points
	Ips  []shp.Ipoint  // [nip] integration points
	S    [][]float64   // [nip][nbases] shape functions
	G    [][][]float64 // [nip][nbases][ndim] gradients of shape functions w.r.t real coordinates
	DetJ []float64     // [nip] Jacobian determinants
	Xip  [][]float64   // [nip][ndim] real coordinates of integration points
}

// Ndim returns the space dimension
func (o *ElementBases) Ndim() int { return len(o.X) }

// Coef returns the integration coefficient (weight times Jacobian determinant) of integration point idx
func (o *ElementBases) Coef(idx int) float64 { return o.Ips[idx][3] * o.DetJ[idx] }

// Volume returns the measure of the element
func (o *ElementBases) Volume() (vol float64) {
	for idx := range o.Ips {
		vol += o.Coef(idx)
	}
	return
}

// EvalAt evaluates bases at local (natural) coordinates
//  Input:
//   pts -- [npts][gndim] natural coordinates
//  Output:
//   S -- [npts][nbases] shape functions
//   G -- [npts][nbases][ndim] gradients
//   x -- [npts][ndim] real coordinates
func (o *ElementBases) EvalAt(pts [][]float64) (S [][]float64, G [][][]float64, x [][]float64, err error) {
	ndim := o.Ndim()
	basis, err := shp.Get(ndim, o.Order)
	if err != nil {
		return
	}
	geo, err := shp.Get(ndim, o.GeoOrder)
	if err != nil {
		return
	}
	S = make([][]float64, len(pts))
	G = make([][][]float64, len(pts))
	x = make([][]float64, len(pts))
	for p, r := range pts {
		var ip shp.Ipoint
		copy(ip[:], r)
		S[p], G[p], x[p], _, err = evaluate(basis, geo, o.X, ip)
		if err != nil {
			return nil, nil, nil, chk.Err("element %d: cannot evaluate bases at %v:\n%v", o.Id, r, err)
		}
	}
	return
}

// newElementBases computes bases at integration points
func newElementBases(id int, basis, geo *shp.Shape, nodes, geoNodes []int, X [][]float64, ips []shp.Ipoint) (o *ElementBases, err error) {
	o = &ElementBases{
		Id:       id,
		Order:    basis.Order,
		Nodes:    nodes,
		Nbases:   basis.Nverts,
		GeoOrder: geo.Order,
		GeoNodes: geoNodes,
		X:        X,
		Ips:      ips,
		S:        make([][]float64, len(ips)),
		G:        make([][][]float64, len(ips)),
		DetJ:     make([]float64, len(ips)),
		Xip:      make([][]float64, len(ips)),
	}
	for idx, ip := range ips {
		o.S[idx], o.G[idx], o.Xip[idx], o.DetJ[idx], err = evaluate(basis, geo, X, ip)
		if err != nil {
			return nil, chk.Err("element %d is degenerate or inverted:\n%v", id, err)
		}
	}
	return
}

// evaluate computes shape functions, gradients, real coordinates and Jacobian determinant at ip
func evaluate(basis, geo *shp.Shape, X [][]float64, ip shp.Ipoint) (S []float64, G [][]float64, x []float64, detJ float64, err error) {

	// geometric mapping
	err = geo.CalcAtIp(X, ip, false)
	if err != nil {
		return
	}
	ndim := len(X)
	detJ = geo.J
	x = make([]float64, ndim)
	dxdr := mat.NewDense(ndim, ndim, nil)
	for i := 0; i < ndim; i++ {
		for n := 0; n < geo.Nverts; n++ {
			x[i] += geo.S[n] * X[i][n]
			for j := 0; j < ndim; j++ {
				dxdr.Set(i, j, dxdr.At(i, j)+X[i][n]*geo.DSdR[n][j])
			}
		}
	}
	var drdx mat.Dense
	err = drdx.Inverse(dxdr)
	if err != nil {
		return
	}

	// bases
	basis.Func(basis.S, basis.DSdR, ip[:], true)
	S = make([]float64, basis.Nverts)
	G = utl.Alloc(basis.Nverts, ndim)
	copy(S, basis.S)
	for m := 0; m < basis.Nverts; m++ {
		for i := 0; i < ndim; i++ {
			for j := 0; j < ndim; j++ {
				G[m][i] += basis.DSdR[m][j] * drdx.At(j, i)
			}
		}
	}
	return
}
