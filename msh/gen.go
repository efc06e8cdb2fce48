// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import "github.com/cpmech/gosl/chk"

// Generate generates a structured simplicial mesh
//  Input:
//   kind -- "line", "rect" or "box"
//   n    -- number of divisions along each direction
//   xmin -- lower corner
//   xmax -- upper corner
//  Note: boundary ids are set with SetBoxBoundaryIDs
func Generate(kind string, n []int, xmin, xmax []float64) (o *Simplicial, err error) {
	ndim := 0
	switch kind {
	case "line":
		ndim = 1
	case "rect":
		ndim = 2
	case "box":
		ndim = 3
	default:
		return nil, chk.Err("cannot generate mesh of kind %q; use \"line\", \"rect\" or \"box\"", kind)
	}
	if len(n) != ndim || len(xmin) != ndim || len(xmax) != ndim {
		return nil, chk.Err("mesh of kind %q requires %d divisions and corners with %d coordinates", kind, ndim, ndim)
	}
	for i := 0; i < ndim; i++ {
		if n[i] < 1 {
			return nil, chk.Err("number of divisions must be positive. n[%d]=%d is invalid", i, n[i])
		}
		if xmax[i] <= xmin[i] {
			return nil, chk.Err("xmax[%d]=%g must be greater than xmin[%d]=%g", i, xmax[i], i, xmin[i])
		}
	}
	switch ndim {
	case 1:
		o, err = GenLine(n[0], xmin[0], xmax[0])
	case 2:
		o, err = GenRectTri(n[0], n[1], xmin[0], xmin[1], xmax[0], xmax[1])
	default:
		o, err = GenBoxTet(n[0], n[1], n[2], xmin, xmax)
	}
	if err != nil {
		return
	}
	o.SetBoxBoundaryIDs(xmin, xmax)
	return
}

// GenLine generates a mesh of segments on [xa,xb]
func GenLine(nx int, xa, xb float64) (o *Simplicial, err error) {
	X := make([][]float64, nx+1)
	for i := 0; i <= nx; i++ {
		X[i] = []float64{xa + (xb-xa)*float64(i)/float64(nx)}
	}
	cells := make([][]int, nx)
	for i := 0; i < nx; i++ {
		cells[i] = []int{i, i + 1}
	}
	return NewSimplicial(1, X, cells)
}

// GenRectTri generates a mesh of triangles on [xa,xb]×[ya,yb]
//  Note: each cell is split along its diagonal from the lower-left corner; triangles are counter-clockwise
func GenRectTri(nx, ny int, xa, ya, xb, yb float64) (o *Simplicial, err error) {
	vid := func(i, j int) int { return i + (nx+1)*j }
	X := make([][]float64, (nx+1)*(ny+1))
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			X[vid(i, j)] = []float64{
				xa + (xb-xa)*float64(i)/float64(nx),
				ya + (yb-ya)*float64(j)/float64(ny),
			}
		}
	}
	cells := make([][]int, 0, 2*nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			a, b, c, d := vid(i, j), vid(i+1, j), vid(i+1, j+1), vid(i, j+1)
			cells = append(cells, []int{a, b, c}, []int{a, c, d})
		}
	}
	return NewSimplicial(2, X, cells)
}

// GenBoxTet generates a mesh of tetrahedra on the box [xmin,xmax]
//  Note: each hexahedral cell is split into 6 tetrahedra sharing the main diagonal (Kuhn subdivision)
func GenBoxTet(nx, ny, nz int, xmin, xmax []float64) (o *Simplicial, err error) {
	vid := func(i, j, k int) int { return i + (nx+1)*(j+(ny+1)*k) }
	X := make([][]float64, (nx+1)*(ny+1)*(nz+1))
	for k := 0; k <= nz; k++ {
		for j := 0; j <= ny; j++ {
			for i := 0; i <= nx; i++ {
				X[vid(i, j, k)] = []float64{
					xmin[0] + (xmax[0]-xmin[0])*float64(i)/float64(nx),
					xmin[1] + (xmax[1]-xmin[1])*float64(j)/float64(ny),
					xmin[2] + (xmax[2]-xmin[2])*float64(k)/float64(nz),
				}
			}
		}
	}
	perms := [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	cells := make([][]int, 0, 6*nx*ny*nz)
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				for _, p := range perms {
					ijk := [3]int{i, j, k}
					cell := []int{vid(ijk[0], ijk[1], ijk[2])}
					for _, dir := range p {
						ijk[dir]++
						cell = append(cell, vid(ijk[0], ijk[1], ijk[2]))
					}
					if tetVolume6(X, cell) < 0 {
						cell[2], cell[3] = cell[3], cell[2]
					}
					cells = append(cells, cell)
				}
			}
		}
	}
	return NewSimplicial(3, X, cells)
}

// tetVolume6 returns six times the signed volume of a tetrahedron
func tetVolume6(X [][]float64, c []int) float64 {
	var a, b, d [3]float64
	for i := 0; i < 3; i++ {
		a[i] = X[c[1]][i] - X[c[0]][i]
		b[i] = X[c[2]][i] - X[c[0]][i]
		d[i] = X[c[3]][i] - X[c[0]][i]
	}
	return a[0]*(b[1]*d[2]-b[2]*d[1]) - a[1]*(b[0]*d[2]-b[2]*d[0]) + a[2]*(b[0]*d[1]-b[1]*d[0])
}
