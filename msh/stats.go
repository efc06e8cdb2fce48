// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import "math"

// EdgeStats returns the minimum, maximum and average length of the edges of a mesh
func EdgeStats(m Mesh) (minLen, maxLen, avgLen float64) {
	edges := m.Edges()
	if len(edges) == 0 {
		return
	}
	minLen = math.Inf(1)
	for _, e := range edges {
		a, b := m.Vert(e[0]), m.Vert(e[1])
		l := 0.0
		for i := range a {
			l += (b[i] - a[i]) * (b[i] - a[i])
		}
		l = math.Sqrt(l)
		minLen = math.Min(minLen, l)
		maxLen = math.Max(maxLen, l)
		avgLen += l
	}
	avgLen /= float64(len(edges))
	return
}

// BoundingBox returns the lower and upper corners of the box containing all vertices
func BoundingBox(m Mesh) (xmin, xmax []float64) {
	ndim := m.Ndim()
	xmin = make([]float64, ndim)
	xmax = make([]float64, ndim)
	for i := 0; i < ndim; i++ {
		xmin[i], xmax[i] = math.Inf(1), math.Inf(-1)
	}
	for v := 0; v < m.Nverts(); v++ {
		x := m.Vert(v)
		for i := 0; i < ndim; i++ {
			xmin[i] = math.Min(xmin[i], x[i])
			xmax[i] = math.Max(xmax[i], x[i])
		}
	}
	return
}
