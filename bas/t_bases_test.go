// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bas

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/npulgh/polyfem/msh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_bases01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bases01. 1D P1")

	mesh, err := msh.Generate("line", []int{2}, []float64{0}, []float64{1})
	require.NoError(tst, err)
	space, err := Build(mesh, 1, true, 2)
	require.NoError(tst, err)
	chk.Int(tst, "nbases", space.Nbases, 3)
	assert.True(tst, space.Iso())
	assert.Equal(tst, []int{1, 2}, space.Elems[1].Nodes)
	for _, eb := range space.Elems {
		chk.Float64(tst, "vol", 1e-15, eb.Volume(), 0.5)
		for idx := range eb.Ips {
			chk.Float64(tst, "G0", 1e-14, eb.G[idx][0][0], -2)
			chk.Float64(tst, "G1", 1e-14, eb.G[idx][1][0], 2)
		}
	}
	assert.Equal(tst, []int{0}, space.BoundaryNodes(1))
	assert.Equal(tst, []int{2}, space.BoundaryNodes(2))
	assert.Equal(tst, []int{0, 2}, space.BoundaryNodes())
	assert.Equal(tst, []int{1, 2}, space.FacetIds())
}

func Test_bases02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bases02. 2D P2 iso and non-iso")

	mesh, err := msh.Generate("rect", []int{2, 2}, []float64{0, 0}, []float64{2, 1})
	require.NoError(tst, err)
	iso, err := Build(mesh, 2, true, 4)
	require.NoError(tst, err)
	non, err := Build(mesh, 2, false, 4)
	require.NoError(tst, err)

	chk.Int(tst, "nbases", iso.Nbases, 9+16)
	assert.Nil(tst, iso.Geom)
	require.Len(tst, non.Geom, 8)
	assert.Equal(tst, non.Geom[3].Nodes, mesh.ElemVerts(3))
	assert.Same(tst, iso.Elems[5], iso.GeomBases(5))

	area := 0.0
	for e, eb := range iso.Elems {
		area += eb.Volume()
		chk.Int(tst, "nbases of element", eb.Nbases, 6)
		for idx := range eb.Ips {
			sumS, sumG := 0.0, []float64{0, 0}
			for m := 0; m < eb.Nbases; m++ {
				sumS += eb.S[idx][m]
				sumG[0] += eb.G[idx][m][0]
				sumG[1] += eb.G[idx][m][1]
				chk.Float64(tst, "S iso/non", 1e-14, eb.S[idx][m], non.Elems[e].S[idx][m])
				chk.Float64(tst, "G iso/non", 1e-13, eb.G[idx][m][0], non.Elems[e].G[idx][m][0])
			}
			chk.Float64(tst, "ΣS", 1e-14, sumS, 1)
			chk.Float64(tst, "ΣGx", 1e-13, sumG[0], 0)
			chk.Float64(tst, "ΣGy", 1e-13, sumG[1], 0)
		}
	}
	chk.Float64(tst, "area", 1e-14, area, 2)

	// edge nodes are at midpoints
	for _, f := range iso.Facets {
		require.Len(tst, f.Nodes, 3)
		a, b, m := iso.NodePos[f.Nodes[0]], iso.NodePos[f.Nodes[1]], iso.NodePos[f.Nodes[2]]
		chk.Float64(tst, "xm", 1e-15, m[0], (a[0]+b[0])/2)
		chk.Float64(tst, "ym", 1e-15, m[1], (a[1]+b[1])/2)
	}
	chk.Int(tst, "left nodes", len(iso.BoundaryNodes(1)), 5)
}

func Test_bases03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bases03. EvalAt and errors")

	mesh, err := msh.Generate("box", []int{1, 1, 1}, []float64{0, 0, 0}, []float64{1, 1, 1})
	require.NoError(tst, err)
	space, err := Build(mesh, 2, true, 4)
	require.NoError(tst, err)
	eb := space.Elems[0]
	S, G, x, err := eb.EvalAt([][]float64{{0, 0, 0}, {1, 0, 0}})
	require.NoError(tst, err)
	require.Len(tst, S, 2)
	require.Len(tst, G[0], 10)
	chk.Float64(tst, "S0 @ v0", 1e-15, S[0][0], 1)
	chk.Float64(tst, "S1 @ v1", 1e-15, S[1][1], 1)
	assert.Equal(tst, space.NodePos[eb.Nodes[1]], x[1])

	// inverted triangle
	bad, err := msh.NewSimplicial(2, [][]float64{{0, 0}, {0, 1}, {1, 0}}, [][]int{{0, 1, 2}})
	require.NoError(tst, err)
	_, err = Build(bad, 1, true, 2)
	require.Error(tst, err)
	assert.Contains(tst, err.Error(), "element 0")

	// unavailable order
	_, err = Build(mesh, 3, true, 2)
	assert.Error(tst, err)
}
