// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_mesh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesh01. line")

	m, err := Generate("line", []int{2}, []float64{0}, []float64{1})
	require.NoError(tst, err)
	chk.Int(tst, "ndim", m.Ndim(), 1)
	chk.Int(tst, "nverts", m.Nverts(), 3)
	chk.Int(tst, "nelems", m.Nelems(), 2)
	chk.Float64(tst, "x1", 1e-15, m.Vert(1)[0], 0.5)

	facets := m.BoundaryFacets()
	require.Len(tst, facets, 2)
	ids := map[int]int{}
	for _, f := range facets {
		require.Len(tst, f.Verts, 1)
		ids[f.Verts[0]] = f.Id
	}
	assert.Equal(tst, map[int]int{0: 1, 2: 2}, ids)
	assert.Len(tst, m.Edges(), 2)
}

func Test_mesh02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesh02. rectangle with triangles")

	m, err := Generate("rect", []int{2, 3}, []float64{0, 0}, []float64{2, 3})
	require.NoError(tst, err)
	chk.Int(tst, "nverts", m.Nverts(), 12)
	chk.Int(tst, "nelems", m.Nelems(), 12)

	// orientation
	for e := 0; e < m.Nelems(); e++ {
		c := m.ElemVerts(e)
		a, b, d := m.Vert(c[0]), m.Vert(c[1]), m.Vert(c[2])
		area2 := (b[0]-a[0])*(d[1]-a[1]) - (b[1]-a[1])*(d[0]-a[0])
		assert.Greater(tst, area2, 0.0, "element %d", e)
	}

	// boundary: 2*2 + 2*3 edges
	facets := m.BoundaryFacets()
	require.Len(tst, facets, 10)
	count := map[int]int{}
	for _, f := range facets {
		count[f.Id]++
	}
	assert.Equal(tst, map[int]int{1: 3, 2: 3, 3: 2, 4: 2}, count)

	// edges: 17 horizontal+vertical + 6 diagonals
	assert.Len(tst, m.Edges(), 23)

	emin, emax, _ := EdgeStats(m)
	chk.Float64(tst, "emin", 1e-15, emin, 1)
	chk.Float64(tst, "emax", 1e-15, emax, 1.4142135623730951)
}

func Test_mesh03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesh03. box with tetrahedra")

	m, err := Generate("box", []int{2, 1, 1}, []float64{0, 0, 0}, []float64{2, 1, 1})
	require.NoError(tst, err)
	chk.Int(tst, "nverts", m.Nverts(), 12)
	chk.Int(tst, "nelems", m.Nelems(), 12)
	assert.True(tst, m.IsVolume())
	for e := 0; e < m.Nelems(); e++ {
		assert.Greater(tst, tetVolume6(m.X, m.ElemVerts(e)), 0.0, "element %d", e)
	}

	// each side of a unit cube is split into 2 triangles
	facets := m.BoundaryFacets()
	require.Len(tst, facets, 20)
	count := map[int]int{}
	for _, f := range facets {
		count[f.Id]++
	}
	assert.Equal(tst, map[int]int{1: 2, 2: 2, 3: 4, 4: 4, 5: 4, 6: 4}, count)

	xmin, xmax := BoundingBox(m)
	assert.Equal(tst, []float64{0, 0, 0}, xmin)
	assert.Equal(tst, []float64{2, 1, 1}, xmax)
}

func Test_mesh04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesh04. read and errors")

	m, err := Parse([]byte(`{
		"ndim": 2,
		"verts": [[0,0], [1,0], [1,1], [0,1]],
		"cells": [[0,1,2], [0,2,3]],
		"bodies": [-1, -2],
		"orders": [1, 1],
		"sides": [{"verts": [1,0], "id": 7}]
	}`))
	require.NoError(tst, err)
	chk.Int(tst, "body0", m.BodyID(0), -1)
	chk.Int(tst, "body1", m.BodyID(1), -2)
	assert.Equal(tst, []int{1, 1}, m.Orders())
	assert.False(tst, m.IsRational())
	for _, f := range m.BoundaryFacets() {
		if sortedKey(f.Verts) == sortedKey([]int{0, 1}) {
			chk.Int(tst, "bottom id", f.Id, 7)
		} else {
			chk.Int(tst, "other id", f.Id, 0)
		}
	}

	_, err = NewSimplicial(2, [][]float64{{0, 0}, {1, 0}}, [][]int{{0, 1, 2}})
	assert.Error(tst, err)
	_, err = NewSimplicial(2, [][]float64{{0, 0}, {1, 0}, {0, 1}}, [][]int{{0, 1}})
	assert.Error(tst, err)
	_, err = Generate("hexagon", []int{1}, []float64{0}, []float64{1})
	assert.Error(tst, err)
	assert.Error(tst, m.SetBodyIDs([]int{1}))
	assert.Error(tst, m.SetElemTypes([]ElementType{Simplex}))

	assert.Equal(tst, "InteriorPolytope", InteriorPolytope.String())
	assert.True(tst, BoundaryPolytope.IsPolytope())
	assert.False(tst, Simplex.IsPolytope())
}
