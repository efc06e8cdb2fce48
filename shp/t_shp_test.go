// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_shp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shp01. shape functions and derivatives")

	r := []float64{0.2, 0.15, 0.3}
	for gndim := 1; gndim <= 3; gndim++ {
		for order := 1; order <= 2; order++ {
			shape, err := Get(gndim, order)
			require.NoError(tst, err)
			io.Pforan("%s\n", shape.Type)
			CheckShape(tst, shape, 1e-15, chk.Verbose)
			CheckShapeFace(tst, shape, 1e-15, chk.Verbose)
			CheckDSdR(tst, shape, r, 1e-8, chk.Verbose)

			// partition of unity
			shape.Func(shape.S, shape.DSdR, r, false)
			sum := 0.0
			for _, s := range shape.S {
				sum += s
			}
			chk.Float64(tst, "Σ S", 1e-14, sum, 1)
		}
	}
}

func Test_shp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shp02. number of nodes and faces")

	tri6, err := Get(2, 2)
	require.NoError(tst, err)
	chk.Int(tst, "nverts", tri6.Nverts, 6)
	assert.Equal(tst, [][2]int{{0, 1}, {0, 2}, {1, 2}}, tri6.Edges)
	assert.Equal(tst, []int{1, 2, 5}, tri6.FaceLocalVerts[0])
	assert.Equal(tst, []int{0, 1, 3}, tri6.FaceLocalVerts[2])
	assert.Equal(tst, "lin3", tri6.FaceType)

	tet10, err := Get(3, 2)
	require.NoError(tst, err)
	chk.Int(tst, "nverts", tet10.Nverts, 10)
	assert.Len(tst, tet10.FaceLocalVerts, 4)
	assert.Len(tst, tet10.FaceLocalVerts[0], 6)
	assert.Equal(tst, "tri6", tet10.FaceType)

	lin2, err := Get(1, 1)
	require.NoError(tst, err)
	assert.Equal(tst, [][]int{{1}, {0}}, lin2.FaceLocalVerts)
	assert.Equal(tst, "pt", lin2.FaceType)

	_, err = Get(2, 3)
	assert.Error(tst, err)
}

func Test_shp03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shp03. quadrature")

	for degree := 1; degree <= 7; degree++ {
		CheckIps(tst, 1, degree, 1e-14)
	}
	for degree := 1; degree <= 5; degree++ {
		CheckIps(tst, 2, degree, 1e-12)
	}
	for degree := 1; degree <= 4; degree++ {
		CheckIps(tst, 3, degree, 1e-12)
	}
	_, err := GetIps(2, 9)
	assert.Error(tst, err)
	_, err = GetIps(4, 1)
	assert.Error(tst, err)
}

func Test_shp04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shp04. mapping")

	// triangle with vertices (1,1), (3,1), (1,2): area = 1
	shape, err := Get(2, 1)
	require.NoError(tst, err)
	X := [][]float64{
		{1, 3, 1},
		{1, 1, 2},
	}
	err = shape.CalcAtIp(X, Ipoint{1.0 / 3.0, 1.0 / 3.0, 0, 0.5}, true)
	require.NoError(tst, err)
	chk.Float64(tst, "J", 1e-15, shape.J, 2)
	chk.Float64(tst, "G00", 1e-14, shape.G[0][0], -0.5)
	chk.Float64(tst, "G01", 1e-14, shape.G[0][1], -1)
	chk.Float64(tst, "G10", 1e-14, shape.G[1][0], 0.5)
	chk.Float64(tst, "G21", 1e-14, shape.G[2][1], 1)

	x := shape.IpRealCoords(X, Ipoint{1.0 / 3.0, 1.0 / 3.0, 0, 0.5})
	chk.Float64(tst, "x", 1e-14, x[0], 5.0/3.0)
	chk.Float64(tst, "y", 1e-14, x[1], 4.0/3.0)

	// inverted
	Xinv := [][]float64{
		{1, 1, 3},
		{1, 2, 1},
	}
	assert.Error(tst, shape.CalcAtIp(Xinv, Ipoint{0.2, 0.2, 0, 1}, true))

	// edge in 2D: length = sqrt(5)
	edge, err := Get(1, 1)
	require.NoError(tst, err)
	err = edge.CalcAtIp([][]float64{{0, 1}, {0, 2}}, Ipoint{0.5, 0, 0, 1}, false)
	require.NoError(tst, err)
	chk.Float64(tst, "measure", 1e-15, edge.J, 2.23606797749979)
}
