// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diffusion

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_cond01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cond01")

	mdl, err := New("cte")
	require.NoError(tst, err)

	// default
	err = mdl.Init(2, nil)
	require.NoError(tst, err)
	K := [][]float64{{0, 0}, {0, 0}}
	mdl.Kten(K, 0)
	assert.Equal(tst, [][]float64{{1, 0}, {0, 1}}, K)

	// anisotropic
	ndim := 3
	err = mdl.Init(ndim, []*dbf.P{
		&dbf.P{N: "kx", V: 0.1},
		&dbf.P{N: "ky", V: 0.2},
		&dbf.P{N: "kz", V: 0.3},
	})
	require.NoError(tst, err)
	m := mdl.(*Conductivity)
	assert.Equal(tst, [][]float64{{0.1, 0, 0}, {0, 0.2, 0}, {0, 0, 0.3}}, m.Kcte)

	// errors
	assert.Error(tst, mdl.Init(2, []*dbf.P{&dbf.P{N: "kx", V: 1}}))
	assert.Error(tst, mdl.Init(2, []*dbf.P{&dbf.P{N: "k", V: -1}}))
	_, err = New("m1")
	assert.Error(tst, err)
}
