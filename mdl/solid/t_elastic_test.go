// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_elast01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elast01. uniform and Lamé parameters")

	mdl, err := New("elastic")
	require.NoError(tst, err)
	err = mdl.Init(3, false, []*dbf.P{
		&dbf.P{N: "E", V: 2.5},
		&dbf.P{N: "nu", V: 0.25},
		&dbf.P{N: "rho", V: 2},
	})
	require.NoError(tst, err)
	m := mdl.(*Elastic)
	λ, μ := m.Lame(7)
	chk.Float64(tst, "λ", 1e-15, λ, 1)
	chk.Float64(tst, "μ", 1e-15, μ, 1)
	chk.Float64(tst, "ρ", 1e-15, m.Rho(3), 2)

	// from Lamé
	var lame Elastic
	err = lame.Init(3, false, []*dbf.P{
		&dbf.P{N: "l", V: 1},
		&dbf.P{N: "G", V: 1},
	})
	require.NoError(tst, err)
	chk.Float64(tst, "E", 1e-15, lame.E, 2.5)
	chk.Float64(tst, "ν", 1e-15, lame.Nu, 0.25)
	chk.Float64(tst, "ρ default", 1e-15, lame.Rho(0), 1)

	// plane-stress
	var ps Elastic
	err = ps.Init(2, true, []*dbf.P{
		&dbf.P{N: "E", V: 1e4},
		&dbf.P{N: "nu", V: 0.3},
	})
	require.NoError(tst, err)
	λ, μ = ps.Lame(0)
	E, ν := 1e4, 0.3
	chk.Float64(tst, "λ*", 1e-10, λ, E*ν/(1-ν*ν))
	chk.Float64(tst, "μ", 1e-10, μ, E/(2*(1+ν)))

	// errors
	assert.Error(tst, lame.Init(2, false, []*dbf.P{&dbf.P{N: "E", V: 1}, &dbf.P{N: "G", V: 1}}))
	assert.Error(tst, lame.Init(2, false, []*dbf.P{&dbf.P{N: "E", V: -1}}))
	assert.Error(tst, lame.Init(2, false, []*dbf.P{&dbf.P{N: "nu", V: 0.5}}))
}

func Test_elast02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elast02. multimaterial")

	var m Elastic
	require.NoError(tst, m.Init(2, false, nil))

	err := m.SetMultimaterial([]float64{1, 2}, []float64{0.1, 0.2}, nil, 3)
	require.Error(tst, err)
	assert.True(tst, errors.Is(err, ErrMultimaterialSize))

	err = m.SetMultimaterial([]float64{1, 2}, []float64{0.1, 0.2}, []float64{3}, 2)
	assert.True(tst, errors.Is(err, ErrMultimaterialSize))

	err = m.SetMultimaterial([]float64{1, 2}, []float64{0, 0.25}, []float64{3, 4}, 2)
	require.NoError(tst, err)
	E, ν := m.Young(1)
	chk.Float64(tst, "E1", 1e-15, E, 2)
	chk.Float64(tst, "ν1", 1e-15, ν, 0.25)
	λ, μ := m.Lame(0)
	chk.Float64(tst, "λ0", 1e-15, λ, 0)
	chk.Float64(tst, "μ0", 1e-15, μ, 0.5)
	chk.Float64(tst, "ρ1", 1e-15, m.Rho(1), 4)
}

func Test_hooke01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hooke01")

	mdl, err := New("hooke")
	require.NoError(tst, err)
	h := mdl.(*Hooke)

	// explicit tensor
	require.NoError(tst, h.Init(2, false, []*dbf.P{
		&dbf.P{N: "c11", V: 2e4},
		&dbf.P{N: "c12", V: 5e3},
		&dbf.P{N: "c22", V: 2e4},
		&dbf.P{N: "c33", V: 7.5e3},
	}))
	D := [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	h.Calc(D, 2, 0)
	assert.Equal(tst, [][]float64{{2e4, 5e3, 0}, {5e3, 2e4, 0}, {0, 0, 7.5e3}}, D)

	// isotropic fallback
	require.NoError(tst, h.Init(2, false, []*dbf.P{&dbf.P{N: "E", V: 2.5}, &dbf.P{N: "nu", V: 0.25}}))
	h.Calc(D, 2, 0)
	assert.Equal(tst, [][]float64{{3, 1, 0}, {1, 3, 0}, {0, 0, 1}}, D)

	// out of range
	assert.Error(tst, h.Init(2, false, []*dbf.P{&dbf.P{N: "c44", V: 1}}))
}
