// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/npulgh/polyfem/inp"
	"github.com/npulgh/polyfem/out"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func Test_main01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("main01. run and export")

	dir := tst.TempDir()
	sim := inp.NewSettings()
	sim.Mesh = inp.MeshData{Type: "rect", N: []int{3, 3}}
	sim.Export = inp.ExportData{JSON: filepath.Join(dir, "sum.json"), Store: filepath.Join(dir, "runs.db")}
	sim.SetDefault()

	m, err := NewMain(sim, zap.NewNop(), chk.Verbose)
	require.NoError(tst, err)
	require.NoError(tst, m.Run(context.Background()))
	require.NotNil(tst, m.Summary)
	assert.Contains(tst, m.Summary.Errors, "err_h1_semi")

	// json
	f, err := os.Open(sim.Export.JSON)
	require.NoError(tst, err)
	defer f.Close()
	sum, err := out.ReadJSON(f)
	require.NoError(tst, err)
	chk.Int(tst, "num_dofs", sum.NumDofs, 16)
	assert.Equal(tst, "ZeroBC", sum.Problem)

	// store
	store, err := out.Open(sim.Export.Store)
	require.NoError(tst, err)
	defer store.Close()
	runs, err := store.List(context.Background())
	require.NoError(tst, err)
	chk.Int(tst, "number of runs", len(runs), 1)
	assert.Equal(tst, "polyfem", runs[0].Summary.Key)

	// wrong mesh
	sim.Mesh = inp.MeshData{Type: "file", File: filepath.Join(dir, "missing.json")}
	_, err = NewMain(sim, nil, false)
	assert.Error(tst, err)
}

func Test_logger01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("logger01")

	for level := 0; level <= 6; level++ {
		logger, err := NewLogger(level, false)
		require.NoError(tst, err)
		require.NotNil(tst, logger)
	}
	logger, err := NewLogger(2, true)
	require.NoError(tst, err)
	assert.False(tst, logger.Core().Enabled(zap.ErrorLevel))
	logger, err = NewLogger(3, false)
	require.NoError(tst, err)
	assert.False(tst, logger.Core().Enabled(zap.InfoLevel))
	assert.True(tst, logger.Core().Enabled(zap.WarnLevel))
}
