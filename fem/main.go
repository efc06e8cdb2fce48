// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"context"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/npulgh/polyfem/inp"
	"github.com/npulgh/polyfem/msh"
	"github.com/npulgh/polyfem/out"
	"github.com/npulgh/polyfem/prb"
	"go.uber.org/zap"
)

// Main holds all data for a simulation using the finite element method
type Main struct {
	Sim     *inp.Settings // settings
	State   *State        // solve state
	Summary *out.Summary  // summary; available after Run
	ShowMsg bool          // show messages
}

// NewMain returns a new Main structure
//  Input:
//   sim     -- settings
//   logger  -- logger; nil means no logging
//   verbose -- show messages
func NewMain(sim *inp.Settings, logger *zap.Logger, verbose bool) (o *Main, err error) {

	// mesh
	o = &Main{ShowMsg: verbose}
	mesh, err := LoadMesh(&sim.Mesh)
	if err != nil {
		return nil, err
	}

	// settings with the actual bounding box
	cpy := *sim
	cpy.Mesh.Xmin, cpy.Mesh.Xmax = msh.BoundingBox(mesh)
	o.Sim = &cpy
	if o.ShowMsg {
		io.Pf("> Mesh loaded: ndim=%d nverts=%d nelems=%d\n", mesh.Ndim(), mesh.Nverts(), mesh.Nelems())
	}

	// problem
	problem, err := prb.New(o.Sim, mesh.Ndim())
	if err != nil {
		return nil, err
	}

	// state
	o.State, err = NewState(o.Sim, mesh, problem, logger)
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> Problem %q with %v formulation\n", problem.Name(), o.State.Formulation())
	}
	return
}

// Run runs all stages, computes errors if the exact solution is known and exports the results
func (o *Main) Run(ctx context.Context) (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// solve
	err = o.State.Solve()
	if err != nil {
		return
	}
	if o.ShowMsg {
		io.Pf("> Solved: %v\n", o.State.Info)
	}

	// post-processing
	if o.State.Problem.HasExact() {
		err = o.State.ComputeErrors()
		if err != nil {
			return
		}
	}
	o.Summary = o.State.Summary()

	// export
	if o.Sim.Export.JSON != "" {
		err = o.Summary.SaveJSON(o.Sim.Export.JSON)
		if err != nil {
			return
		}
	}
	if o.Sim.Export.Store != "" {
		var store *out.Store
		store, err = out.Open(o.Sim.Export.Store)
		if err != nil {
			return
		}
		defer store.Close()
		_, err = store.Save(ctx, o.Summary)
	}
	return
}

// LoadMesh generates or reads a mesh
func LoadMesh(md *inp.MeshData) (mesh msh.Mesh, err error) {
	if md.Type == "file" {
		mesh, err = msh.Read(md.File)
	} else {
		mesh, err = msh.Generate(md.Type, md.N, md.Xmin, md.Xmax)
	}
	if err != nil {
		return nil, chk.Err("cannot load mesh:\n%v", err)
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// onexit prints final message with cpu time
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Since(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}
	return prevErr
}
