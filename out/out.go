// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of solves: summaries and the history of runs
package out

import (
	"encoding/json"
	"io"
	"os"
	"sort"
	"time"

	"github.com/cpmech/gosl/chk"
	gio "github.com/cpmech/gosl/io"
)

// Summary holds the results of one solve
type Summary struct {
	Created     time.Time `json:"created"`        // time of run
	Key         string    `json:"key"`            // simulation key
	Problem     string    `json:"problem"`        // name of problem
	Formulation string    `json:"formulation"`    // formulation used
	Ndim        int       `json:"ndim"`           // space dimension
	Order       int       `json:"discr_order"`    // polynomial order
	Iso         bool      `json:"iso_parametric"` // isoparametric bases

	// sizes
	NumDofs int `json:"num_dofs"` // number of unknowns
	MatSize int `json:"mat_size"` // size of the global matrix
	NnzZero int `json:"nn_zero"`  // number of non-zeros of the global matrix

	// results
	Stats   map[string]float64 `json:"mesh_stats"` // mesh statistics
	Timings map[string]float64 `json:"timings"`    // elapsed times in seconds
	Errors  map[string]float64 `json:"errors"`     // errors w.r.t the exact solution; empty if unknown

	// solver
	Solver     string  `json:"solver"`
	Iterations int     `json:"iterations"`
	Residual   float64 `json:"residual"`
	Converged  bool    `json:"converged"`
	Status     string  `json:"status"`
}

// WriteJSON writes the summary in JSON format
func (o *Summary) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(o); err != nil {
		return chk.Err("cannot encode summary:\n%v", err)
	}
	return nil
}

// SaveJSON writes the summary to a file
func (o *Summary) SaveJSON(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return chk.Err("cannot create file %q:\n%v", path, err)
	}
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = e
		}
	}()
	return o.WriteJSON(f)
}

// ReadJSON reads a summary
func ReadJSON(r io.Reader) (o *Summary, err error) {
	o = new(Summary)
	if err = json.NewDecoder(r).Decode(o); err != nil {
		return nil, chk.Err("cannot decode summary:\n%v", err)
	}
	return
}

// Table returns a table with sizes, errors and timings
func (o *Summary) Table() (l string) {
	l += gio.Sf("%-24s %s\n", "problem", o.Problem)
	l += gio.Sf("%-24s %s\n", "formulation", o.Formulation)
	l += gio.Sf("%-24s %d\n", "discr_order", o.Order)
	l += gio.Sf("%-24s %v\n", "iso_parametric", o.Iso)
	l += gio.Sf("%-24s %d\n", "num_dofs", o.NumDofs)
	l += gio.Sf("%-24s %d\n", "nn_zero", o.NnzZero)
	l += gio.Sf("%-24s %s (it=%d, res=%g, converged=%v)\n", "solver", o.Solver, o.Iterations, o.Residual, o.Converged)
	for _, part := range []struct {
		title string
		vals  map[string]float64
	}{{"errors", o.Errors}, {"timings [s]", o.Timings}} {
		if len(part.vals) == 0 {
			continue
		}
		l += gio.Sf("%s\n", part.title)
		for _, k := range sortedKeys(part.vals) {
			l += gio.Sf("  %-22s %g\n", k, part.vals[k])
		}
	}
	return
}

// sortedKeys returns the sorted keys of a map
func sortedKeys(m map[string]float64) (keys []string) {
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return
}
