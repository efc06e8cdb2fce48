// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
)

// meshFile defines the JSON mesh format
type meshFile struct {
	Ndim     int         `json:"ndim"`     // space dimension
	Verts    [][]float64 `json:"verts"`    // vertex coordinates
	Cells    [][]int     `json:"cells"`    // simplices
	Bodies   []int       `json:"bodies"`   // body ids; optional
	Orders   []int       `json:"orders"`   // geometric orders; optional
	Rational bool        `json:"rational"` // rational geometry
	Sides    []sideData  `json:"sides"`    // boundary ids; optional
}

// sideData sets the id of the boundary facet with the given vertices
type sideData struct {
	Verts []int `json:"verts"`
	Id    int   `json:"id"`
}

// Read reads a simplicial mesh from a JSON file
func Read(path string) (o *Simplicial, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read mesh file %q:\n%v", path, err)
	}
	return Parse(b)
}

// Parse parses a simplicial mesh in JSON format
func Parse(b []byte) (o *Simplicial, err error) {
	var dat meshFile
	err = json.Unmarshal(b, &dat)
	if err != nil {
		return nil, chk.Err("cannot decode mesh:\n%v", err)
	}
	o, err = NewSimplicial(dat.Ndim, dat.Verts, dat.Cells)
	if err != nil {
		return
	}
	if len(dat.Bodies) > 0 {
		err = o.SetBodyIDs(dat.Bodies)
		if err != nil {
			return nil, err
		}
	}
	if len(dat.Orders) > 0 && len(dat.Orders) != o.Nelems() {
		return nil, chk.Err("number of orders (%d) must be equal to the number of elements (%d)", len(dat.Orders), o.Nelems())
	}
	o.GeomOrders = dat.Orders
	o.Rational = dat.Rational
	if len(dat.Sides) > 0 {
		ids := make(map[string]int)
		for _, s := range dat.Sides {
			ids[sortedKey(s.Verts)] = s.Id
		}
		o.ComputeBoundaryIDsByVerts(func(verts []int, isBoundary bool) int {
			return ids[sortedKey(verts)]
		})
	}
	return
}
