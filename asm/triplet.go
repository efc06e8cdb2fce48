// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"sort"

	"github.com/cpmech/gosl/utl"
	"github.com/james-bowman/sparse"
)

// Triplet holds the (i, j, x) entries of a sparse matrix in assembly order
//  Note: repeated (i, j) entries are added when converting to CSR
type Triplet struct {
	n int       // dimension of square matrix
	i []int     // row indices
	j []int     // column indices
	x []float64 // values
}

// NewTriplet returns a new triplet for an n x n matrix
func NewTriplet(n, capacity int) (o *Triplet) {
	return &Triplet{n: n, i: make([]int, 0, capacity), j: make([]int, 0, capacity), x: make([]float64, 0, capacity)}
}

// Put adds an entry
func (o *Triplet) Put(i, j int, x float64) {
	o.i = append(o.i, i)
	o.j = append(o.j, j)
	o.x = append(o.x, x)
}

// Len returns the number of entries
func (o *Triplet) Len() int { return len(o.x) }

// Append appends all entries of another triplet
func (o *Triplet) Append(other *Triplet) {
	o.i = append(o.i, other.i...)
	o.j = append(o.j, other.j...)
	o.x = append(o.x, other.x...)
}

// ToCSR converts the triplet to a compressed sparse row matrix
//  Note: entries are sorted by (i, j) with a stable sort and repeated entries are summed
//        in assembly order; thus the same triplet always yields the same matrix bit by bit
func (o *Triplet) ToCSR() *sparse.CSR {
	perm := utl.IntRange(len(o.x))
	sort.SliceStable(perm, func(a, b int) bool {
		pa, pb := perm[a], perm[b]
		if o.i[pa] != o.i[pb] {
			return o.i[pa] < o.i[pb]
		}
		return o.j[pa] < o.j[pb]
	})
	indptr := make([]int, o.n+1)
	ind := make([]int, 0, len(perm))
	data := make([]float64, 0, len(perm))
	last := -1
	for _, k := range perm {
		r, c := o.i[k], o.j[k]
		if last >= 0 && o.i[last] == r && o.j[last] == c {
			data[len(data)-1] += o.x[k]
		} else {
			ind = append(ind, c)
			data = append(data, o.x[k])
			indptr[r+1]++
		}
		last = k
	}
	for r := 0; r < o.n; r++ {
		indptr[r+1] += indptr[r]
	}
	return sparse.NewCSR(o.n, o.n, indptr, ind, data)
}
