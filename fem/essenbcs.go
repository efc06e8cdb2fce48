// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/james-bowman/sparse"
	"github.com/npulgh/polyfem/asm"
	"gonum.org/v1/gonum/mat"
)

// EssentialBcs holds the constrained (fixed) equations and the map of free equations
//
//  The linear system is modified symmetrically:
//      _         _
//     |  Kff   0  | / uf \   / Ff - Kfc g \
//     |           | |    | = |            |
//     |_  0    I _| \ uc /   \     g      /
//
//  whereas nonlinear problems are solved for the free equations only
type EssentialBcs struct {
	Neq    int       // total number of equations
	Fixed  []int     // constrained equations (sorted)
	Values []float64 // prescribed values
	Free   []int     // free equations (sorted)
	Fmap   []int     // [neq] index of equation among free ones; -1 if constrained
}

// NewEssentialBcs returns a new structure
func NewEssentialBcs(neq int, fixed []int, values []float64) (o *EssentialBcs, err error) {
	if len(fixed) != len(values) {
		return nil, chk.Err("number of constrained equations (%d) must be equal to the number of values (%d)", len(fixed), len(values))
	}
	o = &EssentialBcs{Neq: neq, Fixed: fixed, Values: values}
	o.Fmap = make([]int, neq)
	for _, eq := range fixed {
		if eq < 0 || eq >= neq {
			return nil, chk.Err("constrained equation %d is out of range [0, %d)", eq, neq)
		}
		o.Fmap[eq] = -1
	}
	for eq := 0; eq < neq; eq++ {
		if o.Fmap[eq] == 0 {
			o.Fmap[eq] = len(o.Free)
			o.Free = append(o.Free, eq)
		}
	}
	return
}

// Eliminate returns the symmetrically modified system
func (o *EssentialBcs) Eliminate(K *sparse.CSR, F []float64) (Kmod *sparse.CSR, Fmod []float64) {
	g := make([]float64, o.Neq)
	for k, eq := range o.Fixed {
		g[eq] = o.Values[k]
	}
	Fmod = append([]float64{}, F...)
	t := asm.NewTriplet(o.Neq, K.NNZ())
	K.DoNonZero(func(i, j int, v float64) {
		switch {
		case o.Fmap[i] >= 0 && o.Fmap[j] >= 0:
			t.Put(i, j, v)
		case o.Fmap[i] >= 0:
			Fmod[i] -= v * g[j]
		}
	})
	for _, eq := range o.Fixed {
		t.Put(eq, eq, 1)
		Fmod[eq] = g[eq]
	}
	return t.ToCSR(), Fmod
}

// Expand returns the full vector of unknowns from the free ones
func (o *EssentialBcs) Expand(xfree []float64) (U []float64) {
	U = make([]float64, o.Neq)
	for k, eq := range o.Fixed {
		U[eq] = o.Values[k]
	}
	for k, eq := range o.Free {
		U[eq] = xfree[k]
	}
	return
}

// Restrict returns the free entries of a full vector
func (o *EssentialBcs) Restrict(U []float64) (xfree []float64) {
	xfree = make([]float64, len(o.Free))
	for k, eq := range o.Free {
		xfree[k] = U[eq]
	}
	return
}

// RestrictMatrix copies the free-free block of a sparse matrix into H
func (o *EssentialBcs) RestrictMatrix(H *mat.SymDense, A *sparse.CSR) {
	n := H.SymmetricDim()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			H.SetSym(i, j, 0)
		}
	}
	A.DoNonZero(func(i, j int, v float64) {
		fi, fj := o.Fmap[i], o.Fmap[j]
		if fi >= 0 && fj >= fi {
			H.SetSym(fi, fj, H.At(fi, fj)+v)
		}
	})
}
