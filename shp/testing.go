// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

// CheckShape checks that shape functions evaluate to 1.0 @ nodes
func CheckShape(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// loop over all nodes
	errS := 0.0
	r := []float64{0, 0, 0}
	for n := 0; n < shape.Nverts; n++ {

		// natural coordinates @ node
		for i := 0; i < shape.Gndim; i++ {
			r[i] = shape.NatCoords[i][n]
		}

		// compute function
		shape.Func(shape.S, shape.DSdR, r, false)

		// check
		if verbose {
			io.Pf("S = %v\n", shape.S)
		}
		for m := 0; m < shape.Nverts; m++ {
			if n == m {
				errS += math.Abs(shape.S[m] - 1.0)
			} else {
				errS += math.Abs(shape.S[m])
			}
		}
	}

	// error
	if errS > tol {
		tst.Errorf("%s failed with err = %g\n", shape.Type, errS)
		return
	}
}

// CheckShapeFace checks that shape functions of nodes not on a face vanish on that face
func CheckShapeFace(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// skip points
	nfaces := len(shape.FaceLocalVerts)
	if nfaces == 0 {
		return
	}

	// loop over faces
	errS := 0.0
	r := []float64{0, 0, 0}
	for k := 0; k < nfaces; k++ {
		onface := make(map[int]bool)
		for _, n := range shape.FaceLocalVerts[k] {
			onface[n] = true
		}

		// centroid of face
		for i := 0; i < shape.Gndim; i++ {
			r[i] = 0
			for _, n := range shape.FaceLocalVerts[k] {
				r[i] += shape.NatCoords[i][n]
			}
			r[i] /= float64(len(shape.FaceLocalVerts[k]))
		}

		// compute function
		shape.Func(shape.S, shape.DSdR, r, false)

		// check
		if verbose {
			io.Pforan("face %d: S = %v\n", k, shape.S)
		}
		for m := 0; m < shape.Nverts; m++ {
			if !onface[m] {
				errS += math.Abs(shape.S[m])
			}
		}
	}

	// error
	if verbose {
		io.Pforan("%g\n", errS)
	}
	if errS > tol {
		tst.Errorf("%s failed with err = %g\n", shape.Type, errS)
		return
	}
}

// CheckDSdR checks dSdR derivatives of shape structures
func CheckDSdR(tst *testing.T, shape *Shape, r []float64, tol float64, verbose bool) {

	// analytical
	shape.Func(shape.S, shape.DSdR, r, true)

	// numerical
	n := shape.Gndim
	num := mat.NewDense(shape.Nverts, n, nil)
	fd.Jacobian(num, func(f, x []float64) {
		shape.Func(f, nil, x, false)
	}, r[:n], &fd.JacobianSettings{Formula: fd.Central})

	// compare
	for m := 0; m < shape.Nverts; m++ {
		for j := 0; j < n; j++ {
			if verbose {
				io.Pf("dS%d/dR%d: ana = %v  num = %v\n", m, j, shape.DSdR[m][j], num.At(m, j))
			}
			chk.Float64(tst, io.Sf("dS%d/dR%d", m, j), tol, shape.DSdR[m][j], num.At(m, j))
		}
	}
}

// CheckIps checks that integration points integrate monomials of the given degree exactly
func CheckIps(tst *testing.T, gndim, degree int, tol float64) {
	ips, err := GetIps(gndim, degree)
	if err != nil {
		tst.Errorf("GetIps failed:\n%v", err)
		return
	}

	// ∫ r^a s^b t^c over the reference simplex = a! b! c! / (a+b+c+gndim)!
	fact := func(n int) float64 {
		f := 1.0
		for i := 2; i <= n; i++ {
			f *= float64(i)
		}
		return f
	}
	for a := 0; a <= degree; a++ {
		for b := 0; b <= degree-a; b++ {
			for c := 0; c <= degree-a-b; c++ {
				p := [3]int{a, b, c}
				skip := false
				for i := gndim; i < 3; i++ {
					if p[i] > 0 {
						skip = true
					}
				}
				if skip {
					continue
				}
				res := 0.0
				for _, ip := range ips {
					v := ip[3]
					for i := 0; i < gndim; i++ {
						v *= math.Pow(ip[i], float64(p[i]))
					}
					res += v
				}
				correct := fact(a) * fact(b) * fact(c) / fact(a+b+c+gndim)
				chk.Float64(tst, io.Sf("∫ r^%d s^%d t^%d", a, b, c), tol, res, correct)
			}
		}
	}
}
