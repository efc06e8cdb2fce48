// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// GetIps returns integration points for reference simplices, exact for polynomials up to the given degree
//  gndim == 0 -- point (one point with unit weight)
//  gndim == 1 -- Gauss-Legendre on [0,1]; up to degree 7
//  gndim == 2 -- triangle (0,0),(1,0),(0,1); 1, 3, 6 or 7 points; up to degree 5
//  gndim == 3 -- tetrahedron (0,0,0),(1,0,0),(0,1,0),(0,0,1); 1, 4 or 11 points; up to degree 4
func GetIps(gndim, degree int) (ips []Ipoint, err error) {
	if degree < 1 {
		degree = 1
	}
	switch gndim {
	case 0:
		return []Ipoint{{0, 0, 0, 1}}, nil
	case 1:
		switch {
		case degree <= 1:
			return gauss1d(ipsGauss1), nil
		case degree <= 3:
			return gauss1d(ipsGauss2), nil
		case degree <= 5:
			return gauss1d(ipsGauss3), nil
		case degree <= 7:
			return gauss1d(ipsGauss4), nil
		}
	case 2:
		switch {
		case degree <= 1:
			return ipsTri1, nil
		case degree <= 2:
			return ipsTri3, nil
		case degree <= 4:
			return ipsTri6, nil
		case degree <= 5:
			return ipsTri7, nil
		}
	case 3:
		switch {
		case degree <= 1:
			return ipsTet1, nil
		case degree <= 2:
			return ipsTet4, nil
		case degree <= 4:
			return ipsTet11, nil
		}
	default:
		return nil, chk.Err("cannot get integration points for gndim=%d", gndim)
	}
	return nil, chk.Err("integration points for gndim=%d and degree=%d are not available", gndim, degree)
}

// gauss1d maps Gauss-Legendre points from [-1,1] to [0,1]
func gauss1d(pts [][2]float64) (ips []Ipoint) {
	ips = make([]Ipoint, len(pts))
	for i, p := range pts {
		ips[i] = Ipoint{(p[0] + 1) / 2, 0, 0, p[1] / 2}
	}
	return
}

// Gauss-Legendre on [-1,1]: {x, w}
var (
	ipsGauss1 = [][2]float64{{0, 2}}
	ipsGauss2 = [][2]float64{{-1 / math.Sqrt(3), 1}, {1 / math.Sqrt(3), 1}}
	ipsGauss3 = [][2]float64{{-math.Sqrt(0.6), 5.0 / 9.0}, {0, 8.0 / 9.0}, {math.Sqrt(0.6), 5.0 / 9.0}}
	ipsGauss4 = [][2]float64{
		{-0.8611363115940526, 0.3478548451374538},
		{-0.3399810435848563, 0.6521451548625461},
		{0.3399810435848563, 0.6521451548625461},
		{0.8611363115940526, 0.3478548451374538},
	}
)

// triangles: weights sum to 1/2
var (
	ipsTri1 = []Ipoint{{1.0 / 3.0, 1.0 / 3.0, 0, 0.5}}
	ipsTri3 = []Ipoint{
		{1.0 / 6.0, 1.0 / 6.0, 0, 1.0 / 6.0},
		{2.0 / 3.0, 1.0 / 6.0, 0, 1.0 / 6.0},
		{1.0 / 6.0, 2.0 / 3.0, 0, 1.0 / 6.0},
	}
	ipsTri6 = triSym([][2]float64{
		{0.445948490915965, 0.223381589678011 / 2},
		{0.091576213509771, 0.109951743655322 / 2},
	}, 0)
	ipsTri7 = triSym([][2]float64{
		{(6 - math.Sqrt(15)) / 21, (155 - math.Sqrt(15)) / 2400},
		{(6 + math.Sqrt(15)) / 21, (155 + math.Sqrt(15)) / 2400},
	}, 9.0/80.0)
)

// triSym generates symmetric triangle points (a,a), (1-2a,a), (a,1-2a) plus the centroid if wc > 0
func triSym(orbits [][2]float64, wc float64) (ips []Ipoint) {
	if wc > 0 {
		ips = append(ips, Ipoint{1.0 / 3.0, 1.0 / 3.0, 0, wc})
	}
	for _, o := range orbits {
		a, w := o[0], o[1]
		ips = append(ips, Ipoint{a, a, 0, w}, Ipoint{1 - 2*a, a, 0, w}, Ipoint{a, 1 - 2*a, 0, w})
	}
	return
}

// tetrahedra: weights sum to 1/6
var (
	ipsTet1 = []Ipoint{{0.25, 0.25, 0.25, 1.0 / 6.0}}
	ipsTet4 = []Ipoint{
		{0.1381966011250105, 0.1381966011250105, 0.1381966011250105, 1.0 / 24.0},
		{0.5854101966249685, 0.1381966011250105, 0.1381966011250105, 1.0 / 24.0},
		{0.1381966011250105, 0.5854101966249685, 0.1381966011250105, 1.0 / 24.0},
		{0.1381966011250105, 0.1381966011250105, 0.5854101966249685, 1.0 / 24.0},
	}
	ipsTet11 = tetKeast4()
)

// tetKeast4 returns the 11-point rule of Keast (degree 4)
func tetKeast4() (ips []Ipoint) {
	a, b := 0.785714285714285714, 0.0714285714285714285
	c, d := 0.399403576166799219, 0.100596423833200785
	w1, w2, w3 := -0.01315555555555556, 0.007622222222222222, 0.02488888888888889
	ips = []Ipoint{
		{0.25, 0.25, 0.25, w1},
		{b, b, b, w2},
		{a, b, b, w2},
		{b, a, b, w2},
		{b, b, a, w2},
		{c, c, d, w3},
		{c, d, c, w3},
		{d, c, c, w3},
		{c, d, d, w3},
		{d, c, d, w3},
		{d, d, c, w3},
	}
	return
}
