// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"github.com/npulgh/polyfem/ele/diffusion"
	"github.com/npulgh/polyfem/ele/solid"
)

// enforce loading of all kernels
func init() {
	_ = diffusion.Laplacian{}
	_ = solid.LinearElasticity{}
	_ = solid.HookeLinearElasticity{}
	_ = solid.SaintVenant{}
}
