// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/chk"

// AllocatorType defines a function that allocates a kernel
type AllocatorType func() Kernel

// New returns a new kernel from factory
func New(f Formulation) (k Kernel, err error) {
	fcn, ok := allocators[f]
	if !ok {
		err = chk.Err("cannot get allocator for formulation %v", f)
		return
	}
	k = fcn()
	switch f.Kind() {
	case NonlinearTensor:
		if _, ok := k.(Nonlinear); !ok {
			err = chk.Err("kernel of nonlinear formulation %v must implement Nonlinear", f)
		}
	default:
		if _, ok := k.(Linear); !ok {
			err = chk.Err("kernel of linear formulation %v must implement Linear", f)
		}
	}
	return
}

// SetAllocator sets a new callback function to allocate a kernel
func SetAllocator(f Formulation, fcn AllocatorType) {
	if _, ok := allocators[f]; ok {
		chk.Panic("cannot set allocator function for %v because formulation exists already", f)
	}
	allocators[f] = fcn
}

// allocators holds all kernel allocators
var allocators = make(map[Formulation]AllocatorType)
