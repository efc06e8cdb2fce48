// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// FuncData holds function definition
type FuncData struct {
	Name string     `json:"name" yaml:"name"` // name of function. ex: zero, load, myfunction1, etc.
	Type string     `json:"type" yaml:"type"` // type of function. ex: cte, rmp
	Prms dbf.Params `json:"prms" yaml:"prms"` // parameters
}

// FuncsData holds functions
type FuncsData []*FuncData

// Get returns function by name
//  Note: "zero" and "none" are always available
func (o FuncsData) Get(name string) (fcn dbf.T, err error) {
	if name == "zero" || name == "none" || name == "" {
		fcn = &dbf.Cte{C: 0}
		return
	}
	if name == "one" {
		fcn = &dbf.Cte{C: 1}
		return
	}
	for _, f := range o {
		if f.Name == name {
			return newFunc(f)
		}
	}
	err = chk.Err("cannot find function named %q", name)
	return
}

// GetAll returns a list of functions by name
func (o FuncsData) GetAll(names []string) (fcns []dbf.T, err error) {
	fcns = make([]dbf.T, len(names))
	for i, name := range names {
		fcns[i], err = o.Get(name)
		if err != nil {
			return nil, err
		}
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////////

// newFunc allocates a function, converting the panics of dbf (unknown type or missing parameter) into errors
func newFunc(f *FuncData) (fcn dbf.T, err error) {
	defer func() {
		if r := recover(); r != nil {
			fcn = nil
			err = chk.Err("cannot get function named %q because of the following error:\n%v", f.Name, r)
		}
	}()
	fcn = dbf.New(f.Type, f.Prms)
	return
}

// String prints one function
func (o FuncData) String() string {
	return io.Sf("{\"name\":%q, \"type\":%q, \"nprms\":%d}", o.Name, o.Type, len(o.Prms))
}
