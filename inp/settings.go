// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a JSON or YAML settings file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables overriding settings
const EnvPrefix = "POLYFEM_"

// SolverParams holds data for the linear solver
type SolverParams struct {
	Tol     float64 `json:"tol"     yaml:"tol"     env:"TOL"`     // tolerance of iterative solvers
	MaxIt   int     `json:"maxit"   yaml:"maxit"   env:"MAXIT"`   // max number of iterations of iterative solvers
	Verbose bool    `json:"verbose" yaml:"verbose" env:"VERBOSE"` // show iterations
}

// NlSolverParams holds data for the nonlinear (Newton) solver
type NlSolverParams struct {
	GradTol float64 `json:"grad_tol" yaml:"grad_tol" env:"GRAD_TOL"` // tolerance on the norm of the reduced gradient
	MaxIt   int     `json:"maxit"    yaml:"maxit"    env:"MAXIT"`    // max number of Newton iterations
}

// Multimaterial holds per-element material parameters
type Multimaterial struct {
	E   []float64 `json:"E"   yaml:"E"`   // [nelems] Young's modulus
	Nu  []float64 `json:"nu"  yaml:"nu"`  // [nelems] Poisson's coefficient
	Rho []float64 `json:"rho" yaml:"rho"` // [nelems] density; optional
}

// ExportData holds data for exporting results
type ExportData struct {
	Store string `json:"store" yaml:"store" env:"STORE"` // sqlite database with run history; empty means no store
	JSON  string `json:"json"  yaml:"json"  env:"JSON"`  // file to write the run summary; empty means no file
}

// Settings holds all input data of one solve
type Settings struct {

	// formulation
	ScalarFormulation string `json:"scalar_formulation" yaml:"scalar_formulation" env:"SCALAR_FORMULATION"` // e.g. "Laplacian"
	TensorFormulation string `json:"tensor_formulation" yaml:"tensor_formulation" env:"TENSOR_FORMULATION"` // e.g. "LinearElasticity", "SaintVenant"

	// discretisation
	DiscrOrder          int  `json:"discr_order"           yaml:"discr_order"           env:"DISCR_ORDER"`           // polynomial order of bases
	IsoParametric       bool `json:"iso_parametric"        yaml:"iso_parametric"        env:"ISO_PARAMETRIC"`        // use the same basis for geometry
	UseSpline           bool `json:"use_spline"            yaml:"use_spline"            env:"USE_SPLINE"`            // spline bases requested
	UsePRef             bool `json:"use_p_ref"             yaml:"use_p_ref"             env:"USE_P_REF"`             // per-element order refinement
	ForceLinearGeometry bool `json:"force_linear_geometry" yaml:"force_linear_geometry" env:"FORCE_LINEAR_GEOMETRY"` // linear geometry with linear bases
	QuadratureOrder     int  `json:"quadrature_order"      yaml:"quadrature_order"      env:"QUADRATURE_ORDER"`      // 0 => 2*discr_order

	// problem, mesh and materials
	Mesh          MeshData       `json:"mesh"          yaml:"mesh"`
	Problem       ProblemData    `json:"problem"       yaml:"problem"`
	Functions     FuncsData      `json:"functions"     yaml:"functions"`
	Params        dbf.Params     `json:"params"        yaml:"params"`
	Multimaterial *Multimaterial `json:"multimaterial" yaml:"multimaterial"`
	Pstress       bool           `json:"pstress"       yaml:"pstress"       env:"PSTRESS"` // plane-stress

	// solvers
	SolverType     string         `json:"solver_type"      yaml:"solver_type"      env:"SOLVER_TYPE"` // "cholesky" or "cg"
	SolverParams   SolverParams   `json:"solver_params"    yaml:"solver_params"    envPrefix:"SOLVER_"`
	NlSolverParams NlSolverParams `json:"nl_solver_params" yaml:"nl_solver_params" envPrefix:"NL_SOLVER_"`
	Nthreads       int            `json:"nthreads"         yaml:"nthreads"         env:"NTHREADS"` // number of assembly workers; 0 => GOMAXPROCS

	// output
	LogLevel int        `json:"log_level" yaml:"log_level" env:"LOG_LEVEL"` // 0 trace, 1 debug, 2 info, 3 warn, 4 error, 5 critical, 6 off
	Quiet    bool       `json:"quiet"     yaml:"quiet"     env:"QUIET"`
	Export   ExportData `json:"export"    yaml:"export"    envPrefix:"EXPORT_"`

	// derived
	Key string `json:"-" yaml:"-"` // simulation key; e.g. filename without extension
}

// NewSettings returns settings filled with default values
func NewSettings() (o *Settings) {
	o = &Settings{LogLevel: 2}
	o.SetDefault()
	return
}

// ReadSettings reads settings from a .json or .yaml (.yml) file and applies environment overrides
func ReadSettings(path string) (o *Settings, err error) {

	// read file
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read settings file %q:\n%v", path, err)
	}

	// decode
	o = &Settings{LogLevel: 2}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json", ".sim":
		err = json.Unmarshal(b, o)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		return nil, chk.Err("settings file extension %q is not supported; use .json or .yaml", ext)
	}
	if err != nil {
		return nil, chk.Err("cannot decode settings file %q:\n%v", path, err)
	}

	// key
	o.Key = strings.TrimSuffix(filepath.Base(path), ext)

	// environment and defaults
	err = o.ApplyEnv()
	if err != nil {
		return nil, err
	}
	o.SetDefault()
	return
}

// ApplyEnv overrides settings with POLYFEM_* environment variables
func (o *Settings) ApplyEnv() (err error) {
	err = env.ParseWithOptions(o, env.Options{Prefix: EnvPrefix})
	if err != nil {
		return chk.Err("cannot parse environment variables:\n%v", err)
	}
	return
}

// SetDefault sets default values for fields that were not given
func (o *Settings) SetDefault() {
	if o.ScalarFormulation == "" {
		o.ScalarFormulation = "Laplacian"
	}
	if o.TensorFormulation == "" {
		o.TensorFormulation = "LinearElasticity"
	}
	if o.DiscrOrder < 1 {
		o.DiscrOrder = 1
	}
	if o.SolverType == "" {
		o.SolverType = "cholesky"
	}
	if o.SolverParams.Tol <= 0 {
		o.SolverParams.Tol = 1e-10
	}
	if o.SolverParams.MaxIt < 1 {
		o.SolverParams.MaxIt = 1000
	}
	if o.NlSolverParams.GradTol <= 0 {
		o.NlSolverParams.GradTol = 1e-8
	}
	if o.NlSolverParams.MaxIt < 1 {
		o.NlSolverParams.MaxIt = 50
	}
	if o.LogLevel < 0 || o.LogLevel > 6 {
		o.LogLevel = 2
	}
	if o.Key == "" {
		o.Key = "polyfem"
	}
	o.Mesh.SetDefault()
	if o.Problem.Name == "" {
		o.Problem.Name = "ZeroBC"
	}
}

// QuadDegree returns the degree of the quadrature rule
func (o *Settings) QuadDegree() int {
	if o.QuadratureOrder > 0 {
		return o.QuadratureOrder
	}
	return 2 * o.DiscrOrder
}
