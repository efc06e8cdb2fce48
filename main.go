// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/npulgh/polyfem/fem"
	"github.com/npulgh/polyfem/inp"
	"github.com/npulgh/polyfem/out"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// flags
var (
	verbose   bool   // show messages
	storePath string // sqlite store with the history of runs
	jsonPath  string // file to write the summary
)

var rootCmd = &cobra.Command{
	Use:           "polyfem",
	Short:         "Finite element solver for diffusion and elasticity on simplicial meshes",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Solve the problem defined in a .json or .yaml settings file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List the history of runs kept in the store",
	Args:  cobra.NoArgs,
	RunE:  listRuns,
}

func init() {
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show messages")
	runCmd.Flags().StringVar(&storePath, "store", "", "sqlite database to keep the history of runs")
	runCmd.Flags().StringVar(&jsonPath, "json", "", "file to write the summary in JSON format")
	runsCmd.Flags().StringVar(&storePath, "store", "polyfem.db", "sqlite database with the history of runs")
	rootCmd.AddCommand(runCmd, runsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		io.PfRed("\nERROR: %v\n", err)
		os.Exit(1)
	}
}

// runSolve runs one simulation
func runSolve(cmd *cobra.Command, args []string) (err error) {

	// settings
	sim, err := inp.ReadSettings(args[0])
	if err != nil {
		return
	}
	if storePath != "" {
		sim.Export.Store = storePath
	}
	if jsonPath != "" {
		sim.Export.JSON = jsonPath
	}
	if verbose {
		io.PfWhite("\nPolyfem -- finite elements on simplicial meshes\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"settings file", "file", args[0],
			"show messages", "verbose", verbose,
			"store", "store", sim.Export.Store,
			"summary file", "json", sim.Export.JSON,
		))
	}

	// logger
	logger, err := fem.NewLogger(sim.LogLevel, sim.Quiet)
	if err != nil {
		return
	}
	defer func() { _ = logger.Sync() }()
	logger.Debug("settings read", zap.String("key", sim.Key), zap.String("problem", sim.Problem.Name))

	// run
	analysis, err := fem.NewMain(sim, logger, verbose)
	if err != nil {
		return
	}
	err = analysis.Run(cmd.Context())
	if err != nil {
		return
	}
	io.Pf("\n%s", analysis.Summary.Table())
	return
}

// listRuns prints the history of runs
func listRuns(cmd *cobra.Command, args []string) (err error) {
	store, err := out.Open(storePath)
	if err != nil {
		return
	}
	defer store.Close()
	runs, err := store.List(cmd.Context())
	if err != nil {
		return
	}
	io.Pf("%5s %-20s %-20s %-16s %-22s %8s %13s %s\n", "id", "created", "key", "problem", "formulation", "ndofs", "err_l2", "converged")
	for _, r := range runs {
		s := r.Summary
		l2 := "-"
		if v, ok := s.Errors["err_l2"]; ok {
			l2 = io.Sf("%13.6e", v)
		}
		io.Pf("%5d %-20s %-20s %-16s %-22s %8d %13s %v\n", r.Id, s.Created.Format("2006-01-02 15:04:05"), s.Key, s.Problem, s.Formulation, s.NumDofs, l2, s.Converged)
	}
	return
}
