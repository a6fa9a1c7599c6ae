/*
 * run.go, part of golion.
 *
 *
 * Copyright 2026 The golion authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	lion "github.com/iontrap/golion"
	"github.com/iontrap/golion/lammps"
	"github.com/iontrap/golion/recipe"
)

func newRunCmd(a *app) *cobra.Command {
	var jobs int
	cmd := &cobra.Command{
		Use:   "run <recipe>...",
		Short: "Build and run the simulations of one or more recipes",
		Long: `Build the simulation of each recipe in the output directory and run
LAMMPS on it. Several recipes (a parameter sweep) are run concurrently,
at most --jobs at a time. The first failure cancels the other runs.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("jobs") {
				a.cfg.Jobs = jobs
			}
			sims := make([]*lion.Simulation, 0, len(args))
			dirs := make(map[string]string, len(args))
			for _, path := range args {
				sim, err := a.build(path)
				if err != nil {
					return err
				}
				dir := filepath.Clean(sim.Directory)
				if prev, ok := dirs[dir]; ok {
					return fmt.Errorf("%s and %s both run in %s: give the recipes different names", prev, path, dir)
				}
				dirs[dir] = path
				sims = append(sims, sim)
			}
			if len(sims) == 1 {
				if a.cfg.Verbose {
					sims[0].Stdout = os.Stderr
				}
				res, err := sims[0].Execute(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d atoms, %s, results in %s\n", sims[0].Name, res.Atoms, res.Duration, sims[0].Directory)
				return nil
			}
			handles := make([]*lammps.Handle, len(sims))
			for i, sim := range sims {
				h, err := sim.Prepare()
				if err != nil {
					return fmt.Errorf("%s: %w", args[i], err)
				}
				handles[i] = h
			}
			results, err := lammps.RunAll(cmd.Context(), handles, a.cfg.Jobs)
			for i, sim := range sims {
				//nil only if the run never started.
				if results[i] == nil {
					continue
				}
				if ferr := sim.Finish(); ferr != nil {
					a.logger.Error("could not save simulation", "name", sim.Name, "err", ferr)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: exit %d, %d atoms, %s, results in %s\n", sim.Name, results[i].ExitCode, results[i].Atoms, results[i].Duration, sim.Directory)
			}
			return err
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 1, "number of simulations run at the same time")
	return cmd
}

// build loads a recipe and builds its simulation in the output directory.
// The configured executable and GPUs are used unless the recipe sets them.
func (a *app) build(path string) (*lion.Simulation, error) {
	r, err := recipe.Load(path)
	if err != nil {
		return nil, err
	}
	sim, err := r.Build(a.cfg.Output)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if r.Attributes.Executable == nil {
		sim.Executable = a.cfg.Executable
	}
	if r.Attributes.GPU == nil {
		sim.GPU = a.cfg.GPU
	}
	return sim, nil
}
