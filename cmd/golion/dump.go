/*
 * dump.go, part of golion.
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
	"strings"

	"github.com/spf13/cobra"

	"github.com/iontrap/golion/analysis"
	"github.com/iontrap/golion/dump"
	"github.com/iontrap/golion/lionplot"
)

func newDumpCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Inspect LAMMPS dump files",
	}
	cmd.AddCommand(newDumpInfoCmd(), newDumpSpectrumCmd(), newDumpPlotCmd())
	return cmd
}

func newDumpInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Summarise a dump file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frames, err := dump.ReadAll(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "file:    %s\nframes:  %d\n", args[0], len(frames))
			if len(frames) == 0 {
				return nil
			}
			first, last := frames[0], frames[len(frames)-1]
			fmt.Fprintf(out, "steps:   %d to %d\natoms:   %d\ncolumns: %s\n", first.Step, last.Step, first.Natoms, strings.Join(first.Columns, " "))
			fmt.Fprintf(out, "box:     %v\n", first.Box)
			return nil
		},
	}
}

func newDumpSpectrumCmd() *cobra.Command {
	var (
		column  string
		atom    int
		dt      float64
		maxFreq float64
		modes   bool
		plot    string
	)
	cmd := &cobra.Command{
		Use:   "spectrum <file>",
		Short: "Find the main frequency of the motion of the ions",
		Long: `Compute the spectrum of a column of a dump file, for one atom, or summed
over all atoms with --modes (the normal modes of an ion crystal), and
print its largest peak. --dt is the time between frames: the timestep
of the simulation times the dump interval.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frames, err := dump.ReadAll(args[0])
			if err != nil {
				return err
			}
			var freqs, power []float64
			if modes {
				freqs, power, err = analysis.ModeSpectrum(frames, column, dt, 0.01)
			} else {
				var s []float64
				if s, err = dump.Series(frames, atom, column); err != nil {
					return err
				}
				freqs, power, err = analysis.Spectrum(s, dt)
			}
			if err != nil {
				return err
			}
			f, err := analysis.DominantMode(freqs, power, maxFreq)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "peak frequency: %g Hz\n", f)
			if plot != "" {
				return lionplot.SpectrumPlot(freqs, power, "Spectrum of "+column, plot)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&column, "column", "z", "column of the dump to analyse")
	cmd.Flags().IntVar(&atom, "atom", 1, "id of the atom to analyse")
	cmd.Flags().Float64Var(&dt, "dt", 0, "time between frames, in s")
	cmd.Flags().Float64Var(&maxFreq, "max-freq", 0, "ignore frequencies above this, in Hz")
	cmd.Flags().BoolVar(&modes, "modes", false, "add up the spectra of all the atoms")
	cmd.Flags().StringVar(&plot, "plot", "", "save a plot of the spectrum to this file")
	cmd.MarkFlagRequired("dt")
	return cmd
}

func newDumpPlotCmd() *cobra.Command {
	var (
		column  string
		dt      float64
		crystal bool
		out     string
	)
	cmd := &cobra.Command{
		Use:   "plot <file>",
		Short: "Plot the trajectories of the ions, or the last frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frames, err := dump.ReadAll(args[0])
			if err != nil {
				return err
			}
			if len(frames) == 0 {
				return fmt.Errorf("%s has no frames", args[0])
			}
			if crystal {
				return lionplot.Crystal(frames[len(frames)-1], "z", "x", "Ion crystal", out)
			}
			return lionplot.Trajectories(frames, column, dt, "Trajectories", out)
		},
	}
	cmd.Flags().StringVar(&column, "column", "z", "column of the dump to plot")
	cmd.Flags().Float64Var(&dt, "dt", 1, "simulation timestep, in s")
	cmd.Flags().BoolVar(&crystal, "crystal", false, "plot the z-x positions of the last frame")
	cmd.Flags().StringVarP(&out, "output", "o", "ions.png", "output file")
	return cmd
}
