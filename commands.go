/*
 * commands.go, part of golion.
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

package lion

import (
	"fmt"
	"strings"
)

// command is embedded by items without a LAMMPS identifier.
type command struct{}

func (command) Kind() Kind { return KindCommand }

func (command) ID() string { return "" }

// RunCommand integrates for a number of steps.
type RunCommand struct {
	command
	Steps int
}

// Evolve returns a command that runs the simulation for the given steps.
func Evolve(steps int) *RunCommand {
	return &RunCommand{Steps: steps}
}

func (R *RunCommand) Code() ([]string, error) {
	if R.Steps <= 0 {
		return nil, fmt.Errorf("number of steps must be positive, got %d", R.Steps)
	}
	return []string{"# Run simulation", fmt.Sprintf("run %d", R.Steps)}, nil
}

// VelocityCommand draws gaussian thermal velocities for all the ions.
type VelocityCommand struct {
	command
	Temperature  float64
	ZeroMomentum bool
	seed         int
}

// ThermalVelocities returns a command that sets the velocities of all
// the ions from a distribution at temperature (K). If zeroMomentum is
// set the total linear momentum is zeroed.
func ThermalVelocities(temperature float64, zeroMomentum bool) *VelocityCommand {
	return &VelocityCommand{Temperature: temperature, ZeroMomentum: zeroMomentum, seed: newSeed()}
}

func (V *VelocityCommand) Code() ([]string, error) {
	if V.Temperature < 0 {
		return nil, fmt.Errorf("negative temperature %g", V.Temperature)
	}
	return []string{
		"# Initialise ion velocities",
		fmt.Sprintf("velocity all create %s %d dist gaussian mom %s rot no", ff(V.Temperature), V.seed, yesno(V.ZeroMomentum)),
	}, nil
}

// MinimiseCommand relaxes the ions to a local minimum of the energy.
type MinimiseCommand struct {
	command
	Etol, Ftol      float64
	MaxIter         int
	MaxEval         int
	MaxDisplacement float64 //m
}

// Minimise returns an energy minimisation with the quickmin algorithm.
func Minimise(etol, ftol float64, maxIter, maxEval int, maxDisplacement float64) *MinimiseCommand {
	return &MinimiseCommand{Etol: etol, Ftol: ftol, MaxIter: maxIter, MaxEval: maxEval, MaxDisplacement: maxDisplacement}
}

func (M *MinimiseCommand) Code() ([]string, error) {
	if M.MaxIter <= 0 || M.MaxEval <= 0 || M.MaxDisplacement <= 0 {
		return nil, fmt.Errorf("minimisation needs positive iterations, evaluations and displacement")
	}
	return []string{
		"# Minimise energy",
		"min_style quickmin",
		fmt.Sprintf("min_modify dmax %s", ff(M.MaxDisplacement)),
		fmt.Sprintf("minimize %s %s %d %d", ff(M.Etol), ff(M.Ftol), M.MaxIter, M.MaxEval),
	}, nil
}

// RawCommand is a piece of LAMMPS script given verbatim.
type RawCommand struct {
	command
	Lines []string
}

// Command returns the given LAMMPS lines as an item.
func Command(lines ...string) *RawCommand {
	return &RawCommand{Lines: append([]string(nil), lines...)}
}

func (R *RawCommand) Code() ([]string, error) {
	for _, l := range R.Lines {
		if strings.ContainsRune(l, '\n') {
			return nil, fmt.Errorf("command lines cannot contain newlines: %q", l)
		}
	}
	return R.Lines, nil
}
