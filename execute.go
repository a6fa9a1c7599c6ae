/*
 * execute.go, part of golion.
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
	"context"
	"errors"
	"path/filepath"

	"github.com/iontrap/golion/archive"
	"github.com/iontrap/golion/lammps"
)

// Prepare writes the input file of the simulation and returns a handle
// ready to run it. Callers that run several simulations at once use
// Prepare, then lammps.RunAll, then Finish on each simulation.
func (S *Simulation) Prepare() (*lammps.Handle, error) {
	if S.executed {
		return nil, ErrAlreadyExecuted
	}
	if _, err := S.WriteInputFile(); err != nil {
		return nil, err
	}
	h := lammps.NewHandle()
	h.SetName(S.Name)
	h.SetCommand(S.Executable)
	h.SetDir(S.Directory)
	h.SetGPU(S.GPU)
	h.SetLogger(logger)
	if S.Stdout != nil {
		h.SetStdout(S.Stdout)
	}
	return h, nil
}

// Finish marks the simulation as executed and saves its attributes and
// the archive of its files to the simulation directory.
func (S *Simulation) Finish() error {
	S.executed = true
	attrs := filepath.Join(S.Directory, S.Name+".attrs.yaml")
	if err := S.Attributes.Save(attrs); err != nil {
		return &SimulationError{Op: "save", Err: err}
	}
	files := append([]string{S.Name + ".lammps", S.Name + ".lmp.log", S.Name + ".attrs.yaml"}, S.OutputFiles...)
	files = append(files, S.Sources...)
	dst := filepath.Join(S.Directory, S.Name+".tar.zst")
	skipped, err := archive.Bundle(dst, S.Directory, files)
	if err != nil {
		return &SimulationError{Op: "archive", Err: err}
	}
	for _, f := range skipped {
		logger.Warn("file missing from archive", "file", f)
	}
	logger.Debug("saved simulation", "archive", dst)
	return nil
}

// Execute writes the input file, runs LAMMPS on it and waits for it to
// finish, then saves the attributes and the archive of the run.
// A simulation can only be executed once.
func (S *Simulation) Execute(ctx context.Context) (*lammps.Result, error) {
	h, err := S.Prepare()
	if err != nil {
		return nil, err
	}
	res, err := h.Run(ctx)
	if errors.Is(err, lammps.ErrExecutableNotFound) {
		//nothing was started, the simulation can still be run.
		return nil, &SimulationError{Op: "execute", Err: err}
	}
	if ferr := S.Finish(); ferr != nil {
		if err == nil {
			return res, ferr
		}
		logger.Error("could not save simulation", "err", ferr)
	}
	if err != nil {
		return res, &SimulationError{Op: "execute", Err: err}
	}
	return res, nil
}
